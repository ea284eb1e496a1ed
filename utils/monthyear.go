package utils

import (
	"regexp"
	"time"
)

var dateTokenPattern = regexp.MustCompile(`(\d{1,2}-\d{1,2}-\d{4})|(\d{4}-\d{1,2}-\d{1,2})`)

// dateTokenLayouts are tried in order; day-first wins for ambiguous tokens
// like 05-03-2024.
var dateTokenLayouts = []string{
	"2-1-2006",
	"1-2-2006",
	"2006-1-2",
}

// MonthYearFromFilename extracts the period tag (e.g. "Mar-24") from a
// workbook filename carrying a date token such as "Wages 05-03-2024.xlsx"
// or "Wages-2024-03-05.xlsx".
func MonthYearFromFilename(filename string) (string, error) {
	token := dateTokenPattern.FindString(filename)
	if token == "" {
		return "", ErrorMonthYearNotFound
	}

	for _, layout := range dateTokenLayouts {
		t, err := time.Parse(layout, token)
		if err != nil {
			continue
		}
		return t.Format("Jan-06"), nil
	}

	return "", ErrorMonthYearNotFound
}
