package utils

import "testing"

func TestMonthYearFromFilename(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		want     string
	}{
		{"day first", "Wages 05-03-2024.xlsx", "Mar-24"},
		{"day first unpadded", "Wages 5-3-2024.xlsx", "Mar-24"},
		{"day first unambiguous", "Advance 25-12-2023.xlsx", "Dec-23"},
		{"day first twelve", "Wages 12-05-2025.xlsx", "May-25"},
		{"month first fallback", "Wages 03-13-2024.xlsx", "Mar-24"},
		{"year first", "Wages-2024-03-05.xlsx", "Mar-24"},
		{"token inside longer name", "payroll_final 01-04-2024 v2.xlsx", "Apr-24"},
	}

	for _, c := range cases {
		got, err := MonthYearFromFilename(c.filename)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.name, err)
		}
		if got != c.want {
			t.Fatalf("%s: got %q want %q", c.name, got, c.want)
		}
	}
}

func TestMonthYearFromFilenameNoToken(t *testing.T) {
	for _, filename := range []string{
		"Wages.xlsx",
		"Wages March 2024.xlsx",
		"Wages 5-3-24.xlsx",
	} {
		if _, err := MonthYearFromFilename(filename); err != ErrorMonthYearNotFound {
			t.Fatalf("%s: expected ErrorMonthYearNotFound, got %v", filename, err)
		}
	}
}

func TestMonthYearFromFilenameInvalidDate(t *testing.T) {
	// 31-31 is not a valid date under any of the supported orders.
	if _, err := MonthYearFromFilename("Wages 31-31-2024.xlsx"); err != ErrorMonthYearNotFound {
		t.Fatalf("expected ErrorMonthYearNotFound, got %v", err)
	}
}
