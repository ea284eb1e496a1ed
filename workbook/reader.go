package workbook

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/mmdatafocus/payroll_sync/utils"
)

// sheetRows opens the workbook and returns the sheet's rows with raw cell
// values, so date cells come back as their stored serial numbers.
func sheetRows(path string, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// headerIndex maps trimmed header text to column position. The first
// occurrence wins when a header repeats.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, raw := range header {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if _, taken := idx[name]; !taken {
			idx[name] = i
		}
	}
	return idx
}

// requireColumns verifies the header carries every named column.
func requireColumns(idx map[string]int, names ...string) error {
	var missing []string
	for _, name := range names {
		if _, ok := idx[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("sheet is missing columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

// cell returns the trimmed value at column i, tolerating short rows.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// cellAt looks the column up by header name.
func cellAt(row []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok {
		return ""
	}
	return cell(row, i)
}

// decimalCell parses a numeric cell, tolerating currency marks and
// thousands separators. Blank or unparseable cells return nil.
func decimalCell(raw string) *decimal.Decimal {
	d, err := utils.CleanDecimal(raw)
	if err != nil {
		return nil
	}
	return &d
}

// decimalCellOrZero is decimalCell with absent values collapsed to zero,
// for the salary-statement dump.
func decimalCellOrZero(raw string) decimal.Decimal {
	if d := decimalCell(raw); d != nil {
		return *d
	}
	return decimal.Zero
}

// intCell parses a whole-number cell, truncating any fraction. Blank or
// unparseable cells return nil.
func intCell(raw string) *int {
	d := decimalCell(raw)
	if d == nil {
		return nil
	}
	n := int(d.IntPart())
	return &n
}

var dateCellLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
}

// dateCell parses a date cell, first as an Excel serial number, then
// against the accepted string layouts. Unparseable cells return nil.
func dateCell(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return nil
		}
		return &t
	}
	for _, layout := range dateCellLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

// isEmployeeNo reports whether the cell is a real employee number rather
// than a summary or spacer row.
func isEmployeeNo(sfno string) bool {
	return strings.HasPrefix(sfno, "SF")
}
