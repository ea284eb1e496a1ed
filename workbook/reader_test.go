package workbook

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// writeSheet builds a single-sheet workbook in a temp dir and returns its
// path.
func writeSheet(t *testing.T, sheet string, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "Wages 12-03-2024.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func TestDecimalCell(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1,200.50", "1200.50"},
		{"₹ 500", "500"},
		{"-42", "-42"},
	}
	for _, tc := range tests {
		d := decimalCell(tc.in)
		if d == nil || d.String() != tc.want {
			t.Fatalf("decimalCell(%q) = %v, want %s", tc.in, d, tc.want)
		}
	}
	if d := decimalCell(""); d != nil {
		t.Fatalf("blank cell must be nil, got %v", d)
	}
	if d := decimalCell("nan"); d != nil {
		t.Fatalf("nan cell must be nil, got %v", d)
	}
}

func TestDateCell(t *testing.T) {
	if d := dateCell("45352"); d == nil || d.Format("2006-01-02") != "2024-03-01" {
		t.Fatalf("serial date = %v", d)
	}
	if d := dateCell("2024-03-01"); d == nil || d.Format("2006-01-02") != "2024-03-01" {
		t.Fatalf("iso date = %v", d)
	}
	if d := dateCell("01-03-2024"); d == nil || d.Format("2006-01-02") != "2024-03-01" {
		t.Fatalf("day-first date = %v", d)
	}
	if d := dateCell("March 1"); d != nil {
		t.Fatalf("expected nil for an unparseable date, got %v", d)
	}
}

func TestIntCellTruncates(t *testing.T) {
	if n := intCell("1.9"); n == nil || *n != 1 {
		t.Fatalf("intCell(1.9) = %v", n)
	}
	if n := intCell("x"); n != nil {
		t.Fatalf("intCell(x) = %v, want nil", n)
	}
}
