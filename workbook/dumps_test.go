package workbook

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestReadAdvancesKeepsOnlyEmployeeRows(t *testing.T) {
	path := writeSheet(t, "Advances", [][]any{
		{"No.", "Emp No.", "Unit No.", "Advance Amount", "Loan Amt"},
		{1, "SF001", "U1", 1000, ""},
		{"", "Total", "", 1000, ""},
		{2, "SF002", "U2", "", 500},
	})

	details, err := ReadAdvances(path, "Advances", "Mar-24")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(details))
	}
	if details[0].SFNo != "SF001" || details[0].Advance == nil || !details[0].Advance.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("unexpected first row %+v", details[0])
	}
	if details[0].MonthYear != "Mar-24" {
		t.Fatalf("month not stamped: %+v", details[0])
	}
	if details[1].Loan == nil || !details[1].Loan.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("unexpected second row %+v", details[1])
	}
}

func TestReadOvertime(t *testing.T) {
	path := writeSheet(t, "OT", [][]any{
		{"Emp No.", "ESIC  Rate", "OT Hours", "OT Hours Calculated", "OT Rate", "OT Amount", "ESIC on OT (4%)", "ESIC on OT (0.75%)", "Emp Type : Temp / Perm"},
		{"SF001", 300, 10, 10, 56.25, 562.5, 22.5, 4.22, "Perm"},
	})

	details, err := ReadOvertime(path, "OT", "Mar-24")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(details) != 1 {
		t.Fatalf("expected 1 row, got %d", len(details))
	}
	d := details[0]
	if d.SFNo != "SF001" || d.EmpType != "Perm" || d.MonthYear != "Mar-24" {
		t.Fatalf("unexpected row %+v", d)
	}
	if d.Amount == nil || !d.Amount.Equal(decimal.NewFromFloat(562.5)) {
		t.Fatalf("unexpected amount %v", d.Amount)
	}
}

func TestReadPFESICFiltersPermAndEmployeeRows(t *testing.T) {
	path := writeSheet(t, "PF-ESIC Sheet", [][]any{
		{"Sr. No.", "Emp No", "Emp Type", "PRESENT DAY", "BASIC WITH D.A", "GROSS AMOUNT", "PF", "ESIC", "NET PAYABLE"},
		{1, "SF001", "Perm", 26, 300, 7800, 936, 58.5, 6805.5},
		{2, "SF002", "Temp", 20, 300, 6000, "", "", 6000},
		{3, "Total", "Perm", "", "", "", "", "", ""},
	})

	details, err := ReadPFESIC(path, "PF-ESIC Sheet", "Mar-24")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(details) != 1 {
		t.Fatalf("expected only the permanent employee row, got %d", len(details))
	}
	d := details[0]
	if d.SFNo != "SF001" || d.Gross == nil || !d.Gross.Equal(decimal.NewFromInt(7800)) {
		t.Fatalf("unexpected row %+v", d)
	}
	if d.HRAPerDay != nil {
		t.Fatalf("columns absent from the sheet must stay nil, got %v", d.HRAPerDay)
	}
}

func TestReadSalaryStatementZeroFillsBlanks(t *testing.T) {
	path := writeSheet(t, "SalaryStatement", [][]any{
		{"No.", "Emp No.", "Salary Rate (Per Day)", "No Of Days Present", "Net Salary"},
		{1, "SF001", 450, 26, ""},
	})

	details, err := ReadSalaryStatement(path, "SalaryStatement", "Mar-24")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(details) != 1 {
		t.Fatalf("expected 1 row, got %d", len(details))
	}
	d := details[0]
	if !d.RatePerDay.Equal(decimal.NewFromInt(450)) {
		t.Fatalf("unexpected rate %v", d.RatePerDay)
	}
	if !d.NetSalary.IsZero() || !d.PF.IsZero() {
		t.Fatalf("blank numerics must collapse to zero: %+v", d)
	}
}
