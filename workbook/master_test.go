package workbook

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestReadMaster(t *testing.T) {
	path := writeSheet(t, "MasterSalarySheet", [][]any{
		{"Emp No.", "Name", "Designation", "Salary Rate (Per Day)", "Emp Type : Temp / Perm", "Salary Calculation on Fixed / Hourly", "Date of Joining"},
		{"SF001", "md ali khan", "Fitter", 450, "Perm", "Fixed", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"SF002", "Ravi", "Helper", "", "Temp", "Hourly", ""},
	})

	employees, err := ReadMaster(path, "MasterSalarySheet")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(employees) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(employees))
	}

	emp := employees[0]
	if emp.SFNo != "SF001" || emp.FullName != "md ali khan" || emp.Designation != "Fitter" {
		t.Fatalf("unexpected employee %+v", emp)
	}
	if emp.RatePerDay == nil || !emp.RatePerDay.Equal(decimal.NewFromInt(450)) {
		t.Fatalf("unexpected rate %v", emp.RatePerDay)
	}
	if emp.DOJ == nil || emp.DOJ.Format("2006-01-02") != "2024-03-01" {
		t.Fatalf("unexpected DOJ %v", emp.DOJ)
	}

	if employees[1].RatePerDay != nil || employees[1].DOJ != nil {
		t.Fatalf("blank cells must stay nil: %+v", employees[1])
	}
}

func TestReadMasterMissingColumnFails(t *testing.T) {
	path := writeSheet(t, "MasterSalarySheet", [][]any{
		{"Emp No.", "Name"},
	})
	if _, err := ReadMaster(path, "MasterSalarySheet"); err == nil {
		t.Fatalf("expected an error for missing columns")
	}
}
