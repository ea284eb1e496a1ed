package workbook

import (
	"github.com/mmdatafocus/payroll_sync/models"
)

const (
	colEmpNo       = "Emp No."
	colName        = "Name"
	colDesignation = "Designation"
	colSalaryRate  = "Salary Rate (Per Day)"
	colEmpType     = "Emp Type : Temp / Perm"
	colFixedHourly = "Salary Calculation on Fixed / Hourly"
	colDOJ         = "Date of Joining"
)

// ReadMaster loads the employee roster sheet. The header row must carry
// every consumed column; rows without an employee number are kept here and
// dropped during reconciliation, where the skip is counted.
func ReadMaster(path string, sheet string) ([]models.Employee, error) {
	rows, err := sheetRows(path, sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	idx := headerIndex(rows[0])
	if err := requireColumns(idx, colEmpNo, colName, colDesignation, colSalaryRate, colEmpType, colFixedHourly, colDOJ); err != nil {
		return nil, err
	}

	employees := make([]models.Employee, 0, len(rows)-1)
	for _, row := range rows[1:] {
		employees = append(employees, models.Employee{
			SFNo:        cellAt(row, idx, colEmpNo),
			FullName:    cellAt(row, idx, colName),
			Designation: cellAt(row, idx, colDesignation),
			PermTemp:    cellAt(row, idx, colEmpType),
			FixedHourly: cellAt(row, idx, colFixedHourly),
			RatePerDay:  decimalCell(cellAt(row, idx, colSalaryRate)),
			DOJ:         dateCell(cellAt(row, idx, colDOJ)),
		})
	}
	return employees, nil
}
