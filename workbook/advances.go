package workbook

import (
	"github.com/mmdatafocus/payroll_sync/models"
)

// ReadAdvances loads the month's advances sheet, keeping only employee
// rows. The sheet mixes in unit subtotal rows whose "Emp No." cell is not
// an SF number.
func ReadAdvances(path string, sheet string, monthYear string) ([]models.AdvanceDetail, error) {
	rows, err := sheetRows(path, sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	idx := headerIndex(rows[0])
	details := make([]models.AdvanceDetail, 0, len(rows)-1)
	for _, row := range rows[1:] {
		sfno := cellAt(row, idx, "Emp No.")
		if !isEmployeeNo(sfno) {
			continue
		}
		details = append(details, models.AdvanceDetail{
			SrNo:      decimalCell(cellAt(row, idx, "No.")),
			SFNo:      sfno,
			Unit:      cellAt(row, idx, "Unit No."),
			Advance:   decimalCell(cellAt(row, idx, "Advance Amount")),
			Loan:      decimalCell(cellAt(row, idx, "Loan Amt")),
			MonthYear: monthYear,
		})
	}
	return details, nil
}
