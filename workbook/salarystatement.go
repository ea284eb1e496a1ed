package workbook

import (
	"github.com/mmdatafocus/payroll_sync/models"
)

// ReadSalaryStatement loads the computed salary dump. Absent numeric cells
// collapse to zero so the dump always carries a full amount set.
func ReadSalaryStatement(path string, sheet string, monthYear string) ([]models.SalaryStatementDetail, error) {
	rows, err := sheetRows(path, sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	idx := headerIndex(rows[0])
	details := make([]models.SalaryStatementDetail, 0, len(rows)-1)
	for _, row := range rows[1:] {
		details = append(details, models.SalaryStatementDetail{
			SrNo:            decimalCellOrZero(cellAt(row, idx, "No.")),
			SFNo:            cellAt(row, idx, "Emp No."),
			RatePerDay:      decimalCellOrZero(cellAt(row, idx, "Salary Rate (Per Day)")),
			PresentDays:     decimalCellOrZero(cellAt(row, idx, "No Of Days Present")),
			BasicSalary:     decimalCellOrZero(cellAt(row, idx, "Basic Salary")),
			TotalOTHours:    decimalCellOrZero(cellAt(row, idx, "Total OT Hours")),
			OTRatePerHour:   decimalCellOrZero(cellAt(row, idx, "OT Rate Per Hour")),
			OTSalary:        decimalCellOrZero(cellAt(row, idx, "OT Salary")),
			GrossSalary:     decimalCellOrZero(cellAt(row, idx, "Gross Salary")),
			Advance:         decimalCellOrZero(cellAt(row, idx, "Adv Amt")),
			Loan:            decimalCellOrZero(cellAt(row, idx, "Loan Amt")),
			ESI:             decimalCellOrZero(cellAt(row, idx, "ESI Amt")),
			PF:              decimalCellOrZero(cellAt(row, idx, "PF Amt")),
			ProfTax:         decimalCellOrZero(cellAt(row, idx, "Prof Tax")),
			TotalDeductions: decimalCellOrZero(cellAt(row, idx, "Total Deductions")),
			NetSalary:       decimalCellOrZero(cellAt(row, idx, "Net Salary")),
			TotalRoundOff:   decimalCellOrZero(cellAt(row, idx, "Salary To Pay (Rounded Off)")),
			MonthYear:       monthYear,
		})
	}
	return details, nil
}
