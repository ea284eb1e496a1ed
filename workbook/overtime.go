package workbook

import (
	"github.com/mmdatafocus/payroll_sync/models"
)

// ReadOvertime loads the month's overtime sheet.
func ReadOvertime(path string, sheet string, monthYear string) ([]models.OvertimeDetail, error) {
	rows, err := sheetRows(path, sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	idx := headerIndex(rows[0])
	details := make([]models.OvertimeDetail, 0, len(rows)-1)
	for _, row := range rows[1:] {
		details = append(details, models.OvertimeDetail{
			SFNo:       cellAt(row, idx, "Emp No."),
			ESICRate:   decimalCell(cellAt(row, idx, "ESIC  Rate")),
			Hours:      decimalCell(cellAt(row, idx, "OT Hours")),
			HoursCalc:  decimalCell(cellAt(row, idx, "OT Hours Calculated")),
			Rate:       decimalCell(cellAt(row, idx, "OT Rate")),
			Amount:     decimalCell(cellAt(row, idx, "OT Amount")),
			ESIC4Pct:   decimalCell(cellAt(row, idx, "ESIC on OT (4%)")),
			ESIC075Pct: decimalCell(cellAt(row, idx, "ESIC on OT (0.75%)")),
			EmpType:    cellAt(row, idx, "Emp Type : Temp / Perm"),
			MonthYear:  monthYear,
		})
	}
	return details, nil
}
