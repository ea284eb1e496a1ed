package workbook

import (
	"github.com/shopspring/decimal"

	"github.com/mmdatafocus/payroll_sync/models"
)

// ReadHourClock loads the attendance sheet. It has a two-row header and
// positional columns: No, SFNo, Name, then alternating P/OT pairs, one
// pair per day of month. Blank day cells are kept as nils so they reach
// Grist as explicit nulls.
func ReadHourClock(path string, sheet string, monthYear string) ([]models.HourClockDetail, error) {
	rows, err := sheetRows(path, sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) <= 2 {
		return nil, nil
	}

	// Rows come back ragged, so the header rows set the sheet width.
	width := len(rows[0])
	if len(rows[1]) > width {
		width = len(rows[1])
	}

	details := make([]models.HourClockDetail, 0, len(rows)-2)
	for _, row := range rows[2:] {
		sfno := cell(row, 1)
		if !isEmployeeNo(sfno) {
			continue
		}

		d := models.HourClockDetail{
			SrNo:      decimalCell(cell(row, 0)),
			SFNo:      sfno,
			MonthYear: monthYear,
			Presence:  map[int]*int{},
			Overtime:  map[int]*decimal.Decimal{},
		}
		for i := 3; i < width; i++ {
			day := (i-3)/2 + 1
			if day > 31 {
				break
			}
			if (i-3)%2 == 0 {
				d.Presence[day] = intCell(cell(row, i))
			} else {
				d.Overtime[day] = decimalCell(cell(row, i))
			}
		}
		details = append(details, d)
	}
	return details, nil
}
