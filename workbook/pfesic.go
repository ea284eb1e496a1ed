package workbook

import (
	"strings"

	"github.com/mmdatafocus/payroll_sync/models"
)

// ReadPFESIC loads one of the PF/ESIC dump sheets. Both the current and
// new-joiner sheets share the layout. Only permanent employees with a real
// employee number are kept.
func ReadPFESIC(path string, sheet string, monthYear string) ([]models.PFESICDetail, error) {
	rows, err := sheetRows(path, sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	idx := headerIndex(rows[0])
	details := make([]models.PFESICDetail, 0, len(rows)-1)
	for _, row := range rows[1:] {
		sfno := cellAt(row, idx, "Emp No")
		if !isEmployeeNo(sfno) {
			continue
		}
		if !strings.EqualFold(cellAt(row, idx, "Emp Type"), "Perm") {
			continue
		}
		details = append(details, models.PFESICDetail{
			SrNo:        decimalCell(cellAt(row, idx, "Sr. No.")),
			SFNo:        sfno,
			PresentDay:  decimalCell(cellAt(row, idx, "PRESENT DAY")),
			BasicDA:     decimalCell(cellAt(row, idx, "BASIC WITH D.A")),
			HRAPerDay:   decimalCell(cellAt(row, idx, "HRA    P DAY")),
			ConvPerDay:  decimalCell(cellAt(row, idx, "CONV P DAY")),
			WAPerDay:    decimalCell(cellAt(row, idx, "W A   P DAY")),
			Basic:       decimalCell(cellAt(row, idx, "BASIC")),
			ActualBasic: decimalCell(cellAt(row, idx, "ACTUAL BASIC")),
			HRA:         decimalCell(cellAt(row, idx, "H.R A AMOUNT")),
			Conv:        decimalCell(cellAt(row, idx, "CONV   AMOUNT")),
			WA:          decimalCell(cellAt(row, idx, "W. A     AMOUNT")),
			Gross:       decimalCell(cellAt(row, idx, "GROSS AMOUNT")),
			PF:          decimalCell(cellAt(row, idx, "PF")),
			ESIC:        decimalCell(cellAt(row, idx, "ESIC")),
			PTax:        decimalCell(cellAt(row, idx, "P TAX")),
			TotalDed:    decimalCell(cellAt(row, idx, "TOTAL DED")),
			NetPayable:  decimalCell(cellAt(row, idx, "NET PAYABLE")),
			MonthYear:   monthYear,
		})
	}
	return details, nil
}
