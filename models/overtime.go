package models

import (
	"github.com/shopspring/decimal"

	"github.com/mmdatafocus/payroll_sync/grist"
)

// OvertimeDetail is one overtime dump row for the reporting period.
type OvertimeDetail struct {
	SFNo       string
	ESICRate   *decimal.Decimal
	Hours      *decimal.Decimal
	HoursCalc  *decimal.Decimal
	Rate       *decimal.Decimal
	Amount     *decimal.Decimal
	ESIC4Pct   *decimal.Decimal
	ESIC075Pct *decimal.Decimal
	EmpType    string
	MonthYear  string
}

func (o OvertimeDetail) Fields() grist.Fields {
	return grist.Fields{
		ColumnSFNo:        o.SFNo,
		"ESIC_Rate":       numberOrNil(o.ESICRate),
		"OT_Hours":        numberOrNil(o.Hours),
		"OT_Hours_Calc":   numberOrNil(o.HoursCalc),
		"OT_Rate":         numberOrNil(o.Rate),
		"OT_Amt":          numberOrNil(o.Amount),
		"ESIC_4pct_Amt":   numberOrNil(o.ESIC4Pct),
		"ESIC_075pct_Amt": numberOrNil(o.ESIC075Pct),
		"Emp_Type":        o.EmpType,
		ColumnMonthYear:   o.MonthYear,
	}
}
