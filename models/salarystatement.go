package models

import (
	"github.com/shopspring/decimal"

	"github.com/mmdatafocus/payroll_sync/grist"
)

// SalaryStatementDetail is one computed salary-statement dump row. Unlike
// the other dumps, absent numeric cells are written as 0, so the amounts
// are value types.
type SalaryStatementDetail struct {
	SrNo            decimal.Decimal
	SFNo            string
	RatePerDay      decimal.Decimal
	PresentDays     decimal.Decimal
	BasicSalary     decimal.Decimal
	TotalOTHours    decimal.Decimal
	OTRatePerHour   decimal.Decimal
	OTSalary        decimal.Decimal
	GrossSalary     decimal.Decimal
	Advance         decimal.Decimal
	Loan            decimal.Decimal
	ESI             decimal.Decimal
	PF              decimal.Decimal
	ProfTax         decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal
	TotalRoundOff   decimal.Decimal
	MonthYear       string
}

func (s SalaryStatementDetail) Fields() grist.Fields {
	return grist.Fields{
		"SrNo":                s.SrNo.InexactFloat64(),
		ColumnSFNo:            s.SFNo,
		"Rate_Per_Day":        s.RatePerDay.InexactFloat64(),
		"Present_Days":        s.PresentDays.InexactFloat64(),
		"BasicSalary_Amt":     s.BasicSalary.InexactFloat64(),
		"TotalOT_Hours":       s.TotalOTHours.InexactFloat64(),
		"OT_Rate_PerHour":     s.OTRatePerHour.InexactFloat64(),
		"OTSalary_Amt":        s.OTSalary.InexactFloat64(),
		"GrossSalary_Amt":     s.GrossSalary.InexactFloat64(),
		"Advance_Amt":         s.Advance.InexactFloat64(),
		"Loan_Amt":            s.Loan.InexactFloat64(),
		"ESI_Amt":             s.ESI.InexactFloat64(),
		"PF_Amt":              s.PF.InexactFloat64(),
		"ProfTax_Amt":         s.ProfTax.InexactFloat64(),
		"TotalDeductions_Amt": s.TotalDeductions.InexactFloat64(),
		"NetSalary_Amt":       s.NetSalary.InexactFloat64(),
		"TotalRoundOff_Amt":   s.TotalRoundOff.InexactFloat64(),
		ColumnMonthYear:       s.MonthYear,
	}
}
