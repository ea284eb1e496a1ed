package models

import (
	"github.com/shopspring/decimal"

	"github.com/mmdatafocus/payroll_sync/grist"
)

// PFESICDetail is one PF/ESIC contribution dump row. The same shape feeds
// both dump tables (current and new-joiner).
type PFESICDetail struct {
	SrNo        *decimal.Decimal
	SFNo        string
	PresentDay  *decimal.Decimal
	BasicDA     *decimal.Decimal
	HRAPerDay   *decimal.Decimal
	ConvPerDay  *decimal.Decimal
	WAPerDay    *decimal.Decimal
	Basic       *decimal.Decimal
	ActualBasic *decimal.Decimal
	HRA         *decimal.Decimal
	Conv        *decimal.Decimal
	WA          *decimal.Decimal
	Gross       *decimal.Decimal
	PF          *decimal.Decimal
	ESIC        *decimal.Decimal
	PTax        *decimal.Decimal
	TotalDed    *decimal.Decimal
	NetPayable  *decimal.Decimal
	MonthYear   string
}

func (p PFESICDetail) Fields() grist.Fields {
	return grist.Fields{
		"SrNo":            numberOrNil(p.SrNo),
		ColumnSFNo:        p.SFNo,
		"PresentDay":      numberOrNil(p.PresentDay),
		"Basic_DA_PerDay": numberOrNil(p.BasicDA),
		"HRA_PerDay":      numberOrNil(p.HRAPerDay),
		"Conv_PerDay":     numberOrNil(p.ConvPerDay),
		"WA_PerDay":       numberOrNil(p.WAPerDay),
		"Basic_Amt":       numberOrNil(p.Basic),
		"ActualBasic_Amt": numberOrNil(p.ActualBasic),
		"HRA_Amt":         numberOrNil(p.HRA),
		"Conv_Amt":        numberOrNil(p.Conv),
		"WA_Amt":          numberOrNil(p.WA),
		"GrossAmt":        numberOrNil(p.Gross),
		"PF_Amt":          numberOrNil(p.PF),
		"ESIC_Amt":        numberOrNil(p.ESIC),
		"PTax_Amt":        numberOrNil(p.PTax),
		"TotalDed_Amt":    numberOrNil(p.TotalDed),
		"NetPayable_Amt":  numberOrNil(p.NetPayable),
		ColumnMonthYear:   p.MonthYear,
	}
}
