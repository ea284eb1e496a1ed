package models

import (
	"github.com/shopspring/decimal"

	"github.com/mmdatafocus/payroll_sync/grist"
)

// AdvanceDetail is one cash-advance row for the reporting period.
type AdvanceDetail struct {
	SrNo      *decimal.Decimal
	SFNo      string
	Unit      string
	Advance   *decimal.Decimal
	Loan      *decimal.Decimal
	MonthYear string
}

// HasAmount reports whether the row carries a non-zero advance or loan.
// Rows without either never reach Grist.
func (a AdvanceDetail) HasAmount() bool {
	if a.Advance != nil && !a.Advance.IsZero() {
		return true
	}
	if a.Loan != nil && !a.Loan.IsZero() {
		return true
	}
	return false
}

func (a AdvanceDetail) Fields() grist.Fields {
	return grist.Fields{
		"SrNo":          numberOrNil(a.SrNo),
		ColumnSFNo:      a.SFNo,
		"Unit":          a.Unit,
		"Advance_Amt":   numberOrNil(a.Advance),
		"Loan_Amt":      numberOrNil(a.Loan),
		ColumnMonthYear: a.MonthYear,
	}
}
