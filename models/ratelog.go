package models

import (
	"github.com/shopspring/decimal"

	"github.com/mmdatafocus/payroll_sync/grist"
)

// Rate-log remark values.
const (
	RemarkInitialRate = "Initial Rate"
	RemarkRateChange  = "Rate Change"
)

// RateLogEntry is one append-only audit row for a pay-rate event. The
// log's RecordHistory column carries the reporting period token.
type RateLogEntry struct {
	SFNo      string
	Rate      decimal.Decimal
	Remarks   string
	MonthYear string
}

func (r RateLogEntry) Fields() grist.Fields {
	return grist.Fields{
		ColumnSFNo:          r.SFNo,
		"NewPerDayRate":     r.Rate.InexactFloat64(),
		"Remarks":           r.Remarks,
		ColumnRecordHistory: r.MonthYear,
	}
}
