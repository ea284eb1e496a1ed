package models

import (
	"github.com/shopspring/decimal"

	"github.com/mmdatafocus/payroll_sync/grist"
)

// HourClockDetail is one attendance row: presence counts and overtime
// hours per day of month. A nil map value is a blank cell that must land
// in Grist as an explicit null; a missing day means the sheet had no
// column for it.
type HourClockDetail struct {
	SrNo      *decimal.Decimal
	SFNo      string
	MonthYear string
	Presence  map[int]*int
	Overtime  map[int]*decimal.Decimal
}

// Fields renders the row for Grist. dayColumn resolves the stored column
// id for a day's P or OT value; days it cannot resolve are dropped.
func (h HourClockDetail) Fields(dayColumn func(prefix string, day int) (string, bool)) grist.Fields {
	fields := grist.Fields{
		ColumnSFNo:      h.SFNo,
		ColumnMonthYear: h.MonthYear,
	}
	if h.SrNo != nil {
		fields["Sr_No"] = h.SrNo.InexactFloat64()
	}

	for day, p := range h.Presence {
		col, ok := dayColumn("P", day)
		if !ok {
			continue
		}
		if p == nil {
			fields[col] = nil
		} else {
			fields[col] = *p
		}
	}
	for day, ot := range h.Overtime {
		col, ok := dayColumn("OT", day)
		if !ok {
			continue
		}
		if ot == nil {
			fields[col] = nil
		} else {
			fields[col] = ot.InexactFloat64()
		}
	}

	return fields
}
