package models

import "github.com/shopspring/decimal"

// Column ids shared across the payroll tables.
const (
	ColumnSFNo          = "SFNo"
	ColumnMonthYear     = "Month_Year"
	ColumnRecordHistory = "RecordHistory"
	ColumnSalaryPerDay  = "Salary_PerDay"
	ColumnLeft          = "Left"
)

// numberOrNil renders an optional amount as a JSON number; absent cells
// stay explicit nulls.
func numberOrNil(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.InexactFloat64()
}
