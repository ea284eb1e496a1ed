package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmdatafocus/payroll_sync/grist"
)

// Employee is one master-roster row from the wages workbook. SFNo is the
// immutable business key. RatePerDay and DOJ stay nil when the cell is
// blank.
type Employee struct {
	SFNo        string
	FullName    string
	Designation string
	PermTemp    string
	FixedHourly string
	RatePerDay  *decimal.Decimal
	DOJ         *time.Time
}

// Fields renders the row for Grist. Salary_PerDay is included for
// comparison against the stored formula value; it is never written.
func (e Employee) Fields() grist.Fields {
	firstName, middleName, lastName := SplitName(e.FullName)

	fields := grist.Fields{
		ColumnSFNo:     e.SFNo,
		"FirstName":    firstName,
		"MiddleName":   middleName,
		"LastName":     lastName,
		"Designation":  e.Designation,
		"Perm_Temp":    e.PermTemp,
		"Fixed_Hourly": e.FixedHourly,
	}

	if e.DOJ != nil {
		fields["DOJ"] = e.DOJ.Format("2006-01-02")
	} else {
		fields["DOJ"] = nil
	}
	fields[ColumnSalaryPerDay] = numberOrNil(e.RatePerDay)

	return fields
}
