package workbook

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestReadHourClockTwoRowHeader(t *testing.T) {
	path := writeSheet(t, "HourClock", [][]any{
		{"", "", "", "Day 1", "", "Day 2", ""},
		{"No", "SFNo", "Name", "P", "OT", "P", "OT"},
		{1, "SF001", "Ali", 1, 2.5, "", ""},
		{"", "Total", "", "", "", "", ""},
	})

	details, err := ReadHourClock(path, "HourClock", "Mar-24")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(details) != 1 {
		t.Fatalf("expected 1 row, got %d", len(details))
	}

	d := details[0]
	if d.SFNo != "SF001" || d.MonthYear != "Mar-24" {
		t.Fatalf("unexpected row %+v", d)
	}
	if d.SrNo == nil || !d.SrNo.Equal(decimal.NewFromInt(1)) {
		t.Fatalf("unexpected serial %v", d.SrNo)
	}
	if d.Presence[1] == nil || *d.Presence[1] != 1 {
		t.Fatalf("unexpected presence %v", d.Presence)
	}
	if d.Overtime[1] == nil || !d.Overtime[1].Equal(decimal.NewFromFloat(2.5)) {
		t.Fatalf("unexpected overtime %v", d.Overtime)
	}

	// Day 2 cells are blank: present in the maps as explicit nils.
	if p, ok := d.Presence[2]; !ok || p != nil {
		t.Fatalf("day 2 presence should be an explicit nil, got %v (present %v)", p, ok)
	}
	if ot, ok := d.Overtime[2]; !ok || ot != nil {
		t.Fatalf("day 2 overtime should be an explicit nil, got %v (present %v)", ot, ok)
	}
}
