package gristsync

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFieldChanged(t *testing.T) {
	tests := []struct {
		name     string
		kind     FieldKind
		incoming any
		stored   any
		changed  bool
		ok       bool
	}{
		{"both absent", KindString, nil, "", false, true},
		{"nan stored counts as absent", KindNumber, nil, "nan", false, true},
		{"incoming present stored absent", KindString, "Fitter", nil, true, true},
		{"incoming absent stored present", KindNumber, nil, 450.0, true, true},
		{"same number different rendering", KindNumber, "100", 100.0, false, true},
		{"decimal matches float", KindNumber, decimal.NewFromInt(100), 100.0, false, true},
		{"number differs", KindNumber, "100.01", 100.0, true, true},
		{"unparseable number", KindNumber, "4O0", 100.0, false, false},
		{"date ignores time of day", KindDate, "2024-03-15", float64(1710498600), false, true},
		{"date differs", KindDate, "2024-03-16", float64(1710498600), true, true},
		{"unparseable date", KindDate, "15th March", float64(1710498600), false, false},
		{"string padding ignored", KindString, " Temp ", "Temp", false, true},
		{"string differs", KindString, "Perm", "Temp", true, true},
	}

	for _, tc := range tests {
		changed, ok := fieldChanged(tc.kind, tc.incoming, tc.stored)
		if changed != tc.changed || ok != tc.ok {
			t.Fatalf("%s: fieldChanged(%v, %v) = (%v, %v), want (%v, %v)",
				tc.name, tc.incoming, tc.stored, changed, ok, tc.changed, tc.ok)
		}
	}
}

func TestStringValueRendersFloatsPlainly(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{700.0, "700"},
		{2.5, "2.5"},
		{true, "true"},
		{nil, ""},
		{decimal.NewFromInt(450), "450"},
	}
	for _, tc := range tests {
		if got := stringValue(tc.in); got != tc.want {
			t.Fatalf("stringValue(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
