package gristsync

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmdatafocus/payroll_sync/grist"
	"github.com/mmdatafocus/payroll_sync/models"
)

func TestDayColumnResolverPrefersUnderscore(t *testing.T) {
	schema := map[string]bool{"P_1": true, "P-1": true, "OT-1": true}
	resolve := dayColumnResolver(schema)

	if col, ok := resolve("P", 1); !ok || col != "P_1" {
		t.Fatalf("resolve(P, 1) = %q, %v", col, ok)
	}
	if col, ok := resolve("OT", 1); !ok || col != "OT-1" {
		t.Fatalf("resolve(OT, 1) = %q, %v", col, ok)
	}
	if _, ok := resolve("P", 2); ok {
		t.Fatalf("resolve(P, 2) should find nothing")
	}
}

func TestHourClockFieldSpecsFollowSchema(t *testing.T) {
	schema := map[string]bool{"Sr_No": true, "P_1": true, "OT_1": true, "P-2": true}
	specs := hourClockFieldSpecs(schema)

	cols := make(map[string]bool, len(specs))
	for _, fs := range specs {
		cols[fs.Column] = true
	}
	for _, want := range []string{"Sr_No", "P_1", "OT_1", "P-2"} {
		if !cols[want] {
			t.Fatalf("missing column %q in %v", want, cols)
		}
	}
	if len(specs) != 4 {
		t.Fatalf("expected 4 field specs, got %d", len(specs))
	}
}

func TestReconcileHourClockPatchesOnlyChangedDay(t *testing.T) {
	schema := map[string]bool{
		"SFNo": true, "Month_Year": true, "Sr_No": true,
		"P_1": true, "OT_1": true, "P_2": true, "OT_2": true,
	}
	spec := TableSpec{
		Table:        "HC_Detail",
		KeyColumn:    "SFNo",
		PeriodColumn: "Month_Year",
		Fields:       hourClockFieldSpecs(schema),
	}
	existing := []grist.Record{{ID: 9, Fields: grist.Fields{
		"SFNo": "SF001", "Month_Year": "Mar-24",
		"P_1": 1.0, "OT_1": 2.5, "P_2": 1.0, "OT_2": nil,
	}}}

	one := 1
	sameOT := decimal.NewFromFloat(2.5)
	resolve := dayColumnResolver(schema)

	same := models.HourClockDetail{
		SFNo: "SF001", MonthYear: "Mar-24",
		Presence: map[int]*int{1: &one, 2: &one},
		Overtime: map[int]*decimal.Decimal{1: &sameOT, 2: nil},
	}
	plan, err := Reconcile(spec, existing, []Row{{Key: "SF001", Fields: same.Fields(resolve)}}, "Mar-24", testNow, schema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Inserts) != 0 || len(plan.Patches) != 0 {
		t.Fatalf("expected no writes for a matching row, got %+v", plan)
	}

	newOT := decimal.NewFromFloat(3.5)
	changed := models.HourClockDetail{
		SFNo: "SF001", MonthYear: "Mar-24",
		Presence: map[int]*int{1: &one, 2: &one},
		Overtime: map[int]*decimal.Decimal{1: &newOT, 2: nil},
	}
	plan, err = Reconcile(spec, existing, []Row{{Key: "SF001", Fields: changed.Fields(resolve)}}, "Mar-24", testNow, schema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Patches) != 1 {
		t.Fatalf("expected 1 patch, got %+v", plan)
	}
	fields := plan.Patches[0].Fields
	if len(fields) != 1 {
		t.Fatalf("patch should carry only the changed day, got %v", fields)
	}
	if fields["OT_1"] != 3.5 {
		t.Fatalf("expected OT_1=3.5, got %v", fields)
	}
}
