package gristsync

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmdatafocus/payroll_sync/grist"
	"github.com/mmdatafocus/payroll_sync/models"
)

var masterColumns = []string{
	"SFNo", "FirstName", "MiddleName", "LastName", "Designation",
	"Perm_Temp", "Fixed_Hourly", "DOJ", "Salary_PerDay", "RecordHistory",
	"Left",
}

func TestSyncMasterInsertsNewEmployee(t *testing.T) {
	cfg := testConfig()
	store := newFakeStore()
	store.columns[cfg.MasterTable] = masterColumns

	syncer := NewSyncer(cfg, store, Options{})
	syncer.clock = func() time.Time { return testNow }

	rate := decimal.NewFromInt(450)
	doj := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	employees := []models.Employee{{
		SFNo:        "SF001",
		FullName:    "md ali khan",
		Designation: "Fitter",
		PermTemp:    "Perm",
		FixedHourly: "Fixed",
		RatePerDay:  &rate,
		DOJ:         &doj,
	}}

	totals, err := syncer.SyncMaster(context.Background(), employees, "Mar-24")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if totals.New != 1 || totals.RateLogged != 1 {
		t.Fatalf("totals = %+v", totals)
	}

	if len(store.inserts[cfg.MasterTable]) != 1 || len(store.inserts[cfg.MasterTable][0]) != 1 {
		t.Fatalf("expected one insert batch with one record, got %v", store.inserts[cfg.MasterTable])
	}
	rec := store.inserts[cfg.MasterTable][0][0]
	if rec["FirstName"] != "Md" || rec["MiddleName"] != "Ali" || rec["LastName"] != "Khan" {
		t.Fatalf("unexpected name split in %v", rec)
	}
	if rec["DOJ"] != "2024-03-01" {
		t.Fatalf("unexpected DOJ %v", rec["DOJ"])
	}
	if _, present := rec["Salary_PerDay"]; present {
		t.Fatalf("formula rate column must not be written: %v", rec)
	}

	if len(store.inserts[cfg.RateLogTable]) != 1 {
		t.Fatalf("expected a rate log batch, got %v", store.inserts)
	}
	logRec := store.inserts[cfg.RateLogTable][0][0]
	if logRec["Remarks"] != models.RemarkInitialRate || logRec["NewPerDayRate"] != 450.0 {
		t.Fatalf("unexpected rate log %v", logRec)
	}
}

func TestLeftPatchesSkipAlreadyFlagged(t *testing.T) {
	existing := []grist.Record{
		{ID: 1, Fields: grist.Fields{"SFNo": "SF001", "Left": true}},
		{ID: 2, Fields: grist.Fields{"SFNo": "SF002", "Left": false, "RecordHistory": "old"}},
		{ID: 3, Fields: grist.Fields{"SFNo": "SF003"}},
	}
	rows := []Row{{Key: "SF003", Fields: grist.Fields{"SFNo": "SF003"}}}
	schema := map[string]bool{"SFNo": true, "Left": true, "RecordHistory": true}

	patches := leftPatches(existing, rows, "Mar-24", testNow, schema)
	if len(patches) != 1 {
		t.Fatalf("expected 1 patch, got %d", len(patches))
	}
	p := patches[0]
	if p.ID != 2 {
		t.Fatalf("expected record 2 to be flagged, got %d", p.ID)
	}
	if p.Fields["Left"] != true {
		t.Fatalf("expected Left=true, got %v", p.Fields)
	}
	history, _ := p.Fields["RecordHistory"].(string)
	if history != "05-04-2024 Mar-24: Updated Left to true\nold" {
		t.Fatalf("unexpected history %q", history)
	}
}

func TestSyncMasterMarkAsLeftFlagsMissingEmployees(t *testing.T) {
	cfg := testConfig()
	store := newFakeStore()
	store.columns[cfg.MasterTable] = masterColumns
	store.records[cfg.MasterTable] = []grist.Record{
		{ID: 1, Fields: grist.Fields{"SFNo": "SF001", "Perm_Temp": "Perm", "Fixed_Hourly": "Fixed"}},
		{ID: 2, Fields: grist.Fields{"SFNo": "SF002", "Perm_Temp": "Perm", "Fixed_Hourly": "Fixed"}},
	}

	syncer := NewSyncer(cfg, store, Options{MarkAsLeft: true})
	syncer.clock = func() time.Time { return testNow }

	employees := []models.Employee{{SFNo: "SF001", FullName: "A B", PermTemp: "Perm", FixedHourly: "Fixed"}}
	totals, err := syncer.SyncMaster(context.Background(), employees, "Mar-24")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if totals.MarkedLeft != 1 {
		t.Fatalf("totals = %+v", totals)
	}
	if len(store.patches[cfg.MasterTable]) != 1 {
		t.Fatalf("expected one patch batch, got %v", store.patches)
	}
	batch := store.patches[cfg.MasterTable][0]
	if len(batch) != 1 || batch[0].ID != 2 || batch[0].Fields["Left"] != true {
		t.Fatalf("unexpected left patch %v", batch)
	}
}
