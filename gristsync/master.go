package gristsync

import (
	"context"
	"strings"
	"time"

	"github.com/mmdatafocus/payroll_sync/config"
	"github.com/mmdatafocus/payroll_sync/grist"
	"github.com/mmdatafocus/payroll_sync/models"
)

// SyncMaster reconciles the employee roster. New employees are inserted
// with an opening rate-log entry, matched ones are patched field by field,
// and with MarkAsLeft enabled employees missing from the sheet get their
// Left flag set.
func (s *Syncer) SyncMaster(ctx context.Context, employees []models.Employee, monthYear string) (Totals, error) {
	logger := config.GetLogger()

	schema, err := s.tableSchema(ctx, s.cfg.MasterTable)
	if err != nil {
		return Totals{}, err
	}

	existing, err := s.store.Records(ctx, s.cfg.MasterTable, nil)
	if err != nil {
		config.LogError(logger, "master.go", "SyncMaster", "fetch employee records", s.cfg.MasterTable, err)
		return Totals{}, err
	}

	rows := make([]Row, 0, len(employees))
	for _, emp := range employees {
		rows = append(rows, Row{Key: emp.SFNo, Fields: emp.Fields()})
	}

	spec := TableSpec{
		Table:     s.cfg.MasterTable,
		KeyColumn: models.ColumnSFNo,
		Fields: []FieldSpec{
			{Column: "FirstName", Kind: KindString, InsertOnly: true},
			{Column: "MiddleName", Kind: KindString, InsertOnly: true},
			{Column: "LastName", Kind: KindString, InsertOnly: true},
			{Column: "Designation", Kind: KindString, InsertOnly: true},
			{Column: "Perm_Temp", Kind: KindString},
			{Column: "Fixed_Hourly", Kind: KindString},
			{Column: "DOJ", Kind: KindDate},
		},
		Guard: GuardNone,
		Rate:  &RatePolicy{Column: models.ColumnSalaryPerDay},
	}

	now := s.clock()
	plan, err := Reconcile(spec, existing, rows, monthYear, now, schema)
	if err != nil {
		return Totals{}, err
	}

	if s.opts.MarkAsLeft {
		plan.LeftPatches = leftPatches(existing, rows, monthYear, now, schema)
	}

	return s.apply(ctx, s.cfg.MasterTable, plan), nil
}

// leftPatches flags stored employees absent from the incoming sheet,
// skipping those already marked.
func leftPatches(existing []grist.Record, rows []Row, monthYear string, now time.Time, schema map[string]bool) []grist.RecordUpdate {
	incoming := make(map[string]bool, len(rows))
	for _, row := range rows {
		key := strings.TrimSpace(row.Key)
		if key != "" && !strings.EqualFold(key, "nan") {
			incoming[key] = true
		}
	}

	var patches []grist.RecordUpdate
	for _, rec := range existing {
		key := strings.TrimSpace(stringValue(rec.Fields[models.ColumnSFNo]))
		if key == "" || incoming[key] {
			continue
		}
		if truthy(rec.Fields[models.ColumnLeft]) {
			continue
		}
		fields := grist.Fields{models.ColumnLeft: true}
		if schema[models.ColumnRecordHistory] {
			line := historyLine(now, monthYear, updatedAction(models.ColumnLeft, true))
			fields[models.ColumnRecordHistory] = prependHistory([]string{line}, stringValue(rec.Fields[models.ColumnRecordHistory]))
		}
		patches = append(patches, grist.RecordUpdate{ID: rec.ID, Fields: fields})
	}
	return patches
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return strings.EqualFold(strings.TrimSpace(t), "true")
	}
	return false
}
