package gristsync

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmdatafocus/payroll_sync/config"
	"github.com/mmdatafocus/payroll_sync/grist"
	"github.com/mmdatafocus/payroll_sync/models"
)

// SyncHourClock reconciles the month's attendance rows. The stored SFNo is
// a reference column returning the master row id, so stored keys resolve
// through the roster.
func (s *Syncer) SyncHourClock(ctx context.Context, details []models.HourClockDetail, monthYear string) (Totals, error) {
	logger := config.GetLogger()

	schema, err := s.tableSchema(ctx, s.cfg.HourClockTable)
	if err != nil {
		return Totals{}, err
	}

	existing, err := s.store.Records(ctx, s.cfg.HourClockTable, map[string][]string{models.ColumnMonthYear: {monthYear}})
	if err != nil {
		config.LogError(logger, "hourclock.go", "SyncHourClock", "fetch attendance records", s.cfg.HourClockTable, err)
		return Totals{}, err
	}

	var sfnoByID map[int64]string
	if len(existing) > 0 {
		sfnoByID, err = s.masterKeysByID(ctx)
		if err != nil {
			return Totals{}, err
		}
	}

	dayColumn := dayColumnResolver(schema)
	rows := make([]Row, 0, len(details))
	for _, d := range details {
		rows = append(rows, Row{Key: d.SFNo, Fields: d.Fields(dayColumn)})
	}

	spec := TableSpec{
		Table:        s.cfg.HourClockTable,
		KeyColumn:    models.ColumnSFNo,
		PeriodColumn: models.ColumnMonthYear,
		Fields:       hourClockFieldSpecs(schema),
		Guard:        GuardNone,
		KeyFromRecord: func(rec grist.Record) string {
			switch v := rec.Fields[models.ColumnSFNo].(type) {
			case float64:
				return sfnoByID[int64(v)]
			case int64:
				return sfnoByID[v]
			}
			return strings.TrimSpace(stringValue(rec.Fields[models.ColumnSFNo]))
		},
	}

	plan, err := Reconcile(spec, existing, rows, monthYear, s.clock(), schema)
	if err != nil {
		return Totals{}, err
	}
	return s.apply(ctx, s.cfg.HourClockTable, plan), nil
}

// dayColumnResolver probes the fetched schema for a day's column id,
// preferring the underscore form over the dash form.
func dayColumnResolver(schema map[string]bool) func(prefix string, day int) (string, bool) {
	return func(prefix string, day int) (string, bool) {
		underscore := fmt.Sprintf("%s_%d", prefix, day)
		if schema[underscore] {
			return underscore, true
		}
		dash := fmt.Sprintf("%s-%d", prefix, day)
		if schema[dash] {
			return dash, true
		}
		return "", false
	}
}

// hourClockFieldSpecs builds the tracked-column list from whichever day
// columns the table actually has.
func hourClockFieldSpecs(schema map[string]bool) []FieldSpec {
	resolve := dayColumnResolver(schema)
	specs := []FieldSpec{{Column: "Sr_No", Kind: KindNumber, InsertOnly: true}}
	for day := 1; day <= 31; day++ {
		if col, ok := resolve("P", day); ok {
			specs = append(specs, FieldSpec{Column: col, Kind: KindNumber})
		}
		if col, ok := resolve("OT", day); ok {
			specs = append(specs, FieldSpec{Column: col, Kind: KindNumber})
		}
	}
	return specs
}

// masterKeysByID maps roster row ids to employee numbers.
func (s *Syncer) masterKeysByID(ctx context.Context) (map[int64]string, error) {
	records, err := s.store.Records(ctx, s.cfg.MasterTable, nil)
	if err != nil {
		config.LogError(config.GetLogger(), "hourclock.go", "masterKeysByID", "fetch employee records", s.cfg.MasterTable, err)
		return nil, err
	}
	keys := make(map[int64]string, len(records))
	for _, rec := range records {
		if sfno := strings.TrimSpace(stringValue(rec.Fields[models.ColumnSFNo])); sfno != "" {
			keys[rec.ID] = sfno
		}
	}
	return keys, nil
}
