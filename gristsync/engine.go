package gristsync

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/mmdatafocus/payroll_sync/config"
	"github.com/mmdatafocus/payroll_sync/grist"
	"github.com/mmdatafocus/payroll_sync/models"
)

// Reconcile classifies incoming rows against the stored snapshot and
// builds the write plan. schema holds the table's fetched column ids;
// payload fields outside it are dropped.
func Reconcile(spec TableSpec, existing []grist.Record, rows []Row, monthYear string, now time.Time, schema map[string]bool) (Plan, error) {
	logger := config.GetLogger()
	plan := Plan{}

	if spec.Guard == GuardWholePeriod && len(existing) > 0 {
		return plan, ErrPeriodAlreadyLoaded
	}

	keyFor := spec.KeyFromRecord
	if keyFor == nil {
		keyFor = func(rec grist.Record) string {
			return strings.TrimSpace(stringValue(rec.Fields[spec.KeyColumn]))
		}
	}

	stored := make(map[string]grist.Record, len(existing))
	for _, rec := range existing {
		if key := keyFor(rec); key != "" {
			stored[key] = rec
		}
	}

	for _, row := range cleanRows(spec, rows, &plan, logger) {
		rec, exists := stored[row.Key]
		if !exists {
			plan.Inserts = append(plan.Inserts, insertFields(spec, row, monthYear, now, schema))
			if rate, ok := incomingRate(spec, row); ok {
				plan.RateLogs = append(plan.RateLogs, models.RateLogEntry{
					SFNo:      row.Key,
					Rate:      rate,
					Remarks:   models.RemarkInitialRate,
					MonthYear: monthYear,
				})
			}
			continue
		}

		changedCols, patch := diffRow(spec, row, rec, schema, logger)

		if spec.Rate != nil {
			if rate, differs := rateDiff(spec, row, rec, logger); differs {
				changedCols = append(changedCols, spec.Rate.Column)
				plan.RateLogs = append(plan.RateLogs, models.RateLogEntry{
					SFNo:      row.Key,
					Rate:      rate,
					Remarks:   models.RemarkRateChange,
					MonthYear: monthYear,
				})
			}
		}

		if len(changedCols) == 0 {
			continue
		}

		if schema[models.ColumnRecordHistory] {
			lines := make([]string, 0, len(changedCols))
			for _, col := range changedCols {
				lines = append(lines, historyLine(now, monthYear, updatedAction(col, row.Fields[col])))
			}
			patch[models.ColumnRecordHistory] = prependHistory(lines, stringValue(rec.Fields[models.ColumnRecordHistory]))
		}

		// Nothing patchable (rate-only change on a table without a
		// history column) still counts as no write.
		if len(patch) == 0 {
			continue
		}
		plan.Patches = append(plan.Patches, grist.RecordUpdate{ID: rec.ID, Fields: patch})
	}

	return plan, nil
}

// cleanRows drops blank and "nan" keys, then deduplicates keeping the
// last occurrence of each key.
func cleanRows(spec TableSpec, rows []Row, plan *Plan, logger *logrus.Logger) []Row {
	counts := make(map[string]int, len(rows))
	valid := make([]Row, 0, len(rows))
	for _, row := range rows {
		key := strings.TrimSpace(row.Key)
		if key == "" || strings.EqualFold(key, "nan") {
			plan.Skipped++
			config.LogWarn(logger, "engine.go", "cleanRows", "skipping row with blank employee number", logrus.Fields{"table": spec.Table})
			continue
		}
		row.Key = key
		counts[key]++
		valid = append(valid, row)
	}

	seen := make(map[string]int, len(counts))
	out := make([]Row, 0, len(valid))
	for _, row := range valid {
		seen[row.Key]++
		if seen[row.Key] < counts[row.Key] {
			plan.Skipped++
			config.LogWarn(logger, "engine.go", "cleanRows", "duplicate employee number, keeping the last occurrence", logrus.Fields{"table": spec.Table, "key": row.Key})
			continue
		}
		out = append(out, row)
	}
	return out
}

func insertFields(spec TableSpec, row Row, monthYear string, now time.Time, schema map[string]bool) grist.Fields {
	fields := make(grist.Fields, len(row.Fields)+1)
	for col, val := range row.Fields {
		if spec.Rate != nil && col == spec.Rate.Column {
			continue
		}
		if !schema[col] {
			continue
		}
		fields[col] = val
	}
	if schema[models.ColumnRecordHistory] {
		fields[models.ColumnRecordHistory] = historyLine(now, monthYear, insertedAction)
	}
	return fields
}

func diffRow(spec TableSpec, row Row, rec grist.Record, schema map[string]bool, logger *logrus.Logger) ([]string, grist.Fields) {
	var changed []string
	patch := grist.Fields{}
	for _, fs := range spec.Fields {
		if fs.InsertOnly {
			continue
		}
		incoming, present := row.Fields[fs.Column]
		if !present {
			continue
		}
		isChanged, ok := fieldChanged(fs.Kind, incoming, rec.Fields[fs.Column])
		if !ok {
			config.LogWarn(logger, "engine.go", "diffRow", "field not comparable, leaving unchanged", logrus.Fields{
				"table":  spec.Table,
				"key":    row.Key,
				"column": fs.Column,
			})
			continue
		}
		if !isChanged {
			continue
		}
		changed = append(changed, fs.Column)
		if schema[fs.Column] {
			patch[fs.Column] = incoming
		}
	}
	return changed, patch
}

func incomingRate(spec TableSpec, row Row) (decimal.Decimal, bool) {
	if spec.Rate == nil {
		return decimal.Zero, false
	}
	v := row.Fields[spec.Rate.Column]
	if isAbsent(v) {
		return decimal.Zero, false
	}
	return decimalValue(v)
}

// rateDiff applies the rate policy to a matched row.
func rateDiff(spec TableSpec, row Row, rec grist.Record, logger *logrus.Logger) (decimal.Decimal, bool) {
	incoming, incomingOK := incomingRate(spec, row)
	storedRaw := rec.Fields[spec.Rate.Column]

	if !incomingOK {
		if !isAbsent(storedRaw) {
			logger.WithFields(logrus.Fields{
				"module":   "engine.go",
				"funcName": "rateDiff",
				"table":    spec.Table,
				"key":      row.Key,
			}).Info("incoming sheet has no rate for employee, keeping stored rate")
		}
		return decimal.Zero, false
	}

	if isAbsent(storedRaw) {
		return incoming, true
	}

	stored, ok := decimalValue(storedRaw)
	if !ok {
		config.LogWarn(logger, "engine.go", "rateDiff", "stored rate not numeric, skipping rate comparison", logrus.Fields{
			"table": spec.Table,
			"key":   row.Key,
		})
		return decimal.Zero, false
	}
	if incoming.Equal(stored) {
		return decimal.Zero, false
	}
	return incoming, true
}
