package gristsync

import (
	"context"

	"github.com/mmdatafocus/payroll_sync/config"
	"github.com/mmdatafocus/payroll_sync/models"
)

// SyncAdvances bulk-loads the month's advances and loans. The table is
// append-only per period: any stored record for the month abandons the
// batch. Rows carrying neither an advance nor a loan amount are skipped.
func (s *Syncer) SyncAdvances(ctx context.Context, details []models.AdvanceDetail, monthYear string) (Totals, error) {
	logger := config.GetLogger()

	schema, err := s.tableSchema(ctx, s.cfg.AdvancesTable)
	if err != nil {
		return Totals{}, err
	}

	existing, err := s.store.Records(ctx, s.cfg.AdvancesTable, map[string][]string{models.ColumnMonthYear: {monthYear}})
	if err != nil {
		config.LogError(logger, "advances.go", "SyncAdvances", "fetch advance records", s.cfg.AdvancesTable, err)
		return Totals{}, err
	}

	skippedNoAmount := 0
	rows := make([]Row, 0, len(details))
	for _, d := range details {
		if !d.HasAmount() {
			skippedNoAmount++
			continue
		}
		rows = append(rows, Row{Key: d.SFNo, Fields: d.Fields()})
	}

	spec := TableSpec{
		Table:        s.cfg.AdvancesTable,
		KeyColumn:    models.ColumnSFNo,
		PeriodColumn: models.ColumnMonthYear,
		Guard:        GuardWholePeriod,
	}

	plan, err := Reconcile(spec, existing, rows, monthYear, s.clock(), schema)
	if err != nil {
		return Totals{}, err
	}
	plan.Skipped += skippedNoAmount

	return s.apply(ctx, s.cfg.AdvancesTable, plan), nil
}
