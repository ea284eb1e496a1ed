package gristsync

import (
	"context"

	"github.com/mmdatafocus/payroll_sync/config"
	"github.com/mmdatafocus/payroll_sync/models"
)

// SyncOvertime bulk-loads the month's overtime dump. Append-only per
// period, same as advances.
func (s *Syncer) SyncOvertime(ctx context.Context, details []models.OvertimeDetail, monthYear string) (Totals, error) {
	logger := config.GetLogger()

	schema, err := s.tableSchema(ctx, s.cfg.OvertimeTable)
	if err != nil {
		return Totals{}, err
	}

	existing, err := s.store.Records(ctx, s.cfg.OvertimeTable, map[string][]string{models.ColumnMonthYear: {monthYear}})
	if err != nil {
		config.LogError(logger, "overtime.go", "SyncOvertime", "fetch overtime records", s.cfg.OvertimeTable, err)
		return Totals{}, err
	}

	rows := make([]Row, 0, len(details))
	for _, d := range details {
		rows = append(rows, Row{Key: d.SFNo, Fields: d.Fields()})
	}

	spec := TableSpec{
		Table:        s.cfg.OvertimeTable,
		KeyColumn:    models.ColumnSFNo,
		PeriodColumn: models.ColumnMonthYear,
		Guard:        GuardWholePeriod,
	}

	plan, err := Reconcile(spec, existing, rows, monthYear, s.clock(), schema)
	if err != nil {
		return Totals{}, err
	}
	return s.apply(ctx, s.cfg.OvertimeTable, plan), nil
}
