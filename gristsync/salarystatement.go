package gristsync

import (
	"context"

	"github.com/mmdatafocus/payroll_sync/config"
	"github.com/mmdatafocus/payroll_sync/models"
)

// SyncSalaryStatement bulk-loads the month's computed salary dump.
// Append-only per period.
func (s *Syncer) SyncSalaryStatement(ctx context.Context, details []models.SalaryStatementDetail, monthYear string) (Totals, error) {
	logger := config.GetLogger()

	schema, err := s.tableSchema(ctx, s.cfg.SalaryStatementTable)
	if err != nil {
		return Totals{}, err
	}

	existing, err := s.store.Records(ctx, s.cfg.SalaryStatementTable, map[string][]string{models.ColumnMonthYear: {monthYear}})
	if err != nil {
		config.LogError(logger, "salarystatement.go", "SyncSalaryStatement", "fetch salary statement records", s.cfg.SalaryStatementTable, err)
		return Totals{}, err
	}

	rows := make([]Row, 0, len(details))
	for _, d := range details {
		rows = append(rows, Row{Key: d.SFNo, Fields: d.Fields()})
	}

	spec := TableSpec{
		Table:        s.cfg.SalaryStatementTable,
		KeyColumn:    models.ColumnSFNo,
		PeriodColumn: models.ColumnMonthYear,
		Guard:        GuardWholePeriod,
	}

	plan, err := Reconcile(spec, existing, rows, monthYear, s.clock(), schema)
	if err != nil {
		return Totals{}, err
	}
	return s.apply(ctx, s.cfg.SalaryStatementTable, plan), nil
}
