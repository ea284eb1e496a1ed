package gristsync

import (
	"context"

	"github.com/mmdatafocus/payroll_sync/config"
	"github.com/mmdatafocus/payroll_sync/models"
)

// SyncPFESIC bulk-loads the month's PF/ESIC dump into the paired tables,
// current employees first, then new joiners. The period guard consults the
// first table only: the pair is loaded together, so one check covers both.
func (s *Syncer) SyncPFESIC(ctx context.Context, current []models.PFESICDetail, newJoiners []models.PFESICDetail, monthYear string) (Totals, error) {
	logger := config.GetLogger()

	schema, err := s.tableSchema(ctx, s.cfg.PFESICTable)
	if err != nil {
		return Totals{}, err
	}

	existing, err := s.store.Records(ctx, s.cfg.PFESICTable, map[string][]string{models.ColumnMonthYear: {monthYear}})
	if err != nil {
		config.LogError(logger, "pfesic.go", "SyncPFESIC", "fetch PF/ESIC records", s.cfg.PFESICTable, err)
		return Totals{}, err
	}

	spec := TableSpec{
		Table:        s.cfg.PFESICTable,
		KeyColumn:    models.ColumnSFNo,
		PeriodColumn: models.ColumnMonthYear,
		Guard:        GuardWholePeriod,
	}

	plan, err := Reconcile(spec, existing, pfesicRows(current), monthYear, s.clock(), schema)
	if err != nil {
		return Totals{}, err
	}
	totals := s.apply(ctx, s.cfg.PFESICTable, plan)

	newSchema, err := s.tableSchema(ctx, s.cfg.NewPFESICTable)
	if err != nil {
		return totals, err
	}
	newSpec := TableSpec{
		Table:        s.cfg.NewPFESICTable,
		KeyColumn:    models.ColumnSFNo,
		PeriodColumn: models.ColumnMonthYear,
		Guard:        GuardNone,
	}
	newPlan, err := Reconcile(newSpec, nil, pfesicRows(newJoiners), monthYear, s.clock(), newSchema)
	if err != nil {
		return totals, err
	}
	return totals.add(s.apply(ctx, s.cfg.NewPFESICTable, newPlan)), nil
}

func pfesicRows(details []models.PFESICDetail) []Row {
	rows := make([]Row, 0, len(details))
	for _, d := range details {
		rows = append(rows, Row{Key: d.SFNo, Fields: d.Fields()})
	}
	return rows
}
