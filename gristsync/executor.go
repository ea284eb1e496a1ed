package gristsync

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mmdatafocus/payroll_sync/config"
	"github.com/mmdatafocus/payroll_sync/grist"
	"github.com/mmdatafocus/payroll_sync/utils"
)

// apply issues the plan's writes: one bulk insert, one bulk patch, one bulk
// rate-log insert, one bulk left-flag patch. A failed batch is abandoned and
// logged, and the run carries on with the next one.
func (s *Syncer) apply(ctx context.Context, table string, plan Plan) Totals {
	logger := config.GetLogger()
	runId, _ := utils.GetRunIdFromContext(ctx)
	totals := Totals{Skipped: plan.Skipped}

	if len(plan.Inserts) > 0 {
		if s.opts.DryRun {
			s.dryRunReport("insert", table, plan.Inserts)
			totals.New = len(plan.Inserts)
		} else if _, err := s.store.Insert(ctx, table, plan.Inserts); err != nil {
			config.LogError(logger, "executor.go", "apply", "bulk insert failed", logrus.Fields{"runId": runId, "table": table, "count": len(plan.Inserts)}, err)
		} else {
			totals.New = len(plan.Inserts)
		}
	}

	if len(plan.Patches) > 0 {
		if s.opts.DryRun {
			s.dryRunReport("patch", table, plan.Patches)
			totals.Updated = len(plan.Patches)
		} else if err := s.store.Patch(ctx, table, plan.Patches); err != nil {
			config.LogError(logger, "executor.go", "apply", "bulk patch failed", logrus.Fields{"runId": runId, "table": table, "count": len(plan.Patches)}, err)
		} else {
			totals.Updated = len(plan.Patches)
		}
	}

	if len(plan.RateLogs) > 0 {
		fields := make([]grist.Fields, 0, len(plan.RateLogs))
		for _, entry := range plan.RateLogs {
			fields = append(fields, entry.Fields())
		}
		if s.opts.DryRun {
			s.dryRunReport("rate log insert", s.cfg.RateLogTable, fields)
			totals.RateLogged = len(fields)
		} else if _, err := s.store.Insert(ctx, s.cfg.RateLogTable, fields); err != nil {
			config.LogError(logger, "executor.go", "apply", "rate log insert failed", logrus.Fields{"runId": runId, "table": s.cfg.RateLogTable, "count": len(fields)}, err)
		} else {
			totals.RateLogged = len(fields)
		}
	}

	if len(plan.LeftPatches) > 0 {
		if s.opts.DryRun {
			s.dryRunReport("left-flag patch", table, plan.LeftPatches)
			totals.MarkedLeft = len(plan.LeftPatches)
		} else if err := s.store.Patch(ctx, table, plan.LeftPatches); err != nil {
			config.LogError(logger, "executor.go", "apply", "left-flag patch failed", logrus.Fields{"runId": runId, "table": table, "count": len(plan.LeftPatches)}, err)
		} else {
			totals.MarkedLeft = len(plan.LeftPatches)
		}
	}

	return totals
}

// dryRunReport prints the payload a batch would have sent.
func (s *Syncer) dryRunReport(kind string, table string, payload any) {
	encoded, err := utils.MarshalToJSON(payload)
	if err != nil {
		config.LogError(config.GetLogger(), "executor.go", "dryRunReport", "marshal payload", table, err)
		return
	}
	fmt.Printf("[dry-run] %s %s: %s\n", table, kind, encoded)
}
