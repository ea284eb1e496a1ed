package gristsync

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mmdatafocus/payroll_sync/config"
	"github.com/mmdatafocus/payroll_sync/utils"
	"github.com/mmdatafocus/payroll_sync/workbook"
)

// Table identifiers accepted by the CLI.
const (
	TableMaster          = "master"
	TableHourClock       = "hourclock"
	TableAdvances        = "advances"
	TableOvertime        = "ot"
	TablePFESIC          = "pfesic"
	TableSalaryStatement = "ss"
)

// DefaultTableOrder lists every flow in load order. The roster goes first
// so reference columns in later tables can resolve.
var DefaultTableOrder = []string{
	TableMaster,
	TableHourClock,
	TableAdvances,
	TableOvertime,
	TablePFESIC,
	TableSalaryStatement,
}

// TableReport is one table's outcome within a file run.
type TableReport struct {
	Table  string
	Totals Totals
	Err    error
}

// FileReport collects the outcomes of one workbook run.
type FileReport struct {
	File      string
	MonthYear string
	RunID     string
	Tables    []TableReport
}

// ProcessFile derives the reporting month from the workbook's filename and
// runs the requested table flows against it. A failed table does not stop
// the remaining ones.
func (s *Syncer) ProcessFile(ctx context.Context, path string, tables []string) (FileReport, error) {
	logger := config.GetLogger()
	report := FileReport{File: path, RunID: uuid.NewString()}

	monthYear, err := utils.MonthYearFromFilename(filepath.Base(path))
	if err != nil {
		config.LogWarn(logger, "run.go", "ProcessFile", "skipping file without a date token in its name", logrus.Fields{"file": path})
		return report, err
	}
	report.MonthYear = monthYear
	ctx = utils.SetRunIdInContext(ctx, report.RunID)

	logger.WithFields(logrus.Fields{
		"runId":     report.RunID,
		"file":      path,
		"monthYear": monthYear,
	}).Info("processing workbook")

	for _, table := range tables {
		totals, err := s.syncTable(ctx, table, path, monthYear)
		if err != nil {
			config.LogError(logger, "run.go", "ProcessFile", "table sync failed", logrus.Fields{"runId": report.RunID, "table": table}, err)
		}
		report.Tables = append(report.Tables, TableReport{Table: table, Totals: totals, Err: err})
	}
	return report, nil
}

func (s *Syncer) syncTable(ctx context.Context, table string, path string, monthYear string) (Totals, error) {
	switch table {
	case TableMaster:
		employees, err := workbook.ReadMaster(path, s.cfg.MasterSheet)
		if err != nil {
			return Totals{}, err
		}
		return s.SyncMaster(ctx, employees, monthYear)
	case TableHourClock:
		details, err := workbook.ReadHourClock(path, s.cfg.HourClockSheet, monthYear)
		if err != nil {
			return Totals{}, err
		}
		return s.SyncHourClock(ctx, details, monthYear)
	case TableAdvances:
		details, err := workbook.ReadAdvances(path, s.cfg.AdvancesSheet, monthYear)
		if err != nil {
			return Totals{}, err
		}
		return s.SyncAdvances(ctx, details, monthYear)
	case TableOvertime:
		details, err := workbook.ReadOvertime(path, s.cfg.OvertimeSheet, monthYear)
		if err != nil {
			return Totals{}, err
		}
		return s.SyncOvertime(ctx, details, monthYear)
	case TablePFESIC:
		current, err := workbook.ReadPFESIC(path, s.cfg.PFESICSheet, monthYear)
		if err != nil {
			return Totals{}, err
		}
		newJoiners, err := workbook.ReadPFESIC(path, s.cfg.NewPFESICSheet, monthYear)
		if err != nil {
			return Totals{}, err
		}
		return s.SyncPFESIC(ctx, current, newJoiners, monthYear)
	case TableSalaryStatement:
		details, err := workbook.ReadSalaryStatement(path, s.cfg.SalaryStatementSheet, monthYear)
		if err != nil {
			return Totals{}, err
		}
		return s.SyncSalaryStatement(ctx, details, monthYear)
	}
	return Totals{}, fmt.Errorf("unknown table %q", table)
}
