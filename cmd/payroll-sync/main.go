package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mmdatafocus/payroll_sync/config"
	"github.com/mmdatafocus/payroll_sync/grist"
	"github.com/mmdatafocus/payroll_sync/gristsync"
	"github.com/mmdatafocus/payroll_sync/utils"
)

// Loads monthly wage workbooks into the payroll Grist document. Each
// workbook's reporting month comes from the date token in its filename.
func main() {
	dir := flag.String("dir", "", "Directory of wage workbooks (defaults to EXCEL_FILES_DIR)")
	file := flag.String("file", "", "Process a single workbook instead of a directory")
	tables := flag.String("tables", strings.Join(gristsync.DefaultTableOrder, ","), "Comma-separated table flows to run")
	dryRun := flag.Bool("dry-run", false, "Build write plans and print them without writing")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	if *dir == "" {
		*dir = cfg.ExcelDir
	}

	client, err := grist.NewClient(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	selected, err := selectTables(*tables)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	files, err := workbookFiles(*dir, *file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	syncer := gristsync.NewSyncer(cfg, client, gristsync.Options{
		DryRun:     *dryRun,
		MarkAsLeft: config.MarkAsLeft(),
	})

	ctx := context.Background()
	for _, path := range files {
		report, err := syncer.ProcessFile(ctx, path, selected)
		if err != nil {
			fmt.Printf("%s skipped: %v\n", path, err)
			continue
		}
		printReport(report)
	}
}

// selectTables parses the -tables flag and returns the selection in the
// fixed load order.
func selectTables(csv string) ([]string, error) {
	known := make(map[string]bool, len(gristsync.DefaultTableOrder))
	for _, t := range gristsync.DefaultTableOrder {
		known[t] = true
	}

	var picked []string
	for _, part := range strings.Split(csv, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		if !known[name] {
			return nil, fmt.Errorf("unknown table %q (valid: %s)", name, strings.Join(gristsync.DefaultTableOrder, ", "))
		}
		picked = append(picked, name)
	}
	picked = utils.UniqueSlice(picked)
	if len(picked) == 0 {
		return nil, errors.New("no tables selected")
	}

	ordered := make([]string, 0, len(picked))
	for _, t := range gristsync.DefaultTableOrder {
		for _, sel := range picked {
			if sel == t {
				ordered = append(ordered, t)
			}
		}
	}
	return ordered, nil
}

func workbookFiles(dir string, single string) ([]string, error) {
	if single != "" {
		return []string{single}, nil
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*.xlsx"))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .xlsx files in %s", dir)
	}
	sort.Strings(matches)
	return matches, nil
}

// printReport prints per-table totals. An already-loaded period shows as
// skipped rather than failed.
func printReport(report gristsync.FileReport) {
	fmt.Printf("%s (%s)\n", report.File, report.MonthYear)
	for _, t := range report.Tables {
		switch {
		case t.Err == nil:
			fmt.Printf("  %-10s new=%d updated=%d rateLogs=%d left=%d skipped=%d\n",
				t.Table, t.Totals.New, t.Totals.Updated, t.Totals.RateLogged, t.Totals.MarkedLeft, t.Totals.Skipped)
		case errors.Is(t.Err, gristsync.ErrPeriodAlreadyLoaded):
			fmt.Printf("  %-10s skipped: %v\n", t.Table, t.Err)
		default:
			fmt.Printf("  %-10s failed: %v\n", t.Table, t.Err)
		}
	}
}
