package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mmdatafocus/payroll_sync/config"
	"github.com/mmdatafocus/payroll_sync/grist"
	"github.com/mmdatafocus/payroll_sync/models"
)

// Dumps the employee roster to a tab-separated file for offline checks.
func main() {
	out := flag.String("out", "grist_extracted_data.txt", "Output file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	client, err := grist.NewClient(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	records, err := client.Records(context.Background(), cfg.MasterTable, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	var b strings.Builder
	b.WriteString("SFNo\tDOJ\tCreated_at\tLast_updated_at\n")
	for _, rec := range records {
		fmt.Fprintf(&b, "%s\t%s\t%s\t%s\n",
			text(rec.Fields[models.ColumnSFNo]),
			timestamp(rec.Fields["DOJ"]),
			timestamp(rec.Fields["Created_at"]),
			timestamp(rec.Fields["Last_updated_at"]),
		)
	}
	if _, err := f.WriteString(b.String()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d records to %s\n", len(records), *out)
}

func text(v any) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%v", v))
}

// timestamp renders a Grist date cell. The API returns dates as Unix
// seconds; absent cells render blank.
func timestamp(v any) string {
	switch t := v.(type) {
	case float64:
		return time.Unix(int64(t), 0).UTC().Format("2006-01-02 15:04:05")
	case int64:
		return time.Unix(t, 0).UTC().Format("2006-01-02 15:04:05")
	case string:
		return strings.TrimSpace(t)
	}
	return ""
}
