package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/mmdatafocus/payroll_sync/config"
	"github.com/mmdatafocus/payroll_sync/grist"
	"github.com/mmdatafocus/payroll_sync/utils"
)

// Dumps one Grist table's records as indented JSON, to stdout or a file.
// Handy when checking what a sync actually wrote.
func main() {
	table := flag.String("table", "", "Required: Grist table id")
	out := flag.String("out", "", "Write to a file instead of stdout")
	flag.Parse()

	if *table == "" {
		fmt.Fprintln(os.Stderr, "-table is required")
		os.Exit(1)
	}

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

	records, err := client.Records(context.Background(), *table, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *out != "" {
		if err := utils.WriteJSONFile(*out, records); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %d records to %s\n", len(records), *out)
		return
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
