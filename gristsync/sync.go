package gristsync

import (
	"context"
	"fmt"
	"time"

	"github.com/mmdatafocus/payroll_sync/config"
)

// Syncer runs the per-table reconcile flows against one Grist document.
type Syncer struct {
	cfg   *config.Config
	store Store
	opts  Options
	clock func() time.Time
}

// Options are the per-run switches, read once at startup.
type Options struct {
	DryRun     bool
	MarkAsLeft bool
}

func NewSyncer(cfg *config.Config, store Store, opts Options) *Syncer {
	return &Syncer{cfg: cfg, store: store, opts: opts, clock: time.Now}
}

// tableSchema fetches the table's column ids as a set. Payloads are
// filtered against it so a renamed column degrades to a dropped field
// instead of a failed batch.
func (s *Syncer) tableSchema(ctx context.Context, table string) (map[string]bool, error) {
	cols, err := s.store.Columns(ctx, table)
	if err != nil {
		config.LogError(config.GetLogger(), "sync.go", "tableSchema", "fetch table columns", table, err)
		return nil, fmt.Errorf("fetch columns for %s: %w", table, err)
	}
	schema := make(map[string]bool, len(cols))
	for _, col := range cols {
		schema[col] = true
	}
	return schema, nil
}
