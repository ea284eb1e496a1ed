package gristsync

import (
	"context"
	"errors"

	"github.com/mmdatafocus/payroll_sync/grist"
	"github.com/mmdatafocus/payroll_sync/models"
)

// ErrPeriodAlreadyLoaded aborts a guarded table batch whose reporting
// period already has records in Grist.
var ErrPeriodAlreadyLoaded = errors.New("records for this period already exist")

// Store is the slice of the Grist client the sync flows consume.
type Store interface {
	Columns(ctx context.Context, table string) ([]string, error)
	Records(ctx context.Context, table string, filter map[string][]string) ([]grist.Record, error)
	Insert(ctx context.Context, table string, fields []grist.Fields) ([]grist.Record, error)
	Patch(ctx context.Context, table string, updates []grist.RecordUpdate) error
}

type FieldKind int

const (
	KindString FieldKind = iota
	KindNumber
	KindDate
)

// FieldSpec declares one tracked column. InsertOnly columns are written on
// insert but never re-compared or patched.
type FieldSpec struct {
	Column     string
	Kind       FieldKind
	InsertOnly bool
}

type GuardMode int

const (
	// GuardNone reconciles row by row.
	GuardNone GuardMode = iota
	// GuardWholePeriod abandons the whole batch when any record for the
	// incoming period already exists.
	GuardWholePeriod
)

// RatePolicy names the pay-rate column. The stored side is a formula
// column, so a rate difference produces an audit entry and a history line
// but never a direct field write. The policy is asymmetric: an incoming
// rate where none was stored gets an audit entry, a stored rate with no
// incoming value does not.
type RatePolicy struct {
	Column string
}

// TableSpec parameterizes the engine for one table.
type TableSpec struct {
	Table        string
	KeyColumn    string
	PeriodColumn string
	Fields       []FieldSpec
	Guard        GuardMode
	Rate         *RatePolicy

	// KeyFromRecord overrides business-key extraction for stored records.
	// The hour-clock table stores SFNo as a reference id, not a string.
	KeyFromRecord func(grist.Record) string
}

// Row is one incoming sheet row keyed for matching.
type Row struct {
	Key    string
	Fields grist.Fields
}

// Plan is the write set produced by one reconcile pass.
type Plan struct {
	Inserts     []grist.Fields
	Patches     []grist.RecordUpdate
	RateLogs    []models.RateLogEntry
	LeftPatches []grist.RecordUpdate
	Skipped     int
}

// Totals summarizes what a table's batch did.
type Totals struct {
	New        int
	Updated    int
	RateLogged int
	MarkedLeft int
	Skipped    int
}

func (t Totals) add(other Totals) Totals {
	return Totals{
		New:        t.New + other.New,
		Updated:    t.Updated + other.Updated,
		RateLogged: t.RateLogged + other.RateLogged,
		MarkedLeft: t.MarkedLeft + other.MarkedLeft,
		Skipped:    t.Skipped + other.Skipped,
	}
}
