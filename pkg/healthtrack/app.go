// Package healthtrack is the domain layer of the patient health tracker.
// App wraps the embedded store and exposes one set of validated create,
// read, update and delete functions per entity.
//
// Lookups that find nothing return nil (or false, or an empty slice) and no
// error. A create whose parent row does not exist returns nil, nil and
// inserts nothing. Validation failures return the sentinel errors of
// package types, wrapped with the offending column.
package healthtrack

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mesh-intelligence/healthtrack/internal/sqlite"
	"github.com/mesh-intelligence/healthtrack/pkg/types"
)

// Version is the application version.
var Version = "0.1.0"

// App is the process-wide entry point. It is safe for concurrent use.
type App struct {
	store  *sqlite.Store
	m      *sqlite.Models
	logger *slog.Logger
	now    func() time.Time
}

type options struct {
	logger     *slog.Logger
	now        func() time.Time
	registerer prometheus.Registerer
}

// Option configures Open.
type Option func(*options)

// WithLogger sets the logger for the app and its store.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithClock sets the clock used to stamp created_date and updated_date.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithRegisterer registers store operation metrics with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}

// Open opens the store described by cfg, migrating it if needed.
func Open(ctx context.Context, cfg types.Config, opts ...Option) (*App, error) {
	o := options{logger: slog.Default(), now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	storeOpts := []sqlite.Option{sqlite.WithLogger(o.logger)}
	if o.registerer != nil {
		obs, err := sqlite.NewPrometheusObserver(o.registerer)
		if err != nil {
			return nil, err
		}
		storeOpts = append(storeOpts, sqlite.WithObserver(obs))
	}

	store, err := sqlite.Open(ctx, cfg, storeOpts...)
	if err != nil {
		return nil, err
	}
	return &App{
		store:  store,
		m:      store.Models(),
		logger: o.logger,
		now:    o.now,
	}, nil
}

// Close releases the store. Closing twice is a no-op.
func (a *App) Close() error {
	return a.store.Close()
}

// Path returns the database file path.
func (a *App) Path() string { return a.store.Path() }

// SchemaVersion returns the schema version of the open database.
func (a *App) SchemaVersion() int { return a.store.SchemaVersion() }

// Export writes every table to dir as JSONL and returns rows per table.
func (a *App) Export(ctx context.Context, dir string) (map[string]int, error) {
	return a.store.Export(ctx, dir)
}

// Import loads the JSONL files in dir in one transaction and returns rows
// per table.
func (a *App) Import(ctx context.Context, dir string) (map[string]int, error) {
	return a.store.Import(ctx, dir)
}

// Counts returns the row count of every table.
func (a *App) Counts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, t := range a.store.Tables() {
		n, err := t.Count(ctx)
		if err != nil {
			return nil, err
		}
		counts[t.Name()] = n
	}
	return counts, nil
}

// Rows returns every row of the named table as a column map.
func (a *App) Rows(ctx context.Context, table string) ([]map[string]any, error) {
	t, err := a.store.Table(table)
	if err != nil {
		return nil, err
	}
	return t.Rows(ctx)
}

// Row returns one row of the named table as a column map, or nil.
func (a *App) Row(ctx context.Context, table string, id int64) (map[string]any, error) {
	t, err := a.store.Table(table)
	if err != nil {
		return nil, err
	}
	return t.Row(ctx, id)
}

func (a *App) stamp() types.Timestamp {
	return types.NewTimestamp(a.now())
}
