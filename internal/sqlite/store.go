package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/healthtrack/pkg/types"
)

// open tracks the store files held by this process. A file has at most one
// handle at a time.
var (
	openMu    sync.Mutex
	openPaths = make(map[string]bool)
)

// Store is the single handle to one database file. It runs migrations on
// open and exposes the entity mappers.
type Store struct {
	mu      sync.Mutex
	closed  bool
	path    string
	db      *sqlx.DB
	models  *Models
	tables  map[string]Table
	version int
	logger  *slog.Logger
}

type options struct {
	logger     *slog.Logger
	observer   Observer
	migrations []Migration
}

// Option configures Open.
type Option func(*options)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithObserver sets the operation observer used by every mapper.
func WithObserver(obs Observer) Option {
	return func(o *options) { o.observer = obs }
}

// WithMigrations replaces the schema steps. Tests use it to exercise the
// runner with custom steps.
func WithMigrations(steps []Migration) Option {
	return func(o *options) { o.migrations = steps }
}

// dsn builds the modernc connection string with the store pragmas.
func dsn(path string, cfg types.Config) string {
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", cfg.BusyTimeout.Milliseconds()))
	q.Add("_pragma", "journal_mode(WAL)")
	return path + "?" + q.Encode()
}

// Open opens or creates the database described by cfg, migrates it to the
// current schema and binds the entity mappers. Opening a file this process
// already holds fails with types.ErrAlreadyOpen.
func Open(ctx context.Context, cfg types.Config, opts ...Option) (*Store, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := options{logger: slog.Default(), observer: nopObserver{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.migrations == nil {
		o.migrations = Migrations(SeedOptions{SampleData: cfg.SampleData})
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	path, err := filepath.Abs(filepath.Join(cfg.DataDir, cfg.DBFile))
	if err != nil {
		return nil, fmt.Errorf("resolving db path: %w", err)
	}

	openMu.Lock()
	defer openMu.Unlock()
	if openPaths[path] {
		return nil, fmt.Errorf("%w: %s", types.ErrAlreadyOpen, path)
	}

	db, err := sqlx.Open("sqlite", dsn(path, cfg))
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	// One connection serializes statements and keeps the pragmas on every
	// statement's connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to %s: %w", path, err)
	}

	_, version, err := Migrate(ctx, db, o.migrations, o.logger)
	if err != nil {
		db.Close()
		return nil, err
	}

	models, err := NewModels(db, o.observer)
	if err != nil {
		db.Close()
		return nil, err
	}
	tables := make(map[string]Table)
	for _, t := range models.Tables() {
		tables[t.Name()] = t
	}

	openPaths[path] = true
	o.logger.Debug("store opened", "path", path, "schema_version", version)
	return &Store{
		path:    path,
		db:      db,
		models:  models,
		tables:  tables,
		version: version,
		logger:  o.logger,
	}, nil
}

// Close releases the handle. Closing twice is a no-op.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	openMu.Lock()
	delete(openPaths, s.path)
	openMu.Unlock()

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", s.path, err)
	}
	s.logger.Debug("store closed", "path", s.path)
	return nil
}

// Path returns the absolute database file path.
func (s *Store) Path() string { return s.path }

// DB returns the underlying handle.
func (s *Store) DB() *sqlx.DB { return s.db }

// Models returns the entity mappers.
func (s *Store) Models() *Models { return s.models }

// SchemaVersion returns the schema version reached when the store opened.
func (s *Store) SchemaVersion() int { return s.version }

// Table returns the untyped view of the named table.
func (s *Store) Table(name string) (Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, types.ErrStoreClosed
	}
	t, ok := s.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrTableNotFound, name)
	}
	return t, nil
}

// Tables returns the untyped views in foreign-key order.
func (s *Store) Tables() []Table { return s.models.Tables() }
