package sqlite

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/mesh-intelligence/healthtrack/pkg/types"
)

// Migration is one versioned schema step. Up runs inside the migration
// transaction and must be safe to re-run against a database where it was
// already partly applied.
type Migration struct {
	Version int
	Name    string
	Up      func(ctx context.Context, tx *sqlx.Tx) error
}

// SeedOptions selects which seed data the base schema step loads.
type SeedOptions struct {
	// SampleData adds a demo patient with one record in each clinical table.
	SampleData bool
}

// Migrations returns the ordered schema steps for this build.
//
// Schema versions:
//
//	1 - base schema, reference tracking data, optional sample data
//	2 - indexes on foreign-key columns
func Migrations(opts SeedOptions) []Migration {
	return []Migration{
		{
			Version: 1,
			Name:    "base schema",
			Up: func(ctx context.Context, tx *sqlx.Tx) error {
				if err := execAll(ctx, tx, baseSchemaDDL); err != nil {
					return err
				}
				if err := seedReferenceData(ctx, tx); err != nil {
					return err
				}
				if opts.SampleData {
					return seedSampleData(ctx, tx)
				}
				return nil
			},
		},
		{
			Version: 2,
			Name:    "parent indexes",
			Up: func(ctx context.Context, tx *sqlx.Tx) error {
				return execAll(ctx, tx, parentIndexDDL)
			},
		},
	}
}

func execAll(ctx context.Context, tx *sqlx.Tx, stmts []string) error {
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing %q: %w", firstLine(stmt), err)
		}
	}
	return nil
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}

// validateMigrations checks that versions are positive and strictly
// ascending and that every step has an Up function.
func validateMigrations(steps []Migration) error {
	prev := 0
	for _, m := range steps {
		if m.Version <= prev {
			return fmt.Errorf("%w: version %d after %d", types.ErrBadMigrations, m.Version, prev)
		}
		if m.Up == nil {
			return fmt.Errorf("%w: version %d has no Up", types.ErrBadMigrations, m.Version)
		}
		prev = m.Version
	}
	return nil
}

// SchemaVersion reads the schema version marker. A new database reports 0.
func SchemaVersion(ctx context.Context, db sqlx.QueryerContext) (int, error) {
	var version int
	if err := sqlx.GetContext(ctx, db, &version, "PRAGMA user_version"); err != nil {
		return 0, fmt.Errorf("reading user_version: %w", err)
	}
	return version, nil
}

// Migrate brings db up to the last version in steps. Every pending step
// runs in ascending order inside one transaction, and the version marker
// is written in that same transaction, so a failure leaves both the schema
// and the marker as they were. It returns the versions before and after.
func Migrate(ctx context.Context, db *sqlx.DB, steps []Migration, logger *slog.Logger) (from, to int, err error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := validateMigrations(steps); err != nil {
		return 0, 0, err
	}

	from, err = SchemaVersion(ctx, db)
	if err != nil {
		return 0, 0, err
	}
	target := 0
	if len(steps) > 0 {
		target = steps[len(steps)-1].Version
	}
	if from > target {
		return from, from, fmt.Errorf("%w: database at %d, build supports %d", types.ErrSchemaTooNew, from, target)
	}
	if from == target {
		logger.Debug("schema current", "version", from)
		return from, from, nil
	}

	err = withTx(ctx, db, func(tx *sqlx.Tx) error {
		for _, m := range steps {
			if m.Version <= from {
				continue
			}
			logger.Info("applying migration", "version", m.Version, "name", m.Name)
			if err := m.Up(ctx, tx); err != nil {
				return fmt.Errorf("migration %d (%s): %w", m.Version, m.Name, err)
			}
		}
		// PRAGMA does not accept bound parameters.
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", target)); err != nil {
			return fmt.Errorf("setting user_version: %w", err)
		}
		return nil
	})
	if err != nil {
		return from, from, err
	}
	logger.Info("schema migrated", "from", from, "to", target)
	return from, target, nil
}
