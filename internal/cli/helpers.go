package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/healthtrack/internal/sqlite"
	"github.com/mesh-intelligence/healthtrack/pkg/healthtrack"
	"github.com/mesh-intelligence/healthtrack/pkg/types"
)

// validTableNamesStr is a comma-separated list of valid table names for error output.
var validTableNamesStr = strings.Join(types.TableNames, ", ")

// openApp loads the settings and opens the store. The caller must close the
// returned app.
func openApp(cmd *cobra.Command) (*healthtrack.App, *settings, error) {
	s, err := loadSettings()
	if err != nil {
		return nil, nil, userError(err)
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: s.logLevel}))

	app, err := healthtrack.Open(cmd.Context(), s.store, healthtrack.WithLogger(logger))
	if err != nil {
		return nil, nil, sysError(fmt.Errorf("open store: %w", err))
	}
	return app, s, nil
}

// tableArg normalizes a table name argument.
func tableArg(name string) (string, error) {
	table := strings.ToUpper(strings.TrimSpace(name))
	for _, t := range types.TableNames {
		if t == table {
			return table, nil
		}
	}
	return "", userError(fmt.Errorf("%w: %q (valid: %s)", types.ErrTableNotFound, name, validTableNamesStr))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(sqlite.Encode(v))
}

// writeRow prints one row as "column: value" lines, id first and the rest
// sorted by name.
func writeRow(w io.Writer, row map[string]any) {
	keys := make([]string, 0, len(row))
	for k := range row {
		if k != "id" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if id, ok := row["id"]; ok {
		fmt.Fprintf(w, "id: %v\n", id)
	}
	for _, k := range keys {
		v := sqlite.Encode(row[k])
		if v == nil {
			v = "null"
		}
		fmt.Fprintf(w, "%s: %v\n", k, v)
	}
}

// writeCounts prints "name count" lines in the given order.
func writeCounts[N int | int64](w io.Writer, order []string, counts map[string]N) {
	for _, name := range order {
		if n, ok := counts[name]; ok {
			fmt.Fprintf(w, "%-30s %d\n", name, n)
		}
	}
}
