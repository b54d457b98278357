package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/healthtrack/pkg/types"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the database location, schema version and row counts",
		Args:  cobra.NoArgs,
		RunE:  runStatus,
	}
}

func runStatus(cmd *cobra.Command, args []string) error {
	app, _, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	counts, err := app.Counts(cmd.Context())
	if err != nil {
		return sysError(fmt.Errorf("count rows: %w", err))
	}

	out := cmd.OutOrStdout()
	if flags.jsonMode {
		return writeJSON(out, map[string]any{
			"database":       app.Path(),
			"schema_version": app.SchemaVersion(),
			"tables":         counts,
		})
	}
	fmt.Fprintf(out, "database: %s\nschema version: %d\n\n", app.Path(), app.SchemaVersion())
	writeCounts(out, types.TableNames, counts)
	return nil
}
