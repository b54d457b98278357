package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/healthtrack/pkg/types"
)

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <dir>",
		Short: "Write every table to <dir> as JSONL",
		Long:  "Write every table to <dir>/<TABLE>.jsonl, one row per line, timestamps in canonical form.",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <dir>",
		Short: "Load the JSONL files in <dir> into the database",
		Long: "Load <dir>/<TABLE>.jsonl for every table present, in foreign-key order and in one\n" +
			"transaction. Rows are upserted by id; a malformed file leaves the database unchanged.",
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}
}

func runExport(cmd *cobra.Command, args []string) error {
	app, _, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	counts, err := app.Export(cmd.Context(), args[0])
	if err != nil {
		return sysError(fmt.Errorf("export: %w", err))
	}
	return reportSnapshot(cmd, "exported", args[0], counts)
}

func runImport(cmd *cobra.Command, args []string) error {
	app, _, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	counts, err := app.Import(cmd.Context(), args[0])
	if err != nil {
		return userError(fmt.Errorf("import: %w", err))
	}
	return reportSnapshot(cmd, "imported", args[0], counts)
}

func reportSnapshot(cmd *cobra.Command, verb, dir string, counts map[string]int) error {
	out := cmd.OutOrStdout()
	if flags.jsonMode {
		return writeJSON(out, map[string]any{"dir": dir, "tables": counts})
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	fmt.Fprintf(out, "%s %d rows (%s)\n", verb, total, dir)
	writeCounts(out, types.TableNames, counts)
	return nil
}
