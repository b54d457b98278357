package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <table>",
		Short: "List every row of a table",
		Long:  "List every row of a table ordered by id. Table names are case-insensitive.",
		Args:  cobra.ExactArgs(1),
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	table, err := tableArg(args[0])
	if err != nil {
		return err
	}

	app, _, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	rows, err := app.Rows(cmd.Context(), table)
	if err != nil {
		return sysError(fmt.Errorf("list %s: %w", table, err))
	}

	out := cmd.OutOrStdout()
	if flags.jsonMode {
		return writeJSON(out, rows)
	}
	for i, row := range rows {
		if i > 0 {
			fmt.Fprintln(out)
		}
		writeRow(out, row)
	}
	fmt.Fprintf(out, "(%d rows)\n", len(rows))
	return nil
}
