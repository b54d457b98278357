package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var errRowNotFound = errors.New("row not found")

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <table> <id>",
		Short: "Show one row of a table",
		Args:  cobra.ExactArgs(2),
		RunE:  runGet,
	}
}

func runGet(cmd *cobra.Command, args []string) error {
	table, err := tableArg(args[0])
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return userError(fmt.Errorf("invalid id %q: %w", args[1], err))
	}

	app, _, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	row, err := app.Row(cmd.Context(), table, id)
	if err != nil {
		return sysError(fmt.Errorf("get %s %d: %w", table, id, err))
	}
	if row == nil {
		return userError(fmt.Errorf("%w: %s %d", errRowNotFound, table, id))
	}

	if flags.jsonMode {
		return writeJSON(cmd.OutOrStdout(), row)
	}
	writeRow(cmd.OutOrStdout(), row)
	return nil
}
