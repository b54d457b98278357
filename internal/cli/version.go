package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/healthtrack/pkg/healthtrack"
)

const modulePath = "github.com/mesh-intelligence/healthtrack"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the healthtrack version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "healthtrack v%s\nmodule: %s\n", healthtrack.Version, modulePath)
			return nil
		},
	}
}
