package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/healthtrack/internal/paths"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration file and the database",
		Long: "Write a default config.yaml to the configuration directory if none exists,\n" +
			"then create or migrate the database in the data directory.",
		Args: cobra.NoArgs,
		RunE: runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	dataDir := flags.dataDir
	if dataDir != "" {
		if dataDir, err = filepath.Abs(dataDir); err != nil {
			return sysError(fmt.Errorf("resolve data dir: %w", err))
		}
	}
	wrote, err := writeConfigIfMissing(configDir, dataDir)
	if err != nil {
		return sysError(err)
	}

	app, _, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	out := cmd.OutOrStdout()
	if flags.jsonMode {
		return writeJSON(out, map[string]any{
			"config_dir":     configDir,
			"config_written": wrote,
			"database":       app.Path(),
			"schema_version": app.SchemaVersion(),
		})
	}
	if wrote {
		fmt.Fprintf(out, "wrote %s/%s\n", configDir, configFileExt)
	}
	fmt.Fprintf(out, "database %s at schema version %d\n", app.Path(), app.SchemaVersion())
	return nil
}
