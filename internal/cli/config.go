package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/healthtrack/internal/paths"
	"github.com/mesh-intelligence/healthtrack/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	envPrefix = "HEALTHTRACK"

	cfgKeyDataDir     = "data_dir"
	cfgKeyDBFile      = "db_file"
	cfgKeyBusyTimeout = "busy_timeout"
	cfgKeySampleData  = "sample_data"
	cfgKeyLogLevel    = "log_level"

	defaultLogLevel = "warn"
)

// configFile holds the structure written to config.yaml by init.
type configFile struct {
	DataDir     string `yaml:"data_dir,omitempty"`
	DBFile      string `yaml:"db_file"`
	BusyTimeout string `yaml:"busy_timeout"`
	SampleData  bool   `yaml:"sample_data"`
	LogLevel    string `yaml:"log_level"`
}

// settings is the resolved configuration of one command invocation.
type settings struct {
	configDir string
	store     types.Config
	logLevel  slog.Level
}

// loadSettings resolves the configuration directory, reads config.yaml from
// it and resolves the data directory. A missing config.yaml is not an error.
// data_dir is read from the file only; the other keys may also be set with
// HEALTHTRACK_<KEY> environment variables.
func loadSettings() (*settings, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyDBFile, types.DefaultDBFile)
	v.SetDefault(cfgKeyBusyTimeout, types.DefaultBusyTimeout)
	v.SetDefault(cfgKeySampleData, false)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetEnvPrefix(envPrefix)
	for _, key := range []string{cfgKeyDBFile, cfgKeyBusyTimeout, cfgKeySampleData, cfgKeyLogLevel} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	dataDir, err := paths.ResolveDataDir(flags.dataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString(cfgKeyLogLevel))); err != nil {
		return nil, fmt.Errorf("parse %s: %w", cfgKeyLogLevel, err)
	}

	cfg := types.Config{
		DataDir:     dataDir,
		DBFile:      v.GetString(cfgKeyDBFile),
		BusyTimeout: v.GetDuration(cfgKeyBusyTimeout),
		SampleData:  v.GetBool(cfgKeySampleData),
	}.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &settings{configDir: configDir, store: cfg, logLevel: level}, nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. It reports whether the file was written.
func writeConfigIfMissing(configDir, dataDir string) (bool, error) {
	path := filepath.Join(configDir, configFileExt)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(&configFile{
		DataDir:     dataDir,
		DBFile:      types.DefaultDBFile,
		BusyTimeout: types.DefaultBusyTimeout.String(),
		LogLevel:    defaultLogLevel,
	})
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}
