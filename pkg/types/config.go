package types

import (
	"errors"
	"time"
)

// Config holds the store location and engine parameters for sqlite.Open.
type Config struct {
	DataDir     string        `json:"data_dir" yaml:"data_dir"`
	DBFile      string        `json:"db_file" yaml:"db_file"`
	BusyTimeout time.Duration `json:"busy_timeout" yaml:"busy_timeout"`

	// SampleData seeds a demo patient and one record per clinical table
	// the first time the schema is created.
	SampleData bool `json:"sample_data" yaml:"sample_data"`
}

// Defaults applied by WithDefaults.
const (
	DefaultDBFile      = "healthtrack.db"
	DefaultBusyTimeout = 5 * time.Second
)

// Config validation errors.
var (
	ErrDataDirEmpty       = errors.New("data directory must not be empty")
	ErrDBFileInvalid      = errors.New("database file must be a bare file name")
	ErrBusyTimeoutInvalid = errors.New("busy timeout must not be negative")
)

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c Config) WithDefaults() Config {
	if c.DBFile == "" {
		c.DBFile = DefaultDBFile
	}
	if c.BusyTimeout == 0 {
		c.BusyTimeout = DefaultBusyTimeout
	}
	return c
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	for _, r := range c.DBFile {
		if r == '/' || r == '\\' {
			return ErrDBFileInvalid
		}
	}
	if c.DBFile == "." || c.DBFile == ".." {
		return ErrDBFileInvalid
	}
	if c.BusyTimeout < 0 {
		return ErrBusyTimeoutInvalid
	}
	return nil
}
