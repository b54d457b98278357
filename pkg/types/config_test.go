package types

import (
	"errors"
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty data dir returns ErrDataDirEmpty",
			config:  Config{DataDir: ""},
			wantErr: ErrDataDirEmpty,
		},
		{
			name:    "db file with a path separator is rejected",
			config:  Config{DataDir: "/tmp/data", DBFile: "sub/health.db"},
			wantErr: ErrDBFileInvalid,
		},
		{
			name:    "dot db file is rejected",
			config:  Config{DataDir: "/tmp/data", DBFile: ".."},
			wantErr: ErrDBFileInvalid,
		},
		{
			name:    "negative busy timeout is rejected",
			config:  Config{DataDir: "/tmp/data", BusyTimeout: -time.Second},
			wantErr: ErrBusyTimeoutInvalid,
		},
		{
			name:    "minimal config is valid",
			config:  Config{DataDir: "/tmp/data"},
			wantErr: nil,
		},
		{
			name:    "full config is valid",
			config:  Config{DataDir: "/tmp/data", DBFile: "h.db", BusyTimeout: time.Second, SampleData: true},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigWithDefaults(t *testing.T) {
	got := Config{DataDir: "/tmp/data"}.WithDefaults()
	if got.DBFile != DefaultDBFile {
		t.Errorf("DBFile = %q, want %q", got.DBFile, DefaultDBFile)
	}
	if got.BusyTimeout != DefaultBusyTimeout {
		t.Errorf("BusyTimeout = %v, want %v", got.BusyTimeout, DefaultBusyTimeout)
	}

	kept := Config{DataDir: "/tmp/data", DBFile: "x.db", BusyTimeout: time.Second}.WithDefaults()
	if kept.DBFile != "x.db" || kept.BusyTimeout != time.Second {
		t.Errorf("WithDefaults overwrote explicit values: %+v", kept)
	}
}
