package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/healthtrack/internal/paths"
	"github.com/mesh-intelligence/healthtrack/pkg/types"
)

// testEnv points the CLI at a fresh config directory and returns a data
// directory for --data-dir.
func testEnv(t *testing.T) (configDir, dataDir string) {
	t.Helper()
	root := t.TempDir()
	configDir = filepath.Join(root, "config")
	dataDir = filepath.Join(root, "data")
	t.Setenv(paths.EnvConfigDir, configDir)
	t.Setenv(paths.EnvDataDir, "")
	t.Setenv("HEALTHTRACK_SAMPLE_DATA", "")
	t.Setenv("HEALTHTRACK_LOG_LEVEL", "")
	return configDir, dataDir
}

// runCLI executes the root command in-process and returns its stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func statusJSON(t *testing.T, dataDir string) map[string]any {
	t.Helper()
	out, err := runCLI(t, "--data-dir", dataDir, "--json", "status")
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	return got
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "healthtrack v0.1.0\nmodule: github.com/mesh-intelligence/healthtrack\n", out)
}

func TestInit(t *testing.T) {
	configDir, dataDir := testEnv(t)

	out, err := runCLI(t, "--data-dir", dataDir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+configDir)
	assert.Contains(t, out, "schema version 2")
	assert.FileExists(t, filepath.Join(dataDir, types.DefaultDBFile))

	data, err := os.ReadFile(filepath.Join(configDir, configFileExt))
	require.NoError(t, err)
	assert.Contains(t, string(data), "data_dir: "+dataDir)
	assert.Contains(t, string(data), "db_file: healthtrack.db")

	t.Run("second run keeps the config", func(t *testing.T) {
		out, err := runCLI(t, "init")
		require.NoError(t, err)
		assert.NotContains(t, out, "wrote")
		assert.Contains(t, out, filepath.Join(dataDir, types.DefaultDBFile))
	})
}

func TestStatus(t *testing.T) {
	_, dataDir := testEnv(t)

	got := statusJSON(t, dataDir)
	assert.Equal(t, float64(2), got["schema_version"])
	assert.Equal(t, filepath.Join(dataDir, types.DefaultDBFile), got["database"])

	tables := got["tables"].(map[string]any)
	assert.Len(t, tables, len(types.TableNames))
	assert.Equal(t, float64(0), tables[types.TableUser])
	assert.Equal(t, float64(3), tables[types.TableTrackCategory])
	assert.Equal(t, float64(17), tables[types.TableResponseOption])

	out, err := runCLI(t, "--data-dir", dataDir, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "schema version: 2")
	assert.Contains(t, out, types.TableTrackCategory)
}

func TestListAndGet(t *testing.T) {
	_, dataDir := testEnv(t)
	t.Setenv("HEALTHTRACK_SAMPLE_DATA", "true")

	out, err := runCLI(t, "--data-dir", dataDir, "list", "patient")
	require.NoError(t, err)
	assert.Contains(t, out, "first_name: Alex")
	assert.Contains(t, out, "birth_date: 1980-04-12T09:00:00.000000000Z")
	assert.Contains(t, out, "(1 rows)")

	out, err = runCLI(t, "--data-dir", dataDir, "--json", "get", "PATIENT", "1")
	require.NoError(t, err)
	var row map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &row))
	assert.Equal(t, "Alex", row["first_name"])
	assert.Equal(t, "1980-04-12T09:00:00.000000000Z", row["birth_date"])

	t.Run("missing row", func(t *testing.T) {
		_, err := runCLI(t, "--data-dir", dataDir, "get", "PATIENT", "99")
		require.Error(t, err)
		assert.ErrorIs(t, err, errRowNotFound)
		assert.Equal(t, exitUserError, exitCode(err))
	})

	t.Run("bad id", func(t *testing.T) {
		_, err := runCLI(t, "--data-dir", dataDir, "get", "PATIENT", "abc")
		require.Error(t, err)
		assert.Equal(t, exitUserError, exitCode(err))
	})

	t.Run("unknown table", func(t *testing.T) {
		_, err := runCLI(t, "--data-dir", dataDir, "list", "vitals")
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrTableNotFound)
		assert.Equal(t, exitUserError, exitCode(err))
	})
}

func TestExportImport(t *testing.T) {
	_, src := testEnv(t)
	t.Setenv("HEALTHTRACK_SAMPLE_DATA", "true")
	snap := filepath.Join(t.TempDir(), "snap")

	out, err := runCLI(t, "--data-dir", src, "export", snap)
	require.NoError(t, err)
	assert.Contains(t, out, "exported")
	assert.FileExists(t, filepath.Join(snap, types.TablePatient+".jsonl"))

	dst := filepath.Join(t.TempDir(), "restored")
	t.Setenv("HEALTHTRACK_SAMPLE_DATA", "false")
	before := statusJSON(t, dst)["tables"].(map[string]any)
	assert.Equal(t, float64(0), before[types.TablePatient])

	_, err = runCLI(t, "--data-dir", dst, "import", snap)
	require.NoError(t, err)

	want := statusJSON(t, src)["tables"]
	got := statusJSON(t, dst)["tables"]
	assert.Equal(t, want, got)
}

func TestImport_Malformed(t *testing.T) {
	_, dataDir := testEnv(t)
	snap := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(snap, types.TableUser+".jsonl"), []byte("{not json\n"), 0o644))

	_, err := runCLI(t, "--data-dir", dataDir, "import", snap)
	require.Error(t, err)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestSettings(t *testing.T) {
	t.Run("config file values", func(t *testing.T) {
		configDir, dataDir := testEnv(t)
		require.NoError(t, os.MkdirAll(configDir, 0o755))
		yaml := "data_dir: " + dataDir + "\ndb_file: other.db\nbusy_timeout: 2s\nsample_data: true\nlog_level: debug\n"
		require.NoError(t, os.WriteFile(filepath.Join(configDir, configFileExt), []byte(yaml), 0o644))

		s, err := loadSettings()
		require.NoError(t, err)
		assert.Equal(t, dataDir, s.store.DataDir)
		assert.Equal(t, "other.db", s.store.DBFile)
		assert.Equal(t, "2s", s.store.BusyTimeout.String())
		assert.True(t, s.store.SampleData)
		assert.Equal(t, "DEBUG", s.logLevel.String())
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		configDir, _ := testEnv(t)
		require.NoError(t, os.MkdirAll(configDir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(configDir, configFileExt), []byte("db_file: file.db\n"), 0o644))
		t.Setenv("HEALTHTRACK_DB_FILE", "env.db")

		s, err := loadSettings()
		require.NoError(t, err)
		assert.Equal(t, "env.db", s.store.DBFile)
	})

	t.Run("defaults without a file", func(t *testing.T) {
		testEnv(t)
		s, err := loadSettings()
		require.NoError(t, err)
		assert.Equal(t, types.DefaultDBFile, s.store.DBFile)
		assert.Equal(t, types.DefaultBusyTimeout, s.store.BusyTimeout)
		assert.False(t, s.store.SampleData)
	})

	t.Run("invalid log level", func(t *testing.T) {
		_, dataDir := testEnv(t)
		t.Setenv("HEALTHTRACK_LOG_LEVEL", "loud")
		_, err := runCLI(t, "--data-dir", dataDir, "status")
		require.Error(t, err)
		assert.Equal(t, exitUserError, exitCode(err))
	})

	t.Run("invalid db file", func(t *testing.T) {
		_, dataDir := testEnv(t)
		t.Setenv("HEALTHTRACK_DB_FILE", "nested/x.db")
		_, err := runCLI(t, "--data-dir", dataDir, "status")
		assert.ErrorIs(t, err, types.ErrDBFileInvalid)
	})
}

func TestExitCode(t *testing.T) {
	base := errors.New("boom")
	assert.Equal(t, exitSuccess, exitCode(nil))
	assert.Equal(t, exitUserError, exitCode(base))
	assert.Equal(t, exitUserError, exitCode(userError(base)))
	assert.Equal(t, exitSysError, exitCode(sysError(base)))
	assert.ErrorIs(t, sysError(base), base)
}
