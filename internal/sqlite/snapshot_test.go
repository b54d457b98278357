package sqlite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/healthtrack/pkg/types"
)

func TestExportImport_RoundTrip(t *testing.T) {
	ctx := context.Background()
	src := openTestStoreAt(t, types.Config{DataDir: t.TempDir(), SampleData: true})
	dir := filepath.Join(t.TempDir(), "snapshot")

	exported, err := src.Export(ctx, dir)
	require.NoError(t, err)
	assert.Len(t, exported, len(types.TableNames))
	assert.Equal(t, 1, exported[types.TablePatient])
	for _, name := range types.TableNames {
		assert.FileExists(t, filepath.Join(dir, name+".jsonl"))
	}

	dst := openTestStore(t)
	imported, err := dst.Import(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, exported, imported)

	for _, name := range types.TableNames {
		want, err := mustTable(t, src, name).Rows(ctx)
		require.NoError(t, err)
		got, err := mustTable(t, dst, name).Rows(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}
}

func TestExport_WritesCanonicalTimestamps(t *testing.T) {
	ctx := context.Background()
	s := openTestStoreAt(t, types.Config{DataDir: t.TempDir(), SampleData: true})
	dir := t.TempDir()

	_, err := s.Export(ctx, dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, types.TablePatient+".jsonl"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"birth_date":"1980-04-12T09:00:00.000000000Z"`)
	assert.Equal(t, 1, strings.Count(string(data), "\n"))
}

func TestImport_MalformedLineRollsBack(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	dir := t.TempDir()

	users := `{"id":1,"user_id":"a","email":"a@example.com","created_date":"2024-01-01T00:00:00Z","updated_date":"2024-01-01T00:00:00Z"}` + "\n"
	patients := `{"id":1,"user_id":"a",` + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, types.TableUser+".jsonl"), []byte(users), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, types.TablePatient+".jsonl"), []byte(patients), 0o644))

	_, err := s.Import(ctx, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")

	n, err := s.Models().Users.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestImport_NormalizesTimestampsAndUpserts(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	dir := t.TempDir()

	users := strings.Join([]string{
		`{"id":5,"user_id":"a","email":"old@example.com","created_date":"2024-01-01T02:00:00+02:00","updated_date":"2024-01-01T00:00:00Z"}`,
		`{"id":5,"user_id":"a","email":"new@example.com","created_date":"2024-01-01T02:00:00+02:00","updated_date":"2024-01-02T00:00:00Z"}`,
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, types.TableUser+".jsonl"), []byte(users), 0o644))

	counts, err := s.Import(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{types.TableUser: 2}, counts)

	u, err := s.Models().Users.GetFirstByFields(ctx, types.FieldsOf(types.UserID.Is(int64(5))))
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "new@example.com", u.Email)

	var raw string
	require.NoError(t, s.DB().GetContext(ctx, &raw, `SELECT created_date FROM "USER" WHERE id = 5`))
	assert.Equal(t, "2024-01-01T00:00:00.000000000Z", raw)
}

func TestImport_UnknownColumn(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, types.TableUser+".jsonl"),
		[]byte(`{"id":1,"user_id":"a","email":"a@example.com","shoe_size":9}`+"\n"), 0o644))

	_, err := s.Import(ctx, dir)
	assert.ErrorIs(t, err, types.ErrUnknownColumn)
}

func TestImport_RejectsNonTimestampText(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	p := seedPatient(t, s)

	tests := []struct {
		name string
		line string
	}{
		{"date only", `{"id":1,"patient_id":%d,"admission_date":"2024-03-03","discharge_date":"2024-03-04T00:00:00Z"}`},
		{"free text", `{"id":1,"patient_id":%d,"admission_date":"2024-03-03T00:00:00Z","discharge_date":"yesterday"}`},
		{"number", `{"id":1,"patient_id":%d,"admission_date":20240303,"discharge_date":"2024-03-04T00:00:00Z"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			contact := fmt.Sprintf(`{"id":1,"patient_id":%d,"first_name":"Kim","phone_number":"555-0100"}`, p.ID)
			require.NoError(t, os.WriteFile(filepath.Join(dir, types.TableContact+".jsonl"), []byte(contact+"\n"), 0o644))
			require.NoError(t, os.WriteFile(filepath.Join(dir, types.TableHospitalization+".jsonl"),
				[]byte(fmt.Sprintf(tt.line, p.ID)+"\n"), 0o644))

			_, err := s.Import(ctx, dir)
			assert.ErrorIs(t, err, types.ErrInvalidTimestamp)

			n, err := s.Models().Contacts.Count(ctx)
			require.NoError(t, err)
			assert.Zero(t, n, "earlier tables roll back with the failing one")

			stays, err := s.Models().Hospitalizations.GetAll(ctx)
			require.NoError(t, err)
			assert.Empty(t, stays)
		})
	}
}

func mustTable(t *testing.T, s *Store, name string) Table {
	t.Helper()
	tbl, err := s.Table(name)
	require.NoError(t, err)
	return tbl
}
