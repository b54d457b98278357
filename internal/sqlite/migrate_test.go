package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/healthtrack/pkg/types"
)

// tableCounts returns the row count of every table.
func tableCounts(t *testing.T, s *Store) map[string]int64 {
	t.Helper()
	counts := make(map[string]int64)
	for _, tbl := range s.Tables() {
		n, err := tbl.Count(context.Background())
		require.NoError(t, err)
		counts[tbl.Name()] = n
	}
	return counts
}

func TestMigrate_SeedsReferenceData(t *testing.T) {
	s := openTestStore(t)
	counts := tableCounts(t, s)

	assert.EqualValues(t, 3, counts[types.TableTrackCategory])
	assert.EqualValues(t, 6, counts[types.TableTrackItem])
	assert.EqualValues(t, 12, counts[types.TableQuestion])
	assert.EqualValues(t, 17, counts[types.TableResponseOption])
	assert.Zero(t, counts[types.TablePatient])
	assert.Zero(t, counts[types.TableUser])
}

func TestMigrate_SeedsSampleData(t *testing.T) {
	s := openTestStoreAt(t, types.Config{DataDir: t.TempDir(), SampleData: true})
	counts := tableCounts(t, s)

	assert.EqualValues(t, 1, counts[types.TableUser])
	assert.EqualValues(t, 1, counts[types.TablePatient])
	for _, name := range []string{
		types.TableContact, types.TableAllergy, types.TableMedication, types.TableGoal,
		types.TableNote, types.TableHospitalization, types.TableSurgeryProcedure,
		types.TableDischargeInstruction, types.TableEquipment, types.TableEmergencyCare,
	} {
		assert.EqualValues(t, 1, counts[name], name)
	}

	p, err := s.Models().Patients.GetFirstByFields(context.Background(),
		types.FieldsOf(types.PatientUserID.Is(SampleUserID)))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Alex", p.FirstName)
	require.NotNil(t, p.BirthDate)
	assert.Equal(t, 1980, p.BirthDate.Year())
}

func TestMigrate_FollowUpQuestionsLinkToParent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	parent, err := s.Models().Questions.GetFirstByFields(ctx,
		types.FieldsOf(types.QuestionQuestionText.Is("Are you in pain today?")))
	require.NoError(t, err)
	require.NotNil(t, parent)
	assert.True(t, parent.Required)
	assert.Nil(t, parent.ParentQuestionID)

	children, err := s.Models().Questions.GetByFields(ctx,
		types.FieldsOf(types.QuestionParentQuestionID.Is(parent.ID)))
	require.NoError(t, err)
	require.Len(t, children, 2)
	for _, c := range children {
		require.NotNil(t, c.DisplayCondition)
		assert.Equal(t, "Yes", *c.DisplayCondition)
		assert.Equal(t, parent.ItemID, c.ItemID)
	}
}

func TestMigrate_TwiceKeepsOneCopyOfSeeds(t *testing.T) {
	s := openTestStoreAt(t, types.Config{DataDir: t.TempDir(), SampleData: true})
	ctx := context.Background()
	want := tableCounts(t, s)

	// Force every step to run again over the already-seeded database.
	_, err := s.DB().ExecContext(ctx, "PRAGMA user_version = 0")
	require.NoError(t, err)

	from, to, err := Migrate(ctx, s.DB(), Migrations(SeedOptions{SampleData: true}), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, from)
	assert.Equal(t, s.SchemaVersion(), to)
	assert.Equal(t, want, tableCounts(t, s))

	// At the current version nothing runs.
	from, to, err = Migrate(ctx, s.DB(), Migrations(SeedOptions{SampleData: true}), nil)
	require.NoError(t, err)
	assert.Equal(t, from, to)
	assert.Equal(t, want, tableCounts(t, s))
}

func TestMigrate_ReopenDoesNotReseed(t *testing.T) {
	cfg := types.Config{DataDir: t.TempDir()}
	s, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	want := tableCounts(t, s)
	require.NoError(t, s.Close())

	s = openTestStoreAt(t, cfg)
	assert.Equal(t, want, tableCounts(t, s))
}

func TestMigrate_FailureRollsBackEverything(t *testing.T) {
	cfg := types.Config{DataDir: t.TempDir()}
	boom := errors.New("boom")
	steps := []Migration{
		{Version: 1, Name: "create", Up: func(ctx context.Context, tx *sqlx.Tx) error {
			_, err := tx.ExecContext(ctx, "CREATE TABLE IF NOT EXISTS probe (id INTEGER PRIMARY KEY)")
			return err
		}},
		{Version: 2, Name: "fail", Up: func(context.Context, *sqlx.Tx) error {
			return boom
		}},
	}

	_, err := Open(context.Background(), cfg, WithMigrations(steps))
	require.ErrorIs(t, err, boom)

	// The failed open released the file, so a plain handle can inspect it.
	s := openTestStoreAt(t, cfg, WithMigrations([]Migration{}))
	ctx := context.Background()
	v, err := SchemaVersion(ctx, s.DB())
	require.NoError(t, err)
	assert.Zero(t, v)

	var n int
	require.NoError(t, s.DB().GetContext(ctx, &n,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'probe'"))
	assert.Zero(t, n)
}

func TestMigrate_SchemaTooNew(t *testing.T) {
	cfg := types.Config{DataDir: t.TempDir()}
	s, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	_, err = s.DB().ExecContext(context.Background(), "PRAGMA user_version = 99")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = Open(context.Background(), cfg)
	assert.ErrorIs(t, err, types.ErrSchemaTooNew)
}

func TestValidateMigrations(t *testing.T) {
	up := func(context.Context, *sqlx.Tx) error { return nil }
	tests := []struct {
		name  string
		steps []Migration
		ok    bool
	}{
		{"empty", nil, true},
		{"ascending", []Migration{{Version: 1, Up: up}, {Version: 3, Up: up}}, true},
		{"zero version", []Migration{{Version: 0, Up: up}}, false},
		{"duplicate", []Migration{{Version: 1, Up: up}, {Version: 1, Up: up}}, false},
		{"descending", []Migration{{Version: 2, Up: up}, {Version: 1, Up: up}}, false},
		{"missing up", []Migration{{Version: 1}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateMigrations(tt.steps)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, types.ErrBadMigrations)
			}
		})
	}
}

func TestMigrations_Ordered(t *testing.T) {
	steps := Migrations(SeedOptions{})
	require.NoError(t, validateMigrations(steps))
	assert.Equal(t, "base schema", steps[0].Name)
}
