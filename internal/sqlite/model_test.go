package sqlite

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/healthtrack/pkg/types"
)

// recordingObserver records every mapper call that reached the engine.
type recordingObserver struct {
	mu    sync.Mutex
	calls []string
	errs  int
}

func (r *recordingObserver) Observe(_ context.Context, table, op string, err error, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, table+" "+op)
	if err != nil {
		r.errs++
	}
}

func (r *recordingObserver) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func seedPatient(t *testing.T, s *Store) *types.Patient {
	t.Helper()
	ctx := context.Background()
	_, err := s.Models().Users.Insert(ctx, types.FieldsOf(
		types.UserUserID.Is("u-1"),
		types.UserEmail.Is("u1@example.com"),
	))
	require.NoError(t, err)

	p, err := s.Models().Patients.Insert(ctx, types.FieldsOf(
		types.PatientUserID.Is("u-1"),
		types.PatientFirstName.Is("Alex"),
		types.PatientLastName.Is("Rivera"),
	))
	require.NoError(t, err)
	return p
}

func TestNewModel_Columns(t *testing.T) {
	m, err := NewModel[types.Contact](nil, types.TableContact, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"id", "created_date", "updated_date",
		"patient_id", "first_name", "last_name", "phone_number",
		"email", "relationship", "address", "linked_health_system",
	}, m.Columns())
	assert.Equal(t, map[string]bool{"created_date": true, "updated_date": true}, m.temporal)

	mm, err := NewModel[types.Medication](nil, types.TableMedication, nil)
	require.NoError(t, err)
	assert.True(t, mm.temporal["start_date"])
	assert.True(t, mm.temporal["end_date"])
	assert.False(t, mm.temporal["dosage"])
}

func TestNewModel_RejectsNonStruct(t *testing.T) {
	_, err := NewModel[int](nil, "X", nil)
	assert.ErrorIs(t, err, types.ErrUnsupportedRowType)
}

func TestInsert_ThenGetFirstByFields(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := seedPatient(t, s)

	birth := time.Date(1990, time.March, 4, 0, 0, 0, 0, time.UTC)
	email := "sam@example.com"
	inserted, err := s.Models().Contacts.Insert(ctx, types.FieldsOf(
		types.ContactPatientID.Is(p.ID),
		types.ContactFirstName.Is("Sam"),
		types.ContactPhoneNumber.Is("+15550111"),
		types.Maybe(types.ContactEmail, &email),
		types.Maybe[types.Contact, string](types.ContactAddress, nil),
	))
	require.NoError(t, err)
	require.NotNil(t, inserted)
	assert.NotZero(t, inserted.ID)
	assert.False(t, inserted.CreatedDate.IsZero())
	assert.Nil(t, inserted.Address)

	got, err := s.Models().Contacts.GetFirstByFields(ctx, types.FieldsOf(
		types.ContactPhoneNumber.Is("+15550111"),
	))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *inserted, *got)
	assert.Equal(t, "Sam", got.FirstName)
	require.NotNil(t, got.Email)
	assert.Equal(t, email, *got.Email)

	updated, err := s.Models().Patients.UpdateByFields(ctx,
		types.FieldsOf(types.PatientBirthDate.Is(birth)),
		types.FieldsOf(types.PatientID.Is(p.ID)))
	require.NoError(t, err)
	require.Len(t, updated, 1)
	require.NotNil(t, updated[0].BirthDate)
	assert.True(t, birth.Equal(updated[0].BirthDate.Time))
}

func TestGetFirstByFields_NoMatch(t *testing.T) {
	s := openTestStore(t)
	got, err := s.Models().Patients.GetFirstByFields(context.Background(),
		types.FieldsOf(types.PatientFirstName.Is("Nobody")))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestEmptyPredicates_DoNotQuery(t *testing.T) {
	obs := &recordingObserver{}
	s := openTestStore(t, WithObserver(obs))
	ctx := context.Background()
	p := seedPatient(t, s)
	before := obs.count()

	first, err := s.Models().Patients.GetFirstByFields(ctx, types.Fields[types.Patient]{})
	require.NoError(t, err)
	assert.Nil(t, first)

	all, err := s.Models().Patients.GetByFields(ctx, types.FieldsOf[types.Patient]())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	n, err := s.Models().Patients.DeleteByFields(ctx, types.Fields[types.Patient]{})
	require.NoError(t, err)
	assert.Zero(t, n)

	// Omitted fields leave the predicate empty too.
	first, err = s.Models().Patients.GetFirstByFields(ctx, types.FieldsOf(
		types.Maybe[types.Patient, string](types.PatientFirstName, nil)))
	require.NoError(t, err)
	assert.Nil(t, first)

	assert.Equal(t, before, obs.count())

	count, err := s.Models().Patients.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	assert.NotZero(t, p.ID)
}

func TestUpdateByFields_MissingUpdate(t *testing.T) {
	obs := &recordingObserver{}
	s := openTestStore(t, WithObserver(obs))
	ctx := context.Background()
	p := seedPatient(t, s)
	before := obs.count()

	patients := s.Models().Patients
	_, err := patients.UpdateByFields(ctx,
		types.Fields[types.Patient]{},
		types.FieldsOf(types.PatientID.Is(p.ID)))
	assert.ErrorIs(t, err, types.ErrMissingUpdate)
	assert.EqualError(t, err, "missing update fields or conditions")

	_, err = patients.UpdateByFields(ctx,
		types.FieldsOf(types.PatientFirstName.Is("Changed")),
		types.Fields[types.Patient]{})
	assert.ErrorIs(t, err, types.ErrMissingUpdate)

	assert.Equal(t, before, obs.count())

	all, err := patients.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Alex", all[0].FirstName)
}

func TestUpdateByFields_ReturnsUpdatedRows(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := seedPatient(t, s)

	allergies := s.Models().Allergies
	n, err := allergies.InsertAll(ctx, []types.Fields[types.Allergy]{
		types.FieldsOf(types.AllergyPatientID.Is(p.ID), types.AllergyAllergyName.Is("Dust")),
		types.FieldsOf(types.AllergyPatientID.Is(p.ID), types.AllergyAllergyName.Is("Pollen")),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	rows, err := allergies.UpdateByFields(ctx,
		types.FieldsOf(types.AllergySeverity.Is("mild")),
		types.FieldsOf(types.AllergyPatientID.Is(p.ID)))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, r := range rows {
		require.NotNil(t, r.Severity)
		assert.Equal(t, "mild", *r.Severity)
	}

	rows, err = allergies.UpdateByFields(ctx,
		types.FieldsOf(types.AllergySeverity.Is("severe")),
		types.FieldsOf(types.AllergyAllergyName.Is("Mold")))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestGetByFields_NullPredicate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := seedPatient(t, s)

	notes := s.Models().Notes
	_, err := notes.Insert(ctx, types.FieldsOf(
		types.NotePatientID.Is(p.ID), types.NoteTopic.Is("a")))
	require.NoError(t, err)
	_, err = notes.Insert(ctx, types.FieldsOf(
		types.NotePatientID.Is(p.ID), types.NoteTopic.Is("b"), types.NoteDetails.Is("set")))
	require.NoError(t, err)

	got, err := notes.GetByFields(ctx, types.FieldsOf(types.NoteDetails.Is(nil)))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Topic)

	got, err = notes.GetByFields(ctx, types.FieldsOf(types.NotePatientID.Is(p.ID)))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Less(t, got[0].ID, got[1].ID)
}

func TestUnknownColumn(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Models().Patients.GetByFields(ctx,
		types.FieldsOf(types.Column[types.Patient]("nope").Is(1)))
	assert.ErrorIs(t, err, types.ErrUnknownColumn)

	_, err = s.Models().Patients.Insert(ctx,
		types.FieldsOf(types.Column[types.Patient]("nope").Is(1)))
	assert.ErrorIs(t, err, types.ErrUnknownColumn)
}

func TestInsert_DuplicatePhoneLeavesCountUnchanged(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := seedPatient(t, s)

	contacts := s.Models().Contacts
	row := types.FieldsOf(
		types.ContactPatientID.Is(p.ID),
		types.ContactFirstName.Is("Sam"),
		types.ContactPhoneNumber.Is("+15550122"),
	)
	_, err := contacts.Insert(ctx, row)
	require.NoError(t, err)

	got, err := contacts.Insert(ctx, row.Set(types.ContactFirstName, "Other"))
	assert.Error(t, err)
	assert.Nil(t, got)

	n, err := contacts.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestInsert_ForeignKeyEnforced(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Models().Allergies.Insert(ctx, types.FieldsOf(
		types.AllergyPatientID.Is(int64(999)),
		types.AllergyAllergyName.Is("Dust"),
	))
	assert.Error(t, err)

	n, err := s.Models().Allergies.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestInsertAll_HeterogeneousRows(t *testing.T) {
	obs := &recordingObserver{}
	s := openTestStore(t, WithObserver(obs))
	ctx := context.Background()
	p := seedPatient(t, s)

	allergies := s.Models().Allergies
	_, err := allergies.InsertAll(ctx, []types.Fields[types.Allergy]{
		types.FieldsOf(types.AllergyPatientID.Is(p.ID), types.AllergyAllergyName.Is("Dust")),
		types.FieldsOf(types.AllergyPatientID.Is(p.ID), types.AllergyReaction.Is("Sneezing")),
	})
	assert.ErrorIs(t, err, types.ErrHeterogeneousRows)

	_, err = allergies.InsertAll(ctx, []types.Fields[types.Allergy]{
		types.FieldsOf(types.AllergyPatientID.Is(p.ID), types.AllergyAllergyName.Is("Dust")),
		types.FieldsOf(types.AllergyPatientID.Is(p.ID)),
	})
	assert.ErrorIs(t, err, types.ErrHeterogeneousRows)

	n, err := allergies.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = allergies.InsertAll(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestInsertAll_KeyOrderDoesNotMatter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := seedPatient(t, s)

	allergies := s.Models().Allergies
	n, err := allergies.InsertAll(ctx, []types.Fields[types.Allergy]{
		types.FieldsOf(types.AllergyPatientID.Is(p.ID), types.AllergyAllergyName.Is("Dust")),
		types.FieldsOf(types.AllergyAllergyName.Is("Pollen"), types.AllergyPatientID.Is(p.ID)),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	all, err := allergies.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Dust", all[0].AllergyName)
	assert.Equal(t, "Pollen", all[1].AllergyName)
}

func TestDeleteByFields(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := seedPatient(t, s)

	_, err := s.Models().Goals.Insert(ctx, types.FieldsOf(
		types.GoalPatientID.Is(p.ID), types.GoalGoalDescription.Is("Walk")))
	require.NoError(t, err)

	n, err := s.Models().Goals.DeleteByFields(ctx, types.FieldsOf(types.GoalGoalDescription.Is("Run")))
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = s.Models().Patients.DeleteByFields(ctx, types.FieldsOf(types.PatientID.Is(p.ID)))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	// Children go with the patient.
	goals, err := s.Models().Goals.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, goals)
}

func TestRows_DecodesTemporalColumnsOnly(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := seedPatient(t, s)

	const dateLike = "2024-01-01T00:00:00Z"
	reminder := time.Date(2025, time.February, 3, 4, 5, 6, 0, time.UTC)
	note, err := s.Models().Notes.Insert(ctx, types.FieldsOf(
		types.NotePatientID.Is(p.ID),
		types.NoteTopic.Is(dateLike),
		types.NoteReminderDate.Is(reminder),
	))
	require.NoError(t, err)

	rows, err := s.Models().Notes.Rows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	row := rows[0]

	assert.Equal(t, dateLike, row["topic"])
	assert.Equal(t, reminder, row["reminder_date"])
	assert.IsType(t, time.Time{}, row["created_date"])
	assert.Equal(t, note.ID, row["id"])
	assert.Nil(t, row["details"])

	byID, err := s.Models().Notes.Row(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, row, byID)

	missing, err := s.Models().Notes.Row(ctx, note.ID+100)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestEngineDefaultsAreDecoded(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	before := time.Now().UTC().Add(-time.Minute)
	cat, err := s.Models().TrackCategories.Insert(ctx, types.FieldsOf(
		types.TrackCategoryName.Is("Custom")))
	require.NoError(t, err)

	assert.True(t, cat.CreatedDate.After(before))
	assert.True(t, cat.UpdatedDate.After(before))
}

func TestEngineDefaults_UseCanonicalText(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := seedPatient(t, s)

	var raw string
	require.NoError(t, s.DB().GetContext(ctx, &raw, `SELECT created_date FROM "PATIENT" WHERE id = ?`, p.ID))
	assert.Len(t, raw, len(types.TimestampLayout))
	assert.Equal(t, types.FormatTimestamp(p.CreatedDate.Time), raw)

	got, err := s.Models().Patients.GetFirstByFields(ctx, types.FieldsOf(
		types.Column[types.Patient](types.ColCreatedDate).Is(p.CreatedDate)))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p.ID, got.ID)
}

func TestUpdateByFields_LinkedHealthSystem(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := seedPatient(t, s)
	assert.False(t, p.LinkedHealthSystem)

	rows, err := s.Models().Patients.UpdateByFields(ctx,
		types.FieldsOf(types.PatientLinkedHealthSystem.Is(true)),
		types.FieldsOf(types.PatientID.Is(p.ID)))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].LinkedHealthSystem)
}
