package healthtrack

import (
	"context"

	"github.com/mesh-intelligence/healthtrack/pkg/types"
)

func (a *App) allergyRules() rules[types.Allergy] {
	return rules[types.Allergy]{
		required: []types.Column[types.Allergy]{types.AllergyAllergyName},
		parents:  []parent[types.Allergy]{patientParent[types.Allergy](a)},
	}
}

// CreateAllergy stores an allergy for an existing patient.
func (a *App) CreateAllergy(ctx context.Context, data types.Fields[types.Allergy]) (*types.Allergy, error) {
	return create(ctx, a, a.m.Allergies, a.allergyRules(), data)
}

// GetAllergy returns the allergy with id, or nil.
func (a *App) GetAllergy(ctx context.Context, id int64) (*types.Allergy, error) {
	return getByID(ctx, a.m.Allergies, id)
}

// GetAllergiesByPatient returns the patient's allergy records, oldest first.
func (a *App) GetAllergiesByPatient(ctx context.Context, patientID int64) ([]types.Allergy, error) {
	return a.m.Allergies.GetByFields(ctx, types.FieldsOf(types.AllergyPatientID.Is(patientID)))
}

// UpdateAllergy applies data to the allergy matching where.
func (a *App) UpdateAllergy(ctx context.Context, data, where types.Fields[types.Allergy]) (*types.Allergy, error) {
	return update(ctx, a, a.m.Allergies, a.allergyRules(), data, where)
}

// DeleteAllergy deletes the allergy with id and reports whether it existed.
func (a *App) DeleteAllergy(ctx context.Context, id int64) (bool, error) {
	return remove(ctx, a, a.m.Allergies, id)
}

func (a *App) medicationRules() rules[types.Medication] {
	return rules[types.Medication]{
		required: []types.Column[types.Medication]{types.MedicationMedicationName},
		parents:  []parent[types.Medication]{patientParent[types.Medication](a)},
	}
}

// CreateMedication stores a medication for an existing patient.
func (a *App) CreateMedication(ctx context.Context, data types.Fields[types.Medication]) (*types.Medication, error) {
	return create(ctx, a, a.m.Medications, a.medicationRules(), data)
}

// GetMedication returns the medication with id, or nil.
func (a *App) GetMedication(ctx context.Context, id int64) (*types.Medication, error) {
	return getByID(ctx, a.m.Medications, id)
}

// GetMedicationsByPatient returns the patient's medication records, oldest first.
func (a *App) GetMedicationsByPatient(ctx context.Context, patientID int64) ([]types.Medication, error) {
	return a.m.Medications.GetByFields(ctx, types.FieldsOf(types.MedicationPatientID.Is(patientID)))
}

// UpdateMedication applies data to the medication matching where.
func (a *App) UpdateMedication(ctx context.Context, data, where types.Fields[types.Medication]) (*types.Medication, error) {
	return update(ctx, a, a.m.Medications, a.medicationRules(), data, where)
}

// DeleteMedication deletes the medication with id and reports whether it existed.
func (a *App) DeleteMedication(ctx context.Context, id int64) (bool, error) {
	return remove(ctx, a, a.m.Medications, id)
}

func (a *App) goalRules() rules[types.Goal] {
	return rules[types.Goal]{
		required: []types.Column[types.Goal]{types.GoalGoalDescription},
		parents:  []parent[types.Goal]{patientParent[types.Goal](a)},
	}
}

// CreateGoal stores a goal for an existing patient.
func (a *App) CreateGoal(ctx context.Context, data types.Fields[types.Goal]) (*types.Goal, error) {
	return create(ctx, a, a.m.Goals, a.goalRules(), data)
}

// GetGoal returns the goal with id, or nil.
func (a *App) GetGoal(ctx context.Context, id int64) (*types.Goal, error) {
	return getByID(ctx, a.m.Goals, id)
}

// GetGoalsByPatient returns the patient's goal records, oldest first.
func (a *App) GetGoalsByPatient(ctx context.Context, patientID int64) ([]types.Goal, error) {
	return a.m.Goals.GetByFields(ctx, types.FieldsOf(types.GoalPatientID.Is(patientID)))
}

// UpdateGoal applies data to the goal matching where.
func (a *App) UpdateGoal(ctx context.Context, data, where types.Fields[types.Goal]) (*types.Goal, error) {
	return update(ctx, a, a.m.Goals, a.goalRules(), data, where)
}

// DeleteGoal deletes the goal with id and reports whether it existed.
func (a *App) DeleteGoal(ctx context.Context, id int64) (bool, error) {
	return remove(ctx, a, a.m.Goals, id)
}

func (a *App) noteRules() rules[types.Note] {
	return rules[types.Note]{
		required: []types.Column[types.Note]{types.NoteTopic},
		parents:  []parent[types.Note]{patientParent[types.Note](a)},
	}
}

// CreateNote stores a note for an existing patient.
func (a *App) CreateNote(ctx context.Context, data types.Fields[types.Note]) (*types.Note, error) {
	return create(ctx, a, a.m.Notes, a.noteRules(), data)
}

// GetNote returns the note with id, or nil.
func (a *App) GetNote(ctx context.Context, id int64) (*types.Note, error) {
	return getByID(ctx, a.m.Notes, id)
}

// GetNotesByPatient returns the patient's note records, oldest first.
func (a *App) GetNotesByPatient(ctx context.Context, patientID int64) ([]types.Note, error) {
	return a.m.Notes.GetByFields(ctx, types.FieldsOf(types.NotePatientID.Is(patientID)))
}

// UpdateNote applies data to the note matching where.
func (a *App) UpdateNote(ctx context.Context, data, where types.Fields[types.Note]) (*types.Note, error) {
	return update(ctx, a, a.m.Notes, a.noteRules(), data, where)
}

// DeleteNote deletes the note with id and reports whether it existed.
func (a *App) DeleteNote(ctx context.Context, id int64) (bool, error) {
	return remove(ctx, a, a.m.Notes, id)
}
