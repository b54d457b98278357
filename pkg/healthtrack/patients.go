package healthtrack

import (
	"context"

	"github.com/mesh-intelligence/healthtrack/pkg/types"
)

func (a *App) patientRules() rules[types.Patient] {
	return rules[types.Patient]{
		required: []types.Column[types.Patient]{
			types.PatientUserID, types.PatientFirstName, types.PatientLastName,
		},
		parents: []parent[types.Patient]{
			{types.PatientUserID, func(ctx context.Context, v any) (bool, error) {
				u, err := a.m.Users.GetFirstByFields(ctx, types.FieldsOf(types.UserUserID.Is(v)))
				return u != nil, err
			}},
		},
	}
}

// CreatePatient stores a new patient for an existing user. It returns nil
// when the user does not exist.
func (a *App) CreatePatient(ctx context.Context, data types.Fields[types.Patient]) (*types.Patient, error) {
	return create(ctx, a, a.m.Patients, a.patientRules(), data)
}

// GetPatient returns the patient with id, or nil.
func (a *App) GetPatient(ctx context.Context, id int64) (*types.Patient, error) {
	return getByID(ctx, a.m.Patients, id)
}

// GetPatients returns every patient.
func (a *App) GetPatients(ctx context.Context) ([]types.Patient, error) {
	return a.m.Patients.GetAll(ctx)
}

// GetPatientsByUser returns the patients owned by the user.
func (a *App) GetPatientsByUser(ctx context.Context, userID string) ([]types.Patient, error) {
	return a.m.Patients.GetByFields(ctx, types.FieldsOf(types.PatientUserID.Is(userID)))
}

// PatientExists reports whether a patient with id exists.
func (a *App) PatientExists(ctx context.Context, id int64) (bool, error) {
	p, err := a.GetPatient(ctx, id)
	return p != nil, err
}

// UpdatePatient applies data to the patient matching where.
func (a *App) UpdatePatient(ctx context.Context, data, where types.Fields[types.Patient]) (*types.Patient, error) {
	return update(ctx, a, a.m.Patients, a.patientRules(), data, where)
}

// DeletePatient deletes the patient and every record that belongs to it.
func (a *App) DeletePatient(ctx context.Context, id int64) (bool, error) {
	return remove(ctx, a, a.m.Patients, id)
}

// patientParent is the patient_id reference shared by patient-owned tables.
func patientParent[T any](a *App) parent[T] {
	return parent[T]{types.Column[T](types.ColPatientID), existsByID(a.m.Patients)}
}
