package healthtrack

import (
	"context"
	"time"

	"github.com/mesh-intelligence/healthtrack/pkg/types"
)

func (a *App) hospitalizationRules() rules[types.Hospitalization] {
	return rules[types.Hospitalization]{
		required: []types.Column[types.Hospitalization]{types.HospitalizationAdmissionDate, types.HospitalizationDischargeDate},
		parents:  []parent[types.Hospitalization]{patientParent[types.Hospitalization](a)},
		check:    checkStayDates,
	}
}

// CreateHospitalization stores a hospitalization for an existing patient.
func (a *App) CreateHospitalization(ctx context.Context, data types.Fields[types.Hospitalization]) (*types.Hospitalization, error) {
	return create(ctx, a, a.m.Hospitalizations, a.hospitalizationRules(), data)
}

// GetHospitalization returns the hospitalization with id, or nil.
func (a *App) GetHospitalization(ctx context.Context, id int64) (*types.Hospitalization, error) {
	return getByID(ctx, a.m.Hospitalizations, id)
}

// GetHospitalizationsByPatient returns the patient's hospitalization records, oldest first.
func (a *App) GetHospitalizationsByPatient(ctx context.Context, patientID int64) ([]types.Hospitalization, error) {
	return a.m.Hospitalizations.GetByFields(ctx, types.FieldsOf(types.HospitalizationPatientID.Is(patientID)))
}

// UpdateHospitalization applies data to the hospitalization matching where.
func (a *App) UpdateHospitalization(ctx context.Context, data, where types.Fields[types.Hospitalization]) (*types.Hospitalization, error) {
	return update(ctx, a, a.m.Hospitalizations, a.hospitalizationRules(), data, where)
}

// DeleteHospitalization deletes the hospitalization with id and reports whether it existed.
func (a *App) DeleteHospitalization(ctx context.Context, id int64) (bool, error) {
	return remove(ctx, a, a.m.Hospitalizations, id)
}

func (a *App) surgeryProcedureRules() rules[types.SurgeryProcedure] {
	return rules[types.SurgeryProcedure]{
		required: []types.Column[types.SurgeryProcedure]{types.SurgeryProcedureProcedureName},
		parents:  []parent[types.SurgeryProcedure]{patientParent[types.SurgeryProcedure](a)},
	}
}

// CreateSurgeryProcedure stores a surgery or procedure for an existing patient.
func (a *App) CreateSurgeryProcedure(ctx context.Context, data types.Fields[types.SurgeryProcedure]) (*types.SurgeryProcedure, error) {
	return create(ctx, a, a.m.SurgeryProcedures, a.surgeryProcedureRules(), data)
}

// GetSurgeryProcedure returns the surgery or procedure with id, or nil.
func (a *App) GetSurgeryProcedure(ctx context.Context, id int64) (*types.SurgeryProcedure, error) {
	return getByID(ctx, a.m.SurgeryProcedures, id)
}

// GetSurgeryProceduresByPatient returns the patient's surgery or procedure records, oldest first.
func (a *App) GetSurgeryProceduresByPatient(ctx context.Context, patientID int64) ([]types.SurgeryProcedure, error) {
	return a.m.SurgeryProcedures.GetByFields(ctx, types.FieldsOf(types.SurgeryProcedurePatientID.Is(patientID)))
}

// UpdateSurgeryProcedure applies data to the surgery or procedure matching where.
func (a *App) UpdateSurgeryProcedure(ctx context.Context, data, where types.Fields[types.SurgeryProcedure]) (*types.SurgeryProcedure, error) {
	return update(ctx, a, a.m.SurgeryProcedures, a.surgeryProcedureRules(), data, where)
}

// DeleteSurgeryProcedure deletes the surgery or procedure with id and reports whether it existed.
func (a *App) DeleteSurgeryProcedure(ctx context.Context, id int64) (bool, error) {
	return remove(ctx, a, a.m.SurgeryProcedures, id)
}

func (a *App) dischargeInstructionRules() rules[types.DischargeInstruction] {
	return rules[types.DischargeInstruction]{
		required: []types.Column[types.DischargeInstruction]{types.DischargeInstructionSummary},
		parents:  []parent[types.DischargeInstruction]{patientParent[types.DischargeInstruction](a)},
	}
}

// CreateDischargeInstruction stores a discharge instruction for an existing patient.
func (a *App) CreateDischargeInstruction(ctx context.Context, data types.Fields[types.DischargeInstruction]) (*types.DischargeInstruction, error) {
	return create(ctx, a, a.m.DischargeInstructions, a.dischargeInstructionRules(), data)
}

// GetDischargeInstruction returns the discharge instruction with id, or nil.
func (a *App) GetDischargeInstruction(ctx context.Context, id int64) (*types.DischargeInstruction, error) {
	return getByID(ctx, a.m.DischargeInstructions, id)
}

// GetDischargeInstructionsByPatient returns the patient's discharge instruction records, oldest first.
func (a *App) GetDischargeInstructionsByPatient(ctx context.Context, patientID int64) ([]types.DischargeInstruction, error) {
	return a.m.DischargeInstructions.GetByFields(ctx, types.FieldsOf(types.DischargeInstructionPatientID.Is(patientID)))
}

// UpdateDischargeInstruction applies data to the discharge instruction matching where.
func (a *App) UpdateDischargeInstruction(ctx context.Context, data, where types.Fields[types.DischargeInstruction]) (*types.DischargeInstruction, error) {
	return update(ctx, a, a.m.DischargeInstructions, a.dischargeInstructionRules(), data, where)
}

// DeleteDischargeInstruction deletes the discharge instruction with id and reports whether it existed.
func (a *App) DeleteDischargeInstruction(ctx context.Context, id int64) (bool, error) {
	return remove(ctx, a, a.m.DischargeInstructions, id)
}

func (a *App) equipmentRules() rules[types.Equipment] {
	return rules[types.Equipment]{
		required: []types.Column[types.Equipment]{types.EquipmentEquipmentName},
		parents:  []parent[types.Equipment]{patientParent[types.Equipment](a)},
		check:    unique(a.m.Equipment, types.EquipmentEquipmentName, types.ErrDuplicateEquipment),
	}
}

// CreateEquipment stores an equipment item for an existing patient.
func (a *App) CreateEquipment(ctx context.Context, data types.Fields[types.Equipment]) (*types.Equipment, error) {
	return create(ctx, a, a.m.Equipment, a.equipmentRules(), data)
}

// GetEquipment returns the equipment item with id, or nil.
func (a *App) GetEquipment(ctx context.Context, id int64) (*types.Equipment, error) {
	return getByID(ctx, a.m.Equipment, id)
}

// GetEquipmentByPatient returns the patient's equipment item records, oldest first.
func (a *App) GetEquipmentByPatient(ctx context.Context, patientID int64) ([]types.Equipment, error) {
	return a.m.Equipment.GetByFields(ctx, types.FieldsOf(types.EquipmentPatientID.Is(patientID)))
}

// UpdateEquipment applies data to the equipment item matching where.
func (a *App) UpdateEquipment(ctx context.Context, data, where types.Fields[types.Equipment]) (*types.Equipment, error) {
	return update(ctx, a, a.m.Equipment, a.equipmentRules(), data, where)
}

// DeleteEquipment deletes the equipment item with id and reports whether it existed.
func (a *App) DeleteEquipment(ctx context.Context, id int64) (bool, error) {
	return remove(ctx, a, a.m.Equipment, id)
}

func (a *App) emergencyCareRules() rules[types.EmergencyCare] {
	return rules[types.EmergencyCare]{
		required: []types.Column[types.EmergencyCare]{types.EmergencyCareTopic},
		parents:  []parent[types.EmergencyCare]{patientParent[types.EmergencyCare](a)},
	}
}

// CreateEmergencyCare stores an emergency care note for an existing patient.
func (a *App) CreateEmergencyCare(ctx context.Context, data types.Fields[types.EmergencyCare]) (*types.EmergencyCare, error) {
	return create(ctx, a, a.m.EmergencyCare, a.emergencyCareRules(), data)
}

// GetEmergencyCare returns the emergency care note with id, or nil.
func (a *App) GetEmergencyCare(ctx context.Context, id int64) (*types.EmergencyCare, error) {
	return getByID(ctx, a.m.EmergencyCare, id)
}

// GetEmergencyCareByPatient returns the patient's emergency care note records, oldest first.
func (a *App) GetEmergencyCareByPatient(ctx context.Context, patientID int64) ([]types.EmergencyCare, error) {
	return a.m.EmergencyCare.GetByFields(ctx, types.FieldsOf(types.EmergencyCarePatientID.Is(patientID)))
}

// UpdateEmergencyCare applies data to the emergency care note matching where.
func (a *App) UpdateEmergencyCare(ctx context.Context, data, where types.Fields[types.EmergencyCare]) (*types.EmergencyCare, error) {
	return update(ctx, a, a.m.EmergencyCare, a.emergencyCareRules(), data, where)
}

// DeleteEmergencyCare deletes the emergency care note with id and reports whether it existed.
func (a *App) DeleteEmergencyCare(ctx context.Context, id int64) (bool, error) {
	return remove(ctx, a, a.m.EmergencyCare, id)
}

// checkStayDates rejects a discharge before the admission. On update the
// missing side comes from the stored row.
func checkStayDates(_ context.Context, data types.Fields[types.Hospitalization], current *types.Hospitalization) error {
	var admitted, discharged time.Time
	if current != nil {
		admitted, discharged = current.AdmissionDate.Time, current.DischargeDate.Time
	}
	if v, ok := data.Get(types.HospitalizationAdmissionDate); ok {
		if t, ok := asTime(v); ok {
			admitted = t
		}
	}
	if v, ok := data.Get(types.HospitalizationDischargeDate); ok {
		if t, ok := asTime(v); ok {
			discharged = t
		}
	}
	if !admitted.IsZero() && !discharged.IsZero() && discharged.Before(admitted) {
		return types.ErrInvalidDateRange
	}
	return nil
}

