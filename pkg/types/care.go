package types

// Hospitalization is a hospital stay.
type Hospitalization struct {
	Record

	PatientID          int64     `db:"patient_id" json:"patient_id"`
	AdmissionDate      Timestamp `db:"admission_date" json:"admission_date"`
	DischargeDate      Timestamp `db:"discharge_date" json:"discharge_date"`
	Facility           *string   `db:"facility" json:"facility"`
	Details            *string   `db:"details" json:"details"`
	LinkedHealthSystem bool      `db:"linked_health_system" json:"linked_health_system"`
}

// Columns of Hospitalization.
const (
	HospitalizationID                 Column[Hospitalization] = "id"
	HospitalizationPatientID          Column[Hospitalization] = "patient_id"
	HospitalizationAdmissionDate      Column[Hospitalization] = "admission_date"
	HospitalizationDischargeDate      Column[Hospitalization] = "discharge_date"
	HospitalizationFacility           Column[Hospitalization] = "facility"
	HospitalizationDetails            Column[Hospitalization] = "details"
	HospitalizationLinkedHealthSystem Column[Hospitalization] = "linked_health_system"
)

// SurgeryProcedure is a surgery or procedure the patient underwent.
type SurgeryProcedure struct {
	Record

	PatientID          int64      `db:"patient_id" json:"patient_id"`
	ProcedureName      string     `db:"procedure_name" json:"procedure_name"`
	SurgeonName        *string    `db:"surgeon_name" json:"surgeon_name"`
	ProcedureDate      *Timestamp `db:"procedure_date" json:"procedure_date"`
	Facility           *string    `db:"facility" json:"facility"`
	Notes              *string    `db:"notes" json:"notes"`
	LinkedHealthSystem bool       `db:"linked_health_system" json:"linked_health_system"`
}

// Columns of SurgeryProcedure.
const (
	SurgeryProcedureID                 Column[SurgeryProcedure] = "id"
	SurgeryProcedurePatientID          Column[SurgeryProcedure] = "patient_id"
	SurgeryProcedureProcedureName      Column[SurgeryProcedure] = "procedure_name"
	SurgeryProcedureSurgeonName        Column[SurgeryProcedure] = "surgeon_name"
	SurgeryProcedureProcedureDate      Column[SurgeryProcedure] = "procedure_date"
	SurgeryProcedureFacility           Column[SurgeryProcedure] = "facility"
	SurgeryProcedureNotes              Column[SurgeryProcedure] = "notes"
	SurgeryProcedureLinkedHealthSystem Column[SurgeryProcedure] = "linked_health_system"
)

// DischargeInstruction is a set of instructions received on discharge.
type DischargeInstruction struct {
	Record

	PatientID          int64      `db:"patient_id" json:"patient_id"`
	Summary            string     `db:"summary" json:"summary"`
	DischargeDate      *Timestamp `db:"discharge_date" json:"discharge_date"`
	Details            *string    `db:"details" json:"details"`
	LinkedHealthSystem bool       `db:"linked_health_system" json:"linked_health_system"`
}

// Columns of DischargeInstruction.
const (
	DischargeInstructionID                 Column[DischargeInstruction] = "id"
	DischargeInstructionPatientID          Column[DischargeInstruction] = "patient_id"
	DischargeInstructionSummary            Column[DischargeInstruction] = "summary"
	DischargeInstructionDischargeDate      Column[DischargeInstruction] = "discharge_date"
	DischargeInstructionDetails            Column[DischargeInstruction] = "details"
	DischargeInstructionLinkedHealthSystem Column[DischargeInstruction] = "linked_health_system"
)

// Equipment is medical equipment the patient uses. EquipmentName is unique,
// ignoring case.
type Equipment struct {
	Record

	PatientID            int64   `db:"patient_id" json:"patient_id"`
	EquipmentName        string  `db:"equipment_name" json:"equipment_name"`
	EquipmentDescription *string `db:"equipment_description" json:"equipment_description"`
	LinkedHealthSystem   bool    `db:"linked_health_system" json:"linked_health_system"`
}

// Columns of Equipment.
const (
	EquipmentID                   Column[Equipment] = "id"
	EquipmentPatientID            Column[Equipment] = "patient_id"
	EquipmentEquipmentName        Column[Equipment] = "equipment_name"
	EquipmentEquipmentDescription Column[Equipment] = "equipment_description"
	EquipmentLinkedHealthSystem   Column[Equipment] = "linked_health_system"
)

// EmergencyCare is an emergency care instruction for the patient.
type EmergencyCare struct {
	Record

	PatientID          int64   `db:"patient_id" json:"patient_id"`
	Topic              string  `db:"topic" json:"topic"`
	Details            *string `db:"details" json:"details"`
	LinkedHealthSystem bool    `db:"linked_health_system" json:"linked_health_system"`
}

// Columns of EmergencyCare.
const (
	EmergencyCareID                 Column[EmergencyCare] = "id"
	EmergencyCarePatientID          Column[EmergencyCare] = "patient_id"
	EmergencyCareTopic              Column[EmergencyCare] = "topic"
	EmergencyCareDetails            Column[EmergencyCare] = "details"
	EmergencyCareLinkedHealthSystem Column[EmergencyCare] = "linked_health_system"
)
