package types

// Table names, one per entity.
const (
	TableUser                 = "USER"
	TablePatient              = "PATIENT"
	TableContact              = "CONTACT"
	TableAllergy              = "PATIENT_ALLERGY"
	TableMedication           = "PATIENT_MEDICATION"
	TableGoal                 = "PATIENT_GOAL"
	TableNote                 = "PATIENT_NOTE"
	TableHospitalization      = "PATIENT_HOSPITALIZATION"
	TableSurgeryProcedure     = "PATIENT_SURGERY_PROCEDURE"
	TableDischargeInstruction = "PATIENT_DISCHARGE_INSTRUCTION"
	TableEquipment            = "PATIENT_EQUIPMENT"
	TableEmergencyCare        = "PATIENT_EMERGENCY_CARE"
	TableTrackCategory        = "TRACK_CATEGORY"
	TableTrackItem            = "TRACK_ITEM"
	TableQuestion             = "QUESTION"
	TableResponseOption       = "RESPONSE_OPTION"
	TableTrackItemEntry       = "TRACK_ITEM_ENTRY"
	TableTrackResponse        = "TRACK_RESPONSE"
)

// TableNames lists every table in foreign-key dependency order: a table
// appears after every table it references.
var TableNames = []string{
	TableUser,
	TablePatient,
	TableContact,
	TableAllergy,
	TableMedication,
	TableGoal,
	TableNote,
	TableHospitalization,
	TableSurgeryProcedure,
	TableDischargeInstruction,
	TableEquipment,
	TableEmergencyCare,
	TableTrackCategory,
	TableTrackItem,
	TableQuestion,
	TableResponseOption,
	TableTrackItemEntry,
	TableTrackResponse,
}
