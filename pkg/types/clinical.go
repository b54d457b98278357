package types

// Allergy is a known patient allergy.
type Allergy struct {
	Record

	PatientID          int64   `db:"patient_id" json:"patient_id"`
	AllergyName        string  `db:"allergy_name" json:"allergy_name"`
	Reaction           *string `db:"reaction" json:"reaction"`
	Severity           *string `db:"severity" json:"severity"`
	Notes              *string `db:"notes" json:"notes"`
	LinkedHealthSystem bool    `db:"linked_health_system" json:"linked_health_system"`
}

// Columns of Allergy.
const (
	AllergyID                 Column[Allergy] = "id"
	AllergyPatientID          Column[Allergy] = "patient_id"
	AllergyAllergyName        Column[Allergy] = "allergy_name"
	AllergyReaction           Column[Allergy] = "reaction"
	AllergySeverity           Column[Allergy] = "severity"
	AllergyNotes              Column[Allergy] = "notes"
	AllergyLinkedHealthSystem Column[Allergy] = "linked_health_system"
)

// Medication is a medication the patient takes or took.
type Medication struct {
	Record

	PatientID          int64      `db:"patient_id" json:"patient_id"`
	MedicationName     string     `db:"medication_name" json:"medication_name"`
	Dosage             *string    `db:"dosage" json:"dosage"`
	Frequency          *string    `db:"frequency" json:"frequency"`
	StartDate          *Timestamp `db:"start_date" json:"start_date"`
	EndDate            *Timestamp `db:"end_date" json:"end_date"`
	Prescriber         *string    `db:"prescriber" json:"prescriber"`
	Notes              *string    `db:"notes" json:"notes"`
	LinkedHealthSystem bool       `db:"linked_health_system" json:"linked_health_system"`
}

// Columns of Medication.
const (
	MedicationID                 Column[Medication] = "id"
	MedicationPatientID          Column[Medication] = "patient_id"
	MedicationMedicationName     Column[Medication] = "medication_name"
	MedicationDosage             Column[Medication] = "dosage"
	MedicationFrequency          Column[Medication] = "frequency"
	MedicationStartDate          Column[Medication] = "start_date"
	MedicationEndDate            Column[Medication] = "end_date"
	MedicationPrescriber         Column[Medication] = "prescriber"
	MedicationNotes              Column[Medication] = "notes"
	MedicationLinkedHealthSystem Column[Medication] = "linked_health_system"
)

// Goal is a care goal set for the patient.
type Goal struct {
	Record

	PatientID          int64      `db:"patient_id" json:"patient_id"`
	GoalDescription    string     `db:"goal_description" json:"goal_description"`
	TargetDate         *Timestamp `db:"target_date" json:"target_date"`
	Status             string     `db:"status" json:"status"` // active or completed
	LinkedHealthSystem bool       `db:"linked_health_system" json:"linked_health_system"`
}

// Columns of Goal.
const (
	GoalID                 Column[Goal] = "id"
	GoalPatientID          Column[Goal] = "patient_id"
	GoalGoalDescription    Column[Goal] = "goal_description"
	GoalTargetDate         Column[Goal] = "target_date"
	GoalStatus             Column[Goal] = "status"
	GoalLinkedHealthSystem Column[Goal] = "linked_health_system"
)

// Note is a free-form patient note with an optional reminder.
type Note struct {
	Record

	PatientID          int64      `db:"patient_id" json:"patient_id"`
	Topic              string     `db:"topic" json:"topic"`
	Details            *string    `db:"details" json:"details"`
	ReminderDate       *Timestamp `db:"reminder_date" json:"reminder_date"`
	LinkedHealthSystem bool       `db:"linked_health_system" json:"linked_health_system"`
}

// Columns of Note.
const (
	NoteID                 Column[Note] = "id"
	NotePatientID          Column[Note] = "patient_id"
	NoteTopic              Column[Note] = "topic"
	NoteDetails            Column[Note] = "details"
	NoteReminderDate       Column[Note] = "reminder_date"
	NoteLinkedHealthSystem Column[Note] = "linked_health_system"
)

// Goal statuses.
const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
)
