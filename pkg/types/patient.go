package types

// Patient is a person whose health is tracked. UserID links the patient to
// the owning User.
type Patient struct {
	Record

	UserID             string     `db:"user_id" json:"user_id"`
	FirstName          string     `db:"first_name" json:"first_name"`
	LastName           string     `db:"last_name" json:"last_name"`
	BirthDate          *Timestamp `db:"birth_date" json:"birth_date"`
	Gender             *string    `db:"gender" json:"gender"`
	BloodType          *string    `db:"blood_type" json:"blood_type"`
	Weight             *float64   `db:"weight" json:"weight"`
	WeightUnit         *string    `db:"weight_unit" json:"weight_unit"`
	Height             *float64   `db:"height" json:"height"`
	HeightUnit         *string    `db:"height_unit" json:"height_unit"`
	ProfilePicture     *string    `db:"profile_picture" json:"profile_picture"` // URI of the picture, not its bytes.
	LinkedHealthSystem bool       `db:"linked_health_system" json:"linked_health_system"`
}

// Columns of Patient.
const (
	PatientID                 Column[Patient] = "id"
	PatientUserID             Column[Patient] = "user_id"
	PatientFirstName          Column[Patient] = "first_name"
	PatientLastName           Column[Patient] = "last_name"
	PatientBirthDate          Column[Patient] = "birth_date"
	PatientGender             Column[Patient] = "gender"
	PatientBloodType          Column[Patient] = "blood_type"
	PatientWeight             Column[Patient] = "weight"
	PatientWeightUnit         Column[Patient] = "weight_unit"
	PatientHeight             Column[Patient] = "height"
	PatientHeightUnit         Column[Patient] = "height_unit"
	PatientProfilePicture     Column[Patient] = "profile_picture"
	PatientLinkedHealthSystem Column[Patient] = "linked_health_system"
)
