package types

// Contact is a person to reach on behalf of a patient. PhoneNumber is unique
// across all contacts.
type Contact struct {
	Record

	PatientID          int64   `db:"patient_id" json:"patient_id"`
	FirstName          string  `db:"first_name" json:"first_name"`
	LastName           *string `db:"last_name" json:"last_name"`
	PhoneNumber        string  `db:"phone_number" json:"phone_number"`
	Email              *string `db:"email" json:"email"`
	Relationship       *string `db:"relationship" json:"relationship"`
	Address            *string `db:"address" json:"address"`
	LinkedHealthSystem bool    `db:"linked_health_system" json:"linked_health_system"`
}

// Columns of Contact.
const (
	ContactID                 Column[Contact] = "id"
	ContactPatientID          Column[Contact] = "patient_id"
	ContactFirstName          Column[Contact] = "first_name"
	ContactLastName           Column[Contact] = "last_name"
	ContactPhoneNumber        Column[Contact] = "phone_number"
	ContactEmail              Column[Contact] = "email"
	ContactRelationship       Column[Contact] = "relationship"
	ContactAddress            Column[Contact] = "address"
	ContactLinkedHealthSystem Column[Contact] = "linked_health_system"
)
