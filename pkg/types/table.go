package types

// Column names shared by every table.
const (
	ColID                 = "id"
	ColCreatedDate        = "created_date"
	ColUpdatedDate        = "updated_date"
	ColPatientID          = "patient_id"
	ColLinkedHealthSystem = "linked_health_system"
)

// Record is the set of columns every entity carries.
type Record struct {
	ID          int64     `db:"id" json:"id"`
	CreatedDate Timestamp `db:"created_date" json:"created_date"`
	UpdatedDate Timestamp `db:"updated_date" json:"updated_date"`
}

// RecordID returns the row id.
func (r Record) RecordID() int64 { return r.ID }
