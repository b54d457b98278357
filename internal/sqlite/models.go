package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mesh-intelligence/healthtrack/pkg/types"
)

// Models holds one mapper per entity.
type Models struct {
	Users                 *Model[types.User]
	Patients              *Model[types.Patient]
	Contacts              *Model[types.Contact]
	Allergies             *Model[types.Allergy]
	Medications           *Model[types.Medication]
	Goals                 *Model[types.Goal]
	Notes                 *Model[types.Note]
	Hospitalizations      *Model[types.Hospitalization]
	SurgeryProcedures     *Model[types.SurgeryProcedure]
	DischargeInstructions *Model[types.DischargeInstruction]
	Equipment             *Model[types.Equipment]
	EmergencyCare         *Model[types.EmergencyCare]
	TrackCategories       *Model[types.TrackCategory]
	TrackItems            *Model[types.TrackItem]
	Questions             *Model[types.Question]
	ResponseOptions       *Model[types.ResponseOption]
	TrackItemEntries      *Model[types.TrackItemEntry]
	TrackResponses        *Model[types.TrackResponse]
}

// bind sets *dst to a mapper for table.
func bind[T any](dst **Model[T], db *sqlx.DB, table string, obs Observer) error {
	m, err := NewModel[T](db, table, obs)
	if err != nil {
		return err
	}
	*dst = m
	return nil
}

// NewModels binds every entity to its table.
func NewModels(db *sqlx.DB, obs Observer) (*Models, error) {
	m := &Models{}
	binds := []error{
		bind(&m.Users, db, types.TableUser, obs),
		bind(&m.Patients, db, types.TablePatient, obs),
		bind(&m.Contacts, db, types.TableContact, obs),
		bind(&m.Allergies, db, types.TableAllergy, obs),
		bind(&m.Medications, db, types.TableMedication, obs),
		bind(&m.Goals, db, types.TableGoal, obs),
		bind(&m.Notes, db, types.TableNote, obs),
		bind(&m.Hospitalizations, db, types.TableHospitalization, obs),
		bind(&m.SurgeryProcedures, db, types.TableSurgeryProcedure, obs),
		bind(&m.DischargeInstructions, db, types.TableDischargeInstruction, obs),
		bind(&m.Equipment, db, types.TableEquipment, obs),
		bind(&m.EmergencyCare, db, types.TableEmergencyCare, obs),
		bind(&m.TrackCategories, db, types.TableTrackCategory, obs),
		bind(&m.TrackItems, db, types.TableTrackItem, obs),
		bind(&m.Questions, db, types.TableQuestion, obs),
		bind(&m.ResponseOptions, db, types.TableResponseOption, obs),
		bind(&m.TrackItemEntries, db, types.TableTrackItemEntry, obs),
		bind(&m.TrackResponses, db, types.TableTrackResponse, obs),
	}
	for _, err := range binds {
		if err != nil {
			return nil, fmt.Errorf("binding models: %w", err)
		}
	}
	return m, nil
}

// Tables returns the untyped views in foreign-key order.
func (m *Models) Tables() []Table {
	return []Table{
		m.Users,
		m.Patients,
		m.Contacts,
		m.Allergies,
		m.Medications,
		m.Goals,
		m.Notes,
		m.Hospitalizations,
		m.SurgeryProcedures,
		m.DischargeInstructions,
		m.Equipment,
		m.EmergencyCare,
		m.TrackCategories,
		m.TrackItems,
		m.Questions,
		m.ResponseOptions,
		m.TrackItemEntries,
		m.TrackResponses,
	}
}
