package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/mesh-intelligence/healthtrack/pkg/types"
)

// seedCategory describes a reference tracking category and its items.
type seedCategory struct {
	name  string
	items []seedItem
}

type seedItem struct {
	name      string
	frequency string
	questions []seedQuestion
}

// seedQuestion is a question with its response options. Follow-ups are
// asked only when the parent's answer equals their condition.
type seedQuestion struct {
	text      string
	qtype     string
	required  bool
	options   []string
	followUps []seedFollowUp
}

type seedFollowUp struct {
	condition string
	question  seedQuestion
}

// referenceCategories is the tracking catalogue every install starts with.
var referenceCategories = []seedCategory{
	{
		name: "Vitals",
		items: []seedItem{
			{
				name:      "Blood pressure",
				frequency: types.FrequencyDaily,
				questions: []seedQuestion{
					{text: "Systolic (mmHg)", qtype: types.QuestionTypeNumeric, required: true},
					{text: "Diastolic (mmHg)", qtype: types.QuestionTypeNumeric, required: true},
				},
			},
			{
				name:      "Weight",
				frequency: types.FrequencyWeekly,
				questions: []seedQuestion{
					{text: "Weight", qtype: types.QuestionTypeNumeric, required: true},
				},
			},
			{
				name:      "Temperature",
				frequency: types.FrequencyDaily,
				questions: []seedQuestion{
					{text: "Temperature", qtype: types.QuestionTypeNumeric, required: true},
				},
			},
		},
	},
	{
		name: "Symptoms",
		items: []seedItem{
			{
				name:      "Pain",
				frequency: types.FrequencyDaily,
				questions: []seedQuestion{
					{
						text:     "Are you in pain today?",
						qtype:    types.QuestionTypeBoolean,
						required: true,
						options:  []string{"Yes", "No"},
						followUps: []seedFollowUp{
							{
								condition: "Yes",
								question: seedQuestion{
									text:    "How severe is the pain?",
									qtype:   types.QuestionTypeSingleChoice,
									options: []string{"Mild", "Moderate", "Severe"},
								},
							},
							{
								condition: "Yes",
								question: seedQuestion{
									text:  "Where is the pain?",
									qtype: types.QuestionTypeText,
								},
							},
						},
					},
				},
			},
			{
				name:      "Sleep",
				frequency: types.FrequencyDaily,
				questions: []seedQuestion{
					{text: "Hours slept", qtype: types.QuestionTypeNumeric, required: true},
					{
						text:    "How rested do you feel?",
						qtype:   types.QuestionTypeSingleChoice,
						options: []string{"Not at all", "Somewhat", "Well rested"},
					},
				},
			},
		},
	},
	{
		name: "Mental wellbeing",
		items: []seedItem{
			{
				name:      "Mood",
				frequency: types.FrequencyDaily,
				questions: []seedQuestion{
					{
						text:     "How is your mood?",
						qtype:    types.QuestionTypeSingleChoice,
						required: true,
						options:  []string{"Low", "Okay", "Good", "Great"},
					},
					{
						text:    "What affected your mood?",
						qtype:   types.QuestionTypeMultiChoice,
						options: []string{"Sleep", "Work", "Family", "Health", "Other"},
					},
					{text: "Anything else to note?", qtype: types.QuestionTypeText},
				},
			},
		},
	},
}

// Sample data identity.
const (
	SampleUserID    = "demo"
	sampleUserEmail = "demo@example.com"
)

// cols builds columnValues from alternating column names and values.
func cols(pairs ...any) columnValues {
	var cv columnValues
	for i := 0; i+1 < len(pairs); i += 2 {
		cv.add(pairs[i].(string), pairs[i+1])
	}
	return cv
}

func (cv columnValues) with(o columnValues) columnValues {
	var out columnValues
	out.cols = append(append(out.cols, cv.cols...), o.cols...)
	out.vals = append(append(out.vals, cv.vals...), o.vals...)
	return out
}

// ensureRow returns the id of the row matching key, inserting key plus
// extra when no such row exists.
func ensureRow(ctx context.Context, tx *sqlx.Tx, table string, key, extra columnValues) (int64, error) {
	q, args := selectIDSQL(table, key)
	var id int64
	err := tx.GetContext(ctx, &id, q, args...)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("looking up %s seed: %w", table, err)
	}

	q, args = insertSQL(table, key.with(extra), false)
	res, err := tx.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, fmt.Errorf("seeding %s: %w", table, err)
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("seeding %s: %w", table, err)
	}
	return id, nil
}

// seedReferenceData loads the tracking catalogue. Rows are keyed on their
// natural keys, so running it again adds only what is missing.
func seedReferenceData(ctx context.Context, tx *sqlx.Tx) error {
	for _, c := range referenceCategories {
		catID, err := ensureRow(ctx, tx, types.TableTrackCategory,
			cols(types.TrackCategoryName.String(), c.name), columnValues{})
		if err != nil {
			return err
		}
		for _, item := range c.items {
			itemID, err := ensureRow(ctx, tx, types.TableTrackItem,
				cols(types.TrackItemCategoryID.String(), catID, types.TrackItemName.String(), item.name),
				cols(types.TrackItemFrequency.String(), item.frequency))
			if err != nil {
				return err
			}
			for _, q := range item.questions {
				if err := seedQuestionTree(ctx, tx, itemID, q, nil, nil); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func seedQuestionTree(ctx context.Context, tx *sqlx.Tx, itemID int64, q seedQuestion, parentID *int64, condition *string) error {
	qID, err := ensureRow(ctx, tx, types.TableQuestion,
		cols(types.QuestionItemID.String(), itemID, types.QuestionQuestionText.String(), q.text),
		cols(
			types.QuestionQuestionType.String(), q.qtype,
			types.QuestionRequired.String(), q.required,
			types.QuestionParentQuestionID.String(), parentID,
			types.QuestionDisplayCondition.String(), condition,
		))
	if err != nil {
		return err
	}
	for _, opt := range q.options {
		_, err := ensureRow(ctx, tx, types.TableResponseOption,
			cols(types.ResponseOptionQuestionID.String(), qID, types.ResponseOptionOptionText.String(), opt),
			columnValues{})
		if err != nil {
			return err
		}
	}
	for _, f := range q.followUps {
		cond := f.condition
		if err := seedQuestionTree(ctx, tx, itemID, f.question, &qID, &cond); err != nil {
			return err
		}
	}
	return nil
}

// seedSampleData loads a demo user and patient with one record in each
// clinical table.
func seedSampleData(ctx context.Context, tx *sqlx.Tx) error {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
	}

	if _, err := ensureRow(ctx, tx, types.TableUser,
		cols(types.UserUserID.String(), SampleUserID),
		cols(types.UserEmail.String(), sampleUserEmail, types.UserDisplayName.String(), "Alex Sample"),
	); err != nil {
		return err
	}
	patientID, err := ensureRow(ctx, tx, types.TablePatient,
		cols(
			types.PatientUserID.String(), SampleUserID,
			types.PatientFirstName.String(), "Alex",
			types.PatientLastName.String(), "Sample",
		),
		cols(
			types.PatientBirthDate.String(), day(1980, time.April, 12),
			types.PatientGender.String(), "female",
			types.PatientBloodType.String(), "O+",
			types.PatientWeight.String(), 68.5,
			types.PatientWeightUnit.String(), "kg",
			types.PatientHeight.String(), 170.0,
			types.PatientHeightUnit.String(), "cm",
		))
	if err != nil {
		return err
	}

	rows := []struct {
		table string
		key   columnValues
		extra columnValues
	}{
		{types.TableContact,
			cols(types.ContactPhoneNumber.String(), "+15550100"),
			cols(types.ContactPatientID.String(), patientID, types.ContactFirstName.String(), "Sam",
				types.ContactLastName.String(), "Sample", types.ContactRelationship.String(), "spouse")},
		{types.TableAllergy,
			cols(types.AllergyPatientID.String(), patientID, types.AllergyAllergyName.String(), "Penicillin"),
			cols(types.AllergyReaction.String(), "Hives", types.AllergySeverity.String(), "moderate")},
		{types.TableMedication,
			cols(types.MedicationPatientID.String(), patientID, types.MedicationMedicationName.String(), "Lisinopril"),
			cols(types.MedicationDosage.String(), "10 mg", types.MedicationFrequency.String(), "once daily",
				types.MedicationStartDate.String(), day(2023, time.January, 5))},
		{types.TableGoal,
			cols(types.GoalPatientID.String(), patientID, types.GoalGoalDescription.String(), "Walk 30 minutes a day"),
			cols(types.GoalTargetDate.String(), day(2025, time.June, 1), types.GoalStatus.String(), types.GoalStatusActive)},
		{types.TableNote,
			cols(types.NotePatientID.String(), patientID, types.NoteTopic.String(), "Ask about sleep"),
			cols(types.NoteDetails.String(), "Bring sleep log to next appointment")},
		{types.TableHospitalization,
			cols(types.HospitalizationPatientID.String(), patientID,
				types.HospitalizationAdmissionDate.String(), day(2022, time.March, 3)),
			cols(types.HospitalizationDischargeDate.String(), day(2022, time.March, 7),
				types.HospitalizationFacility.String(), "General Hospital",
				types.HospitalizationDetails.String(), "Pneumonia")},
		{types.TableSurgeryProcedure,
			cols(types.SurgeryProcedurePatientID.String(), patientID,
				types.SurgeryProcedureProcedureName.String(), "Appendectomy"),
			cols(types.SurgeryProcedureProcedureDate.String(), day(2010, time.August, 19),
				types.SurgeryProcedureFacility.String(), "General Hospital")},
		{types.TableDischargeInstruction,
			cols(types.DischargeInstructionPatientID.String(), patientID,
				types.DischargeInstructionSummary.String(), "Rest and fluids"),
			cols(types.DischargeInstructionDischargeDate.String(), day(2022, time.March, 7))},
		{types.TableEquipment,
			cols(types.EquipmentEquipmentName.String(), "Blood pressure cuff"),
			cols(types.EquipmentPatientID.String(), patientID,
				types.EquipmentEquipmentDescription.String(), "Upper arm, automatic")},
		{types.TableEmergencyCare,
			cols(types.EmergencyCarePatientID.String(), patientID, types.EmergencyCareTopic.String(), "Penicillin allergy"),
			cols(types.EmergencyCareDetails.String(), "Do not administer penicillin-class antibiotics")},
	}
	for _, r := range rows {
		if _, err := ensureRow(ctx, tx, r.table, r.key, r.extra); err != nil {
			return err
		}
	}
	return nil
}
