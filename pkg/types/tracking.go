package types

// TrackCategory groups trackable items, such as "Vitals".
type TrackCategory struct {
	Record

	Name string `db:"name" json:"name"`
}

// Columns of TrackCategory.
const (
	TrackCategoryID   Column[TrackCategory] = "id"
	TrackCategoryName Column[TrackCategory] = "name"
)

// TrackItem is something a patient can track, such as "Blood pressure".
type TrackItem struct {
	Record

	CategoryID int64  `db:"category_id" json:"category_id"`
	Name       string `db:"name" json:"name"`
	Frequency  string `db:"frequency" json:"frequency"` // daily or weekly
}

// Columns of TrackItem.
const (
	TrackItemID         Column[TrackItem] = "id"
	TrackItemCategoryID Column[TrackItem] = "category_id"
	TrackItemName       Column[TrackItem] = "name"
	TrackItemFrequency  Column[TrackItem] = "frequency"
)

// Question is asked when a TrackItem is recorded. A question with a
// ParentQuestionID is shown only when DisplayCondition matches the parent's
// answer.
type Question struct {
	Record

	ItemID           int64   `db:"item_id" json:"item_id"`
	QuestionText     string  `db:"question_text" json:"question_text"`
	QuestionType     string  `db:"question_type" json:"question_type"`
	Required         bool    `db:"required" json:"required"`
	ParentQuestionID *int64  `db:"parent_question_id" json:"parent_question_id"`
	DisplayCondition *string `db:"display_condition" json:"display_condition"`
}

// Columns of Question.
const (
	QuestionID               Column[Question] = "id"
	QuestionItemID           Column[Question] = "item_id"
	QuestionQuestionText     Column[Question] = "question_text"
	QuestionQuestionType     Column[Question] = "question_type"
	QuestionRequired         Column[Question] = "required"
	QuestionParentQuestionID Column[Question] = "parent_question_id"
	QuestionDisplayCondition Column[Question] = "display_condition"
)

// ResponseOption is one allowed answer to a choice question.
type ResponseOption struct {
	Record

	QuestionID int64  `db:"question_id" json:"question_id"`
	OptionText string `db:"option_text" json:"option_text"`
}

// Columns of ResponseOption.
const (
	ResponseOptionID         Column[ResponseOption] = "id"
	ResponseOptionQuestionID Column[ResponseOption] = "question_id"
	ResponseOptionOptionText Column[ResponseOption] = "option_text"
)

// TrackItemEntry records that a patient tracks an item on a given day.
type TrackItemEntry struct {
	Record

	PatientID   int64     `db:"patient_id" json:"patient_id"`
	TrackItemID int64     `db:"track_item_id" json:"track_item_id"`
	Date        Timestamp `db:"date" json:"date"`
}

// Columns of TrackItemEntry.
const (
	TrackItemEntryID          Column[TrackItemEntry] = "id"
	TrackItemEntryPatientID   Column[TrackItemEntry] = "patient_id"
	TrackItemEntryTrackItemID Column[TrackItemEntry] = "track_item_id"
	TrackItemEntryDate        Column[TrackItemEntry] = "date"
)

// TrackResponse is the answer to one question for one entry.
type TrackResponse struct {
	Record

	TrackItemEntryID int64  `db:"track_item_entry_id" json:"track_item_entry_id"`
	QuestionID       int64  `db:"question_id" json:"question_id"`
	Answer           string `db:"answer" json:"answer"`
}

// Columns of TrackResponse.
const (
	TrackResponseID               Column[TrackResponse] = "id"
	TrackResponseTrackItemEntryID Column[TrackResponse] = "track_item_entry_id"
	TrackResponseQuestionID       Column[TrackResponse] = "question_id"
	TrackResponseAnswer           Column[TrackResponse] = "answer"
)

// Question types.
const (
	QuestionTypeBoolean      = "boolean"
	QuestionTypeText         = "text"
	QuestionTypeNumeric      = "numeric"
	QuestionTypeSingleChoice = "single_choice"
	QuestionTypeMultiChoice  = "multi_choice"
)

// Track item frequencies.
const (
	FrequencyDaily  = "daily"
	FrequencyWeekly = "weekly"
)

// Questionnaire is a question together with its response options.
type Questionnaire struct {
	Question Question         `json:"question"`
	Options  []ResponseOption `json:"options"`
}
