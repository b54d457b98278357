package healthtrack

import (
	"context"
	"time"

	"github.com/mesh-intelligence/healthtrack/pkg/types"
)

func (a *App) trackCategoryRules() rules[types.TrackCategory] {
	return rules[types.TrackCategory]{
		required: []types.Column[types.TrackCategory]{types.TrackCategoryName},
		check:    unique(a.m.TrackCategories, types.TrackCategoryName, types.ErrDuplicateCategory),
	}
}

// CreateTrackCategory stores a tracking category. Names are unique.
func (a *App) CreateTrackCategory(ctx context.Context, data types.Fields[types.TrackCategory]) (*types.TrackCategory, error) {
	return create(ctx, a, a.m.TrackCategories, a.trackCategoryRules(), data)
}

// GetTrackCategory returns the category with id, or nil.
func (a *App) GetTrackCategory(ctx context.Context, id int64) (*types.TrackCategory, error) {
	return getByID(ctx, a.m.TrackCategories, id)
}

// GetTrackCategories returns every category.
func (a *App) GetTrackCategories(ctx context.Context) ([]types.TrackCategory, error) {
	return a.m.TrackCategories.GetAll(ctx)
}

// UpdateTrackCategory applies data to the category matching where.
func (a *App) UpdateTrackCategory(ctx context.Context, data, where types.Fields[types.TrackCategory]) (*types.TrackCategory, error) {
	return update(ctx, a, a.m.TrackCategories, a.trackCategoryRules(), data, where)
}

// DeleteTrackCategory deletes the category with its items and their
// questions.
func (a *App) DeleteTrackCategory(ctx context.Context, id int64) (bool, error) {
	return remove(ctx, a, a.m.TrackCategories, id)
}

func (a *App) trackItemRules() rules[types.TrackItem] {
	return rules[types.TrackItem]{
		required: []types.Column[types.TrackItem]{types.TrackItemCategoryID, types.TrackItemName},
		parents: []parent[types.TrackItem]{
			{types.TrackItemCategoryID, existsByID(a.m.TrackCategories)},
		},
	}
}

// CreateTrackItem stores a trackable item in an existing category.
func (a *App) CreateTrackItem(ctx context.Context, data types.Fields[types.TrackItem]) (*types.TrackItem, error) {
	return create(ctx, a, a.m.TrackItems, a.trackItemRules(), data)
}

// GetTrackItem returns the item with id, or nil.
func (a *App) GetTrackItem(ctx context.Context, id int64) (*types.TrackItem, error) {
	return getByID(ctx, a.m.TrackItems, id)
}

// GetTrackItemsByCategory returns the items of a category.
func (a *App) GetTrackItemsByCategory(ctx context.Context, categoryID int64) ([]types.TrackItem, error) {
	return a.m.TrackItems.GetByFields(ctx, types.FieldsOf(types.TrackItemCategoryID.Is(categoryID)))
}

// UpdateTrackItem applies data to the item matching where.
func (a *App) UpdateTrackItem(ctx context.Context, data, where types.Fields[types.TrackItem]) (*types.TrackItem, error) {
	return update(ctx, a, a.m.TrackItems, a.trackItemRules(), data, where)
}

// DeleteTrackItem deletes the item with id.
func (a *App) DeleteTrackItem(ctx context.Context, id int64) (bool, error) {
	return remove(ctx, a, a.m.TrackItems, id)
}

func (a *App) questionRules() rules[types.Question] {
	return rules[types.Question]{
		required: []types.Column[types.Question]{types.QuestionItemID, types.QuestionQuestionText},
		parents: []parent[types.Question]{
			{types.QuestionItemID, existsByID(a.m.TrackItems)},
			{types.QuestionParentQuestionID, existsByID(a.m.Questions)},
		},
	}
}

// CreateQuestion stores a question for an existing item. A follow-up
// question names its parent question and the answer that shows it.
func (a *App) CreateQuestion(ctx context.Context, data types.Fields[types.Question]) (*types.Question, error) {
	return create(ctx, a, a.m.Questions, a.questionRules(), data)
}

// GetQuestion returns the question with id, or nil.
func (a *App) GetQuestion(ctx context.Context, id int64) (*types.Question, error) {
	return getByID(ctx, a.m.Questions, id)
}

// GetQuestionsByItem returns the questions of an item in creation order.
func (a *App) GetQuestionsByItem(ctx context.Context, itemID int64) ([]types.Question, error) {
	return a.m.Questions.GetByFields(ctx, types.FieldsOf(types.QuestionItemID.Is(itemID)))
}

// UpdateQuestion applies data to the question matching where.
func (a *App) UpdateQuestion(ctx context.Context, data, where types.Fields[types.Question]) (*types.Question, error) {
	return update(ctx, a, a.m.Questions, a.questionRules(), data, where)
}

// DeleteQuestion deletes the question with its options and follow-ups.
func (a *App) DeleteQuestion(ctx context.Context, id int64) (bool, error) {
	return remove(ctx, a, a.m.Questions, id)
}

func (a *App) responseOptionRules() rules[types.ResponseOption] {
	return rules[types.ResponseOption]{
		required: []types.Column[types.ResponseOption]{types.ResponseOptionQuestionID, types.ResponseOptionOptionText},
		parents: []parent[types.ResponseOption]{
			{types.ResponseOptionQuestionID, existsByID(a.m.Questions)},
		},
	}
}

// CreateResponseOption stores a selectable answer for an existing question.
func (a *App) CreateResponseOption(ctx context.Context, data types.Fields[types.ResponseOption]) (*types.ResponseOption, error) {
	return create(ctx, a, a.m.ResponseOptions, a.responseOptionRules(), data)
}

// GetResponseOption returns the option with id, or nil.
func (a *App) GetResponseOption(ctx context.Context, id int64) (*types.ResponseOption, error) {
	return getByID(ctx, a.m.ResponseOptions, id)
}

// GetResponseOptionsByQuestion returns the options of a question.
func (a *App) GetResponseOptionsByQuestion(ctx context.Context, questionID int64) ([]types.ResponseOption, error) {
	return a.m.ResponseOptions.GetByFields(ctx, types.FieldsOf(types.ResponseOptionQuestionID.Is(questionID)))
}

// UpdateResponseOption applies data to the option matching where.
func (a *App) UpdateResponseOption(ctx context.Context, data, where types.Fields[types.ResponseOption]) (*types.ResponseOption, error) {
	return update(ctx, a, a.m.ResponseOptions, a.responseOptionRules(), data, where)
}

// DeleteResponseOption deletes the option with id.
func (a *App) DeleteResponseOption(ctx context.Context, id int64) (bool, error) {
	return remove(ctx, a, a.m.ResponseOptions, id)
}

// GetQuestionnaire returns the questions of an item, each with its
// response options. Follow-ups are included and point at their parent
// through ParentQuestionID.
func (a *App) GetQuestionnaire(ctx context.Context, itemID int64) ([]types.Questionnaire, error) {
	questions, err := a.GetQuestionsByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	out := make([]types.Questionnaire, 0, len(questions))
	for _, q := range questions {
		opts, err := a.GetResponseOptionsByQuestion(ctx, q.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, types.Questionnaire{Question: q, Options: opts})
	}
	return out, nil
}

func (a *App) trackItemEntryRules() rules[types.TrackItemEntry] {
	return rules[types.TrackItemEntry]{
		required: []types.Column[types.TrackItemEntry]{
			types.TrackItemEntryPatientID, types.TrackItemEntryTrackItemID, types.TrackItemEntryDate,
		},
		parents: []parent[types.TrackItemEntry]{
			patientParent[types.TrackItemEntry](a),
			{types.TrackItemEntryTrackItemID, existsByID(a.m.TrackItems)},
		},
	}
}

// CreateTrackItemEntry records that a patient tracked an item on a date.
func (a *App) CreateTrackItemEntry(ctx context.Context, data types.Fields[types.TrackItemEntry]) (*types.TrackItemEntry, error) {
	return create(ctx, a, a.m.TrackItemEntries, a.trackItemEntryRules(), data)
}

// GetTrackItemEntry returns the entry with id, or nil.
func (a *App) GetTrackItemEntry(ctx context.Context, id int64) (*types.TrackItemEntry, error) {
	return getByID(ctx, a.m.TrackItemEntries, id)
}

// GetTrackItemEntriesByPatient returns every entry of a patient.
func (a *App) GetTrackItemEntriesByPatient(ctx context.Context, patientID int64) ([]types.TrackItemEntry, error) {
	return a.m.TrackItemEntries.GetByFields(ctx, types.FieldsOf(types.TrackItemEntryPatientID.Is(patientID)))
}

// GetEntriesForDate returns the patient's entries dated within the calendar
// day of day, in day's location.
func (a *App) GetEntriesForDate(ctx context.Context, patientID int64, day time.Time) ([]types.TrackItemEntry, error) {
	entries, err := a.GetTrackItemEntriesByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)
	out := []types.TrackItemEntry{}
	for _, e := range entries {
		if !e.Date.Before(start) && e.Date.Before(end) {
			out = append(out, e)
		}
	}
	return out, nil
}

// UpdateTrackItemEntry applies data to the entry matching where.
func (a *App) UpdateTrackItemEntry(ctx context.Context, data, where types.Fields[types.TrackItemEntry]) (*types.TrackItemEntry, error) {
	return update(ctx, a, a.m.TrackItemEntries, a.trackItemEntryRules(), data, where)
}

// DeleteTrackItemEntry deletes the entry with its responses.
func (a *App) DeleteTrackItemEntry(ctx context.Context, id int64) (bool, error) {
	return remove(ctx, a, a.m.TrackItemEntries, id)
}

func (a *App) trackResponseRules() rules[types.TrackResponse] {
	return rules[types.TrackResponse]{
		required: []types.Column[types.TrackResponse]{
			types.TrackResponseTrackItemEntryID, types.TrackResponseQuestionID, types.TrackResponseAnswer,
		},
		parents: []parent[types.TrackResponse]{
			{types.TrackResponseTrackItemEntryID, existsByID(a.m.TrackItemEntries)},
			{types.TrackResponseQuestionID, existsByID(a.m.Questions)},
		},
	}
}

// CreateTrackResponse stores the answer to one question of an entry.
func (a *App) CreateTrackResponse(ctx context.Context, data types.Fields[types.TrackResponse]) (*types.TrackResponse, error) {
	return create(ctx, a, a.m.TrackResponses, a.trackResponseRules(), data)
}

// GetTrackResponse returns the response with id, or nil.
func (a *App) GetTrackResponse(ctx context.Context, id int64) (*types.TrackResponse, error) {
	return getByID(ctx, a.m.TrackResponses, id)
}

// GetResponsesByEntry returns the responses recorded for an entry.
func (a *App) GetResponsesByEntry(ctx context.Context, entryID int64) ([]types.TrackResponse, error) {
	return a.m.TrackResponses.GetByFields(ctx, types.FieldsOf(types.TrackResponseTrackItemEntryID.Is(entryID)))
}

// UpdateTrackResponse applies data to the response matching where.
func (a *App) UpdateTrackResponse(ctx context.Context, data, where types.Fields[types.TrackResponse]) (*types.TrackResponse, error) {
	return update(ctx, a, a.m.TrackResponses, a.trackResponseRules(), data, where)
}

// DeleteTrackResponse deletes the response with id.
func (a *App) DeleteTrackResponse(ctx context.Context, id int64) (bool, error) {
	return remove(ctx, a, a.m.TrackResponses, id)
}
