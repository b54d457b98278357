package healthtrack

import (
	"context"

	"github.com/mesh-intelligence/healthtrack/pkg/types"
)

func (a *App) contactRules() rules[types.Contact] {
	return rules[types.Contact]{
		required: []types.Column[types.Contact]{types.ContactFirstName, types.ContactPhoneNumber},
		parents:  []parent[types.Contact]{patientParent[types.Contact](a)},
		check:    unique(a.m.Contacts, types.ContactPhoneNumber, types.ErrDuplicatePhoneNumber),
	}
}

// CreateContact stores a contact for an existing patient.
func (a *App) CreateContact(ctx context.Context, data types.Fields[types.Contact]) (*types.Contact, error) {
	return create(ctx, a, a.m.Contacts, a.contactRules(), data)
}

// GetContact returns the contact with id, or nil.
func (a *App) GetContact(ctx context.Context, id int64) (*types.Contact, error) {
	return getByID(ctx, a.m.Contacts, id)
}

// GetContactsByPatient returns the patient's contacts.
func (a *App) GetContactsByPatient(ctx context.Context, patientID int64) ([]types.Contact, error) {
	return a.m.Contacts.GetByFields(ctx, types.FieldsOf(types.ContactPatientID.Is(patientID)))
}

// UpdateContact applies data to the contact matching where.
func (a *App) UpdateContact(ctx context.Context, data, where types.Fields[types.Contact]) (*types.Contact, error) {
	return update(ctx, a, a.m.Contacts, a.contactRules(), data, where)
}

// DeleteContact deletes the contact with id and reports whether it existed.
func (a *App) DeleteContact(ctx context.Context, id int64) (bool, error) {
	return remove(ctx, a, a.m.Contacts, id)
}
