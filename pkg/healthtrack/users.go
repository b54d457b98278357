package healthtrack

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/healthtrack/pkg/types"
)

func (a *App) userRules() rules[types.User] {
	return rules[types.User]{
		required: []types.Column[types.User]{types.UserUserID, types.UserEmail},
		check:    unique(a.m.Users, types.UserUserID, types.ErrDuplicateUser),
	}
}

// CreateUser stores a new user. A user without a user_id is a local user
// and gets a generated UUID v7.
func (a *App) CreateUser(ctx context.Context, data types.Fields[types.User]) (*types.User, error) {
	if v, ok := data.Get(types.UserUserID); !ok || blank(v) {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("generating user id: %w", err)
		}
		data = data.Set(types.UserUserID, id.String())
	}
	return create(ctx, a, a.m.Users, a.userRules(), data)
}

// GetUser returns the user with id, or nil.
func (a *App) GetUser(ctx context.Context, id int64) (*types.User, error) {
	return getByID(ctx, a.m.Users, id)
}

// GetUserByUserID returns the user with the given sign-in subject, or nil.
func (a *App) GetUserByUserID(ctx context.Context, userID string) (*types.User, error) {
	return a.m.Users.GetFirstByFields(ctx, types.FieldsOf(types.UserUserID.Is(userID)))
}

// UserExists reports whether a user with the given user_id exists.
func (a *App) UserExists(ctx context.Context, userID string) (bool, error) {
	u, err := a.GetUserByUserID(ctx, userID)
	return u != nil, err
}

// UpdateUser applies data to the user matching where.
func (a *App) UpdateUser(ctx context.Context, data, where types.Fields[types.User]) (*types.User, error) {
	return update(ctx, a, a.m.Users, a.userRules(), data, where)
}

// DeleteUser deletes the user and, through the foreign keys, their patients.
func (a *App) DeleteUser(ctx context.Context, id int64) (bool, error) {
	return remove(ctx, a, a.m.Users, id)
}
