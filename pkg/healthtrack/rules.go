package healthtrack

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/healthtrack/internal/sqlite"
	"github.com/mesh-intelligence/healthtrack/pkg/types"
)

// parent is a column that references a row in another table.
type parent[T any] struct {
	col    types.Column[T]
	exists func(ctx context.Context, v any) (bool, error)
}

// rules describe how rows of T are validated on create and update.
type rules[T any] struct {
	required []types.Column[T]
	parents  []parent[T]
	// check runs after required and parent validation. current is nil on
	// create and the row being changed on update.
	check func(ctx context.Context, data types.Fields[T], current *T) error
}

func colID[T any]() types.Column[T]          { return types.Column[T](types.ColID) }
func colCreatedDate[T any]() types.Column[T] { return types.Column[T](types.ColCreatedDate) }
func colUpdatedDate[T any]() types.Column[T] { return types.Column[T](types.ColUpdatedDate) }

// idOf returns the id of a stored row, or 0 for nil.
func idOf[T any](row *T) int64 {
	if row == nil {
		return 0
	}
	if r, ok := any(row).(interface{ RecordID() int64 }); ok {
		return r.RecordID()
	}
	return 0
}

// blank reports whether v is missing for a required column: NULL, a nil
// pointer or text that is empty after trimming.
func blank(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	case *string:
		return x == nil || strings.TrimSpace(*x) == ""
	case *int64:
		return x == nil
	case *types.Timestamp:
		return x == nil
	case *time.Time:
		return x == nil
	}
	return false
}

// validate applies r to data. It reports ok=false when a referenced parent
// does not exist. With full set, every required column must be present.
func (r rules[T]) validate(ctx context.Context, data types.Fields[T], current *T, full bool) (bool, error) {
	for _, col := range r.required {
		v, ok := data.Get(col)
		if !ok && !full {
			continue
		}
		if !ok || blank(v) {
			return false, fmt.Errorf("%w: %s", types.ErrRequiredField, col)
		}
	}
	for _, p := range r.parents {
		v, ok := data.Get(p.col)
		if !ok || blank(v) {
			continue
		}
		found, err := p.exists(ctx, v)
		if err != nil {
			return false, err
		}
		if !found {
			return false, nil
		}
	}
	if r.check != nil {
		if err := r.check(ctx, data, current); err != nil {
			return false, err
		}
	}
	return true, nil
}

// create validates data, stamps both dates and inserts the row. Caller
// values for id and the dates are ignored.
func create[T any](ctx context.Context, a *App, m *sqlite.Model[T], r rules[T], data types.Fields[T]) (*T, error) {
	data = data.Without(colID[T]())
	ok, err := r.validate(ctx, data, nil, true)
	if err != nil {
		a.logger.Debug("create rejected", "table", m.Name(), "error", err)
		return nil, err
	}
	if !ok {
		a.logger.Debug("create skipped, parent not found", "table", m.Name())
		return nil, nil
	}
	now := a.stamp()
	data = data.Set(colCreatedDate[T](), now).Set(colUpdatedDate[T](), now)
	return m.Insert(ctx, data)
}

// update finds the row matching where and applies data to it. id and
// created_date cannot be changed; updated_date is always re-stamped. A
// missing row or a missing new parent returns nil, nil.
func update[T any](ctx context.Context, a *App, m *sqlite.Model[T], r rules[T], data, where types.Fields[T]) (*T, error) {
	current, err := m.GetFirstByFields(ctx, where)
	if err != nil || current == nil {
		return nil, err
	}
	data = data.Without(colID[T](), colCreatedDate[T]())
	ok, err := r.validate(ctx, data, current, false)
	if err != nil {
		a.logger.Debug("update rejected", "table", m.Name(), "error", err)
		return nil, err
	}
	if !ok {
		a.logger.Debug("update skipped, parent not found", "table", m.Name())
		return nil, nil
	}
	data = data.Set(colUpdatedDate[T](), a.stamp())
	rows, err := m.UpdateByFields(ctx, data, types.FieldsOf(colID[T]().Is(idOf(current))))
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

// getByID returns the row with id, or nil.
func getByID[T any](ctx context.Context, m *sqlite.Model[T], id int64) (*T, error) {
	return m.GetFirstByFields(ctx, types.FieldsOf(colID[T]().Is(id)))
}

// remove deletes the row with id and reports whether it existed. Child rows
// go with it through the foreign keys.
func remove[T any](ctx context.Context, a *App, m *sqlite.Model[T], id int64) (bool, error) {
	n, err := m.DeleteByFields(ctx, types.FieldsOf(colID[T]().Is(id)))
	if err != nil {
		return false, err
	}
	if n == 0 {
		a.logger.Debug("delete skipped, row not found", "table", m.Name(), "id", id)
	}
	return n > 0, nil
}

// taken reports whether another row than current already has v in col.
func taken[T any](ctx context.Context, m *sqlite.Model[T], col types.Column[T], v any, current *T) (bool, error) {
	found, err := m.GetFirstByFields(ctx, types.FieldsOf(col.Is(v)))
	if err != nil || found == nil {
		return false, err
	}
	return idOf(found) != idOf(current), nil
}

// unique returns a check that fails with sentinel when data sets col to a
// value another row already holds.
func unique[T any](m *sqlite.Model[T], col types.Column[T], sentinel error) func(context.Context, types.Fields[T], *T) error {
	return func(ctx context.Context, data types.Fields[T], current *T) error {
		v, ok := data.Get(col)
		if !ok || blank(v) {
			return nil
		}
		dup, err := taken(ctx, m, col, v, current)
		if err != nil {
			return err
		}
		if dup {
			return fmt.Errorf("%w: %v", sentinel, v)
		}
		return nil
	}
}

// existsByID returns a parent lookup against m's id column.
func existsByID[T any](m *sqlite.Model[T]) func(context.Context, any) (bool, error) {
	return func(ctx context.Context, v any) (bool, error) {
		found, err := m.GetFirstByFields(ctx, types.FieldsOf(colID[T]().Is(v)))
		return found != nil, err
	}
}

// asTime extracts an instant from a field value.
func asTime(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, true
	case *time.Time:
		if x != nil {
			return *x, true
		}
	case types.Timestamp:
		return x.Time, true
	case *types.Timestamp:
		if x != nil {
			return x.Time, true
		}
	case string:
		t, err := types.ParseTimestamp(x)
		return t, err == nil
	}
	return time.Time{}, false
}
