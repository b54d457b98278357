package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/mesh-intelligence/healthtrack/pkg/types"
)

// Mapper operation names, used as metric labels.
const (
	opGetAll   = "get_all"
	opGetFirst = "get_first"
	opGetBy    = "get_by"
	opInsert   = "insert"
	opInsertN  = "insert_all"
	opUpdate   = "update"
	opDelete   = "delete"
	opCount    = "count"
	opRows     = "rows"
)

// Table is the untyped view of a bound table, used where the entity type is
// only known by name.
type Table interface {
	Name() string
	Columns() []string
	Count(ctx context.Context) (int64, error)
	Rows(ctx context.Context) ([]map[string]any, error)
	Row(ctx context.Context, id int64) (map[string]any, error)

	load(ctx context.Context, tx *sqlx.Tx, rows []map[string]any) (int, error)
}

// Model maps entity T to one table. It turns field maps into parameterized
// SQL and passes every value through the temporal codec. A Model holds no
// state between calls and is safe for concurrent use.
type Model[T any] struct {
	db       *sqlx.DB
	table    string
	columns  []string
	known    map[string]bool
	temporal map[string]bool
	observer Observer
}

var _ Table = (*Model[types.Patient])(nil)

// NewModel binds T to table. T must be a struct whose columns are declared
// with db tags, directly or through embedded structs.
func NewModel[T any](db *sqlx.DB, table string, observer Observer) (*Model[T], error) {
	cols, temporal, err := structColumns(reflect.TypeOf((*T)(nil)).Elem())
	if err != nil {
		return nil, fmt.Errorf("binding %s: %w", table, err)
	}
	if observer == nil {
		observer = nopObserver{}
	}
	known := make(map[string]bool, len(cols))
	for _, c := range cols {
		known[c] = true
	}
	return &Model[T]{
		db:       db,
		table:    table,
		columns:  cols,
		known:    known,
		temporal: temporal,
		observer: observer,
	}, nil
}

var (
	timeType      = reflect.TypeOf(time.Time{})
	timestampType = reflect.TypeOf(types.Timestamp{})
	scannerType   = reflect.TypeOf((*sql.Scanner)(nil)).Elem()
)

// structColumns lists the db-tagged columns of t in declaration order and
// marks those holding temporal values.
func structColumns(t reflect.Type) ([]string, map[string]bool, error) {
	if t.Kind() != reflect.Struct {
		return nil, nil, types.ErrUnsupportedRowType
	}
	var cols []string
	temporal := make(map[string]bool)
	var walk func(reflect.Type)
	walk = func(st reflect.Type) {
		for i := 0; i < st.NumField(); i++ {
			f := st.Field(i)
			tag := f.Tag.Get("db")
			if f.Anonymous && tag == "" && f.Type.Kind() == reflect.Struct &&
				!reflect.PointerTo(f.Type).Implements(scannerType) {
				walk(f.Type)
				continue
			}
			if !f.IsExported() || tag == "" || tag == "-" {
				continue
			}
			cols = append(cols, tag)
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft == timeType || ft == timestampType {
				temporal[tag] = true
			}
		}
	}
	walk(t)
	if len(cols) == 0 {
		return nil, nil, types.ErrUnsupportedRowType
	}
	return cols, temporal, nil
}

// Name returns the bound table name.
func (m *Model[T]) Name() string { return m.table }

// Columns returns the declared columns in struct order.
func (m *Model[T]) Columns() []string {
	out := make([]string, len(m.columns))
	copy(out, m.columns)
	return out
}

// values converts f, rejecting columns T does not declare.
func (m *Model[T]) values(f types.Fields[T]) (columnValues, error) {
	var cv columnValues
	for _, c := range f.Columns() {
		name := string(c)
		if !m.known[name] {
			return columnValues{}, fmt.Errorf("%w: %s.%s", types.ErrUnknownColumn, m.table, name)
		}
		v, _ := f.Get(c)
		cv.add(name, v)
	}
	return cv, nil
}

// observe reports one operation. It takes the address of the caller's named
// error so a deferred call sees the final value.
func (m *Model[T]) observe(ctx context.Context, op string, start time.Time, err *error) {
	m.observer.Observe(ctx, m.table, op, *err, time.Since(start))
}

// GetAll returns every row ordered by id.
func (m *Model[T]) GetAll(ctx context.Context) (_ []T, err error) {
	defer m.observe(ctx, opGetAll, time.Now(), &err)

	q, args := selectSQL(m.table, columnValues{}, false)
	out := []T{}
	if err = m.db.SelectContext(ctx, &out, q, args...); err != nil {
		return nil, fmt.Errorf("selecting %s: %w", m.table, err)
	}
	return out, nil
}

// GetFirstByFields returns the first row matching every column of where, or
// nil when none matches. An empty where returns nil without querying.
func (m *Model[T]) GetFirstByFields(ctx context.Context, where types.Fields[T]) (_ *T, err error) {
	if where.Empty() {
		return nil, nil
	}
	defer m.observe(ctx, opGetFirst, time.Now(), &err)

	cv, err := m.values(where)
	if err != nil {
		return nil, err
	}
	q, args := selectSQL(m.table, cv, true)
	var out T
	if err = m.db.GetContext(ctx, &out, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = nil
			return nil, nil
		}
		return nil, fmt.Errorf("selecting %s: %w", m.table, err)
	}
	return &out, nil
}

// GetByFields returns every row matching where, ordered by id. An empty
// where returns an empty slice without querying.
func (m *Model[T]) GetByFields(ctx context.Context, where types.Fields[T]) (_ []T, err error) {
	if where.Empty() {
		return []T{}, nil
	}
	defer m.observe(ctx, opGetBy, time.Now(), &err)

	cv, err := m.values(where)
	if err != nil {
		return nil, err
	}
	q, args := selectSQL(m.table, cv, false)
	out := []T{}
	if err = m.db.SelectContext(ctx, &out, q, args...); err != nil {
		return nil, fmt.Errorf("selecting %s: %w", m.table, err)
	}
	return out, nil
}

// Insert stores one row and returns it as stored, with the generated id and
// engine defaults. Constraint violations are returned wrapped, never
// swallowed.
func (m *Model[T]) Insert(ctx context.Context, data types.Fields[T]) (_ *T, err error) {
	defer m.observe(ctx, opInsert, time.Now(), &err)

	cv, err := m.values(data)
	if err != nil {
		return nil, err
	}
	q, args := insertSQL(m.table, cv, true)
	var out T
	err = withTx(ctx, m.db, func(tx *sqlx.Tx) error {
		return tx.QueryRowxContext(ctx, q, args...).StructScan(&out)
	})
	if err != nil {
		return nil, fmt.Errorf("inserting into %s: %w", m.table, err)
	}
	return &out, nil
}

// InsertAll stores rows with one multi-row statement and returns the number
// of rows inserted. Every row must set the same columns; rows that do not
// are rejected with types.ErrHeterogeneousRows before anything is written.
// Batches larger than the engine's parameter limit are split across
// statements inside the same transaction.
func (m *Model[T]) InsertAll(ctx context.Context, rows []types.Fields[T]) (_ int64, err error) {
	if len(rows) == 0 {
		return 0, nil
	}
	defer m.observe(ctx, opInsertN, time.Now(), &err)

	first, err := m.values(rows[0])
	if err != nil {
		return 0, err
	}
	cols := first.cols
	index := make(map[string]int, len(cols))
	for i, c := range cols {
		index[c] = i
	}

	matrix := make([][]any, len(rows))
	for r, row := range rows {
		cv, err := m.values(row)
		if err != nil {
			return 0, err
		}
		if len(cv.cols) != len(cols) {
			return 0, fmt.Errorf("%w: row %d", types.ErrHeterogeneousRows, r)
		}
		vals := make([]any, len(cols))
		for i, c := range cv.cols {
			pos, ok := index[c]
			if !ok {
				return 0, fmt.Errorf("%w: row %d sets %s", types.ErrHeterogeneousRows, r, c)
			}
			vals[pos] = cv.vals[i]
		}
		matrix[r] = vals
	}

	var total int64
	err = withTx(ctx, m.db, func(tx *sqlx.Tx) error {
		if len(cols) == 0 {
			q, _ := insertSQL(m.table, columnValues{}, false)
			for range matrix {
				if _, err := tx.ExecContext(ctx, q); err != nil {
					return err
				}
				total++
			}
			return nil
		}
		batch := maxParams / len(cols)
		for start := 0; start < len(matrix); start += batch {
			end := min(start+batch, len(matrix))
			q, args := insertAllSQL(m.table, cols, matrix[start:end])
			res, err := tx.ExecContext(ctx, q, args...)
			if err != nil {
				return err
			}
			n, err := res.RowsAffected()
			if err != nil {
				return err
			}
			total += n
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("inserting into %s: %w", m.table, err)
	}
	return total, nil
}

// UpdateByFields sets data on every row matching where and returns the
// updated rows. Empty data or an empty where fails with
// types.ErrMissingUpdate and nothing is executed.
func (m *Model[T]) UpdateByFields(ctx context.Context, data, where types.Fields[T]) (_ []T, err error) {
	if data.Empty() || where.Empty() {
		return nil, types.ErrMissingUpdate
	}
	defer m.observe(ctx, opUpdate, time.Now(), &err)

	set, err := m.values(data)
	if err != nil {
		return nil, err
	}
	cond, err := m.values(where)
	if err != nil {
		return nil, err
	}
	q, args := updateSQL(m.table, set, cond)
	out := []T{}
	err = withTx(ctx, m.db, func(tx *sqlx.Tx) error {
		return sqlx.SelectContext(ctx, tx, &out, q, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", m.table, err)
	}
	return out, nil
}

// DeleteByFields deletes every row matching where and returns how many were
// deleted. An empty where deletes nothing and does not query.
func (m *Model[T]) DeleteByFields(ctx context.Context, where types.Fields[T]) (_ int64, err error) {
	if where.Empty() {
		return 0, nil
	}
	defer m.observe(ctx, opDelete, time.Now(), &err)

	cv, err := m.values(where)
	if err != nil {
		return 0, err
	}
	q, args := deleteSQL(m.table, cv)
	var n int64
	err = withTx(ctx, m.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, q, args...)
		if err != nil {
			return err
		}
		n, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("deleting from %s: %w", m.table, err)
	}
	return n, nil
}

// Count returns the number of rows in the table.
func (m *Model[T]) Count(ctx context.Context) (_ int64, err error) {
	defer m.observe(ctx, opCount, time.Now(), &err)

	var n int64
	if err = m.db.GetContext(ctx, &n, countSQL(m.table)); err != nil {
		return 0, fmt.Errorf("counting %s: %w", m.table, err)
	}
	return n, nil
}

// Rows returns every row as a column map ordered by id. Temporal columns
// are decoded to time.Time; other columns keep their stored values.
func (m *Model[T]) Rows(ctx context.Context) (_ []map[string]any, err error) {
	defer m.observe(ctx, opRows, time.Now(), &err)

	q, _ := selectSQL(m.table, columnValues{}, false)
	return m.mapRows(ctx, q)
}

// Row returns the row with the given id as a column map, or nil.
func (m *Model[T]) Row(ctx context.Context, id int64) (map[string]any, error) {
	var where columnValues
	where.add(types.ColID, id)
	q, args := selectSQL(m.table, where, true)
	rows, err := m.mapRows(ctx, q, args...)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}

func (m *Model[T]) mapRows(ctx context.Context, q string, args ...any) ([]map[string]any, error) {
	rows, err := m.db.QueryxContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("selecting %s: %w", m.table, err)
	}
	defer rows.Close()

	out := []map[string]any{}
	for rows.Next() {
		row := make(map[string]any, len(m.columns))
		if err := rows.MapScan(row); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", m.table, err)
		}
		m.decodeRow(row)
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", m.table, err)
	}
	return out, nil
}

// decodeRow applies the temporal codec to the temporal columns of row only.
func (m *Model[T]) decodeRow(row map[string]any) {
	for col, v := range row {
		if b, ok := v.([]byte); ok {
			v = string(b)
			row[col] = v
		}
		if m.temporal[col] {
			row[col] = Decode(v)
		}
	}
}

// load upserts column maps by id inside tx. Temporal columns are decoded and
// re-encoded so any RFC 3339 text is stored in canonical form; any other
// value in a temporal column fails with types.ErrInvalidTimestamp.
func (m *Model[T]) load(ctx context.Context, tx *sqlx.Tx, rows []map[string]any) (int, error) {
	for i, row := range rows {
		if _, ok := row[types.ColID]; !ok {
			return i, fmt.Errorf("loading %s row %d: missing id", m.table, i)
		}
		cols := make([]string, 0, len(row))
		for col := range row {
			if !m.known[col] {
				return i, fmt.Errorf("loading %s row %d: %w: %s", m.table, i, types.ErrUnknownColumn, col)
			}
			cols = append(cols, col)
		}
		sort.Strings(cols)

		var cv columnValues
		for _, col := range cols {
			v := row[col]
			if m.temporal[col] {
				v = Decode(v)
				switch v.(type) {
				case nil, time.Time:
				default:
					return i, fmt.Errorf("loading %s row %d: %w: %s = %v", m.table, i, types.ErrInvalidTimestamp, col, row[col])
				}
			}
			cv.add(col, v)
		}
		q, args := upsertSQL(m.table, cv)
		if _, err := tx.ExecContext(ctx, q, args...); err != nil {
			return i, fmt.Errorf("loading %s row %d: %w", m.table, i, err)
		}
	}
	return len(rows), nil
}
