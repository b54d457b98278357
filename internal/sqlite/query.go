package sqlite

import (
	"fmt"
	"strings"
)

// maxParams is the engine's limit on bound parameters per statement.
const maxParams = 32766

// columnValues is the untyped, ordered form of types.Fields.
type columnValues struct {
	cols []string
	vals []any
}

func (cv columnValues) empty() bool { return len(cv.cols) == 0 }

func (cv *columnValues) add(col string, v any) {
	cv.cols = append(cv.cols, col)
	cv.vals = append(cv.vals, v)
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func quoteIdents(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = quoteIdent(n)
	}
	return strings.Join(quoted, ", ")
}

func placeholders(n int) string {
	if n == 0 {
		return ""
	}
	return strings.Repeat("?, ", n-1) + "?"
}

// whereSQL builds an AND-joined equality predicate. A NULL value matches
// with IS NULL. The caller guarantees where is not empty.
func whereSQL(where columnValues) (string, []any) {
	parts := make([]string, 0, len(where.cols))
	args := make([]any, 0, len(where.cols))
	for i, col := range where.cols {
		v := where.vals[i]
		if isNull(v) {
			parts = append(parts, quoteIdent(col)+" IS NULL")
			continue
		}
		parts = append(parts, quoteIdent(col)+" = ?")
		args = append(args, bindValue(v))
	}
	return " WHERE " + strings.Join(parts, " AND "), args
}

// selectSQL selects whole rows. An empty where selects every row. When first
// is set the query is limited to one row in engine order; otherwise rows are
// ordered by id.
func selectSQL(table string, where columnValues, first bool) (string, []any) {
	q := "SELECT * FROM " + quoteIdent(table)
	var args []any
	if !where.empty() {
		var w string
		w, args = whereSQL(where)
		q += w
	}
	if first {
		return q + " LIMIT 1", args
	}
	return q + ` ORDER BY "id"`, args
}

func selectIDSQL(table string, where columnValues) (string, []any) {
	w, args := whereSQL(where)
	return `SELECT "id" FROM ` + quoteIdent(table) + w + " LIMIT 1", args
}

func countSQL(table string) string {
	return "SELECT COUNT(*) FROM " + quoteIdent(table)
}

// insertSQL inserts one row. With returning set the statement yields the
// stored row, including engine defaults.
func insertSQL(table string, data columnValues, returning bool) (string, []any) {
	var q string
	args := make([]any, len(data.vals))
	if data.empty() {
		q = "INSERT INTO " + quoteIdent(table) + " DEFAULT VALUES"
	} else {
		q = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			quoteIdent(table), quoteIdents(data.cols), placeholders(len(data.cols)))
		for i, v := range data.vals {
			args[i] = bindValue(v)
		}
	}
	if returning {
		q += " RETURNING *"
	}
	return q, args
}

// insertAllSQL inserts rows sharing cols in one statement.
func insertAllSQL(table string, cols []string, rows [][]any) (string, []any) {
	tuple := "(" + placeholders(len(cols)) + ")"
	tuples := make([]string, len(rows))
	args := make([]any, 0, len(cols)*len(rows))
	for i, row := range rows {
		tuples[i] = tuple
		for _, v := range row {
			args = append(args, bindValue(v))
		}
	}
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
		quoteIdent(table), quoteIdents(cols), strings.Join(tuples, ", "))
	return q, args
}

// upsertSQL inserts a row or, when its id already exists, overwrites the
// existing row's columns. data must contain "id".
func upsertSQL(table string, data columnValues) (string, []any) {
	q, args := insertSQL(table, data, false)
	sets := make([]string, 0, len(data.cols))
	for _, col := range data.cols {
		if col == "id" {
			continue
		}
		sets = append(sets, fmt.Sprintf("%s = excluded.%s", quoteIdent(col), quoteIdent(col)))
	}
	if len(sets) == 0 {
		return q + ` ON CONFLICT("id") DO NOTHING`, args
	}
	return q + ` ON CONFLICT("id") DO UPDATE SET ` + strings.Join(sets, ", "), args
}

// updateSQL sets data on every row matching where and returns the updated
// rows. Both data and where must be non-empty.
func updateSQL(table string, data, where columnValues) (string, []any) {
	sets := make([]string, len(data.cols))
	args := make([]any, 0, len(data.cols)+len(where.cols))
	for i, col := range data.cols {
		sets[i] = quoteIdent(col) + " = ?"
		args = append(args, bindValue(data.vals[i]))
	}
	w, wargs := whereSQL(where)
	args = append(args, wargs...)
	return "UPDATE " + quoteIdent(table) + " SET " + strings.Join(sets, ", ") + w + " RETURNING *", args
}

// deleteSQL deletes every row matching where, which must be non-empty.
func deleteSQL(table string, where columnValues) (string, []any) {
	w, args := whereSQL(where)
	return "DELETE FROM " + quoteIdent(table) + w, args
}
