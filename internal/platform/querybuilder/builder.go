package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// Condition renders one predicate of a WHERE clause.
type Condition interface {
	appendSQL(w *sqlWriter)
}

type compareCondition struct {
	column string
	op     string
	value  any
}

func Eq(column string, value any) Condition {
	return compareCondition{column: column, op: "=", value: value}
}

func Gte(column string, value any) Condition {
	return compareCondition{column: column, op: ">=", value: value}
}

func Lte(column string, value any) Condition {
	return compareCondition{column: column, op: "<=", value: value}
}

func (c compareCondition) appendSQL(w *sqlWriter) {
	w.buf.WriteString(c.column)
	w.buf.WriteString(" ")
	w.buf.WriteString(c.op)
	w.buf.WriteString(" ")
	w.bind(c.value)
}

// sqlWriter accumulates SQL text and positional $N arguments.
type sqlWriter struct {
	buf  strings.Builder
	args []any
}

func (w *sqlWriter) bind(value any) {
	w.args = append(w.args, value)
	w.buf.WriteString("$")
	w.buf.WriteString(strconv.Itoa(len(w.args)))
}

func (w *sqlWriter) where(conditions []Condition) {
	if len(conditions) == 0 {
		return
	}
	w.buf.WriteString(" WHERE ")
	for i, c := range conditions {
		if i > 0 {
			w.buf.WriteString(" AND ")
		}
		c.appendSQL(w)
	}
}

func (w *sqlWriter) suffix(sql string) {
	if sql == "" {
		return
	}
	w.buf.WriteString(" ")
	w.buf.WriteString(sql)
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	var w sqlWriter
	w.buf.WriteString("SELECT ")
	w.buf.WriteString(strings.Join(b.columns, ", "))
	w.buf.WriteString(" FROM ")
	w.buf.WriteString(b.table)
	w.where(b.where)
	if len(b.orderBy) > 0 {
		w.buf.WriteString(" ORDER BY ")
		w.buf.WriteString(strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		w.buf.WriteString(" LIMIT ")
		w.buf.WriteString(strconv.Itoa(b.limit))
	}

	return w.buf.String(), w.args, nil
}

type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

// Suffix appends raw SQL such as ON CONFLICT or RETURNING clauses.
func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert columns are required")
	}
	if len(b.rows) == 0 {
		return "", nil, fmt.Errorf("insert values are required")
	}

	var w sqlWriter
	w.buf.WriteString("INSERT INTO ")
	w.buf.WriteString(b.table)
	w.buf.WriteString(" (")
	w.buf.WriteString(strings.Join(b.columns, ", "))
	w.buf.WriteString(") VALUES ")

	for rowIdx, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", rowIdx, len(row), len(b.columns))
		}
		if rowIdx > 0 {
			w.buf.WriteString(", ")
		}
		w.buf.WriteString("(")
		for colIdx, value := range row {
			if colIdx > 0 {
				w.buf.WriteString(", ")
			}
			w.bind(value)
		}
		w.buf.WriteString(")")
	}
	w.suffix(b.suffix)

	return w.buf.String(), w.args, nil
}

type setClause struct {
	column string
	value  any
}

type UpdateBuilder struct {
	table  string
	sets   []setClause
	where  []Condition
	suffix string
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets = append(b.sets, setClause{column: column, value: value})
	return b
}

func (b *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *UpdateBuilder) Suffix(sql string) *UpdateBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("update table is required")
	}
	if len(b.sets) == 0 {
		return "", nil, fmt.Errorf("update sets are required")
	}

	var w sqlWriter
	w.buf.WriteString("UPDATE ")
	w.buf.WriteString(b.table)
	w.buf.WriteString(" SET ")
	for i, s := range b.sets {
		if i > 0 {
			w.buf.WriteString(", ")
		}
		w.buf.WriteString(s.column)
		w.buf.WriteString(" = ")
		w.bind(s.value)
	}
	w.where(b.where)
	w.suffix(b.suffix)

	return w.buf.String(), w.args, nil
}

type DeleteBuilder struct {
	table string
	where []Condition
}

func DeleteFrom(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

func (b *DeleteBuilder) Where(conditions ...Condition) *DeleteBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *DeleteBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("delete table is required")
	}

	var w sqlWriter
	w.buf.WriteString("DELETE FROM ")
	w.buf.WriteString(b.table)
	w.where(b.where)

	return w.buf.String(), w.args, nil
}
