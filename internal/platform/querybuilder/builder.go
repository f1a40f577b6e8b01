// Package querybuilder renders the few postgres statements the season
// snapshot needs. Identifiers are passed through as given, so callers quote
// them with Ident first.
package querybuilder

import (
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

// Condition is a column equality bound to a positional parameter.
type Condition struct {
	column string
	value  any
}

func Eq(column string, value any) Condition {
	return Condition{column: column, value: value}
}

// where renders conditions joined by AND, numbering placeholders after the
// args already collected.
func where(sql *strings.Builder, conditions []Condition, args []any) []any {
	for i, c := range conditions {
		if i == 0 {
			sql.WriteString(" WHERE ")
		} else {
			sql.WriteString(" AND ")
		}
		args = append(args, c.value)
		sql.WriteString(c.column + " = $" + strconv.Itoa(len(args)))
	}
	return args
}

type SelectBuilder struct {
	columns    []string
	table      string
	conditions []Condition
	orderBy    []string
	limit      int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.conditions = append(b.conditions, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(columns ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, columns...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	switch {
	case len(b.columns) == 0:
		return "", nil, crerr.New("select columns are required")
	case strings.TrimSpace(b.table) == "":
		return "", nil, crerr.New("select table is required")
	}

	var sql strings.Builder
	sql.WriteString("SELECT " + strings.Join(b.columns, ", ") + " FROM " + b.table)
	args := where(&sql, b.conditions, nil)
	if len(b.orderBy) > 0 {
		sql.WriteString(" ORDER BY " + strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		sql.WriteString(" LIMIT " + strconv.Itoa(b.limit))
	}
	return sql.String(), args, nil
}

type DeleteBuilder struct {
	table      string
	conditions []Condition
}

func DeleteFrom(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

func (b *DeleteBuilder) Where(conditions ...Condition) *DeleteBuilder {
	b.conditions = append(b.conditions, conditions...)
	return b
}

// ToSQL refuses to render an unconditional delete.
func (b *DeleteBuilder) ToSQL() (string, []any, error) {
	switch {
	case strings.TrimSpace(b.table) == "":
		return "", nil, crerr.New("delete table is required")
	case len(b.conditions) == 0:
		return "", nil, crerr.New("delete requires at least one condition")
	}

	var sql strings.Builder
	sql.WriteString("DELETE FROM " + b.table)
	args := where(&sql, b.conditions, nil)
	return sql.String(), args, nil
}

// InsertNamed renders an INSERT with sqlx named parameters, one per column.
func InsertNamed(table string, columns, params []string) (string, error) {
	switch {
	case strings.TrimSpace(table) == "":
		return "", crerr.New("insert table is required")
	case len(columns) == 0 || len(columns) != len(params):
		return "", crerr.Newf("insert has %d columns and %d params", len(columns), len(params))
	}

	named := make([]string, len(params))
	for i, p := range params {
		named[i] = ":" + p
	}
	return "INSERT INTO " + table + " (" + strings.Join(columns, ", ") + ") VALUES (" + strings.Join(named, ", ") + ")", nil
}

// Ident quotes a possibly schema-qualified identifier: stats.players becomes
// "stats"."players". Embedded quotes are doubled, spaces are kept.
func Ident(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", crerr.New("identifier is required")
	}

	parts := strings.Split(name, ".")
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" || strings.ContainsRune(part, 0) {
			return "", crerr.Newf("invalid identifier %q", name)
		}
		parts[i] = `"` + strings.ReplaceAll(part, `"`, `""`) + `"`
	}
	return strings.Join(parts, "."), nil
}
