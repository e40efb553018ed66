// Package database builds parameterised Postgres list queries with
// sanitised identifiers.
package database

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/jackc/pgx/v5"
)

type ConditionType string

const (
	Equal              ConditionType = "="
	NotEqual           ConditionType = "!="
	GreaterThanOrEqual ConditionType = ">="
	LessThan           ConditionType = "<"
	ILike              ConditionType = "ILIKE"
	In                 ConditionType = "IN"

	unset = -1
)

// Condition is one predicate of the WHERE clause. Conditions are ANDed.
type Condition struct {
	Field string
	Type  ConditionType
	Value any
}

func WhereCond(field string, condType ConditionType, value any) Condition {
	return Condition{Field: field, Type: condType, Value: value}
}

type ListQueryOptions struct {
	Table      string
	Columns    []string
	CountOnly  bool
	Conditions []Condition
	OrderBy    string
	OrderDir   string
	Limit      int
	Offset     int
}

type ListQueryOption func(*ListQueryOptions)

func NewListQueryOptions(table string, opts ...ListQueryOption) *ListQueryOptions {
	options := &ListQueryOptions{Table: table, Limit: unset, Offset: unset}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithColumns sets the columns to select. A column may carry a cast
// ("id::text"); the result keeps the bare column name.
func WithColumns(cols ...string) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.Columns = cols
	}
}

// WithCondition adds a condition. Conditions with an empty string value are
// skipped so optional filters can be passed through unchanged.
func WithCondition(cond Condition) ListQueryOption {
	return func(o *ListQueryOptions) {
		if s, ok := cond.Value.(string); ok && s == "" {
			return
		}
		o.Conditions = append(o.Conditions, cond)
	}
}

// WithOrderBy sets the ordering column and direction.
func WithOrderBy(column, direction string) ListQueryOption {
	return func(o *ListQueryOptions) {
		o.OrderBy = column
		o.OrderDir = direction
	}
}

// WithLimit sets the limit. Accepts 0.
func WithLimit(limit int) ListQueryOption {
	return func(o *ListQueryOptions) {
		if limit >= 0 {
			o.Limit = limit
		}
	}
}

// WithOffset sets the offset. Accepts 0.
func WithOffset(offset int) ListQueryOption {
	return func(o *ListQueryOptions) {
		if offset >= 0 {
			o.Offset = offset
		}
	}
}

// WithCountOnly sets the query to count only.
func WithCountOnly() ListQueryOption {
	return func(o *ListQueryOptions) {
		o.CountOnly = true
	}
}

func sanitizeIdentifier(ident string) string {
	return pgx.Identifier{ident}.Sanitize()
}

func sanitizeQualifiedIdentifier(ident string) string {
	return pgx.Identifier(strings.Split(ident, ".")).Sanitize()
}

// columnSpec renders "name" or "name::type". Unsafe type names are dropped.
func columnSpec(col string) string {
	name, typ, found := strings.Cut(col, "::")
	quoted := sanitizeQualifiedIdentifier(name)
	if !found || !isTypeName(typ) {
		return quoted
	}
	bare := name[strings.LastIndex(name, ".")+1:]
	return fmt.Sprintf("%s::%s AS %s", quoted, typ, sanitizeIdentifier(bare))
}

func isTypeName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '_' {
			return false
		}
	}
	return true
}

func buildSelectClause(options *ListQueryOptions) string {
	if options.CountOnly {
		return "SELECT COUNT(*) "
	}
	if len(options.Columns) == 0 {
		return "SELECT * "
	}
	cols := make([]string, len(options.Columns))
	for i, col := range options.Columns {
		cols[i] = columnSpec(col)
	}
	return "SELECT " + strings.Join(cols, ", ") + " "
}

// BuildListQuery constructs a SQL query string and arguments from options.
//
//	query, args := BuildListQuery(NewListQueryOptions("action_audit",
//		WithColumns("id::text", "action", "created_at"),
//		WithCondition(WhereCond("resource_id", Equal, "REQ-1")),
//		WithOrderBy("created_at", "DESC"),
//		WithLimit(20),
//	))
func BuildListQuery(options *ListQueryOptions) (string, []any) {
	if options == nil {
		return "", nil
	}

	var query strings.Builder
	query.WriteString(buildSelectClause(options))
	query.WriteString("FROM ")
	query.WriteString(sanitizeIdentifier(options.Table))

	where, args := buildWhereClause(options.Conditions)
	if where != "" {
		query.WriteString(" ")
		query.WriteString(where)
	}
	if options.CountOnly {
		return query.String(), args
	}

	if options.OrderBy != "" {
		query.WriteString(" ORDER BY ")
		query.WriteString(sanitizeQualifiedIdentifier(options.OrderBy))
		if dir := strings.ToUpper(options.OrderDir); dir == "ASC" || dir == "DESC" {
			query.WriteString(" " + dir)
		}
	}
	if options.Limit != unset {
		args = append(args, options.Limit)
		fmt.Fprintf(&query, " LIMIT $%d", len(args))
	}
	if options.Offset != unset {
		args = append(args, options.Offset)
		fmt.Fprintf(&query, " OFFSET $%d", len(args))
	}
	return query.String(), args
}

func buildWhereClause(conds []Condition) (string, []any) {
	parts := make([]string, 0, len(conds))
	var args []any
	for _, cond := range conds {
		if cond.Field == "" {
			continue
		}
		field := sanitizeIdentifier(cond.Field)
		switch cond.Type {
		case In:
			rv := reflect.ValueOf(cond.Value)
			if rv.Kind() != reflect.Slice || rv.Len() == 0 {
				continue
			}
			placeholders := make([]string, rv.Len())
			for i := range rv.Len() {
				args = append(args, rv.Index(i).Interface())
				placeholders[i] = fmt.Sprintf("$%d", len(args))
			}
			parts = append(parts, fmt.Sprintf("%s IN (%s)", field, strings.Join(placeholders, ", ")))
		case Equal, NotEqual, GreaterThanOrEqual, LessThan, ILike:
			args = append(args, cond.Value)
			parts = append(parts, fmt.Sprintf("%s %s $%d", field, cond.Type, len(args)))
		}
	}
	if len(parts) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(parts, " AND "), args
}
