package database

import (
	"strings"
)

// QueryBuilder converts SQL written with ? placeholders to the dialect's
// placeholder syntax.
type QueryBuilder struct {
	dialect Dialect
}

// NewQueryBuilder creates a new QueryBuilder for the given dialect.
func NewQueryBuilder(dialect Dialect) *QueryBuilder {
	return &QueryBuilder{dialect: dialect}
}

// Build rewrites each ? to the dialect placeholder for its position.
//
//	input:    "SELECT name FROM generated_regions WHERE run_id = ? AND region_id = ?"
//	SQLite:   unchanged
//	Postgres: "SELECT name FROM generated_regions WHERE run_id = $1 AND region_id = $2"
//
// Quoted literals are not parsed, so queries must not contain a literal ?.
func (qb *QueryBuilder) Build(query string) string {
	if _, ok := qb.dialect.(*SQLiteDialect); ok {
		return query
	}

	var result strings.Builder
	result.Grow(len(query) + 8)
	position := 1
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			result.WriteString(qb.dialect.Placeholder(position))
			position++
		} else {
			result.WriteByte(query[i])
		}
	}
	return result.String()
}

// BuildWithReturning is Build plus a RETURNING clause on dialects without
// LastInsertId support.
func (qb *QueryBuilder) BuildWithReturning(query string, column string) string {
	converted := qb.Build(query)
	if !qb.dialect.SupportsLastInsertID() {
		converted += qb.dialect.ReturningClause(column)
	}
	return converted
}
