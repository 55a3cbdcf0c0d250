// Package postgres implements the repository interfaces against the shared
// relational store. All queries are read-only; mutation is owned by other
// subsystems.
package postgres

import (
	sq "github.com/Masterminds/squirrel"
)

// psql builds statements with $n placeholders for lib/pq.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// orILike builds an OR of case-insensitive contains matches over columns.
func orILike(pattern string, columns ...string) sq.Or {
	or := make(sq.Or, 0, len(columns))
	for _, col := range columns {
		or = append(or, sq.ILike{col: pattern})
	}
	return or
}
