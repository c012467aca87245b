package postgres

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
)

// Builder is the squirrel statement builder with PostgreSQL placeholders.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern returns an ILIKE pattern matching s anywhere, with LIKE
// wildcards in s matched literally.
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(s)) + "%"
}

// SelectAll builds the query and scans every row into dst (a pointer to a slice).
func SelectAll(ctx context.Context, q Querier, dst any, b sq.Sqlizer) error {
	sql, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Select(ctx, q, dst, sql, args...)
}

// SelectOne builds the query and scans exactly one row into dst.
func SelectOne(ctx context.Context, q Querier, dst any, b sq.Sqlizer) error {
	sql, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Get(ctx, q, dst, sql, args...)
}

// Count runs a SELECT count(*) built by b.
func Count(ctx context.Context, q Querier, b sq.Sqlizer) (int, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}
	var n int
	if err := q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// ExecBuilt builds the statement and executes it, returning rows affected.
func ExecBuilt(ctx context.Context, q Querier, b sq.Sqlizer) (int64, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build statement: %w", err)
	}
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
