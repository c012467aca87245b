// Package search implements case-insensitive substring search over questions,
// answers, users and tags.
package search

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/techflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/techflow-backend/internal/domain"
)

// Repo runs global search queries.
type Repo struct {
	db postgres.Querier
}

// New creates a new search repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Search returns up to limit hits of one type whose searchable text contains query.
func (r *Repo) Search(ctx context.Context, typ domain.SearchType, query string, limit int) ([]domain.SearchHit, error) {
	b, err := searchQuery(typ, postgres.ContainsPattern(query))
	if err != nil {
		return nil, err
	}
	b = b.Limit(uint64(limit))

	var rows []struct {
		ID    string `db:"id"`
		Title string `db:"title"`
	}
	if err := postgres.SelectAll(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, b); err != nil {
		return nil, fmt.Errorf("search %s: %w", typ, err)
	}

	hits := make([]domain.SearchHit, 0, len(rows))
	for _, row := range rows {
		title := row.Title
		if typ == domain.SearchTypeAnswer {
			title = "Answers containing " + query
		}
		hits = append(hits, domain.SearchHit{Type: typ, ID: row.ID, Title: title})
	}
	return hits, nil
}

func searchQuery(typ domain.SearchType, pattern string) (sq.SelectBuilder, error) {
	switch typ {
	case domain.SearchTypeQuestion:
		return postgres.Builder.Select("id::text AS id", "title").
			From("questions").
			Where(sq.ILike{"title": pattern}).
			OrderBy("created_at DESC", "id"), nil
	case domain.SearchTypeAnswer:
		return postgres.Builder.Select("question_id::text AS id", "'' AS title").
			From("answers").
			Where(sq.ILike{"content": pattern}).
			OrderBy("created_at DESC", "id"), nil
	case domain.SearchTypeUser:
		return postgres.Builder.Select("external_id AS id", "name AS title").
			From("users").
			Where(sq.ILike{"name": pattern}).
			OrderBy("joined_at DESC", "id"), nil
	case domain.SearchTypeTag:
		return postgres.Builder.Select("id::text AS id", "name AS title").
			From("tags").
			Where(sq.ILike{"name": pattern}).
			OrderBy("created_at DESC", "seq DESC"), nil
	}
	return sq.SelectBuilder{}, domain.NewValidationError("type", "unknown search type")
}
