// Package interaction implements the interaction log repository using PostgreSQL.
package interaction

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/techflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/techflow-backend/internal/domain"
)

// Repo appends to the interaction log.
type Repo struct {
	db postgres.Querier
}

// New creates a new interaction repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Record appends an interaction with its tags and returns its id.
func (r *Repo) Record(ctx context.Context, in domain.Interaction) (uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var id uuid.UUID
	if err := postgres.SelectOne(ctx, q, &id, insert(in).Suffix("RETURNING id")); err != nil {
		return uuid.Nil, postgres.MapError(err, "interaction user", in.UserID)
	}
	if err := r.linkTags(ctx, q, id, in.TagIDs); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// RecordViewOnce appends a view interaction unless the user already has one
// for the question. It reports whether a row was written.
func (r *Repo) RecordViewOnce(ctx context.Context, in domain.Interaction) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	in.Action = domain.ActionView

	var id uuid.UUID
	err := postgres.SelectOne(ctx, q, &id,
		insert(in).Suffix("ON CONFLICT (user_id, question_id) WHERE action = 'view' DO NOTHING RETURNING id"))
	if pgxscan.NotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, postgres.MapError(err, "interaction user", in.UserID)
	}
	if err := r.linkTags(ctx, q, id, in.TagIDs); err != nil {
		return false, err
	}
	return true, nil
}

func insert(in domain.Interaction) sq.InsertBuilder {
	return postgres.Builder.Insert("interactions").
		Columns("user_id", "action", "question_id", "answer_id").
		Values(in.UserID, string(in.Action), in.QuestionID, in.AnswerID)
}

func (r *Repo) linkTags(ctx context.Context, q postgres.Querier, id uuid.UUID, tagIDs []uuid.UUID) error {
	if len(tagIDs) == 0 {
		return nil
	}
	b := postgres.Builder.Insert("interaction_tags").Columns("interaction_id", "tag_id")
	for _, tagID := range tagIDs {
		b = b.Values(id, tagID)
	}
	b = b.Suffix("ON CONFLICT DO NOTHING")
	if _, err := postgres.ExecBuilt(ctx, q, b); err != nil {
		return postgres.MapError(err, "interaction tags", id)
	}
	return nil
}
