// Package vote implements vote persistence for questions and answers using PostgreSQL.
//
// A vote is one row per (target, user) holding the direction, so a user can
// never hold an upvote and a downvote on the same target at once. Writes are
// compare-and-swap on the previously observed direction.
package vote

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/techflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/techflow-backend/internal/domain"
)

// Repo provides vote persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new vote repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type target struct {
	entity      string
	contentTbl  string
	votesTbl    string
	targetIDCol string
}

func targetFor(kind domain.TargetKind) (target, error) {
	switch kind {
	case domain.TargetKindQuestion:
		return target{"question", "questions", "question_votes", "question_id"}, nil
	case domain.TargetKindAnswer:
		return target{"answer", "answers", "answer_votes", "answer_id"}, nil
	}
	return target{}, domain.NewValidationError("kind", "must be QUESTION or ANSWER")
}

// TargetAuthor returns the author of the voted question or answer.
func (r *Repo) TargetAuthor(ctx context.Context, kind domain.TargetKind, targetID uuid.UUID) (uuid.UUID, error) {
	t, err := targetFor(kind)
	if err != nil {
		return uuid.Nil, err
	}

	var authorID uuid.UUID
	b := postgres.Builder.Select("author_id").From(t.contentTbl).Where(sq.Eq{"id": targetID})
	if err := postgres.SelectOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &authorID, b); err != nil {
		return uuid.Nil, postgres.MapError(err, t.entity, targetID)
	}
	return authorID, nil
}

// CurrentDirection returns the user's vote on the target, locking the row for
// the rest of the transaction. VoteNone means no vote is held.
func (r *Repo) CurrentDirection(ctx context.Context, kind domain.TargetKind, targetID, userID uuid.UUID) (domain.VoteDirection, error) {
	t, err := targetFor(kind)
	if err != nil {
		return domain.VoteNone, err
	}

	var dir string
	b := postgres.Builder.Select("direction").From(t.votesTbl).
		Where(sq.Eq{t.targetIDCol: targetID, "user_id": userID}).
		Suffix("FOR UPDATE")
	err = postgres.SelectOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &dir, b)
	if pgxscan.NotFound(err) {
		return domain.VoteNone, nil
	}
	if err != nil {
		return domain.VoteNone, postgres.MapError(err, t.entity, targetID)
	}
	return domain.VoteDirection(dir), nil
}

// Apply writes the transition tr, conditioned on the stored direction still
// being tr.From. A concurrent writer that got there first makes the
// condition fail and Apply returns domain.ErrConflict.
func (r *Repo) Apply(ctx context.Context, kind domain.TargetKind, targetID, userID uuid.UUID, tr domain.VoteTransition) error {
	t, err := targetFor(kind)
	if err != nil {
		return err
	}
	if tr.IsNoop() {
		return nil
	}

	var b sq.Sqlizer
	switch {
	case tr.From == domain.VoteNone:
		b = postgres.Builder.Insert(t.votesTbl).
			Columns(t.targetIDCol, "user_id", "direction").
			Values(targetID, userID, string(tr.To)).
			Suffix(fmt.Sprintf("ON CONFLICT (%s, user_id) DO NOTHING", t.targetIDCol))
	case tr.To == domain.VoteNone:
		b = postgres.Builder.Delete(t.votesTbl).
			Where(sq.Eq{t.targetIDCol: targetID, "user_id": userID, "direction": string(tr.From)})
	default:
		b = postgres.Builder.Update(t.votesTbl).
			Set("direction", string(tr.To)).
			Set("created_at", sq.Expr("now()")).
			Where(sq.Eq{t.targetIDCol: targetID, "user_id": userID, "direction": string(tr.From)})
	}

	n, err := postgres.ExecBuilt(ctx, postgres.QuerierFromCtx(ctx, r.db), b)
	if err != nil {
		return postgres.MapError(err, t.entity, targetID)
	}
	if n != 1 {
		return fmt.Errorf("%s %s vote %s -> %s: %w", t.entity, targetID, tr.From, tr.To, domain.ErrConflict)
	}
	return nil
}

// Tally returns the target's vote counts and userID's own state. A zero
// userID yields counts only.
func (r *Repo) Tally(ctx context.Context, kind domain.TargetKind, targetID, userID uuid.UUID) (domain.VoteSummary, error) {
	t, err := targetFor(kind)
	if err != nil {
		return domain.VoteSummary{}, err
	}

	b := postgres.Builder.Select(
		"count(*) FILTER (WHERE direction = 'UP') AS upvotes",
		"count(*) FILTER (WHERE direction = 'DOWN') AS downvotes",
	).
		Column(sq.Expr("COALESCE(bool_or(user_id = ? AND direction = 'UP'), false) AS has_upvoted", userID)).
		Column(sq.Expr("COALESCE(bool_or(user_id = ? AND direction = 'DOWN'), false) AS has_downvoted", userID)).
		From(t.votesTbl).
		Where(sq.Eq{t.targetIDCol: targetID})

	var row struct {
		Upvotes      int  `db:"upvotes"`
		Downvotes    int  `db:"downvotes"`
		HasUpvoted   bool `db:"has_upvoted"`
		HasDownvoted bool `db:"has_downvoted"`
	}
	if err := postgres.SelectOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, b); err != nil {
		return domain.VoteSummary{}, postgres.MapError(err, t.entity, targetID)
	}

	return domain.VoteSummary{
		Kind:         kind,
		Upvotes:      row.Upvotes,
		Downvotes:    row.Downvotes,
		HasUpvoted:   row.HasUpvoted,
		HasDownvoted: row.HasDownvoted,
	}, nil
}
