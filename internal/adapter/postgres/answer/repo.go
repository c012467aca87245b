// Package answer implements the Answer repository using PostgreSQL.
package answer

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/techflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/techflow-backend/internal/domain"
)

// Repo provides answer persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new answer repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const returningAnswer = "RETURNING id, question_id, author_id, content, created_at, updated_at"

func summarySelect() sq.SelectBuilder {
	return postgres.Builder.Select(
		"a.id", "a.question_id", "a.author_id", "a.content", "a.created_at", "a.updated_at",
		"u.external_id AS author_external_id",
		"u.name AS author_name",
		"u.username AS author_username",
		"u.avatar_url AS author_avatar_url",
		"(SELECT count(*) FROM answer_votes v WHERE v.answer_id = a.id AND v.direction = 'UP') AS upvotes",
		"(SELECT count(*) FROM answer_votes v WHERE v.answer_id = a.id AND v.direction = 'DOWN') AS downvotes",
		"q.title AS question_title",
	).
		From("answers a").
		Join("users u ON u.id = a.author_id").
		Join("questions q ON q.id = a.question_id")
}

// Create inserts an answer to questionID.
func (r *Repo) Create(ctx context.Context, questionID, authorID uuid.UUID, content string) (*domain.Answer, error) {
	b := postgres.Builder.Insert("answers").
		Columns("question_id", "author_id", "content").
		Values(questionID, authorID, content).
		Suffix(returningAnswer)

	var row answerRow
	if err := postgres.SelectOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, b); err != nil {
		return nil, postgres.MapError(err, "answer question", questionID)
	}
	a := row.toDomain()
	return &a, nil
}

// Update replaces the answer content.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, content string) (*domain.Answer, error) {
	b := postgres.Builder.Update("answers").
		Set("content", content).
		Set("updated_at", sq.Expr("clock_timestamp()")).
		Where(sq.Eq{"id": id}).
		Suffix(returningAnswer)

	var row answerRow
	if err := postgres.SelectOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, b); err != nil {
		return nil, postgres.MapError(err, "answer", id)
	}
	a := row.toDomain()
	return &a, nil
}

// GetByID returns the bare answer row.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Answer, error) {
	b := postgres.Builder.Select("id", "question_id", "author_id", "content", "created_at", "updated_at").
		From("answers").
		Where(sq.Eq{"id": id})

	var row answerRow
	if err := postgres.SelectOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, b); err != nil {
		return nil, postgres.MapError(err, "answer", id)
	}
	a := row.toDomain()
	return &a, nil
}

// List returns one page of hydrated answers with their question titles.
func (r *Repo) List(ctx context.Context, f domain.AnswerFilter) ([]domain.AnswerWithQuestion, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	page := f.Page.Normalize()

	where := sq.Eq{}
	if f.QuestionID != nil {
		where["a.question_id"] = *f.QuestionID
	}
	if f.AuthorID != nil {
		where["a.author_id"] = *f.AuthorID
	}

	total, err := postgres.Count(ctx, q, postgres.Builder.Select("count(*)").From("answers a").Where(where))
	if err != nil {
		return nil, 0, fmt.Errorf("count answers: %w", err)
	}

	b := summarySelect().
		Where(where).
		OrderBy(answerOrder(f.Sort)...).
		Limit(uint64(page.PageSize)).
		Offset(uint64(page.Offset()))

	var rows []summaryRow
	if err := postgres.SelectAll(ctx, q, &rows, b); err != nil {
		return nil, 0, fmt.Errorf("list answers: %w", err)
	}

	items := make([]domain.AnswerWithQuestion, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toDomain())
	}
	return items, total, nil
}

func answerOrder(s domain.AnswerSort) []string {
	switch s {
	case domain.AnswerSortHighestUpvotes:
		return []string{"upvotes DESC", "a.created_at DESC", "a.id"}
	case domain.AnswerSortLowestUpvotes:
		return []string{"upvotes ASC", "a.created_at DESC", "a.id"}
	case domain.AnswerSortOld:
		return []string{"a.created_at ASC", "a.id"}
	default:
		return []string{"a.created_at DESC", "a.id"}
	}
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type answerRow struct {
	ID         uuid.UUID `db:"id"`
	QuestionID uuid.UUID `db:"question_id"`
	AuthorID   uuid.UUID `db:"author_id"`
	Content    string    `db:"content"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (r answerRow) toDomain() domain.Answer {
	return domain.Answer{
		ID:         r.ID,
		QuestionID: r.QuestionID,
		AuthorID:   r.AuthorID,
		Content:    r.Content,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

type summaryRow struct {
	ID               uuid.UUID `db:"id"`
	QuestionID       uuid.UUID `db:"question_id"`
	AuthorID         uuid.UUID `db:"author_id"`
	Content          string    `db:"content"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
	AuthorExternalID string    `db:"author_external_id"`
	AuthorName       string    `db:"author_name"`
	AuthorUsername   string    `db:"author_username"`
	AuthorAvatarURL  string    `db:"author_avatar_url"`
	Upvotes          int       `db:"upvotes"`
	Downvotes        int       `db:"downvotes"`
	QuestionTitle    string    `db:"question_title"`
}

func (r summaryRow) toDomain() domain.AnswerWithQuestion {
	return domain.AnswerWithQuestion{
		AnswerSummary: domain.AnswerSummary{
			Answer: domain.Answer{
				ID:         r.ID,
				QuestionID: r.QuestionID,
				AuthorID:   r.AuthorID,
				Content:    r.Content,
				CreatedAt:  r.CreatedAt,
				UpdatedAt:  r.UpdatedAt,
			},
			Author: domain.UserRef{
				ID:         r.AuthorID,
				ExternalID: r.AuthorExternalID,
				Name:       r.AuthorName,
				Username:   r.AuthorUsername,
				AvatarURL:  r.AuthorAvatarURL,
			},
			Upvotes:   r.Upvotes,
			Downvotes: r.Downvotes,
		},
		QuestionTitle: r.QuestionTitle,
	}
}
