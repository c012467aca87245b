// Package question implements the Question repository using PostgreSQL.
package question

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/techflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/techflow-backend/internal/adapter/postgres/tag"
	"github.com/heartmarshall/techflow-backend/internal/domain"
)

// Repo provides question and saved-question persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new question repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const (
	upvotesExpr     = "(SELECT count(*) FROM question_votes v WHERE v.question_id = q.id AND v.direction = 'UP')"
	downvotesExpr   = "(SELECT count(*) FROM question_votes v WHERE v.question_id = q.id AND v.direction = 'DOWN')"
	answerCountExpr = "(SELECT count(*) FROM answers a WHERE a.question_id = q.id)"
)

const returningQuestion = "RETURNING id, author_id, title, content, views, created_at, updated_at"

// summarySelect is the hydrated question projection shared by every list and detail query.
func summarySelect() sq.SelectBuilder {
	return postgres.Builder.Select(
		"q.id", "q.author_id", "q.title", "q.content", "q.views", "q.created_at", "q.updated_at",
		"u.external_id AS author_external_id",
		"u.name AS author_name",
		"u.username AS author_username",
		"u.avatar_url AS author_avatar_url",
		upvotesExpr+" AS upvotes",
		downvotesExpr+" AS downvotes",
		answerCountExpr+" AS answer_count",
	).
		From("questions q").
		Join("users u ON u.id = q.author_id")
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a question and returns it with generated fields.
func (r *Repo) Create(ctx context.Context, authorID uuid.UUID, title, content string) (*domain.Question, error) {
	b := postgres.Builder.Insert("questions").
		Columns("author_id", "title", "content").
		Values(authorID, title, content).
		Suffix(returningQuestion)

	var row questionRow
	if err := postgres.SelectOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, b); err != nil {
		return nil, postgres.MapError(err, "question author", authorID)
	}
	q := row.toDomain()
	return &q, nil
}

// Update replaces title and content and bumps updated_at.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, title, content string) (*domain.Question, error) {
	b := postgres.Builder.Update("questions").
		Set("title", title).
		Set("content", content).
		Set("updated_at", sq.Expr("clock_timestamp()")).
		Where(sq.Eq{"id": id}).
		Suffix(returningQuestion)

	var row questionRow
	if err := postgres.SelectOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, b); err != nil {
		return nil, postgres.MapError(err, "question", id)
	}
	q := row.toDomain()
	return &q, nil
}

// IncrementViews adds one view atomically and returns the new total.
func (r *Repo) IncrementViews(ctx context.Context, id uuid.UUID) (int, error) {
	b := postgres.Builder.Update("questions").
		Set("views", sq.Expr("views + 1")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING views")

	views, err := postgres.Count(ctx, postgres.QuerierFromCtx(ctx, r.db), b)
	if err != nil {
		return 0, postgres.MapError(err, "question", id)
	}
	return views, nil
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns the bare question row.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	b := postgres.Builder.Select("id", "author_id", "title", "content", "views", "created_at", "updated_at").
		From("questions").
		Where(sq.Eq{"id": id})

	var row questionRow
	if err := postgres.SelectOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, b); err != nil {
		return nil, postgres.MapError(err, "question", id)
	}
	q := row.toDomain()
	return &q, nil
}

// GetSummary returns the hydrated question.
func (r *Repo) GetSummary(ctx context.Context, id uuid.UUID) (*domain.QuestionSummary, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row summaryRow
	if err := postgres.SelectOne(ctx, q, &row, summarySelect().Where(sq.Eq{"q.id": id})); err != nil {
		return nil, postgres.MapError(err, "question", id)
	}

	tags, err := tag.ByQuestionIDs(ctx, q, []uuid.UUID{id})
	if err != nil {
		return nil, postgres.MapError(err, "question", id)
	}

	s := row.toDomain(tags[id])
	return &s, nil
}

// List returns one page of hydrated questions matching the filter and the
// total match count.
func (r *Repo) List(ctx context.Context, f domain.QuestionFilter) ([]domain.QuestionSummary, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	page := f.Page.Normalize()
	where := filterWhere(f)

	total, err := postgres.Count(ctx, q, postgres.Builder.Select("count(*)").From("questions q").Where(where))
	if err != nil {
		return nil, 0, fmt.Errorf("count questions: %w", err)
	}

	b := summarySelect().
		Where(where).
		OrderBy(questionOrder(f.Sort)...).
		Limit(uint64(page.PageSize)).
		Offset(uint64(page.Offset()))

	var rows []summaryRow
	if err := postgres.SelectAll(ctx, q, &rows, b); err != nil {
		return nil, 0, fmt.Errorf("list questions: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	tags, err := tag.ByQuestionIDs(ctx, q, ids)
	if err != nil {
		return nil, 0, err
	}

	items := make([]domain.QuestionSummary, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toDomain(tags[row.ID]))
	}
	return items, total, nil
}

func filterWhere(f domain.QuestionFilter) sq.And {
	where := sq.And{}
	if f.Search != "" {
		p := postgres.ContainsPattern(f.Search)
		where = append(where, sq.Or{sq.ILike{"q.title": p}, sq.ILike{"q.content": p}})
	}
	if len(f.TagIDs) > 0 {
		where = append(where, sq.Expr(
			"EXISTS (SELECT 1 FROM question_tags qt WHERE qt.question_id = q.id AND qt.tag_id = ANY(?))", f.TagIDs))
	}
	if f.AuthorID != nil {
		where = append(where, sq.Eq{"q.author_id": *f.AuthorID})
	}
	if f.ExcludeAuthorID != nil {
		where = append(where, sq.NotEq{"q.author_id": *f.ExcludeAuthorID})
	}
	if f.SavedBy != nil {
		where = append(where, sq.Expr(
			"EXISTS (SELECT 1 FROM saved_questions s WHERE s.question_id = q.id AND s.user_id = ?)", *f.SavedBy))
	}
	if f.Sort == domain.QuestionSortUnanswered {
		where = append(where, sq.Expr("NOT EXISTS (SELECT 1 FROM answers a WHERE a.question_id = q.id)"))
	}
	return where
}

func questionOrder(s domain.QuestionSort) []string {
	switch s {
	case domain.QuestionSortOldest:
		return []string{"q.created_at ASC", "q.id"}
	case domain.QuestionSortFrequent:
		return []string{"q.views DESC", "q.created_at DESC", "q.id"}
	case domain.QuestionSortMostVoted:
		return []string{"upvotes DESC", "q.created_at DESC", "q.id"}
	case domain.QuestionSortMostAnswered:
		return []string{"answer_count DESC", "q.created_at DESC", "q.id"}
	default:
		return []string{"q.created_at DESC", "q.id"}
	}
}

// ---------------------------------------------------------------------------
// Viewer state and saved collection
// ---------------------------------------------------------------------------

// ViewerState returns userID's vote on and saved flag for the question.
func (r *Repo) ViewerState(ctx context.Context, questionID, userID uuid.UUID) (domain.ViewerState, error) {
	b := postgres.Builder.Select().
		Column(sq.Expr("COALESCE((SELECT direction FROM question_votes WHERE question_id = ? AND user_id = ?), '') AS vote",
			questionID, userID)).
		Column(sq.Expr("EXISTS (SELECT 1 FROM saved_questions WHERE question_id = ? AND user_id = ?) AS saved",
			questionID, userID))

	var row struct {
		Vote  string `db:"vote"`
		Saved bool   `db:"saved"`
	}
	if err := postgres.SelectOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, b); err != nil {
		return domain.ViewerState{}, postgres.MapError(err, "question", questionID)
	}
	return domain.ViewerState{Vote: domain.VoteDirection(row.Vote), Saved: row.Saved}, nil
}

// IsSaved reports whether the question is in the user's collection.
func (r *Repo) IsSaved(ctx context.Context, userID, questionID uuid.UUID) (bool, error) {
	n, err := postgres.Count(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder.Select("count(*)").From("saved_questions").
			Where(sq.Eq{"user_id": userID, "question_id": questionID}))
	if err != nil {
		return false, postgres.MapError(err, "saved question", questionID)
	}
	return n > 0, nil
}

// Save adds the question to the user's collection. It reports false when the
// row already existed.
func (r *Repo) Save(ctx context.Context, userID, questionID uuid.UUID) (bool, error) {
	n, err := postgres.ExecBuilt(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder.Insert("saved_questions").
			Columns("user_id", "question_id").
			Values(userID, questionID).
			Suffix("ON CONFLICT (user_id, question_id) DO NOTHING"))
	if err != nil {
		return false, postgres.MapError(err, "saved question", questionID)
	}
	return n == 1, nil
}

// Unsave removes the question from the user's collection. It reports false
// when there was nothing to remove.
func (r *Repo) Unsave(ctx context.Context, userID, questionID uuid.UUID) (bool, error) {
	n, err := postgres.ExecBuilt(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder.Delete("saved_questions").
			Where(sq.Eq{"user_id": userID, "question_id": questionID}))
	if err != nil {
		return false, postgres.MapError(err, "saved question", questionID)
	}
	return n == 1, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type questionRow struct {
	ID        uuid.UUID `db:"id"`
	AuthorID  uuid.UUID `db:"author_id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	Views     int       `db:"views"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r questionRow) toDomain() domain.Question {
	return domain.Question{
		ID:        r.ID,
		AuthorID:  r.AuthorID,
		Title:     r.Title,
		Content:   r.Content,
		Views:     r.Views,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type summaryRow struct {
	ID               uuid.UUID `db:"id"`
	AuthorID         uuid.UUID `db:"author_id"`
	Title            string    `db:"title"`
	Content          string    `db:"content"`
	Views            int       `db:"views"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
	AuthorExternalID string    `db:"author_external_id"`
	AuthorName       string    `db:"author_name"`
	AuthorUsername   string    `db:"author_username"`
	AuthorAvatarURL  string    `db:"author_avatar_url"`
	Upvotes          int       `db:"upvotes"`
	Downvotes        int       `db:"downvotes"`
	AnswerCount      int       `db:"answer_count"`
}

func (r summaryRow) toDomain(tags []domain.TagRef) domain.QuestionSummary {
	if tags == nil {
		tags = []domain.TagRef{}
	}
	return domain.QuestionSummary{
		Question: domain.Question{
			ID:        r.ID,
			AuthorID:  r.AuthorID,
			Title:     r.Title,
			Content:   r.Content,
			Views:     r.Views,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		},
		Author: domain.UserRef{
			ID:         r.AuthorID,
			ExternalID: r.AuthorExternalID,
			Name:       r.AuthorName,
			Username:   r.AuthorUsername,
			AvatarURL:  r.AuthorAvatarURL,
		},
		Tags:        tags,
		Upvotes:     r.Upvotes,
		Downvotes:   r.Downvotes,
		AnswerCount: r.AnswerCount,
	}
}
