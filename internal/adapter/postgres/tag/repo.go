// Package tag implements the Tag repository using PostgreSQL.
package tag

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/techflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/techflow-backend/internal/domain"
)

// Repo provides tag persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new tag repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// questionCount is the number of questions carrying tag t.
const questionCount = "(SELECT count(*) FROM question_tags qt WHERE qt.tag_id = t.id)"

// ---------------------------------------------------------------------------
// Upsert and linking
// ---------------------------------------------------------------------------

// Upsert returns the tag whose normalized name matches name, creating it if
// absent. The spelling of the first creation is kept.
func (r *Repo) Upsert(ctx context.Context, name string) (*domain.Tag, error) {
	b := postgres.Builder.Insert("tags").
		Columns("name", "name_normalized").
		Values(name, domain.NormalizeTagName(name)).
		Suffix(`ON CONFLICT (name_normalized) DO UPDATE SET name_normalized = EXCLUDED.name_normalized
			RETURNING id, name, description, created_at`)

	var row tagRow
	if err := postgres.SelectOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, b); err != nil {
		return nil, postgres.MapErrorByKey(err, "tag", name)
	}
	t := row.toDomain()
	return &t, nil
}

// LinkQuestion attaches tagIDs to a question, keeping their order. Links that
// already exist are left untouched.
func (r *Repo) LinkQuestion(ctx context.Context, questionID uuid.UUID, tagIDs []uuid.UUID) error {
	if len(tagIDs) == 0 {
		return nil
	}

	b := postgres.Builder.Insert("question_tags").Columns("question_id", "tag_id", "position")
	for i, id := range tagIDs {
		b = b.Values(questionID, id, i)
	}
	b = b.Suffix("ON CONFLICT (question_id, tag_id) DO NOTHING")

	if _, err := postgres.ExecBuilt(ctx, postgres.QuerierFromCtx(ctx, r.db), b); err != nil {
		return postgres.MapError(err, "question_tags", questionID)
	}
	return nil
}

// IDsByQuestion returns the question's tag ids in order.
func (r *Repo) IDsByQuestion(ctx context.Context, questionID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	b := postgres.Builder.Select("tag_id").From("question_tags").
		Where(sq.Eq{"question_id": questionID}).
		OrderBy("position")
	if err := postgres.SelectAll(ctx, postgres.QuerierFromCtx(ctx, r.db), &ids, b); err != nil {
		return nil, postgres.MapError(err, "question_tags", questionID)
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return ids, nil
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a tag by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error) {
	var row tagRow
	b := postgres.Builder.Select("t.id", "t.name", "t.description", "t.created_at").
		From("tags t").Where(sq.Eq{"t.id": id})
	if err := postgres.SelectOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, b); err != nil {
		return nil, postgres.MapError(err, "tag", id)
	}
	t := row.toDomain()
	return &t, nil
}

// Popular returns up to limit tags ordered by question count, ties broken by
// creation order.
func (r *Repo) Popular(ctx context.Context, limit int) ([]domain.TagCount, error) {
	b := postgres.Builder.Select("t.id", "t.name", "t.description", "t.created_at", questionCount+" AS cnt").
		From("tags t").
		OrderBy("cnt DESC", "t.created_at ASC", "t.seq ASC").
		Limit(uint64(limit))

	return r.selectCounts(ctx, b)
}

// InteractionCounts returns, per tag, how many of the user's interactions
// carried it. Order is unspecified.
func (r *Repo) InteractionCounts(ctx context.Context, userID uuid.UUID) ([]domain.TagCount, error) {
	b := postgres.Builder.Select("t.id", "t.name", "t.description", "t.created_at", "count(*) AS cnt").
		From("interaction_tags it").
		Join("interactions i ON i.id = it.interaction_id").
		Join("tags t ON t.id = it.tag_id").
		Where(sq.Eq{"i.user_id": userID}).
		GroupBy("t.id")

	return r.selectCounts(ctx, b)
}

// List returns one page of tags with their question counts.
func (r *Repo) List(ctx context.Context, f domain.TagFilter) ([]domain.TagCount, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	page := f.Page.Normalize()

	where := sq.And{}
	if f.Search != "" {
		where = append(where, sq.ILike{"t.name": postgres.ContainsPattern(f.Search)})
	}

	total, err := postgres.Count(ctx, q, postgres.Builder.Select("count(*)").From("tags t").Where(where))
	if err != nil {
		return nil, 0, fmt.Errorf("count tags: %w", err)
	}

	b := postgres.Builder.Select("t.id", "t.name", "t.description", "t.created_at", questionCount+" AS cnt").
		From("tags t").
		Where(where).
		OrderBy(tagOrder(f.Sort)...).
		Limit(uint64(page.PageSize)).
		Offset(uint64(page.Offset()))

	tags, err := r.selectCounts(ctx, b)
	if err != nil {
		return nil, 0, err
	}
	return tags, total, nil
}

func tagOrder(s domain.TagSort) []string {
	switch s {
	case domain.TagSortRecent:
		return []string{"t.created_at DESC", "t.seq DESC"}
	case domain.TagSortName:
		return []string{"t.name_normalized ASC"}
	case domain.TagSortOld:
		return []string{"t.created_at ASC", "t.seq ASC"}
	default:
		return []string{"cnt DESC", "t.created_at ASC", "t.seq ASC"}
	}
}

// ByQuestionIDs returns the ordered tags of each question.
func (r *Repo) ByQuestionIDs(ctx context.Context, questionIDs []uuid.UUID) (map[uuid.UUID][]domain.TagRef, error) {
	return ByQuestionIDs(ctx, postgres.QuerierFromCtx(ctx, r.db), questionIDs)
}

// ByQuestionIDs loads the ordered tags of each question through q. Questions
// without tags are absent from the map.
func ByQuestionIDs(ctx context.Context, q postgres.Querier, questionIDs []uuid.UUID) (map[uuid.UUID][]domain.TagRef, error) {
	result := make(map[uuid.UUID][]domain.TagRef, len(questionIDs))
	if len(questionIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		QuestionID uuid.UUID `db:"question_id"`
		ID         uuid.UUID `db:"id"`
		Name       string    `db:"name"`
	}
	b := postgres.Builder.Select("qt.question_id", "t.id", "t.name").
		From("question_tags qt").
		Join("tags t ON t.id = qt.tag_id").
		Where("qt.question_id = ANY(?)", questionIDs).
		OrderBy("qt.question_id", "qt.position")
	if err := postgres.SelectAll(ctx, q, &rows, b); err != nil {
		return nil, fmt.Errorf("load question tags: %w", err)
	}

	for _, row := range rows {
		result[row.QuestionID] = append(result[row.QuestionID], domain.TagRef{ID: row.ID, Name: row.Name})
	}
	return result, nil
}

// ---------------------------------------------------------------------------
// Followers
// ---------------------------------------------------------------------------

// Follow adds userID to the tag's followers. It reports false when the user
// already followed the tag.
func (r *Repo) Follow(ctx context.Context, tagID, userID uuid.UUID) (bool, error) {
	n, err := postgres.ExecBuilt(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder.Insert("tag_followers").
			Columns("tag_id", "user_id").
			Values(tagID, userID).
			Suffix("ON CONFLICT (tag_id, user_id) DO NOTHING"))
	if err != nil {
		return false, postgres.MapError(err, "tag", tagID)
	}
	return n == 1, nil
}

// Unfollow removes userID from the tag's followers. It reports false when the
// user did not follow the tag.
func (r *Repo) Unfollow(ctx context.Context, tagID, userID uuid.UUID) (bool, error) {
	n, err := postgres.ExecBuilt(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder.Delete("tag_followers").Where(sq.Eq{"tag_id": tagID, "user_id": userID}))
	if err != nil {
		return false, postgres.MapError(err, "tag", tagID)
	}
	return n == 1, nil
}

// CountFollowers returns how many users follow the tag.
func (r *Repo) CountFollowers(ctx context.Context, tagID uuid.UUID) (int, error) {
	n, err := postgres.Count(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder.Select("count(*)").From("tag_followers").Where(sq.Eq{"tag_id": tagID}))
	if err != nil {
		return 0, postgres.MapError(err, "tag", tagID)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type tagRow struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r tagRow) toDomain() domain.Tag {
	return domain.Tag{ID: r.ID, Name: r.Name, Description: r.Description, CreatedAt: r.CreatedAt}
}

type tagCountRow struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	Count       int       `db:"cnt"`
}

func (r *Repo) selectCounts(ctx context.Context, b sq.SelectBuilder) ([]domain.TagCount, error) {
	var rows []tagCountRow
	if err := postgres.SelectAll(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, b); err != nil {
		return nil, fmt.Errorf("select tag counts: %w", err)
	}

	counts := make([]domain.TagCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, domain.TagCount{
			Tag:   domain.Tag{ID: row.ID, Name: row.Name, Description: row.Description, CreatedAt: row.CreatedAt},
			Count: row.Count,
		})
	}
	return counts, nil
}
