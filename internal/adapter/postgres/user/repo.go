// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/techflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/techflow-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var userColumns = []string{
	"u.id", "u.external_id", "u.name", "u.username", "u.email", "u.avatar_url",
	"u.bio", "u.location", "u.portfolio_website", "u.reputation", "u.joined_at",
}

const returningUser = `RETURNING id, external_id, name, username, email, avatar_url,
	bio, location, portfolio_website, reputation, joined_at`

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var row userRow
	b := postgres.Builder.Select(userColumns...).From("users u").Where(sq.Eq{"u.id": id})
	if err := postgres.SelectOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, b); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	u := row.toDomain()
	return &u, nil
}

// GetByExternalID returns the user linked to an identity-provider subject.
func (r *Repo) GetByExternalID(ctx context.Context, externalID string) (*domain.User, error) {
	var row userRow
	b := postgres.Builder.Select(userColumns...).From("users u").Where(sq.Eq{"u.external_id": externalID})
	if err := postgres.SelectOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, b); err != nil {
		return nil, postgres.MapErrorByKey(err, "user", externalID)
	}
	u := row.toDomain()
	return &u, nil
}

// List returns one page of users matching the filter and the total match count.
func (r *Repo) List(ctx context.Context, f domain.UserFilter) ([]domain.User, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	page := f.Page.Normalize()

	where := sq.And{}
	if f.Search != "" {
		p := postgres.ContainsPattern(f.Search)
		where = append(where, sq.Or{sq.ILike{"u.name": p}, sq.ILike{"u.username": p}})
	}

	total, err := postgres.Count(ctx, q, postgres.Builder.Select("count(*)").From("users u").Where(where))
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	b := postgres.Builder.Select(userColumns...).From("users u").Where(where).
		OrderBy(userOrder(f.Sort)...).
		Limit(uint64(page.PageSize)).
		Offset(uint64(page.Offset()))

	var rows []userRow
	if err := postgres.SelectAll(ctx, q, &rows, b); err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.toDomain())
	}
	return users, total, nil
}

func userOrder(s domain.UserSort) []string {
	switch s {
	case domain.UserSortOldUsers:
		return []string{"u.joined_at ASC", "u.id"}
	case domain.UserSortTopContributors:
		return []string{"u.reputation DESC", "u.joined_at DESC", "u.id"}
	default:
		return []string{"u.joined_at DESC", "u.id"}
	}
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Upsert creates the user for u.ExternalID or refreshes its identity fields.
// Profile fields and reputation are owned locally and never overwritten.
func (r *Repo) Upsert(ctx context.Context, u domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder.Insert("users").
		Columns("external_id", "name", "username", "email", "avatar_url").
		Values(u.ExternalID, u.Name, u.Username, u.Email, u.AvatarURL).
		Suffix(`ON CONFLICT (external_id) DO UPDATE SET
			name = EXCLUDED.name,
			username = EXCLUDED.username,
			email = EXCLUDED.email,
			avatar_url = EXCLUDED.avatar_url ` + returningUser)

	var row userRow
	if err := postgres.SelectOne(ctx, q, &row, b); err != nil {
		return nil, postgres.MapErrorByKey(err, "user", u.ExternalID)
	}
	result := row.toDomain()
	return &result, nil
}

// UpdateProfile applies the non-nil fields of upd.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, upd domain.UserProfileUpdate) (*domain.User, error) {
	set := map[string]any{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Username != nil {
		set["username"] = *upd.Username
	}
	if upd.Bio != nil {
		set["bio"] = nullIfEmpty(*upd.Bio)
	}
	if upd.Location != nil {
		set["location"] = nullIfEmpty(*upd.Location)
	}
	if upd.PortfolioWebsite != nil {
		set["portfolio_website"] = nullIfEmpty(*upd.PortfolioWebsite)
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	b := postgres.Builder.Update("users").SetMap(set).Where(sq.Eq{"id": id}).Suffix(returningUser)

	var row userRow
	if err := postgres.SelectOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, b); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	u := row.toDomain()
	return &u, nil
}

// AdjustReputation adds delta to the user's reputation in a single statement.
func (r *Repo) AdjustReputation(ctx context.Context, id uuid.UUID, delta int) error {
	if delta == 0 {
		return nil
	}
	n, err := postgres.ExecBuilt(ctx, postgres.QuerierFromCtx(ctx, r.db),
		postgres.Builder.Update("users").
			Set("reputation", sq.Expr("reputation + ?", delta)).
			Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if n == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Profile counters
// ---------------------------------------------------------------------------

// CountQuestions returns how many questions the user has asked.
func (r *Repo) CountQuestions(ctx context.Context, id uuid.UUID) (int, error) {
	return r.scalar(ctx, id, postgres.Builder.Select("count(*)").From("questions").Where(sq.Eq{"author_id": id}))
}

// CountAnswers returns how many answers the user has posted.
func (r *Repo) CountAnswers(ctx context.Context, id uuid.UUID) (int, error) {
	return r.scalar(ctx, id, postgres.Builder.Select("count(*)").From("answers").Where(sq.Eq{"author_id": id}))
}

// QuestionUpvotes returns the upvotes received across the user's questions.
func (r *Repo) QuestionUpvotes(ctx context.Context, id uuid.UUID) (int, error) {
	return r.scalar(ctx, id, postgres.Builder.Select("count(*)").
		From("question_votes v").
		Join("questions q ON q.id = v.question_id").
		Where(sq.Eq{"q.author_id": id, "v.direction": string(domain.VoteUp)}))
}

// AnswerUpvotes returns the upvotes received across the user's answers.
func (r *Repo) AnswerUpvotes(ctx context.Context, id uuid.UUID) (int, error) {
	return r.scalar(ctx, id, postgres.Builder.Select("count(*)").
		From("answer_votes v").
		Join("answers a ON a.id = v.answer_id").
		Where(sq.Eq{"a.author_id": id, "v.direction": string(domain.VoteUp)}))
}

// QuestionViews returns the total views of the user's questions.
func (r *Repo) QuestionViews(ctx context.Context, id uuid.UUID) (int, error) {
	return r.scalar(ctx, id, postgres.Builder.Select("COALESCE(sum(views), 0)").
		From("questions").Where(sq.Eq{"author_id": id}))
}

func (r *Repo) scalar(ctx context.Context, id uuid.UUID, b sq.SelectBuilder) (int, error) {
	n, err := postgres.Count(ctx, postgres.QuerierFromCtx(ctx, r.db), b)
	if err != nil {
		return 0, postgres.MapError(err, "user", id)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type userRow struct {
	ID               uuid.UUID `db:"id"`
	ExternalID       string    `db:"external_id"`
	Name             string    `db:"name"`
	Username         string    `db:"username"`
	Email            string    `db:"email"`
	AvatarURL        string    `db:"avatar_url"`
	Bio              *string   `db:"bio"`
	Location         *string   `db:"location"`
	PortfolioWebsite *string   `db:"portfolio_website"`
	Reputation       int       `db:"reputation"`
	JoinedAt         time.Time `db:"joined_at"`
}

func (r userRow) toDomain() domain.User {
	return domain.User{
		ID:               r.ID,
		ExternalID:       r.ExternalID,
		Name:             r.Name,
		Username:         r.Username,
		Email:            r.Email,
		AvatarURL:        r.AvatarURL,
		Bio:              r.Bio,
		Location:         r.Location,
		PortfolioWebsite: r.PortfolioWebsite,
		Reputation:       r.Reputation,
		JoinedAt:         r.JoinedAt,
	}
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
