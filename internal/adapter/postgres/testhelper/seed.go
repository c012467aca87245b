package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/techflow-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with unique identity fields.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	user := domain.User{
		ID:         uuid.New(),
		ExternalID: "user_" + suffix,
		Name:       "Test User " + suffix,
		Username:   "tester" + suffix,
		Email:      "tester-" + suffix + "@example.com",
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (id, external_id, name, username, email)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING joined_at`,
		user.ID, user.ExternalID, user.Name, user.Username, user.Email,
	).Scan(&user.JoinedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedTag inserts a tag with a unique name unless name is given.
func SeedTag(t *testing.T, pool *pgxpool.Pool, name string) domain.Tag {
	t.Helper()

	if name == "" {
		name = "tag-" + uniqueSuffix()
	}
	tag := domain.Tag{Name: name}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO tags (name, name_normalized) VALUES ($1, $2)
		 RETURNING id, created_at`,
		name, domain.NormalizeTagName(name),
	).Scan(&tag.ID, &tag.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTag: %v", err)
	}

	return tag
}

// SeedQuestion inserts a question by authorID linked to tagIDs in order.
func SeedQuestion(t *testing.T, pool *pgxpool.Pool, authorID uuid.UUID, tagIDs ...uuid.UUID) domain.Question {
	t.Helper()
	ctx := context.Background()

	q := domain.Question{
		AuthorID: authorID,
		Title:    "How do I test " + uniqueSuffix() + "?",
		Content:  "A sufficiently long question body for tests.",
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO questions (author_id, title, content) VALUES ($1, $2, $3)
		 RETURNING id, views, created_at, updated_at`,
		q.AuthorID, q.Title, q.Content,
	).Scan(&q.ID, &q.Views, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedQuestion: %v", err)
	}

	for i, tagID := range tagIDs {
		if _, err := pool.Exec(ctx,
			`INSERT INTO question_tags (question_id, tag_id, position) VALUES ($1, $2, $3)`,
			q.ID, tagID, i,
		); err != nil {
			t.Fatalf("testhelper: SeedQuestion link tag: %v", err)
		}
	}

	return q
}

// SeedAnswer inserts an answer to questionID by authorID.
func SeedAnswer(t *testing.T, pool *pgxpool.Pool, questionID, authorID uuid.UUID) domain.Answer {
	t.Helper()

	a := domain.Answer{
		QuestionID: questionID,
		AuthorID:   authorID,
		Content:    "An answer that is long enough to pass the minimum length check easily.",
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO answers (question_id, author_id, content) VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		a.QuestionID, a.AuthorID, a.Content,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedAnswer: %v", err)
	}

	return a
}

// SeedVote records userID's vote on a question or answer.
func SeedVote(t *testing.T, pool *pgxpool.Pool, kind domain.TargetKind, targetID, userID uuid.UUID, dir domain.VoteDirection) {
	t.Helper()

	sql := `INSERT INTO question_votes (question_id, user_id, direction) VALUES ($1, $2, $3)`
	if kind == domain.TargetKindAnswer {
		sql = `INSERT INTO answer_votes (answer_id, user_id, direction) VALUES ($1, $2, $3)`
	}
	if _, err := pool.Exec(context.Background(), sql, targetID, userID, string(dir)); err != nil {
		t.Fatalf("testhelper: SeedVote: %v", err)
	}
}

// SeedSave adds questionID to userID's saved collection.
func SeedSave(t *testing.T, pool *pgxpool.Pool, userID, questionID uuid.UUID) {
	t.Helper()

	if _, err := pool.Exec(context.Background(),
		`INSERT INTO saved_questions (user_id, question_id) VALUES ($1, $2)`,
		userID, questionID,
	); err != nil {
		t.Fatalf("testhelper: SeedSave: %v", err)
	}
}

// SeedInteraction records an interaction with the given tags.
func SeedInteraction(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, action domain.InteractionAction, questionID, answerID *uuid.UUID, tagIDs ...uuid.UUID) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	var id uuid.UUID
	err := pool.QueryRow(ctx,
		`INSERT INTO interactions (user_id, action, question_id, answer_id) VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userID, string(action), questionID, answerID,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedInteraction: %v", err)
	}

	for _, tagID := range tagIDs {
		if _, err := pool.Exec(ctx,
			`INSERT INTO interaction_tags (interaction_id, tag_id) VALUES ($1, $2)`,
			id, tagID,
		); err != nil {
			t.Fatalf("testhelper: SeedInteraction tag: %v", err)
		}
	}

	return id
}

// CountRows runs a SELECT count(*) with args and returns the result.
func CountRows(t *testing.T, pool *pgxpool.Pool, sql string, args ...any) int {
	t.Helper()

	var n int
	if err := pool.QueryRow(context.Background(), sql, args...).Scan(&n); err != nil {
		t.Fatalf("testhelper: CountRows %q: %v", sql, err)
	}
	return n
}
