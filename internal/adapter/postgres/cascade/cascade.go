// Package cascade deletes questions, answers and users together with every
// row that references them.
//
// Foreign keys are RESTRICT, so each delete is a fixed list of explicit steps
// run in one transaction: if a step fails, or a step was forgotten and a
// reference survives, the final delete fails and nothing is removed.
package cascade

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/techflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/techflow-backend/internal/domain"
)

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Deleter runs cascade deletes. Calls made inside an existing transaction
// join it.
type Deleter struct {
	db postgres.Querier
	tx txManager
}

// New creates a Deleter.
func New(db postgres.Querier, tx txManager) *Deleter {
	return &Deleter{db: db, tx: tx}
}

// step is one statement of a cascade. $1 is always the root entity id.
type step struct {
	name    string
	sql     string
	counter func(r *domain.CascadeReport) *int64
	// root marks the delete of the entity itself: zero rows means it did not exist.
	root bool
}

func votes(r *domain.CascadeReport) *int64        { return &r.Votes }
func saves(r *domain.CascadeReport) *int64        { return &r.Saves }
func interactions(r *domain.CascadeReport) *int64 { return &r.Interactions }
func tagLinks(r *domain.CascadeReport) *int64     { return &r.TagLinks }
func follows(r *domain.CascadeReport) *int64      { return &r.Follows }
func answers(r *domain.CascadeReport) *int64      { return &r.Answers }
func questions(r *domain.CascadeReport) *int64    { return &r.Questions }
func users(r *domain.CascadeReport) *int64        { return &r.Users }

// ---------------------------------------------------------------------------
// Step lists
// ---------------------------------------------------------------------------

// Interactions are matched on the question itself and on any of its answers.
const questionInteractions = `SELECT id FROM interactions
	WHERE question_id = $1 OR answer_id IN (SELECT id FROM answers WHERE question_id = $1)`

var questionSteps = []step{
	{name: "interaction tags", sql: `DELETE FROM interaction_tags WHERE interaction_id IN (` + questionInteractions + `)`, counter: tagLinks},
	{name: "interactions", sql: `DELETE FROM interactions WHERE id IN (` + questionInteractions + `)`, counter: interactions},
	{name: "answer votes", sql: `DELETE FROM answer_votes WHERE answer_id IN (SELECT id FROM answers WHERE question_id = $1)`, counter: votes},
	{name: "answers", sql: `DELETE FROM answers WHERE question_id = $1`, counter: answers},
	{name: "question votes", sql: `DELETE FROM question_votes WHERE question_id = $1`, counter: votes},
	{name: "saves", sql: `DELETE FROM saved_questions WHERE question_id = $1`, counter: saves},
	{name: "question tags", sql: `DELETE FROM question_tags WHERE question_id = $1`, counter: tagLinks},
	{name: "question", sql: `DELETE FROM questions WHERE id = $1`, counter: questions, root: true},
}

var answerSteps = []step{
	{name: "interaction tags", sql: `DELETE FROM interaction_tags WHERE interaction_id IN (SELECT id FROM interactions WHERE answer_id = $1)`, counter: tagLinks},
	{name: "interactions", sql: `DELETE FROM interactions WHERE answer_id = $1`, counter: interactions},
	{name: "answer votes", sql: `DELETE FROM answer_votes WHERE answer_id = $1`, counter: votes},
	{name: "answer", sql: `DELETE FROM answers WHERE id = $1`, counter: answers, root: true},
}

// A user's footprint: the user's questions, every answer on them or by the
// user, and every interaction by the user or on that content.
const (
	userQuestions = `SELECT id FROM questions WHERE author_id = $1`
	userAnswers   = `SELECT id FROM answers WHERE author_id = $1 OR question_id IN (` + userQuestions + `)`
	userInteracts = `SELECT id FROM interactions WHERE user_id = $1
		OR question_id IN (` + userQuestions + `)
		OR answer_id IN (` + userAnswers + `)`
)

var userSteps = []step{
	{name: "interaction tags", sql: `DELETE FROM interaction_tags WHERE interaction_id IN (` + userInteracts + `)`, counter: tagLinks},
	{name: "interactions", sql: `DELETE FROM interactions WHERE id IN (` + userInteracts + `)`, counter: interactions},
	{name: "answer votes", sql: `DELETE FROM answer_votes WHERE user_id = $1 OR answer_id IN (` + userAnswers + `)`, counter: votes},
	{name: "answers", sql: `DELETE FROM answers WHERE id IN (` + userAnswers + `)`, counter: answers},
	{name: "question votes", sql: `DELETE FROM question_votes WHERE user_id = $1 OR question_id IN (` + userQuestions + `)`, counter: votes},
	{name: "saves", sql: `DELETE FROM saved_questions WHERE user_id = $1 OR question_id IN (` + userQuestions + `)`, counter: saves},
	{name: "question tags", sql: `DELETE FROM question_tags WHERE question_id IN (` + userQuestions + `)`, counter: tagLinks},
	{name: "questions", sql: `DELETE FROM questions WHERE author_id = $1`, counter: questions},
	{name: "tag follows", sql: `DELETE FROM tag_followers WHERE user_id = $1`, counter: follows},
	{name: "user", sql: `DELETE FROM users WHERE id = $1`, counter: users, root: true},
}

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// DeleteQuestion removes a question with its answers, votes, saves, tag links
// and interactions.
func (d *Deleter) DeleteQuestion(ctx context.Context, id uuid.UUID) (domain.CascadeReport, error) {
	return d.run(ctx, "question", id, questionSteps)
}

// DeleteAnswer removes an answer with its votes and interactions.
func (d *Deleter) DeleteAnswer(ctx context.Context, id uuid.UUID) (domain.CascadeReport, error) {
	return d.run(ctx, "answer", id, answerSteps)
}

// DeleteUser removes a user with all authored content, everything attached to
// that content, and the user's own votes, saves, follows and interactions.
// Reputation granted by the user's votes stays with the recipients.
func (d *Deleter) DeleteUser(ctx context.Context, id uuid.UUID) (domain.CascadeReport, error) {
	return d.run(ctx, "user", id, userSteps)
}

func (d *Deleter) run(ctx context.Context, entity string, id uuid.UUID, steps []step) (domain.CascadeReport, error) {
	var report domain.CascadeReport

	err := d.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, d.db)
		var acc domain.CascadeReport

		for _, s := range steps {
			tag, err := q.Exec(ctx, s.sql, id)
			if err != nil {
				return domain.NewCascadeError(entity, id, s.name, err)
			}
			if s.root && tag.RowsAffected() == 0 {
				return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
			}
			*s.counter(&acc) += tag.RowsAffected()
		}

		report = acc
		return nil
	})
	if err != nil {
		return domain.CascadeReport{}, err
	}
	return report, nil
}
