// Package seeder loads a demo data set through the regular use cases, so that
// reputation, tag counts and votes end up exactly as if real users had acted.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/techflow-backend/internal/auth"
	"github.com/heartmarshall/techflow-backend/internal/domain"
	"github.com/heartmarshall/techflow-backend/internal/service/answer"
	"github.com/heartmarshall/techflow-backend/internal/service/question"
	"github.com/heartmarshall/techflow-backend/internal/service/vote"
	"github.com/heartmarshall/techflow-backend/pkg/ctxutil"
)

type identitySyncer interface {
	SyncUser(ctx context.Context, id auth.Identity) (*domain.User, error)
}

type questionCreator interface {
	CreateQuestion(ctx context.Context, input question.CreateQuestionInput) (*domain.Question, error)
}

type answerCreator interface {
	CreateAnswer(ctx context.Context, input answer.CreateAnswerInput) (*domain.Answer, error)
}

type voter interface {
	Vote(ctx context.Context, input vote.VoteInput) (*domain.VoteSummary, error)
}

// allPhases defines the execution order; each phase resolves references
// created by the earlier ones.
var allPhases = []string{"users", "questions", "answers", "votes"}

var errUnknownRef = errors.New("unknown reference")

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
}

// Pipeline seeds a Fixture phase by phase. Item failures are logged and
// counted; they do not stop the run.
type Pipeline struct {
	log       *slog.Logger
	users     identitySyncer
	questions questionCreator
	answers   answerCreator
	votes     voter
	cfg       Config

	userIDs     map[string]uuid.UUID
	questionIDs map[string]uuid.UUID
	answerIDs   map[string]uuid.UUID
	results     map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(
	log *slog.Logger,
	users identitySyncer,
	questions questionCreator,
	answers answerCreator,
	votes voter,
	cfg Config,
) *Pipeline {
	return &Pipeline{
		log:         log,
		users:       users,
		questions:   questions,
		answers:     answers,
		votes:       votes,
		cfg:         cfg,
		userIDs:     make(map[string]uuid.UUID),
		questionIDs: make(map[string]uuid.UUID),
		answerIDs:   make(map[string]uuid.UUID),
		results:     make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run seeds f. In dry-run mode every item is counted as skipped.
func (p *Pipeline) Run(ctx context.Context, f *Fixture) error {
	for _, phase := range allPhases {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case "users":
			result = runItems(ctx, p, phase, f.Users, p.seedUser)
		case "questions":
			result = runItems(ctx, p, phase, f.Questions, p.seedQuestion)
		case "answers":
			result = runItems(ctx, p, phase, f.Answers, p.seedAnswer)
		case "votes":
			result = runItems(ctx, p, phase, f.Votes, p.seedVote)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		p.log.Info("phase completed",
			slog.String("phase", phase),
			slog.Int("inserted", result.Inserted),
			slog.Int("skipped", result.Skipped),
			slog.Int("errors", result.Errors),
			slog.Duration("duration", result.Duration),
		)
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(allPhases)))
	return nil
}

func runItems[T any](ctx context.Context, p *Pipeline, phase string, items []T, seed func(context.Context, T) error) PhaseResult {
	var r PhaseResult
	if p.cfg.DryRun {
		r.Skipped = len(items)
		return r
	}
	for i, it := range items {
		err := seed(ctx, it)
		switch {
		case err == nil:
			r.Inserted++
		case errors.Is(err, errUnknownRef):
			r.Skipped++
			p.log.Warn("item skipped", slog.String("phase", phase), slog.Int("index", i), slog.String("reason", err.Error()))
		default:
			r.Errors++
			p.log.Error("item failed", slog.String("phase", phase), slog.Int("index", i), slog.String("error", err.Error()))
		}
	}
	return r
}

// asUser returns ctx authenticated as the fixture user.
func (p *Pipeline) asUser(ctx context.Context, username string) (context.Context, error) {
	id, ok := p.userIDs[username]
	if !ok {
		return nil, fmt.Errorf("%w: user %q", errUnknownRef, username)
	}
	return ctxutil.WithUserID(ctx, id), nil
}

func (p *Pipeline) seedUser(ctx context.Context, u FixtureUser) error {
	created, err := p.users.SyncUser(ctx, auth.Identity{
		Subject:  u.ExternalID,
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
	})
	if err != nil {
		return err
	}
	key := u.Username
	if key == "" {
		key = created.Username
	}
	p.userIDs[key] = created.ID
	return nil
}

func (p *Pipeline) seedQuestion(ctx context.Context, q FixtureQuestion) error {
	ctx, err := p.asUser(ctx, q.Author)
	if err != nil {
		return err
	}
	created, err := p.questions.CreateQuestion(ctx, question.CreateQuestionInput{
		Title:   q.Title,
		Content: q.Content,
		Tags:    q.Tags,
	})
	if err != nil {
		return err
	}
	p.questionIDs[q.Key] = created.ID
	return nil
}

func (p *Pipeline) seedAnswer(ctx context.Context, a FixtureAnswer) error {
	qid, ok := p.questionIDs[a.Question]
	if !ok {
		return fmt.Errorf("%w: question %q", errUnknownRef, a.Question)
	}
	ctx, err := p.asUser(ctx, a.Author)
	if err != nil {
		return err
	}
	created, err := p.answers.CreateAnswer(ctx, answer.CreateAnswerInput{QuestionID: qid, Content: a.Content})
	if err != nil {
		return err
	}
	p.answerIDs[a.Key] = created.ID
	return nil
}

func (p *Pipeline) seedVote(ctx context.Context, v FixtureVote) error {
	input := vote.VoteInput{Direction: domain.VoteDirection(strings.ToUpper(v.Direction))}

	var ok bool
	switch {
	case v.Question != "":
		input.Kind = domain.TargetKindQuestion
		input.TargetID, ok = p.questionIDs[v.Question]
	case v.Answer != "":
		input.Kind = domain.TargetKindAnswer
		input.TargetID, ok = p.answerIDs[v.Answer]
	}
	if !ok {
		return fmt.Errorf("%w: vote target question=%q answer=%q", errUnknownRef, v.Question, v.Answer)
	}

	ctx, err := p.asUser(ctx, v.Voter)
	if err != nil {
		return err
	}
	_, err = p.votes.Vote(ctx, input)
	return err
}
