// Package question implements asking, browsing, editing, saving, viewing and
// deleting questions.
package question

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/techflow-backend/internal/domain"
)

type questionRepo interface {
	Create(ctx context.Context, authorID uuid.UUID, title, content string) (*domain.Question, error)
	Update(ctx context.Context, questionID uuid.UUID, title, content string) (*domain.Question, error)
	GetByID(ctx context.Context, questionID uuid.UUID) (*domain.Question, error)
	GetSummary(ctx context.Context, questionID uuid.UUID) (*domain.QuestionSummary, error)
	List(ctx context.Context, f domain.QuestionFilter) ([]domain.QuestionSummary, int, error)
	IncrementViews(ctx context.Context, questionID uuid.UUID) (int, error)
	ViewerState(ctx context.Context, questionID, userID uuid.UUID) (domain.ViewerState, error)

	// Saved collection
	IsSaved(ctx context.Context, userID, questionID uuid.UUID) (bool, error)
	Save(ctx context.Context, userID, questionID uuid.UUID) (bool, error)
	Unsave(ctx context.Context, userID, questionID uuid.UUID) (bool, error)
}

type tagRepo interface {
	Upsert(ctx context.Context, name string) (*domain.Tag, error)
	LinkQuestion(ctx context.Context, questionID uuid.UUID, tagIDs []uuid.UUID) error
	IDsByQuestion(ctx context.Context, questionID uuid.UUID) ([]uuid.UUID, error)
	InteractionCounts(ctx context.Context, userID uuid.UUID) ([]domain.TagCount, error)
}

type interactionRepo interface {
	Record(ctx context.Context, in domain.Interaction) (uuid.UUID, error)
	RecordViewOnce(ctx context.Context, in domain.Interaction) (bool, error)
}

type userRepo interface {
	AdjustReputation(ctx context.Context, userID uuid.UUID, delta int) error
}

type cascadeDeleter interface {
	DeleteQuestion(ctx context.Context, questionID uuid.UUID) (domain.CascadeReport, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// recommendedTagCount is how many of the viewer's top tags feed the
// recommended list.
const recommendedTagCount = 3

// Service provides question operations.
type Service struct {
	log          *slog.Logger
	questions    questionRepo
	tags         tagRepo
	interactions interactionRepo
	users        userRepo
	cascade      cascadeDeleter
	tx           txManager
	rep          domain.ReputationTable
}

// NewService creates a new question service.
func NewService(
	logger *slog.Logger,
	questions questionRepo,
	tags tagRepo,
	interactions interactionRepo,
	users userRepo,
	cascade cascadeDeleter,
	tx txManager,
	rep domain.ReputationTable,
) *Service {
	return &Service{
		log:          logger.With("service", "question"),
		questions:    questions,
		tags:         tags,
		interactions: interactions,
		users:        users,
		cascade:      cascade,
		tx:           tx,
		rep:          rep,
	}
}

// requireAuthor loads a question and checks that userID wrote it.
func (s *Service) requireAuthor(ctx context.Context, questionID, userID uuid.UUID) (*domain.Question, error) {
	q, err := s.questions.GetByID(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("get question: %w", err)
	}
	if q.AuthorID != userID {
		return nil, fmt.Errorf("question %s: %w", questionID, domain.ErrForbidden)
	}
	return q, nil
}
