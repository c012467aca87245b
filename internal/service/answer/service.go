// Package answer implements answering questions and managing answers.
package answer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/techflow-backend/internal/domain"
)

type answerRepo interface {
	Create(ctx context.Context, questionID, authorID uuid.UUID, content string) (*domain.Answer, error)
	Update(ctx context.Context, answerID uuid.UUID, content string) (*domain.Answer, error)
	GetByID(ctx context.Context, answerID uuid.UUID) (*domain.Answer, error)
	List(ctx context.Context, f domain.AnswerFilter) ([]domain.AnswerWithQuestion, int, error)
}

type questionRepo interface {
	GetByID(ctx context.Context, questionID uuid.UUID) (*domain.Question, error)
}

type tagRepo interface {
	IDsByQuestion(ctx context.Context, questionID uuid.UUID) ([]uuid.UUID, error)
}

type interactionRepo interface {
	Record(ctx context.Context, in domain.Interaction) (uuid.UUID, error)
}

type cascadeDeleter interface {
	DeleteAnswer(ctx context.Context, answerID uuid.UUID) (domain.CascadeReport, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides answer operations.
type Service struct {
	log          *slog.Logger
	answers      answerRepo
	questions    questionRepo
	tags         tagRepo
	interactions interactionRepo
	cascade      cascadeDeleter
	tx           txManager
}

// NewService creates a new answer service.
func NewService(
	logger *slog.Logger,
	answers answerRepo,
	questions questionRepo,
	tags tagRepo,
	interactions interactionRepo,
	cascade cascadeDeleter,
	tx txManager,
) *Service {
	return &Service{
		log:          logger.With("service", "answer"),
		answers:      answers,
		questions:    questions,
		tags:         tags,
		interactions: interactions,
		cascade:      cascade,
		tx:           tx,
	}
}

func (s *Service) requireAuthor(ctx context.Context, answerID, userID uuid.UUID) (*domain.Answer, error) {
	a, err := s.answers.GetByID(ctx, answerID)
	if err != nil {
		return nil, fmt.Errorf("get answer: %w", err)
	}
	if a.AuthorID != userID {
		return nil, fmt.Errorf("answer %s: %w", answerID, domain.ErrForbidden)
	}
	return a, nil
}
