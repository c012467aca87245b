// Package tag implements the tag aggregator: popular tags, a user's most
// interacted tags, tag browsing and following.
package tag

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/techflow-backend/internal/domain"
)

type tagRepo interface {
	GetByID(ctx context.Context, tagID uuid.UUID) (*domain.Tag, error)
	Popular(ctx context.Context, limit int) ([]domain.TagCount, error)
	InteractionCounts(ctx context.Context, userID uuid.UUID) ([]domain.TagCount, error)
	List(ctx context.Context, f domain.TagFilter) ([]domain.TagCount, int, error)
	Follow(ctx context.Context, tagID, userID uuid.UUID) (bool, error)
	Unfollow(ctx context.Context, tagID, userID uuid.UUID) (bool, error)
	CountFollowers(ctx context.Context, tagID uuid.UUID) (int, error)
}

type questionRepo interface {
	List(ctx context.Context, f domain.QuestionFilter) ([]domain.QuestionSummary, int, error)
}

// DefaultTopInteracted is the number of tags shown on user cards.
const DefaultTopInteracted = 3

// Service provides tag aggregation and browsing.
type Service struct {
	log          *slog.Logger
	tags         tagRepo
	questions    questionRepo
	popularLimit int
}

// NewService creates a new tag service. popularLimit is the size of the
// popular tags list when the caller does not ask for one.
func NewService(logger *slog.Logger, tags tagRepo, questions questionRepo, popularLimit int) *Service {
	return &Service{
		log:          logger.With("service", "tag"),
		tags:         tags,
		questions:    questions,
		popularLimit: popularLimit,
	}
}
