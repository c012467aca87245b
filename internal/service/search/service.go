// Package search implements global search across questions, answers, users
// and tags.
package search

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/techflow-backend/internal/domain"
)

type searchRepo interface {
	Search(ctx context.Context, typ domain.SearchType, query string, limit int) ([]domain.SearchHit, error)
}

// Service runs global searches.
type Service struct {
	log  *slog.Logger
	repo searchRepo
}

// NewService creates a new search service.
func NewService(logger *slog.Logger, repo searchRepo) *Service {
	return &Service{
		log:  logger.With("service", "search"),
		repo: repo,
	}
}
