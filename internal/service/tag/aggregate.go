package tag

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/techflow-backend/internal/domain"
)

// PopularTags returns the tags carried by the most questions. Ties keep
// creation order. A non-positive limit uses the configured default.
func (s *Service) PopularTags(ctx context.Context, limit int) ([]domain.TagCount, error) {
	if limit <= 0 {
		limit = s.popularLimit
	}
	tags, err := s.tags.Popular(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("popular tags: %w", err)
	}
	if tags == nil {
		tags = []domain.TagCount{}
	}
	return tags, nil
}

// TopInteractedTags returns the tags a user interacted with most. A user
// without interactions gets an empty list.
func (s *Service) TopInteractedTags(ctx context.Context, userID uuid.UUID, limit int) ([]domain.TagCount, error) {
	if limit <= 0 {
		limit = DefaultTopInteracted
	}
	counts, err := s.tags.InteractionCounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("interaction counts: %w", err)
	}
	return domain.RankTagCounts(counts, limit), nil
}
