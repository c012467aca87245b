package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/techflow-backend/internal/domain"
)

// GlobalSearch finds content whose searchable text contains the query,
// case-insensitively. A recognised type returns up to SearchLimitSingle hits
// of that type; otherwise each type contributes up to SearchLimitPerType hits
// in SearchTypes order.
func (s *Service) GlobalSearch(ctx context.Context, input GlobalSearchInput) ([]domain.SearchHit, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	query := strings.TrimSpace(input.Query)

	if typ := domain.SearchType(strings.ToLower(input.Type)); typ.IsValid() {
		hits, err := s.repo.Search(ctx, typ, query, domain.SearchLimitSingle)
		if err != nil {
			return nil, fmt.Errorf("search.GlobalSearch: %w", err)
		}
		return nonNil(hits), nil
	}

	hits := make([]domain.SearchHit, 0, len(domain.SearchTypes)*domain.SearchLimitPerType)
	for _, typ := range domain.SearchTypes {
		found, err := s.repo.Search(ctx, typ, query, domain.SearchLimitPerType)
		if err != nil {
			return nil, fmt.Errorf("search.GlobalSearch: %w", err)
		}
		hits = append(hits, found...)
	}

	s.log.DebugContext(ctx, "global search",
		slog.String("query", query),
		slog.Int("hits", len(hits)),
	)
	return hits, nil
}

func nonNil(hits []domain.SearchHit) []domain.SearchHit {
	if hits == nil {
		return []domain.SearchHit{}
	}
	return hits
}
