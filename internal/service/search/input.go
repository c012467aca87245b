package search

import (
	"strings"

	"github.com/heartmarshall/techflow-backend/internal/domain"
)

// GlobalSearchInput holds the query and an optional type restriction.
// An empty or unknown Type searches every type.
type GlobalSearchInput struct {
	Query string
	Type  string
}

// Validate requires a non-blank query.
func (i GlobalSearchInput) Validate() error {
	if strings.TrimSpace(i.Query) == "" {
		return domain.NewValidationError("query", "required")
	}
	return nil
}
