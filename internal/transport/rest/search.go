package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/techflow-backend/internal/domain"
	"github.com/heartmarshall/techflow-backend/internal/service/search"
)

type searchService interface {
	GlobalSearch(ctx context.Context, input search.GlobalSearchInput) ([]domain.SearchHit, error)
}

// SearchHandler serves global search.
type SearchHandler struct {
	svc searchService
	log *slog.Logger
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(svc searchService, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{svc: svc, log: logger.With("handler", "search")}
}

// Search handles GET /search?q=&type=.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	hits, err := h.svc.GlobalSearch(r.Context(), search.GlobalSearchInput{Query: q.Get("q"), Type: q.Get("type")})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSearchHits(hits))
}
