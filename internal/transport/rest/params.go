package rest

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/techflow-backend/internal/domain"
)

// Paging holds the list defaults applied to page query parameters.
type Paging struct {
	DefaultPageSize int
	MaxPageSize     int
}

// params parses the page query parameters. A missing page size takes the
// configured default; an oversized one is clamped.
func (p Paging) params(r *http.Request) (domain.PageParams, error) {
	page, err := queryInt(r, "page", 1)
	if err != nil {
		return domain.PageParams{}, err
	}
	size, err := queryInt(r, "pageSize", p.DefaultPageSize)
	if err != nil {
		return domain.PageParams{}, err
	}
	if p.MaxPageSize > 0 && size > p.MaxPageSize {
		size = p.MaxPageSize
	}
	return domain.PageParams{Page: page, PageSize: size}.Normalize(), nil
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, domain.NewValidationError(name, "must be a non-negative integer")
	}
	return n, nil
}

// idParam parses a UUID path parameter.
func idParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a UUID")
	}
	return id, nil
}
