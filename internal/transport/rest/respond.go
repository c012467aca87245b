package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/techflow-backend/internal/domain"
)

// RevalidateHeader tells the caller which page to re-render after a mutation.
const RevalidateHeader = "X-Revalidate-Path"

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorResponse struct {
	Code    string               `json:"code"`
	Message string               `json:"message"`
	Fields  []fieldErrorResponse `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// revalidate echoes the caller-supplied page path on a successful mutation.
func revalidate(w http.ResponseWriter, path string) {
	if path != "" {
		w.Header().Set(RevalidateHeader, path)
	}
}

// handleError maps domain errors to status codes. Anything unrecognised is
// logged and reported as a 500 without details.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		resp := errorResponse{Code: "VALIDATION", Message: "validation failed"}
		for _, f := range verr.Errors {
			resp.Fields = append(resp.Fields, fieldErrorResponse{Field: f.Field, Message: f.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, errInvalidBody):
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "not found")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "sign in required")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "not allowed")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "ALREADY_EXISTS", "already exists")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "CONFLICT", "concurrent update, retry")
	case errors.Is(err, domain.ErrCascadeFailed):
		log.ErrorContext(r.Context(), "cascade delete failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "CASCADE_FAILED", "delete failed and was rolled back")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}
}
