package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/techflow-backend/internal/auth"
	"github.com/heartmarshall/techflow-backend/internal/domain"
)

type webhookVerifier interface {
	Verify(header http.Header, body []byte) error
}

type identitySyncer interface {
	SyncUser(ctx context.Context, id auth.Identity) (*domain.User, error)
	DeleteUserByExternalID(ctx context.Context, externalID string) (domain.CascadeReport, error)
}

// WebhookHandler receives identity provider user lifecycle events.
type WebhookHandler struct {
	verifier webhookVerifier
	users    identitySyncer
	log      *slog.Logger
}

// NewWebhookHandler creates a WebhookHandler.
func NewWebhookHandler(verifier webhookVerifier, users identitySyncer, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{verifier: verifier, users: users, log: logger.With("handler", "webhook")}
}

type webhookResponse struct {
	Status string `json:"status"`
	Event  string `json:"event,omitempty"`
}

// Identity handles POST /api/webhooks/identity. Unknown event types are
// acknowledged and ignored; deleting a user that was never synced succeeds.
func (h *WebhookHandler) Identity(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	if err := h.verifier.Verify(r.Header, body); err != nil {
		h.log.WarnContext(r.Context(), "webhook rejected", slog.String("error", err.Error()))
		writeError(w, http.StatusUnauthorized, "INVALID_SIGNATURE", "invalid webhook signature")
		return
	}

	event, err := auth.ParseIdentityEvent(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	switch event.Type {
	case auth.EventUserCreated, auth.EventUserUpdated:
		_, err = h.users.SyncUser(r.Context(), event.Identity)
	case auth.EventUserDeleted:
		_, err = h.users.DeleteUserByExternalID(r.Context(), event.Identity.Subject)
		if errors.Is(err, domain.ErrNotFound) {
			err = nil
		}
	default:
		h.log.DebugContext(r.Context(), "webhook event ignored", slog.String("type", event.Type))
		writeJSON(w, http.StatusOK, webhookResponse{Status: "ignored", Event: event.Type})
		return
	}
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, webhookResponse{Status: "ok", Event: event.Type})
}
