package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/techflow-backend/internal/adapter/provider/edenai"
	"github.com/heartmarshall/techflow-backend/internal/service/assistant"
)

type assistantService interface {
	GenerateAnswer(ctx context.Context, input assistant.GenerateAnswerInput) (string, error)
}

// AssistantHandler serves AI answer drafts.
type AssistantHandler struct {
	svc assistantService
	log *slog.Logger
}

// NewAssistantHandler creates an AssistantHandler.
func NewAssistantHandler(svc assistantService, logger *slog.Logger) *AssistantHandler {
	return &AssistantHandler{svc: svc, log: logger.With("handler", "assistant")}
}

type generateAnswerRequest struct {
	Question string `json:"question" validate:"required"`
}

type generateAnswerResponse struct {
	Answer string `json:"answer"`
}

// GenerateAnswer handles POST /assistant/answers.
func (h *AssistantHandler) GenerateAnswer(w http.ResponseWriter, r *http.Request) {
	var req generateAnswerRequest
	if err := decode(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	text, err := h.svc.GenerateAnswer(r.Context(), assistant.GenerateAnswerInput{Question: req.Question})
	if errors.Is(err, edenai.ErrProviderFailed) {
		h.log.WarnContext(r.Context(), "assistant provider failed", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "UPSTREAM_FAILED", "the assistant could not answer")
		return
	}
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, generateAnswerResponse{Answer: text})
}
