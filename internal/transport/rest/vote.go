package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/techflow-backend/internal/domain"
	"github.com/heartmarshall/techflow-backend/internal/service/vote"
)

type voteService interface {
	Vote(ctx context.Context, input vote.VoteInput) (*domain.VoteSummary, error)
	GetVoteSummary(ctx context.Context, kind domain.TargetKind, targetID uuid.UUID) (*domain.VoteSummary, error)
}

// VoteHandler serves vote endpoints for questions and answers.
type VoteHandler struct {
	svc voteService
	log *slog.Logger
}

// NewVoteHandler creates a VoteHandler.
func NewVoteHandler(svc voteService, logger *slog.Logger) *VoteHandler {
	return &VoteHandler{svc: svc, log: logger.With("handler", "vote")}
}

type voteRequest struct {
	// Sending the direction already held withdraws the vote.
	Direction string `json:"direction" validate:"required,oneof=up down UP DOWN"`
	Path      string `json:"path"      validate:"omitempty,startswith=/"`
}

// Vote returns the handler for POST /{kind}/{id}/votes.
func (h *VoteHandler) Vote(kind domain.TargetKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		var req voteRequest
		if err := decode(w, r, &req); err != nil {
			handleError(w, r, h.log, err)
			return
		}

		summary, err := h.svc.Vote(r.Context(), vote.VoteInput{
			Kind:      kind,
			TargetID:  id,
			Direction: domain.VoteDirection(strings.ToUpper(req.Direction)),
		})
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		revalidate(w, req.Path)
		writeJSON(w, http.StatusOK, toVoteSummary(summary))
	}
}

// Summary returns the handler for GET /{kind}/{id}/votes.
func (h *VoteHandler) Summary(kind domain.TargetKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, "id")
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		summary, err := h.svc.GetVoteSummary(r.Context(), kind, id)
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, toVoteSummary(summary))
	}
}
