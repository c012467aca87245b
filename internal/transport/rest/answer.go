package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/techflow-backend/internal/domain"
	"github.com/heartmarshall/techflow-backend/internal/service/answer"
)

type answerService interface {
	CreateAnswer(ctx context.Context, input answer.CreateAnswerInput) (*domain.Answer, error)
	EditAnswer(ctx context.Context, input answer.EditAnswerInput) (*domain.Answer, error)
	DeleteAnswer(ctx context.Context, answerID uuid.UUID) (domain.CascadeReport, error)
	ListAnswers(ctx context.Context, input answer.ListAnswersInput) (domain.Page[domain.AnswerSummary], error)
}

// AnswerHandler serves answer endpoints.
type AnswerHandler struct {
	svc    answerService
	paging Paging
	log    *slog.Logger
}

// NewAnswerHandler creates an AnswerHandler.
func NewAnswerHandler(svc answerService, paging Paging, logger *slog.Logger) *AnswerHandler {
	return &AnswerHandler{svc: svc, paging: paging, log: logger.With("handler", "answer")}
}

type answerRequest struct {
	Content string `json:"content" validate:"required"`
	Path    string `json:"path"    validate:"omitempty,startswith=/"`
}

// List handles GET /questions/{id}/answers.
func (h *AnswerHandler) List(w http.ResponseWriter, r *http.Request) {
	questionID, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	page, err := h.paging.params(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.ListAnswers(r.Context(), answer.ListAnswersInput{
		QuestionID: questionID,
		Sort:       domain.AnswerSort(r.URL.Query().Get("sort")),
		Page:       page,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPage(result, toAnswerSummary))
}

// Create handles POST /questions/{id}/answers.
func (h *AnswerHandler) Create(w http.ResponseWriter, r *http.Request) {
	questionID, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req answerRequest
	if err := decode(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	a, err := h.svc.CreateAnswer(r.Context(), answer.CreateAnswerInput{QuestionID: questionID, Content: req.Content})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	revalidate(w, req.Path)
	writeJSON(w, http.StatusCreated, toAnswer(*a))
}

// Edit handles PATCH /answers/{id}.
func (h *AnswerHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req answerRequest
	if err := decode(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	a, err := h.svc.EditAnswer(r.Context(), answer.EditAnswerInput{AnswerID: id, Content: req.Content})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	revalidate(w, req.Path)
	writeJSON(w, http.StatusOK, toAnswer(*a))
}

// Delete handles DELETE /answers/{id}?path=.
func (h *AnswerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	report, err := h.svc.DeleteAnswer(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	revalidate(w, r.URL.Query().Get("path"))
	writeJSON(w, http.StatusOK, toCascadeReport(report))
}
