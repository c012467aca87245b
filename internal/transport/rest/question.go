package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/techflow-backend/internal/domain"
	"github.com/heartmarshall/techflow-backend/internal/service/question"
)

type questionService interface {
	CreateQuestion(ctx context.Context, input question.CreateQuestionInput) (*domain.Question, error)
	EditQuestion(ctx context.Context, input question.EditQuestionInput) (*domain.Question, error)
	DeleteQuestion(ctx context.Context, questionID uuid.UUID) (domain.CascadeReport, error)
	GetQuestion(ctx context.Context, questionID uuid.UUID) (*domain.QuestionDetail, error)
	ListQuestions(ctx context.Context, input question.ListQuestionsInput) (domain.Page[domain.QuestionSummary], error)
	ListSavedQuestions(ctx context.Context, input question.ListQuestionsInput) (domain.Page[domain.QuestionSummary], error)
	ToggleSaveQuestion(ctx context.Context, questionID uuid.UUID) (bool, error)
	ViewQuestion(ctx context.Context, questionID uuid.UUID) (int, error)
}

// QuestionHandler serves question endpoints.
type QuestionHandler struct {
	svc    questionService
	paging Paging
	log    *slog.Logger
}

// NewQuestionHandler creates a QuestionHandler.
func NewQuestionHandler(svc questionService, paging Paging, logger *slog.Logger) *QuestionHandler {
	return &QuestionHandler{svc: svc, paging: paging, log: logger.With("handler", "question")}
}

type createQuestionRequest struct {
	Title   string   `json:"title"   validate:"required"`
	Content string   `json:"content" validate:"required"`
	Tags    []string `json:"tags"    validate:"required,min=1,max=3,dive,required"`
	Path    string   `json:"path"    validate:"omitempty,startswith=/"`
}

type editQuestionRequest struct {
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
	Path    string `json:"path"    validate:"omitempty,startswith=/"`
}

type pathRequest struct {
	Path string `json:"path" validate:"omitempty,startswith=/"`
}

type savedResponse struct {
	Saved bool `json:"saved"`
}

type viewsResponse struct {
	Views int `json:"views"`
}

// List handles GET /questions.
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.ListQuestions)
}

// ListSaved handles GET /questions/saved.
func (h *QuestionHandler) ListSaved(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.ListSavedQuestions)
}

func (h *QuestionHandler) list(
	w http.ResponseWriter, r *http.Request,
	fetch func(context.Context, question.ListQuestionsInput) (domain.Page[domain.QuestionSummary], error),
) {
	page, err := h.paging.params(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	q := r.URL.Query()
	result, err := fetch(r.Context(), question.ListQuestionsInput{
		Search: q.Get("search"),
		Sort:   domain.QuestionSort(q.Get("sort")),
		Page:   page,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPage(result, toQuestionSummary))
}

// Create handles POST /questions.
func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createQuestionRequest
	if err := decode(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	q, err := h.svc.CreateQuestion(r.Context(), question.CreateQuestionInput{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	revalidate(w, req.Path)
	writeJSON(w, http.StatusCreated, toQuestion(*q))
}

// Get handles GET /questions/{id}.
func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	q, err := h.svc.GetQuestion(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuestionDetail(*q))
}

// Edit handles PATCH /questions/{id}.
func (h *QuestionHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req editQuestionRequest
	if err := decode(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	q, err := h.svc.EditQuestion(r.Context(), question.EditQuestionInput{
		QuestionID: id,
		Title:      req.Title,
		Content:    req.Content,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	revalidate(w, req.Path)
	writeJSON(w, http.StatusOK, toQuestion(*q))
}

// Delete handles DELETE /questions/{id}?path=.
func (h *QuestionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	report, err := h.svc.DeleteQuestion(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	revalidate(w, r.URL.Query().Get("path"))
	writeJSON(w, http.StatusOK, toCascadeReport(report))
}

// ToggleSave handles POST /questions/{id}/save.
func (h *QuestionHandler) ToggleSave(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req pathRequest
	if err := decodeOptional(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	saved, err := h.svc.ToggleSaveQuestion(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	revalidate(w, req.Path)
	writeJSON(w, http.StatusOK, savedResponse{Saved: saved})
}

// View handles POST /questions/{id}/views.
func (h *QuestionHandler) View(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	views, err := h.svc.ViewQuestion(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, viewsResponse{Views: views})
}
