package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/techflow-backend/internal/domain"
	"github.com/heartmarshall/techflow-backend/internal/service/user"
)

type userService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
	GetUserInfo(ctx context.Context, userID uuid.UUID) (*domain.UserInfo, error)
	ListUsers(ctx context.Context, input user.ListUsersInput) (domain.Page[domain.UserCard], error)
	UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
}

type userQuestionLister interface {
	ListUserQuestions(ctx context.Context, authorID uuid.UUID, page domain.PageParams) (domain.Page[domain.QuestionSummary], error)
}

type userAnswerLister interface {
	ListUserAnswers(ctx context.Context, authorID uuid.UUID, page domain.PageParams) (domain.Page[domain.AnswerWithQuestion], error)
}

// UserHandler serves profile and community endpoints.
type UserHandler struct {
	svc       userService
	questions userQuestionLister
	answers   userAnswerLister
	paging    Paging
	log       *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(
	svc userService,
	questions userQuestionLister,
	answers userAnswerLister,
	paging Paging,
	logger *slog.Logger,
) *UserHandler {
	return &UserHandler{
		svc:       svc,
		questions: questions,
		answers:   answers,
		paging:    paging,
		log:       logger.With("handler", "user"),
	}
}

type updateProfileRequest struct {
	Name             *string `json:"name"             validate:"omitempty,max=100"`
	Username         *string `json:"username"         validate:"omitempty,max=50"`
	Bio              *string `json:"bio"`
	Location         *string `json:"location"`
	PortfolioWebsite *string `json:"portfolioWebsite"`
	Path             string  `json:"path"             validate:"omitempty,startswith=/"`
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.paging.params(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	q := r.URL.Query()
	result, err := h.svc.ListUsers(r.Context(), user.ListUsersInput{
		Search: q.Get("search"),
		Sort:   domain.UserSort(q.Get("sort")),
		Page:   page,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPage(result, toUserCard))
}

// Me handles GET /users/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetProfile(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(*u, true))
}

// UpdateMe handles PATCH /users/me.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decode(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	u, err := h.svc.UpdateProfile(r.Context(), user.UpdateProfileInput{
		Name:             req.Name,
		Username:         req.Username,
		Bio:              req.Bio,
		Location:         req.Location,
		PortfolioWebsite: req.PortfolioWebsite,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	revalidate(w, req.Path)
	writeJSON(w, http.StatusOK, toUser(*u, true))
}

// Info handles GET /users/{id}.
func (h *UserHandler) Info(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	info, err := h.svc.GetUserInfo(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserInfo(info))
}

// Questions handles GET /users/{id}/questions.
func (h *UserHandler) Questions(w http.ResponseWriter, r *http.Request) {
	id, page, ok := h.userPage(w, r)
	if !ok {
		return
	}
	result, err := h.questions.ListUserQuestions(r.Context(), id, page)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPage(result, toQuestionSummary))
}

// Answers handles GET /users/{id}/answers.
func (h *UserHandler) Answers(w http.ResponseWriter, r *http.Request) {
	id, page, ok := h.userPage(w, r)
	if !ok {
		return
	}
	result, err := h.answers.ListUserAnswers(r.Context(), id, page)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPage(result, toAnswerWithQuestion))
}

func (h *UserHandler) userPage(w http.ResponseWriter, r *http.Request) (uuid.UUID, domain.PageParams, bool) {
	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return uuid.Nil, domain.PageParams{}, false
	}
	page, err := h.paging.params(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return uuid.Nil, domain.PageParams{}, false
	}
	return id, page, true
}
