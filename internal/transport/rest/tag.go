package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/techflow-backend/internal/domain"
	"github.com/heartmarshall/techflow-backend/internal/service/tag"
)

type tagService interface {
	PopularTags(ctx context.Context, limit int) ([]domain.TagCount, error)
	TopInteractedTags(ctx context.Context, userID uuid.UUID, limit int) ([]domain.TagCount, error)
	ListTags(ctx context.Context, input tag.ListTagsInput) (domain.Page[domain.TagCount], error)
	GetTagQuestions(ctx context.Context, input tag.TagQuestionsInput) (*tag.TagQuestions, error)
	FollowTag(ctx context.Context, tagID uuid.UUID) (int, error)
	UnfollowTag(ctx context.Context, tagID uuid.UUID) (int, error)
}

// TagHandler serves tag endpoints.
type TagHandler struct {
	svc    tagService
	paging Paging
	log    *slog.Logger
}

// NewTagHandler creates a TagHandler.
func NewTagHandler(svc tagService, paging Paging, logger *slog.Logger) *TagHandler {
	return &TagHandler{svc: svc, paging: paging, log: logger.With("handler", "tag")}
}

type followersResponse struct {
	Followers int `json:"followers"`
}

// List handles GET /tags.
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.paging.params(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	q := r.URL.Query()
	result, err := h.svc.ListTags(r.Context(), tag.ListTagsInput{
		Search: q.Get("search"),
		Sort:   domain.TagSort(q.Get("sort")),
		Page:   page,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPage(result, toTagCount))
}

// Popular handles GET /tags/popular?limit=.
func (h *TagHandler) Popular(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	tags, err := h.svc.PopularTags(r.Context(), limit)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTagCounts(tags))
}

// UserTop handles GET /users/{id}/tags?limit=.
func (h *TagHandler) UserTop(w http.ResponseWriter, r *http.Request) {
	userID, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	tags, err := h.svc.TopInteractedTags(r.Context(), userID, limit)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTagCounts(tags))
}

// Questions handles GET /tags/{id}/questions.
func (h *TagHandler) Questions(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	page, err := h.paging.params(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	result, err := h.svc.GetTagQuestions(r.Context(), tag.TagQuestionsInput{
		TagID:  id,
		Search: r.URL.Query().Get("search"),
		Page:   page,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTagQuestions(result))
}

// Follow handles POST /tags/{id}/follow.
func (h *TagHandler) Follow(w http.ResponseWriter, r *http.Request) {
	h.setFollow(w, r, h.svc.FollowTag)
}

// Unfollow handles DELETE /tags/{id}/follow.
func (h *TagHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	h.setFollow(w, r, h.svc.UnfollowTag)
}

func (h *TagHandler) setFollow(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID) (int, error)) {
	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	followers, err := op(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	revalidate(w, r.URL.Query().Get("path"))
	writeJSON(w, http.StatusOK, followersResponse{Followers: followers})
}
