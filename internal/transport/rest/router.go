package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/techflow-backend/internal/domain"
	"github.com/heartmarshall/techflow-backend/internal/transport/middleware"
)

// Handlers groups the REST handlers mounted by NewRouter. Assistant may be
// nil when no AI provider is configured; its routes are then not mounted.
type Handlers struct {
	Health    *HealthHandler
	Question  *QuestionHandler
	Answer    *AnswerHandler
	Vote      *VoteHandler
	Tag       *TagHandler
	User      *UserHandler
	Search    *SearchHandler
	Assistant *AssistantHandler
	Webhook   *WebhookHandler
}

// NewRouter builds the HTTP API. global wraps every route; auth wraps only
// /api/v1, so probes and signed webhooks never depend on session tokens.
func NewRouter(h Handlers, global, auth middleware.Middleware) http.Handler {
	r := chi.NewRouter()
	r.Use(global)

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	r.Post("/api/webhooks/identity", h.Webhook.Identity)

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(auth)

		api.Route("/questions", func(qr chi.Router) {
			qr.Get("/", h.Question.List)
			qr.Post("/", h.Question.Create)
			qr.Get("/saved", h.Question.ListSaved)

			qr.Route("/{id}", func(one chi.Router) {
				one.Get("/", h.Question.Get)
				one.Patch("/", h.Question.Edit)
				one.Delete("/", h.Question.Delete)
				one.Post("/views", h.Question.View)
				one.Post("/save", h.Question.ToggleSave)
				one.Get("/votes", h.Vote.Summary(domain.TargetKindQuestion))
				one.Post("/votes", h.Vote.Vote(domain.TargetKindQuestion))
				one.Get("/answers", h.Answer.List)
				one.Post("/answers", h.Answer.Create)
			})
		})

		api.Route("/answers/{id}", func(ar chi.Router) {
			ar.Patch("/", h.Answer.Edit)
			ar.Delete("/", h.Answer.Delete)
			ar.Get("/votes", h.Vote.Summary(domain.TargetKindAnswer))
			ar.Post("/votes", h.Vote.Vote(domain.TargetKindAnswer))
		})

		api.Route("/tags", func(tr chi.Router) {
			tr.Get("/", h.Tag.List)
			tr.Get("/popular", h.Tag.Popular)
			tr.Get("/{id}/questions", h.Tag.Questions)
			tr.Post("/{id}/follow", h.Tag.Follow)
			tr.Delete("/{id}/follow", h.Tag.Unfollow)
		})

		api.Route("/users", func(ur chi.Router) {
			ur.Get("/", h.User.List)
			ur.Get("/me", h.User.Me)
			ur.Patch("/me", h.User.UpdateMe)
			ur.Get("/{id}", h.User.Info)
			ur.Get("/{id}/questions", h.User.Questions)
			ur.Get("/{id}/answers", h.User.Answers)
			ur.Get("/{id}/tags", h.Tag.UserTop)
		})

		api.Get("/search", h.Search.Search)

		if h.Assistant != nil {
			api.Post("/assistant/answers", h.Assistant.GenerateAnswer)
		}
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	return r
}
