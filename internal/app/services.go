package app

import (
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/techflow-backend/internal/adapter/postgres"
	answerrepo "github.com/heartmarshall/techflow-backend/internal/adapter/postgres/answer"
	"github.com/heartmarshall/techflow-backend/internal/adapter/postgres/cascade"
	interactionrepo "github.com/heartmarshall/techflow-backend/internal/adapter/postgres/interaction"
	questionrepo "github.com/heartmarshall/techflow-backend/internal/adapter/postgres/question"
	searchrepo "github.com/heartmarshall/techflow-backend/internal/adapter/postgres/search"
	tagrepo "github.com/heartmarshall/techflow-backend/internal/adapter/postgres/tag"
	userrepo "github.com/heartmarshall/techflow-backend/internal/adapter/postgres/user"
	voterepo "github.com/heartmarshall/techflow-backend/internal/adapter/postgres/vote"
	"github.com/heartmarshall/techflow-backend/internal/adapter/provider/edenai"
	"github.com/heartmarshall/techflow-backend/internal/auth"
	"github.com/heartmarshall/techflow-backend/internal/config"
	"github.com/heartmarshall/techflow-backend/internal/domain"
	"github.com/heartmarshall/techflow-backend/internal/service/answer"
	"github.com/heartmarshall/techflow-backend/internal/service/assistant"
	"github.com/heartmarshall/techflow-backend/internal/service/question"
	"github.com/heartmarshall/techflow-backend/internal/service/search"
	"github.com/heartmarshall/techflow-backend/internal/service/tag"
	"github.com/heartmarshall/techflow-backend/internal/service/user"
	"github.com/heartmarshall/techflow-backend/internal/service/vote"
)

// Services is the use-case layer shared by the server and the offline commands.
type Services struct {
	User     *user.Service
	Question *question.Service
	Answer   *answer.Service
	Vote     *vote.Service
	Tag      *tag.Service
	Search   *search.Service
	// Assistant is nil when no API key is configured.
	Assistant *assistant.Service
}

// NewServices wires repositories and services on top of pool.
func NewServices(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (*Services, error) {
	tx := postgres.NewTxManager(pool)
	rep := cfg.Reputation.Table()

	users := userrepo.New(pool)
	questions := questionrepo.New(pool)
	answers := answerrepo.New(pool)
	tags := tagrepo.New(pool)
	votes := voterepo.New(pool)
	interactions := interactionrepo.New(pool)
	deleter := cascade.New(pool, tx)

	verifier, err := auth.NewVerifier(cfg.Identity.JWTSecret, cfg.Identity.JWTPublicKey, cfg.Identity.Issuer, cfg.Identity.Audience)
	if err != nil {
		return nil, fmt.Errorf("app: identity: %w", err)
	}

	svcs := &Services{
		User:     user.NewService(logger, users, tags, deleter, verifier, tx, domain.DefaultBadgeThresholds()),
		Question: question.NewService(logger, questions, tags, interactions, users, deleter, tx, rep),
		Answer:   answer.NewService(logger, answers, questions, tags, interactions, deleter, tx),
		Vote:     vote.NewService(logger, votes, users, tx, rep),
		Tag:      tag.NewService(logger, tags, questions, cfg.Pagination.PopularTags),
		Search:   search.NewService(logger, searchrepo.New(pool)),
	}

	if cfg.Assistant.Enabled() {
		provider := edenai.NewProviderWithURL(
			cfg.Assistant.BaseURL, cfg.Assistant.APIKey,
			cfg.Assistant.Timeout, cfg.Assistant.RequestsPerSecond, logger,
		)
		svcs.Assistant = assistant.NewService(logger, provider, edenai.ProviderConfig{
			Providers:   cfg.Assistant.ProviderList(),
			Temperature: cfg.Assistant.Temperature,
			MaxTokens:   cfg.Assistant.MaxTokens,
		})
	}
	return svcs, nil
}
