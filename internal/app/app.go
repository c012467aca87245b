package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/techflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/techflow-backend/internal/auth"
	"github.com/heartmarshall/techflow-backend/internal/config"
	"github.com/heartmarshall/techflow-backend/internal/transport/middleware"
	"github.com/heartmarshall/techflow-backend/internal/transport/rest"
)

const rateLimitCleanupInterval = time.Minute

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services and handlers, and serves HTTP
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("app: migrate: %w", err)
		}
	}

	handler, stop, err := NewHandler(cfg, pool, logger)
	if err != nil {
		return err
	}
	defer stop()

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app: serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

// NewHandler wires the HTTP API on top of pool. The returned stop func
// releases background resources owned by the handler chain.
func NewHandler(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (http.Handler, func(), error) {
	svcs, err := NewServices(cfg, pool, logger)
	if err != nil {
		return nil, nil, err
	}

	webhookVerifier, err := auth.NewWebhookVerifier(cfg.Identity.WebhookSecret, cfg.Identity.WebhookTolerance)
	if err != nil {
		return nil, nil, fmt.Errorf("app: identity webhook: %w", err)
	}

	paging := rest.Paging{
		DefaultPageSize: cfg.Pagination.DefaultPageSize,
		MaxPageSize:     cfg.Pagination.MaxPageSize,
	}

	handlers := rest.Handlers{
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
		Question: rest.NewQuestionHandler(svcs.Question, paging, logger),
		Answer:   rest.NewAnswerHandler(svcs.Answer, paging, logger),
		Vote:     rest.NewVoteHandler(svcs.Vote, logger),
		Tag:      rest.NewTagHandler(svcs.Tag, paging, logger),
		User:     rest.NewUserHandler(svcs.User, svcs.Question, svcs.Answer, paging, logger),
		Search:   rest.NewSearchHandler(svcs.Search, logger),
		Webhook:  rest.NewWebhookHandler(webhookVerifier, svcs.User, logger),
	}
	if svcs.Assistant != nil {
		handlers.Assistant = rest.NewAssistantHandler(svcs.Assistant, logger)
	} else {
		logger.Warn("assistant disabled: no API key configured")
	}

	// Recovery is outermost so it also covers the other middleware.
	global := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}
	stop := func() {}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, rateLimitCleanupInterval)
		global = append(global, limiter.Middleware())
		stop = limiter.Stop
	}

	router := rest.NewRouter(handlers, middleware.Chain(global...), middleware.Auth(svcs.User))
	return router, stop, nil
}
