// Command purge-user removes a user and everything they authored, using the
// same cascade as the identity-provider deletion webhook. It is meant for
// operators when a deletion event was missed or must be replayed.
//
// Usage:
//
//	purge-user --external-id=user_2abc
//	purge-user --id=3f0c...
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/techflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/techflow-backend/internal/app"
	"github.com/heartmarshall/techflow-backend/internal/config"
	"github.com/heartmarshall/techflow-backend/internal/domain"
)

func main() {
	externalID := flag.String("external-id", "", "identity-provider id of the user")
	rawID := flag.String("id", "", "internal UUID of the user")
	flag.Parse()

	if (*externalID == "") == (*rawID == "") {
		fmt.Fprintln(os.Stderr, "Usage: purge-user --external-id=<id> | --id=<uuid>")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svcs, err := app.NewServices(cfg, pool, logger)
	if err != nil {
		logger.Error("wire services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var report domain.CascadeReport
	if *externalID != "" {
		report, err = svcs.User.DeleteUserByExternalID(ctx, *externalID)
	} else {
		id, perr := uuid.Parse(*rawID)
		if perr != nil {
			logger.Error("invalid --id", slog.String("error", perr.Error()))
			os.Exit(1)
		}
		report, err = svcs.User.DeleteUser(ctx, id)
	}
	if err != nil {
		logger.Error("purge failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("purge completed",
		slog.Int64("users", report.Users),
		slog.Int64("questions", report.Questions),
		slog.Int64("answers", report.Answers),
		slog.Int64("votes", report.Votes),
		slog.Int64("saves", report.Saves),
		slog.Int64("interactions", report.Interactions),
		slog.Int64("follows", report.Follows),
	)
}
