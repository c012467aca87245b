// Command seeder loads a demo data set (users, questions, answers, votes)
// through the regular use cases. It is intended for local and staging
// environments, not as part of the main server.
//
// Flags:
//
//	--fixture        path to the JSON fixture (overrides SEEDER_FIXTURE_PATH)
//	--dry-run        parse the fixture without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/techflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/techflow-backend/internal/app"
	"github.com/heartmarshall/techflow-backend/internal/app/seeder"
	"github.com/heartmarshall/techflow-backend/internal/config"
)

func main() {
	fixtureFlag := flag.String("fixture", "", "path to the JSON fixture")
	dryRunFlag := flag.Bool("dry-run", false, "parse the fixture without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	// Load app config (for DB connection).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *fixtureFlag != "" {
		seederCfg.FixturePath = *fixtureFlag
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}
	if seederCfg.FixturePath == "" {
		logger.Error("fixture path is required (--fixture or SEEDER_FIXTURE_PATH)")
		os.Exit(1)
	}

	fixture, err := seeder.LoadFixture(seederCfg.FixturePath)
	if err != nil {
		logger.Error("load fixture", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if appCfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			logger.Error("migrate", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	svcs, err := app.NewServices(appCfg, pool, logger)
	if err != nil {
		logger.Error("wire services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pipeline := seeder.NewPipeline(logger, svcs.User, svcs.Question, svcs.Answer, svcs.Vote, *seederCfg)
	if err := pipeline.Run(ctx, fixture); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
