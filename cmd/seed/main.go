// Command seed wipes the database and loads the demo dataset: one user per
// role, the six journey stages, role-targeted tasks, resources, companies
// and sample market rows.
package main

import (
	"context"

	"github.com/asxpathway/pathway-api/internal/infrastructure/postgres"
	"github.com/asxpathway/pathway-api/internal/infrastructure/seed"
	"github.com/asxpathway/pathway-api/pkg/config"
	"github.com/asxpathway/pathway-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("apply migrations")
	}

	repos := seed.Repos{
		Users:         postgres.NewUserRepository(pool),
		ListingStages: postgres.NewListingStageRepository(pool),
		Tasks:         postgres.NewTaskRepository(pool),
		Resources:     postgres.NewResourceRepository(pool),
		Companies:     postgres.NewCompanyRepository(pool),
		MarketData:    postgres.NewMarketDataRepository(pool),
		IpoCalendar:   postgres.NewIpoCalendarRepository(pool),
		Sentiment:     postgres.NewMarketSentimentRepository(pool),
	}

	runner := seed.NewRunner(pool, repos, log, cfg.Seed.DemoPassword)
	if err := runner.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("seed database")
	}

	log.Info().Msg("demo data loaded")
}
