// Package seed loads the demo dataset: one user per role, the six journey
// stages, role-targeted tasks, resources, companies and sample market rows.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/asxpathway/pathway-api/internal/domain/repository"
	"github.com/asxpathway/pathway-api/pkg/logger"
)

// Repos groups the persistence ports the runner writes through.
type Repos struct {
	Users         repository.UserRepository
	ListingStages repository.ListingStageRepository
	Tasks         repository.TaskRepository
	Resources     repository.ResourceRepository
	Companies     repository.CompanyRepository
	MarketData    repository.MarketDataRepository
	IpoCalendar   repository.IpoCalendarRepository
	Sentiment     repository.MarketSentimentRepository
}

// Runner truncates and reloads the demo dataset.
type Runner struct {
	pool         *pgxpool.Pool
	repos        Repos
	log          *logger.Logger
	demoPassword string
}

// NewRunner builds the seed runner. demoPassword is bcrypt-hashed once and
// shared by every demo user.
func NewRunner(pool *pgxpool.Pool, repos Repos, log *logger.Logger, demoPassword string) *Runner {
	return &Runner{pool: pool, repos: repos, log: log, demoPassword: demoPassword}
}

// Run clears existing data and loads the full demo dataset.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.truncate(ctx); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(r.demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	if err := r.seedUsers(string(hash)); err != nil {
		return err
	}
	stageIDs, err := r.seedListingStages()
	if err != nil {
		return err
	}
	if err := r.seedTasks(stageIDs); err != nil {
		return err
	}
	if err := r.seedResources(); err != nil {
		return err
	}
	if err := r.seedCompanies(); err != nil {
		return err
	}
	if err := r.seedMarket(); err != nil {
		return err
	}

	r.log.Info().Msg("demo dataset loaded")
	return nil
}

// truncate clears every table in dependency order.
func (r *Runner) truncate(ctx context.Context) error {
	tables := []string{
		"user_progress", "meeting_requests", "tasks", "listing_stages",
		"resources", "companies", "market_data", "ipo_calendar",
		"market_sentiment", "users",
	}
	for _, table := range tables {
		if _, err := r.pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}
