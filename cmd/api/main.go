package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/asxpathway/pathway-api/internal/application/auth"
	"github.com/asxpathway/pathway-api/internal/application/progress"
	"github.com/asxpathway/pathway-api/internal/application/timeline"
	"github.com/asxpathway/pathway-api/internal/application/usecase"
	"github.com/asxpathway/pathway-api/internal/infrastructure/postgres"
	httpRouter "github.com/asxpathway/pathway-api/internal/interfaces/http"
	"github.com/asxpathway/pathway-api/internal/metrics"
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
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("apply migrations")
	}

	userRepo := postgres.NewUserRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	resourceRepo := postgres.NewResourceRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	stageRepo := postgres.NewListingStageRepository(pool)
	progressRepo := postgres.NewUserProgressRepository(pool)
	meetingRepo := postgres.NewMeetingRequestRepository(pool)
	marketDataRepo := postgres.NewMarketDataRepository(pool)
	ipoCalendarRepo := postgres.NewIpoCalendarRepository(pool)
	sentimentRepo := postgres.NewMarketSentimentRepository(pool)

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	deps := httpRouter.RouterDeps{
		UserUC:         usecase.NewUserUseCase(userRepo),
		TaskUC:         usecase.NewTaskUseCase(taskRepo),
		ResourceUC:     usecase.NewResourceUseCase(resourceRepo),
		CompanyUC:      usecase.NewCompanyUseCase(companyRepo),
		ListingStageUC: usecase.NewListingStageUseCase(stageRepo),
		MeetingUC:      usecase.NewMeetingUseCase(meetingRepo, userRepo),
		MarketUC:       usecase.NewMarketUseCase(marketDataRepo, ipoCalendarRepo, sentimentRepo),
		ProgressUC:     progress.NewUseCase(progressRepo, taskRepo),
		TimelineUC:     timeline.NewUseCase(companyRepo, cfg.Timeline.StrictProgression),
		AuthUC:         auth.NewUseCase(userRepo, cfg.JWT),
		Collector:      collector,
		JWTSecret:      cfg.JWT.Secret,
		AuthRequired:   cfg.Auth.Required,
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.MetricsMiddleware(collector))

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ASX Pathway API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler(registry)))

	httpRouter.Router(app, deps)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
