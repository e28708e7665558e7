package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/asxpathway/pathway-api/internal/application/auth"
	"github.com/asxpathway/pathway-api/internal/application/progress"
	"github.com/asxpathway/pathway-api/internal/application/timeline"
	"github.com/asxpathway/pathway-api/internal/application/usecase"
	"github.com/asxpathway/pathway-api/internal/metrics"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	UserUC         *usecase.UserUseCase
	TaskUC         *usecase.TaskUseCase
	ResourceUC     *usecase.ResourceUseCase
	CompanyUC      *usecase.CompanyUseCase
	ListingStageUC *usecase.ListingStageUseCase
	MeetingUC      *usecase.MeetingUseCase
	MarketUC       *usecase.MarketUseCase
	ProgressUC     *progress.UseCase
	TimelineUC     *timeline.UseCase
	AuthUC         *auth.UseCase
	Collector      *metrics.Collector
	JWTSecret      string

	// AuthRequired gates every mutating route behind the Bearer middleware.
	// The demo deployment runs open.
	AuthRequired bool
}

// Router registers the API routes. Reads stay public; writes go through the
// guard, which is a no-op unless AuthRequired is set.
func Router(app *fiber.App, deps RouterDeps) {
	guard := func(c *fiber.Ctx) error { return c.Next() }
	if deps.AuthRequired {
		guard = AuthMiddleware(deps.JWTSecret)
	}

	api := app.Group("/api")

	// Auth (public)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Collector)
	api.Post("/auth/login", authHandler.Login)

	// Users. The username route registers first so "username" is never
	// swallowed by the :id parameter.
	userHandler := NewUserHandler(deps.UserUC)
	users := api.Group("/users")
	users.Get("/username/:username", userHandler.GetByUsername)
	users.Post("/", guard, userHandler.Create)
	users.Put("/:id", guard, userHandler.Update)
	users.Get("/:id", userHandler.GetByID)

	// Progress (user segment accepts id or username)
	progressHandler := NewProgressHandler(deps.ProgressUC, deps.UserUC, deps.Collector)
	users.Get("/:userIdOrUsername/progress", progressHandler.List)
	users.Post("/:userIdOrUsername/progress/:taskId", guard, progressHandler.Set)

	// Tasks
	taskHandler := NewTaskHandler(deps.TaskUC)
	tasks := api.Group("/tasks")
	tasks.Get("/", taskHandler.List)
	tasks.Post("/", guard, taskHandler.Create)
	tasks.Get("/:id", taskHandler.GetByID)
	tasks.Put("/:id", guard, taskHandler.Update)
	tasks.Delete("/:id", guard, taskHandler.Delete)

	// Resources
	resourceHandler := NewResourceHandler(deps.ResourceUC)
	resources := api.Group("/resources")
	resources.Get("/", resourceHandler.List)
	resources.Post("/", guard, resourceHandler.Create)
	resources.Get("/:id", resourceHandler.GetByID)
	resources.Put("/:id", guard, resourceHandler.Update)

	// Companies and the timeline patch
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.TimelineUC, deps.Collector)
	companies := api.Group("/companies")
	companies.Get("/", companyHandler.List)
	companies.Post("/", guard, companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", guard, companyHandler.Update)
	companies.Patch("/:id/timeline", guard, companyHandler.UpdateTimeline)

	// Listing stages
	stageHandler := NewListingStageHandler(deps.ListingStageUC)
	stages := api.Group("/listing-stages")
	stages.Get("/", stageHandler.List)
	stages.Post("/", guard, stageHandler.Create)

	// Meeting requests
	meetingHandler := NewMeetingHandler(deps.MeetingUC)
	meetings := api.Group("/meeting-requests")
	meetings.Get("/", meetingHandler.List)
	meetings.Post("/", guard, meetingHandler.Create)

	// Market intelligence
	marketHandler := NewMarketHandler(deps.MarketUC)
	api.Get("/market-data", marketHandler.ListMarketData)
	api.Post("/market-data", guard, marketHandler.CreateMarketData)
	api.Put("/market-data/:symbol", guard, marketHandler.UpdateMarketData)
	api.Get("/ipo-calendar", marketHandler.ListIpoCalendar)
	api.Post("/ipo-calendar", guard, marketHandler.CreateIpoCalendarEntry)
	api.Put("/ipo-calendar/:id", guard, marketHandler.UpdateIpoCalendarEntry)
	api.Get("/market-sentiment/latest", marketHandler.LatestMarketSentiment)
	api.Get("/market-sentiment", marketHandler.ListMarketSentiment)
	api.Post("/market-sentiment", guard, marketHandler.CreateMarketSentiment)
}
