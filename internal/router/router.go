package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/campushq/sis-api/internal/config"
	"github.com/campushq/sis-api/internal/handler"
	"github.com/campushq/sis-api/internal/middleware"
	"github.com/campushq/sis-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	StudentHandler    *handler.StudentHandler
	AttendanceHandler *handler.AttendanceHandler
	MarkHandler       *handler.MarkHandler
	ProfileHandler    *handler.ProfileHandler
	AnalyticsHandler  *handler.AnalyticsHandler
	SeedHandler       *handler.SeedHandler

	// AuthMiddleware extracts the optional JWT identity; PrincipalMiddleware
	// classifies it into the tagged principal the scoped routes consume.
	AuthMiddleware      fiber.Handler
	PrincipalMiddleware fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	noop := func(c *fiber.Ctx) error { return c.Next() }
	authMiddleware := deps.AuthMiddleware
	if authMiddleware == nil {
		authMiddleware = noop
	}
	principalMiddleware := deps.PrincipalMiddleware
	if principalMiddleware == nil {
		principalMiddleware = noop
	}

	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))
	api.Get("/whoami", authMiddleware, handler.Whoami())

	// Record CRUD runs behind identity extraction plus principal
	// classification; the services apply scoping from the principal.
	scoped := api.Group("", authMiddleware, principalMiddleware)
	if deps.StudentHandler != nil {
		deps.StudentHandler.Register(scoped.Group("/students"))
	}
	if deps.AttendanceHandler != nil {
		deps.AttendanceHandler.Register(scoped.Group("/attendance"))
	}
	if deps.MarkHandler != nil {
		deps.MarkHandler.Register(scoped.Group("/marks"))
	}

	if deps.ProfileHandler != nil {
		deps.ProfileHandler.Register(api.Group("", authMiddleware))
	}
	// The aggregation endpoint is the most expensive query in the service
	// and seeding mutates the whole store, so both sit behind rate limits.
	if deps.AnalyticsHandler != nil {
		deps.AnalyticsHandler.Register(api.Group("/analytics", middleware.RateLimit("analytics", 30, time.Minute)))
	}
	if deps.SeedHandler != nil {
		deps.SeedHandler.Register(api.Group("/seed", middleware.RateLimit("seed", 3, time.Minute)))
	}
}
