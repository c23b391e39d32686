package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/donationDB/Donation-Web/internal/config"
	"github.com/donationDB/Donation-Web/internal/handlers"
	"github.com/donationDB/Donation-Web/internal/middleware"
)

// Handlers bundles every HTTP handler the API mounts.
type Handlers struct {
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	Donors     *handlers.DonorHandler
	Programs   *handlers.ProgramHandler
	Categories *handlers.CategoryHandler
	Companies  *handlers.CompanyHandler
}

func Setup(app *fiber.App, cfg *config.Config, h Handlers) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// General API rate limiter, per IP
	if cfg.RateLimitPerMin > 0 {
		api.Use(limiter.New(limiter.Config{
			Max:               cfg.RateLimitPerMin,
			Expiration:        1 * time.Minute,
			LimiterMiddleware: limiter.SlidingWindow{},
			KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
		}))
	}

	api.Get("/health", h.Health.Check)

	// Login rate limit: 10 req/min per IP (stricter)
	loginLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	api.Post("/login", loginLimiter, h.Auth.Login)

	admin := middleware.AdminRequired(cfg)

	api.Get("/donors", admin, h.Donors.List)
	api.Post("/donors", h.Donors.Create)

	api.Get("/companies", h.Companies.List)
	api.Post("/companies", admin, h.Companies.Create)
	api.Delete("/companies/:id", admin, h.Companies.Delete)

	api.Get("/categories", h.Categories.List)
	api.Post("/categories", admin, h.Categories.Create)
	api.Delete("/categories/:id", admin, h.Categories.Delete)

	api.Get("/programs", h.Programs.List)
	api.Get("/programs/:id", h.Programs.Get)
	api.Patch("/programs/:id/status", admin, h.Programs.UpdateStatus)
	api.Delete("/programs/:id?", admin, h.Programs.Delete)
}
