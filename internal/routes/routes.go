package routes

import (
	"time"

	"github.com/canberkoz/leadboard-backend/internal/config"
	"github.com/canberkoz/leadboard-backend/internal/handlers"
	"github.com/canberkoz/leadboard-backend/internal/metrics"
	"github.com/canberkoz/leadboard-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	leadHandler *handlers.LeadHandler,
	campaignHandler *handlers.CampaignHandler,
	messageHandler *handlers.MessageHandler,
	fileHandler *handlers.FileHandler,
	reportHandler *handlers.ReportHandler,
	healthHandler *handlers.HealthHandler,
) {
	app.Get("/metrics", metrics.Handler())
	app.Static("/uploads", cfg.UploadDir)

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Public auth endpoints with a stricter rate limit, 10 req/min per IP.
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Delete("/auth/account", middleware.JWTProtected(cfg), authHandler.DeleteAccount)

	// Everything below requires a valid token; row access is further
	// narrowed to the caller's own rows inside the services.
	protected := api.Group("", middleware.JWTProtected(cfg))

	protected.Get("/profile", profileHandler.Get)
	protected.Put("/profile", profileHandler.Update)

	protected.Post("/leads", leadHandler.Create)
	protected.Get("/leads", leadHandler.List)
	protected.Get("/leads/export", leadHandler.Export)
	protected.Post("/leads/import", leadHandler.Import)
	protected.Get("/leads/:id", leadHandler.Get)
	protected.Put("/leads/:id", leadHandler.Update)
	protected.Delete("/leads/:id", leadHandler.Delete)

	protected.Post("/campaigns", campaignHandler.Create)
	protected.Get("/campaigns", campaignHandler.List)
	protected.Get("/campaigns/:id", campaignHandler.Get)
	protected.Put("/campaigns/:id", campaignHandler.Update)
	protected.Delete("/campaigns/:id", campaignHandler.Delete)

	protected.Post("/messages", messageHandler.Create)
	protected.Get("/messages", messageHandler.List)
	protected.Get("/messages/:id", messageHandler.Get)
	protected.Put("/messages/:id", messageHandler.Update)
	protected.Delete("/messages/:id", messageHandler.Delete)
	protected.Post("/messages/:id/send", messageHandler.Send)

	protected.Post("/files", fileHandler.Upload)
	protected.Get("/files", fileHandler.List)
	protected.Get("/files/:id", fileHandler.Get)
	protected.Delete("/files/:id", fileHandler.Delete)

	protected.Get("/reports/overview", reportHandler.Overview)
	protected.Get("/reports/leads-by-status", reportHandler.LeadsByStatus)
	protected.Get("/reports/leads-by-source", reportHandler.LeadsBySource)
	protected.Get("/reports/messages-by-status", reportHandler.MessagesByStatus)
	protected.Get("/reports/campaign-performance", reportHandler.CampaignPerformance)

	// Admin panel (protected + admin required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Get("/profiles", profileHandler.ListAll)
	admin.Put("/profiles/:id/role", profileHandler.SetRole)
}
