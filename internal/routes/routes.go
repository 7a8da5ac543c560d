package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/repairtrack/backend/internal/config"
	"github.com/repairtrack/backend/internal/handlers"
	"github.com/repairtrack/backend/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	reportHandler *handlers.ReportHandler,
	pendingHandler *handlers.PendingHandler,
	purchaseHandler *handlers.PurchaseHandler,
	dataHandler *handlers.DataHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, stricter rate limit: 10 req/min per IP
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

	jwt := middleware.JWTProtected(cfg)
	admin := middleware.AdminRequired(db, cfg)

	// Reports — reads for any authenticated user, writes for admins
	api.Get("/reports", jwt, reportHandler.List)
	api.Get("/reports/:id", jwt, reportHandler.Get)
	api.Post("/reports", jwt, admin, reportHandler.Create)
	api.Put("/reports/:id", jwt, admin, reportHandler.Update)
	api.Delete("/reports/:id", jwt, admin, reportHandler.Delete)

	// Pending queue — clients submit and see their own; admins moderate
	api.Post("/pending-reports", jwt, pendingHandler.Submit)
	api.Get("/pending-reports/mine", jwt, pendingHandler.ListMine)
	api.Get("/pending-reports", jwt, admin, pendingHandler.List)
	api.Post("/pending-reports/:id/approve", jwt, admin, pendingHandler.Approve)
	api.Delete("/pending-reports/:id", jwt, admin, pendingHandler.Reject)

	// Purchases
	api.Get("/purchases", jwt, purchaseHandler.List)
	api.Post("/purchases", jwt, admin, purchaseHandler.Add)
	api.Delete("/purchases/:id", jwt, admin, purchaseHandler.Delete)

	// Bulk data management
	api.Get("/data/export", jwt, admin, dataHandler.Export)
	api.Post("/data/import", jwt, admin, dataHandler.Import)
	api.Delete("/data", jwt, admin, dataHandler.Clear)
}
