package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/admin-api/internal/config"
	"github.com/ahmetcoskunkizilkaya/admin-api/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/admin-api/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	userHandler *handlers.UserHandler,
	adminHandler *handlers.AdminHandler,
	roleHandler *handlers.RoleHandler,
	permissionHandler *handlers.PermissionHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health (unauthenticated)
	api.Get("/health", healthHandler.Check)

	// Everything under /v1 sits behind the identity gate; mutations
	// additionally require an admin caller.
	v1 := api.Group("/v1", middleware.Identity(cfg))
	adminOnly := middleware.AdminRequired(db, cfg)

	v1.Get("/users", userHandler.List)
	v1.Get("/users/:id", userHandler.Get)
	v1.Put("/users/:id", adminOnly, userHandler.Update)
	v1.Delete("/users/:id", adminOnly, userHandler.Delete)
	v1.Get("/users/:id/purchases", userHandler.ListPurchases)
	v1.Get("/users/:id/devices", userHandler.ListDevices)

	v1.Get("/admins", adminHandler.List)
	v1.Post("/admins", adminOnly, adminHandler.Create)
	v1.Get("/admins/count", adminHandler.Count)

	v1.Get("/roles", roleHandler.List)
	v1.Post("/roles", adminOnly, roleHandler.Create)
	v1.Put("/roles/:id", adminOnly, roleHandler.Update)
	v1.Delete("/roles/:id", adminOnly, roleHandler.Delete)
	v1.Post("/roles/:id/permissions", adminOnly, roleHandler.AttachPermissions)

	v1.Get("/permissions", permissionHandler.List)
	v1.Post("/permissions", adminOnly, permissionHandler.Create)
	v1.Put("/permissions/:id", adminOnly, permissionHandler.Update)
	v1.Delete("/permissions/:id", adminOnly, permissionHandler.Delete)
}
