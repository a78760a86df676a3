package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ugmineras/noticias/internal/config"
	"github.com/ugmineras/noticias/internal/middleware"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(app *fiber.App, handlers *Handlers, cfg *config.Config) {
	// API group with versioning
	api := app.Group("/api/v1")

	api.Get("/health", handlers.HealthCheck)
	api.Get("/categories", handlers.GetCategories)

	// News endpoints
	news := api.Group("/news")
	{
		news.Get("", handlers.GetFrontPage)
		news.Get("/:category", middleware.ValidateQuery(func() any { return &CategoryQuery{} }), handlers.GetCategory)
		news.Get("/:category/:id", handlers.GetArticle)
	}

	// Admin endpoints
	admin := api.Group("/admin", middleware.AdminOnly(cfg.AdminAPIKey))
	{
		admin.Post("/refresh", handlers.Refresh)
		admin.Post("/snapshot", handlers.Snapshot)
		admin.Get("/snapshots/*", handlers.GetSnapshot)
	}

	// 404 Handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Endpoint not found",
		})
	})
}
