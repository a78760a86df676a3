package api

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ugmineras/noticias/internal/config"
	"github.com/ugmineras/noticias/internal/feed"
	"github.com/ugmineras/noticias/internal/logger"
	"github.com/ugmineras/noticias/internal/middleware"
	"github.com/ugmineras/noticias/internal/models"
	"github.com/ugmineras/noticias/internal/normalize"
	"github.com/ugmineras/noticias/internal/storage"
)

// NewsService is the part of feed.Processor the handlers depend on
type NewsService interface {
	Keys() []string
	Category(ctx context.Context, key string, limit int) ([]models.NewsItem, error)
	FrontPage(ctx context.Context) (models.FrontPage, error)
	Article(ctx context.Context, key, slug string) (models.ArticlePage, error)
	Refresh(ctx context.Context) error
	Snapshot(ctx context.Context) (string, error)
	LoadSnapshot(ctx context.Context, key string) (models.FrontPage, error)
}

// CategoryQuery holds the query parameters of GET /news/:category
type CategoryQuery struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

// CategoryInfo describes one category of the registry
type CategoryInfo struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Label string `json:"label"`
	Color string `json:"color"`
}

var _ NewsService = (*feed.Processor)(nil)

type Handlers struct {
	config  *config.Config
	service NewsService
}

func NewHandlers(cfg *config.Config, service NewsService) *Handlers {
	return &Handlers{
		config:  cfg,
		service: service,
	}
}

// HealthCheck handles the /health endpoint
func (h *Handlers) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": "1.0.0",
		"env":     h.config.Env,
		"time":    time.Now().Format(time.RFC3339),
	})
}

// GetCategories handles GET /api/v1/categories
func (h *Handlers) GetCategories(c *fiber.Ctx) error {
	keys := h.service.Keys()
	categories := make([]CategoryInfo, 0, len(keys))
	for _, key := range keys {
		categories = append(categories, CategoryInfo{
			Key:   key,
			Name:  normalize.DisplayName(key),
			Label: normalize.ShortLabel(key),
			Color: normalize.ColorToken(key),
		})
	}
	return c.JSON(fiber.Map{
		"categories": categories,
	})
}

// GetFrontPage handles GET /api/v1/news
func (h *Handlers) GetFrontPage(c *fiber.Ctx) error {
	page, err := h.service.FrontPage(c.UserContext())
	if err != nil {
		logger.WithError(err).Msg("Error building front page")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build front page",
		})
	}
	return c.JSON(page)
}

// GetCategory handles GET /api/v1/news/:category
func (h *Handlers) GetCategory(c *fiber.Ctx) error {
	key := c.Params("category")

	limit := 0
	if q, ok := c.Locals(middleware.QueryKey).(*CategoryQuery); ok {
		limit = q.Limit
	}

	items, err := h.service.Category(c.UserContext(), key, limit)
	if err != nil {
		return h.serviceError(c, err, "Failed to get news")
	}

	return c.JSON(fiber.Map{
		"category": CategoryInfo{
			Key:   key,
			Name:  normalize.DisplayName(key),
			Label: normalize.ShortLabel(key),
			Color: normalize.ColorToken(key),
		},
		"items": items,
		"count": len(items),
	})
}

// GetArticle handles GET /api/v1/news/:category/:id
func (h *Handlers) GetArticle(c *fiber.Ctx) error {
	key := c.Params("category")
	slug := c.Params("id")
	if slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "News ID is required",
		})
	}

	page, err := h.service.Article(c.UserContext(), key, slug)
	if err != nil {
		return h.serviceError(c, err, "Failed to get news item")
	}
	return c.JSON(page)
}

// Refresh handles POST /api/v1/admin/refresh
func (h *Handlers) Refresh(c *fiber.Ctx) error {
	if err := h.service.Refresh(c.UserContext()); err != nil {
		logger.WithError(err).Msg("Error refreshing cache")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to refresh cache",
		})
	}
	return c.JSON(fiber.Map{
		"status":  "refreshed",
		"message": "Cache cleared successfully",
	})
}

// Snapshot handles POST /api/v1/admin/snapshot
func (h *Handlers) Snapshot(c *fiber.Ctx) error {
	start := time.Now()
	key, err := h.service.Snapshot(c.UserContext())
	if err != nil {
		logger.WithError(err).Msg("Error archiving front page")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to archive front page",
		})
	}

	logger.Info().
		Str("key", key).
		Dur("duration", time.Since(start)).
		Msg("Snapshot stored")

	return c.JSON(fiber.Map{
		"status": "archived",
		"key":    key,
	})
}

// GetSnapshot handles GET /api/v1/admin/snapshots/*
func (h *Handlers) GetSnapshot(c *fiber.Ctx) error {
	key := c.Params("*")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Snapshot key is required",
		})
	}

	page, err := h.service.LoadSnapshot(c.UserContext(), key)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Snapshot not found",
		})
	case errors.Is(err, storage.ErrInvalidKey):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid snapshot key",
		})
	case err != nil:
		logger.WithError(err).Str("key", key).Msg("Error loading snapshot")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load snapshot",
		})
	}
	return c.JSON(page)
}

// serviceError maps feed sentinel errors to HTTP responses
func (h *Handlers) serviceError(c *fiber.Ctx, err error, message string) error {
	switch {
	case errors.Is(err, feed.ErrUnknownCategory):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Category not found",
		})
	case errors.Is(err, feed.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "News item not found",
		})
	}

	logger.WithError(err).
		Str("path", c.Path()).
		Msg(message)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": message,
	})
}
