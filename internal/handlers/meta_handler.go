package handlers

import (
	"context"
	"time"

	"handiva/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// MetaHandler serves liveness, health and search suggestions.
type MetaHandler struct {
	store Pinger
}

// NewMetaHandler creates a new MetaHandler.
func NewMetaHandler(store Pinger) *MetaHandler {
	return &MetaHandler{store: store}
}

// RegisterRoutes registers ping and suggestions under the API router.
func (h *MetaHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ping", h.HandlePing)
	router.Get("/suggestions", h.HandleSuggestions)
}

// HandlePing always answers while the process is serving.
func (h *MetaHandler) HandlePing(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true, "message": "Handiva API is alive"})
}

// HandleSuggestions returns craft names matching the q parameter.
func (h *MetaHandler) HandleSuggestions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"suggestions": services.Suggest(c.Query("q"))})
}

// HandleHealth reports whether the store is reachable.
func (h *MetaHandler) HandleHealth(c *fiber.Ctx) error {
	status, store, code := "healthy", "connected", fiber.StatusOK
	if err := h.store.Ping(c.UserContext()); err != nil {
		zap.L().Warn("health check failed", zap.Error(err))
		status, store, code = "unhealthy", "unreachable", fiber.StatusServiceUnavailable
	}
	return c.Status(code).JSON(fiber.Map{
		"status": status,
		"time":   time.Now().Format(time.RFC3339),
		"store":  store,
	})
}
