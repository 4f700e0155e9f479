package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler reports liveness and the active storage driver.
type HealthHandler struct {
	storage string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(storage string) *HealthHandler {
	return &HealthHandler{storage: storage}
}

// RegisterRoutes registers GET /health.
func (h *HealthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/health", h.HandleHealth)
}

// HandleHealth returns a static healthy status.
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "healthy",
		"time":    time.Now().Format(time.RFC3339),
		"storage": h.storage,
	})
}
