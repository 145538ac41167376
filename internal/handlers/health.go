package handlers

import (
	"time"

	"musefolio/internal/database"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	db *database.MongoDB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *database.MongoDB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Handle responds with server health status, including database reachability.
func (h *HealthHandler) Handle(c *fiber.Ctx) error {
	dbStatus := "connected"
	if err := h.db.Ping(c.Context()); err != nil {
		dbStatus = "unreachable"
	}

	return c.JSON(fiber.Map{
		"status":    "healthy",
		"database":  dbStatus,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
