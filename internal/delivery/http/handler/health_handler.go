package handler

import (
	"context"
	"time"

	"hiring-intel/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache Pinger
}

func NewHealthHandler(db Pinger, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

// Health fails only on the database. Redis being down is reported but the
// service keeps working without it.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := map[string]string{"database": "up", "cache": "up"}
	if h.db == nil {
		status["database"] = "unknown"
	} else if err := h.db.Ping(ctx); err != nil {
		status["database"] = "down"
		return response.Error(c, fiber.StatusServiceUnavailable, "database unavailable", status)
	}
	if h.cache == nil {
		status["cache"] = "disabled"
	} else if err := h.cache.Ping(ctx); err != nil {
		status["cache"] = "down"
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, status)
}
