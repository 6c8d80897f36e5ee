package handler

import (
	"context"
	"time"

	"skill-gap/internal/delivery/http/dto"
	"skill-gap/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// HealthCheck pings one dependency.
type HealthCheck func(ctx context.Context) error

type HealthHandler struct {
	checks map[string]HealthCheck
}

func NewHealthHandler(checks map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{checks: checks}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	out := dto.HealthResponse{Status: "ok"}
	if len(h.checks) == 0 {
		return response.Success(c, fiber.StatusOK, out)
	}

	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := fiber.StatusOK
	out.Checks = make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			out.Checks[name] = err.Error()
			out.Status = "degraded"
			status = fiber.StatusServiceUnavailable
			continue
		}
		out.Checks[name] = "ok"
	}
	return response.Success(c, status, out)
}
