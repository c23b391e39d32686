package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/donationDB/Donation-Web/internal/dto"
)

// Pinger reports whether the primary store answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	pinger Pinger
}

func NewHealthHandler(pinger Pinger) *HealthHandler {
	return &HealthHandler{pinger: pinger}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	if err := h.pinger.Ping(c.UserContext()); err != nil {
		return serverError(c, "health.check", err)
	}
	return c.JSON(dto.HealthResponse{OK: true})
}
