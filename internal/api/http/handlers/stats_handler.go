package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/support-desk/ticket-dashboard/internal/service"
)

// StatsHandler serves the dashboard aggregate.
type StatsHandler struct {
	service *service.StatsService
}

// NewStatsHandler constructs handler.
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{service: statsService}
}

// Current GET /tickets/stats computes stats over the live snapshot.
func (h *StatsHandler) Current(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.service.Current()})
}
