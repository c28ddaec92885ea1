package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tradeflows/promoflow/internal/service"
)

type AnalyticsHandler struct {
	s service.AnalyticsService
}

func NewAnalyticsHandler(s service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{s: s}
}

func (h *AnalyticsHandler) DailyStats(c *fiber.Ctx) error {
	stats, err := h.s.DailyStats(c.Context(), c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to load daily stats",
		})
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}

func (h *AnalyticsHandler) Report(c *fiber.Ctx) error {
	days := c.QueryInt("days", 7)

	report, err := h.s.Report(c.Context(), days)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to build report",
		})
	}

	return c.Status(fiber.StatusOK).JSON(report)
}
