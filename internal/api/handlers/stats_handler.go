package handlers

import (
	"github.com/gofiber/fiber/v2"
)

type StatsHandler struct {
	store *Store
}

func NewStatsHandler(store *Store) *StatsHandler {
	return &StatsHandler{store: store}
}

// GetStats serves the aggregate statistics artifact of the latest run.
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	result := h.store.Latest()
	if result == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no completed analysis run",
		})
	}
	return c.JSON(fiber.Map{
		"run_id":       result.RunID,
		"completed_at": result.CompletedAt,
		"stats":        result.Stats,
	})
}

// GetSummary serves the executive summary and topics report.
func (h *StatsHandler) GetSummary(c *fiber.Ctx) error {
	result := h.store.Latest()
	if result == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no completed analysis run",
		})
	}
	return c.JSON(fiber.Map{
		"run_id":  result.RunID,
		"summary": result.Summary,
		"topics":  result.TopicsReport,
	})
}
