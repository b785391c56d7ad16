package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/reviewlens/backend/internal/pipeline"
	"github.com/reviewlens/backend/pkg/logger"
)

// RunFunc re-runs the pipeline over the configured input.
type RunFunc func(ctx context.Context) (*pipeline.Result, error)

type RefreshHandler struct {
	store *Store
	run   RunFunc
}

func NewRefreshHandler(store *Store, run RunFunc) *RefreshHandler {
	return &RefreshHandler{store: store, run: run}
}

// Refresh re-reads the input table, runs the full pipeline, and swaps the
// served run. The batch runs to completion within the request.
func (h *RefreshHandler) Refresh(c *fiber.Ctx) error {
	result, err := h.run(c.Context())
	if err != nil {
		logger.Error("refresh run failed", zap.Error(err))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	h.store.Set(result)

	return c.JSON(fiber.Map{
		"run_id":           result.RunID,
		"total_reviews":    result.Stats.TotalReviews,
		"degraded_reviews": result.Stats.DegradedReviews,
		"completed_at":     result.CompletedAt,
	})
}
