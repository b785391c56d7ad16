package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/reviewlens/backend/internal/models"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

type ReviewHandler struct {
	store *Store
}

func NewReviewHandler(store *Store) *ReviewHandler {
	return &ReviewHandler{store: store}
}

// ListReviews serves a page of scored reviews, optionally filtered by
// sentiment label or category.
func (h *ReviewHandler) ListReviews(c *fiber.Ctx) error {
	result := h.store.Latest()
	if result == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no completed analysis run",
		})
	}

	sentiment := c.Query("sentiment")
	category := c.Query("category")

	filtered := result.ScoredReviews
	if sentiment != "" || category != "" {
		filtered = make([]models.ScoredReview, 0, len(result.ScoredReviews))
		for _, r := range result.ScoredReviews {
			if sentiment != "" && r.Sentiment.String() != sentiment {
				continue
			}
			if category != "" && r.Category != category {
				continue
			}
			filtered = append(filtered, r)
		}
	}

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	size := c.QueryInt("size", defaultPageSize)
	if size < 1 || size > maxPageSize {
		size = defaultPageSize
	}

	start := (page - 1) * size
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + size
	if end > len(filtered) {
		end = len(filtered)
	}

	return c.JSON(fiber.Map{
		"run_id":  result.RunID,
		"total":   len(filtered),
		"page":    page,
		"size":    size,
		"reviews": filtered[start:end],
	})
}
