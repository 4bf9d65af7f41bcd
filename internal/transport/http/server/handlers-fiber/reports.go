package handlers_fiber

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes binds the report endpoints on the app.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/metrics", h.GetReviewMetrics)
	app.Get("/api/team-actions", h.GetTeamActions)
	app.Get("/api/contributions/:login", h.GetContributions)
}

// GetReviewMetrics returns per-PR review latency metrics.
func (h *Handler) GetReviewMetrics(c *fiber.Ctx) error {
	metrics, err := h.uc.ReviewMetrics(c.Context())
	if err != nil {
		h.log.Errorw("failed to derive review metrics", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(metrics)
}

// GetTeamActions returns reviewer actions grouped by tier and member.
func (h *Handler) GetTeamActions(c *fiber.Ctx) error {
	actions, err := h.uc.TeamActions(c.Context())
	if err != nil {
		h.log.Errorw("failed to collect team actions", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(actions)
}

// GetContributions returns a user's contribution counts. Optional from/to
// query params are RFC3339 timestamps.
func (h *Handler) GetContributions(c *fiber.Ctx) error {
	login := c.Params("login")

	var from, to time.Time
	var err error
	if raw := c.Query("from"); raw != "" {
		if from, err = time.Parse(time.RFC3339, raw); err != nil {
			return c.Status(http.StatusBadRequest).JSON(errorResponse("INVALID_ARGUMENT", "from must be RFC3339"))
		}
	}
	if raw := c.Query("to"); raw != "" {
		if to, err = time.Parse(time.RFC3339, raw); err != nil {
			return c.Status(http.StatusBadRequest).JSON(errorResponse("INVALID_ARGUMENT", "to must be RFC3339"))
		}
	}

	counts, err := h.uc.Contributions(c.Context(), login, from, to)
	if err != nil {
		h.log.Errorw("failed to fetch contributions", "login", login, "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(counts)
}
