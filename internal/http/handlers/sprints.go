package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sprintsim/backend/internal/service"
)

// @Summary Plan sprints from the current epic and team
// @Description Greedy largest-first fill against floored weekly capacity; oversized stories land in a trailing overflow sprint
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/sprints/plan [post]
func (h *Handler) SprintsPlan(c *gin.Context) {
	epic, err := h.Store.GetEpic()
	if err != nil {
		writeError(c, http.StatusNotFound, "NO_EPIC", "Create an epic before planning", nil)
		return
	}

	sprints := service.PlanSprints(epic.Stories, h.Store.ListTeam(), h.Multipliers)
	h.Store.SetSprints(sprints)

	// An empty plan is a valid state (empty team or zero capacity), not an error.
	c.JSON(http.StatusOK, gin.H{"sprints": sprints})
}

// @Summary List planned sprints
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/sprints [get]
func (h *Handler) SprintsList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sprints": h.Store.ListSprints()})
}
