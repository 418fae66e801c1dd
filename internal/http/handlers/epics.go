package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sprintsim/backend/internal/service"
)

type EpicRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	UseAI       bool   `json:"use_ai"`
}

// @Summary Break an epic into stories
// @Description Uses the configured story AI when requested, falling back to rule-based generation on any failure
// @Accept json
// @Produce json
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /api/epics [post]
func (h *Handler) EpicCreate(c *gin.Context) {
	var req EpicRequest
	if !h.bindAndValidate(c, &req) {
		return
	}

	result := service.BuildEpic(c.Request.Context(), h.Generator, req.Title, req.Description, req.UseAI)
	if result.GenerError != nil {
		h.Logger.Warn().Err(result.GenerError).Msg("story AI failed, used rule-based generator")
	}
	h.Store.SetEpic(result.Epic)

	payload := gin.H{
		"epic":    result.Epic,
		"used_ai": result.UsedAI,
	}
	if result.GenerError != nil {
		// Non-blocking notice: the epic below came from the fallback path.
		payload["ai_error"] = result.GenerError.Error()
	}
	c.JSON(http.StatusCreated, payload)
}

// @Summary Current epic
// @Produce json
// @Success 200 {object} models.Epic
// @Failure 404 {object} map[string]any
// @Router /api/epics/current [get]
func (h *Handler) EpicCurrent(c *gin.Context) {
	epic, err := h.Store.GetEpic()
	if err != nil {
		writeError(c, http.StatusNotFound, "NO_EPIC", "No epic created yet", nil)
		return
	}
	c.JSON(http.StatusOK, epic)
}
