package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sprintsim/backend/internal/models"
	"github.com/sprintsim/backend/internal/service"
	"github.com/sprintsim/backend/internal/store"
)

type SimulationRequest struct {
	SprintID int `json:"sprint_id" validate:"required,gte=1"`
}

type DisruptionRequest struct {
	MemberID        string  `json:"member_id" validate:"required"`
	OnCallPercent   float64 `json:"on_call_percent" validate:"gte=0,lte=1"`
	SickPercent     float64 `json:"sick_percent" validate:"gte=0,lte=1"`
	SupportWork     bool    `json:"support_work"`
	ContextSwitched bool    `json:"context_switched"`
}

// @Summary Start a simulation over a planned sprint
// @Accept json
// @Produce json
// @Success 201 {object} models.Session
// @Failure 404 {object} map[string]any
// @Router /api/simulations [post]
func (h *Handler) SimulationCreate(c *gin.Context) {
	var req SimulationRequest
	if !h.bindAndValidate(c, &req) {
		return
	}

	sprint, err := h.Store.GetSprint(req.SprintID)
	if err != nil {
		writeError(c, http.StatusNotFound, "NOT_FOUND", "Sprint not found", nil)
		return
	}
	team := h.Store.ListTeam()
	if len(team) == 0 {
		writeError(c, http.StatusBadRequest, "EMPTY_TEAM", "Add team members before simulating", nil)
		return
	}

	session := service.NewSession(sprint, team, h.Multipliers)
	h.Store.PutSession(session)
	c.JSON(http.StatusCreated, session)
}

// @Summary Get a simulation session
// @Produce json
// @Success 200 {object} models.Session
// @Failure 404 {object} map[string]any
// @Router /api/simulations/{id} [get]
func (h *Handler) SimulationGet(c *gin.Context) {
	session, err := h.Store.GetSession(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusNotFound, "NOT_FOUND", "Simulation not found", nil)
		return
	}
	c.JSON(http.StatusOK, session)
}

// @Summary View one simulated day
// @Description Backward navigation over completed days; never mutates history
// @Produce json
// @Success 200 {object} models.DailyState
// @Failure 404 {object} map[string]any
// @Router /api/simulations/{id}/days/{n} [get]
func (h *Handler) SimulationDay(c *gin.Context) {
	session, err := h.Store.GetSession(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusNotFound, "NOT_FOUND", "Simulation not found", nil)
		return
	}
	n, err := strconv.Atoi(c.Param("n"))
	if err != nil || n < 1 || n > len(session.Days) {
		writeError(c, http.StatusNotFound, "DAY_OUT_OF_RANGE", "No such simulated day", nil)
		return
	}
	c.JSON(http.StatusOK, session.Days[n-1])
}

// @Summary Edit the current day's disruptions
// @Description Only the latest day accepts edits; earlier days are history
// @Accept json
// @Produce json
// @Success 200 {object} models.DailyState
// @Failure 404 {object} map[string]any
// @Router /api/simulations/{id}/disruptions [put]
func (h *Handler) SimulationDisruptions(c *gin.Context) {
	var req DisruptionRequest
	if !h.bindAndValidate(c, &req) {
		return
	}

	var current models.DailyState
	err := h.Store.WithSession(c.Param("id"), func(session *models.Session) error {
		if err := service.EditDisruption(session, models.DailyDisruption{
			MemberID:        req.MemberID,
			OnCallPercent:   req.OnCallPercent,
			SickPercent:     req.SickPercent,
			SupportWork:     req.SupportWork,
			ContextSwitched: req.ContextSwitched,
		}); err != nil {
			return err
		}
		current = session.Days[len(session.Days)-1]
		return nil
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(c, http.StatusNotFound, "NOT_FOUND", "Simulation not found", nil)
	case errors.Is(err, service.ErrUnknownMember):
		writeError(c, http.StatusNotFound, "NOT_FOUND", "Member has no disruption slot in this simulation", nil)
	case err != nil:
		writeError(c, http.StatusInternalServerError, "INTERNAL", "Failed to edit disruptions", err.Error())
	default:
		c.JSON(http.StatusOK, current)
	}
}

// @Summary Advance the simulation by one day
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 409 {object} map[string]any
// @Router /api/simulations/{id}/advance [post]
func (h *Handler) SimulationAdvance(c *gin.Context) {
	team := h.Store.ListTeam()

	var (
		day     models.DailyState
		metrics models.SprintMetrics
	)
	err := h.Store.WithSession(c.Param("id"), func(session *models.Session) error {
		var err error
		day, metrics, err = service.AdvanceDay(session, team, h.Multipliers)
		return err
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(c, http.StatusNotFound, "NOT_FOUND", "Simulation not found", nil)
	case errors.Is(err, service.ErrSimulationFinished):
		writeError(c, http.StatusConflict, "SIMULATION_FINISHED", "The work week is over", nil)
	case err != nil:
		writeError(c, http.StatusInternalServerError, "INTERNAL", "Failed to advance day", err.Error())
	default:
		c.JSON(http.StatusOK, gin.H{"day": day, "metrics": metrics})
	}
}

// @Summary Current sprint metrics
// @Produce json
// @Success 200 {object} models.SprintMetrics
// @Failure 404 {object} map[string]any
// @Router /api/simulations/{id}/metrics [get]
func (h *Handler) SimulationMetrics(c *gin.Context) {
	session, err := h.Store.GetSession(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusNotFound, "NOT_FOUND", "Simulation not found", nil)
		return
	}
	c.JSON(http.StatusOK, service.CurrentMetrics(session))
}
