package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sprintsim/backend/internal/models"
	"github.com/sprintsim/backend/internal/service"
	"github.com/sprintsim/backend/internal/skills"
)

// MemberRequest carries roster input. Skills are proficiency percentages
// 0-100 per area, classified into levels on the way in; absent or zero
// entries mean no capability.
type MemberRequest struct {
	Name         string             `json:"name" validate:"required"`
	Availability float64            `json:"availability" validate:"gte=0,lte=1"`
	Skills       map[string]float64 `json:"skills" validate:"dive,gte=0,lte=100"`
}

func (r MemberRequest) toMember(id string) (models.TeamMember, bool) {
	skillMap := map[models.SkillArea]*models.SkillLevel{}
	for _, area := range models.AllSkillAreas {
		skillMap[area] = nil
	}
	for key, percentage := range r.Skills {
		area := models.SkillArea(key)
		if _, ok := skillMap[area]; !ok {
			return models.TeamMember{}, false
		}
		skillMap[area] = skills.PercentageToLevel(percentage)
	}
	return models.TeamMember{
		ID:           id,
		Name:         r.Name,
		Skills:       skillMap,
		Availability: r.Availability,
		UpdatedAt:    time.Now().UTC(),
	}, true
}

// @Summary List team members
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/team [get]
func (h *Handler) TeamList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"members": h.Store.ListTeam()})
}

// @Summary Add a team member
// @Accept json
// @Produce json
// @Success 201 {object} models.TeamMember
// @Failure 400 {object} map[string]any
// @Router /api/team/members [post]
func (h *Handler) MemberCreate(c *gin.Context) {
	var req MemberRequest
	if !h.bindAndValidate(c, &req) {
		return
	}
	member, ok := req.toMember("member-" + uuid.NewString())
	if !ok {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Unknown skill area", nil)
		return
	}
	h.Store.AddMember(member)
	c.JSON(http.StatusCreated, member)
}

// @Summary Update a team member
// @Accept json
// @Produce json
// @Success 200 {object} models.TeamMember
// @Failure 404 {object} map[string]any
// @Router /api/team/members/{id} [put]
func (h *Handler) MemberUpdate(c *gin.Context) {
	var req MemberRequest
	if !h.bindAndValidate(c, &req) {
		return
	}
	member, ok := req.toMember(c.Param("id"))
	if !ok {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Unknown skill area", nil)
		return
	}
	if err := h.Store.UpdateMember(member); err != nil {
		writeError(c, http.StatusNotFound, "NOT_FOUND", "Member not found", nil)
		return
	}
	c.JSON(http.StatusOK, member)
}

// @Summary Remove a team member
// @Produce json
// @Success 204
// @Failure 404 {object} map[string]any
// @Router /api/team/members/{id} [delete]
func (h *Handler) MemberDelete(c *gin.Context) {
	if err := h.Store.RemoveMember(c.Param("id")); err != nil {
		writeError(c, http.StatusNotFound, "NOT_FOUND", "Member not found", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Current team capacity
// @Produce json
// @Success 200 {object} models.TeamCapacity
// @Router /api/team/capacity [get]
func (h *Handler) TeamCapacity(c *gin.Context) {
	capacity := service.CalculateTeamCapacity(h.Store.ListTeam(), h.Multipliers)
	c.JSON(http.StatusOK, capacity)
}

// @Summary Classify a proficiency percentage
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /api/skills/levels [get]
func (h *Handler) SkillLevel(c *gin.Context) {
	percentage, err := strconv.ParseFloat(c.Query("percentage"), 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "percentage query parameter required", nil)
		return
	}
	level := skills.PercentageToLevel(percentage)
	c.JSON(http.StatusOK, gin.H{
		"level":    level,
		"midpoint": skills.LevelToPercentage(level),
		"label":    skills.LevelLabel(percentage),
	})
}
