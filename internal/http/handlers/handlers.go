package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/sprintsim/backend/internal/ai"
	"github.com/sprintsim/backend/internal/skills"
	"github.com/sprintsim/backend/internal/store"
)

type Handler struct {
	Store       *store.Store
	Generator   ai.Generator
	Multipliers skills.MultiplierTable
	Validator   *validator.Validate
	Logger      zerolog.Logger
	AdminKey    string
}

// @Summary Service health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /healthz [get]
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func writeError(c *gin.Context, status int, code, message string, details any) {
	payload := gin.H{
		"code":    code,
		"message": message,
	}
	if details != nil {
		payload["details"] = details
	}
	c.AbortWithStatusJSON(status, gin.H{"error": payload})
}

func (h *Handler) bindAndValidate(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Malformed request body", err.Error())
		return false
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_FAILED", "Request validation failed", err.Error())
		return false
	}
	return true
}
