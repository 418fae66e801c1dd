package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sprintsim/backend/internal/models"
)

// RuleBasedGenerator derives stories from keyword matches in the epic
// description. Deterministic, always available, never returns an empty list.
type RuleBasedGenerator struct{}

func (g RuleBasedGenerator) GenerateStories(_ context.Context, _ string, epicDescription string) ([]models.Story, error) {
	lower := strings.ToLower(epicDescription)
	baseID := time.Now().UnixMilli()
	index := 0

	next := func(title, description string, points int) models.Story {
		index++
		return models.Story{
			ID:          fmt.Sprintf("story-%d-%d", baseID, index),
			Title:       title,
			Description: description,
			Points:      points,
			Status:      models.StatusPlanned,
		}
	}

	var stories []models.Story

	if containsAny(lower, "api", "backend") {
		stories = append(stories,
			next("Design and implement API endpoints", "Create RESTful API endpoints with proper error handling and validation", 8),
			next("Database schema and migrations", "Design database schema and create migration scripts", 5),
		)
	}

	if containsAny(lower, "ui", "frontend", "interface") {
		stories = append(stories,
			next("Build user interface components", "Create responsive UI components with proper styling", 8),
			next("Implement user interactions", "Add event handlers and state management for user interactions", 5),
		)
	}

	if containsAny(lower, "auth", "login", "authentication") {
		stories = append(stories,
			next("Implement authentication system", "Set up user authentication with secure token management", 13),
		)
	}

	if containsAny(lower, "test", "testing") {
		stories = append(stories,
			next("Write unit and integration tests", "Create comprehensive test coverage for critical paths", 8),
		)
	}

	if len(stories) == 0 {
		stories = append(stories,
			next("Initial setup and configuration", "Set up project structure and development environment", 5),
			next("Core feature implementation", "Implement main functionality based on requirements", 13),
			next("Testing and validation", "Test the implementation and fix any issues", 8),
		)
	}

	return stories, nil
}

func containsAny(s string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
