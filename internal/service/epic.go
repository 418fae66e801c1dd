package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sprintsim/backend/internal/ai"
	"github.com/sprintsim/backend/internal/models"
)

// EpicResult carries the built epic plus the generator error, if any, so the
// caller can show a notice when the AI path failed and the rule-based
// fallback was used instead.
type EpicResult struct {
	Epic       models.Epic
	UsedAI     bool
	GenerError error
}

// BuildEpic breaks a described epic into stories. When useAI is set and a
// generator is configured it is tried first; any failure falls back to the
// deterministic rule-based generator, which cannot fail. The epic's total
// points are the sum of its stories' points.
func BuildEpic(ctx context.Context, generator ai.Generator, title, description string, useAI bool) EpicResult {
	result := EpicResult{}

	var stories []models.Story
	if useAI && generator != nil {
		generated, err := generator.GenerateStories(ctx, title, description)
		if err != nil {
			result.GenerError = err
		} else if len(generated) > 0 {
			stories = generated
			result.UsedAI = true
		}
	}
	if stories == nil {
		stories, _ = ai.RuleBasedGenerator{}.GenerateStories(ctx, title, description)
	}

	total := 0
	for _, s := range stories {
		total += s.Points
	}

	result.Epic = models.Epic{
		ID:          "epic-" + uuid.NewString(),
		Title:       title,
		Description: description,
		Stories:     stories,
		TotalPoints: total,
		CreatedAt:   time.Now().UTC(),
	}
	return result
}
