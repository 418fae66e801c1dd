package ai

import (
	"context"

	"github.com/sprintsim/backend/internal/models"
)

// Generator breaks an epic into estimated stories. Implementations must
// return stories with status planned and points within [1,21].
type Generator interface {
	GenerateStories(ctx context.Context, epicTitle, epicDescription string) ([]models.Story, error)
}
