package skills

import (
	"fmt"

	"github.com/sprintsim/backend/internal/models"
)

// PercentageToLevel classifies a proficiency percentage (0-100) into a
// discrete level. 0 means no capability and returns nil.
func PercentageToLevel(percentage float64) *models.SkillLevel {
	var level models.SkillLevel
	switch {
	case percentage <= 0:
		return nil
	case percentage <= 30:
		level = models.LevelJunior
	case percentage <= 60:
		level = models.LevelMid
	case percentage <= 85:
		level = models.LevelSenior
	default:
		level = models.LevelLead
	}
	return &level
}

// LevelToPercentage returns a representative midpoint for a level. It is
// deliberately lossy (display only) and not an inverse of PercentageToLevel.
func LevelToPercentage(level *models.SkillLevel) float64 {
	if level == nil {
		return 0
	}
	switch *level {
	case models.LevelJunior:
		return 20
	case models.LevelMid:
		return 50
	case models.LevelSenior:
		return 75
	case models.LevelLead:
		return 95
	default:
		return 0
	}
}

// LevelLabel renders a human label for a percentage. Its bands differ from
// PercentageToLevel's thresholds (novice tier, junior up to 35); both sets
// are kept as-is rather than unified.
func LevelLabel(percentage float64) string {
	p := int(percentage)
	switch {
	case percentage == 0:
		return "None (0%)"
	case percentage <= 20:
		return fmt.Sprintf("Novice (%d%%)", p)
	case percentage <= 35:
		return fmt.Sprintf("Junior (%d%%)", p)
	case percentage <= 60:
		return fmt.Sprintf("Mid-Level (%d%%)", p)
	case percentage <= 85:
		return fmt.Sprintf("Senior (%d%%)", p)
	default:
		return fmt.Sprintf("Lead (%d%%)", p)
	}
}
