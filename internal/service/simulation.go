package service

import (
	"github.com/sprintsim/backend/internal/models"
)

// DayProgress partitions the day's story set. The three slices are disjoint
// and together contain every input story.
type DayProgress struct {
	Completed  []models.Story
	InProgress []models.Story
	Remaining  []models.Story
}

// SimulateDayProgress advances one simulated day. Effective capacity after
// disruptions is the day's velocity (1 unit ≈ 1 point). Stories are walked in
// their existing order against a running points ledger: already-completed
// stories occupy the ledger without consuming new capacity, in-progress
// stories finish when they fit, and a planned story either completes inside
// the remaining capacity or starts as in-progress while any capacity is left.
// Story status never moves backwards.
func SimulateDayProgress(stories []models.Story, team []models.TeamMember, disruptions []models.DailyDisruption) DayProgress {
	dailyVelocity := CalculateEffectiveCapacity(team, disruptions)

	var progress DayProgress
	pointsCompleted := 0.0

	for _, story := range stories {
		switch story.Status {
		case models.StatusCompleted:
			progress.Completed = append(progress.Completed, story)
			pointsCompleted += float64(story.Points)
		case models.StatusInProgress:
			if pointsCompleted+float64(story.Points) <= dailyVelocity {
				story.Status = models.StatusCompleted
				progress.Completed = append(progress.Completed, story)
				pointsCompleted += float64(story.Points)
			} else {
				progress.InProgress = append(progress.InProgress, story)
			}
		default:
			if pointsCompleted >= dailyVelocity {
				progress.Remaining = append(progress.Remaining, story)
				continue
			}
			remainingCapacity := dailyVelocity - pointsCompleted
			if float64(story.Points) <= remainingCapacity {
				story.Status = models.StatusCompleted
				progress.Completed = append(progress.Completed, story)
				pointsCompleted += float64(story.Points)
			} else if remainingCapacity > 0 {
				story.Status = models.StatusInProgress
				progress.InProgress = append(progress.InProgress, story)
			} else {
				progress.Remaining = append(progress.Remaining, story)
			}
		}
	}

	return progress
}

// Stories flattens the partition back into one story list, completed first.
func (p DayProgress) Stories() []models.Story {
	out := make([]models.Story, 0, len(p.Completed)+len(p.InProgress)+len(p.Remaining))
	out = append(out, p.Completed...)
	out = append(out, p.InProgress...)
	out = append(out, p.Remaining...)
	return out
}
