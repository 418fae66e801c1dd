package service

import (
	"fmt"
	"math"
	"sort"

	"github.com/sprintsim/backend/internal/models"
	"github.com/sprintsim/backend/internal/skills"
)

// PlanSprints packs stories into fixed-capacity sprints with a greedy
// largest-first fill. Sprint capacity is the floored weekly team capacity
// (1 capacity unit ≈ 1 story point). Stories too large for any sprint end up
// in a trailing overflow sprint whose planned points may exceed capacity.
// Returns nil when there is nothing to plan or no capacity to plan against.
func PlanSprints(stories []models.Story, team []models.TeamMember, multipliers skills.MultiplierTable) []models.Sprint {
	if len(team) == 0 || len(stories) == 0 {
		return nil
	}

	capacity := int(math.Floor(CalculateTeamCapacity(team, multipliers).WeeklyCapacity))
	if capacity <= 0 {
		return nil
	}

	unassigned := make([]models.Story, len(stories))
	copy(unassigned, stories)
	sort.SliceStable(unassigned, func(i, j int) bool {
		return unassigned[i].Points > unassigned[j].Points
	})

	var sprints []models.Sprint
	sprintNumber := 1

	for len(unassigned) > 0 {
		var assigned []models.Story
		remaining := capacity

		rest := unassigned[:0]
		for _, story := range unassigned {
			if story.Points <= remaining {
				story.AssignedSprint = sprintNumber
				assigned = append(assigned, story)
				remaining -= story.Points
			} else {
				rest = append(rest, story)
			}
		}
		unassigned = rest

		// Nothing fit: the largest remaining story exceeds capacity on
		// its own, so stop filling and let overflow collect the rest.
		if len(assigned) == 0 {
			break
		}

		sprints = append(sprints, models.Sprint{
			ID:            sprintNumber,
			Name:          fmt.Sprintf("Sprint %d", sprintNumber),
			Stories:       assigned,
			PlannedPoints: sumPoints(assigned),
			Capacity:      capacity,
		})
		sprintNumber++
	}

	if len(unassigned) > 0 {
		overflow := make([]models.Story, 0, len(unassigned))
		for _, story := range unassigned {
			story.AssignedSprint = sprintNumber
			overflow = append(overflow, story)
		}
		sprints = append(sprints, models.Sprint{
			ID:            sprintNumber,
			Name:          fmt.Sprintf("Sprint %d (Overflow)", sprintNumber),
			Stories:       overflow,
			PlannedPoints: sumPoints(overflow),
			Capacity:      capacity,
			Overflow:      true,
		})
	}

	return sprints
}

func sumPoints(stories []models.Story) int {
	total := 0
	for _, s := range stories {
		total += s.Points
	}
	return total
}
