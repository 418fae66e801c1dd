package service

import (
	"fmt"
	"testing"

	"github.com/sprintsim/backend/internal/models"
	"github.com/sprintsim/backend/internal/skills"
)

func stories(points ...int) []models.Story {
	out := make([]models.Story, 0, len(points))
	for i, p := range points {
		out = append(out, models.Story{
			ID:     fmt.Sprintf("s%d", i+1),
			Title:  fmt.Sprintf("Story %d", i+1),
			Points: p,
			Status: models.StatusPlanned,
		})
	}
	return out
}

// One senior backend at full availability: daily 1.0, weekly 5.0, sprint
// capacity 5. Stories 8/5/3 must land as [5], [3], overflow [8].
func TestPlanSprintsGreedyWithOverflow(t *testing.T) {
	team := []models.TeamMember{
		member("m1", 1.0, map[models.SkillArea]models.SkillLevel{models.AreaBackend: models.LevelSenior}),
	}

	sprints := PlanSprints(stories(8, 5, 3), team, skills.DefaultMultipliers())
	if len(sprints) != 3 {
		t.Fatalf("expected 3 sprints, got %d", len(sprints))
	}

	if len(sprints[0].Stories) != 1 || sprints[0].Stories[0].Points != 5 {
		t.Fatalf("sprint 1 should hold the 5-point story, got %+v", sprints[0].Stories)
	}
	if len(sprints[1].Stories) != 1 || sprints[1].Stories[0].Points != 3 {
		t.Fatalf("sprint 2 should hold the 3-point story, got %+v", sprints[1].Stories)
	}
	last := sprints[2]
	if !last.Overflow || last.Name != "Sprint 3 (Overflow)" {
		t.Fatalf("expected overflow sprint 3, got %+v", last)
	}
	if len(last.Stories) != 1 || last.Stories[0].Points != 8 {
		t.Fatalf("overflow should hold the 8-point story, got %+v", last.Stories)
	}
	if last.Capacity != 5 {
		t.Fatalf("overflow keeps the reference capacity, got %d", last.Capacity)
	}
}

func TestPlanSprintsCoverage(t *testing.T) {
	team := []models.TeamMember{
		member("m1", 1.0, map[models.SkillArea]models.SkillLevel{models.AreaBackend: models.LevelLead}),
		member("m2", 1.0, map[models.SkillArea]models.SkillLevel{models.AreaFrontend: models.LevelMid}),
	}
	input := stories(13, 8, 8, 5, 5, 3, 2, 1, 1)

	sprints := PlanSprints(input, team, skills.DefaultMultipliers())

	seen := map[string]int{}
	total := 0
	for _, sp := range sprints {
		gotPoints := 0
		for _, s := range sp.Stories {
			seen[s.ID]++
			gotPoints += s.Points
			if s.AssignedSprint != sp.ID {
				t.Fatalf("story %s carries sprint %d inside sprint %d", s.ID, s.AssignedSprint, sp.ID)
			}
		}
		if gotPoints != sp.PlannedPoints {
			t.Fatalf("sprint %d planned points %d != sum %d", sp.ID, sp.PlannedPoints, gotPoints)
		}
		if !sp.Overflow && sp.PlannedPoints > sp.Capacity {
			t.Fatalf("non-overflow sprint %d exceeds capacity: %d > %d", sp.ID, sp.PlannedPoints, sp.Capacity)
		}
		total += sp.PlannedPoints
	}

	for _, s := range input {
		if seen[s.ID] != 1 {
			t.Fatalf("story %s appears %d times", s.ID, seen[s.ID])
		}
	}
	wantTotal := 0
	for _, s := range input {
		wantTotal += s.Points
	}
	if total != wantTotal {
		t.Fatalf("planned points total %d != input total %d", total, wantTotal)
	}
}

func TestPlanSprintsEmptyInputs(t *testing.T) {
	table := skills.DefaultMultipliers()
	team := []models.TeamMember{
		member("m1", 1.0, map[models.SkillArea]models.SkillLevel{models.AreaBackend: models.LevelSenior}),
	}

	if got := PlanSprints(nil, team, table); got != nil {
		t.Fatalf("no stories should produce no plan, got %+v", got)
	}
	if got := PlanSprints(stories(3), nil, table); got != nil {
		t.Fatalf("empty team should produce no plan, got %+v", got)
	}

	// All skills nil: capacity floors to 0, so planning yields nothing.
	noSkills := []models.TeamMember{member("m2", 1.0, nil)}
	if got := PlanSprints(stories(3), noSkills, table); got != nil {
		t.Fatalf("zero capacity should produce no plan, got %+v", got)
	}
}

func TestPlanSprintsSequentialIDs(t *testing.T) {
	team := []models.TeamMember{
		member("m1", 1.0, map[models.SkillArea]models.SkillLevel{models.AreaBackend: models.LevelSenior}),
	}
	sprints := PlanSprints(stories(5, 5, 5), team, skills.DefaultMultipliers())
	for i, sp := range sprints {
		if sp.ID != i+1 {
			t.Fatalf("sprint at index %d has id %d", i, sp.ID)
		}
		if sp.Overflow {
			t.Fatalf("no overflow expected, got %+v", sp)
		}
	}
}
