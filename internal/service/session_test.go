package service

import (
	"errors"
	"testing"

	"github.com/sprintsim/backend/internal/models"
	"github.com/sprintsim/backend/internal/skills"
)

func plannedSprint(t *testing.T) (models.Sprint, []models.TeamMember) {
	t.Helper()
	team := []models.TeamMember{
		member("m1", 1.0, map[models.SkillArea]models.SkillLevel{models.AreaBackend: models.LevelSenior}),
	}
	sprints := PlanSprints(stories(8, 5, 3), team, skills.DefaultMultipliers())
	if len(sprints) == 0 {
		t.Fatalf("no sprints planned")
	}
	return sprints[0], team
}

func TestNewSessionSeedsDayOne(t *testing.T) {
	sprint, team := plannedSprint(t)
	session := NewSession(sprint, team, skills.DefaultMultipliers())

	if len(session.Days) != 1 {
		t.Fatalf("expected a single seeded day, got %d", len(session.Days))
	}
	first := session.Days[0]
	if first.DayNumber != 1 || first.Day != "Mon" {
		t.Fatalf("expected day 1 Mon, got %+v", first)
	}
	if first.Velocity != 1.0 {
		t.Fatalf("expected initial velocity 1.0, got %v", first.Velocity)
	}
	if first.Confidence != 100 {
		t.Fatalf("expected confidence 100, got %d", first.Confidence)
	}
	if first.RemainingPoints != sprint.PlannedPoints {
		t.Fatalf("expected remaining %d, got %d", sprint.PlannedPoints, first.RemainingPoints)
	}
	if len(first.Log) != 1 || first.Log[0] != "Sprint started. Initial velocity calculated." {
		t.Fatalf("unexpected seed log %v", first.Log)
	}
	if len(first.Disruptions) != len(team) {
		t.Fatalf("expected one disruption slot per member")
	}
	for _, s := range session.Stories {
		if s.Status != models.StatusPlanned {
			t.Fatalf("session stories must reset to planned, got %s", s.Status)
		}
	}
}

func TestAdvanceDayAppendsAndResetsDisruptions(t *testing.T) {
	sprint, team := plannedSprint(t)
	table := skills.DefaultMultipliers()
	session := NewSession(sprint, team, table)

	if err := EditDisruption(&session, models.DailyDisruption{MemberID: "m1", SickPercent: 0.5}); err != nil {
		t.Fatalf("edit disruption: %v", err)
	}

	day, metrics, err := AdvanceDay(&session, team, table)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if day.DayNumber != 2 || day.Day != "Tue" {
		t.Fatalf("expected day 2 Tue, got %+v", day)
	}
	if day.Velocity != 0.5 {
		t.Fatalf("expected velocity 0.5 after 50%% sick day, got %v", day.Velocity)
	}
	for _, d := range day.Disruptions {
		if d.SickPercent != 0 || d.OnCallPercent != 0 || d.SupportWork || d.ContextSwitched {
			t.Fatalf("new day must start with zeroed disruptions, got %+v", d)
		}
	}
	if len(session.Days) != 2 {
		t.Fatalf("expected day appended, got %d days", len(session.Days))
	}
	if metrics.PlannedPoints != sprint.PlannedPoints {
		t.Fatalf("metrics planned points %d, want %d", metrics.PlannedPoints, sprint.PlannedPoints)
	}
}

func TestAdvanceDayStopsAfterFriday(t *testing.T) {
	sprint, team := plannedSprint(t)
	table := skills.DefaultMultipliers()
	session := NewSession(sprint, team, table)

	for i := 0; i < 4; i++ {
		if _, _, err := AdvanceDay(&session, team, table); err != nil {
			t.Fatalf("advance %d: %v", i+1, err)
		}
	}
	if session.Days[len(session.Days)-1].DayNumber != 5 {
		t.Fatalf("expected to reach day 5")
	}
	if _, _, err := AdvanceDay(&session, team, table); !errors.Is(err, ErrSimulationFinished) {
		t.Fatalf("expected ErrSimulationFinished, got %v", err)
	}
	if len(session.Days) != 5 {
		t.Fatalf("history must not grow past day 5, got %d", len(session.Days))
	}
}

func TestAdvanceDayKeepsOversizedStoryInProgress(t *testing.T) {
	// Sprint 1 of the 8/5/3 plan holds the 5-point story. At velocity 1/day
	// the daily budget never covers its full 5 points, and stories do not
	// carry partial progress between days, so it stays in progress all week.
	sprint, team := plannedSprint(t)
	table := skills.DefaultMultipliers()
	session := NewSession(sprint, team, table)

	var last models.DailyState
	for i := 0; i < 4; i++ {
		var err error
		last, _, err = AdvanceDay(&session, team, table)
		if err != nil {
			t.Fatalf("advance %d: %v", i+1, err)
		}
	}
	if last.CompletedPoints != 0 {
		t.Fatalf("a 5-point story cannot close at velocity 1, got %d completed", last.CompletedPoints)
	}
	if last.InProgressPoints != 5 {
		t.Fatalf("expected the story to sit in progress, got %+v", last)
	}
}

func TestEditDisruptionUnknownMember(t *testing.T) {
	sprint, team := plannedSprint(t)
	session := NewSession(sprint, team, skills.DefaultMultipliers())
	if err := EditDisruption(&session, models.DailyDisruption{MemberID: "ghost"}); !errors.Is(err, ErrUnknownMember) {
		t.Fatalf("expected ErrUnknownMember, got %v", err)
	}
}

func TestDayOfWeek(t *testing.T) {
	want := map[int]string{1: "Mon", 2: "Tue", 3: "Wed", 4: "Thu", 5: "Fri", 0: "Mon", 9: "Mon"}
	for n, label := range want {
		if got := DayOfWeek(n); got != label {
			t.Fatalf("day %d: got %s, want %s", n, got, label)
		}
	}
}

func TestCurrentMetricsMatchesLatestDay(t *testing.T) {
	sprint, team := plannedSprint(t)
	table := skills.DefaultMultipliers()
	session := NewSession(sprint, team, table)

	if _, _, err := AdvanceDay(&session, team, table); err != nil {
		t.Fatalf("advance: %v", err)
	}
	m := CurrentMetrics(session)
	latest := session.Days[len(session.Days)-1]
	if m.CompletedPoints != latest.CompletedPoints || m.RemainingPoints != latest.RemainingPoints {
		t.Fatalf("metrics %+v diverge from latest day %+v", m, latest)
	}
}
