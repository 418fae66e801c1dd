package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sprintsim/backend/internal/models"
	"github.com/sprintsim/backend/internal/skills"
)

const totalSprintDays = 5

var days = []string{"Mon", "Tue", "Wed", "Thu", "Fri"}

var (
	ErrSimulationFinished = errors.New("simulation already reached the last day")
	ErrUnknownMember      = errors.New("no disruption slot for member")
)

// DayOfWeek maps a day number 1-5 to its label.
func DayOfWeek(dayNumber int) string {
	if dayNumber < 1 || dayNumber > len(days) {
		return days[0]
	}
	return days[dayNumber-1]
}

// NewSession seeds a simulation over one planned sprint: all stories reset to
// planned, a zeroed disruption slot per member, and day 1 initialized with the
// undisrupted daily velocity.
func NewSession(sprint models.Sprint, team []models.TeamMember, multipliers skills.MultiplierTable) models.Session {
	stories := make([]models.Story, len(sprint.Stories))
	for i, s := range sprint.Stories {
		s.Status = models.StatusPlanned
		stories[i] = s
	}

	first := models.DailyState{
		Day:             DayOfWeek(1),
		DayNumber:       1,
		Disruptions:     zeroDisruptions(team),
		RemainingPoints: sprint.PlannedPoints,
		Velocity:        CalculateTeamCapacity(team, multipliers).WeeklyCapacity / workDaysPerWeek,
		Confidence:      100,
		Log:             []string{"Sprint started. Initial velocity calculated."},
	}

	return models.Session{
		ID:        "sim-" + uuid.NewString(),
		SprintID:  sprint.ID,
		Sprint:    sprint,
		Stories:   stories,
		Days:      []models.DailyState{first},
		StartedAt: time.Now().UTC(),
	}
}

// EditDisruption replaces one member's disruption slot on the latest day.
// Earlier days are history and cannot be touched.
func EditDisruption(session *models.Session, disruption models.DailyDisruption) error {
	current := &session.Days[len(session.Days)-1]
	for i, d := range current.Disruptions {
		if d.MemberID == disruption.MemberID {
			current.Disruptions[i] = disruption
			return nil
		}
	}
	return ErrUnknownMember
}

// AdvanceDay runs one simulated day against the latest day's disruptions and
// appends the resulting state. The new day starts with zeroed disruptions.
func AdvanceDay(session *models.Session, team []models.TeamMember, multipliers skills.MultiplierTable) (models.DailyState, models.SprintMetrics, error) {
	current := session.Days[len(session.Days)-1]
	if current.DayNumber >= totalSprintDays {
		return models.DailyState{}, models.SprintMetrics{}, ErrSimulationFinished
	}

	progress := SimulateDayProgress(session.Stories, team, current.Disruptions)
	session.Stories = progress.Stories()

	completedPoints := 0
	for _, s := range session.Stories {
		if s.Status == models.StatusCompleted {
			completedPoints += s.Points
		}
	}
	inProgressPoints := sumPoints(progress.InProgress)
	remainingPoints := sumPoints(progress.Remaining)

	velocity := CalculateEffectiveCapacity(team, current.Disruptions)
	metrics := CalculateSprintMetrics(
		session.Sprint.PlannedPoints,
		completedPoints,
		inProgressPoints,
		remainingPoints,
		current.DayNumber+1,
		totalSprintDays,
		velocity,
	)
	log := GenerateReplanLog(team, current.Disruptions, current.Velocity, velocity, metrics.SpilloverRisk)

	next := models.DailyState{
		Day:              DayOfWeek(current.DayNumber + 1),
		DayNumber:        current.DayNumber + 1,
		Disruptions:      zeroDisruptions(team),
		CompletedPoints:  completedPoints,
		InProgressPoints: inProgressPoints,
		RemainingPoints:  remainingPoints,
		Velocity:         velocity,
		Confidence:       metrics.Confidence,
		Log:              log,
	}
	session.Days = append(session.Days, next)

	return next, metrics, nil
}

// CurrentMetrics recomputes the forecast view from the latest day's state.
func CurrentMetrics(session models.Session) models.SprintMetrics {
	current := session.Days[len(session.Days)-1]
	return CalculateSprintMetrics(
		session.Sprint.PlannedPoints,
		current.CompletedPoints,
		current.InProgressPoints,
		current.RemainingPoints,
		current.DayNumber,
		totalSprintDays,
		current.Velocity,
	)
}

func zeroDisruptions(team []models.TeamMember) []models.DailyDisruption {
	out := make([]models.DailyDisruption, 0, len(team))
	for _, m := range team {
		out = append(out, models.DailyDisruption{MemberID: m.ID})
	}
	return out
}
