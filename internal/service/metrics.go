package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/sprintsim/backend/internal/models"
)

// CalculateSprintMetrics derives the forecast view for a point in the sprint:
// ETA in days, a banded confidence score, and spillover risk 0-100.
func CalculateSprintMetrics(plannedPoints, completedPoints, inProgressPoints, remainingPoints, currentDay, totalDays int, velocity float64) models.SprintMetrics {
	daysRemaining := totalDays - currentDay

	eta := daysRemaining
	if velocity > 0 {
		eta = int(math.Ceil(float64(remainingPoints) / velocity))
	}

	progressPercent := 0.0
	if plannedPoints > 0 {
		progressPercent = float64(completedPoints) / float64(plannedPoints) * 100
	}
	expectedProgress := 0.0
	if totalDays > 0 {
		expectedProgress = float64(currentDay) / float64(totalDays) * 100
	}
	delta := progressPercent - expectedProgress

	var confidence int
	switch {
	case delta < -20:
		confidence = 40 // significantly behind
	case delta < -10:
		confidence = 60 // slightly behind
	case delta > 20:
		confidence = 95 // ahead of schedule
	case delta > 10:
		confidence = 85 // slightly ahead
	default:
		confidence = 75 // on track
	}

	if totalDays > 0 && velocity < float64(plannedPoints)/float64(totalDays)*0.8 {
		confidence -= 20
		if confidence < 30 {
			confidence = 30
		}
	}

	var spilloverRisk float64
	if velocity > 0 && daysRemaining > 0 {
		overrun := (float64(remainingPoints)/velocity - float64(daysRemaining)) / float64(daysRemaining) * 100
		spilloverRisk = math.Min(100, math.Max(0, overrun))
	} else if remainingPoints > 0 {
		spilloverRisk = 100
	}

	return models.SprintMetrics{
		PlannedPoints:    plannedPoints,
		RemainingPoints:  remainingPoints,
		CompletedPoints:  completedPoints,
		InProgressPoints: inProgressPoints,
		ETA:              eta,
		Confidence:       confidence,
		Velocity:         velocity,
		SpilloverRisk:    spilloverRisk,
	}
}

// GenerateReplanLog renders the narrative for a day advance: active
// disruptions per member, a velocity change line, and a spillover warning.
// With nothing to report it emits a single all-clear line. Output order is
// deterministic for identical inputs.
func GenerateReplanLog(team []models.TeamMember, disruptions []models.DailyDisruption, previousVelocity, currentVelocity float64, spilloverRisk float64) []string {
	var logs []string

	names := map[string]string{}
	for _, m := range team {
		names[m.ID] = m.Name
	}

	var details []string
	for _, d := range disruptions {
		name, ok := names[d.MemberID]
		if !ok {
			continue
		}
		if d.SickPercent > 0 {
			details = append(details, fmt.Sprintf("%s unavailable (%d%%)", name, int(math.Round(d.SickPercent*100))))
		}
		if d.OnCallPercent > 0 {
			details = append(details, fmt.Sprintf("%s on-call (%d%%)", name, int(math.Round(d.OnCallPercent*100))))
		}
		if d.SupportWork {
			details = append(details, fmt.Sprintf("%s handling support work", name))
		}
		if d.ContextSwitched {
			details = append(details, fmt.Sprintf("%s context-switched", name))
		}
	}
	if len(details) > 0 {
		logs = append(logs, "Team capacity reduced: "+strings.Join(details, ", "))
	}

	if currentVelocity != previousVelocity {
		direction := "decreased"
		if currentVelocity > previousVelocity {
			direction = "increased"
		}
		logs = append(logs, fmt.Sprintf("Velocity %s from %.1f → %.1f pts/day", direction, previousVelocity, currentVelocity))
	}

	if spilloverRisk > 50 {
		logs = append(logs, fmt.Sprintf("High spillover risk detected (%d%%)", int(math.Round(spilloverRisk))))
	} else if spilloverRisk > 25 {
		logs = append(logs, fmt.Sprintf("Moderate spillover risk (%d%%)", int(math.Round(spilloverRisk))))
	}

	if len(logs) == 0 {
		logs = append(logs, "Sprint progressing as planned")
	}
	return logs
}
