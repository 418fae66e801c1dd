package service

import (
	"github.com/sprintsim/backend/internal/models"
	"github.com/sprintsim/backend/internal/skills"
)

const workDaysPerWeek = 5

// CalculateTeamCapacity derives daily and weekly point capacity from the
// roster. Each held skill contributes multiplier × availability; members with
// no skills contribute nothing. Empty teams yield all zeros.
func CalculateTeamCapacity(team []models.TeamMember, multipliers skills.MultiplierTable) models.TeamCapacity {
	bySkill := map[models.SkillArea]float64{}
	for _, area := range models.AllSkillAreas {
		bySkill[area] = 0
	}

	var daily float64
	for _, member := range team {
		availability := clampFraction(member.Availability)
		for _, area := range models.AllSkillAreas {
			level := member.Skills[area]
			if level == nil {
				continue
			}
			contribution := multipliers.Get(*level, area) * availability
			bySkill[area] += contribution
			daily += contribution
		}
	}

	return models.TeamCapacity{
		DailyCapacity:  daily,
		WeeklyCapacity: daily * workDaysPerWeek,
		BySkill:        bySkill,
	}
}

// CalculateEffectiveCapacity reduces each member's availability by that day's
// disruptions: on-call and sick fractions scale it down, support work halves
// it, a context switch takes 30%. Factors stack multiplicatively.
func CalculateEffectiveCapacity(team []models.TeamMember, disruptions []models.DailyDisruption) float64 {
	byMember := map[string]models.DailyDisruption{}
	for _, d := range disruptions {
		byMember[d.MemberID] = d
	}

	var total float64
	for _, member := range team {
		effective := clampFraction(member.Availability)
		d, ok := byMember[member.ID]
		if !ok {
			total += effective
			continue
		}
		effective *= 1 - clampFraction(d.OnCallPercent)
		effective *= 1 - clampFraction(d.SickPercent)
		if d.SupportWork {
			effective *= 0.5
		}
		if d.ContextSwitched {
			effective *= 0.7
		}
		total += effective
	}
	return total
}

func clampFraction(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
