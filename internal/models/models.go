package models

import "time"

type SkillArea string

const (
	AreaBackend   SkillArea = "backend"
	AreaFrontend  SkillArea = "frontend"
	AreaFullstack SkillArea = "fullstack"
	AreaQA        SkillArea = "qa"
	AreaDevops    SkillArea = "devops"
	AreaMobile    SkillArea = "mobile"
)

// AllSkillAreas is the closed set of work categories, in display order.
var AllSkillAreas = []SkillArea{AreaBackend, AreaFrontend, AreaFullstack, AreaQA, AreaDevops, AreaMobile}

type SkillLevel string

const (
	LevelJunior SkillLevel = "junior"
	LevelMid    SkillLevel = "mid"
	LevelSenior SkillLevel = "senior"
	LevelLead   SkillLevel = "lead"
)

var AllSkillLevels = []SkillLevel{LevelJunior, LevelMid, LevelSenior, LevelLead}

type StoryStatus string

const (
	StatusPlanned    StoryStatus = "planned"
	StatusInProgress StoryStatus = "in-progress"
	StatusCompleted  StoryStatus = "completed"
)

// TeamMember holds at most one level per skill area; a nil entry means no
// capability in that area. Availability is the fraction of a working day
// the member is present, 0-1.
type TeamMember struct {
	ID           string                    `json:"id"`
	Name         string                    `json:"name"`
	Skills       map[SkillArea]*SkillLevel `json:"skills"`
	Availability float64                   `json:"availability"`
	UpdatedAt    time.Time                 `json:"updated_at"`
}

type Story struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Points         int         `json:"points"`
	AssignedSprint int         `json:"assigned_sprint,omitempty"`
	Status         StoryStatus `json:"status"`
}

type Epic struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Stories     []Story   `json:"stories"`
	TotalPoints int       `json:"total_points"`
	CreatedAt   time.Time `json:"created_at"`
}

type Sprint struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Stories       []Story `json:"stories"`
	PlannedPoints int     `json:"planned_points"`
	Capacity      int     `json:"capacity"`
	Overflow      bool    `json:"overflow"`
}

// DailyDisruption captures one member's interruptions for one simulated day.
// Zero values mean no disruption.
type DailyDisruption struct {
	MemberID        string  `json:"member_id"`
	OnCallPercent   float64 `json:"on_call_percent"`
	SickPercent     float64 `json:"sick_percent"`
	SupportWork     bool    `json:"support_work"`
	ContextSwitched bool    `json:"context_switched"`
}

// DailyState is one simulated day's snapshot. Day N+1 is derived from day N;
// only the latest day's disruptions may be edited in place.
type DailyState struct {
	Day              string            `json:"day"`
	DayNumber        int               `json:"day_number"`
	Disruptions      []DailyDisruption `json:"disruptions"`
	CompletedPoints  int               `json:"completed_points"`
	InProgressPoints int               `json:"in_progress_points"`
	RemainingPoints  int               `json:"remaining_points"`
	Velocity         float64           `json:"velocity"`
	Confidence       int               `json:"confidence"`
	Log              []string          `json:"log"`
}

type SprintMetrics struct {
	PlannedPoints    int     `json:"planned_points"`
	RemainingPoints  int     `json:"remaining_points"`
	CompletedPoints  int     `json:"completed_points"`
	InProgressPoints int     `json:"in_progress_points"`
	ETA              int     `json:"eta_days"`
	Confidence       int     `json:"confidence"`
	Velocity         float64 `json:"velocity"`
	SpilloverRisk    float64 `json:"spillover_risk"`
}

type TeamCapacity struct {
	DailyCapacity  float64               `json:"daily_capacity"`
	WeeklyCapacity float64               `json:"weekly_capacity"`
	BySkill        map[SkillArea]float64 `json:"by_skill"`
}

// Session is one simulation run over a planned sprint: an append-only
// sequence of daily states plus the current story set.
type Session struct {
	ID        string       `json:"id"`
	SprintID  int          `json:"sprint_id"`
	Sprint    Sprint       `json:"sprint"`
	Stories   []Story      `json:"stories"`
	Days      []DailyState `json:"days"`
	StartedAt time.Time    `json:"started_at"`
}
