package domain

import "time"

// MasterPlanStep is one legacy-format step of a learning master plan.
// The UI consumes steps; phases are the richer source they project from.
type MasterPlanStep struct {
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	DueDate            time.Time `json:"dueDate"`
	Priority           Priority  `json:"priority"`
	EstimatedTotalTime int       `json:"estimatedTotalTime"` // minutes
}

// LearningPhase is one phase of a master plan (e.g. "基礎固め", Week 1〜3).
type LearningPhase struct {
	Title       string   `json:"title"`
	Weeks       string   `json:"weeks"`
	Description string   `json:"description"`
	Tasks       []string `json:"tasks"`
}

// ScheduleActivity is a single activity slot in a weekly schedule.
type ScheduleActivity struct {
	Activity string `json:"activity"`
	Duration int    `json:"duration"` // minutes
}

// WeeklySchedule is an example weekday/weekend study schedule.
type WeeklySchedule struct {
	Weekday []ScheduleActivity `json:"weekday"`
	Weekend []ScheduleActivity `json:"weekend"`
}

// MasterPlanDetails is the rich description of a learning master plan.
type MasterPlanDetails struct {
	Goal                 string          `json:"goal"`
	LearningPeriod       string          `json:"learningPeriod"`
	TotalStudyHours      string          `json:"totalStudyHours"`
	Phases               []LearningPhase `json:"phases"`
	WeeklySchedule       WeeklySchedule  `json:"weeklySchedule"`
	RecommendedMaterials []string        `json:"recommendedMaterials"`
	WeeklyChecklist      []string        `json:"weeklyChecklist"`
}

// MasterPlan bundles the step projection with the rich details.
// Steps is always non-empty.
type MasterPlan struct {
	Plan    []MasterPlanStep  `json:"plan"`
	Details MasterPlanDetails `json:"details"`
}
