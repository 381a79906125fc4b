package planner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/akiyamakenta/manabiya/internal/domain"
	"github.com/akiyamakenta/manabiya/internal/llm"
)

// MasterPlanGenerator builds a full learning master plan toward a target
// date. The step projection in the result is always non-empty and its due
// dates never exceed the target.
type MasterPlanGenerator interface {
	Generate(ctx context.Context, title, description string, dueDate *time.Time, info map[string]string) domain.MasterPlan
}

type masterPlanGenerator struct {
	client llm.CompletionClient
	now    func() time.Time
}

// NewMasterPlanGenerator creates a MasterPlanGenerator backed by the given client.
func NewMasterPlanGenerator(client llm.CompletionClient) MasterPlanGenerator {
	return &masterPlanGenerator{client: client, now: time.Now}
}

type masterPlanWire struct {
	Goal                 string         `json:"goal"`
	LearningPeriod       string         `json:"learningPeriod"`
	TotalStudyHours      any            `json:"totalStudyHours"`
	Phases               []phaseWire    `json:"phases"`
	WeeklySchedule       scheduleWire   `json:"weeklySchedule"`
	RecommendedMaterials []string       `json:"recommendedMaterials"`
	WeeklyChecklist      []string       `json:"weeklyChecklist"`
	Steps                []planStepWire `json:"steps"`
}

type phaseWire struct {
	Title       string   `json:"title"`
	Weeks       string   `json:"weeks"`
	Description string   `json:"description"`
	Tasks       []string `json:"tasks"`
}

type activityWire struct {
	Activity string `json:"activity"`
	Duration any    `json:"duration"`
}

type scheduleWire struct {
	Weekday []activityWire `json:"weekday"`
	Weekend []activityWire `json:"weekend"`
}

type planStepWire struct {
	Title              string `json:"title"`
	Description        string `json:"description"`
	DueDate            string `json:"dueDate"`
	Priority           string `json:"priority"`
	EstimatedTotalTime any    `json:"estimatedTotalTime"`
}

func (s *masterPlanGenerator) Generate(ctx context.Context, title, description string, dueDate *time.Time, info map[string]string) domain.MasterPlan {
	now := s.now()

	fallback := func() domain.MasterPlan {
		return domain.MasterPlan{
			Plan:    DefaultMasterPlanSteps(title, now, dueDate),
			Details: DefaultMasterPlanDetails(title, now, dueDate),
		}
	}

	resp, err := s.client.Complete(ctx, llm.CompletionRequest{
		Task:         llm.TaskMasterPlan,
		SystemPrompt: masterPlanSystemPrompt,
		UserPrompt:   buildMasterPlanUserPrompt(title, description, dueDate, info),
	})
	if err != nil {
		return fallback()
	}

	wire, err := llm.ExtractJSON[masterPlanWire](resp.Text, nil)
	if err != nil {
		return fallback()
	}

	defaults := DefaultMasterPlanDetails(title, now, dueDate)
	details := domain.MasterPlanDetails{
		Goal:                 stringOrDefault(wire.Goal, defaults.Goal),
		LearningPeriod:       stringOrDefault(wire.LearningPeriod, defaults.LearningPeriod),
		TotalStudyHours:      studyHoursString(wire.TotalStudyHours, defaults.TotalStudyHours),
		Phases:               repairPhases(wire.Phases, defaults.Phases),
		WeeklySchedule:       repairSchedule(wire.WeeklySchedule, defaults.WeeklySchedule),
		RecommendedMaterials: domain.CoalesceList(wire.RecommendedMaterials, defaults.RecommendedMaterials),
		WeeklyChecklist:      domain.CoalesceList(wire.WeeklyChecklist, defaults.WeeklyChecklist),
	}

	steps := repairSteps(wire.Steps, now, dueDate)
	if len(steps) == 0 {
		steps = stepsFromPhases(details.Phases, now, dueDate)
	}
	if len(steps) == 0 {
		steps = DefaultMasterPlanSteps(title, now, dueDate)
	}

	return domain.MasterPlan{Plan: steps, Details: details}
}

func studyHoursString(v any, def string) string {
	switch n := v.(type) {
	case string:
		return stringOrDefault(n, def)
	case float64:
		return fmt.Sprintf("約%.0f時間", n)
	case int:
		return fmt.Sprintf("約%d時間", n)
	default:
		return def
	}
}

func repairPhases(wires []phaseWire, defaults []domain.LearningPhase) []domain.LearningPhase {
	phases := make([]domain.LearningPhase, 0, len(wires))
	for i, w := range wires {
		if strings.TrimSpace(w.Title) == "" {
			continue
		}
		phases = append(phases, domain.LearningPhase{
			Title:       w.Title,
			Weeks:       stringOrDefault(w.Weeks, fmt.Sprintf("Week %d", i+1)),
			Description: strings.TrimSpace(w.Description),
			Tasks:       nonNil(w.Tasks),
		})
	}
	if len(phases) == 0 {
		return defaults
	}
	return phases
}

func repairSchedule(wire scheduleWire, defaults domain.WeeklySchedule) domain.WeeklySchedule {
	repair := func(wires []activityWire) []domain.ScheduleActivity {
		acts := make([]domain.ScheduleActivity, 0, len(wires))
		for _, w := range wires {
			if strings.TrimSpace(w.Activity) == "" {
				continue
			}
			acts = append(acts, domain.ScheduleActivity{
				Activity: w.Activity,
				Duration: numberOrDefault(w.Duration, 30),
			})
		}
		return acts
	}

	weekday := repair(wire.Weekday)
	weekend := repair(wire.Weekend)
	if len(weekday) == 0 && len(weekend) == 0 {
		return defaults
	}
	return domain.WeeklySchedule{Weekday: weekday, Weekend: weekend}
}

func repairSteps(wires []planStepWire, now time.Time, target *time.Time) []domain.MasterPlanStep {
	steps := make([]domain.MasterPlanStep, 0, len(wires))
	for _, w := range wires {
		if strings.TrimSpace(w.Title) == "" {
			continue
		}
		due := parseDateOrDefault(w.DueDate, DefaultStepDueDate(now, target))
		if target != nil && due.After(*target) {
			due = *target
		}
		steps = append(steps, domain.MasterPlanStep{
			Title:              w.Title,
			Description:        strings.TrimSpace(w.Description),
			DueDate:            due,
			Priority:           domain.CoercePriority(w.Priority),
			EstimatedTotalTime: numberOrDefault(w.EstimatedTotalTime, 120),
		})
	}
	return steps
}

// stepsFromPhases projects the phase list onto the step format when the
// model omits steps. Phases split the period evenly; without a target date
// each phase gets a two-week window.
func stepsFromPhases(phases []domain.LearningPhase, now time.Time, target *time.Time) []domain.MasterPlanStep {
	if len(phases) == 0 {
		return nil
	}

	daysPerPhase := 14
	if target != nil {
		days := int((target.Sub(now).Hours() + 23) / 24)
		if days < 1 {
			days = 1
		}
		daysPerPhase = (days + len(phases) - 1) / len(phases)
	}

	steps := make([]domain.MasterPlanStep, 0, len(phases))
	for i, p := range phases {
		due := now.AddDate(0, 0, (i+1)*daysPerPhase)
		if target != nil && (i == len(phases)-1 || due.After(*target)) {
			due = *target
		}

		desc := p.Description
		if desc == "" {
			desc = strings.Join(p.Tasks, "、")
		}
		priority := domain.PriorityMedium
		if i == 0 {
			priority = domain.PriorityHigh
		}

		steps = append(steps, domain.MasterPlanStep{
			Title:              p.Title,
			Description:        desc,
			DueDate:            due,
			Priority:           priority,
			EstimatedTotalTime: 120 * (i + 1),
		})
	}
	return steps
}
