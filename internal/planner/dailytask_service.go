package planner

import (
	"context"
	"strings"
	"time"

	"github.com/akiyamakenta/manabiya/internal/domain"
	"github.com/akiyamakenta/manabiya/internal/llm"
)

// DailyTaskRequest describes what today's assignment should cover.
// TimeAvailable must already be clamped to the legal minute range.
type DailyTaskRequest struct {
	MasterStepTitle   string
	MasterPlanDetails *domain.MasterPlanDetails
	Category          string
	Level             string
	TimeAvailable     int
	PreviousResults   []domain.PreviousResult
}

// DailyTaskGenerator produces a single day's learning assignment with
// concrete exercises. Exercises and Activities in the result are never empty.
type DailyTaskGenerator interface {
	Generate(ctx context.Context, req DailyTaskRequest) domain.DailyTask
}

type dailyTaskGenerator struct {
	client llm.CompletionClient
	now    func() time.Time
}

// NewDailyTaskGenerator creates a DailyTaskGenerator backed by the given client.
func NewDailyTaskGenerator(client llm.CompletionClient) DailyTaskGenerator {
	return &dailyTaskGenerator{client: client, now: time.Now}
}

type exerciseWire struct {
	Question    string   `json:"question"`
	SampleCode  string   `json:"sampleCode"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

type dailyTaskWire struct {
	Title             string         `json:"title"`
	Description       string         `json:"description"`
	EstimatedTime     any            `json:"estimatedTime"`
	PreparationSteps  []string       `json:"preparationSteps"`
	LearningMaterials []string       `json:"learningMaterials"`
	CodingTasks       []string       `json:"codingTasks"`
	Exercises         []exerciseWire `json:"exercises"`
	Activities        []string       `json:"activities"`
	ChecklistItems    []string       `json:"checklistItems"`
	NextSteps         []string       `json:"nextSteps"`
}

// difficultyFor adjusts difficulty from the learner's recent completion
// rate: above 80% ramps up, below 40% eases off.
func difficultyFor(results []domain.PreviousResult) string {
	if len(results) == 0 {
		return "medium"
	}
	completed := 0
	for _, r := range results {
		if r.Completed {
			completed++
		}
	}
	rate := float64(completed) / float64(len(results))
	switch {
	case rate > 0.8:
		return "hard"
	case rate < 0.4:
		return "easy"
	default:
		return "medium"
	}
}

func (s *dailyTaskGenerator) Generate(ctx context.Context, req DailyTaskRequest) domain.DailyTask {
	resp, err := s.client.Complete(ctx, llm.CompletionRequest{
		Task:         llm.TaskDailyTask,
		SystemPrompt: buildDailyTaskSystemPrompt(req, difficultyFor(req.PreviousResults)),
		UserPrompt:   buildDailyTaskUserPrompt(req),
	})
	if err != nil {
		return DefaultDailyTask(req.MasterStepTitle, req.TimeAvailable)
	}

	wire, err := llm.ExtractJSON[dailyTaskWire](resp.Text, nil)
	if err != nil {
		return DefaultDailyTask(req.MasterStepTitle, req.TimeAvailable)
	}

	estimated := numberOrDefault(wire.EstimatedTime, req.TimeAvailable)
	if estimated > req.TimeAvailable {
		estimated = req.TimeAvailable
	}
	if estimated < 1 {
		estimated = req.TimeAvailable
	}

	exercises := make([]domain.Exercise, 0, len(wire.Exercises))
	for _, w := range wire.Exercises {
		if strings.TrimSpace(w.Question) == "" {
			continue
		}
		exercises = append(exercises, domain.Exercise{
			Question:    w.Question,
			SampleCode:  w.SampleCode,
			Options:     w.Options,
			Answer:      w.Answer,
			Explanation: w.Explanation,
		})
	}
	if len(exercises) == 0 {
		exercises = []domain.Exercise{DefaultExercise(stringOrDefault(wire.Title, req.MasterStepTitle))}
	}

	activities := nonNil(wire.Activities)
	if len(activities) == 0 {
		activities = DefaultActivities()
	}

	return domain.DailyTask{
		Title:             strings.TrimSpace(wire.Title),
		Description:       strings.TrimSpace(wire.Description),
		EstimatedTime:     estimated,
		PreparationSteps:  nonNil(wire.PreparationSteps),
		LearningMaterials: nonNil(wire.LearningMaterials),
		CodingTasks:       nonNil(wire.CodingTasks),
		Exercises:         exercises,
		Activities:        activities,
		ChecklistItems:    nonNil(wire.ChecklistItems),
		NextSteps:         nonNil(wire.NextSteps),
	}
}
