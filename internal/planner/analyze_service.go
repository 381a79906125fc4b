package planner

import (
	"context"
	"strings"
	"time"

	"github.com/akiyamakenta/manabiya/internal/domain"
	"github.com/akiyamakenta/manabiya/internal/llm"
)

// TaskAnalyzer turns free-form goal text into structured task details.
// Analyze always returns usable details; when the model is unreachable or
// returns garbage, the result degrades to deterministic defaults.
type TaskAnalyzer interface {
	Analyze(ctx context.Context, taskText string) domain.TaskDetails
}

type taskAnalyzer struct {
	client llm.CompletionClient
	now    func() time.Time
}

// NewTaskAnalyzer creates a TaskAnalyzer backed by the given client.
func NewTaskAnalyzer(client llm.CompletionClient) TaskAnalyzer {
	return &taskAnalyzer{client: client, now: time.Now}
}

// analyzeWire mirrors the model's JSON shape. Numeric fields are `any`
// because models emit numbers as strings, floats or fractions.
type analyzeWire struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	DueDate            string   `json:"dueDate"`
	Priority           string   `json:"priority"`
	EstimatedTime      any      `json:"estimatedTime"`
	NeedsMoreInfo      bool     `json:"needsMoreInfo"`
	Questions          []string `json:"questions"`
	Category           string   `json:"category"`
	Level              string   `json:"level"`
	DailyTimeAvailable any      `json:"dailyTimeAvailable"`
}

func (s *taskAnalyzer) Analyze(ctx context.Context, taskText string) domain.TaskDetails {
	resp, err := s.client.Complete(ctx, llm.CompletionRequest{
		Task:         llm.TaskAnalyze,
		SystemPrompt: analyzeSystemPrompt,
		UserPrompt:   taskText,
	})
	if err != nil {
		return DefaultTaskDetails(taskText)
	}

	wire, err := llm.ExtractJSON[analyzeWire](resp.Text, nil)
	if err != nil {
		return DefaultTaskDetails(taskText)
	}

	return domain.TaskDetails{
		Title:              stringOrDefault(wire.Title, taskText),
		Description:        strings.TrimSpace(wire.Description),
		DueDate:            parseDateOrNil(wire.DueDate),
		Priority:           domain.CoercePriority(wire.Priority),
		EstimatedTime:      numberOrDefault(wire.EstimatedTime, 60),
		NeedsMoreInfo:      wire.NeedsMoreInfo,
		Questions:          nonNil(wire.Questions),
		Category:           domain.CoerceCategory(wire.Category),
		Level:              domain.CoerceLevel(wire.Level),
		DailyTimeAvailable: numberOrDefault(wire.DailyTimeAvailable, 60),
	}
}
