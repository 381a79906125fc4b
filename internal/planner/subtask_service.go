package planner

import (
	"context"
	"strings"
	"time"

	"github.com/akiyamakenta/manabiya/internal/domain"
	"github.com/akiyamakenta/manabiya/internal/llm"
)

// SubtaskGenerator splits a task into concrete, dated subtasks.
// The returned list always has at least two entries.
type SubtaskGenerator interface {
	Generate(ctx context.Context, title, description string, info map[string]string) []domain.Subtask
}

type subtaskGenerator struct {
	client llm.CompletionClient
	now    func() time.Time
}

// NewSubtaskGenerator creates a SubtaskGenerator backed by the given client.
func NewSubtaskGenerator(client llm.CompletionClient) SubtaskGenerator {
	return &subtaskGenerator{client: client, now: time.Now}
}

type subtaskWire struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	DueDate       string `json:"dueDate"`
	Priority      string `json:"priority"`
	EstimatedTime any    `json:"estimatedTime"`
}

func (s *subtaskGenerator) Generate(ctx context.Context, title, description string, info map[string]string) []domain.Subtask {
	now := s.now()

	resp, err := s.client.Complete(ctx, llm.CompletionRequest{
		Task:         llm.TaskSubtask,
		SystemPrompt: subtaskSystemPrompt,
		UserPrompt:   buildSubtaskUserPrompt(title, description, info),
	})
	if err != nil {
		return DefaultSubtasks(title, now)
	}

	wires, err := llm.ExtractJSONList[subtaskWire](resp.Text, "subtasks", "tasks", "items")
	if err != nil {
		return DefaultSubtasks(title, now)
	}

	if len(wires) == 0 {
		return DefaultSubtasks(title, now)
	}

	subtasks := make([]domain.Subtask, 0, len(wires))
	for _, w := range wires {
		subtasks = append(subtasks, domain.Subtask{
			Title:         stringOrDefault(w.Title, title+"のサブタスク"),
			Description:   stringOrDefault(strings.TrimSpace(w.Description), "詳細な説明はありません"),
			DueDate:       parseDateOrDefault(w.DueDate, now.AddDate(0, 0, 7)),
			Priority:      domain.CoercePriority(w.Priority),
			EstimatedTime: numberOrDefault(w.EstimatedTime, 60),
		})
	}

	// A plan with a single subtask is not actionable; pad with the
	// standard planning steps.
	if len(subtasks) < 2 {
		subtasks = append(subtasks, DefaultSubtasks(title, now)[:2]...)
	}
	return subtasks
}
