package planner

import (
	"context"
	"strings"
	"time"

	"github.com/akiyamakenta/manabiya/internal/domain"
	"github.com/akiyamakenta/manabiya/internal/llm"
	"github.com/google/uuid"
)

const defaultMicroTaskCount = 5

// MicroTaskGenerator breaks a roadmap node into small concrete tasks.
// The returned list is never empty; every task starts in pending status.
type MicroTaskGenerator interface {
	Generate(ctx context.Context, node domain.RoadmapNode, count int) []domain.MicroTask
}

type microTaskGenerator struct {
	client llm.CompletionClient
	now    func() time.Time
}

// NewMicroTaskGenerator creates a MicroTaskGenerator backed by the given client.
func NewMicroTaskGenerator(client llm.CompletionClient) MicroTaskGenerator {
	return &microTaskGenerator{client: client, now: time.Now}
}

type microTaskWire struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	EstimatedMinutes any      `json:"estimatedMinutes"`
	Instructions     []string `json:"instructions"`
	Resources        []string `json:"resources"`
	Hints            []string `json:"hints"`
}

// sanitizeNode fills in the node fields the prompt interpolates, so a
// sparsely populated node still yields a sensible prompt.
func sanitizeNode(node domain.RoadmapNode) domain.RoadmapNode {
	if node.ID == "" {
		node.ID = uuid.NewString()
	}
	node.Title = stringOrDefault(node.Title, "不明なトピック")
	node.Description = stringOrDefault(node.Description, "説明なし")
	node.Level = domain.CoerceLevel(string(node.Level))
	node.Category = stringOrDefault(node.Category, "general")
	node.Importance = domain.CoerceImportance(string(node.Importance))
	if node.EstimatedHours <= 0 {
		node.EstimatedHours = 1
	}
	return node
}

func (s *microTaskGenerator) Generate(ctx context.Context, node domain.RoadmapNode, count int) []domain.MicroTask {
	node = sanitizeNode(node)
	if count < 1 {
		count = defaultMicroTaskCount
	}

	resp, err := s.client.Complete(ctx, llm.CompletionRequest{
		Task:         llm.TaskMicroTask,
		SystemPrompt: buildMicroTaskSystemPrompt(node, count),
		UserPrompt:   "上記のトピックのマイクロタスクを作成してください。",
	})
	if err != nil {
		return DefaultMicroTasks(node, count)
	}

	wires, err := llm.ExtractJSONList[microTaskWire](resp.Text, "microTasks", "tasks", "items")
	if err != nil {
		return DefaultMicroTasks(node, count)
	}

	tasks := make([]domain.MicroTask, 0, len(wires))
	for _, w := range wires {
		if strings.TrimSpace(w.Title) == "" {
			continue
		}
		tasks = append(tasks, domain.MicroTask{
			ID:               uuid.NewString(),
			RoadmapNodeID:    node.ID,
			Title:            w.Title,
			Description:      strings.TrimSpace(w.Description),
			Type:             domain.CoerceMicroTaskType(w.Type),
			Difficulty:       domain.CoerceDifficulty(w.Difficulty),
			EstimatedMinutes: numberOrDefault(w.EstimatedMinutes, 30),
			Instructions:     nonNil(w.Instructions),
			Resources:        nonNil(w.Resources),
			Hints:            nonNil(w.Hints),
			Status:           domain.MicroTaskPending,
		})
	}
	if len(tasks) == 0 {
		return DefaultMicroTasks(node, count)
	}
	return tasks
}
