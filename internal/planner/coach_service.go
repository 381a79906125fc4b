package planner

import (
	"context"
	"strings"
	"time"

	"github.com/akiyamakenta/manabiya/internal/domain"
	"github.com/akiyamakenta/manabiya/internal/llm"
)

// ProgressRequest describes one daily-task outcome to review.
type ProgressRequest struct {
	LearningGoal string
	CurrentPhase string
	TaskTitle    string
	IsCompleted  bool
	UserFeedback string
}

// Coach generates motivational messages and progress feedback. Both methods
// always return a complete message; a failing model degrades to canned text.
type Coach interface {
	Motivate(ctx context.Context, tasks []domain.Task) domain.MotivationalMessage
	ReviewProgress(ctx context.Context, req ProgressRequest) domain.ProgressUpdate
}

type coach struct {
	client llm.CompletionClient
	now    func() time.Time
}

// NewCoach creates a Coach backed by the given client.
func NewCoach(client llm.CompletionClient) Coach {
	return &coach{client: client, now: time.Now}
}

type motivationWire struct {
	Greeting      string   `json:"greeting"`
	Message       string   `json:"message"`
	UrgentMessage string   `json:"urgentMessage"`
	Goals         []string `json:"goals"`
	Tips          string   `json:"tips"`
	Closing       string   `json:"closing"`
}

func (c *coach) Motivate(ctx context.Context, tasks []domain.Task) domain.MotivationalMessage {
	resp, err := c.client.Complete(ctx, llm.CompletionRequest{
		Task:         llm.TaskMotivation,
		SystemPrompt: motivationSystemPrompt,
		UserPrompt:   buildMotivationUserPrompt(tasks, c.now()),
	})
	if err != nil {
		return DefaultMotivationalMessage()
	}

	wire, err := llm.ExtractJSON[motivationWire](resp.Text, nil)
	if err != nil {
		return DefaultMotivationalMessage()
	}

	defaults := DefaultMotivationalMessage()
	return domain.MotivationalMessage{
		Greeting:      stringOrDefault(wire.Greeting, defaults.Greeting),
		Message:       stringOrDefault(wire.Message, defaults.Message),
		UrgentMessage: strings.TrimSpace(wire.UrgentMessage),
		Goals:         domain.CoalesceList(wire.Goals, defaults.Goals),
		Tips:          stringOrDefault(wire.Tips, defaults.Tips),
		Closing:       stringOrDefault(wire.Closing, defaults.Closing),
	}
}

type progressWire struct {
	Encouragement string   `json:"encouragement"`
	Analysis      string   `json:"analysis"`
	Tips          []string `json:"tips"`
	NextFocus     string   `json:"nextFocus"`
	Reflection    string   `json:"reflection"`
}

func (c *coach) ReviewProgress(ctx context.Context, req ProgressRequest) domain.ProgressUpdate {
	resp, err := c.client.Complete(ctx, llm.CompletionRequest{
		Task:         llm.TaskProgress,
		SystemPrompt: progressSystemPrompt,
		UserPrompt:   buildProgressUserPrompt(req),
	})
	if err != nil {
		return DefaultProgressUpdate(req.IsCompleted)
	}

	wire, err := llm.ExtractJSON[progressWire](resp.Text, nil)
	if err != nil {
		return DefaultProgressUpdate(req.IsCompleted)
	}

	defaults := DefaultProgressUpdate(req.IsCompleted)
	return domain.ProgressUpdate{
		Encouragement: stringOrDefault(wire.Encouragement, defaults.Encouragement),
		Analysis:      stringOrDefault(wire.Analysis, defaults.Analysis),
		Tips:          domain.CoalesceList(wire.Tips, defaults.Tips),
		NextFocus:     stringOrDefault(wire.NextFocus, defaults.NextFocus),
		Reflection:    stringOrDefault(wire.Reflection, defaults.Reflection),
	}
}
