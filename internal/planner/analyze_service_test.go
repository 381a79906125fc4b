package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akiyamakenta/manabiya/internal/domain"
	"github.com/akiyamakenta/manabiya/internal/llm"
)

func TestAnalyzeRepairsFields(t *testing.T) {
	stub := &stubClient{text: `{
		"title": "スペイン語習得",
		"description": "日常会話レベル",
		"dueDate": "2026-12-31",
		"priority": "urgent",
		"estimatedTime": "90",
		"needsMoreInfo": true,
		"questions": ["現在のレベルは？"],
		"category": "language",
		"level": "expert",
		"dailyTimeAvailable": 45
	}`}
	svc := &taskAnalyzer{client: stub, now: fixedNow}

	details := svc.Analyze(context.Background(), "スペイン語を習得する")

	assert.Equal(t, "スペイン語習得", details.Title)
	// Unknown enum values coerce to their defaults.
	assert.Equal(t, domain.PriorityMedium, details.Priority)
	assert.Equal(t, domain.LevelBeginner, details.Level)
	assert.Equal(t, domain.CategoryLanguage, details.Category)
	assert.Equal(t, 90, details.EstimatedTime)
	assert.Equal(t, 45, details.DailyTimeAvailable)
	assert.True(t, details.NeedsMoreInfo)
	require.NotNil(t, details.DueDate)
	assert.Equal(t, "2026-12-31", details.DueDate.Format(dateLayout))
	assert.Equal(t, llm.TaskAnalyze, stub.lastReq.Task)
}

func TestAnalyzeFallsBackOnClientError(t *testing.T) {
	svc := &taskAnalyzer{client: &stubClient{err: errors.New("connection refused")}, now: fixedNow}

	details := svc.Analyze(context.Background(), "Learn Spanish")

	assert.Equal(t, "Learn Spanish", details.Title)
	assert.Equal(t, domain.PriorityMedium, details.Priority)
	assert.Equal(t, 60, details.EstimatedTime)
}

func TestAnalyzeFallsBackOnGarbage(t *testing.T) {
	svc := &taskAnalyzer{client: &stubClient{text: "すみません、お手伝いできません"}, now: fixedNow}

	details := svc.Analyze(context.Background(), "Learn Spanish")
	assert.Equal(t, "Learn Spanish", details.Title)
}

func TestAnalyzeTitleFallsBackToInput(t *testing.T) {
	svc := &taskAnalyzer{client: &stubClient{text: `{"title": "", "priority": "high"}`}, now: fixedNow}

	details := svc.Analyze(context.Background(), "簿記3級に合格する")
	assert.Equal(t, "簿記3級に合格する", details.Title)
	assert.Equal(t, domain.PriorityHigh, details.Priority)
}
