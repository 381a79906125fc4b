package planner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akiyamakenta/manabiya/internal/domain"
	"github.com/akiyamakenta/manabiya/internal/llm"
)

// fakeCompletionServer serves an OpenAI-compatible /chat/completions endpoint
// that always returns the given content.
func fakeCompletionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.NotEmpty(t, body["messages"])

		resp := map[string]any{
			"model": "test-model",
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	})
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func testClient(srv *httptest.Server) llm.CompletionClient {
	cfg := llm.DefaultConfig()
	cfg.Endpoint = srv.URL
	cfg.TimeoutMs = 5000
	return llm.NewOpenAIClient(cfg, llm.NoopObserver{})
}

func TestAnalyzeOverHTTP(t *testing.T) {
	srv := fakeCompletionServer(t, "```json\n{\"title\": \"スペイン語習得\", \"priority\": \"high\", \"category\": \"language\", \"level\": \"beginner\", \"estimatedTime\": .5}\n```")
	svc := &taskAnalyzer{client: testClient(srv), now: fixedNow}

	details := svc.Analyze(context.Background(), "スペイン語を習得する")

	// Fenced output and the bare leading-decimal literal both survive extraction.
	assert.Equal(t, "スペイン語習得", details.Title)
	assert.Equal(t, domain.PriorityHigh, details.Priority)
	assert.Equal(t, domain.CategoryLanguage, details.Category)
	assert.Equal(t, 0, details.EstimatedTime)
}

func TestSubtasksOverHTTPWithObjectWrapper(t *testing.T) {
	srv := fakeCompletionServer(t, `{"subtasks": [
		{"title": "教材を選ぶ", "dueDate": "2026-08-10", "priority": "high", "estimatedTime": 45},
		{"title": "学習時間を確保", "dueDate": "2026-08-12", "priority": "medium", "estimatedTime": 30}
	]}`)
	svc := &subtaskGenerator{client: testClient(srv), now: fixedNow}

	subtasks := svc.Generate(context.Background(), "英検2級", "", nil)
	require.Len(t, subtasks, 2)
	assert.Equal(t, "教材を選ぶ", subtasks[0].Title)
}

func TestAnalyzeFallsBackWhenServerErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	svc := &taskAnalyzer{client: testClient(srv), now: fixedNow}
	details := svc.Analyze(context.Background(), "Learn Spanish")

	assert.Equal(t, "Learn Spanish", details.Title)
	assert.Equal(t, domain.PriorityMedium, details.Priority)
}
