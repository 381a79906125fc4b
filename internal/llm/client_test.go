package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (Config, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := DefaultConfig()
	cfg.Endpoint = srv.URL
	cfg.APIKey = "test-key"
	cfg.TimeoutMs = 5000
	return cfg, srv
}

func completionJSON(content string) []byte {
	data, _ := json.Marshal(map[string]any{
		"model": "test-model",
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	})
	return data
}

func TestCompleteSuccess(t *testing.T) {
	var gotAuth string
	var gotBody chatRequest
	cfg, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write(completionJSON(`{"ok": true}`))
	})

	client := NewOpenAIClient(cfg, nil)
	resp, err := client.Complete(context.Background(), CompletionRequest{
		Task:         TaskAnalyze,
		SystemPrompt: "system",
		UserPrompt:   "user",
	})
	require.NoError(t, err)

	assert.Equal(t, `{"ok": true}`, resp.Text)
	assert.Equal(t, "test-model", resp.Model)
	assert.Equal(t, "Bearer test-key", gotAuth)
	require.Len(t, gotBody.Messages, 2)
	assert.Equal(t, "system", gotBody.Messages[0].Role)
	assert.Equal(t, "json_object", gotBody.ResponseFormat.Type)
	// Task defaults apply when the request leaves them unset.
	assert.Equal(t, 0.3, gotBody.Temperature)
}

func TestCompleteTemperatureOverride(t *testing.T) {
	var gotBody chatRequest
	cfg, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write(completionJSON("x"))
	})

	temp := 0.9
	client := NewOpenAIClient(cfg, nil)
	_, err := client.Complete(context.Background(), CompletionRequest{
		Task:        TaskAnalyze,
		Temperature: &temp,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.9, gotBody.Temperature)
}

func TestCompleteEmptyChoices(t *testing.T) {
	cfg, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"model": "m", "choices": []}`))
	})

	client := NewOpenAIClient(cfg, nil)
	_, err := client.Complete(context.Background(), CompletionRequest{Task: TaskAnalyze})
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestCompleteRetriesThenExhausts(t *testing.T) {
	calls := 0
	cfg, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	})
	cfg.MaxRetries = 2

	client := NewOpenAIClient(cfg, nil)
	_, err := client.Complete(context.Background(), CompletionRequest{Task: TaskAnalyze})
	assert.ErrorIs(t, err, ErrRetryExhausted)
	assert.Equal(t, 3, calls)
}

func TestCompleteObserverRecordsFailure(t *testing.T) {
	cfg, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	})

	var events []CallEvent
	observer := observerFunc(func(e CallEvent) { events = append(events, e) })
	client := NewOpenAIClient(cfg, observer)

	_, err := client.Complete(context.Background(), CompletionRequest{Task: TaskRoadmap})
	require.Error(t, err)
	require.Len(t, events, 1)
	assert.False(t, events[0].Success)
	assert.Equal(t, TaskRoadmap, events[0].Task)
}

func TestAvailable(t *testing.T) {
	cfg, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/models" {
			w.WriteHeader(http.StatusOK)
			return
		}
		http.NotFound(w, r)
	})

	client := NewOpenAIClient(cfg, nil)
	assert.True(t, client.Available(context.Background()))
}

func TestAvailableDownServer(t *testing.T) {
	cfg, srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	client := NewOpenAIClient(cfg, nil)
	assert.False(t, client.Available(context.Background()))
}

// observerFunc adapts a function to the Observer interface.
type observerFunc func(CallEvent)

func (f observerFunc) OnCallComplete(e CallEvent) { f(e) }
