package planner

import (
	"context"
	"time"

	"github.com/akiyamakenta/manabiya/internal/llm"
)

// stubClient returns a canned completion, recording the last request.
type stubClient struct {
	text    string
	err     error
	lastReq llm.CompletionRequest
}

func (s *stubClient) Complete(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &llm.CompletionResponse{Text: s.text, Model: "stub"}, nil
}

func (s *stubClient) Available(context.Context) bool { return s.err == nil }

func fixedNow() time.Time {
	return time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
}
