package llm

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/devika/grammaroll/internal/store"
)

// recordingEvents captures appended LLM request events.
type recordingEvents struct {
	requests []store.LLMRequestEventData
}

func (r *recordingEvents) AppendAttempt(context.Context, store.AttemptEventData) error   { return nil }
func (r *recordingEvents) AppendSession(context.Context, store.SessionEventData) error   { return nil }
func (r *recordingEvents) AppendLevelChange(context.Context, store.LevelEventData) error { return nil }

func (r *recordingEvents) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.requests = append(r.requests, data)
	return nil
}

func (r *recordingEvents) AttemptSummarySince(context.Context, time.Time) (store.AttemptSummary, error) {
	return store.AttemptSummary{}, nil
}

func (r *recordingEvents) RecentLLMRequests(context.Context, int) ([]store.LLMRequestRecord, error) {
	return nil, nil
}

func (r *recordingEvents) LatestAttemptTime(context.Context) (time.Time, error) {
	return time.Time{}, nil
}

func TestLoggingRecordsCall(t *testing.T) {
	events := &recordingEvents{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"sentence":"Birds sing."}`),
		Usage:   Usage{InputTokens: 100, OutputTokens: 25, TotalTokens: 125},
	})
	p := WithLogging(mock, "mock", events)

	_, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "go"}}})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(events.requests) != 1 {
		t.Fatalf("logged %d events, want 1", len(events.requests))
	}
	got := events.requests[0]
	if got.Provider != "mock" {
		t.Errorf("Provider = %q, want mock", got.Provider)
	}
	if got.InputTokens != 100 || got.OutputTokens != 25 {
		t.Errorf("tokens = %d/%d, want 100/25", got.InputTokens, got.OutputTokens)
	}
	if !got.Success {
		t.Error("Success = false, want true")
	}
}

func TestLoggingNilRepoDoesNotPanic(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithRetry(WithLogging(mock, "mock", nil), DefaultConfig().Retry)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("generate with nil event repo: %v", err)
	}
}
