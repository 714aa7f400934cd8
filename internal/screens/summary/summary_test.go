package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/devika/grammaroll/internal/progress"
	"github.com/devika/grammaroll/internal/router"
)

func sampleStats() *progress.SessionStats {
	start := time.Now().Add(-5 * time.Minute)
	end := time.Now()
	return &progress.SessionStats{
		SessionID:          "abc",
		StartTime:          start,
		EndTime:            &end,
		QuestionsAttempted: 10,
		CorrectAnswers:     8,
	}
}

func TestViewShowsCounts(t *testing.T) {
	s := New(sampleStats(), 2, 3)
	view := s.View(100, 30)

	for _, want := range []string{"10", "8", "80%", "2 → 3"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewLevelHeldSteady(t *testing.T) {
	s := New(sampleStats(), 2, 2)
	view := s.View(100, 30)

	if strings.Contains(view, "→") {
		t.Error("steady level should not render an arrow")
	}
}

func TestViewEmptySession(t *testing.T) {
	s := New(nil, 1, 1)
	view := s.View(100, 30)

	if !strings.Contains(view, "No answers") {
		t.Error("expected empty-session message")
	}
}

func TestEnterPopsToHome(t *testing.T) {
	s := New(sampleStats(), 1, 1)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{45 * time.Second, "45s"},
		{5*time.Minute + 7*time.Second, "5m 07s"},
		{90 * time.Second, "1m 30s"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
