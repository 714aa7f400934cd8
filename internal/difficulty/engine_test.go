package difficulty

import (
	"math/rand/v2"
	"strings"
	"testing"
)

func TestNewClampsStartingLevel(t *testing.T) {
	tests := []struct {
		start, want int
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{3, 3},
		{5, 5},
		{9, 5},
	}
	for _, tt := range tests {
		if got := New(tt.start).CurrentLevel(); got != tt.want {
			t.Errorf("New(%d).CurrentLevel() = %d, want %d", tt.start, got, tt.want)
		}
	}
}

func TestLevelUpAfterThreeCorrect(t *testing.T) {
	e := New(1)

	adj := e.RecordAnswer(true)
	if adj.LevelChanged {
		t.Fatal("no change expected after one answer")
	}
	adj = e.RecordAnswer(true)
	if adj.LevelChanged {
		t.Fatal("no change expected after two answers")
	}

	adj = e.RecordAnswer(true)
	if !adj.LevelChanged || adj.Direction != DirectionUp || adj.NewLevel != 2 {
		t.Fatalf("adjustment = %+v, want level 2 up", adj)
	}
	if got := e.RecentStats().QuestionsInWindow; got != 0 {
		t.Errorf("window not cleared after level change: %d entries", got)
	}
}

func TestLevelDownOnLowAccuracy(t *testing.T) {
	e := New(3)
	e.RecordAnswer(true)
	e.RecordAnswer(false)

	// Window [true,false,false]: accuracy 1/3 ≤ 0.4 → drop to 2.
	adj := e.RecordAnswer(false)
	if !adj.LevelChanged || adj.Direction != DirectionDown || adj.NewLevel != 2 {
		t.Fatalf("adjustment = %+v, want level 2 down", adj)
	}
	if got := e.RecentStats().QuestionsInWindow; got != 0 {
		t.Errorf("window not cleared after level change: %d entries", got)
	}
}

func TestNoChangeRetainsWindow(t *testing.T) {
	e := New(3)
	e.RecordAnswer(true)
	e.RecordAnswer(true)

	// [true,true,false]: accuracy 2/3, between the thresholds.
	adj := e.RecordAnswer(false)
	if adj.LevelChanged {
		t.Fatalf("adjustment = %+v, want no change", adj)
	}
	if got := e.RecentStats().QuestionsInWindow; got != 3 {
		t.Errorf("window = %d entries, want 3 retained", got)
	}
}

func TestLevelNeverLeavesBounds(t *testing.T) {
	e := New(3)
	for range 500 {
		e.RecordAnswer(rand.IntN(2) == 0)
		level := e.CurrentLevel()
		if level < MinLevel || level > MaxLevel {
			t.Fatalf("level escaped bounds: %d", level)
		}
		if got := e.RecentStats().QuestionsInWindow; got > WindowSize {
			t.Fatalf("window exceeded bound: %d", got)
		}
	}
}

func TestCeilingAndFloorHold(t *testing.T) {
	e := New(5)
	for range 20 {
		if adj := e.RecordAnswer(true); adj.LevelChanged {
			t.Fatalf("level 5 must not level up: %+v", adj)
		}
	}

	e = New(1)
	for range 20 {
		if adj := e.RecordAnswer(false); adj.LevelChanged {
			t.Fatalf("level 1 must not level down: %+v", adj)
		}
	}
}

func TestWindowEviction(t *testing.T) {
	e := New(3)
	// Evaluation runs from the third answer on, so every prefix here
	// keeps accuracy strictly between the thresholds: 2/3, 3/4, 3/5.
	e.RecordAnswer(false)
	e.RecordAnswer(true)
	e.RecordAnswer(true)
	e.RecordAnswer(true)
	e.RecordAnswer(false)
	// Window [F,T,T,T,F], accuracy 0.6, no change.
	if e.CurrentLevel() != 3 {
		t.Fatalf("level = %d, want 3", e.CurrentLevel())
	}

	// The next correct answer evicts the oldest false, leaving
	// [T,T,T,F,T] at 0.8 → level up. Over all six answers the accuracy
	// is only 4/6, so the promotion proves the eviction happened.
	adj := e.RecordAnswer(true)
	if !adj.LevelChanged || adj.NewLevel != 4 {
		t.Fatalf("adjustment = %+v, want level 4", adj)
	}
}

func TestSetLevelClampsAndClears(t *testing.T) {
	e := New(1)
	e.RecordAnswer(true)
	e.RecordAnswer(true)

	e.SetLevel(7)
	if e.CurrentLevel() != 5 {
		t.Errorf("SetLevel(7) → %d, want 5", e.CurrentLevel())
	}
	if got := e.RecentStats().QuestionsInWindow; got != 0 {
		t.Errorf("window = %d, want cleared", got)
	}

	e.SetLevel(0)
	if e.CurrentLevel() != 1 {
		t.Errorf("SetLevel(0) → %d, want 1", e.CurrentLevel())
	}
}

func TestRecentStats(t *testing.T) {
	e := New(2)

	s := e.RecentStats()
	if s.QuestionsInWindow != 0 || s.Accuracy != 0 || s.QuestionsUntilEvaluation != 3 {
		t.Errorf("fresh stats = %+v", s)
	}

	e.RecordAnswer(true)
	e.RecordAnswer(false)
	s = e.RecentStats()
	if s.QuestionsInWindow != 2 || s.CorrectCount != 1 || s.Accuracy != 0.5 {
		t.Errorf("stats = %+v", s)
	}
	if s.QuestionsUntilEvaluation != 1 {
		t.Errorf("QuestionsUntilEvaluation = %d, want 1", s.QuestionsUntilEvaluation)
	}
}

func TestStateRoundTrip(t *testing.T) {
	e := New(4)
	e.RecordAnswer(true)
	e.RecordAnswer(false)

	snap := e.State()
	restored := New(1)
	restored.SetState(snap)

	if restored.CurrentLevel() != 4 {
		t.Errorf("restored level = %d, want 4", restored.CurrentLevel())
	}
	if got := restored.RecentStats(); got.QuestionsInWindow != 2 || got.CorrectCount != 1 {
		t.Errorf("restored stats = %+v", got)
	}

	// Snapshot is a copy; mutating the engine afterwards must not
	// change it.
	e.RecordAnswer(true)
	if len(snap.RecentResults) != 2 {
		t.Errorf("snapshot aliased engine window")
	}
}

func TestSetStateSanitizesEditedSnapshot(t *testing.T) {
	e := New(1)
	e.SetState(State{
		Level:         9,
		RecentResults: []bool{false, false, true, true, true, true, true},
	})

	if e.CurrentLevel() != MaxLevel {
		t.Errorf("level = %d, want clamped to %d", e.CurrentLevel(), MaxLevel)
	}
	stats := e.RecentStats()
	if stats.QuestionsInWindow != WindowSize {
		t.Errorf("window = %d, want trimmed to %d", stats.QuestionsInWindow, WindowSize)
	}
	// The newest entries survive: [T,T,T,T,T] from the tail.
	if stats.CorrectCount != 5 {
		t.Errorf("correct = %d, want 5 (oldest entries dropped)", stats.CorrectCount)
	}

	e.SetState(State{Level: -2})
	if e.CurrentLevel() != MinLevel {
		t.Errorf("level = %d, want clamped to %d", e.CurrentLevel(), MinLevel)
	}
}

func TestParamsFollowLevel(t *testing.T) {
	e := New(1)
	if p := e.Params(); p.Level != 1 || p.SentenceLengthMax != 6 {
		t.Errorf("level 1 params = %+v", p)
	}
	e.SetLevel(5)
	p := e.Params()
	if p.Level != 5 || !p.AllowSubordinateClauses || p.MaxPrepositionalPhrases != 3 {
		t.Errorf("level 5 params = %+v", p)
	}
}

func TestEncouragementMessage(t *testing.T) {
	e := New(2)
	if msg := e.EncouragementMessage(); !strings.Contains(msg, "get started") {
		t.Errorf("starter message = %q", msg)
	}

	// High accuracy with headroom names the next level. Use level 4 so
	// three correct answers promote to 5; afterwards the window is
	// cleared so feed two more for a full message window.
	e.SetLevel(4)
	e.RecordAnswer(true)
	e.RecordAnswer(true)
	e.RecordAnswer(true) // promotes to 5, clears window
	e.RecordAnswer(true)
	e.RecordAnswer(true)
	e.RecordAnswer(true) // at max, window [T,T,T], no change
	if msg := e.EncouragementMessage(); !strings.Contains(msg, "grammar master") {
		t.Errorf("mastery message = %q", msg)
	}

	e.SetLevel(3)
	e.RecordAnswer(true)
	e.RecordAnswer(true)
	e.RecordAnswer(false) // 2/3, retained
	if msg := e.EncouragementMessage(); !strings.Contains(msg, "doing well") {
		t.Errorf("generic message = %q", msg)
	}

	e.SetLevel(1)
	e.RecordAnswer(false)
	e.RecordAnswer(false)
	e.RecordAnswer(false) // at floor, no change, window retained
	if msg := e.EncouragementMessage(); !strings.Contains(msg, "Take your time") {
		t.Errorf("struggle message = %q", msg)
	}
}
