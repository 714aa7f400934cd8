package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/devika/grammaroll/internal/difficulty"
	"github.com/devika/grammaroll/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := int64(1); i <= 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next sequence: %v", err)
		}
		if seq != i {
			t.Fatalf("sequence = %d, want %d", seq, i)
		}
	}
}

func TestSequenceSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := s.seq.Next(ctx); err != nil {
		t.Fatalf("next: %v", err)
	}
	if _, err := s.seq.Next(ctx); err != nil {
		t.Fatalf("next: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	seq, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatalf("next after reopen: %v", err)
	}
	if seq != 3 {
		t.Fatalf("sequence after reopen = %d, want 3", seq)
	}
}

func TestAppendAttemptAndSummary(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	attempts := []AttemptEventData{
		{SessionID: "sess-1", Mode: ModeSelect, ExerciseID: "s001", Sentence: "The dog barked loudly.", SubjectScore: 1, PredicateScore: 1, Correct: true, TimeMs: 4200, Level: 1},
		{SessionID: "sess-1", Mode: ModeSelect, ExerciseID: "s002", Sentence: "My sister plays the piano.", SubjectScore: 0.5, PredicateScore: 1, Correct: false, TimeMs: 9100, Level: 1},
		{SessionID: "sess-1", Mode: ModeDiagram, ExerciseID: "l1-birds-sing", Sentence: "Birds sing.", Correct: true, TimeMs: 6000, Level: 1},
	}
	for _, a := range attempts {
		if err := repo.AppendAttempt(ctx, a); err != nil {
			t.Fatalf("append attempt: %v", err)
		}
	}

	summary, err := repo.AttemptSummarySince(ctx, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Total != 3 {
		t.Errorf("Total = %d, want 3", summary.Total)
	}
	if summary.Correct != 2 {
		t.Errorf("Correct = %d, want 2", summary.Correct)
	}
	if summary.ByMode[ModeSelect] != 2 || summary.ByMode[ModeDiagram] != 1 {
		t.Errorf("ByMode = %v, want select:2 diagram:1", summary.ByMode)
	}

	// A cutoff in the future matches nothing.
	empty, err := repo.AttemptSummarySince(ctx, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("summary (future): %v", err)
	}
	if empty.Total != 0 || empty.Accuracy != 0 {
		t.Errorf("future summary = %+v, want empty", empty)
	}
}

func TestLatestAttemptTime(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	ts, err := repo.LatestAttemptTime(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if !ts.IsZero() {
		t.Fatalf("expected zero time with no attempts, got %v", ts)
	}

	err = repo.AppendAttempt(ctx, AttemptEventData{SessionID: "sess-1", Mode: ModeSelect, ExerciseID: "s001", Correct: true, Level: 1})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	ts, err = repo.LatestAttemptTime(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if ts.IsZero() {
		t.Fatal("expected non-zero latest attempt time")
	}
}

func TestAppendSessionAndLevelEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSession(ctx, SessionEventData{
		SessionID: "sess-1", Action: "started", StartLevel: 2,
	})
	if err != nil {
		t.Fatalf("append session start: %v", err)
	}
	err = repo.AppendLevelChange(ctx, LevelEventData{
		SessionID: "sess-1", FromLevel: 2, ToLevel: 3, Trigger: "adaptive",
	})
	if err != nil {
		t.Fatalf("append level change: %v", err)
	}
	err = repo.AppendSession(ctx, SessionEventData{
		SessionID: "sess-1", Action: "ended",
		QuestionsServed: 10, CorrectAnswers: 8, DurationSecs: 300,
		StartLevel: 2, EndLevel: 3,
	})
	if err != nil {
		t.Fatalf("append session end: %v", err)
	}
}

func TestAppendLLMRequest(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "anthropic", Model: "claude-sonnet-4-20250514",
		Purpose: "sentence_generation", InputTokens: 850, OutputTokens: 420,
		LatencyMs: 1800, Success: true,
	})
	if err != nil {
		t.Fatalf("append llm request: %v", err)
	}

	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "openai", Model: "gpt-4o", Purpose: "sentence_generation",
		Success: false, ErrorMessage: "rate limited",
	})
	if err != nil {
		t.Fatalf("append failed llm request: %v", err)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	rec := progress.NewRecord()
	rec.TotalQuestions = 7
	rec.TotalCorrect = 5

	saved, err := repo.Save(ctx, SnapshotData{Version: 1, Progress: rec})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.Sequence == 0 {
		t.Error("expected non-zero sequence on saved snapshot")
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected snapshot after save")
	}
	if snap.Data.Version != 1 {
		t.Errorf("Version = %d, want 1", snap.Data.Version)
	}
	if snap.Data.Progress == nil || snap.Data.Progress.TotalQuestions != 7 {
		t.Errorf("Progress did not round-trip: %+v", snap.Data.Progress)
	}
}

func TestSnapshotLatestPicksNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for v := 1; v <= 3; v++ {
		if _, err := repo.Save(ctx, SnapshotData{Version: v}); err != nil {
			t.Fatalf("save %d: %v", v, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Data.Version != 3 {
		t.Errorf("latest Version = %d, want 3", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// Pruning an empty table is a no-op.
	if err := repo.Prune(ctx, 2); err != nil {
		t.Fatalf("prune (empty): %v", err)
	}

	for v := 1; v <= 5; v++ {
		if _, err := repo.Save(ctx, SnapshotData{Version: v}); err != nil {
			t.Fatalf("save %d: %v", v, err)
		}
	}

	if err := repo.Prune(ctx, 2); err != nil {
		t.Fatalf("prune: %v", err)
	}

	var count int
	err := s.DB().QueryRow("SELECT COUNT(*) FROM snapshots").Scan(&count)
	if err != nil {
		t.Fatalf("count snapshots: %v", err)
	}
	if count != 2 {
		t.Errorf("snapshots after prune = %d, want 2", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest after prune: %v", err)
	}
	if snap.Data.Version != 5 {
		t.Errorf("latest Version after prune = %d, want 5", snap.Data.Version)
	}
}

func TestStateRepoRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.StateRepo()
	ctx := context.Background()

	// Fresh store yields a fresh record.
	rec, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if rec.TotalQuestions != 0 {
		t.Fatalf("expected fresh record, got %+v", rec)
	}

	rec.TotalQuestions = 12
	rec.TotalCorrect = 9
	rec.CurrentStreak = 3
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.TotalQuestions != 12 || got.TotalCorrect != 9 || got.CurrentStreak != 3 {
		t.Errorf("record did not round-trip: %+v", got)
	}
}

func TestStateRepoCarriesDifficultyForward(t *testing.T) {
	s := openTestStore(t)
	repo := s.StateRepo()
	ctx := context.Background()

	state, err := repo.Difficulty(ctx)
	if err != nil {
		t.Fatalf("difficulty (empty): %v", err)
	}
	if state != nil {
		t.Fatal("expected nil difficulty state before first save")
	}

	rec := progress.NewRecord()
	err = repo.SaveAll(ctx, rec, &difficulty.State{Level: 3, RecentResults: []bool{true, true}})
	if err != nil {
		t.Fatalf("save all: %v", err)
	}

	// A progress-only save must not drop the stored difficulty state.
	rec.TotalQuestions = 1
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	state, err = repo.Difficulty(ctx)
	if err != nil {
		t.Fatalf("difficulty: %v", err)
	}
	if state == nil || state.Level != 3 {
		t.Fatalf("difficulty state = %+v, want level 3", state)
	}
	if len(state.RecentResults) != 2 {
		t.Errorf("RecentResults length = %d, want 2", len(state.RecentResults))
	}
}
