package session

import (
	"context"
	"testing"
	"time"

	"github.com/devika/grammaroll/internal/bank"
	"github.com/devika/grammaroll/internal/diagram"
	"github.com/devika/grammaroll/internal/difficulty"
	"github.com/devika/grammaroll/internal/grading"
	"github.com/devika/grammaroll/internal/progress"
	"github.com/devika/grammaroll/internal/store"
)

// fakeEvents records appended events in memory.
type fakeEvents struct {
	attempts []store.AttemptEventData
	sessions []store.SessionEventData
	levels   []store.LevelEventData
	llm      []store.LLMRequestEventData
}

func (f *fakeEvents) AppendAttempt(_ context.Context, d store.AttemptEventData) error {
	f.attempts = append(f.attempts, d)
	return nil
}

func (f *fakeEvents) AppendSession(_ context.Context, d store.SessionEventData) error {
	f.sessions = append(f.sessions, d)
	return nil
}

func (f *fakeEvents) AppendLevelChange(_ context.Context, d store.LevelEventData) error {
	f.levels = append(f.levels, d)
	return nil
}

func (f *fakeEvents) AppendLLMRequest(_ context.Context, d store.LLMRequestEventData) error {
	f.llm = append(f.llm, d)
	return nil
}

func (f *fakeEvents) AttemptSummarySince(_ context.Context, _ time.Time) (store.AttemptSummary, error) {
	return store.AttemptSummary{}, nil
}

func (f *fakeEvents) RecentLLMRequests(_ context.Context, _ int) ([]store.LLMRequestRecord, error) {
	return nil, nil
}

func (f *fakeEvents) LatestAttemptTime(_ context.Context) (time.Time, error) {
	return time.Time{}, nil
}

func newTestService(t *testing.T) (*Service, *fakeEvents) {
	t.Helper()
	events := &fakeEvents{}
	svc := NewService(
		difficulty.New(1),
		progress.NewService(progress.NewMemoryRepo()),
		events,
	)
	return svc, events
}

func mustSentence(t *testing.T, id string) bank.Sentence {
	t.Helper()
	s, err := bank.ByID(id)
	if err != nil {
		t.Fatalf("sentence %s: %v", id, err)
	}
	return s
}

func TestStartAndEndSession(t *testing.T) {
	svc, events := newTestService(t)
	ctx := context.Background()

	if err := svc.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if svc.SessionID() == "" {
		t.Fatal("expected session ID after start")
	}
	if err := svc.End(ctx); err != nil {
		t.Fatalf("end: %v", err)
	}
	if svc.SessionID() != "" {
		t.Error("expected cleared session ID after end")
	}

	if len(events.sessions) != 2 {
		t.Fatalf("session events = %d, want 2", len(events.sessions))
	}
	if events.sessions[0].Action != "started" || events.sessions[1].Action != "ended" {
		t.Errorf("actions = %q, %q", events.sessions[0].Action, events.sessions[1].Action)
	}
}

func TestSubmitSelectionCorrect(t *testing.T) {
	svc, events := newTestService(t)
	ctx := context.Background()
	if err := svc.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}

	s := mustSentence(t, "s001") // "The dog barked loudly."
	svc.NextSentence()

	out, err := svc.SubmitSelection(ctx, s, grading.Selection{
		CompleteSubject:   s.Spans.CompleteSubject,
		CompletePredicate: s.Spans.CompletePredicate,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !out.Correct {
		t.Error("expected correct outcome for exact answer")
	}
	if out.Grade.Correctness.CompleteSubject != 1 || out.Grade.Correctness.CompletePredicate != 1 {
		t.Errorf("correctness = %+v, want 1/1", out.Grade.Correctness)
	}
	if out.Streak != 1 {
		t.Errorf("streak = %d, want 1", out.Streak)
	}

	if len(events.attempts) != 1 {
		t.Fatalf("attempt events = %d, want 1", len(events.attempts))
	}
	got := events.attempts[0]
	if got.Mode != store.ModeSelect || got.ExerciseID != "s001" || !got.Correct {
		t.Errorf("attempt event = %+v", got)
	}
}

func TestSubmitSelectionWrongResetsStreak(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	if err := svc.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}

	s := mustSentence(t, "s001")
	svc.NextSentence()

	// Swapped spans: subject selected as predicate and vice versa.
	out, err := svc.SubmitSelection(ctx, s, grading.Selection{
		CompleteSubject:   s.Spans.CompletePredicate,
		CompletePredicate: s.Spans.CompleteSubject,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.Correct {
		t.Error("expected incorrect outcome for swapped spans")
	}
	if out.Streak != 0 {
		t.Errorf("streak = %d, want 0", out.Streak)
	}
	if len(out.Grade.Tips) == 0 {
		t.Error("expected tips for a wrong answer")
	}
}

func TestAdaptiveLevelChangeLogged(t *testing.T) {
	svc, events := newTestService(t)
	ctx := context.Background()
	if err := svc.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}

	s := mustSentence(t, "s001")
	sel := grading.Selection{
		CompleteSubject:   s.Spans.CompleteSubject,
		CompletePredicate: s.Spans.CompletePredicate,
	}

	// Three correct answers trip the level-up evaluation.
	for i := 0; i < 3; i++ {
		svc.NextSentence()
		if _, err := svc.SubmitSelection(ctx, s, sel); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}

	if svc.Level() != 2 {
		t.Fatalf("level = %d, want 2 after three correct", svc.Level())
	}
	if len(events.levels) != 1 {
		t.Fatalf("level events = %d, want 1", len(events.levels))
	}
	ev := events.levels[0]
	if ev.FromLevel != 1 || ev.ToLevel != 2 || ev.Trigger != "adaptive" {
		t.Errorf("level event = %+v", ev)
	}
}

func TestManualLevelOverrideLogged(t *testing.T) {
	svc, events := newTestService(t)
	ctx := context.Background()

	if err := svc.SetLevel(ctx, 4); err != nil {
		t.Fatalf("set level: %v", err)
	}
	if svc.Level() != 4 {
		t.Errorf("level = %d, want 4", svc.Level())
	}
	if len(events.levels) != 1 || events.levels[0].Trigger != "manual" {
		t.Errorf("level events = %+v", events.levels)
	}

	// Setting the same level again logs nothing.
	if err := svc.SetLevel(ctx, 4); err != nil {
		t.Fatalf("set level: %v", err)
	}
	if len(events.levels) != 1 {
		t.Errorf("level events = %d, want still 1", len(events.levels))
	}
}

func TestNextSentenceMatchesEngineLevel(t *testing.T) {
	svc, _ := newTestService(t)
	svc.engine.SetLevel(5) // clamps to bank level 3

	s := svc.NextSentence()
	if s.Level != bank.MaxLevel {
		t.Errorf("sentence level = %d, want %d", s.Level, bank.MaxLevel)
	}
}

func TestSubmitDiagram(t *testing.T) {
	svc, events := newTestService(t)
	ctx := context.Background()
	if err := svc.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}

	ex, ok := diagram.ExerciseByID("l1-birds-sing")
	if !ok {
		t.Fatal("missing seed exercise l1-birds-sing")
	}
	svc.NextExercise()

	out, err := svc.SubmitDiagram(ctx, ex, ex.Answer.Placements)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !out.Correct || !out.Result.Correct {
		t.Error("expected correct outcome for ground-truth placements")
	}
	if len(events.attempts) != 1 || events.attempts[0].Mode != store.ModeDiagram {
		t.Errorf("attempt events = %+v", events.attempts)
	}
}

func TestSubmitDiagramWrongPlacement(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	if err := svc.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}

	ex, ok := diagram.ExerciseByID("l1-birds-sing")
	if !ok {
		t.Fatal("missing seed exercise l1-birds-sing")
	}
	svc.NextExercise()

	// Swap the two placements' slots.
	wrong := []diagram.Placement{
		{TokenID: ex.Answer.Placements[0].TokenID, Slot: ex.Answer.Placements[1].Slot},
		{TokenID: ex.Answer.Placements[1].TokenID, Slot: ex.Answer.Placements[0].Slot},
	}
	out, err := svc.SubmitDiagram(ctx, ex, wrong)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.Correct {
		t.Error("expected incorrect outcome")
	}
	if len(out.Result.Tips) == 0 {
		t.Error("expected a tip for misplaced tokens")
	}
}

func TestStreakMilestone(t *testing.T) {
	svc, _ := newTestService(t)
	svc.engine.SetLevel(5) // park at max so level churn doesn't matter
	ctx := context.Background()
	if err := svc.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}

	s := mustSentence(t, "s001")
	sel := grading.Selection{
		CompleteSubject:   s.Spans.CompleteSubject,
		CompletePredicate: s.Spans.CompletePredicate,
	}

	var last *SelectionOutcome
	for i := 0; i < 5; i++ {
		svc.NextSentence()
		out, err := svc.SubmitSelection(ctx, s, sel)
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		last = out
	}

	if last.Streak != 5 {
		t.Fatalf("streak = %d, want 5", last.Streak)
	}
	if !last.StreakMilestone {
		t.Error("expected milestone at streak 5")
	}
}
