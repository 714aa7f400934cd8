package progress

import (
	"context"
	"testing"
	"time"
)

func result(correct bool, level, secs int, ts time.Time) QuestionResult {
	return QuestionResult{
		ID:              "q-" + ts.Format("150405.000"),
		Timestamp:       ts,
		Sentence:        "Birds sing.",
		IsCorrect:       correct,
		DifficultyLevel: level,
		TimeSpentSecs:   secs,
	}
}

func TestRecordResultTotalsAndStreaks(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()
	now := time.Now().UTC()

	rec, err := svc.RecordResult(ctx, result(true, 1, 10, now))
	if err != nil {
		t.Fatal(err)
	}
	if rec.TotalQuestions != 1 || rec.TotalCorrect != 1 || rec.CurrentStreak != 1 {
		t.Errorf("after first correct: %+v", rec)
	}

	rec, _ = svc.RecordResult(ctx, result(true, 1, 8, now))
	rec, _ = svc.RecordResult(ctx, result(false, 2, 20, now))
	if rec.CurrentStreak != 0 {
		t.Errorf("streak = %d, want 0 after a miss", rec.CurrentStreak)
	}
	if rec.LongestStreak != 2 {
		t.Errorf("longest streak = %d, want 2", rec.LongestStreak)
	}
	if rec.TotalIncorrect != 1 {
		t.Errorf("incorrect = %d, want 1", rec.TotalIncorrect)
	}
	if rec.CurrentDifficultyLevel != 2 {
		t.Errorf("level = %d, want level of last result", rec.CurrentDifficultyLevel)
	}
	if len(rec.History) != 3 || rec.History[0].IsCorrect {
		t.Errorf("history should be newest-first: %+v", rec.History)
	}
}

func TestHistoryBound(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()
	now := time.Now().UTC()

	var rec *Record
	for i := 0; i < MaxHistory+25; i++ {
		var err error
		rec, err = svc.RecordResult(ctx, result(true, 1, 1, now))
		if err != nil {
			t.Fatal(err)
		}
	}
	if len(rec.History) != MaxHistory {
		t.Errorf("history = %d entries, want capped at %d", len(rec.History), MaxHistory)
	}
	if rec.TotalQuestions != MaxHistory+25 {
		t.Errorf("totals must not be capped: %d", rec.TotalQuestions)
	}
}

func TestSessionLifecycle(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()
	now := time.Now().UTC()

	sess, err := svc.StartSession(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if sess.SessionID == "" {
		t.Error("session needs an ID")
	}

	svc.RecordResult(ctx, result(true, 1, 10, now))
	svc.RecordResult(ctx, result(false, 2, 20, now))

	rec, _ := svc.Get(ctx)
	cur := rec.CurrentSession
	if cur == nil {
		t.Fatal("expected open session")
	}
	if cur.QuestionsAttempted != 2 || cur.CorrectAnswers != 1 || cur.IncorrectAnswers != 1 {
		t.Errorf("session counts = %+v", cur)
	}
	if cur.AverageTimePerQuestion != 15 {
		t.Errorf("average time = %v, want 15", cur.AverageTimePerQuestion)
	}
	if cur.EndDifficulty != 2 {
		t.Errorf("end difficulty = %d, want 2", cur.EndDifficulty)
	}

	if err := svc.EndSession(ctx); err != nil {
		t.Fatal(err)
	}
	rec, _ = svc.Get(ctx)
	if rec.CurrentSession != nil {
		t.Error("session should be closed")
	}
	if len(rec.Sessions) != 1 || rec.Sessions[0].EndTime == nil {
		t.Errorf("sessions = %+v", rec.Sessions)
	}

	// Ending again is a no-op.
	if err := svc.EndSession(ctx); err != nil {
		t.Fatal(err)
	}
	rec, _ = svc.Get(ctx)
	if len(rec.Sessions) != 1 {
		t.Errorf("double end duplicated a session: %d", len(rec.Sessions))
	}
}

func TestStatsForRange(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()
	day := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	svc.RecordResult(ctx, result(true, 1, 5, day))
	svc.RecordResult(ctx, result(true, 3, 5, day.Add(time.Hour)))
	svc.RecordResult(ctx, result(false, 2, 5, day.Add(-48*time.Hour))) // out of range

	stats, err := svc.StatsForRange(ctx, day.Add(-time.Hour), day.Add(2*time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalQuestions != 2 || stats.CorrectAnswers != 2 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.Accuracy != 100 {
		t.Errorf("accuracy = %v, want 100", stats.Accuracy)
	}
	if stats.AverageLevel != 2 {
		t.Errorf("average level = %v, want 2", stats.AverageLevel)
	}

	empty, _ := svc.StatsForRange(ctx, day.AddDate(1, 0, 0), day.AddDate(2, 0, 0))
	if empty.TotalQuestions != 0 || empty.AverageLevel != 1 {
		t.Errorf("empty-range stats = %+v", empty)
	}
}

func TestReset(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	svc.RecordResult(ctx, result(true, 1, 5, time.Now().UTC()))
	if err := svc.Reset(ctx); err != nil {
		t.Fatal(err)
	}
	rec, _ := svc.Get(ctx)
	if rec.TotalQuestions != 0 || len(rec.History) != 0 {
		t.Errorf("reset left data behind: %+v", rec)
	}
	if rec.CurrentDifficultyLevel != 1 {
		t.Errorf("reset level = %d, want 1", rec.CurrentDifficultyLevel)
	}
}

func TestNextStreakThreshold(t *testing.T) {
	tests := []struct {
		current, want int
	}{
		{0, 5},
		{4, 5},
		{5, 10},
		{12, 15},
		{20, 25},
		{27, 30},
	}
	for _, tt := range tests {
		if got := NextStreakThreshold(tt.current); got != tt.want {
			t.Errorf("NextStreakThreshold(%d) = %d, want %d", tt.current, got, tt.want)
		}
	}
}
