package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service applies bookkeeping rules (totals, streaks, bounded history,
// session rollups) on top of a Repo.
type Service struct {
	repo Repo
	now  func() time.Time
}

// NewService creates a Service over the given repository.
func NewService(repo Repo) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Get returns the current record.
func (s *Service) Get(ctx context.Context) (*Record, error) {
	return s.repo.Get(ctx)
}

// RecordResult folds one graded attempt into history, totals, streaks,
// and the current session, then persists the record.
func (s *Service) RecordResult(ctx context.Context, result QuestionResult) (*Record, error) {
	rec, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}

	rec.History = append([]QuestionResult{result}, rec.History...)
	if len(rec.History) > MaxHistory {
		rec.History = rec.History[:MaxHistory]
	}

	rec.TotalQuestions++
	if result.IsCorrect {
		rec.TotalCorrect++
		rec.CurrentStreak++
		if rec.CurrentStreak > rec.LongestStreak {
			rec.LongestStreak = rec.CurrentStreak
		}
	} else {
		rec.TotalIncorrect++
		rec.CurrentStreak = 0
	}

	rec.LastPlayedDate = s.now().UTC()
	rec.CurrentDifficultyLevel = result.DifficultyLevel

	if sess := rec.CurrentSession; sess != nil {
		sess.QuestionsAttempted++
		if result.IsCorrect {
			sess.CorrectAnswers++
		} else {
			sess.IncorrectAnswers++
		}
		// Rolling average over the session.
		total := sess.AverageTimePerQuestion*float64(sess.QuestionsAttempted-1) + float64(result.TimeSpentSecs)
		sess.AverageTimePerQuestion = total / float64(sess.QuestionsAttempted)
		sess.EndDifficulty = result.DifficultyLevel
	}

	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("save progress: %w", err)
	}
	return rec, nil
}

// StartSession opens a new session, replacing any unfinished one.
func (s *Service) StartSession(ctx context.Context) (*SessionStats, error) {
	rec, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}

	sess := &SessionStats{
		SessionID:       uuid.NewString(),
		StartTime:       s.now().UTC(),
		StartDifficulty: rec.CurrentDifficultyLevel,
		EndDifficulty:   rec.CurrentDifficultyLevel,
	}
	rec.CurrentSession = sess

	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("save progress: %w", err)
	}
	return sess, nil
}

// EndSession closes the current session and moves it into the bounded
// session history. No-op when no session is open.
func (s *Service) EndSession(ctx context.Context) error {
	rec, err := s.repo.Get(ctx)
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}
	if rec.CurrentSession == nil {
		return nil
	}

	ended := s.now().UTC()
	rec.CurrentSession.EndTime = &ended
	rec.Sessions = append([]SessionStats{*rec.CurrentSession}, rec.Sessions...)
	if len(rec.Sessions) > MaxSessions {
		rec.Sessions = rec.Sessions[:MaxSessions]
	}
	rec.CurrentSession = nil

	if err := s.repo.Save(ctx, rec); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// StatsForRange aggregates history entries with from <= timestamp <= to.
func (s *Service) StatsForRange(ctx context.Context, from, to time.Time) (RangeStats, error) {
	rec, err := s.repo.Get(ctx)
	if err != nil {
		return RangeStats{}, fmt.Errorf("load progress: %w", err)
	}

	var stats RangeStats
	levelSum := 0
	for _, q := range rec.History {
		if q.Timestamp.Before(from) || q.Timestamp.After(to) {
			continue
		}
		stats.TotalQuestions++
		if q.IsCorrect {
			stats.CorrectAnswers++
		}
		levelSum += q.DifficultyLevel
	}
	if stats.TotalQuestions > 0 {
		stats.Accuracy = float64(stats.CorrectAnswers) / float64(stats.TotalQuestions) * 100
		stats.AverageLevel = float64(levelSum) / float64(stats.TotalQuestions)
	} else {
		stats.AverageLevel = 1
	}
	return stats, nil
}

// Reset wipes all progress back to the initial state.
func (s *Service) Reset(ctx context.Context) error {
	if err := s.repo.Save(ctx, NewRecord()); err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	return nil
}
