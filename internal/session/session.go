// Package session runs one interactive practice sitting: it picks
// exercises at the learner's level, grades submissions, feeds the
// difficulty engine and progress tracker, and appends domain events.
package session

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/devika/grammaroll/internal/bank"
	"github.com/devika/grammaroll/internal/diagram"
	"github.com/devika/grammaroll/internal/difficulty"
	"github.com/devika/grammaroll/internal/progress"
	"github.com/devika/grammaroll/internal/store"
)

// Service coordinates one practice session. Not safe for concurrent
// use; the TUI drives it from a single goroutine.
type Service struct {
	engine   *difficulty.Engine
	progress *progress.Service
	events   store.EventRepo // nil disables event logging

	pickSentence func(bank.Level) bank.Sentence
	pickExercise func(level int) (diagram.Exercise, bool)
	now          func() time.Time

	sessionID     string
	startLevel    int
	served        int
	correct       int
	startedAt     time.Time
	questionStart time.Time

	lastSentenceID string
	lastExerciseID string
}

// NewService wires a session over the difficulty engine, progress
// tracker, and optional event repository.
func NewService(engine *difficulty.Engine, prog *progress.Service, events store.EventRepo) *Service {
	return &Service{
		engine:       engine,
		progress:     prog,
		events:       events,
		pickSentence: bank.Random,
		pickExercise: randomExercise,
		now:          time.Now,
	}
}

// randomExercise picks a random diagram exercise at the given bank
// level, falling back to the whole set when the level is empty.
func randomExercise(level int) (diagram.Exercise, bool) {
	pool := diagram.ExercisesByLevel(level)
	if len(pool) == 0 {
		pool = diagram.Exercises()
	}
	if len(pool) == 0 {
		return diagram.Exercise{}, false
	}
	return pool[rand.IntN(len(pool))], true
}

// Start opens the session: one progress session plus a "started" event.
func (s *Service) Start(ctx context.Context) error {
	sess, err := s.progress.StartSession(ctx)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	s.sessionID = sess.SessionID
	s.startLevel = s.engine.CurrentLevel()
	s.served = 0
	s.correct = 0
	s.startedAt = s.now()

	if s.events != nil {
		err := s.events.AppendSession(ctx, store.SessionEventData{
			SessionID:  s.sessionID,
			Action:     "started",
			StartLevel: s.startLevel,
		})
		if err != nil {
			return fmt.Errorf("log session start: %w", err)
		}
	}
	return nil
}

// End closes the session and records the rollup event.
func (s *Service) End(ctx context.Context) error {
	if err := s.progress.EndSession(ctx); err != nil {
		return fmt.Errorf("end session: %w", err)
	}

	if s.events != nil && s.sessionID != "" {
		err := s.events.AppendSession(ctx, store.SessionEventData{
			SessionID:       s.sessionID,
			Action:          "ended",
			QuestionsServed: s.served,
			CorrectAnswers:  s.correct,
			DurationSecs:    int(s.now().Sub(s.startedAt).Seconds()),
			StartLevel:      s.startLevel,
			EndLevel:        s.engine.CurrentLevel(),
		})
		if err != nil {
			return fmt.Errorf("log session end: %w", err)
		}
	}

	s.sessionID = ""
	return nil
}

// SessionID returns the active session's identifier, or "" when no
// session is open.
func (s *Service) SessionID() string {
	return s.sessionID
}

// Level returns the difficulty engine's current level.
func (s *Service) Level() int {
	return s.engine.CurrentLevel()
}

// StartLevel returns the level the current session opened at.
func (s *Service) StartLevel() int {
	return s.startLevel
}

// SetLevel applies a manual level override and records it as a level
// event with a "manual" trigger.
func (s *Service) SetLevel(ctx context.Context, level int) error {
	from := s.engine.CurrentLevel()
	s.engine.SetLevel(level)
	to := s.engine.CurrentLevel()

	if s.events != nil && from != to {
		err := s.events.AppendLevelChange(ctx, store.LevelEventData{
			SessionID: s.sessionID,
			FromLevel: from,
			ToLevel:   to,
			Trigger:   "manual",
		})
		if err != nil {
			return fmt.Errorf("log level change: %w", err)
		}
	}
	return nil
}

// Encouragement surfaces the difficulty engine's canned message for
// the current window.
func (s *Service) Encouragement() string {
	return s.engine.EncouragementMessage()
}
