package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/devika/grammaroll/internal/bank"
	"github.com/devika/grammaroll/internal/diagram"
	"github.com/devika/grammaroll/internal/difficulty"
	"github.com/devika/grammaroll/internal/grading"
	"github.com/devika/grammaroll/internal/progress"
	"github.com/devika/grammaroll/internal/store"
)

// Outcome is everything the UI needs to show after one submission.
type Outcome struct {
	Correct         bool
	Adjustment      difficulty.Adjustment
	Streak          int
	StreakMilestone bool
	Encouragement   string
}

// SelectionOutcome pairs the grading response with the session outcome.
type SelectionOutcome struct {
	Outcome
	Grade grading.Response
}

// DiagramOutcome pairs the diagram validation result with the session
// outcome.
type DiagramOutcome struct {
	Outcome
	Result diagram.Result
}

// NextSentence serves a sentence at the learner's level, avoiding an
// immediate repeat of the previous one when the pool allows it.
func (s *Service) NextSentence() bank.Sentence {
	level := bank.ClampLevel(s.engine.CurrentLevel())
	sent := s.pickSentence(level)
	if sent.ID == s.lastSentenceID && len(bank.ByLevel(level)) > 1 {
		sent = s.pickSentence(level)
	}
	s.lastSentenceID = sent.ID
	s.questionStart = s.now()
	return sent
}

// NextExercise serves a diagram exercise at the learner's level.
func (s *Service) NextExercise() (diagram.Exercise, bool) {
	level := int(bank.ClampLevel(s.engine.CurrentLevel()))
	ex, ok := s.pickExercise(level)
	if !ok {
		return diagram.Exercise{}, false
	}
	if ex.ID == s.lastExerciseID && len(diagram.ExercisesByLevel(level)) > 1 {
		if again, ok2 := s.pickExercise(level); ok2 {
			ex = again
		}
	}
	s.lastExerciseID = ex.ID
	s.questionStart = s.now()
	return ex, true
}

// SubmitSelection grades a subject/predicate selection and folds the
// outcome into difficulty, progress, and the event log.
func (s *Service) SubmitSelection(ctx context.Context, sent bank.Sentence, sel grading.Selection) (*SelectionOutcome, error) {
	grade := grading.Grade(grading.Request{SentenceID: sent.ID, Student: sel}, sent)
	elapsed := s.now().Sub(s.questionStart)
	levelBefore := s.engine.CurrentLevel()

	result := progress.QuestionResult{
		ID:        uuid.NewString(),
		Timestamp: s.now().UTC(),
		Sentence:  sent.Text,
		UserAnswer: progress.AnswerText{
			Subject:   sent.SpanText(sel.CompleteSubject),
			Predicate: sent.SpanText(sel.CompletePredicate),
		},
		CorrectAnswer: progress.AnswerText{
			Subject:   grade.PrettySplit.Subject,
			Predicate: grade.PrettySplit.Predicate,
		},
		IsCorrect:       grade.IsCorrect,
		DifficultyLevel: levelBefore,
		TimeSpentSecs:   int(elapsed.Seconds()),
	}

	outcome, err := s.applyResult(ctx, result, store.AttemptEventData{
		SessionID:      s.sessionID,
		Mode:           store.ModeSelect,
		ExerciseID:     sent.ID,
		Sentence:       sent.Text,
		SubjectScore:   grade.Correctness.CompleteSubject,
		PredicateScore: grade.Correctness.CompletePredicate,
		Correct:        grade.IsCorrect,
		TimeMs:         int(elapsed.Milliseconds()),
		Level:          levelBefore,
	})
	if err != nil {
		return nil, err
	}
	return &SelectionOutcome{Outcome: *outcome, Grade: grade}, nil
}

// SubmitDiagram validates a set of diagram placements and folds the
// outcome into difficulty, progress, and the event log.
func (s *Service) SubmitDiagram(ctx context.Context, ex diagram.Exercise, placements []diagram.Placement) (*DiagramOutcome, error) {
	res := diagram.Validate(placements, ex.Answer, ex.AcceptedVariants, diagram.Options{
		Tokens: ex.Tokens,
		Roles:  ex.Roles,
	})
	elapsed := s.now().Sub(s.questionStart)
	levelBefore := s.engine.CurrentLevel()

	result := progress.QuestionResult{
		ID:              uuid.NewString(),
		Timestamp:       s.now().UTC(),
		Sentence:        ex.Sentence,
		IsCorrect:       res.Correct,
		DifficultyLevel: levelBefore,
		TimeSpentSecs:   int(elapsed.Seconds()),
	}

	outcome, err := s.applyResult(ctx, result, store.AttemptEventData{
		SessionID:  s.sessionID,
		Mode:       store.ModeDiagram,
		ExerciseID: ex.ID,
		Sentence:   ex.Sentence,
		Correct:    res.Correct,
		TimeMs:     int(elapsed.Milliseconds()),
		Level:      levelBefore,
	})
	if err != nil {
		return nil, err
	}
	return &DiagramOutcome{Outcome: *outcome, Result: res}, nil
}

// applyResult is the shared back half of a submission: difficulty
// adjustment, progress bookkeeping, event logging, and streak checks.
func (s *Service) applyResult(ctx context.Context, result progress.QuestionResult, attempt store.AttemptEventData) (*Outcome, error) {
	adj := s.engine.RecordAnswer(result.IsCorrect)

	s.served++
	if result.IsCorrect {
		s.correct++
	}

	rec, err := s.progress.RecordResult(ctx, result)
	if err != nil {
		return nil, fmt.Errorf("record result: %w", err)
	}

	if s.events != nil {
		if err := s.events.AppendAttempt(ctx, attempt); err != nil {
			return nil, fmt.Errorf("log attempt: %w", err)
		}
		if adj.LevelChanged {
			err := s.events.AppendLevelChange(ctx, store.LevelEventData{
				SessionID: s.sessionID,
				FromLevel: result.DifficultyLevel,
				ToLevel:   adj.NewLevel,
				Trigger:   "adaptive",
			})
			if err != nil {
				return nil, fmt.Errorf("log level change: %w", err)
			}
		}
	}

	return &Outcome{
		Correct:         result.IsCorrect,
		Adjustment:      adj,
		Streak:          rec.CurrentStreak,
		StreakMilestone: result.IsCorrect && progress.IsStreakMilestone(rec.CurrentStreak),
		Encouragement:   s.engine.EncouragementMessage(),
	}, nil
}
