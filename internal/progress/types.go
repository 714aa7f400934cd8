// Package progress tracks a learner's history, streaks, and session
// aggregates behind an injectable repository, keeping the scoring core
// storage-agnostic.
package progress

import "time"

// Bounds on stored history. Oldest entries fall off.
const (
	MaxHistory  = 500
	MaxSessions = 50
)

// AnswerText is the rendered subject/predicate pair for one attempt.
type AnswerText struct {
	Subject   string `json:"subject"`
	Predicate string `json:"predicate"`
}

// QuestionResult records one graded attempt.
type QuestionResult struct {
	ID              string     `json:"id"`
	Timestamp       time.Time  `json:"timestamp"`
	Sentence        string     `json:"sentence"`
	UserAnswer      AnswerText `json:"userAnswer"`
	CorrectAnswer   AnswerText `json:"correctAnswer"`
	IsCorrect       bool       `json:"isCorrect"`
	DifficultyLevel int        `json:"difficultyLevel"`
	TimeSpentSecs   int        `json:"timeSpentSecs"`
}

// SessionStats aggregates one sitting.
type SessionStats struct {
	SessionID              string     `json:"sessionId"`
	StartTime              time.Time  `json:"startTime"`
	EndTime                *time.Time `json:"endTime,omitempty"`
	QuestionsAttempted     int        `json:"questionsAttempted"`
	CorrectAnswers         int        `json:"correctAnswers"`
	IncorrectAnswers       int        `json:"incorrectAnswers"`
	AverageTimePerQuestion float64    `json:"averageTimePerQuestion"`
	StartDifficulty        int        `json:"startDifficulty"`
	EndDifficulty          int        `json:"endDifficulty"`
}

// Record is the complete stored progress state for the single learner.
type Record struct {
	TotalQuestions         int              `json:"totalQuestions"`
	TotalCorrect           int              `json:"totalCorrect"`
	TotalIncorrect         int              `json:"totalIncorrect"`
	CurrentStreak          int              `json:"currentStreak"`
	LongestStreak          int              `json:"longestStreak"`
	CurrentDifficultyLevel int              `json:"currentDifficultyLevel"`
	History                []QuestionResult `json:"history"`  // newest first
	Sessions               []SessionStats   `json:"sessions"` // newest first
	CurrentSession         *SessionStats    `json:"currentSession,omitempty"`
	LastPlayedDate         time.Time        `json:"lastPlayedDate"`
}

// NewRecord returns the initial progress state for a fresh learner.
func NewRecord() *Record {
	return &Record{
		CurrentDifficultyLevel: 1,
		LastPlayedDate:         time.Now().UTC(),
	}
}

// RangeStats holds aggregates over a date range of history entries.
type RangeStats struct {
	TotalQuestions int
	CorrectAnswers int
	Accuracy       float64 // percent
	AverageLevel   float64
}
