package store

import (
	"context"
	"time"

	"github.com/devika/grammaroll/internal/difficulty"
	"github.com/devika/grammaroll/internal/progress"
)

// Attempt modes.
const (
	ModeSelect  = "select"
	ModeDiagram = "diagram"
)

// AttemptEventData captures one graded exercise attempt.
type AttemptEventData struct {
	SessionID      string
	Mode           string // select or diagram
	ExerciseID     string
	Sentence       string
	SubjectScore   float64
	PredicateScore float64
	Correct        bool
	TimeMs         int
	Level          int
}

// SessionEventData captures a session boundary.
type SessionEventData struct {
	SessionID       string
	Action          string // started or ended
	QuestionsServed int
	CorrectAnswers  int
	DurationSecs    int
	StartLevel      int
	EndLevel        int
}

// LevelEventData captures one difficulty transition.
type LevelEventData struct {
	SessionID string
	FromLevel int
	ToLevel   int
	Trigger   string // adaptive or manual
}

// LLMRequestEventData captures one LLM API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestRecord is one stored LLM call, as returned by queries.
type LLMRequestRecord struct {
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// AttemptSummary aggregates attempt events for the stats view.
type AttemptSummary struct {
	Total    int
	Correct  int
	Accuracy float64
	ByMode   map[string]int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	AppendAttempt(ctx context.Context, data AttemptEventData) error
	AppendSession(ctx context.Context, data SessionEventData) error
	AppendLevelChange(ctx context.Context, data LevelEventData) error
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AttemptSummarySince aggregates attempts with timestamp >= from.
	AttemptSummarySince(ctx context.Context, from time.Time) (AttemptSummary, error)

	// RecentLLMRequests returns the newest LLM call records, newest
	// first. A non-positive limit defaults to 20.
	RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestRecord, error)

	// LatestAttemptTime returns the timestamp of the most recent
	// attempt, or the zero time when none exist.
	LatestAttemptTime(ctx context.Context) (time.Time, error)
}

// SnapshotData is the full learner state captured in one snapshot.
type SnapshotData struct {
	Version    int               `json:"version"`
	Progress   *progress.Record  `json:"progress,omitempty"`
	Difficulty *difficulty.State `json:"difficulty,omitempty"`
}

// Snapshot is a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot of data, stamping it with the next
	// global sequence number and the current time.
	Save(ctx context.Context, data SnapshotData) (*Snapshot, error)

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
