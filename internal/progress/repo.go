package progress

import "context"

// Repo loads and stores the learner's progress record. The core never
// touches storage directly; implementations live in internal/store
// (SQLite) and in this package (memory, for tests).
type Repo interface {
	// Get returns the stored record, or a fresh one when none exists.
	Get(ctx context.Context) (*Record, error)

	// Save stores the record, replacing any previous state.
	Save(ctx context.Context, rec *Record) error
}
