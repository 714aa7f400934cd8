package store

import (
	"context"
	"fmt"

	"github.com/devika/grammaroll/internal/difficulty"
	"github.com/devika/grammaroll/internal/progress"
)

const (
	// snapshotVersion tags the SnapshotData layout for future migrations.
	snapshotVersion = 1

	// snapshotKeep bounds how many snapshots survive a prune. Events are
	// the source of truth; old snapshots are only replay shortcuts.
	snapshotKeep = 10
)

// StateRepo persists learner state (progress record plus difficulty
// engine state) as snapshots. It implements progress.Repo; difficulty
// state rides along in the same snapshot so both are saved atomically.
type StateRepo struct {
	snaps SnapshotRepo
}

// StateRepo returns the snapshot-backed learner state repository.
func (s *Store) StateRepo() *StateRepo {
	return &StateRepo{snaps: s.SnapshotRepo()}
}

var _ progress.Repo = (*StateRepo)(nil)

// Get returns the progress record from the latest snapshot, or a fresh
// record when no snapshot exists yet.
func (r *StateRepo) Get(ctx context.Context) (*progress.Record, error) {
	snap, err := r.snaps.Latest(ctx)
	if err != nil {
		return nil, err
	}
	if snap == nil || snap.Data.Progress == nil {
		return progress.NewRecord(), nil
	}
	return snap.Data.Progress, nil
}

// Save writes a new snapshot with rec, carrying forward the stored
// difficulty state, then prunes old snapshots.
func (r *StateRepo) Save(ctx context.Context, rec *progress.Record) error {
	prev, err := r.snaps.Latest(ctx)
	if err != nil {
		return err
	}

	data := SnapshotData{Version: snapshotVersion, Progress: rec}
	if prev != nil {
		data.Difficulty = prev.Data.Difficulty
	}
	return r.write(ctx, data)
}

// Difficulty returns the stored difficulty engine state, or nil when no
// snapshot holds one.
func (r *StateRepo) Difficulty(ctx context.Context) (*difficulty.State, error) {
	snap, err := r.snaps.Latest(ctx)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, nil
	}
	return snap.Data.Difficulty, nil
}

// SaveAll writes progress and difficulty state in a single snapshot.
func (r *StateRepo) SaveAll(ctx context.Context, rec *progress.Record, state *difficulty.State) error {
	return r.write(ctx, SnapshotData{
		Version:    snapshotVersion,
		Progress:   rec,
		Difficulty: state,
	})
}

func (r *StateRepo) write(ctx context.Context, data SnapshotData) error {
	if _, err := r.snaps.Save(ctx, data); err != nil {
		return err
	}
	if err := r.snaps.Prune(ctx, snapshotKeep); err != nil {
		return fmt.Errorf("prune after save: %w", err)
	}
	return nil
}
