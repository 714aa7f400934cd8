package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/devika/grammaroll/ent"
	"github.com/devika/grammaroll/ent/snapshot"
)

// snapshotRepo implements SnapshotRepo on the ent client. Snapshots share
// the global sequence with events so replay tooling can order them together.
type snapshotRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *snapshotRepo) Save(ctx context.Context, data SnapshotData) (*Snapshot, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return nil, fmt.Errorf("next sequence: %w", err)
	}

	payload, err := encodeSnapshotData(data)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	now := time.Now()
	row, err := r.client.Snapshot.Create().
		SetSequence(seqNum).
		SetTimestamp(now).
		SetData(payload).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save snapshot: %w", err)
	}

	return &Snapshot{ID: row.ID, Sequence: seqNum, Timestamp: now, Data: data}, nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	row, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}

	data, err := decodeSnapshotData(row.Data)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		ID:        row.ID,
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
		Data:      data,
	}, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	if keep < 1 {
		keep = 1
	}

	// Sequence of the Nth most recent snapshot; everything at or below
	// the next older one goes.
	boundary, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldSequence)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query prune boundary: %w", err)
	}
	if len(boundary) == 0 {
		return nil
	}

	_, err = r.client.Snapshot.Delete().
		Where(snapshot.SequenceLTE(boundary[0].Sequence)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// encodeSnapshotData round-trips through JSON so the ent JSON column sees a
// plain map rather than our typed struct.
func encodeSnapshotData(data SnapshotData) (map[string]any, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeSnapshotData(raw map[string]any) (SnapshotData, error) {
	var data SnapshotData
	b, err := json.Marshal(raw)
	if err != nil {
		return data, fmt.Errorf("marshal snapshot column: %w", err)
	}
	if err := json.Unmarshal(b, &data); err != nil {
		return data, fmt.Errorf("decode snapshot data: %w", err)
	}
	return data, nil
}
