package progress

import (
	"context"
	"encoding/json"
	"fmt"
)

// MemoryRepo is an in-memory Repo for tests and ephemeral runs. It
// round-trips through JSON so callers can't alias stored state.
type MemoryRepo struct {
	data []byte
}

// NewMemoryRepo creates an empty in-memory repository.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (m *MemoryRepo) Get(_ context.Context) (*Record, error) {
	if m.data == nil {
		return NewRecord(), nil
	}
	var rec Record
	if err := json.Unmarshal(m.data, &rec); err != nil {
		return nil, fmt.Errorf("decode progress record: %w", err)
	}
	return &rec, nil
}

func (m *MemoryRepo) Save(_ context.Context, rec *Record) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode progress record: %w", err)
	}
	m.data = b
	return nil
}
