package storage

import (
	"context"
	"sync"

	"modernstore/internal/domain"
)

// MemorySink keeps snapshots in a map. Used for ephemeral runs and tests.
type MemorySink struct {
	mu    sync.Mutex
	slots map[string]domain.Snapshot
}

func NewMemorySink() *MemorySink {
	return &MemorySink{
		slots: make(map[string]domain.Snapshot),
	}
}

func (s *MemorySink) Persist(ctx context.Context, key string, snap domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[key] = snap
	return nil
}

func (s *MemorySink) Load(ctx context.Context, key string) (*domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.slots[key]
	if !ok {
		return nil, nil
	}
	return &snap, nil
}

func (s *MemorySink) Close() error {
	return nil
}
