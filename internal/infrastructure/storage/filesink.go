package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"modernstore/internal/domain"
	"modernstore/pkg/logger"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

// FileSink persists snapshots as one JSON file per key. Writes are
// throttled: when the limiter denies a write the snapshot is kept pending
// and picked up by the background flush loop, so a burst of mutations
// coalesces into a single file write. Close flushes whatever is pending.
type FileSink struct {
	dir     string
	limiter *rate.Limiter

	mu      sync.Mutex
	pending map[string]domain.Snapshot

	flushPeriod time.Duration
	ctx         context.Context
	cancel      context.CancelFunc
	done        chan struct{}
}

// NewFileSink creates the snapshot directory and starts the flush loop.
// writesPerSec: sustained write rate
// burst: maximum burst of immediate writes
// flushPeriod: how often pending snapshots are retried
func NewFileSink(ctx context.Context, dir string, writesPerSec float64, burst int, flushPeriod time.Duration) (*FileSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot dir: %w", err)
	}

	s := &FileSink{
		dir:         dir,
		limiter:     rate.NewLimiter(rate.Limit(writesPerSec), burst),
		pending:     make(map[string]domain.Snapshot),
		flushPeriod: flushPeriod,
		done:        make(chan struct{}),
	}
	s.ctx, s.cancel = context.WithCancel(ctx)
	go s.flushLoop()
	return s, nil
}

func (s *FileSink) Persist(ctx context.Context, key string, snap domain.Snapshot) error {
	s.mu.Lock()
	s.pending[key] = snap
	allowed := s.limiter.Allow()
	s.mu.Unlock()

	if !allowed {
		// Coalesce: the flush loop or Close writes the latest snapshot.
		return nil
	}
	return s.flushKey(key)
}

func (s *FileSink) Load(ctx context.Context, key string) (*domain.Snapshot, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

// Close stops the flush loop and writes any pending snapshots.
func (s *FileSink) Close() error {
	s.cancel()
	<-s.done
	return s.flushAll()
}

func (s *FileSink) flushLoop() {
	defer close(s.done)

	ticker := time.NewTicker(s.flushPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.flushAll(); err != nil {
				logger.Warn().Err(err).Msg("Snapshot flush failed")
			}
		case <-s.ctx.Done():
			return
		}
	}
}

func (s *FileSink) flushAll() error {
	s.mu.Lock()
	keys := make([]string, 0, len(s.pending))
	for key := range s.pending {
		keys = append(keys, key)
	}
	s.mu.Unlock()

	for _, key := range keys {
		if err := s.flushKey(key); err != nil {
			return err
		}
	}
	return nil
}

func (s *FileSink) flushKey(key string) error {
	s.mu.Lock()
	snap, ok := s.pending[key]
	if ok {
		delete(s.pending, key)
	}
	s.mu.Unlock()

	if !ok {
		return nil
	}

	start := time.Now()
	err := s.write(key, snap)
	logger.SnapshotWrite(key, time.Since(start), err)
	if err != nil {
		// Put the snapshot back unless a newer one arrived meanwhile.
		s.mu.Lock()
		if _, exists := s.pending[key]; !exists {
			s.pending[key] = snap
		}
		s.mu.Unlock()
	}
	return err
}

func (s *FileSink) write(key string, snap domain.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	// Write-then-rename keeps the slot readable if we crash mid-write.
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}

func (s *FileSink) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
