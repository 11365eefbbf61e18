package store

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/osse101/DailyGarden_Go/internal/metrics"
	"github.com/osse101/DailyGarden_Go/internal/worker"
)

const (
	// DefaultSaveTimeout bounds one background save
	DefaultSaveTimeout = 10 * time.Second

	LogMsgSaveFailed  = "Failed to persist key"
	LogMsgSaveDropped = "Save dropped, persistence queue full"
)

// Snapshot is a set of already-serialized values keyed by store key
type Snapshot map[string]string

// Saver writes snapshots through a worker pool without blocking the caller
type Saver struct {
	store   Store
	pool    *worker.Pool
	timeout time.Duration
}

// NewSaver creates a saver that hands writes to pool
func NewSaver(s Store, pool *worker.Pool) *Saver {
	return &Saver{store: s, pool: pool, timeout: DefaultSaveTimeout}
}

// Store returns the underlying store
func (s *Saver) Store() Store {
	return s.store
}

// Save queues the snapshot for writing and reports whether it was accepted.
// Values are written in key order; a failed key is logged and the rest still written.
func (s *Saver) Save(snap Snapshot) bool {
	if len(snap) == 0 {
		return true
	}
	if !s.pool.TryEnqueue(&saveJob{store: s.store, snap: snap, timeout: s.timeout}) {
		metrics.StoreWritesTotal.WithLabelValues(metrics.ResultDropped).Inc()
		slog.Warn(LogMsgSaveDropped, "keys", len(snap))
		return false
	}
	return true
}

// SaveNow writes the snapshot on the calling goroutine
func (s *Saver) SaveNow(ctx context.Context, snap Snapshot) error {
	return writeSnapshot(ctx, s.store, snap)
}

type saveJob struct {
	store   Store
	snap    Snapshot
	timeout time.Duration
}

func (j *saveJob) Process(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()
	return writeSnapshot(ctx, j.store, j.snap)
}

func writeSnapshot(ctx context.Context, s Store, snap Snapshot) error {
	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var firstErr error
	for _, key := range keys {
		start := time.Now()
		err := s.Set(ctx, key, snap[key])
		metrics.StoreWriteDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.StoreWritesTotal.WithLabelValues(metrics.ResultError).Inc()
			slog.Error(LogMsgSaveFailed, "key", key, "error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		metrics.StoreWritesTotal.WithLabelValues(metrics.ResultOK).Inc()
	}
	return firstErr
}
