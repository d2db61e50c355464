// Package stats maintains running counts and incremental averages over
// completed commands. The tracker is the only mutable shared state in the
// engine, so all updates go through its mutex.
package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"hybrid-command-router/internal/model"
)

// StoreKey is the opaque key the tracker persists itself under.
const StoreKey = "statistics"

// Store is the persistence collaborator: opaque key-value get/set.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Tracker accumulates per-command statistics. Safe for concurrent use.
type Tracker struct {
	mu    sync.Mutex
	stats model.ProcessingStatistics
	store Store
}

// NewTracker creates a tracker. store may be nil, in which case Load and
// Save are no-ops.
func NewTracker(store Store) *Tracker {
	return &Tracker{store: store}
}

// Record folds one completed command into the counters and rolling
// averages. Called exactly once per completed command, success path only.
func (t *Tracker) Record(method model.ProcessingMethod, confidence float64, elapsed time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stats.TotalCommands++
	switch method {
	case model.MethodOffline:
		t.stats.OfflineCommands++
	case model.MethodOnDevice:
		t.stats.OnDeviceCommands++
	case model.MethodServer:
		t.stats.ServerCommands++
	case model.MethodHybrid:
		// Hybrid exercised both paths.
		t.stats.OnDeviceCommands++
		t.stats.ServerCommands++
	}

	// Incremental mean: avg += (x - avg) / n.
	n := float64(t.stats.TotalCommands)
	t.stats.AvgProcessingMs += (float64(elapsed.Milliseconds()) - t.stats.AvgProcessingMs) / n
	t.stats.AvgConfidence += (confidence - t.stats.AvgConfidence) / n
}

// Snapshot returns a copy of the current statistics.
func (t *Tracker) Snapshot() model.ProcessingStatistics {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats
}

// Load restores persisted statistics. A missing key is not an error.
func (t *Tracker) Load(ctx context.Context) error {
	if t.store == nil {
		return nil
	}

	raw, err := t.store.Get(ctx, StoreKey)
	if err != nil {
		return fmt.Errorf("failed to load statistics: %w", err)
	}
	if len(raw) == 0 {
		return nil
	}

	var loaded model.ProcessingStatistics
	if err := json.Unmarshal(raw, &loaded); err != nil {
		return fmt.Errorf("failed to decode statistics: %w", err)
	}

	t.mu.Lock()
	t.stats = loaded
	t.mu.Unlock()
	return nil
}

// Save persists the current statistics through the store.
func (t *Tracker) Save(ctx context.Context) error {
	if t.store == nil {
		return nil
	}

	raw, err := json.Marshal(t.Snapshot())
	if err != nil {
		return fmt.Errorf("failed to encode statistics: %w", err)
	}
	if err := t.store.Set(ctx, StoreKey, raw); err != nil {
		return fmt.Errorf("failed to save statistics: %w", err)
	}
	return nil
}
