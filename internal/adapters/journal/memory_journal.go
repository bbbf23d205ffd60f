package journal

import (
	"context"
	"sync"
	"time"

	"github.com/mikey/safe-inbox/internal/core"
	"go.uber.org/zap"
)

// DefaultRecentLimit is used when Recent is called without a positive limit
const DefaultRecentLimit = 50

// MemoryJournal is an in-memory implementation of the AnalysisJournal interface
type MemoryJournal struct {
	entries     []*core.JournalEntry
	mu          sync.RWMutex
	logger      *zap.Logger
	cleanupFreq time.Duration
	stopCh      chan struct{}
	stopOnce    sync.Once
}

// NewMemoryJournal creates a new in-memory journal
func NewMemoryJournal(logger *zap.Logger, cleanupFreq time.Duration) *MemoryJournal {
	j := &MemoryJournal{
		logger:      logger,
		cleanupFreq: cleanupFreq,
		stopCh:      make(chan struct{}),
	}

	go runCleanup(j, cleanupFreq, j.stopCh, logger)

	return j
}

// Record stores an entry
func (j *MemoryJournal) Record(ctx context.Context, entry *core.JournalEntry) error {
	e := *entry

	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, &e)
	return nil
}

// Recent returns up to limit unexpired entries, newest first
func (j *MemoryJournal) Recent(ctx context.Context, limit int) ([]*core.JournalEntry, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	j.mu.RLock()
	defer j.mu.RUnlock()

	now := time.Now()
	out := make([]*core.JournalEntry, 0, limit)
	for i := len(j.entries) - 1; i >= 0 && len(out) < limit; i-- {
		if now.After(j.entries[i].ExpiresAt) {
			continue
		}
		e := *j.entries[i]
		out = append(out, &e)
	}
	return out, nil
}

// Cleanup removes expired entries
func (j *MemoryJournal) Cleanup(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := time.Now()
	kept := j.entries[:0]
	for _, e := range j.entries {
		if !now.After(e.ExpiresAt) {
			kept = append(kept, e)
		}
	}
	expiredCount := len(j.entries) - len(kept)
	for i := len(kept); i < len(j.entries); i++ {
		j.entries[i] = nil
	}
	j.entries = kept

	j.logger.Debug("Cleaned up expired journal entries", zap.Int("expired_count", expiredCount))
	return nil
}

// Stop stops the background cleanup task
func (j *MemoryJournal) Stop() {
	j.stopOnce.Do(func() { close(j.stopCh) })
}

// runCleanup periodically removes expired entries until stopCh is closed
func runCleanup(j core.AnalysisJournal, freq time.Duration, stopCh <-chan struct{}, logger *zap.Logger) {
	if freq <= 0 {
		return
	}
	ticker := time.NewTicker(freq)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := j.Cleanup(context.Background()); err != nil {
				logger.Error("Failed to clean up journal", zap.Error(err))
			}
		case <-stopCh:
			return
		}
	}
}
