package scheduler

import (
	"context"
	"time"

	"github.com/marksd/marks/internal/logger"
	"github.com/marksd/marks/internal/store"
)

// RankingStore is the slice of the Redis store the janitor needs.
type RankingStore interface {
	Entries(ctx context.Context) ([]uint64, error)
	Remove(ctx context.Context, ids []uint64) error
}

// Janitor periodically removes ranking entries whose bookmarks no longer
// exist, so deleted bookmarks do not linger in the most-visited view.
type Janitor struct {
	store    *store.BookmarkStore
	ranking  RankingStore
	logger   logger.Logger
	interval time.Duration
	stopCh   chan struct{}
}

// NewJanitor creates a new janitor.
func NewJanitor(
	st *store.BookmarkStore,
	ranking RankingStore,
	log logger.Logger,
	interval time.Duration,
) *Janitor {
	return &Janitor{
		store:    st,
		ranking:  ranking,
		logger:   log,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic cleanup.
func (j *Janitor) Start(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := j.Run(ctx); err != nil {
					j.logger.Error("ranking cleanup failed",
						logger.Error(err))
				}
			case <-j.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the janitor.
func (j *Janitor) Stop() {
	close(j.stopCh)
}

// Run removes stale ranking entries once.
func (j *Janitor) Run(ctx context.Context) error {
	ids, err := j.ranking.Entries(ctx)
	if err != nil {
		return err
	}

	var stale []uint64
	for _, id := range ids {
		if _, ok := j.store.Get(id); !ok {
			stale = append(stale, id)
		}
	}

	if len(stale) == 0 {
		j.logger.Debug("ranking cleanup: nothing to remove")
		return nil
	}

	if err := j.ranking.Remove(ctx, stale); err != nil {
		return err
	}

	j.logger.Info("removed stale ranking entries",
		logger.Int("count", len(stale)))

	return nil
}
