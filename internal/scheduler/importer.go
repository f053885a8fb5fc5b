package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/marksd/marks/internal/domain"
	"github.com/marksd/marks/internal/logger"
	"github.com/marksd/marks/internal/sources/bookmarkfile"
	"github.com/marksd/marks/internal/store"
	boltstore "github.com/marksd/marks/internal/store/bolt"
)

// Importer periodically re-imports a YAML bookmark file into the store.
// Entries are upserted by URL, so a re-import never duplicates bookmarks.
type Importer struct {
	loader        *bookmarkfile.Loader
	store         *store.BookmarkStore
	bolt          *boltstore.Store
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}

	mu         sync.RWMutex
	lastImport time.Time
}

// NewImporter creates an importer for the given bookmark file.
func NewImporter(
	bookmarkFile string,
	st *store.BookmarkStore,
	bolt *boltstore.Store,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *Importer {
	return &Importer{
		loader:        bookmarkfile.NewLoader(bookmarkFile),
		store:         st,
		bolt:          bolt,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start imports once immediately, then keeps re-importing on the configured
// interval and on manual triggers.
func (im *Importer) Start(ctx context.Context) error {
	if err := im.Import(ctx); err != nil {
		return fmt.Errorf("initial bookmark import failed: %w", err)
	}

	ticker := time.NewTicker(im.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := im.Import(ctx); err != nil {
					im.logger.Error("failed to import bookmarks",
						logger.Error(err))
				}
			case <-im.manualTrigger:
				im.logger.Info("manual bookmark import triggered")
				if err := im.Import(ctx); err != nil {
					im.logger.Error("failed to import bookmarks",
						logger.Error(err))
				}
			case <-im.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the importer.
func (im *Importer) Stop() {
	close(im.stopCh)
}

// Import loads the file and upserts every entry into the store.
func (im *Importer) Import(_ context.Context) error {
	im.logger.Info("importing bookmarks from file")

	file, err := im.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load bookmark file: %w", err)
	}

	candidates := bookmarkfile.MapEntries(file)

	var added, updated, unchanged, failed int
	for _, c := range candidates {
		existing, ok := im.store.FindByURL(c.URL)
		if !ok {
			b, err := im.store.Add(c.Title, c.URL, c.Description)
			if err != nil {
				im.logger.Warn("skipping invalid bookmark entry",
					logger.String("title", c.Title),
					logger.String("url", c.URL),
					logger.Error(err))
				failed++
				continue
			}
			im.persist(b)
			added++
			continue
		}

		if existing.Title == c.Title && existing.Description == c.Description {
			unchanged++
			continue
		}

		b, err := im.store.Edit(existing.ID, domain.Patch{
			Title:       &c.Title,
			Description: &c.Description,
		})
		if err != nil {
			im.logger.Warn("failed to update imported bookmark",
				logger.Uint64("id", existing.ID),
				logger.Error(err))
			failed++
			continue
		}
		im.persist(b)
		updated++
	}

	im.mu.Lock()
	im.lastImport = time.Now()
	im.mu.Unlock()

	im.logger.Info("bookmark import finished",
		logger.Int("added", added),
		logger.Int("updated", updated),
		logger.Int("unchanged", unchanged),
		logger.Int("failed", failed))

	return nil
}

// LastImport returns when the last successful import finished.
func (im *Importer) LastImport() time.Time {
	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.lastImport
}

// persist mirrors a mutated record into the durable store (best effort;
// the memory store is the runtime source of truth).
func (im *Importer) persist(b domain.Bookmark) {
	if im.bolt == nil {
		return
	}
	if err := im.bolt.SaveBookmark(&b); err != nil {
		im.logger.Warn("failed to persist imported bookmark",
			logger.Uint64("id", b.ID),
			logger.Error(err))
	}
}
