package store

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/marksd/marks/internal/domain"
)

// BookmarkStore is the in-memory collection of bookmarks and the single
// source of truth at runtime. Persistence adapters feed it on startup and
// mirror its mutations; all reads are answered from memory.
//
// Every operation is a short critical section under one RWMutex; nothing
// here blocks or does I/O.
type BookmarkStore struct {
	mu      sync.RWMutex
	byID    map[uint64]*domain.Bookmark
	order   []uint64 // insertion order, same as ascending ID order
	lastID  uint64   // high-water mark, never decremented
	matcher domain.Matcher
	now     func() time.Time // for testing, defaults to time.Now
}

// New creates an empty store using the given matcher for searches.
func New(matcher domain.Matcher) *BookmarkStore {
	return &BookmarkStore{
		byID:    make(map[uint64]*domain.Bookmark),
		matcher: matcher,
		now:     time.Now,
	}
}

// Restore replaces the store contents with previously persisted bookmarks.
// lastID must be the highest ID ever issued, so that deleted IDs are not
// reassigned after a restart. Records arriving out of order are re-sorted
// by ID, which reproduces insertion order.
func (s *BookmarkStore) Restore(marks []*domain.Bookmark, lastID uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID = make(map[uint64]*domain.Bookmark, len(marks))
	s.order = make([]uint64, 0, len(marks))
	for _, b := range marks {
		copied := *b
		s.byID[copied.ID] = &copied
		s.order = append(s.order, copied.ID)
		if copied.ID > lastID {
			lastID = copied.ID
		}
	}
	slices.Sort(s.order)
	s.lastID = lastID
}

// Add validates title and url, assigns the next ID and stores the record.
// Returns a copy of the stored bookmark.
func (s *BookmarkStore) Add(title, url, description string) (domain.Bookmark, error) {
	if err := domain.ValidateTitle(title); err != nil {
		return domain.Bookmark{}, err
	}
	if err := domain.ValidateURL(url); err != nil {
		return domain.Bookmark{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.lastID++
	b := &domain.Bookmark{
		ID:          s.lastID,
		Title:       strings.TrimSpace(title),
		URL:         strings.TrimSpace(url),
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.byID[b.ID] = b
	s.order = append(s.order, b.ID)
	return *b, nil
}

// Edit applies a partial update. Only non-nil patch fields change; a
// supplied title or url is validated before anything is written, so a
// failed edit leaves the record untouched.
func (s *BookmarkStore) Edit(id uint64, patch domain.Patch) (domain.Bookmark, error) {
	if patch.Title != nil {
		if err := domain.ValidateTitle(*patch.Title); err != nil {
			return domain.Bookmark{}, err
		}
	}
	if patch.URL != nil {
		if err := domain.ValidateURL(*patch.URL); err != nil {
			return domain.Bookmark{}, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.byID[id]
	if !ok {
		return domain.Bookmark{}, fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
	}

	if patch.Title != nil {
		b.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.URL != nil {
		b.URL = strings.TrimSpace(*patch.URL)
	}
	if patch.Description != nil {
		b.Description = strings.TrimSpace(*patch.Description)
	}
	b.UpdatedAt = s.now()
	return *b, nil
}

// Delete removes a bookmark permanently. The ID is never reassigned.
func (s *BookmarkStore) Delete(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return fmt.Errorf("%w: id %d", domain.ErrNotFound, id)
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns a copy of the bookmark with the given ID.
func (s *BookmarkStore) Get(id uint64) (domain.Bookmark, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.byID[id]
	if !ok {
		return domain.Bookmark{}, false
	}
	return *b, true
}

// FindByURL returns the first bookmark with the given URL, in insertion
// order. Used by the file importer to upsert instead of duplicating.
func (s *BookmarkStore) FindByURL(url string) (domain.Bookmark, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		if b := s.byID[id]; b.URL == url {
			return *b, true
		}
	}
	return domain.Bookmark{}, false
}

// Search returns a lazy, restartable sequence of bookmarks matching the
// query, in insertion order. An empty query yields every bookmark. Each
// range over the sequence takes a fresh snapshot, so iteration never holds
// the store lock and mutations between restarts are observed.
func (s *BookmarkStore) Search(query string) iter.Seq[domain.Bookmark] {
	query = strings.TrimSpace(query)
	return func(yield func(domain.Bookmark) bool) {
		for _, b := range s.All() {
			if !s.matcher.Match(b, query) {
				continue
			}
			if !yield(b) {
				return
			}
		}
	}
}

// All returns copies of every bookmark in insertion order.
func (s *BookmarkStore) All() []domain.Bookmark {
	s.mu.RLock()
	defer s.mu.RUnlock()

	marks := make([]domain.Bookmark, 0, len(s.order))
	for _, id := range s.order {
		marks = append(marks, *s.byID[id])
	}
	return marks
}

// Len returns the number of bookmarks currently stored.
func (s *BookmarkStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.byID)
}

// LastID returns the highest ID ever issued.
func (s *BookmarkStore) LastID() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastID
}

// IncrementVisits bumps the visit counter for a bookmark and returns the
// new count. Missing IDs are a no-op.
func (s *BookmarkStore) IncrementVisits(id uint64) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.byID[id]
	if !ok {
		return 0, false
	}
	b.Visits++
	return b.Visits, true
}
