// Package bolt persists bookmarks in an embedded bbolt database.
//
// The memory store stays the source of truth at runtime; this adapter
// mirrors its mutations and feeds it back on startup. Alongside the
// records it keeps the highest ID ever issued, so deleted IDs are never
// reassigned across restarts.
package bolt

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	bbolt "go.etcd.io/bbolt"

	"github.com/marksd/marks/internal/domain"
)

var (
	bucketBookmarks = []byte("bookmarks")
	bucketMeta      = []byte("meta")
	keyLastID       = []byte("last_id")
)

// Store wraps a bbolt database holding bookmark records.
type Store struct {
	db *bbolt.DB
}

// Open creates or opens the database file at path.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bookmark db: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketBookmarks); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(bucketMeta)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to init buckets: %w", err)
	}
	return &Store{db: db}, nil
}

// SaveBookmark writes one bookmark and raises the persisted ID high-water
// mark if needed.
func (s *Store) SaveBookmark(b *domain.Bookmark) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to marshal bookmark %d: %w", b.ID, err)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketBookmarks).Put(itob(b.ID), data); err != nil {
			return fmt.Errorf("failed to save bookmark %d: %w", b.ID, err)
		}
		return raiseLastID(tx, b.ID)
	})
}

// SaveMany writes multiple bookmarks in one transaction.
func (s *Store) SaveMany(marks []*domain.Bookmark) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketBookmarks)
		for _, b := range marks {
			data, err := json.Marshal(b)
			if err != nil {
				return fmt.Errorf("failed to marshal bookmark %d: %w", b.ID, err)
			}
			if err := bucket.Put(itob(b.ID), data); err != nil {
				return fmt.Errorf("failed to save bookmark %d: %w", b.ID, err)
			}
			if err := raiseLastID(tx, b.ID); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteBookmark removes a record. The high-water mark is untouched, which
// is what keeps the ID retired forever.
func (s *Store) DeleteBookmark(id uint64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketBookmarks).Delete(itob(id)); err != nil {
			return fmt.Errorf("failed to delete bookmark %d: %w", id, err)
		}
		return nil
	})
}

// LoadAll returns every persisted bookmark in ID order plus the highest ID
// ever issued.
func (s *Store) LoadAll() ([]*domain.Bookmark, uint64, error) {
	var (
		marks  []*domain.Bookmark
		lastID uint64
	)
	err := s.db.View(func(tx *bbolt.Tx) error {
		if raw := tx.Bucket(bucketMeta).Get(keyLastID); raw != nil {
			lastID = binary.BigEndian.Uint64(raw)
		}
		return tx.Bucket(bucketBookmarks).ForEach(func(_, v []byte) error {
			var b domain.Bookmark
			if err := json.Unmarshal(v, &b); err != nil {
				return fmt.Errorf("failed to unmarshal bookmark: %w", err)
			}
			marks = append(marks, &b)
			return nil
		})
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load bookmarks: %w", err)
	}
	return marks, lastID, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func raiseLastID(tx *bbolt.Tx, id uint64) error {
	meta := tx.Bucket(bucketMeta)
	if raw := meta.Get(keyLastID); raw != nil && binary.BigEndian.Uint64(raw) >= id {
		return nil
	}
	if err := meta.Put(keyLastID, itob(id)); err != nil {
		return fmt.Errorf("failed to update id high-water mark: %w", err)
	}
	return nil
}

// itob encodes an ID as a big-endian key so bbolt iterates in ID order.
func itob(id uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], id)
	return buf[:]
}
