package bolt

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/marksd/marks/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "marks.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveAndLoadRoundtrip(t *testing.T) {
	s := openTestStore(t)

	now := time.Now().Truncate(time.Second)
	marks := []*domain.Bookmark{
		{ID: 1, Title: "Example", URL: "http://example.com", CreatedAt: now, UpdatedAt: now},
		{ID: 2, Title: "Other", URL: "http://other.com", Description: "second", CreatedAt: now, UpdatedAt: now},
	}
	if err := s.SaveMany(marks); err != nil {
		t.Fatalf("SaveMany() error = %v", err)
	}

	loaded, lastID, err := s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("LoadAll() returned %d records, want 2", len(loaded))
	}
	if lastID != 2 {
		t.Errorf("LoadAll() lastID = %d, want 2", lastID)
	}
	if loaded[0].ID != 1 || loaded[1].ID != 2 {
		t.Errorf("LoadAll() should return records in ID order, got %d, %d", loaded[0].ID, loaded[1].ID)
	}
	if loaded[1].Description != "second" {
		t.Errorf("LoadAll() description = %q, want %q", loaded[1].Description, "second")
	}
}

func TestSaveBookmarkOverwrites(t *testing.T) {
	s := openTestStore(t)

	b := &domain.Bookmark{ID: 1, Title: "Before", URL: "http://example.com"}
	if err := s.SaveBookmark(b); err != nil {
		t.Fatalf("SaveBookmark() error = %v", err)
	}
	b.Title = "After"
	if err := s.SaveBookmark(b); err != nil {
		t.Fatalf("SaveBookmark() error = %v", err)
	}

	loaded, _, err := s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("LoadAll() returned %d records, want 1", len(loaded))
	}
	if loaded[0].Title != "After" {
		t.Errorf("LoadAll() title = %q, want %q", loaded[0].Title, "After")
	}
}

func TestDeleteKeepsHighWaterMark(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveBookmark(&domain.Bookmark{ID: 7, Title: "X", URL: "http://x.example.com"}); err != nil {
		t.Fatalf("SaveBookmark() error = %v", err)
	}
	if err := s.DeleteBookmark(7); err != nil {
		t.Fatalf("DeleteBookmark() error = %v", err)
	}

	loaded, lastID, err := s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("LoadAll() returned %d records after delete, want 0", len(loaded))
	}
	// The mark survives the delete so the ID is never reissued
	if lastID != 7 {
		t.Errorf("LoadAll() lastID = %d, want 7", lastID)
	}
}

func TestDeleteMissingIsNoop(t *testing.T) {
	s := openTestStore(t)

	if err := s.DeleteBookmark(42); err != nil {
		t.Errorf("DeleteBookmark(missing) error = %v, want nil", err)
	}
}

func TestHighWaterMarkNeverDecreases(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveBookmark(&domain.Bookmark{ID: 9, Title: "High", URL: "http://h.example.com"}); err != nil {
		t.Fatalf("SaveBookmark() error = %v", err)
	}
	if err := s.SaveBookmark(&domain.Bookmark{ID: 3, Title: "Low", URL: "http://l.example.com"}); err != nil {
		t.Fatalf("SaveBookmark() error = %v", err)
	}

	_, lastID, err := s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if lastID != 9 {
		t.Errorf("lastID = %d, want 9", lastID)
	}
}
