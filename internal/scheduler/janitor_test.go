package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/marksd/marks/internal/domain"
	"github.com/marksd/marks/internal/store"
)

type fakeRanking struct {
	entries []uint64
	removed []uint64
	err     error
}

func (f *fakeRanking) Entries(_ context.Context) ([]uint64, error) {
	return f.entries, f.err
}

func (f *fakeRanking) Remove(_ context.Context, ids []uint64) error {
	f.removed = append(f.removed, ids...)
	return nil
}

func TestJanitorRemovesStaleEntries(t *testing.T) {
	st := store.New(domain.DefaultMatcher())
	kept, err := st.Add("Kept", "http://kept.example.com", "")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	ranking := &fakeRanking{entries: []uint64{kept.ID, 98, 99}}
	j := NewJanitor(st, ranking, testLogger(), time.Hour)

	if err := j.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(ranking.removed) != 2 {
		t.Fatalf("Run() removed %d entries, want 2", len(ranking.removed))
	}
	for _, id := range ranking.removed {
		if id == kept.ID {
			t.Errorf("Run() removed a live bookmark id %d", id)
		}
	}
}

func TestJanitorNoStaleEntries(t *testing.T) {
	st := store.New(domain.DefaultMatcher())
	b, err := st.Add("Kept", "http://kept.example.com", "")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	ranking := &fakeRanking{entries: []uint64{b.ID}}
	j := NewJanitor(st, ranking, testLogger(), time.Hour)

	if err := j.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(ranking.removed) != 0 {
		t.Errorf("Run() removed %v, want nothing", ranking.removed)
	}
}

func TestJanitorPropagatesEntriesError(t *testing.T) {
	st := store.New(domain.DefaultMatcher())
	ranking := &fakeRanking{err: context.DeadlineExceeded}
	j := NewJanitor(st, ranking, testLogger(), time.Hour)

	if err := j.Run(context.Background()); err == nil {
		t.Error("Run() should propagate the ranking error")
	}
}
