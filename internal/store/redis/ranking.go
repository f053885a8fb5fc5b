// Package redis keeps the visit ranking in a Redis sorted set.
//
// Ranking is an optional feature: the rest of the system works without
// Redis, it just loses the most-visited view across restarts.
package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// Store handles Redis operations for the visit ranking.
type Store struct {
	client *redis.Client
}

// NewStore creates a new ranking store.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// VisitCount pairs a bookmark ID with its accumulated visit count.
type VisitCount struct {
	ID     uint64
	Visits int64
}

// RecordVisit increments the visit score for a bookmark and returns the
// new count.
func (s *Store) RecordVisit(ctx context.Context, id uint64) (int64, error) {
	score, err := s.client.ZIncrBy(ctx, KeyRanking, 1, member(id)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to record visit: %w", err)
	}
	return int64(score), nil
}

// TopVisited returns up to limit bookmarks ordered by visit count,
// most visited first.
func (s *Store) TopVisited(ctx context.Context, limit int) ([]VisitCount, error) {
	if limit <= 0 {
		return []VisitCount{}, nil
	}
	entries, err := s.client.ZRevRangeWithScores(ctx, KeyRanking, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read ranking: %w", err)
	}

	top := make([]VisitCount, 0, len(entries))
	for _, entry := range entries {
		raw, ok := entry.Member.(string)
		if !ok {
			continue
		}
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			// Foreign member in the set, skip it
			continue
		}
		top = append(top, VisitCount{ID: id, Visits: int64(entry.Score)})
	}
	return top, nil
}

// Entries returns every bookmark ID present in the ranking set.
func (s *Store) Entries(ctx context.Context) ([]uint64, error) {
	members, err := s.client.ZRange(ctx, KeyRanking, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list ranking entries: %w", err)
	}

	ids := make([]uint64, 0, len(members))
	for _, raw := range members {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Remove drops the given bookmark IDs from the ranking.
func (s *Store) Remove(ctx context.Context, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}
	members := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		members = append(members, member(id))
	}
	if err := s.client.ZRem(ctx, KeyRanking, members...).Err(); err != nil {
		return fmt.Errorf("failed to remove ranking entries: %w", err)
	}
	return nil
}

func member(id uint64) string {
	return strconv.FormatUint(id, 10)
}
