package leaderboard

import (
	"context"
	"strconv"

	"github.com/go-redis/redis/v8"
)

// BestRankStore persists the best rank each vendor has ever reached. It is an
// injected capability so the display nicety survives restarts and can be
// swapped out in tests.
type BestRankStore interface {
	// Get returns the stored best rank for a vendor, or 0 when none exists.
	Get(ctx context.Context, vendorID string) (int, error)
	Set(ctx context.Context, vendorID string, rank int) error
}

const bestRankKey = "leaderboard:bestrank"

// RedisBestRankStore keeps best ranks in a Redis hash.
type RedisBestRankStore struct {
	Client *redis.Client
}

func (s *RedisBestRankStore) Get(ctx context.Context, vendorID string) (int, error) {
	val, err := s.Client.HGet(ctx, bestRankKey, vendorID).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	rank, err := strconv.Atoi(val)
	if err != nil {
		return 0, nil
	}
	return rank, nil
}

func (s *RedisBestRankStore) Set(ctx context.Context, vendorID string, rank int) error {
	return s.Client.HSet(ctx, bestRankKey, vendorID, rank).Err()
}
