package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const leaderboardKey = "finbuddy:leaderboard:xp"

// LeaderboardCache handles Redis ZSET operations for the XP leaderboard
type LeaderboardCache interface {
	UpdateScore(ctx context.Context, sessionID string, xp int) error
	GetTop(ctx context.Context, limit int) ([]LeaderboardEntry, error)
	GetRank(ctx context.Context, sessionID string) (int64, error)
}

// LeaderboardEntry represents a single leaderboard entry
type LeaderboardEntry struct {
	SessionID string
	XP        int
	Rank      int
}

type leaderboardCache struct {
	client *redis.Client
}

// NewLeaderboardCache creates a new leaderboard cache
func NewLeaderboardCache(client *redis.Client) LeaderboardCache {
	return &leaderboardCache{
		client: client,
	}
}

func (c *leaderboardCache) UpdateScore(ctx context.Context, sessionID string, xp int) error {
	return c.client.ZAdd(ctx, leaderboardKey, redis.Z{
		Score:  float64(xp),
		Member: sessionID,
	}).Err()
}

func (c *leaderboardCache) GetTop(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		return []LeaderboardEntry{}, nil
	}
	results, err := c.client.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, len(results))
	for i, z := range results {
		member, _ := z.Member.(string)
		entries[i] = LeaderboardEntry{
			SessionID: member,
			XP:        int(z.Score),
			Rank:      i + 1,
		}
	}
	return entries, nil
}

func (c *leaderboardCache) GetRank(ctx context.Context, sessionID string) (int64, error) {
	rank, err := c.client.ZRevRank(ctx, leaderboardKey, sessionID).Result()
	if err == redis.Nil {
		return -1, nil
	}
	return rank + 1, err // 1-indexed
}

// NoopLeaderboard is used when Redis is not configured
type NoopLeaderboard struct{}

func (NoopLeaderboard) UpdateScore(context.Context, string, int) error { return nil }

func (NoopLeaderboard) GetTop(context.Context, int) ([]LeaderboardEntry, error) {
	return []LeaderboardEntry{}, nil
}

func (NoopLeaderboard) GetRank(context.Context, string) (int64, error) { return -1, nil }
