package leaderboard

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/varadarohokale/boxing-arena/internal/boxer"
)

const defaultCacheTTL = 30 * time.Second

// Cache provides Redis-backed standings caching to offload repeated
// leaderboard queries from Postgres.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

var _ EntryCache = (*Cache)(nil)

// NewCache builds a standings cache. Non-positive ttl falls back to the
// default.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Cache{client: client, ttl: ttl, prefix: "standings"}
}

func (c *Cache) key(sortBy string) string {
	return c.prefix + ":" + sortBy
}

// Get returns cached standings, or nil on a miss.
func (c *Cache) Get(ctx context.Context, sortBy string) ([]boxer.LeaderboardEntry, error) {
	data, err := c.client.Get(ctx, c.key(sortBy)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var entries []boxer.LeaderboardEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Set stores standings with the configured TTL.
func (c *Cache) Set(ctx context.Context, sortBy string, entries []boxer.LeaderboardEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(sortBy), data, c.ttl).Err()
}

// Invalidate drops all cached sort orders.
func (c *Cache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key(boxer.SortByWins), c.key(boxer.SortByWinPct)).Err()
}
