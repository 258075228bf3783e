package application

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/coinfollow/coinfollow-api/pkg/helpers"
)

// WatchlistCache is the read cache for followed-coins sets. GetCoins reports
// a miss with ok=false; all methods are best-effort from the service's point
// of view.
type WatchlistCache interface {
	GetCoins(ctx context.Context, userID string) ([]string, bool, error)
	SetCoins(ctx context.Context, userID string, coins []string) error
	Invalidate(ctx context.Context, userID string) error
}

// RedisWatchlistCache stores watchlists as JSON arrays under
// user:watchlist:<id> with a TTL bounding staleness.
type RedisWatchlistCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisWatchlistCache(rdb *redis.Client, ttl time.Duration) *RedisWatchlistCache {
	return &RedisWatchlistCache{rdb: rdb, ttl: ttl}
}

func watchlistKey(userID string) string {
	return "user:watchlist:" + userID
}

func (c *RedisWatchlistCache) GetCoins(ctx context.Context, userID string) ([]string, bool, error) {
	var coins []string
	hit, err := helpers.RedisGetJSON(ctx, c.rdb, watchlistKey(userID), &coins)
	if err != nil || !hit {
		return nil, false, err
	}
	return coins, true, nil
}

func (c *RedisWatchlistCache) SetCoins(ctx context.Context, userID string, coins []string) error {
	return helpers.RedisSetJSON(ctx, c.rdb, watchlistKey(userID), coins, c.ttl)
}

func (c *RedisWatchlistCache) Invalidate(ctx context.Context, userID string) error {
	return helpers.RedisDel(ctx, c.rdb, watchlistKey(userID))
}

var _ WatchlistCache = (*RedisWatchlistCache)(nil)
