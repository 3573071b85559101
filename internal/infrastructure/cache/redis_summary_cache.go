package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSummaryCache implements port.SummaryCache against Redis. A cache miss
// and a Redis outage look the same to the caller: not found.
type RedisSummaryCache struct {
	client *redis.Client
}

// NewRedisSummaryCache connects a cache to the given Redis address.
func NewRedisSummaryCache(addr string) *RedisSummaryCache {
	return &RedisSummaryCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// Get returns the cached value for key and whether it was present.
func (c *RedisSummaryCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores value under key with the given TTL.
func (c *RedisSummaryCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Close releases the underlying client.
func (c *RedisSummaryCache) Close() error {
	return c.client.Close()
}
