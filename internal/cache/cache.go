// Package cache is an optional Redis-backed byte cache for serialized
// analysis reports, keyed by service domain. It is strictly best-effort:
// every error degrades to a miss and the pipeline proceeds without it.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "policyscope:report:"

// Cache stores serialized reports with a fixed TTL.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// New connects to Redis and verifies the connection.
func New(ctx context.Context, addr string, ttl time.Duration, log *zap.Logger) (*Cache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Cache{client: client, ttl: ttl, log: log}, nil
}

// Close releases the Redis connection.
func (c *Cache) Close() error {
	return c.client.Close()
}

// Get returns the cached bytes for a domain, or nil on a miss. Errors other
// than a plain miss are logged and reported as misses.
func (c *Cache) Get(ctx context.Context, domain string) []byte {
	data, err := c.client.Get(ctx, keyPrefix+domain).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("cache get failed", zap.String("domain", domain), zap.Error(err))
		}
		return nil
	}
	return data
}

// Set stores bytes for a domain with the configured TTL. Failures are
// logged and swallowed.
func (c *Cache) Set(ctx context.Context, domain string, data []byte) {
	if err := c.client.Set(ctx, keyPrefix+domain, data, c.ttl).Err(); err != nil {
		c.log.Warn("cache set failed", zap.String("domain", domain), zap.Error(err))
	}
}
