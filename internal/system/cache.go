package system

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"stellarforge/internal/planet"
	"stellarforge/internal/shared/redis"
	"stellarforge/internal/stats"
)

// GenerationResult bundles everything one generate call produces: it is
// the unit cached in Redis and returned from the service, keyed by seed so
// a repeat request for the same seed skips both the accretion run and the
// database round trip.
type GenerationResult struct {
	System  System          `json:"system"`
	Planets []planet.Planet `json:"planets"`
	Stats   stats.Stats     `json:"stats"`
}

// Cache wraps the shared Redis client with the key convention and TTL for
// cached generation results. A nil client (Redis disabled) makes every
// method a no-op miss, so callers never need a feature flag of their own.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *Cache {
	return &Cache{client: client, ttl: ttl, logger: logger}
}

func cacheKey(seed uint64) string {
	return fmt.Sprintf("stellarforge:system:%d", seed)
}

// Get returns a cached result for seed, or ok=false on a cache miss or
// when Redis is disabled.
func (c *Cache) Get(ctx context.Context, seed uint64) (*GenerationResult, bool) {
	if c.client == nil {
		return nil, false
	}

	logger := c.logger.With("component", "system_cache", "operation", "get", "seed", seed)

	raw, err := c.client.Get(ctx, cacheKey(seed)).Result()
	if err != nil {
		logger.Debug("Cache miss", "error", err)
		return nil, false
	}

	var result GenerationResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		logger.Warn("Failed to unmarshal cached system, treating as miss", "error", err)
		return nil, false
	}

	logger.Debug("Cache hit")
	return &result, true
}

// Set stores a generation result under its seed, best-effort: a failure to
// cache never fails the originating request.
func (c *Cache) Set(ctx context.Context, seed uint64, result GenerationResult) {
	if c.client == nil {
		return
	}

	logger := c.logger.With("component", "system_cache", "operation", "set", "seed", seed)

	raw, err := json.Marshal(result)
	if err != nil {
		logger.Warn("Failed to marshal system for caching", "error", err)
		return
	}

	if err := c.client.Set(ctx, cacheKey(seed), raw, c.ttl).Err(); err != nil {
		logger.Warn("Failed to write system to cache", "error", err)
	}
}
