package planet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache holds planets looked up by id. Implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, id int) (*Planet, bool)
	Set(ctx context.Context, planet *Planet)
}

// RedisCache stores planets as JSON under "planet:{id}".
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisCache {
	return &RedisCache{
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "planet_cache"),
	}
}

func cacheKey(id int) string {
	return fmt.Sprintf("planet:%d", id)
}

// Get treats every Redis failure as a miss so the database stays authoritative.
func (c *RedisCache) Get(ctx context.Context, id int) (*Planet, bool) {
	data, err := c.client.Get(ctx, cacheKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("Failed to read planet from cache", "planet_id", id, "error", err)
		}
		return nil, false
	}

	var planet Planet
	if err := json.Unmarshal(data, &planet); err != nil {
		c.logger.Warn("Discarding undecodable cache entry", "planet_id", id, "error", err)
		return nil, false
	}

	return &planet, true
}

func (c *RedisCache) Set(ctx context.Context, planet *Planet) {
	data, err := json.Marshal(planet)
	if err != nil {
		c.logger.Warn("Failed to encode planet for cache", "planet_id", planet.ID, "error", err)
		return
	}

	if err := c.client.Set(ctx, cacheKey(planet.ID), data, c.ttl).Err(); err != nil {
		c.logger.Warn("Failed to write planet to cache", "planet_id", planet.ID, "error", err)
	}
}
