package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"car-rental-api/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// AvailabilityCache memoizes the standalone availability read. The answer is
// explicitly allowed to be stale: create never consults the cache, only the
// serialized overlap check. A nil client disables caching entirely.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient returns nil when no address is configured or the server is
// unreachable; callers degrade to uncached reads.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unreachable, availability cache disabled", "addr", cfg.Addr, "error", err.Error())
		return nil
	}
	return client
}

func NewAvailabilityCache(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl}
}

func availabilityKey(carID uuid.UUID, start, end time.Time) string {
	return fmt.Sprintf("availability:%s:%d:%d", carID, start.Unix(), end.Unix())
}

func (c *AvailabilityCache) Get(ctx context.Context, carID uuid.UUID, start, end time.Time) (bool, bool) {
	if c == nil || c.client == nil {
		return false, false
	}

	val, err := c.client.Get(ctx, availabilityKey(carID, start, end)).Result()
	if err != nil {
		return false, false
	}
	return val == "1", true
}

func (c *AvailabilityCache) Set(ctx context.Context, carID uuid.UUID, start, end time.Time, available bool) {
	if c == nil || c.client == nil {
		return
	}

	val := "0"
	if available {
		val = "1"
	}
	if err := c.client.Set(ctx, availabilityKey(carID, start, end), val, c.ttl).Err(); err != nil {
		slog.Warn("failed to cache availability", "car_id", carID, "error", err.Error())
	}
}

// Invalidate drops every cached answer for a car after a booking mutation.
func (c *AvailabilityCache) Invalidate(ctx context.Context, carID uuid.UUID) {
	if c == nil || c.client == nil {
		return
	}

	pattern := fmt.Sprintf("availability:%s:*", carID)
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			slog.Warn("failed to invalidate availability key", "key", iter.Val(), "error", err.Error())
		}
	}
	if err := iter.Err(); err != nil {
		slog.Warn("availability invalidation scan failed", "car_id", carID, "error", err.Error())
	}
}
