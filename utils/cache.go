// File: utils/cache.go
package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"scheduler/config"
	"scheduler/models"

	"github.com/go-redis/redis/v8"
)

// Entries are keyed by target date plus a generation stamp read before the store
// query. Invalidation bumps the generation, so a list that raced a create writes
// its snapshot under a stamp no later reader will ask for.
const (
	listCachePrefix = "booking:list:"
	listEntryPrefix = listCachePrefix + "entry:"
	listGenPrefix   = listCachePrefix + "gen:"
	listEpochKey    = listCachePrefix + "epoch"
)

// NewRedisClient connects to the configured Redis and verifies it with a ping.
func NewRedisClient(ctx context.Context, cfg config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis (Cache): %w", err)
	}
	return client, nil
}

// RedisListCache caches list responses keyed by the requested target date.
type RedisListCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisListCache(client *redis.Client, ttl time.Duration) *RedisListCache {
	return &RedisListCache{client: client, ttl: ttl}
}

func listEntryKey(date, gen string) string {
	return listEntryPrefix + date + ":" + gen
}

func counterValue(v interface{}) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return "0"
}

// Generation returns the current stamp for date: the global epoch and the per-date counter.
func (c *RedisListCache) Generation(ctx context.Context, date string) (string, error) {
	vals, err := c.client.MGet(ctx, listEpochKey, listGenPrefix+date).Result()
	if err != nil {
		return "", err
	}
	return counterValue(vals[0]) + "." + counterValue(vals[1]), nil
}

// Get returns the mapping cached for date under gen; ok is false on a miss.
func (c *RedisListCache) Get(ctx context.Context, date, gen string) (models.ReservationMap, bool, error) {
	raw, err := c.client.Get(ctx, listEntryKey(date, gen)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var m models.ReservationMap
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, false, fmt.Errorf("corrupt list cache entry for %s: %w", date, err)
	}
	return m, true, nil
}

func (c *RedisListCache) Set(ctx context.Context, date, gen string, m models.ReservationMap) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, listEntryKey(date, gen), raw, c.ttl).Err()
}

// Invalidate bumps the generation of each target date.
func (c *RedisListCache) Invalidate(ctx context.Context, dates ...string) error {
	if len(dates) == 0 {
		return nil
	}
	pipe := c.client.TxPipeline()
	for _, d := range dates {
		pipe.Incr(ctx, listGenPrefix+d)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// InvalidateAll bumps the global epoch, then drops every cached entry.
func (c *RedisListCache) InvalidateAll(ctx context.Context) error {
	if err := c.client.Incr(ctx, listEpochKey).Err(); err != nil {
		return err
	}
	iter := c.client.Scan(ctx, 0, listEntryPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
