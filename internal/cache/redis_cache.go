package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/pod-storefront/internal/config"
	"github.com/redis/go-redis/v9"
)

// redisCache stores JSON values. The client is shared with the cart store,
// event store and rate limiter, so Close leaves it open.
type redisCache struct {
	client    *redis.Client
	ttl       time.Duration
	namespace string
}

func NewRedisCache(client *redis.Client, cfg *config.CacheConfig) Cache {
	return &redisCache{
		client:    client,
		ttl:       cfg.DefaultTTL,
		namespace: cfg.KeyPrefix,
	}
}

func (r *redisCache) key(key string) string {
	if r.namespace == "" {
		return key
	}

	return r.namespace + ":" + key
}

func (r *redisCache) Get(ctx context.Context, key string, value any) (bool, error) {
	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed to get key %s from redis: %w", key, err)
	}

	if err := json.Unmarshal(data, value); err != nil {
		return false, fmt.Errorf("failed to decode cached value for key %s: %w", key, err)
	}

	return true, nil
}

// Set falls back to the configured default when ttl is not positive.
func (r *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value for key %s: %w", key, err)
	}

	if ttl <= 0 {
		ttl = r.ttl
	}

	if err := r.client.Set(ctx, r.key(key), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set key %s in redis: %w", key, err)
	}

	return nil
}

func (r *redisCache) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s from redis: %w", key, err)
	}

	return nil
}

func (r *redisCache) Close() error {
	return nil
}
