// Package cache provides a small JSON cache abstraction backed by Redis.
//
// It is used for hot public reads (active professions, city lists) so the
// database is not hit on every page load. Cache failures are never fatal;
// callers fall through to the database.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss indicates the key is not present in the cache.
var ErrMiss = errors.New("cache miss")

// Cache stores JSON-encoded values under string keys with a TTL.
type Cache interface {
	Get(ctx context.Context, key string, dst any) error
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// Redis implements Cache on top of a go-redis client.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis returns a Redis cache. All keys are namespaced under "cache:".
func NewRedis(client *redis.Client) *Redis {
	return &Redis{
		client: client,
		prefix: "cache:",
	}
}

// Get unmarshals the cached value into dst, or returns ErrMiss.
func (r *Redis) Get(ctx context.Context, key string, dst any) error {
	b, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrMiss
	}
	if err != nil {
		return err
	}

	return json.Unmarshal(b, dst)
}

// Set marshals value as JSON and stores it with the given TTL.
func (r *Redis) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, r.prefix+key, b, ttl).Err()
}

// Del removes keys from the cache. Missing keys are not an error.
func (r *Redis) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	fks := make([]string, len(keys))
	for i, k := range keys {
		fks[i] = r.prefix + k
	}

	return r.client.Del(ctx, fks...).Err()
}
