package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RedisStore keeps values in Redis. Every write refreshes the key's TTL so
// abandoned sessions expire on their own.
type RedisStore struct {
	rdb    redis.Cmdable
	ttl    time.Duration
	logger zerolog.Logger
}

// NewRedisStore creates a Redis-backed store. A ttl of zero disables expiry.
func NewRedisStore(rdb redis.Cmdable, ttl time.Duration, logger zerolog.Logger) *RedisStore {
	return &RedisStore{
		rdb:    rdb,
		ttl:    ttl,
		logger: logger.With().Str("storage", "redis").Logger(),
	}
}

// Get returns the value stored under key.
func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		r.logger.Error().Err(err).Str("key", key).Msg("failed to get key from redis")
		return nil, false, fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return v, true, nil
}

// Set stores value under key.
func (r *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := r.rdb.Set(ctx, key, value, r.ttl).Err(); err != nil {
		r.logger.Error().Err(err).Str("key", key).Msg("failed to set key in redis")
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

// Delete removes key.
func (r *RedisStore) Delete(ctx context.Context, key string) error {
	if err := r.rdb.Del(ctx, key).Err(); err != nil {
		r.logger.Error().Err(err).Str("key", key).Msg("failed to delete key from redis")
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}
