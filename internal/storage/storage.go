// Package storage provides the durable key-value backends session state is
// persisted to.
package storage

import (
	"context"
	"fmt"
	"time"

	"atelier/internal/store"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Backend names accepted by New.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

var (
	_ store.KV = (*MemoryStore)(nil)
	_ store.KV = (*RedisStore)(nil)
	_ store.KV = (*PostgresStore)(nil)
)

// New returns the backend named by backend. The redis client and pool are
// only required by the backends that use them.
func New(
	ctx context.Context,
	backend string,
	pool *pgxpool.Pool,
	rdb redis.Cmdable,
	ttl time.Duration,
	logger zerolog.Logger,
) (store.KV, error) {
	switch backend {
	case BackendMemory:
		logger.Warn().Msg("using in-memory session storage, state is lost on restart")
		return NewMemoryStore(), nil

	case BackendRedis:
		if rdb == nil {
			return nil, fmt.Errorf("redis backend requires a redis client")
		}
		return NewRedisStore(rdb, ttl, logger), nil

	case BackendPostgres:
		if pool == nil {
			return nil, fmt.Errorf("postgres backend requires a database pool")
		}
		pg := NewPostgresStore(pool, logger)
		if err := pg.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return pg, nil

	default:
		return nil, fmt.Errorf("unknown storage backend: %s", backend)
	}
}
