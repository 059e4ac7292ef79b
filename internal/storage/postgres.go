package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const kvSchema = `
	CREATE TABLE IF NOT EXISTS kv_entries (
		key TEXT PRIMARY KEY,
		value BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
`

// PostgresStore keeps values in the kv_entries table.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPostgresStore creates a PostgreSQL-backed store.
func NewPostgresStore(pool *pgxpool.Pool, logger zerolog.Logger) *PostgresStore {
	return &PostgresStore{
		pool:   pool,
		logger: logger.With().Str("storage", "postgres").Logger(),
	}
}

// EnsureSchema creates the kv_entries table if it does not exist.
func (p *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, kvSchema); err != nil {
		p.logger.Error().Err(err).Msg("failed to create kv schema")
		return fmt.Errorf("failed to create kv schema: %w", err)
	}
	return nil
}

// Get returns the value stored under key.
func (p *PostgresStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query := `
		SELECT value
		FROM kv_entries
		WHERE key = $1
	`

	var value []byte
	err := p.pool.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		p.logger.Error().Err(err).Str("key", key).Msg("failed to query kv entry")
		return nil, false, fmt.Errorf("failed to query kv entry: %w", err)
	}

	return value, true, nil
}

// Set upserts value under key.
func (p *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`

	if _, err := p.pool.Exec(ctx, query, key, value); err != nil {
		p.logger.Error().Err(err).Str("key", key).Msg("failed to upsert kv entry")
		return fmt.Errorf("failed to upsert kv entry: %w", err)
	}
	return nil
}

// Delete removes key.
func (p *PostgresStore) Delete(ctx context.Context, key string) error {
	if _, err := p.pool.Exec(ctx, `DELETE FROM kv_entries WHERE key = $1`, key); err != nil {
		p.logger.Error().Err(err).Str("key", key).Msg("failed to delete kv entry")
		return fmt.Errorf("failed to delete kv entry: %w", err)
	}
	return nil
}
