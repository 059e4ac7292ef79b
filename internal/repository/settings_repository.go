package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"atelier/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// settingsKey is the row holding the store settings document.
const settingsKey = "store"

// settingsRepository implements SettingsRepository over the settings table.
type settingsRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewSettingsRepository creates a new PostgreSQL-backed settings repository.
func NewSettingsRepository(pool *pgxpool.Pool, logger zerolog.Logger) SettingsRepository {
	return &settingsRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "settings").Logger(),
	}
}

// Get returns the stored settings, or nil when none are stored.
func (r *settingsRepository) Get(ctx context.Context) (*model.Settings, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx, `SELECT value FROM settings WHERE key = $1`, settingsKey).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Msg("failed to query settings")
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}

	var settings model.Settings
	if err := json.Unmarshal(raw, &settings); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode settings")
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	return &settings, nil
}

// Upsert replaces the stored settings.
func (r *settingsRepository) Upsert(ctx context.Context, settings model.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`

	if _, err := r.pool.Exec(ctx, query, settingsKey, raw); err != nil {
		r.logger.Error().Err(err).Msg("failed to upsert settings")
		return fmt.Errorf("failed to upsert settings: %w", err)
	}

	r.logger.Debug().Str("store_name", settings.StoreName).Msg("settings saved")

	return nil
}
