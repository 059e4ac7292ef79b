package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"atelier/internal/model"
	"atelier/internal/repository"

	"github.com/rs/zerolog"
)

const maxSettingLength = 100

// settingsService implements SettingsService.
type settingsService struct {
	repo   repository.SettingsRepository
	logger zerolog.Logger
}

// NewSettingsService creates a new settings service.
func NewSettingsService(repo repository.SettingsRepository, logger zerolog.Logger) SettingsService {
	return &settingsService{
		repo:   repo,
		logger: logger.With().Str("service", "settings").Logger(),
	}
}

// Get returns the stored settings, or the defaults when none are stored.
func (s *settingsService) Get(ctx context.Context) (*model.Settings, error) {
	stored, err := s.repo.Get(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get settings")
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	if stored == nil {
		defaults := model.DefaultSettings()
		return &defaults, nil
	}

	return stored, nil
}

// Save validates and stores settings.
func (s *settingsService) Save(ctx context.Context, settings *model.Settings) (*model.Settings, error) {
	normalised, err := normaliseSettings(*settings)
	if err != nil {
		s.logger.Warn().Err(err).Msg("settings rejected")
		return nil, err
	}

	if err := s.repo.Upsert(ctx, normalised); err != nil {
		s.logger.Error().Err(err).Msg("failed to save settings")
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	s.logger.Info().Str("store_name", normalised.StoreName).Msg("settings saved")

	return &normalised, nil
}

// normaliseSettings trims every field, fills empty preferences with their
// defaults and validates the result.
func normaliseSettings(in model.Settings) (model.Settings, error) {
	defaults := model.DefaultSettings()

	out := model.Settings{
		StoreName:         strings.TrimSpace(in.StoreName),
		ContactEmail:      strings.TrimSpace(in.ContactEmail),
		Currency:          orDefault(in.Currency, defaults.Currency),
		TwoFactorAuth:     orDefault(in.TwoFactorAuth, defaults.TwoFactorAuth),
		APIAccess:         orDefault(in.APIAccess, defaults.APIAccess),
		OrderAlerts:       orDefault(in.OrderAlerts, defaults.OrderAlerts),
		InventoryWarnings: orDefault(in.InventoryWarnings, defaults.InventoryWarnings),
	}

	if out.StoreName == "" {
		return model.Settings{}, model.NewInvalidSettingsError("store_name is required")
	}
	if out.ContactEmail != "" && !strings.Contains(out.ContactEmail, "@") {
		return model.Settings{}, model.NewInvalidSettingsError("contact_email must be an email address")
	}

	fields := map[string]string{
		"store_name":         out.StoreName,
		"contact_email":      out.ContactEmail,
		"currency":           out.Currency,
		"two_factor_auth":    out.TwoFactorAuth,
		"api_access":         out.APIAccess,
		"order_alerts":       out.OrderAlerts,
		"inventory_warnings": out.InventoryWarnings,
	}
	for name, value := range fields {
		if utf8.RuneCountInString(value) > maxSettingLength {
			return model.Settings{}, model.NewInvalidSettingsError(
				fmt.Sprintf("%s must be at most %d characters", name, maxSettingLength))
		}
	}

	return out, nil
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
