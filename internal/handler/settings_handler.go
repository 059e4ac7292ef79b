package handler

import (
	"net/http"

	"atelier/internal/model"
	"atelier/internal/service"

	"github.com/rs/zerolog"
)

// SettingsHandler handles the admin settings endpoints.
type SettingsHandler struct {
	service service.SettingsService
	logger  zerolog.Logger
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(service service.SettingsService, logger zerolog.Logger) *SettingsHandler {
	return &SettingsHandler{
		service: service,
		logger:  logger.With().Str("handler", "settings").Logger(),
	}
}

// Get handles GET /api/settings requests.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.Get(r.Context())
	if err != nil {
		writeServiceError(w, err, "failed to retrieve settings", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// Save handles POST /api/settings requests.
func (h *SettingsHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req model.Settings
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	settings, err := h.service.Save(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "failed to save settings", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}
