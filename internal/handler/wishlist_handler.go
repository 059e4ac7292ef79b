package handler

import (
	"net/http"

	"atelier/internal/service"

	"github.com/rs/zerolog"
)

// WishlistHandler handles wishlist HTTP requests for the caller's session.
type WishlistHandler struct {
	service service.WishlistService
	logger  zerolog.Logger
}

// NewWishlistHandler creates a new wishlist handler.
func NewWishlistHandler(service service.WishlistService, logger zerolog.Logger) *WishlistHandler {
	return &WishlistHandler{
		service: service,
		logger:  logger.With().Str("handler", "wishlist").Logger(),
	}
}

// Get handles GET /api/wishlist requests.
func (h *WishlistHandler) Get(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r, h.logger)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.service.View(r.Context(), sid))
}

// Toggle handles POST /api/wishlist/{productId} requests.
func (h *WishlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r, h.logger)
	if !ok {
		return
	}

	view, err := h.service.Toggle(r.Context(), sid, r.PathValue("productId"))
	if err != nil {
		writeServiceError(w, err, "failed to update wishlist", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}
