package handler

import (
	"net/http"

	"atelier/internal/model"
	"atelier/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles cart HTTP requests for the caller's session.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r, h.logger)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.service.View(r.Context(), sid))
}

// AddItem handles POST /api/cart/items requests.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r, h.logger)
	if !ok {
		return
	}

	var req model.AddToCartRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}
	if req.ProductID == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "productId is required", h.logger)
		return
	}

	view, err := h.service.AddItem(r.Context(), sid, &req)
	if err != nil {
		writeServiceError(w, err, "failed to add item", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// UpdateItem handles PUT /api/cart/items/{productId} requests. A quantity of
// zero or less removes the product.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r, h.logger)
	if !ok {
		return
	}

	var req model.UpdateQuantityRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	view, err := h.service.UpdateQuantity(r.Context(), sid, r.PathValue("productId"), req.Quantity)
	if err != nil {
		writeServiceError(w, err, "failed to update item", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// RemoveItem handles DELETE /api/cart/items/{productId} requests.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r, h.logger)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.service.RemoveItem(r.Context(), sid, r.PathValue("productId")))
}

// AddGiftCard handles POST /api/cart/gift-cards requests.
func (h *CartHandler) AddGiftCard(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r, h.logger)
	if !ok {
		return
	}

	var req model.GiftCardRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	view, err := h.service.AddGiftCard(r.Context(), sid, req.Amount)
	if err != nil {
		writeServiceError(w, err, "failed to add gift card", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}
