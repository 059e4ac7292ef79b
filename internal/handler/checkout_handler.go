package handler

import (
	"net/http"

	"atelier/internal/model"
	"atelier/internal/service"

	"github.com/rs/zerolog"
)

// CheckoutHandler handles checkout and order HTTP requests.
type CheckoutHandler struct {
	service service.CheckoutService
	logger  zerolog.Logger
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(service service.CheckoutService, logger zerolog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		logger:  logger.With().Str("handler", "checkout").Logger(),
	}
}

// Summary handles GET /api/checkout/summary requests.
func (h *CheckoutHandler) Summary(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r, h.logger)
	if !ok {
		return
	}

	quote, err := h.service.Summary(r.Context(), sid, r.URL.Query().Get("shipping"))
	if err != nil {
		writeServiceError(w, err, "failed to price cart", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, quote)
}

// PlaceOrder handles POST /api/orders requests.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r, h.logger)
	if !ok {
		return
	}

	var req model.OrderRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	order, err := h.service.PlaceOrder(r.Context(), sid, &req)
	if err != nil {
		writeServiceError(w, err, "failed to place order", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// GetOrder handles GET /api/orders/{number}?email= requests.
func (h *CheckoutHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	number := r.PathValue("number")
	if number == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "order number is required", h.logger)
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "email is required", h.logger)
		return
	}

	order, err := h.service.GetOrder(r.Context(), number, email)
	if err != nil {
		writeServiceError(w, err, "failed to retrieve order", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}
