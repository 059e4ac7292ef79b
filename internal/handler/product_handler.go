package handler

import (
	"net/http"
	"strconv"
	"strings"

	"atelier/internal/catalog"
	"atelier/internal/model"
	"atelier/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.CatalogService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /api/products requests.
//
// Query parameters: q, category (repeatable), min, max, filter, sort.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	query := catalog.Query{
		Search: values.Get("q"),
		Filter: values.Get("filter"),
		Sort:   values.Get("sort"),
	}

	for _, c := range values["category"] {
		if c = strings.TrimSpace(c); c != "" {
			query.Categories = append(query.Categories, c)
		}
	}

	var ok bool
	if query.MinPrice, ok = h.parsePrice(w, values.Get("min"), "min"); !ok {
		return
	}
	if query.MaxPrice, ok = h.parsePrice(w, values.Get("max"), "max"); !ok {
		return
	}

	products, err := h.service.List(r.Context(), query)
	if err != nil {
		writeServiceError(w, err, "failed to retrieve products", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("id")
	if productID == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "product ID is required", h.logger)
		return
	}

	product, err := h.service.GetByID(r.Context(), productID)
	if err != nil {
		writeServiceError(w, err, "failed to retrieve product", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Categories handles GET /api/categories requests.
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Categories(r.Context()))
}

func (h *ProductHandler) parsePrice(w http.ResponseWriter, raw, name string) (*float64, bool) {
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidQuery, "invalid "+name+" parameter", h.logger)
		return nil, false
	}
	return &v, true
}
