package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"atelier/internal/catalog"
	"atelier/internal/handler"
	"atelier/internal/model"
	"atelier/internal/service"
	"atelier/internal/session"
	"atelier/internal/storage"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-admin-key"

type memorySettingsRepository struct {
	mu       sync.Mutex
	settings *model.Settings
}

func (r *memorySettingsRepository) Get(ctx context.Context) (*model.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.settings == nil {
		return nil, nil
	}
	s := *r.settings
	return &s, nil
}

func (r *memorySettingsRepository) Upsert(ctx context.Context, settings model.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = &settings
	return nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := zerolog.Nop()
	cat := catalog.MustBuiltin()
	sessions := session.NewManager(storage.NewMemoryStore(), session.DefaultConfig(), logger)

	h := Handlers{
		Product:  handler.NewProductHandler(service.NewCatalogService(cat, logger), logger),
		Cart:     handler.NewCartHandler(service.NewCartService(sessions, cat, logger), logger),
		Wishlist: handler.NewWishlistHandler(service.NewWishlistService(sessions, cat, logger), logger),
		Checkout: handler.NewCheckoutHandler(service.NewCheckoutService(sessions, nil, logger), logger),
		Settings: handler.NewSettingsHandler(service.NewSettingsService(&memorySettingsRepository{}, logger), logger),
	}

	return New(h, func() string { return "generated-session" }, testAPIKey, logger)
}

func doRequest(t *testing.T, h http.Handler, method, path, sessionID, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if sessionID != "" {
		req.Header.Set("X-Session-ID", sessionID)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRouter_Health(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}

func TestRouter_SessionHeader(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{name: "Echoes valid id", header: "abc-123", expected: "abc-123"},
		{name: "Generates missing id", header: "", expected: "generated-session"},
		{name: "Replaces malformed id", header: "bad id!", expected: "generated-session"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, r, http.MethodGet, "/api/cart", tt.header, "")

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.expected, w.Header().Get("X-Session-ID"))

			var view model.CartView
			require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
			assert.Equal(t, tt.expected, view.SessionID)
			assert.Empty(t, view.Items)
		})
	}
}

func TestRouter_CartFlow(t *testing.T) {
	r := newTestRouter(t)
	const sid = "cart-flow"

	w := doRequest(t, r, http.MethodPost, "/api/cart/items", sid, `{"productId":"1","size":"M","color":"Charcoal"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodPost, "/api/cart/items", sid, `{"productId":"1","quantity":2,"size":"M","color":"Charcoal"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var view model.CartView
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	require.Len(t, view.Items, 1)
	assert.Equal(t, 3, view.Items[0].Quantity)
	assert.Equal(t, 3, view.Count)
	assert.InDelta(t, 1167.0, view.Total, 0.001)

	// Other sessions are unaffected
	w = doRequest(t, r, http.MethodGet, "/api/cart", "other-session", "")
	var other model.CartView
	require.NoError(t, json.NewDecoder(w.Body).Decode(&other))
	assert.Empty(t, other.Items)

	w = doRequest(t, r, http.MethodPut, "/api/cart/items/1", sid, `{"quantity":1}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/checkout/summary", sid, "")
	require.Equal(t, http.StatusOK, w.Code)
	var quote model.Quote
	require.NoError(t, json.NewDecoder(w.Body).Decode(&quote))
	assert.Equal(t, "389.00", quote.Subtotal)
	assert.Equal(t, "0.00", quote.Shipping)
	assert.Equal(t, "31.12", quote.Tax)
	assert.Equal(t, "420.12", quote.Total)
	assert.True(t, quote.FreeShipping)

	w = doRequest(t, r, http.MethodDelete, "/api/cart/items/1", sid, "")
	require.Equal(t, http.StatusOK, w.Code)
	view = model.CartView{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	assert.Empty(t, view.Items)

	w = doRequest(t, r, http.MethodPost, "/api/orders", sid, `{"email":"client@example.com"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRouter_Wishlist(t *testing.T) {
	r := newTestRouter(t)
	const sid = "wishlist-flow"

	w := doRequest(t, r, http.MethodPost, "/api/wishlist/3", sid, "")
	require.Equal(t, http.StatusOK, w.Code)
	var view model.WishlistView
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	assert.Equal(t, []string{"3"}, view.IDs)

	w = doRequest(t, r, http.MethodPost, "/api/wishlist/3", sid, "")
	require.Equal(t, http.StatusOK, w.Code)
	view = model.WishlistView{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	assert.Empty(t, view.IDs)

	w = doRequest(t, r, http.MethodPost, "/api/wishlist/999", sid, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_Products(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/products?category=Outerwear&sort=price-low", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var products []model.Product
	require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.Equal(t, "Outerwear", p.Category)
	}

	w = doRequest(t, r, http.MethodGet, "/api/products/2", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/products/999", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/products?sort=popular", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_Settings(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name           string
		method         string
		apiKey         string
		body           string
		expectedStatus int
	}{
		{name: "Missing key", method: http.MethodGet, expectedStatus: http.StatusUnauthorized},
		{name: "Wrong key", method: http.MethodGet, apiKey: "wrong", expectedStatus: http.StatusUnauthorized},
		{name: "Get with key", method: http.MethodGet, apiKey: testAPIKey, expectedStatus: http.StatusOK},
		{name: "Save with key", method: http.MethodPost, apiKey: testAPIKey, body: `{"store_name":"Atelier"}`, expectedStatus: http.StatusOK},
		{name: "Save invalid", method: http.MethodPost, apiKey: testAPIKey, body: `{"store_name":"  "}`, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, AdminPrefix, bytes.NewBufferString(tt.body))
			if tt.apiKey != "" {
				req.Header.Set("X-API-Key", tt.apiKey)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodDelete, "/api/cart", "s1", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/orders", "s1", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRouter_Preflight(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodOptions, "/api/cart", "", "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_OrderLookup(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/orders/not-an-order?email=client@example.com", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/orders/ATL-ABC123XYZ", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
