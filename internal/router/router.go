package router

import (
	"net/http"

	"atelier/internal/handler"
	"atelier/internal/middleware"

	"github.com/rs/zerolog"
)

// AdminPrefix guards the admin endpoints with the API key.
const AdminPrefix = "/api/settings"

// Handlers groups the HTTP handlers served by the router.
type Handlers struct {
	Product  *handler.ProductHandler
	Cart     *handler.CartHandler
	Wishlist *handler.WishlistHandler
	Checkout *handler.CheckoutHandler
	Settings *handler.SettingsHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, newSessionID func() string, apiKey string, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Catalogue
	mux.HandleFunc("GET /api/products", h.Product.List)
	mux.HandleFunc("GET /api/products/{id}", h.Product.GetByID)
	mux.HandleFunc("GET /api/categories", h.Product.Categories)

	// Session cart and wishlist
	mux.HandleFunc("GET /api/cart", h.Cart.Get)
	mux.HandleFunc("POST /api/cart/items", h.Cart.AddItem)
	mux.HandleFunc("PUT /api/cart/items/{productId}", h.Cart.UpdateItem)
	mux.HandleFunc("DELETE /api/cart/items/{productId}", h.Cart.RemoveItem)
	mux.HandleFunc("POST /api/cart/gift-cards", h.Cart.AddGiftCard)
	mux.HandleFunc("GET /api/wishlist", h.Wishlist.Get)
	mux.HandleFunc("POST /api/wishlist/{productId}", h.Wishlist.Toggle)

	// Checkout and order tracking
	mux.HandleFunc("GET /api/checkout/summary", h.Checkout.Summary)
	mux.HandleFunc("POST /api/orders", h.Checkout.PlaceOrder)
	mux.HandleFunc("GET /api/orders/{number}", h.Checkout.GetOrder)

	// Admin
	mux.HandleFunc("GET "+AdminPrefix, h.Settings.Get)
	mux.HandleFunc("POST "+AdminPrefix, h.Settings.Save)

	// Apply middleware in order: Recovery -> Logging -> CORS -> APIKeyAuth -> Session
	var handler http.Handler = mux
	handler = middleware.Session(newSessionID, logger)(handler)
	handler = middleware.APIKeyAuth(apiKey, []string{AdminPrefix}, logger)(handler)
	handler = middleware.CORS(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}
