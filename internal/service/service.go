package service

import (
	"context"

	"atelier/internal/catalog"
	"atelier/internal/model"
	"atelier/internal/store"
)

// Sessions resolves the store of a browsing session.
type Sessions interface {
	Get(ctx context.Context, sessionID string) *store.Store
}

// CatalogService defines read operations on the product catalogue.
type CatalogService interface {
	// List returns the products matching q.
	List(ctx context.Context, q catalog.Query) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Categories returns the catalogue categories.
	Categories(ctx context.Context) []string
}

// CartService defines operations on a session's cart.
type CartService interface {
	// View returns the cart of sessionID.
	View(ctx context.Context, sessionID string) *model.CartView

	// AddItem adds a catalogue product to the cart.
	AddItem(ctx context.Context, sessionID string, req *model.AddToCartRequest) (*model.CartView, error)

	// UpdateQuantity sets the quantity of every line of productID. A quantity
	// of zero or less removes them; above model.MaxLineQuantity is rejected.
	UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*model.CartView, error)

	// RemoveItem removes every line of productID.
	RemoveItem(ctx context.Context, sessionID, productID string) *model.CartView

	// AddGiftCard adds a gift card of amount dollars.
	AddGiftCard(ctx context.Context, sessionID string, amount int) (*model.CartView, error)
}

// WishlistService defines operations on a session's wishlist.
type WishlistService interface {
	// View returns the wishlist of sessionID.
	View(ctx context.Context, sessionID string) *model.WishlistView

	// Toggle adds productID when absent and removes it when present.
	Toggle(ctx context.Context, sessionID, productID string) (*model.WishlistView, error)
}

// CheckoutService defines checkout and order tracking operations.
type CheckoutService interface {
	// Summary prices the cart of sessionID for the given shipping method.
	Summary(ctx context.Context, sessionID, shippingMethod string) (*model.Quote, error)

	// PlaceOrder records an order for the cart of sessionID.
	PlaceOrder(ctx context.Context, sessionID string, req *model.OrderRequest) (*model.OrderResponse, error)

	// GetOrder retrieves an order by its number. The order is only returned
	// when email matches the address it was placed with.
	GetOrder(ctx context.Context, number, email string) (*model.OrderResponse, error)
}

// SettingsService defines operations on the admin settings.
type SettingsService interface {
	// Get returns the stored settings, or the defaults when none are stored.
	Get(ctx context.Context) (*model.Settings, error)

	// Save validates and stores settings, returning what was stored.
	Save(ctx context.Context, settings *model.Settings) (*model.Settings, error)
}
