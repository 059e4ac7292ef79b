package service

import (
	"context"
	"slices"

	"atelier/internal/catalog"
	"atelier/internal/model"
	"atelier/internal/store"

	"github.com/rs/zerolog"
)

// cartService implements CartService.
type cartService struct {
	sessions Sessions
	catalog  *catalog.Catalog
	logger   zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(sessions Sessions, c *catalog.Catalog, logger zerolog.Logger) CartService {
	return &cartService{
		sessions: sessions,
		catalog:  c,
		logger:   logger.With().Str("service", "cart").Logger(),
	}
}

// View returns the cart of sessionID.
func (s *cartService) View(ctx context.Context, sessionID string) *model.CartView {
	return cartView(sessionID, s.sessions.Get(ctx, sessionID).Snapshot())
}

// AddItem adds a catalogue product to the cart. An omitted quantity adds one
// unit. Size and colour must be among those the product is offered in.
func (s *cartService) AddItem(ctx context.Context, sessionID string, req *model.AddToCartRequest) (*model.CartView, error) {
	if req.Quantity < 0 || req.Quantity > model.MaxLineQuantity {
		return nil, model.ErrInvalidQuantity
	}

	product, ok := s.catalog.Get(req.ProductID)
	if !ok {
		s.logger.Debug().Str("product_id", req.ProductID).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	if err := validateSelectors(product, req.Size, req.Color); err != nil {
		s.logger.Debug().Str("product_id", product.ID).Err(err).Msg("invalid selector")
		return nil, err
	}

	snap := s.sessions.Get(ctx, sessionID).AddToCart(product, req.Quantity, req.Size, req.Color)

	s.logger.Debug().
		Str("session_id", sessionID).
		Str("product_id", product.ID).
		Int("cart_count", snap.CartCount()).
		Msg("item added to cart")

	return cartView(sessionID, snap), nil
}

// UpdateQuantity sets the quantity of every line of productID.
func (s *cartService) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*model.CartView, error) {
	if quantity > model.MaxLineQuantity {
		return nil, model.ErrInvalidQuantity
	}
	snap := s.sessions.Get(ctx, sessionID).UpdateQuantity(productID, quantity)
	return cartView(sessionID, snap), nil
}

// RemoveItem removes every line of productID.
func (s *cartService) RemoveItem(ctx context.Context, sessionID, productID string) *model.CartView {
	snap := s.sessions.Get(ctx, sessionID).RemoveFromCart(productID)
	return cartView(sessionID, snap)
}

// AddGiftCard adds a gift card of amount dollars.
func (s *cartService) AddGiftCard(ctx context.Context, sessionID string, amount int) (*model.CartView, error) {
	card, err := catalog.GiftCard(amount)
	if err != nil {
		return nil, err
	}

	snap := s.sessions.Get(ctx, sessionID).AddToCart(card, 1, nil, nil)

	s.logger.Debug().
		Str("session_id", sessionID).
		Int("amount", amount).
		Msg("gift card added to cart")

	return cartView(sessionID, snap), nil
}

// validateSelectors checks size and colour against the product's options.
func validateSelectors(p model.Product, size, color *string) error {
	if size != nil && !slices.Contains(p.Sizes, *size) {
		return model.ErrInvalidSize
	}
	if color != nil && !slices.ContainsFunc(p.Colors, func(c model.ColorVariant) bool { return c.Name == *color }) {
		return model.ErrInvalidColor
	}
	return nil
}

func cartView(sessionID string, snap store.Snapshot) *model.CartView {
	items := snap.Cart
	if items == nil {
		items = []model.CartLine{}
	}
	return &model.CartView{
		SessionID: sessionID,
		Items:     items,
		Total:     snap.CartTotal(),
		Count:     snap.CartCount(),
	}
}
