package service

import (
	"context"

	"atelier/internal/catalog"
	"atelier/internal/model"
	"atelier/internal/store"

	"github.com/rs/zerolog"
)

// wishlistService implements WishlistService.
type wishlistService struct {
	sessions Sessions
	catalog  *catalog.Catalog
	logger   zerolog.Logger
}

// NewWishlistService creates a new wishlist service.
func NewWishlistService(sessions Sessions, c *catalog.Catalog, logger zerolog.Logger) WishlistService {
	return &wishlistService{
		sessions: sessions,
		catalog:  c,
		logger:   logger.With().Str("service", "wishlist").Logger(),
	}
}

// View returns the wishlist of sessionID.
func (s *wishlistService) View(ctx context.Context, sessionID string) *model.WishlistView {
	return s.view(sessionID, s.sessions.Get(ctx, sessionID).Snapshot())
}

// Toggle adds productID when absent and removes it when present. Only
// catalogue products can be added.
func (s *wishlistService) Toggle(ctx context.Context, sessionID, productID string) (*model.WishlistView, error) {
	st := s.sessions.Get(ctx, sessionID)

	if _, ok := s.catalog.Get(productID); !ok && !st.InWishlist(productID) {
		s.logger.Debug().Str("product_id", productID).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	snap := st.ToggleWishlist(productID)

	s.logger.Debug().
		Str("session_id", sessionID).
		Str("product_id", productID).
		Bool("in_wishlist", snap.InWishlist(productID)).
		Msg("wishlist toggled")

	return s.view(sessionID, snap), nil
}

// view resolves wishlist ids against the catalogue, skipping unknown ids.
func (s *wishlistService) view(sessionID string, snap store.Snapshot) *model.WishlistView {
	ids := snap.Wishlist
	if ids == nil {
		ids = []string{}
	}

	products := make([]model.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.catalog.Get(id); ok {
			products = append(products, p)
		}
	}

	return &model.WishlistView{
		SessionID: sessionID,
		IDs:       ids,
		Products:  products,
	}
}
