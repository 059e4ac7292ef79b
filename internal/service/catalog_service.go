package service

import (
	"context"

	"atelier/internal/catalog"
	"atelier/internal/model"

	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	catalog *catalog.Catalog
	logger  zerolog.Logger
}

// NewCatalogService creates a new catalogue service.
func NewCatalogService(c *catalog.Catalog, logger zerolog.Logger) CatalogService {
	return &catalogService{
		catalog: c,
		logger:  logger.With().Str("service", "catalog").Logger(),
	}
}

// List returns the products matching q.
func (s *catalogService) List(ctx context.Context, q catalog.Query) ([]model.Product, error) {
	if !catalog.ValidSort(q.Sort) {
		return nil, model.NewInvalidQueryError("sort must be one of featured, price-low, price-high, rating or newest")
	}
	if !catalog.ValidFilter(q.Filter) {
		return nil, model.NewInvalidQueryError("filter must be sale or new")
	}
	if q.MinPrice != nil && q.MaxPrice != nil && *q.MinPrice > *q.MaxPrice {
		return nil, model.NewInvalidQueryError("min price must not exceed max price")
	}

	products := s.catalog.Search(q)

	s.logger.Debug().
		Str("search", q.Search).
		Str("sort", q.Sort).
		Int("count", len(products)).
		Msg("products listed")

	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *catalogService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	p, ok := s.catalog.Get(id)
	if !ok {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}
	return &p, nil
}

// Categories returns the catalogue categories.
func (s *catalogService) Categories(ctx context.Context) []string {
	return s.catalog.Categories()
}
