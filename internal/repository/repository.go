package repository

import (
	"context"

	"atelier/internal/model"

	"github.com/jackc/pgx/v5"
)

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts multiple order items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByNumber retrieves an order by its public number along with its items.
	// A missing order yields nil values and no error.
	GetByNumber(ctx context.Context, number string) (*model.Order, []model.OrderItem, error)
}

// SettingsRepository stores the admin settings document.
type SettingsRepository interface {
	// Get returns the stored settings, or nil when nothing has been saved.
	Get(ctx context.Context) (*model.Settings, error)

	// Upsert replaces the stored settings.
	Upsert(ctx context.Context, settings model.Settings) error
}
