package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema creates the tables used by the repositories.
const Schema = `
	CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		number VARCHAR(20) NOT NULL UNIQUE,
		session_id VARCHAR(64) NOT NULL,
		email VARCHAR(255) NOT NULL DEFAULT '',
		shipping_method VARCHAR(20) NOT NULL,
		subtotal NUMERIC(12, 2) NOT NULL,
		shipping NUMERIC(12, 2) NOT NULL,
		tax NUMERIC(12, 2) NOT NULL,
		total NUMERIC(12, 2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS order_items (
		id UUID PRIMARY KEY,
		order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		product_id VARCHAR(50) NOT NULL,
		name VARCHAR(255) NOT NULL,
		unit_price NUMERIC(12, 2) NOT NULL,
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		size VARCHAR(20),
		color VARCHAR(50),
		position INTEGER NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id);

	CREATE TABLE IF NOT EXISTS settings (
		key VARCHAR(50) PRIMARY KEY,
		value JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
`

// EnsureSchema creates the order and settings tables if they do not exist.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
