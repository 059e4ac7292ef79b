package model

import (
	"time"

	"github.com/google/uuid"
)

// Order represents a placed checkout order.
type Order struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Number         string    `json:"number" db:"number"`
	SessionID      string    `json:"-" db:"session_id"`
	Email          string    `json:"email" db:"email"`
	ShippingMethod string    `json:"shippingMethod" db:"shipping_method"`
	Subtotal       string    `json:"subtotal" db:"subtotal"`
	Shipping       string    `json:"shipping" db:"shipping"`
	Tax            string    `json:"tax" db:"tax"`
	Total          string    `json:"total" db:"total"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

// OrderItem represents a line item in an order.
type OrderItem struct {
	ID        uuid.UUID `json:"-" db:"id"`
	OrderID   uuid.UUID `json:"-" db:"order_id"`
	ProductID string    `json:"productId" db:"product_id"`
	Name      string    `json:"name" db:"name"`
	UnitPrice string    `json:"unitPrice" db:"unit_price"`
	Quantity  int       `json:"quantity" db:"quantity"`
	Size      *string   `json:"size,omitempty" db:"size"`
	Color     *string   `json:"color,omitempty" db:"color"`
}

// OrderRequest represents the request payload for placing an order.
type OrderRequest struct {
	ShippingMethod string `json:"shippingMethod"`
	Email          string `json:"email"`
}

// OrderResponse represents the response payload for an order.
type OrderResponse struct {
	Order
	Items []OrderItem `json:"items"`
}

// Quote is the checkout price breakdown. Amounts are decimal strings with two places.
type Quote struct {
	ShippingMethod        string `json:"shippingMethod"`
	Subtotal              string `json:"subtotal"`
	Shipping              string `json:"shipping"`
	Tax                   string `json:"tax"`
	Total                 string `json:"total"`
	FreeShipping          bool   `json:"freeShipping"`
	FreeShippingRemaining string `json:"freeShippingRemaining"`
}
