package model

// MaxLineQuantity is the largest quantity a single cart line can hold.
const MaxLineQuantity = 99

// CartLine is a product placed in the cart together with the chosen quantity
// and optional size/colour selectors.
type CartLine struct {
	Product
	Quantity      int     `json:"quantity"`
	SelectedSize  *string `json:"selectedSize,omitempty"`
	SelectedColor *string `json:"selectedColor,omitempty"`
}

// LineKey identifies a cart line. Two lines with the same key are merged.
type LineKey struct {
	ProductID string
	Size      string
	HasSize   bool
	Color     string
	HasColor  bool
}

// NewLineKey builds the identity of a line for the given selectors.
func NewLineKey(productID string, size, color *string) LineKey {
	k := LineKey{ProductID: productID}
	if size != nil {
		k.Size, k.HasSize = *size, true
	}
	if color != nil {
		k.Color, k.HasColor = *color, true
	}
	return k
}

// Key returns the identity of the line.
func (l CartLine) Key() LineKey {
	return NewLineKey(l.ID, l.SelectedSize, l.SelectedColor)
}

// Subtotal returns price multiplied by quantity.
func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// CartView is the cart as returned to clients.
type CartView struct {
	SessionID string     `json:"sessionId"`
	Items     []CartLine `json:"items"`
	Total     float64    `json:"total"`
	Count     int        `json:"count"`
}

// WishlistView is the wishlist as returned to clients.
type WishlistView struct {
	SessionID string    `json:"sessionId"`
	IDs       []string  `json:"ids"`
	Products  []Product `json:"products"`
}

// AddToCartRequest is the payload for adding a product to the cart.
type AddToCartRequest struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity,omitempty"`
	Size      *string `json:"size,omitempty"`
	Color     *string `json:"color,omitempty"`
}

// UpdateQuantityRequest is the payload for changing a line quantity.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// GiftCardRequest is the payload for adding a gift card to the cart.
type GiftCardRequest struct {
	Amount int `json:"amount"`
}
