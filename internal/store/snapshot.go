package store

import "atelier/internal/model"

// Snapshot is an immutable view of a session's cart and wishlist.
// Mutations never modify a snapshot in place; they build a new one.
type Snapshot struct {
	Cart     []model.CartLine `json:"cart"`
	Wishlist []string         `json:"wishlist"`
}

// CartTotal returns the sum of price times quantity over all lines.
func (s Snapshot) CartTotal() float64 {
	total := 0.0
	for _, line := range s.Cart {
		total += line.Subtotal()
	}
	return total
}

// CartCount returns the sum of quantities over all lines.
func (s Snapshot) CartCount() int {
	count := 0
	for _, line := range s.Cart {
		count += line.Quantity
	}
	return count
}

// InWishlist reports whether productID is in the wishlist.
func (s Snapshot) InWishlist(productID string) bool {
	for _, id := range s.Wishlist {
		if id == productID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of s. Nothing reachable from the result, including
// the selectors and product slices of each line, is shared with s.
func (s Snapshot) Clone() Snapshot {
	var out Snapshot
	if s.Cart != nil {
		out.Cart = make([]model.CartLine, len(s.Cart))
		for i, line := range s.Cart {
			out.Cart[i] = cloneLine(line)
		}
	}
	if s.Wishlist != nil {
		out.Wishlist = make([]string, len(s.Wishlist))
		copy(out.Wishlist, s.Wishlist)
	}
	return out
}

// AddLine returns a new cart with quantity units of product added.
// A line with the same (id, size, color) absorbs the quantity; otherwise a
// new line is appended. Line quantities saturate at model.MaxLineQuantity.
func AddLine(cart []model.CartLine, product model.Product, quantity int, size, color *string) []model.CartLine {
	key := model.NewLineKey(product.ID, size, color)

	out := make([]model.CartLine, 0, len(cart)+1)
	merged := false
	for _, line := range cart {
		if !merged && line.Key() == key {
			line.Quantity = addQuantity(line.Quantity, quantity)
			merged = true
		}
		out = append(out, line)
	}
	if merged {
		return out
	}

	return append(out, model.CartLine{
		Product:       cloneProduct(product),
		Quantity:      addQuantity(0, quantity),
		SelectedSize:  cloneString(size),
		SelectedColor: cloneString(color),
	})
}

// RemoveLines returns a new cart without any line for productID, whatever
// its size or colour. The second result reports whether anything was removed.
func RemoveLines(cart []model.CartLine, productID string) ([]model.CartLine, bool) {
	var out []model.CartLine
	removed := false
	for _, line := range cart {
		if line.ID == productID {
			removed = true
			continue
		}
		out = append(out, line)
	}
	return out, removed
}

// SetQuantity returns a new cart where every line for productID has the given
// quantity, capped at model.MaxLineQuantity. A quantity of zero or less
// removes those lines.
func SetQuantity(cart []model.CartLine, productID string, quantity int) ([]model.CartLine, bool) {
	if quantity <= 0 {
		return RemoveLines(cart, productID)
	}
	quantity = min(quantity, model.MaxLineQuantity)

	out := make([]model.CartLine, len(cart))
	changed := false
	for i, line := range cart {
		if line.ID == productID && line.Quantity != quantity {
			line.Quantity = quantity
			changed = true
		}
		out[i] = line
	}
	return out, changed
}

// ToggleID returns a new list with productID removed if present, appended otherwise.
func ToggleID(ids []string, productID string) []string {
	out := make([]string, 0, len(ids)+1)
	found := false
	for _, id := range ids {
		if id == productID {
			found = true
			continue
		}
		out = append(out, id)
	}
	if !found {
		out = append(out, productID)
	}
	return out
}

// Normalize restores the cart and wishlist invariants on data of unknown
// origin: lines with a non-positive quantity are dropped, lines sharing an
// identity are merged up to model.MaxLineQuantity, and duplicate wishlist ids are removed keeping the
// first occurrence.
func Normalize(s Snapshot) Snapshot {
	var out Snapshot

	index := make(map[model.LineKey]int, len(s.Cart))
	for _, line := range s.Cart {
		if line.Quantity <= 0 || line.ID == "" {
			continue
		}
		if i, ok := index[line.Key()]; ok {
			out.Cart[i].Quantity = addQuantity(out.Cart[i].Quantity, line.Quantity)
			continue
		}
		index[line.Key()] = len(out.Cart)
		line.Quantity = addQuantity(0, line.Quantity)
		out.Cart = append(out.Cart, line)
	}

	seen := make(map[string]struct{}, len(s.Wishlist))
	for _, id := range s.Wishlist {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out.Wishlist = append(out.Wishlist, id)
	}

	return out
}

// addQuantity returns a+b clamped to [1, model.MaxLineQuantity]. Both
// arguments are non-negative, so the clamp also absorbs overflow.
func addQuantity(a, b int) int {
	if b > model.MaxLineQuantity-a {
		return model.MaxLineQuantity
	}
	return max(a+b, 1)
}

func cloneLine(line model.CartLine) model.CartLine {
	line.Product = cloneProduct(line.Product)
	line.SelectedSize = cloneString(line.SelectedSize)
	line.SelectedColor = cloneString(line.SelectedColor)
	return line
}

func cloneProduct(p model.Product) model.Product {
	if p.OriginalPrice != nil {
		v := *p.OriginalPrice
		p.OriginalPrice = &v
	}
	p.Sizes = cloneSlice(p.Sizes)
	p.Colors = cloneSlice(p.Colors)
	p.Tags = cloneSlice(p.Tags)
	return p
}

// cloneSlice copies s, keeping nil and empty distinct.
func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
