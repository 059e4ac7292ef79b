// Package store holds the per-session shopping cart and wishlist.
//
// A Store is an explicitly constructed state container. Every mutation
// produces a new Snapshot and is announced to subscribed listeners, which is
// how persistence is attached (see Persister).
package store

import (
	"sync"

	"atelier/internal/model"
)

// Change describes a committed mutation.
type Change struct {
	Snapshot        Snapshot
	CartChanged     bool
	WishlistChanged bool
}

// Listener is notified after every mutation that changed state.
type Listener func(Change)

// Store is the cart and wishlist of one browsing session.
type Store struct {
	mu        sync.Mutex
	snap      Snapshot
	listeners []Listener
}

// New creates a store holding initial, typically the result of Rehydrate.
func New(initial Snapshot) *Store {
	return &Store{snap: Normalize(initial.Clone())}
}

// Subscribe registers a listener for subsequent mutations.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Clone()
}

// AddToCart adds quantity units of product with the given selectors.
// A quantity below one is treated as one.
func (s *Store) AddToCart(product model.Product, quantity int, size, color *string) Snapshot {
	if quantity < 1 {
		quantity = 1
	}
	return s.mutate(func(cur Snapshot) (Snapshot, bool, bool) {
		next := Snapshot{
			Cart:     AddLine(cur.Cart, product, quantity, size, color),
			Wishlist: cur.Wishlist,
		}
		return next, true, false
	})
}

// RemoveFromCart removes every line of productID, including all of its
// size and colour variants.
func (s *Store) RemoveFromCart(productID string) Snapshot {
	return s.mutate(func(cur Snapshot) (Snapshot, bool, bool) {
		cart, changed := RemoveLines(cur.Cart, productID)
		return Snapshot{Cart: cart, Wishlist: cur.Wishlist}, changed, false
	})
}

// UpdateQuantity sets the quantity of every line of productID.
// A quantity of zero or less removes them.
func (s *Store) UpdateQuantity(productID string, quantity int) Snapshot {
	return s.mutate(func(cur Snapshot) (Snapshot, bool, bool) {
		cart, changed := SetQuantity(cur.Cart, productID, quantity)
		return Snapshot{Cart: cart, Wishlist: cur.Wishlist}, changed, false
	})
}

// ToggleWishlist adds productID to the wishlist or removes it if present.
func (s *Store) ToggleWishlist(productID string) Snapshot {
	return s.mutate(func(cur Snapshot) (Snapshot, bool, bool) {
		return Snapshot{Cart: cur.Cart, Wishlist: ToggleID(cur.Wishlist, productID)}, false, true
	})
}

// CartTotal returns the current cart total.
func (s *Store) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.CartTotal()
}

// CartCount returns the current number of items in the cart.
func (s *Store) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.CartCount()
}

// InWishlist reports whether productID is currently wishlisted.
func (s *Store) InWishlist(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.InWishlist(productID)
}

// mutate applies fn and notifies listeners while still holding the lock so
// that listeners observe changes in commit order.
func (s *Store) mutate(fn func(Snapshot) (Snapshot, bool, bool)) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, cartChanged, wishlistChanged := fn(s.snap)
	if !cartChanged && !wishlistChanged {
		return s.snap.Clone()
	}
	s.snap = next

	change := Change{
		Snapshot:        next.Clone(),
		CartChanged:     cartChanged,
		WishlistChanged: wishlistChanged,
	}
	for _, l := range s.listeners {
		l(change)
	}

	return next.Clone()
}
