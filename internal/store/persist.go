package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"atelier/internal/model"

	"github.com/rs/zerolog"
)

// KV is the durable key-value medium cart and wishlist snapshots are kept in.
type KV interface {
	// Get returns the value stored under key and whether it exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Keys names the two storage keys of a session.
type Keys struct {
	Cart     string
	Wishlist string
}

// SessionKeys returns the storage keys for sessionID under prefix.
func SessionKeys(prefix, sessionID string) Keys {
	base := sessionID
	if prefix != "" {
		base = prefix + ":" + sessionID
	}
	return Keys{
		Cart:     base + ":cart",
		Wishlist: base + ":wishlist",
	}
}

// EncodeCart serialises cart lines as a JSON array.
func EncodeCart(cart []model.CartLine) ([]byte, error) {
	if cart == nil {
		cart = []model.CartLine{}
	}
	return json.Marshal(cart)
}

// DecodeCart parses a JSON array of cart lines.
func DecodeCart(data []byte) ([]model.CartLine, error) {
	var cart []model.CartLine
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return cart, nil
}

// EncodeWishlist serialises wishlist ids as a JSON array.
func EncodeWishlist(ids []string) ([]byte, error) {
	if ids == nil {
		ids = []string{}
	}
	return json.Marshal(ids)
}

// DecodeWishlist parses a JSON array of product ids.
func DecodeWishlist(data []byte) ([]string, error) {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("failed to decode wishlist: %w", err)
	}
	return ids, nil
}

// Persister writes snapshots to a KV after every change.
type Persister struct {
	kv      KV
	keys    Keys
	timeout time.Duration
	logger  zerolog.Logger
}

// NewPersister creates a persister for one session's keys.
func NewPersister(kv KV, keys Keys, timeout time.Duration, logger zerolog.Logger) *Persister {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Persister{
		kv:      kv,
		keys:    keys,
		timeout: timeout,
		logger:  logger.With().Str("component", "store-persister").Logger(),
	}
}

// OnChange is a Listener. Only the collections that changed are written.
// Failures are logged and never reported to the mutating caller.
func (p *Persister) OnChange(c Change) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	if c.CartChanged {
		if err := p.saveCart(ctx, c.Snapshot.Cart); err != nil {
			p.logger.Error().Err(err).Str("key", p.keys.Cart).Msg("failed to persist cart")
		}
	}
	if c.WishlistChanged {
		if err := p.saveWishlist(ctx, c.Snapshot.Wishlist); err != nil {
			p.logger.Error().Err(err).Str("key", p.keys.Wishlist).Msg("failed to persist wishlist")
		}
	}
}

// Save writes both collections of snap.
func (p *Persister) Save(ctx context.Context, snap Snapshot) error {
	if err := p.saveCart(ctx, snap.Cart); err != nil {
		return err
	}
	return p.saveWishlist(ctx, snap.Wishlist)
}

func (p *Persister) saveCart(ctx context.Context, cart []model.CartLine) error {
	data, err := EncodeCart(cart)
	if err != nil {
		return err
	}
	if err := p.kv.Set(ctx, p.keys.Cart, data); err != nil {
		return fmt.Errorf("failed to write cart: %w", err)
	}
	p.logger.Debug().Str("key", p.keys.Cart).Int("lines", len(cart)).Msg("cart persisted")
	return nil
}

func (p *Persister) saveWishlist(ctx context.Context, ids []string) error {
	data, err := EncodeWishlist(ids)
	if err != nil {
		return err
	}
	if err := p.kv.Set(ctx, p.keys.Wishlist, data); err != nil {
		return fmt.Errorf("failed to write wishlist: %w", err)
	}
	p.logger.Debug().Str("key", p.keys.Wishlist).Int("items", len(ids)).Msg("wishlist persisted")
	return nil
}

// Rehydrate loads a session's snapshot. Missing, unreadable or corrupt data
// yields an empty collection; the problem is logged and never returned.
func Rehydrate(ctx context.Context, kv KV, keys Keys, logger zerolog.Logger) Snapshot {
	var snap Snapshot

	if data, ok := load(ctx, kv, keys.Cart, logger); ok {
		cart, err := DecodeCart(data)
		if err != nil {
			logger.Warn().Err(err).Str("key", keys.Cart).Msg("discarding corrupt cart")
		} else {
			snap.Cart = cart
		}
	}

	if data, ok := load(ctx, kv, keys.Wishlist, logger); ok {
		ids, err := DecodeWishlist(data)
		if err != nil {
			logger.Warn().Err(err).Str("key", keys.Wishlist).Msg("discarding corrupt wishlist")
		} else {
			snap.Wishlist = ids
		}
	}

	return Normalize(snap)
}

func load(ctx context.Context, kv KV, key string, logger zerolog.Logger) ([]byte, bool) {
	data, ok, err := kv.Get(ctx, key)
	if err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("failed to read persisted state")
		return nil, false
	}
	return data, ok
}
