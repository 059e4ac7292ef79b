// Package session maps browsing sessions to their cart/wishlist stores.
package session

import (
	"context"
	"sync"
	"time"

	"atelier/internal/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// Config controls how sessions are kept in memory and persisted.
type Config struct {
	// KeyPrefix namespaces storage keys, e.g. "atelier".
	KeyPrefix string

	// IdleTTL is how long an unused session stays in memory. Zero keeps
	// sessions until Forget is called.
	IdleTTL time.Duration

	// ReadTimeout bounds rehydrating a session on first use.
	ReadTimeout time.Duration

	// WriteTimeout bounds each persistence write.
	WriteTimeout time.Duration
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{
		KeyPrefix:    "atelier",
		IdleTTL:      30 * time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
}

type entry struct {
	store    *store.Store
	lastSeen time.Time
}

// Manager lazily creates one store per session, rehydrated from and
// persisted to the configured KV.
type Manager struct {
	kv     store.KV
	cfg    Config
	logger zerolog.Logger
	now    func() time.Time

	mu       sync.Mutex
	sessions map[string]*entry

	// loads collapses concurrent rehydrations of the same session.
	loads singleflight.Group
}

// NewManager creates a session manager.
func NewManager(kv store.KV, cfg Config, logger zerolog.Logger) *Manager {
	return &Manager{
		kv:       kv,
		cfg:      cfg,
		logger:   logger.With().Str("component", "session-manager").Logger(),
		now:      time.Now,
		sessions: make(map[string]*entry),
	}
}

// NewID returns a fresh session identifier.
func (m *Manager) NewID() string {
	return uuid.NewString()
}

// Get returns the store of sessionID, rehydrating it on first use. Storage is
// read without holding the manager lock, so a slow backend only delays
// requests for the session being loaded.
func (m *Manager) Get(ctx context.Context, sessionID string) *store.Store {
	if s, ok := m.lookup(sessionID); ok {
		return s
	}

	v, _, _ := m.loads.Do(sessionID, func() (interface{}, error) {
		if s, ok := m.lookup(sessionID); ok {
			return s, nil
		}
		return m.load(ctx, sessionID), nil
	})
	return v.(*store.Store)
}

func (m *Manager) lookup(sessionID string) (*store.Store, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[sessionID]
	if !ok {
		return nil, false
	}
	e.lastSeen = m.now()
	return e.store, true
}

// load rehydrates sessionID and registers its store. The read outlives a
// cancelled request so that one aborted caller cannot install an empty cart
// for everyone waiting on the same load.
func (m *Manager) load(ctx context.Context, sessionID string) *store.Store {
	keys := store.SessionKeys(m.cfg.KeyPrefix, sessionID)
	logger := m.logger.With().Str("session_id", sessionID).Logger()

	readCtx := context.WithoutCancel(ctx)
	if m.cfg.ReadTimeout > 0 {
		var cancel context.CancelFunc
		readCtx, cancel = context.WithTimeout(readCtx, m.cfg.ReadTimeout)
		defer cancel()
	}

	s := store.New(store.Rehydrate(readCtx, m.kv, keys, logger))
	s.Subscribe(store.NewPersister(m.kv, keys, m.cfg.WriteTimeout, logger).OnChange)

	m.mu.Lock()
	m.sessions[sessionID] = &entry{store: s, lastSeen: m.now()}
	m.mu.Unlock()

	logger.Debug().Int("cart_count", s.CartCount()).Msg("session rehydrated")
	return s
}

// Forget drops the in-memory store of sessionID. Persisted state is kept and
// the next Get rehydrates it.
func (m *Manager) Forget(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
}

// Len returns the number of sessions held in memory.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Evict drops sessions idle for longer than the configured TTL and returns
// how many were dropped.
func (m *Manager) Evict(now time.Time) int {
	if m.cfg.IdleTTL <= 0 {
		return 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for id, e := range m.sessions {
		if now.Sub(e.lastSeen) > m.cfg.IdleTTL {
			delete(m.sessions, id)
			evicted++
		}
	}
	return evicted
}

// Run evicts idle sessions every interval until ctx is cancelled.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	if m.cfg.IdleTTL <= 0 || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.logger.Info().Msg("session eviction stopped")
			return
		case t := <-ticker.C:
			if n := m.Evict(t); n > 0 {
				m.logger.Debug().Int("evicted", n).Int("remaining", m.Len()).Msg("evicted idle sessions")
			}
		}
	}
}
