// Package session hands out one cart engine per client session. Engines are
// created lazily, hydrated from the snapshot store on first access and never
// shared across sessions.
package session

import (
	"context"
	"io"
	"log"
	"sync"

	"storefront-cart/internal/cartengine"
	"storefront-cart/internal/snapshot"
)

// Manager owns the per-session cart engines for the lifetime of the process.
type Manager struct {
	store  snapshot.Store
	logger *log.Logger

	mu      sync.RWMutex
	engines map[string]*cartengine.Engine
}

func NewManager(store snapshot.Store, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Manager{
		store:   store,
		logger:  logger,
		engines: make(map[string]*cartengine.Engine),
	}
}

// Engine returns the cart engine for the given session, creating and
// hydrating it on first access. Hydration is fail-open: a session with a
// missing or corrupt snapshot starts with an empty cart.
func (m *Manager) Engine(ctx context.Context, sessionID string) *cartengine.Engine {
	m.mu.RLock()
	engine, ok := m.engines[sessionID]
	m.mu.RUnlock()
	if ok {
		return engine
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if engine, ok := m.engines[sessionID]; ok {
		return engine
	}
	engine = cartengine.New(m.store, Key(sessionID), m.logger)
	if err := engine.LoadCart(ctx); err != nil {
		m.logger.Printf("hydrate cart for session %s: %v", sessionID, err)
	}
	m.engines[sessionID] = engine
	return engine
}

// Len reports how many sessions currently hold an engine.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.engines)
}

// Key namespaces the well-known cart key by session so all sessions can share
// one snapshot store.
func Key(sessionID string) string {
	return sessionID + ":" + snapshot.CartKey
}
