// Package snapshot defines the key-value surface cart snapshots are persisted
// through. Consumers define the interface; implementations live in subpackages.
package snapshot

import "context"

// CartKey is the well-known key a session's cart snapshot is stored under.
const CartKey = "cart"

// Store is a key-value store holding one serialized value per key. Writes are
// all-or-nothing: a reader never observes a partially written value.
type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set replaces the value under key with one full serialized snapshot.
	Set(ctx context.Context, key, value string) error
}
