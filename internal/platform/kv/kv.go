// Package kv defines the narrow key-value port backing session-local state
// (theme, preferences, recent scans). Implementations are last-write-wins;
// concurrent writers are tolerated, not coordinated.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no persisted value.
var ErrNotFound = errors.New("kv: key not found")

// Store is a minimal string key-value store.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	// Clear removes every key owned by this store.
	Clear(ctx context.Context) error
}
