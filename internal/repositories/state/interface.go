// Package state persists small named blobs of application state (the session
// blob among them) in the local SQLite database.
package state

import "context"

type Repository interface {
	// Get returns the value stored under key, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set inserts or replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes a single key.
	Delete(ctx context.Context, key string) error

	// Clear removes all keys.
	Clear(ctx context.Context) error
}
