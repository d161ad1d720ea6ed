// Package state implements a small key/value store for client-local state:
// the persisted session reference and the local token signing key.
package state

import "context"

type Repository interface {
	// Get returns the value for key, or common.ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
