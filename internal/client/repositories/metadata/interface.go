// Package metadata is the console's local key/value storage, the
// counterpart of a browser's localStorage. The persisted session snapshot
// lives here under a single key.
package metadata

import "context"

// Repository maps string keys to opaque byte values.
// Get of an absent key returns (nil, nil).
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
