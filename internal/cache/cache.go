// Package cache provides the result cache sitting in front of the
// expensive drug read operations. Keys are always tenant-prefixed so one
// tenant's entries can never be served to, or evicted by, another tenant.
package cache

import "context"

// Store is the key-value backend behind the query cache. Implementations
// must be safe for concurrent use. Values are opaque serialized bytes;
// the service layer owns the encoding.
type Store interface {
	// Get returns the cached bytes and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores the bytes under key with the backend's configured TTL.
	Set(ctx context.Context, key string, value []byte) error
	// DeleteByPrefix evicts every entry whose key starts with prefix.
	DeleteByPrefix(ctx context.Context, prefix string) error
	// Flush evicts every entry in this cache's namespace.
	Flush(ctx context.Context) error
}
