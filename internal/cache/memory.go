package cache

import (
	"context"
	"strings"
	"time"

	"github.com/viccon/sturdyc"
)

const (
	defaultShards             = 256
	defaultEvictionPercentage = 10
)

// MemoryStore is the in-process Store backed by a sharded sturdyc client.
type MemoryStore struct {
	client *sturdyc.Client[[]byte]
}

// Ensure MemoryStore implements Store
var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an in-memory cache with the given capacity and TTL.
func NewMemoryStore(capacity int, ttl time.Duration) *MemoryStore {
	if capacity <= 0 {
		capacity = 10000
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &MemoryStore{
		client: sturdyc.New[[]byte](capacity, defaultShards, ttl, defaultEvictionPercentage),
	}
}

// Get returns the cached bytes for key
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, ok := s.client.Get(key)
	if !ok {
		return nil, false, nil
	}
	return value, true, nil
}

// Set stores value under key
func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	s.client.Set(key, value)
	return nil
}

// DeleteByPrefix evicts every entry whose key starts with prefix
func (s *MemoryStore) DeleteByPrefix(ctx context.Context, prefix string) error {
	for _, key := range s.client.ScanKeys() {
		if strings.HasPrefix(key, prefix) {
			s.client.Delete(key)
		}
	}
	return nil
}

// Flush evicts every entry in the namespace
func (s *MemoryStore) Flush(ctx context.Context) error {
	return s.DeleteByPrefix(ctx, Namespace+KeySeparator)
}
