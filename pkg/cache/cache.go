package cache

import (
	"context"
	"time"
)

// Cache is a process-local key-value cache with TTL support.
//
// TTL semantics for Set:
//   - Positive duration: item expires after this duration
//   - Zero: use the cache's configured default TTL
//   - Negative: item never expires
type Cache[V any] interface {
	// Get returns ErrNotFound if the key does not exist or has expired.
	Get(ctx context.Context, key string) (V, error)
	Set(ctx context.Context, key string, value V, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// GetOrSet returns the cached value or computes, stores and returns it.
	GetOrSet(ctx context.Context, key string, fn LoadFunc[V]) (V, error)
	Close() error
}

// LoadFunc computes a value on a cache miss along with the TTL to store it for.
type LoadFunc[V any] func(ctx context.Context) (V, time.Duration, error)

// Stats holds cache counters since creation.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Entries   int
}
