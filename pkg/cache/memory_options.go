package cache

import "time"

// MemoryOption tunes NewMemory.
type MemoryOption func(*memoryConfig)

type memoryConfig struct {
	ttl      time.Duration // applied when Set gets a zero TTL
	sweep    time.Duration // janitor period; zero disables it
	capacity int           // zero means unbounded
}

var defaultMemoryConfig = memoryConfig{
	ttl:   10 * time.Minute,
	sweep: time.Minute,
}

// WithDefaultTTL replaces the 10 minute TTL used for Set(..., 0).
func WithDefaultTTL(d time.Duration) MemoryOption {
	return func(c *memoryConfig) { c.ttl = d }
}

// WithCleanupInterval sets the janitor period (default one minute). With
// zero there is no janitor and expired entries are only dropped on Get.
func WithCleanupInterval(d time.Duration) MemoryOption {
	return func(c *memoryConfig) { c.sweep = d }
}

// WithMaxEntries bounds the cache; the least recently used entry is evicted
// to make room.
func WithMaxEntries(n int) MemoryOption {
	return func(c *memoryConfig) { c.capacity = n }
}
