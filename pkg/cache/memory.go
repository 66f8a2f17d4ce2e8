package cache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type item[V any] struct {
	key      string
	value    V
	deadline time.Time // zero: no expiry
}

func (it *item[V]) stale(now time.Time) bool {
	return !it.deadline.IsZero() && now.After(it.deadline)
}

// Memory is a TTL cache with optional LRU bounding. The front of the
// recency list is the most recently used item.
type Memory[V any] struct {
	cfg     memoryConfig
	loads   singleflight.Group
	stop    chan struct{}
	mu      sync.Mutex
	index   map[string]*list.Element
	recency *list.List
	stats   Stats
	closed  bool
}

// NewMemory returns a started cache; Close stops its janitor.
//
//	pages := cache.NewMemory[*content.Page](
//	    cache.WithDefaultTTL(cfg.ContentCacheTTL),
//	    cache.WithMaxEntries(512),
//	)
//	defer pages.Close()
func NewMemory[V any](opts ...MemoryOption) *Memory[V] {
	cfg := defaultMemoryConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	m := &Memory[V]{
		cfg:     cfg,
		stop:    make(chan struct{}),
		index:   make(map[string]*list.Element),
		recency: list.New(),
	}
	if cfg.sweep > 0 {
		go m.sweepLoop()
	}
	return m
}

func (m *Memory[V]) Get(_ context.Context, key string) (V, error) {
	var zero V

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return zero, ErrClosed
	}

	el := m.index[key]
	if el == nil || m.dropIfStale(el, time.Now()) {
		m.stats.Misses++
		return zero, ErrNotFound
	}
	m.recency.MoveToFront(el)
	m.stats.Hits++
	return el.Value.(*item[V]).value, nil
}

func (m *Memory[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}

	deadline := m.deadline(ttl)
	if el := m.index[key]; el != nil {
		it := el.Value.(*item[V])
		it.value, it.deadline = value, deadline
		m.recency.MoveToFront(el)
		return nil
	}

	if m.cfg.capacity > 0 && len(m.index) >= m.cfg.capacity {
		if lru := m.recency.Back(); lru != nil {
			m.unlink(lru)
			m.stats.Evictions++
		}
	}
	m.index[key] = m.recency.PushFront(&item[V]{key: key, value: value, deadline: deadline})
	return nil
}

// Delete is a no-op for a missing key.
func (m *Memory[V]) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	if el := m.index[key]; el != nil {
		m.unlink(el)
	}
	return nil
}

type loadResult[V any] struct {
	value V
	ttl   time.Duration
}

// GetOrSet serves key from the cache or stores what fn returns. Concurrent
// misses on one key share a single fn call; a failed load stores nothing.
func (m *Memory[V]) GetOrSet(ctx context.Context, key string, fn LoadFunc[V]) (V, error) {
	if v, err := m.Get(ctx, key); err == nil {
		return v, nil
	}

	out, err, _ := m.loads.Do(key, func() (any, error) {
		v, ttl, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		return loadResult[V]{value: v, ttl: ttl}, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}

	res := out.(loadResult[V])
	_ = m.Set(ctx, key, res.value, res.ttl)
	return res.value, nil
}

// Stats returns a snapshot of the counters.
func (m *Memory[V]) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.stats
	s.Entries = len(m.index)
	return s
}

// Close stops the janitor and fails later calls with ErrClosed. Calling it
// twice is safe.
func (m *Memory[V]) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.closed {
		m.closed = true
		close(m.stop)
	}
	return nil
}

func (m *Memory[V]) deadline(ttl time.Duration) time.Time {
	if ttl == 0 {
		ttl = m.cfg.ttl
	}
	if ttl < 0 {
		return time.Time{}
	}
	return time.Now().Add(ttl)
}

func (m *Memory[V]) sweepLoop() {
	t := time.NewTicker(m.cfg.sweep)
	defer t.Stop()
	for {
		select {
		case <-m.stop:
			return
		case now := <-t.C:
			m.sweep(now)
		}
	}
}

func (m *Memory[V]) sweep(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for el := m.recency.Back(); el != nil; {
		prev := el.Prev()
		m.dropIfStale(el, now)
		el = prev
	}
}

// dropIfStale unlinks el when it has expired. m.mu must be held.
func (m *Memory[V]) dropIfStale(el *list.Element, now time.Time) bool {
	if !el.Value.(*item[V]).stale(now) {
		return false
	}
	m.unlink(el)
	return true
}

// unlink removes el from both indexes. m.mu must be held.
func (m *Memory[V]) unlink(el *list.Element) {
	m.recency.Remove(el)
	delete(m.index, el.Value.(*item[V]).key)
}

var _ Cache[any] = (*Memory[any])(nil)
