// Package cache provides a generic, process-local cache with TTL expiration,
// LRU eviction and stampede protection.
//
// The site caches rendered markdown documents so that repeated page views do
// not re-run the markdown pipeline. Daily status records are never cached.
//
//	pages := cache.NewMemory[markdown.Document](cache.WithDefaultTTL(10 * time.Minute))
//	defer pages.Close()
//
//	doc, err := pages.GetOrSet(ctx, "fr/methodology", func(ctx context.Context) (markdown.Document, time.Duration, error) {
//	    d, err := renderer.RenderFile(fsys, "content/fr/methodology.md")
//	    return d, 0, err // 0 = default TTL
//	})
//
// Concurrent misses for one key run the loader once (golang.org/x/sync/singleflight).
package cache
