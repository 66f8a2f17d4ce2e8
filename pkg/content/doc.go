// Package content loads and renders the site's markdown pages.
//
// Localized pages live at {locale}/{slug}.md. A locale without its own
// document gets the canonical locale's document, mirroring the translation
// fallback for interface strings:
//
//	store := content.New(os.DirFS("site/content"), "en",
//	    content.WithCache(cache.NewMemory[*content.Page](), 10*time.Minute),
//	)
//	page, err := store.Localized(ctx, "fr", "methodology")
//	// page.Fallback reports whether en/methodology.md was used
package content
