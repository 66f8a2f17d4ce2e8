// Package internal holds the core types behind the trizel facade.
//
// Import "github.com/trizel-ai/trizel" instead; it re-exports the public API.
//
// # Core Types
//
//   - App: owns the chi router, the middleware chain and the server lifecycle
//   - Context: request/response access, rendering, logging and translation helpers
//   - Router: the interface handlers use to declare routes
//   - Handler: a type that declares routes on a Router
//   - HandlerFunc: a route handler that returns an error
//   - Middleware: wraps a HandlerFunc
//   - Extractor: an ordered chain of value sources (header, query, URL param, path prefix)
//
// # Context as context.Context
//
// Context embeds context.Context, so it can be passed to any function that
// expects one. Deadline, Done, Err and Value delegate to the request context:
//
//	func (h *Pages) indicator(c trizel.Context) error {
//	    st, err := h.status.Load(c)
//	    ...
//	}
//
// # Translation
//
// The I18n middleware resolves the locale from the URL path and stores a
// translator under TranslatorKey. Handlers read it through c.T, c.Locale and
// c.Translator; without the middleware c.T returns the key unchanged.
//
// # HTMX
//
// Requests carrying HX-Request get their redirect and error statuses rewritten
// to 200 by ResponseWriter. c.Redirect sets HX-Redirect for them, and
// c.Render applies the htmx response headers from its options.
//
// # Lifecycle
//
// App.Run listens, logs the bound address and blocks until SIGINT, SIGTERM
// or cancellation of the WithContext context. Shutdown stops the server and
// then runs ShutdownHook callbacks in order, bounded by ShutdownTimeout.
package internal
