// Package middlewares provides HTTP middleware for trizel applications.
//
// # I18n
//
// I18n resolves the locale from the first URL path segment and stores a
// translator bound to it. Paths without a known locale segment get the
// canonical locale; there is no cookie or session state.
//
//	app := trizel.New(
//	    trizel.WithMiddleware(
//	        middlewares.I18n(catalog, locales),
//	    ),
//	)
//
// Handlers translate through the context:
//
//	title := c.T("banner.title")
//
// Use LocaleExtractor with WithLogger to add "locale" to request logs.
//
// # Request ID
//
// RequestID assigns an ID to each request, keeping an upstream X-Request-ID
// or X-Correlation-ID when present and generating a UUID otherwise.
// RequestIDExtractor adds "request_id" to every log entry:
//
//	app := trizel.New(
//	    trizel.WithLogger("site", middlewares.RequestIDExtractor(), middlewares.LocaleExtractor()),
//	    trizel.WithMiddleware(middlewares.RequestID()),
//	)
//
// # Recover
//
// Recover converts panics to *PanicError for the app's error handler.
//
// # Timeout
//
// Timeout puts a deadline on the handler's context and returns *TimeoutError
// when it expires. The handler goroutine keeps running; long operations
// should watch c.Done().
//
// # Recommended Order
//
//	trizel.WithMiddleware(
//	    middlewares.RequestID(),            // ID for all subsequent logging
//	    middlewares.Recover(),              // catches panics from everything below
//	    middlewares.Timeout(10*time.Second),
//	    middlewares.I18n(catalog, locales),
//	)
package middlewares
