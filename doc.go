// Package trizel is the web layer of the TRIZEL multilingual presentation
// site: a thin application skeleton over chi with translation-aware request
// contexts, HTMX-aware rendering and graceful shutdown.
//
// # Quick Start
//
//	app := trizel.New(
//	    trizel.WithLogger("site", middlewares.RequestIDExtractor(), middlewares.LocaleExtractor()),
//	    trizel.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.Recover(),
//	        middlewares.I18n(catalog, locales),
//	    ),
//	    trizel.WithHandlers(handlers.NewPages(...), handlers.NewLanguage(locales)),
//	    trizel.WithStaticFiles("/static/", web.Static(), "."),
//	)
//
//	if err := app.Run(":8000"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Handlers
//
// Handlers implement [Handler] and declare routes on a [Router]:
//
//	func (h *Language) Routes(r trizel.Router) {
//	    r.GET("/lang", h.switchLanguage)
//	}
//
//	func (h *Language) switchLanguage(c trizel.Context) error {
//	    return c.Redirect(http.StatusSeeOther, h.locales.SwitchPath(c.Query("from"), c.Query("to")))
//	}
//
// # Locale
//
// The locale is read from the first URL path segment only. [Context.T]
// translates through the request translator, falling back to the canonical
// locale and then to the key itself.
//
// # Errors
//
// Handlers return errors. [HTTPError] carries the status code; anything else
// is a 500. [WithErrorHandler] renders them.
//
// # Lifecycle
//
// [App.Run] blocks until SIGINT or SIGTERM, drains requests, then runs
// [ShutdownHook] callbacks in order within [ShutdownTimeout].
package trizel
