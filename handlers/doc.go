// Package handlers declares the routes of the site.
//
//	site := handlers.NewSite(locales, status.DefaultPath)
//	errs := handlers.NewErrors(site, catalog)
//
//	app := trizel.New(
//	    trizel.WithHandlers(
//	        handlers.NewPages(site, catalog, pages, docs),
//	        handlers.NewLanguage(locales),
//	        handlers.NewStatus(site, catalog, loader),
//	    ),
//	    trizel.WithErrorHandler(errs.Handle),
//	    trizel.WithNotFoundHandler(errs.NotFound),
//	)
package handlers
