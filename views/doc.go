// Package views holds the HTML components of the site.
//
// Components implement templ.Component and are rendered through
// Context.Render. Every user-visible string comes from a translator bound
// to the request locale; values read from files are escaped, except the
// status summary and rendered markdown, which are sanitized instead.
//
//	return c.Render(http.StatusOK, views.Layout(views.Page{
//	    T:         c.Translator(),
//	    Locales:   locales,
//	    Path:      c.Path(),
//	    Content:   views.Article(c.Translator(), page),
//	    Indicator: views.DailyIndicatorFallback(c.Translator(), status.DefaultPath),
//	}))
package views
