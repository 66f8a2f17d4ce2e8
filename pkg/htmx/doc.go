// Package htmx detects HTMX requests and sets HTMX response headers.
//
// The site works without JavaScript; HTMX only refreshes fragments such as the
// daily indicator. Handlers branch on [IsHTMX] and pass [RenderOption] values
// to Context.Render:
//
//	if htmx.IsHTMX(r) {
//		return c.Render(http.StatusOK, views.DailyIndicator(rec, tr),
//			htmx.WithReswap(htmx.SwapOuterHTML),
//			htmx.WithTrigger("daily-status-loaded"),
//		)
//	}
//
// [RedirectWithStatus] issues a regular redirect, or HX-Redirect with 200 for
// HTMX requests since HTMX follows redirects client-side.
package htmx
