package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/trizel-ai/trizel"
	"github.com/trizel-ai/trizel/pkg/i18n"
	"github.com/trizel-ai/trizel/pkg/status"
	"github.com/trizel-ai/trizel/views"
)

// Status serves the daily indicator fragment.
type Status struct {
	site    Site
	catalog *i18n.I18n
	loader  *status.Loader
}

// NewStatus creates the status handler.
func NewStatus(site Site, catalog *i18n.I18n, loader *status.Loader) *Status {
	return &Status{site: site, catalog: catalog, loader: loader}
}

// Routes implements trizel.Handler.
func (h *Status) Routes(r trizel.Router) {
	r.GET("/partials/daily-indicator", h.indicator)
	r.GET("/{locale}/partials/daily-indicator", h.indicator)
}

// unavailable marks a failed load; it is never rendered.
type unavailable struct{}

func (unavailable) Render(context.Context, io.Writer) error { return nil }

// indicator reads the status once. On failure it answers 204 so the client
// keeps the fallback it already shows. Errors keep their real status so a
// 500 or 503 page is never swapped into the indicator.
func (h *Status) indicator(c trizel.Context) error {
	c.ResponseWriter().KeepStatus()
	tr := h.site.translator(c, h.catalog)
	c.SetHeader("Cache-Control", "no-store")

	component := h.loader.Indicator(c, func(rec status.Record) status.Component {
		return views.DailyIndicator(tr, rec)
	}, unavailable{})

	if _, failed := component.(unavailable); failed {
		return c.NoContent(http.StatusNoContent)
	}
	return c.Render(http.StatusOK, component)
}
