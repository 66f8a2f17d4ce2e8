package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/trizel-ai/trizel/pkg/i18n"
	"github.com/trizel-ai/trizel/pkg/sanitizer"
	"github.com/trizel-ai/trizel/pkg/status"
)

// IndicatorID is the id of the daily indicator container.
const IndicatorID = "daily-indicator"

// IndicatorPartialPath returns the URL of the indicator fragment for a locale.
func IndicatorPartialPath(code string) string {
	return "/" + code + "/partials/daily-indicator"
}

// DailyIndicatorContainer wraps the indicator content. The client requests
// the fragment once after load and keeps content on any failure.
func DailyIndicatorContainer(t *i18n.Translator, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(ctx, w)
		h.raw(`<section class="daily-indicator"`)
		h.attr("id", IndicatorID)
		h.attr("aria-label", t.T("status.heading"))
		h.raw(` aria-live="polite"`)
		h.attr("hx-get", IndicatorPartialPath(t.Language()))
		h.raw(` hx-trigger="load" hx-swap="innerHTML">`)
		h.component(content)
		h.raw(`</section>`)
		return h.done()
	})
}

// DailyIndicator renders a status record. The summary may carry inline
// markup and is sanitized; every other field is escaped.
func DailyIndicator(t *i18n.Translator, rec status.Record) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(ctx, w)
		h.raw(`<div class="daily-indicator-content"><div class="indicator-badge">`)
		h.raw(`<span class="indicator-emoji" aria-hidden="true">`)
		h.text(rec.Symbol())
		h.raw(`</span><span class="indicator-status">`)
		h.text(string(rec.Status))
		h.raw(`</span></div><div class="indicator-details">`)

		h.raw(`<p class="indicator-designation"><strong>`)
		h.text(rec.Designation)
		h.raw(`</strong> (`)
		h.text(rec.EventID)
		h.raw(`)</p><p class="indicator-summary">`)
		h.raw(sanitizer.SanitizeHTML(rec.Summary))
		h.raw(`</p><p class="indicator-timestamp"><small>`)
		h.text(t.T("status.as_of", i18n.M{"date": rec.AsOfUTC}))
		h.raw(`</small></p>`)

		h.raw(`<div class="indicator-meta"><span class="meta-tag">`)
		h.text(t.T("status.gate", i18n.M{"gate": rec.Gate}))
		h.raw(`</span><span class="meta-tag">`)
		h.text(t.T("status.type", i18n.M{"type": rec.ProofType}))
		h.raw(`</span></div>`)

		h.raw(`<div class="indicator-links">`)
		link(h, rec.Links.Latest, t.T("status.latest"))
		link(h, rec.Links.Manifest, t.T("status.manifest"))
		link(h, rec.Links.Crate, t.T("status.crate"))
		h.raw(`</div></div></div>`)
		return h.done()
	})
}

func link(h *html, url, label string) {
	h.raw(`<a class="indicator-link"`)
	h.href(url)
	h.raw(`>`)
	h.text(label)
	h.raw(`</a>`)
}

// DailyIndicatorFallback links to the raw status file. It is what the page
// shows until, and unless, the status loads.
func DailyIndicatorFallback(t *i18n.Translator, statusPath string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(ctx, w)
		h.raw(`<p class="daily-indicator-fallback"><span aria-hidden="true">`)
		h.text(status.FallbackSymbol)
		h.raw(`</span> `)
		h.text(t.T("status.fallback"))
		h.raw(`: <a`)
		h.href(statusPath)
		h.raw(`>`)
		h.text(t.T("status.fallback_link"))
		h.raw(`</a></p>`)
		return h.done()
	})
}
