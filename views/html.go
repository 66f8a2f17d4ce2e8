package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// html writes markup and keeps the first error.
type html struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newHTML(ctx context.Context, w io.Writer) *html {
	return &html{ctx: ctx, w: w}
}

func (h *html) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped.
func (h *html) attr(name, value string) {
	h.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// href writes an href attribute with the URL sanitized.
func (h *html) href(url string) {
	h.attr("href", string(templ.URL(url)))
}

func (h *html) component(c templ.Component) {
	if h.err == nil && c != nil {
		h.err = c.Render(h.ctx, h.w)
	}
}

func (h *html) done() error {
	return h.err
}

const chatIcon = `<path d="M21 15a2 2 0 0 1-2 2H7l-4 4V5a2 2 0 0 1 2-2h14a2 2 0 0 1 2 2z"></path>` +
	`<path d="M12 8v4"></path><path d="M12 16h.01"></path></svg>`

const closeIcon = `<line x1="18" y1="6" x2="6" y2="18"></line><line x1="6" y1="6" x2="18" y2="18"></line></svg>`

func svgOpen(class string) string {
	return `<svg class="` + class + `" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"` +
		` stroke-linecap="round" stroke-linejoin="round" aria-hidden="true">`
}
