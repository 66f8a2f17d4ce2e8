package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/trizel-ai/trizel/pkg/i18n"
)

// ErrorPage renders the body of an error response.
func ErrorPage(t *i18n.Translator, code int, title, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(ctx, w)
		h.raw(`<section class="error-page"><p class="error-code">`)
		h.text(strconv.Itoa(code))
		h.raw(`</p><h1>`)
		h.text(title)
		h.raw(`</h1>`)
		if message != "" {
			h.raw(`<p>`)
			h.text(message)
			h.raw(`</p>`)
		}
		h.raw(`<p><a`)
		h.href("/" + t.Language() + "/")
		h.raw(`>`)
		h.text(t.T("error.back_home"))
		h.raw(`</a></p></section>`)
		return h.done()
	})
}
