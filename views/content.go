package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/trizel-ai/trizel/pkg/content"
	"github.com/trizel-ai/trizel/pkg/i18n"
)

// Article renders a content page. The HTML was sanitized when the markdown
// was rendered. Fallback pages carry a notice in the requested locale.
func Article(t *i18n.Translator, page *content.Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(ctx, w)
		h.raw(`<article class="content"`)
		if page.Locale != "" {
			h.attr("lang", page.Locale)
		}
		h.raw(`>`)
		if page.Fallback && page.Locale != t.Language() {
			h.raw(`<p class="fallback-notice" role="note">`)
			h.text(t.T("fallback_notice"))
			h.raw(`</p>`)
		}
		h.raw(page.HTML)
		h.raw(`</article>`)
		return h.done()
	})
}
