package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/trizel-ai/trizel/pkg/i18n"
)

// LanguageSwitcher renders a GET form to /lang. It works without
// JavaScript; site.js submits it on change.
func LanguageSwitcher(t *i18n.Translator, locales *i18n.Locales, current i18n.Locale, path string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(ctx, w)
		h.raw(`<form class="lang-switcher" method="get" action="/lang">`)
		h.raw(`<input type="hidden" name="from"`)
		h.attr("value", path)
		h.raw(`><label for="lang-switcher">`)
		h.text(t.T("language.label"))
		h.raw(`</label><select id="lang-switcher" name="to">`)
		for _, l := range locales.All() {
			h.raw(`<option`)
			h.attr("value", l.Code)
			h.attr("lang", l.Code)
			h.attr("dir", string(l.Dir))
			if l.Code == current.Code {
				h.raw(` selected`)
			}
			h.raw(`>`)
			h.text(l.Name)
			h.raw(`</option>`)
		}
		h.raw(`</select><button type="submit">`)
		h.text(t.T("language.submit"))
		h.raw(`</button></form>`)
		return h.done()
	})
}
