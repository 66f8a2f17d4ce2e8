package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/trizel-ai/trizel/pkg/i18n"
)

// ArchivePath is the root of the static artifact archive.
const ArchivePath = "/artifacts/"

// ArchiveBanner renders the archive mode notice. It renders nothing on
// archive pages themselves.
func ArchiveBanner(t *i18n.Translator, path string) templ.Component {
	if strings.HasPrefix(path, ArchivePath) {
		return templ.NopComponent
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(ctx, w)
		h.raw(`<div class="archive-mode-banner" role="note"`)
		h.attr("aria-label", t.T("banner.aria_label"))
		h.raw(`><div class="archive-mode-banner__content">`)
		h.raw(`<span class="archive-mode-banner__icon" aria-hidden="true">📦</span>`)
		h.raw(`<div class="archive-mode-banner__text"><strong>`)
		h.text(t.T("banner.title"))
		h.raw(`</strong> `)
		h.text(t.T("banner.text"))
		h.raw(` <a class="archive-mode-banner__link"`)
		h.href(ArchivePath)
		h.raw(`>`)
		h.text(t.T("banner.link"))
		h.raw(`</a></div></div></div>`)
		return h.done()
	})
}
