package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/trizel-ai/trizel/pkg/i18n"
	"github.com/trizel-ai/trizel/pkg/modal"
)

// Section is a localized top-level page linked from the navigation.
type Section struct {
	Slug string
	Key  string // translation key of the link text in the site namespace
}

// Sections lists the localized sections in navigation order.
var Sections = []Section{
	{Slug: "methodology", Key: "nav.methodology"},
	{Slug: "governance-status", Key: "nav.governance_status"},
	{Slug: "how-to-cite", Key: "nav.how_to_cite"},
	{Slug: "scientific-narrative", Key: "nav.scientific_narrative"},
	{Slug: "scientific-publication", Key: "nav.scientific_publication"},
	{Slug: "system-map", Key: "nav.system_map"},
}

// Page holds everything the layout needs for one response.
type Page struct {
	T           *i18n.Translator // site namespace, bound to the resolved locale
	Locales     *i18n.Locales
	Path        string // request path, used by the switcher and the assistant links
	Title       string
	Description string
	Content     templ.Component
	Indicator   templ.Component // initial indicator content; usually the fallback
	Assistant   modal.Snapshot
}

// Layout renders the full document. lang and dir come from the translator's
// locale, which the I18n middleware resolved from the URL path.
func Layout(p Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		t := p.T
		locale := t.Locale()
		dir := locale.Dir
		if dir == "" {
			dir = i18n.LTR
		}

		title := t.T("site_title")
		if p.Title != "" && p.Title != title {
			title = p.Title + " · " + title
		}

		h := newHTML(ctx, w)
		h.raw(`<!doctype html><html`)
		h.attr("lang", locale.Code)
		h.attr("dir", string(dir))
		h.raw(`><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(title)
		h.raw(`</title>`)
		if p.Description != "" {
			h.raw(`<meta name="description"`)
			h.attr("content", p.Description)
			h.raw(`>`)
		}
		h.raw(`<link rel="stylesheet" href="/static/css/site.css">`)
		h.raw(`<script src="/static/js/site.js" defer></script></head>`)

		if p.Assistant.ScrollLocked {
			h.raw(`<body class="modal-open">`)
		} else {
			h.raw(`<body>`)
		}
		h.raw(`<a class="skip-to-content" href="#main-content">`)
		h.text(t.T("skip_link"))
		h.raw(`</a>`)
		h.component(ArchiveBanner(t, p.Path))

		h.raw(`<header class="site-header container"><div><a class="site-title"`)
		h.href("/" + locale.Code + "/")
		h.raw(`>`)
		h.text(t.T("site_title"))
		h.raw(`</a><span class="site-tagline">`)
		h.text(t.T("tagline"))
		h.raw(`</span></div>`)
		h.component(Navigation(t))
		if p.Locales != nil {
			h.component(LanguageSwitcher(t, p.Locales, locale, p.Path))
		}
		h.raw(`</header>`)

		h.raw(`<main id="main-content" class="container" tabindex="-1">`)
		h.component(p.Content)
		h.component(DailyIndicatorContainer(t, p.Indicator))
		h.raw(`</main>`)

		h.raw(`<footer class="site-footer container"><p>`)
		h.text(t.T("footer.text"))
		h.raw(` • <a`)
		h.href(GovernancePath)
		h.raw(`>`)
		h.text(t.T("footer.governance"))
		h.raw(`</a></p></footer>`)

		h.component(AssistantButton(t, p.Path))
		h.component(AssistantDialog(t, p.Path, p.Assistant))
		h.raw(`</body></html>`)
		return h.done()
	})
}

// Navigation renders links to the localized sections.
func Navigation(t *i18n.Translator) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		code := t.Language()
		h := newHTML(ctx, w)
		h.raw(`<nav class="site-nav"`)
		h.attr("aria-label", t.T("nav.label"))
		h.raw(`><ul><li><a`)
		h.href("/" + code + "/")
		h.raw(`>`)
		h.text(t.T("nav.home"))
		h.raw(`</a></li>`)
		for _, s := range Sections {
			h.raw(`<li><a`)
			h.href("/" + code + "/" + s.Slug + "/")
			h.raw(`>`)
			h.text(t.T(s.Key))
			h.raw(`</a></li>`)
		}
		h.raw(`</ul></nav>`)
		return h.done()
	})
}
