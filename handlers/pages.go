package handlers

import (
	"errors"
	"net/http"

	"golang.org/x/text/language"

	"github.com/trizel-ai/trizel"
	"github.com/trizel-ai/trizel/pkg/content"
	"github.com/trizel-ai/trizel/pkg/i18n"
	"github.com/trizel-ai/trizel/views"
)

// Pages serves the markdown content of the site.
type Pages struct {
	site    Site
	catalog *i18n.I18n
	pages   *content.Store
	docs    *content.Store
}

// NewPages creates the page handler. pages reads the content tree, docs
// reads governance documents from the site root.
func NewPages(site Site, catalog *i18n.I18n, pages, docs *content.Store) *Pages {
	return &Pages{site: site, catalog: catalog, pages: pages, docs: docs}
}

// Routes implements trizel.Handler.
func (h *Pages) Routes(r trizel.Router) {
	r.GET("/", h.index)
	r.GET("/{name}.html", h.root)
	r.GET("/{name}.md", h.document)
	r.GET("/{locale}", h.localeRoot)
	r.GET("/{locale}/", h.localized)
	r.GET("/{locale}/{name}.html", h.localized)
	r.GET("/{locale}/{slug}/", h.localized)
}

func (h *Pages) index(c trizel.Context) error {
	page, err := h.pages.Root(c, content.IndexSlug)
	if err != nil {
		return pageError(err)
	}
	return h.render(c, page)
}

func (h *Pages) root(c trizel.Context) error {
	page, err := h.pages.Root(c, c.Param("name"))
	if err != nil {
		return pageError(err)
	}
	return h.render(c, page)
}

func (h *Pages) document(c trizel.Context) error {
	page, err := h.docs.Document(c, c.Param("name")+".md")
	if err != nil {
		return pageError(err)
	}
	return h.render(c, page)
}

func (h *Pages) localeRoot(c trizel.Context) error {
	code := c.Param("locale")
	if _, ok := h.site.Locales.Lookup(code); !ok {
		return trizel.ErrNotFound("page not found")
	}
	return c.Redirect(http.StatusMovedPermanently, "/"+code+"/")
}

func (h *Pages) localized(c trizel.Context) error {
	if !h.acceptsLocale(c.Param("locale")) {
		return trizel.ErrNotFound("page not found")
	}

	slug := c.Param("slug")
	if slug == "" {
		slug = c.Param("name")
	}

	// The I18n middleware already mapped unknown codes to the canonical locale.
	code := c.Language()
	if code == "" {
		code = h.site.Locales.Canonical().Code
	}

	page, err := h.pages.Localized(c, code, slug)
	if err != nil {
		return pageError(err)
	}
	return h.render(c, page)
}

// acceptsLocale reports whether code may start a localized URL: a locale of
// the table, or any registered language, which is served canonical content.
func (h *Pages) acceptsLocale(code string) bool {
	if _, ok := h.site.Locales.Lookup(code); ok {
		return true
	}
	_, err := language.Parse(code)
	return err == nil
}

func (h *Pages) render(c trizel.Context, page *content.Page) error {
	tr := h.site.translator(c, h.catalog)
	return c.Render(http.StatusOK, views.Layout(h.site.page(c, tr,
		page.Title, page.Meta.Description, views.Article(tr, page),
	)))
}

func pageError(err error) error {
	if errors.Is(err, content.ErrNotFound) || errors.Is(err, content.ErrInvalidName) {
		return trizel.ErrNotFound("page not found", trizel.WithError(err))
	}
	return trizel.ErrInternal("page could not be rendered", trizel.WithError(err))
}
