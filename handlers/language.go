package handlers

import (
	"net/http"
	"strings"

	"github.com/trizel-ai/trizel"
	"github.com/trizel-ai/trizel/pkg/i18n"
)

// Language serves the language switch form.
type Language struct {
	locales *i18n.Locales
}

// NewLanguage creates the language switch handler.
func NewLanguage(locales *i18n.Locales) *Language {
	return &Language{locales: locales}
}

// Routes implements trizel.Handler.
func (h *Language) Routes(r trizel.Router) {
	r.GET("/lang", h.switchLanguage)
}

// switchLanguage redirects to the "from" page in the "to" locale. Without a
// known "to" the best Accept-Language match is used.
//
//	GET /lang?to=fr&from=/en/methodology/  ->  303 /fr/methodology/
func (h *Language) switchLanguage(c trizel.Context) error {
	code := c.Query("to")
	if _, ok := h.locales.Lookup(code); !ok {
		code = h.locales.Match(c.Header("Accept-Language")).Code
	}
	return c.Redirect(http.StatusSeeOther, h.locales.SwitchPath(localPath(c.Query("from")), code))
}

// localPath keeps only the path of a same-site URL; anything else is "/".
func localPath(from string) string {
	if i := strings.IndexAny(from, "?#"); i >= 0 {
		from = from[:i]
	}
	if !strings.HasPrefix(from, "/") || strings.HasPrefix(from, "//") || strings.Contains(from, `\`) {
		return "/"
	}
	return from
}
