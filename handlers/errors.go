package handlers

import (
	"log/slog"
	"net/http"

	"github.com/trizel-ai/trizel"
	"github.com/trizel-ai/trizel/middlewares"
	"github.com/trizel-ai/trizel/pkg/i18n"
	"github.com/trizel-ai/trizel/views"
)

// Errors renders error responses as localized pages.
type Errors struct {
	site    Site
	catalog *i18n.I18n
}

// NewErrors creates the error renderer.
func NewErrors(site Site, catalog *i18n.I18n) *Errors {
	return &Errors{site: site, catalog: catalog}
}

// Handle implements trizel.ErrorHandler.
func (h *Errors) Handle(c trizel.Context, err error) error {
	code := statusCode(err)
	if code >= http.StatusInternalServerError {
		c.LogError("request failed", slog.Int("status", code), slog.Any("error", err))
	} else {
		c.LogDebug("request rejected", slog.Int("status", code), slog.Any("error", err))
	}
	return h.render(c, code)
}

// NotFound handles unmatched routes.
func (h *Errors) NotFound(c trizel.Context) error {
	return h.render(c, http.StatusNotFound)
}

func (h *Errors) render(c trizel.Context, code int) error {
	tr := h.site.translator(c, h.catalog)
	title, message := errorText(tr, code)
	body := views.ErrorPage(tr, code, title, message)

	// HTMX swaps only the fragment; full navigations get the whole layout.
	if c.IsHTMX() {
		return c.Render(code, body)
	}
	return c.Render(code, views.Layout(h.site.page(c, tr, title, "", body)))
}

func statusCode(err error) int {
	if httpErr := trizel.AsHTTPError(err); httpErr != nil {
		return httpErr.Code
	}
	if middlewares.IsTimeoutError(err) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func errorText(tr *i18n.Translator, code int) (string, string) {
	switch {
	case code == http.StatusNotFound:
		return tr.T("error.not_found_title"), tr.T("error.not_found_message")
	case code >= http.StatusInternalServerError:
		return tr.T("error.internal_title"), tr.T("error.internal_message")
	default:
		return tr.T("error.bad_request_title"), tr.T("error.bad_request_message")
	}
}
