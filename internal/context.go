package internal

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/trizel-ai/trizel/pkg/htmx"
	"github.com/trizel-ai/trizel/pkg/i18n"
)

// TranslatorKey is the context key of the request's *i18n.Translator.
type TranslatorKey struct{}

// LanguageKey is the context key of the resolved language code.
type LanguageKey struct{}

// LocaleKey is the context key of the resolved i18n.Locale.
type LocaleKey struct{}

// Component is anything that renders itself to a writer (templ.Component).
type Component interface {
	Render(ctx context.Context, w io.Writer) error
}

// Context is what handlers and middleware receive. It is itself a
// context.Context backed by the current request context, so Set is visible
// to everything downstream.
type Context interface {
	context.Context

	Request() *http.Request
	Response() http.ResponseWriter
	// ResponseWriter exposes the status and byte count written so far.
	ResponseWriter() *ResponseWriter
	Context() context.Context

	// Param, Query and Header return "" when the value is absent.
	Param(name string) string
	Query(name string) string
	QueryDefault(name, defaultValue string) string
	Path() string
	Header(name string) string
	SetHeader(name, value string)

	JSON(code int, v any) error
	String(code int, s string) error
	NoContent(code int) error
	// Redirect answers HTMX requests with HX-Redirect instead of a 3xx.
	Redirect(code int, url string) error
	// Error only builds the value; return it so the error handler renders it.
	Error(code int, message string, opts ...HTTPErrorOption) *HTTPError

	IsHTMX() bool
	// Render writes an HTML response. opts are ignored unless the request
	// came from HTMX.
	Render(code int, component Component, opts ...htmx.RenderOption) error
	// RenderPartial sends partial to HTMX and fullPage to everyone else.
	RenderPartial(code int, fullPage, partial Component, opts ...htmx.RenderOption) error
	Written() bool

	Logger() *slog.Logger
	LogDebug(msg string, attrs ...any)
	LogInfo(msg string, attrs ...any)
	LogWarn(msg string, attrs ...any)
	LogError(msg string, attrs ...any)

	Set(key any, value any)
	Get(key any) any

	// T falls back to returning key when no I18n middleware ran.
	T(key string, placeholders ...i18n.M) string
	Translator() *i18n.Translator
	Language() string
	Locale() i18n.Locale
}

type requestContext struct {
	r   *http.Request
	w   *ResponseWriter
	log *slog.Logger
}

func newContext(w http.ResponseWriter, r *http.Request, app *App) *requestContext {
	rw, ok := w.(*ResponseWriter)
	if !ok {
		rw = NewResponseWriter(w, htmx.IsHTMX(r))
	}
	return &requestContext{r: r, w: rw, log: app.logger}
}

func (c *requestContext) Request() *http.Request { return c.r }
func (c *requestContext) Response() http.ResponseWriter { return c.w }
func (c *requestContext) ResponseWriter() *ResponseWriter { return c.w }
func (c *requestContext) Context() context.Context { return c.r.Context() }

func (c *requestContext) Deadline() (time.Time, bool) { return c.r.Context().Deadline() }
func (c *requestContext) Done() <-chan struct{} { return c.r.Context().Done() }
func (c *requestContext) Err() error { return c.r.Context().Err() }
func (c *requestContext) Value(key any) any { return c.r.Context().Value(key) }

func (c *requestContext) Param(name string) string { return chi.URLParam(c.r, name) }
func (c *requestContext) Query(name string) string { return c.r.URL.Query().Get(name) }
func (c *requestContext) Path() string { return c.r.URL.Path }
func (c *requestContext) Header(name string) string { return c.r.Header.Get(name) }

func (c *requestContext) QueryDefault(name, defaultValue string) string {
	if v := c.Query(name); v != "" {
		return v
	}
	return defaultValue
}

func (c *requestContext) SetHeader(name, value string) {
	c.w.Header().Set(name, value)
}

// start sets the content type and writes the status line.
func (c *requestContext) start(code int, contentType string) {
	if contentType != "" {
		c.w.Header().Set("Content-Type", contentType)
	}
	c.w.WriteHeader(code)
}

func (c *requestContext) JSON(code int, v any) error {
	c.start(code, "application/json; charset=utf-8")
	return json.NewEncoder(c.w).Encode(v)
}

func (c *requestContext) String(code int, s string) error {
	c.start(code, "text/plain; charset=utf-8")
	_, err := io.WriteString(c.w, s)
	return err
}

func (c *requestContext) NoContent(code int) error {
	c.start(code, "")
	return nil
}

func (c *requestContext) Redirect(code int, url string) error {
	htmx.RedirectWithStatus(c.w, c.r, url, code)
	return nil
}

func (c *requestContext) Error(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(code, message, opts...)
}

func (c *requestContext) IsHTMX() bool { return htmx.IsHTMX(c.r) }

func (c *requestContext) Render(code int, component Component, opts ...htmx.RenderOption) error {
	parts := []htmx.Renderable{component}
	if len(opts) > 0 && c.IsHTMX() {
		cfg := htmx.NewConfig(opts...)
		cfg.ApplyHeaders(c.w)
		parts = append(parts, cfg.OOBComponents...)
	}

	c.start(code, "text/html; charset=utf-8")
	for _, part := range parts {
		if err := part.Render(c.r.Context(), c.w); err != nil {
			return err
		}
	}
	return nil
}

func (c *requestContext) RenderPartial(code int, fullPage, partial Component, opts ...htmx.RenderOption) error {
	if !c.IsHTMX() {
		return c.Render(code, fullPage)
	}
	return c.Render(code, partial, opts...)
}

func (c *requestContext) Written() bool { return c.w.Written() }

func (c *requestContext) Logger() *slog.Logger { return c.log }

func (c *requestContext) LogDebug(msg string, attrs ...any) {
	c.log.DebugContext(c.r.Context(), msg, attrs...)
}

func (c *requestContext) LogInfo(msg string, attrs ...any) {
	c.log.InfoContext(c.r.Context(), msg, attrs...)
}

func (c *requestContext) LogWarn(msg string, attrs ...any) {
	c.log.WarnContext(c.r.Context(), msg, attrs...)
}

func (c *requestContext) LogError(msg string, attrs ...any) {
	c.log.ErrorContext(c.r.Context(), msg, attrs...)
}

func (c *requestContext) Set(key, value any) {
	c.r = c.r.WithContext(context.WithValue(c.r.Context(), key, value))
}

func (c *requestContext) Get(key any) any { return c.r.Context().Value(key) }

func (c *requestContext) Translator() *i18n.Translator {
	tr, _ := c.Get(TranslatorKey{}).(*i18n.Translator)
	return tr
}

func (c *requestContext) T(key string, placeholders ...i18n.M) string {
	tr := c.Translator()
	if tr == nil {
		return key
	}
	return tr.T(key, placeholders...)
}

// Language prefers the explicit LanguageKey over the translator's language.
func (c *requestContext) Language() string {
	if lang, ok := c.Get(LanguageKey{}).(string); ok {
		return lang
	}
	if tr := c.Translator(); tr != nil {
		return tr.Language()
	}
	return ""
}

func (c *requestContext) Locale() i18n.Locale {
	if loc, ok := c.Get(LocaleKey{}).(i18n.Locale); ok {
		return loc
	}
	if tr := c.Translator(); tr != nil {
		return tr.Locale()
	}
	return i18n.Locale{}
}
