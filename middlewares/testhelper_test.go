package middlewares_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/trizel-ai/trizel/internal"
	"github.com/trizel-ai/trizel/pkg/htmx"
	"github.com/trizel-ai/trizel/pkg/i18n"
)

// testContext is a minimal internal.Context backed by a recorder.
type testContext struct {
	response http.ResponseWriter
	request  *http.Request
	params   map[string]string
	logger   *slog.Logger
}

func newTestContext(w http.ResponseWriter, r *http.Request) *testContext {
	return &testContext{
		response: w,
		request:  r,
		params:   make(map[string]string),
		logger:   slog.New(slog.DiscardHandler),
	}
}

func (c *testContext) Deadline() (time.Time, bool) { return c.request.Context().Deadline() }
func (c *testContext) Done() <-chan struct{} { return c.request.Context().Done() }
func (c *testContext) Err() error { return c.request.Context().Err() }
func (c *testContext) Value(key any) any { return c.request.Context().Value(key) }

func (c *testContext) Request() *http.Request { return c.request }
func (c *testContext) Response() http.ResponseWriter { return c.response }
func (c *testContext) ResponseWriter() *internal.ResponseWriter { return nil }
func (c *testContext) Context() context.Context { return c.request.Context() }
func (c *testContext) Param(name string) string { return c.params[name] }
func (c *testContext) Query(name string) string { return c.request.URL.Query().Get(name) }
func (c *testContext) Path() string { return c.request.URL.Path }
func (c *testContext) Header(name string) string { return c.request.Header.Get(name) }
func (c *testContext) SetHeader(name, value string) { c.response.Header().Set(name, value) }

func (c *testContext) QueryDefault(name, defaultValue string) string {
	if v := c.Query(name); v != "" {
		return v
	}
	return defaultValue
}

func (c *testContext) JSON(code int, v any) error { c.response.WriteHeader(code); return nil }

func (c *testContext) String(code int, s string) error {
	c.response.WriteHeader(code)
	_, err := io.WriteString(c.response, s)
	return err
}

func (c *testContext) NoContent(code int) error { c.response.WriteHeader(code); return nil }

func (c *testContext) Redirect(code int, url string) error {
	http.Redirect(c.response, c.request, url, code)
	return nil
}

func (c *testContext) Error(code int, message string, opts ...internal.HTTPErrorOption) *internal.HTTPError {
	err := internal.NewHTTPError(code, message)
	for _, opt := range opts {
		opt(err)
	}
	return err
}

func (c *testContext) IsHTMX() bool { return htmx.IsHTMX(c.request) }

func (c *testContext) Render(code int, component internal.Component, _ ...htmx.RenderOption) error {
	c.response.WriteHeader(code)
	return component.Render(c.request.Context(), c.response)
}

func (c *testContext) RenderPartial(code int, fullPage, partial internal.Component, opts ...htmx.RenderOption) error {
	if c.IsHTMX() {
		return c.Render(code, partial, opts...)
	}
	return c.Render(code, fullPage)
}

func (c *testContext) Written() bool { return false }
func (c *testContext) Logger() *slog.Logger { return c.logger }
func (c *testContext) LogDebug(msg string, attrs ...any) { c.logger.Debug(msg, attrs...) }
func (c *testContext) LogInfo(msg string, attrs ...any) { c.logger.Info(msg, attrs...) }
func (c *testContext) LogWarn(msg string, attrs ...any) { c.logger.Warn(msg, attrs...) }
func (c *testContext) LogError(msg string, attrs ...any) { c.logger.Error(msg, attrs...) }

func (c *testContext) Set(key, value any) {
	c.request = c.request.WithContext(context.WithValue(c.request.Context(), key, value))
}

func (c *testContext) Get(key any) any { return c.request.Context().Value(key) }

func (c *testContext) Translator() *i18n.Translator {
	tr, _ := c.Get(internal.TranslatorKey{}).(*i18n.Translator)
	return tr
}

func (c *testContext) T(key string, placeholders ...i18n.M) string {
	if tr := c.Translator(); tr != nil {
		return tr.T(key, placeholders...)
	}
	return key
}

func (c *testContext) Language() string {
	lang, _ := c.Get(internal.LanguageKey{}).(string)
	return lang
}

func (c *testContext) Locale() i18n.Locale {
	loc, _ := c.Get(internal.LocaleKey{}).(i18n.Locale)
	return loc
}

// captureHandler collects log records for assertions.
type captureHandler struct {
	records chan slog.Record
}

func newCaptureLogger() (*slog.Logger, <-chan slog.Record) {
	h := &captureHandler{records: make(chan slog.Record, 16)}
	return slog.New(h), h.records
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	h.records <- r.Clone()
	return nil
}

func (h *captureHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *captureHandler) WithGroup(string) slog.Handler { return h }
