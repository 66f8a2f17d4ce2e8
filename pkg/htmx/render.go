package htmx

import (
	"context"
	"io"
	"net/http"
	"strings"
)

// Renderable matches templ.Component without importing templ.
type Renderable interface {
	Render(ctx context.Context, w io.Writer) error
}

// Config collects the HTMX response instructions for one render.
type Config struct {
	OOBComponents []Renderable
	Retarget      string
	Reswap        SwapStrategy
	PushURL       string
	Triggers      []string
}

// RenderOption adds one instruction to a Config.
type RenderOption func(*Config)

func NewConfig(opts ...RenderOption) *Config {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// ApplyHeaders writes the non-empty instructions as HX-* response headers.
// Call it before the status line is written. A nil Config is a no-op.
func (c *Config) ApplyHeaders(w http.ResponseWriter) {
	if c == nil {
		return
	}
	headers := [...]struct{ name, value string }{
		{HeaderHXRetarget, c.Retarget},
		{HeaderHXReswap, string(c.Reswap)},
		{HeaderHXPushURL, c.PushURL},
		{HeaderHXTrigger, strings.Join(c.Triggers, ", ")},
	}
	for _, h := range headers {
		if h.value != "" {
			w.Header().Set(h.name, h.value)
		}
	}
}

// WithOOB queues components to render after the main one. Each needs an id
// and hx-swap-oob attribute to land in the page.
func WithOOB(components ...Renderable) RenderOption {
	return func(c *Config) { c.OOBComponents = append(c.OOBComponents, components...) }
}

func WithRetarget(selector string) RenderOption {
	return func(c *Config) { c.Retarget = selector }
}

func WithReswap(strategy SwapStrategy) RenderOption {
	return func(c *Config) { c.Reswap = strategy }
}

// WithPushURL sets HX-Push-Url; "false" leaves the browser URL untouched.
func WithPushURL(url string) RenderOption {
	return func(c *Config) { c.PushURL = url }
}

// WithTrigger fires client events once the swap settles. Repeated calls
// accumulate.
func WithTrigger(events ...string) RenderOption {
	return func(c *Config) { c.Triggers = append(c.Triggers, events...) }
}
