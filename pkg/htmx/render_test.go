package htmx_test

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trizel-ai/trizel/pkg/htmx"
)

type fragment string

func (f fragment) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(f))
	return err
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := htmx.NewConfig(
		htmx.WithOOB(fragment(`<div id="a" hx-swap-oob="true"></div>`)),
		htmx.WithRetarget("#daily-status"),
		htmx.WithReswap(htmx.SwapOuterHTML),
		htmx.WithPushURL("false"),
		htmx.WithTrigger("daily-status-loaded"),
		htmx.WithTrigger("refresh"),
	)

	require.Len(t, cfg.OOBComponents, 1)
	assert.Equal(t, "#daily-status", cfg.Retarget)
	assert.Equal(t, htmx.SwapOuterHTML, cfg.Reswap)
	assert.Equal(t, []string{"daily-status-loaded", "refresh"}, cfg.Triggers)
}

func TestApplyHeaders(t *testing.T) {
	t.Parallel()

	t.Run("sets configured headers", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		htmx.NewConfig(
			htmx.WithRetarget("#daily-status"),
			htmx.WithReswap(htmx.SwapNone),
			htmx.WithPushURL("/fr/"),
			htmx.WithTrigger("a", "b"),
		).ApplyHeaders(rec)

		h := rec.Header()
		assert.Equal(t, "#daily-status", h.Get(htmx.HeaderHXRetarget))
		assert.Equal(t, "none", h.Get(htmx.HeaderHXReswap))
		assert.Equal(t, "/fr/", h.Get(htmx.HeaderHXPushURL))
		assert.Equal(t, "a, b", h.Get(htmx.HeaderHXTrigger))
	})

	t.Run("empty config sets nothing", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		htmx.NewConfig().ApplyHeaders(rec)
		assert.Empty(t, rec.Header())
	})

	t.Run("nil config is safe", func(t *testing.T) {
		t.Parallel()
		var cfg *htmx.Config
		rec := httptest.NewRecorder()
		assert.NotPanics(t, func() { cfg.ApplyHeaders(rec) })
	})
}
