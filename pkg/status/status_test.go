package status_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/trizel-ai/trizel/pkg/status"
)

const okDocument = `{
  "status": "OK",
  "as_of_utc": "2025-06-01T00:00:00Z",
  "designation": "3I/ATLAS",
  "event_id": "evt-2025-06-01",
  "summary": "All gates passed.",
  "gate": "G3",
  "proof_type": "observational",
  "links": {"latest": "/artifacts/latest/", "manifest": "/artifacts/latest/manifest.json", "crate": "/artifacts/latest/ro-crate-metadata.json"}
}`

func TestSymbol(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status status.Status
		want   string
		known  bool
	}{
		{status.OK, "🟢", true},
		{status.Attention, "🟠", true},
		{status.Error, "🔴", true},
		{status.Paused, "⚪", true},
		{"UNKNOWN", status.FallbackSymbol, false},
		{"", status.FallbackSymbol, false},
		{"ok", status.FallbackSymbol, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, status.Symbol(tt.status))
			require.Equal(t, tt.known, tt.status.Known())
		})
	}
}

func TestLoaderFS(t *testing.T) {
	t.Parallel()

	site := fstest.MapFS{
		"data/publish/3i-atlas/daily-status.json": {Data: []byte(okDocument)},
		"data/broken.json":                        {Data: []byte(`{"status":`)},
		"data/partial.json":                       {Data: []byte(`{"status":"ATTENTION"}`)},
	}

	t.Run("decodes every field", func(t *testing.T) {
		t.Parallel()
		rec, err := status.NewLoader(status.NewFSSource(site, status.DefaultPath)).Load(context.Background())
		require.NoError(t, err)
		require.Equal(t, status.OK, rec.Status)
		require.Equal(t, "🟢", rec.Symbol())
		require.Equal(t, "3I/ATLAS", rec.Designation)
		require.Equal(t, "G3", rec.Gate)
		require.Equal(t, "/artifacts/latest/manifest.json", rec.Links.Manifest)
	})

	t.Run("partial document is not validated", func(t *testing.T) {
		t.Parallel()
		rec, err := status.NewLoader(status.NewFSSource(site, "/data/partial.json")).Load(context.Background())
		require.NoError(t, err)
		require.Equal(t, status.Attention, rec.Status)
		require.Empty(t, rec.Designation)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := status.NewLoader(status.NewFSSource(site, "/data/none.json")).Load(context.Background())
		require.ErrorIs(t, err, status.ErrUnavailable)
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()
		_, err := status.NewLoader(status.NewFSSource(site, "/data/broken.json")).Load(context.Background())
		require.ErrorIs(t, err, status.ErrUnavailable)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := status.NewLoader(status.NewFSSource(site, status.DefaultPath)).Load(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestLoaderHTTP(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/ok.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, okDocument)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	loader := status.NewLoader(status.NewHTTPSource(srv.URL+"/ok.json", srv.Client()))
	for range 2 {
		rec, err := loader.Load(context.Background())
		require.NoError(t, err)
		require.Equal(t, status.OK, rec.Status)
	}
	require.Equal(t, int32(2), hits.Load(), "every load reads the source")

	_, err := status.NewLoader(status.NewHTTPSource(srv.URL+"/missing.json", nil)).Load(context.Background())
	require.ErrorIs(t, err, status.ErrUnavailable)
	require.ErrorIs(t, err, status.ErrUnexpectedStatus)
}

type text string

func (s text) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(s))
	return err
}

type failingSource struct{}

func (failingSource) Open(context.Context) (io.ReadCloser, error) {
	return nil, errors.New("connection refused")
}

func TestIndicator(t *testing.T) {
	t.Parallel()

	render := func(r status.Record) status.Component {
		return text(r.Symbol() + " " + string(r.Status))
	}

	t.Run("renders the record", func(t *testing.T) {
		t.Parallel()
		site := fstest.MapFS{"status.json": {Data: []byte(okDocument)}}
		c := status.NewLoader(status.NewFSSource(site, "status.json")).
			Indicator(context.Background(), render, text("fallback"))

		var buf bytes.Buffer
		require.NoError(t, c.Render(context.Background(), &buf))
		require.Equal(t, "🟢 OK", buf.String())
	})

	t.Run("unknown status uses fallback symbol", func(t *testing.T) {
		t.Parallel()
		site := fstest.MapFS{"status.json": {Data: []byte(`{"status":"UNKNOWN"}`)}}
		c := status.NewLoader(status.NewFSSource(site, "status.json")).
			Indicator(context.Background(), render, text("fallback"))

		var buf bytes.Buffer
		require.NoError(t, c.Render(context.Background(), &buf))
		require.Equal(t, "⚪ UNKNOWN", buf.String())
	})

	t.Run("failure returns the fallback untouched and warns", func(t *testing.T) {
		t.Parallel()
		var logs bytes.Buffer
		log := slog.New(slog.NewTextHandler(&logs, nil))
		fallback := text(`<div id="daily-indicator">⚪ Status unavailable</div>`)

		c := status.NewLoader(failingSource{}, status.WithLogger(log)).
			Indicator(context.Background(), render, fallback)

		require.Equal(t, fallback, c)
		require.Contains(t, logs.String(), "level=WARN")
		require.Contains(t, logs.String(), "daily status unavailable")
	})
}
