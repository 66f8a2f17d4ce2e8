package htmx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trizel-ai/trizel/pkg/htmx"
)

func TestIsHTMX(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/partials/daily-indicator", nil)
	assert.False(t, htmx.IsHTMX(req))

	req.Header.Set(htmx.HeaderHXRequest, "true")
	assert.True(t, htmx.IsHTMX(req))

	req.Header.Set(htmx.HeaderHXRequest, "false")
	assert.False(t, htmx.IsHTMX(req))
}

func TestCurrentPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		htmx    bool
		current string
		want    string
	}{
		{"regular request", false, "http://localhost:8000/fr/methodology/", ""},
		{"htmx request", true, "http://localhost:8000/fr/methodology/", "/fr/methodology/"},
		{"missing header", true, "", ""},
		{"bad url", true, "http://[::1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/lang?to=ar", nil)
			if tt.htmx {
				req.Header.Set(htmx.HeaderHXRequest, "true")
			}
			if tt.current != "" {
				req.Header.Set(htmx.HeaderHXCurrentURL, tt.current)
			}
			assert.Equal(t, tt.want, htmx.CurrentPath(req))
		})
	}
}
