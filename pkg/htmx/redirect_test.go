package htmx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trizel-ai/trizel/pkg/htmx"
)

func TestRedirectWithStatus(t *testing.T) {
	t.Parallel()

	t.Run("regular request", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/lang?to=fr", nil)
		htmx.RedirectWithStatus(rec, req, "/fr/methodology/", http.StatusSeeOther)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/fr/methodology/", rec.Header().Get("Location"))
		assert.Empty(t, rec.Header().Get(htmx.HeaderHXRedirect))
	})

	t.Run("htmx request", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/lang?to=fr", nil)
		req.Header.Set(htmx.HeaderHXRequest, "true")
		htmx.RedirectWithStatus(rec, req, "/fr/methodology/", http.StatusSeeOther)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/fr/methodology/", rec.Header().Get(htmx.HeaderHXRedirect))
		assert.Empty(t, rec.Header().Get("Location"))
	})
}
