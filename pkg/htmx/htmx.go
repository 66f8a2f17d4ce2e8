package htmx

import (
	"net/http"
	"net/url"
)

// IsHTMX returns true if the request originated from HTMX.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HeaderHXRequest) == "true"
}

// CurrentPath returns the path of the page that issued an HTMX request.
// It returns "" for non-HTMX requests or an unparseable HX-Current-URL.
func CurrentPath(r *http.Request) string {
	if !IsHTMX(r) {
		return ""
	}
	u, err := url.Parse(r.Header.Get(HeaderHXCurrentURL))
	if err != nil {
		return ""
	}
	return u.Path
}
