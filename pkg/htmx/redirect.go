package htmx

import "net/http"

// RedirectWithStatus sends a normal redirect, or for HTMX requests a 200
// carrying HX-Redirect so the client navigates itself.
func RedirectWithStatus(w http.ResponseWriter, r *http.Request, targetURL string, status int) {
	if !IsHTMX(r) {
		http.Redirect(w, r, targetURL, status)
		return
	}
	w.Header().Set(HeaderHXRedirect, targetURL)
	w.WriteHeader(http.StatusOK)
}
