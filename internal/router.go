package internal

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
)

// Router declares routes. The site is read-only: every page route is a GET,
// and GET routes answer HEAD as well.
type Router interface {
	// GET registers h for GET and HEAD. Route middleware runs in the order given.
	GET(path string, h HandlerFunc, mw ...Middleware)
	// Group shares middleware between routes without a path prefix.
	Group(fn func(r Router))
	// Route groups routes under a pattern prefix.
	Route(pattern string, fn func(r Router))
	Use(mw ...Middleware)
	// Mount attaches a plain http.Handler, e.g. a file server.
	Mount(pattern string, h http.Handler)
}

type routerAdapter struct {
	mux chi.Router
	app *App
}

func (r *routerAdapter) GET(path string, h HandlerFunc, mw ...Middleware) {
	handler := r.app.chain(h, mw)
	r.mux.Get(path, handler)
	r.mux.Head(path, handler)
}

func (r *routerAdapter) Group(fn func(Router)) {
	r.mux.Group(func(sub chi.Router) {
		fn(&routerAdapter{mux: sub, app: r.app})
	})
}

func (r *routerAdapter) Route(pattern string, fn func(Router)) {
	r.mux.Route(pattern, func(sub chi.Router) {
		fn(&routerAdapter{mux: sub, app: r.app})
	})
}

func (r *routerAdapter) Use(mw ...Middleware) {
	for _, m := range mw {
		r.mux.Use(r.app.adaptMiddleware(m))
	}
}

func (r *routerAdapter) Mount(pattern string, h http.Handler) {
	r.mux.Mount(pattern, h)
}

// chain applies route middleware around h, first listed outermost.
func (a *App) chain(h HandlerFunc, mw []Middleware) http.HandlerFunc {
	for _, m := range slices.Backward(mw) {
		h = m(h)
	}
	return a.wrapHandler(h)
}

// adaptMiddleware lets a Middleware sit in chi's stack. Values stored with
// Context.Set reach later handlers through the request context.
func (a *App) adaptMiddleware(mw Middleware) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c := newContext(w, r, a)
			err := mw(func(c Context) error {
				next.ServeHTTP(c.Response(), c.Request())
				return nil
			})(c)
			if err != nil {
				a.handleError(c, err)
			}
		})
	}
}
