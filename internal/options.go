package internal

import (
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/trizel-ai/trizel/pkg/logger"
)

// Option configures an App in New.
type Option func(*App)

// WithMiddleware appends global middleware; the first registered runs
// outermost.
func WithMiddleware(mw ...Middleware) Option {
	return func(a *App) { a.middlewares = append(a.middlewares, mw...) }
}

// WithHandlers adds route owners. Their Routes methods run once, in order.
func WithHandlers(h ...Handler) Option {
	return func(a *App) { a.handlers = append(a.handlers, h...) }
}

func WithErrorHandler(h ErrorHandler) Option {
	return func(a *App) { a.onError = h }
}

func WithNotFoundHandler(h HandlerFunc) Option {
	return func(a *App) { a.notFound = h }
}

func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return func(a *App) { a.methodNotAllowed = h }
}

// WithHealthChecks exposes liveness and readiness probes.
func WithHealthChecks(opts ...HealthOption) Option {
	return func(a *App) { a.probes = newHealthConfig(opts) }
}

// WithLogger installs a JSON stdout logger tagged with component.
func WithLogger(component string, extractors ...logger.ContextExtractor) Option {
	return func(a *App) {
		a.logger = logger.New(logger.Config{}, extractors...).With("component", component)
	}
}

// WithCustomLogger installs l as is. Nil is ignored.
func WithCustomLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

const defaultStaticCacheControl = "public, max-age=3600"

// StaticOption tunes one WithStaticFiles mount.
type StaticOption func(*staticMount)

type staticMount struct {
	prefix       string
	root         fs.FS
	cacheControl string
	files        http.Handler
}

// StaticCacheControl replaces the default one hour Cache-Control. Use
// "no-store" for data that changes between page views.
func StaticCacheControl(v string) StaticOption {
	return func(m *staticMount) { m.cacheControl = v }
}

// WithStaticFiles serves subDir of fsys under pattern. There are no
// directory listings: a path ending in "/" is served only if it has an
// index.html. Panics when subDir is not a valid fs path.
//
//	trizel.WithStaticFiles("/static/", web.Static(), ".")
//	trizel.WithStaticFiles("/data/", siteFS, "data", trizel.StaticCacheControl("no-store"))
func WithStaticFiles(pattern string, fsys fs.FS, subDir string, opts ...StaticOption) Option {
	return func(a *App) {
		root, err := fs.Sub(fsys, subDir)
		if err != nil {
			panic(err)
		}
		m := &staticMount{
			prefix:       strings.TrimSuffix(pattern, "/"),
			root:         root,
			cacheControl: defaultStaticCacheControl,
		}
		for _, opt := range opts {
			opt(m)
		}
		m.files = http.StripPrefix(m.prefix, http.FileServerFS(root))
		a.mounts = append(a.mounts, mount{pattern: pattern, handler: m})
	}
}

func (m *staticMount) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if strings.HasSuffix(r.URL.Path, "/") && !m.hasIndex(r.URL.Path) {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Cache-Control", m.cacheControl)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	m.files.ServeHTTP(w, r)
}

func (m *staticMount) hasIndex(urlPath string) bool {
	dir := strings.Trim(strings.TrimPrefix(urlPath, m.prefix), "/")
	_, err := fs.Stat(m.root, path.Join(dir, "index.html"))
	return err == nil
}
