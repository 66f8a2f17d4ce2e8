package internal

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/trizel-ai/trizel/pkg/logger"
)

// http.Server limits applied by Run.
const (
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultMaxHeaderBytes    = 1 << 20
	defaultShutdownTimeout   = 15 * time.Second
)

// App is the site's http.Handler plus its server lifecycle. Options are
// applied once in New; the route table is fixed afterwards.
type App struct {
	router *chi.Mux
	logger *slog.Logger

	middlewares []Middleware
	handlers    []Handler
	mounts      []mount
	probes      *healthConfig

	onError          ErrorHandler
	notFound         HandlerFunc
	methodNotAllowed HandlerFunc
}

type mount struct {
	pattern string
	handler http.Handler
}

// New builds the route table from opts.
//
//	app := trizel.New(
//	    trizel.WithMiddleware(middlewares.RequestID(), middlewares.I18n(catalog, locales)),
//	    trizel.WithHandlers(handlers.NewPages(...), handlers.NewLanguage(locales)),
//	    trizel.WithStaticFiles("/static/", web.Static(), "."),
//	)
func New(opts ...Option) *App {
	a := &App{router: chi.NewRouter(), logger: logger.NewNope()}
	for _, opt := range opts {
		opt(a)
	}
	a.buildRoutes()
	return a
}

func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

func (a *App) Logger() *slog.Logger { return a.logger }

// Run serves on addr until SIGINT, SIGTERM or a cancelled WithContext
// context, then drains in-flight requests and runs the shutdown hooks.
func (a *App) Run(addr string, opts ...RunOption) error {
	cfg := newRunConfig(a.logger, opts...)
	if cfg.address == "" {
		cfg.address = addr
	}
	return cfg.serve(a)
}

// buildRoutes registers global middleware before any route, as chi requires.
func (a *App) buildRoutes() {
	for _, mw := range a.middlewares {
		a.router.Use(a.adaptMiddleware(mw))
	}
	if a.notFound != nil {
		a.router.NotFound(a.wrapHandler(a.notFound))
	}
	if a.methodNotAllowed != nil {
		a.router.MethodNotAllowed(a.wrapHandler(a.methodNotAllowed))
	}
	for _, m := range a.mounts {
		a.router.Mount(m.pattern, m.handler)
	}
	a.probes.register(a.router, a.logger)

	r := &routerAdapter{mux: a.router, app: a}
	for _, h := range a.handlers {
		h.Routes(r)
	}
}

func (a *App) wrapHandler(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := newContext(w, r, a)
		if err := h(c); err != nil {
			a.handleError(c, err)
		}
	}
}

// handleError renders err through the configured ErrorHandler. Once the
// response has started the error can only be logged.
func (a *App) handleError(c Context, err error) {
	switch {
	case c.Written():
		a.logger.ErrorContext(c, "error after response started", slog.Any("error", err))
	case a.onError != nil:
		if herr := a.onError(c, err); herr != nil {
			a.logger.ErrorContext(c, "error handler failed",
				slog.Any("error", herr),
				slog.Any("cause", err),
			)
		}
	default:
		code := http.StatusInternalServerError
		if he := AsHTTPError(err); he != nil {
			code = he.Code
		}
		http.Error(c.Response(), http.StatusText(code), code)
	}
}
