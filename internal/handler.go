package internal

// Handler declares routes on a router.
//
//	type LanguageHandler struct {
//	    locales *i18n.Locales
//	}
//
//	func (h *LanguageHandler) Routes(r trizel.Router) {
//	    r.GET("/lang/{code}", h.switchLanguage)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// Returning a non-nil error hands it to the app's error handler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
//
//	func NoStore(next trizel.HandlerFunc) trizel.HandlerFunc {
//	    return func(c trizel.Context) error {
//	        c.SetHeader("Cache-Control", "no-store")
//	        return next(c)
//	    }
//	}
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler handles errors returned from handlers.
type ErrorHandler func(Context, error) error
