package middlewares

import (
	"log/slog"
	"net/http"
	"runtime"

	"github.com/trizel-ai/trizel/internal"
)

// DefaultStackSize caps the captured stack trace in bytes.
const DefaultStackSize = 4096

// RecoverConfig configures Recover.
type RecoverConfig struct {
	StackSize int
	// DisablePrintStack skips stack capture; PanicError.Stack stays nil.
	DisablePrintStack bool
}

// RecoverOption configures RecoverConfig.
type RecoverOption func(*RecoverConfig)

func WithRecoverStackSize(size int) RecoverOption {
	return func(cfg *RecoverConfig) {
		if size > 0 {
			cfg.StackSize = size
		}
	}
}

func WithRecoverDisablePrintStack() RecoverOption {
	return func(cfg *RecoverConfig) {
		cfg.DisablePrintStack = true
	}
}

// Recover turns a handler panic into a *PanicError for the app's error
// handler, which renders the localized 500 page. http.ErrAbortHandler is
// re-raised so net/http can drop the connection.
func Recover(opts ...RecoverOption) internal.Middleware {
	cfg := RecoverConfig{StackSize: DefaultStackSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				pe := &PanicError{Value: r}
				attrs := []any{slog.Any("panic", r), slog.String("path", c.Request().URL.Path)}
				if !cfg.DisablePrintStack {
					pe.Stack = captureStack(cfg.StackSize)
					attrs = append(attrs, slog.String("stack", string(pe.Stack)))
				}
				c.LogError("panic recovered", attrs...)
				err = pe
			}()

			return next(c)
		}
	}
}

func captureStack(size int) []byte {
	buf := make([]byte, size)
	return buf[:runtime.Stack(buf, false)]
}
