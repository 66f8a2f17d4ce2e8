package middlewares

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/trizel-ai/trizel/internal"
	"github.com/trizel-ai/trizel/pkg/logger"
)

type requestIDKey struct{}

// DefaultRequestIDHeaders lists the inbound headers that may carry an
// upstream ID, highest priority first.
var DefaultRequestIDHeaders = []string{"X-Request-ID", "X-Correlation-ID"}

// Upstream IDs longer than this are replaced with a generated one.
const maxRequestIDLength = 128

type requestIDSettings struct {
	inbound  []string
	outbound string
	newID    func() string
}

// upstream returns the first acceptable ID found in the inbound headers.
func (s *requestIDSettings) upstream(c internal.Context) (string, bool) {
	for _, name := range s.inbound {
		id := c.Header(name)
		if id != "" && len(id) <= maxRequestIDLength {
			return id, true
		}
	}
	return "", false
}

// RequestIDOption tunes the RequestID middleware.
type RequestIDOption func(*requestIDSettings)

// WithRequestIDHeaders replaces the inbound header list.
func WithRequestIDHeaders(headers ...string) RequestIDOption {
	return func(s *requestIDSettings) { s.inbound = headers }
}

// WithRequestIDGenerator replaces uuid.NewString.
func WithRequestIDGenerator(gen func() string) RequestIDOption {
	return func(s *requestIDSettings) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithRequestIDResponseHeader names the header the ID is echoed in.
func WithRequestIDResponseHeader(header string) RequestIDOption {
	return func(s *requestIDSettings) {
		if header != "" {
			s.outbound = header
		}
	}
}

// RequestID tags every request with an ID. An upstream ID is reused when
// present; otherwise a UUID is generated. The ID is stored on the context
// and echoed in the X-Request-ID response header.
func RequestID(opts ...RequestIDOption) internal.Middleware {
	s := &requestIDSettings{
		inbound:  DefaultRequestIDHeaders,
		outbound: "X-Request-ID",
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			id, ok := s.upstream(c)
			if !ok {
				id = s.newID()
			}
			c.Set(requestIDKey{}, id)
			c.SetHeader(s.outbound, id)
			return next(c)
		}
	}
}

// GetRequestID returns the ID assigned by RequestID, or "".
func GetRequestID(c internal.Context) string {
	return internal.ContextValue[string](c, requestIDKey{})
}

// RequestIDExtractor adds a "request_id" attribute to log records.
func RequestIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		id, _ := ctx.Value(requestIDKey{}).(string)
		if id == "" {
			return slog.Attr{}, false
		}
		return slog.String("request_id", id), true
	}
}
