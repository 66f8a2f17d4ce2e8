package status

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/trizel-ai/trizel/pkg/logger"
)

// maxDocumentSize bounds how much of the status document is read.
const maxDocumentSize = 1 << 20

// Component renders itself to a writer (templ.Component).
type Component interface {
	Render(ctx context.Context, w io.Writer) error
}

// Loader reads the daily status. Every call reads the source once: results
// are never cached, retried or polled.
type Loader struct {
	source Source
	logger *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger for unavailable-status warnings.
func WithLogger(l *slog.Logger) Option {
	return func(ld *Loader) {
		if l != nil {
			ld.logger = l
		}
	}
}

// NewLoader creates a Loader over src.
func NewLoader(src Source, opts ...Option) *Loader {
	l := &Loader{source: src, logger: logger.NewNope()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads and decodes the status document. Every failure wraps
// ErrUnavailable.
func (l *Loader) Load(ctx context.Context) (Record, error) {
	rc, err := l.source.Open(ctx)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer rc.Close()

	var rec Record
	if err := json.NewDecoder(io.LimitReader(rc, maxDocumentSize)).Decode(&rec); err != nil {
		return Record{}, fmt.Errorf("%w: decode: %w", ErrUnavailable, err)
	}
	return rec, nil
}

// Indicator loads the status and returns render(record). On failure it logs
// a warning and returns fallback itself, so whatever the caller already
// shows stays as it is.
func (l *Loader) Indicator(ctx context.Context, render func(Record) Component, fallback Component) Component {
	rec, err := l.Load(ctx)
	if err != nil {
		l.logger.WarnContext(ctx, "daily status unavailable", slog.Any("error", err))
		return fallback
	}
	return render(rec)
}
