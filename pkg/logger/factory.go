package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Output formats accepted by Config.Format.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Config describes how a logger writes records.
type Config struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
	Sentry SentryConfig
	// Output defaults to os.Stdout.
	Output io.Writer
}

// New creates a logger from cfg with optional context extractors.
// Records go to cfg.Output; when cfg.Sentry.DSN is set warnings and errors
// are forwarded to Sentry as well.
func New(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	base := newBaseHandler(cfg)
	if cfg.Sentry.DSN == "" {
		return slog.New(NewLogHandlerDecorator(base, extractors...))
	}
	return slog.New(NewLogHandlerDecorator(withSentry(base, cfg.Sentry), extractors...))
}

func newBaseHandler(cfg Config) slog.Handler {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	if strings.EqualFold(cfg.Format, FormatText) {
		return slog.NewTextHandler(out, opts)
	}
	return slog.NewJSONHandler(out, opts)
}

// ParseLevel maps a level name to a slog.Level. Unknown names yield LevelInfo.
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
