package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/trizel-ai/trizel/pkg/audit"
	"github.com/trizel-ai/trizel/pkg/logger"
	"github.com/trizel-ai/trizel/pkg/storage"
)

// ServerConfig configures `trizel serve`.
type ServerConfig struct {
	Address       string `env:"TRIZEL_ADDRESS" envDefault:":8000"`
	SiteRoot      string `env:"TRIZEL_SITE_ROOT" envDefault:"site"`
	DefaultLocale string `env:"TRIZEL_DEFAULT_LOCALE" envDefault:"en"`
	// StatusPath is the URL path of the daily status document inside the site root.
	StatusPath string `env:"TRIZEL_STATUS_PATH" envDefault:"/data/publish/3i-atlas/daily-status.json"`
	// StatusURL switches the status source to HTTP when set.
	StatusURL       string        `env:"TRIZEL_STATUS_URL"`
	ContentCacheTTL time.Duration `env:"TRIZEL_CONTENT_CACHE_TTL" envDefault:"10m"`
	RequestTimeout  time.Duration `env:"TRIZEL_REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"TRIZEL_SHUTDOWN_TIMEOUT" envDefault:"15s"`

	Log logger.Config
}

// AuditConfig configures `trizel audit`.
type AuditConfig struct {
	BaseURL   string   `env:"BASE_URL" envDefault:"http://localhost:8000"`
	Locales   []string `env:"AUDIT_LOCALES" envDefault:"en,fr,de,ru,zh,ar"`
	Pages     []string `env:"AUDIT_PAGES"`
	RootPages []string `env:"AUDIT_ROOT_PAGES"`

	ReportPath string   `env:"AUDIT_REPORT" envDefault:"contrast-report.json"`
	Category   string   `env:"AUDIT_CATEGORY" envDefault:"color-contrast"`
	Tags       []string `env:"AUDIT_TAGS" envDefault:"wcag2aa,wcag2aaa,wcag21aa,wcag21aaa"`
	Workers    int      `env:"AUDIT_WORKERS" envDefault:"1"`

	NavigationTimeout time.Duration `env:"AUDIT_NAVIGATION_TIMEOUT" envDefault:"30s"`
	AxeScript         string        `env:"AUDIT_AXE_SCRIPT" envDefault:"node_modules/axe-core/axe.min.js"`
	AxeScriptURL      string        `env:"AUDIT_AXE_SCRIPT_URL" envDefault:"https://cdn.jsdelivr.net/npm/axe-core@4.10.2/axe.min.js"`
	ChromeBin         string        `env:"AUDIT_CHROME_BIN"`
	BrowserURL        string        `env:"AUDIT_BROWSER_URL"`

	// Schedule is a cron expression; empty runs the audit once.
	Schedule string `env:"AUDIT_SCHEDULE"`

	Storage       storage.Config `envPrefix:"AUDIT_S3_"`
	StoragePrefix string         `env:"AUDIT_S3_PREFIX" envDefault:"audits"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
}

func loadServerConfig() (ServerConfig, error) {
	cfg, err := env.ParseAs[ServerConfig]()
	if err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func loadAuditConfig() (AuditConfig, error) {
	cfg, err := env.ParseAs[AuditConfig]()
	if err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Matrix builds the audit matrix, using the defaults for unset page lists.
func (c AuditConfig) Matrix() audit.Matrix {
	m := audit.DefaultMatrix(c.BaseURL)
	if len(c.Locales) > 0 {
		m.Locales = c.Locales
	}
	if len(c.Pages) > 0 {
		m.Pages = c.Pages
	}
	if len(c.RootPages) > 0 {
		m.RootPages = c.RootPages
	}
	return m
}

// Logger writes text records to stderr so stdout carries only the report.
func (c AuditConfig) Logger() *slog.Logger {
	return logger.New(logger.Config{
		Level:  c.LogLevel,
		Format: logger.FormatText,
		Output: os.Stderr,
	})
}
