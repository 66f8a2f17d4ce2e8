package middlewares

import (
	"context"
	"log/slog"

	"github.com/trizel-ai/trizel/internal"
	"github.com/trizel-ai/trizel/pkg/i18n"
	"github.com/trizel-ai/trizel/pkg/logger"
)

// DefaultI18nNamespace is the namespace of the context translator.
const DefaultI18nNamespace = "site"

// I18nConfig configures the I18n middleware.
type I18nConfig struct {
	Namespace string
	// Extractor holds opt-in sources consulted before the URL path.
	Extractor internal.Extractor
}

// I18nOption configures I18nConfig.
type I18nOption func(*I18nConfig)

// WithI18nNamespace sets the default namespace for the context translator.
func WithI18nNamespace(ns string) I18nOption {
	return func(cfg *I18nConfig) {
		cfg.Namespace = ns
	}
}

// WithI18nExtractor sets sources consulted before the URL path. The first
// extracted value that names a known locale wins; otherwise the path
// decides as usual.
func WithI18nExtractor(ext internal.Extractor) I18nOption {
	return func(cfg *I18nConfig) {
		cfg.Extractor = ext
	}
}

// FromAcceptLanguage returns an ExtractorSource that matches the
// Accept-Language header against locales.
func FromAcceptLanguage(locales *i18n.Locales) internal.ExtractorSource {
	return func(c internal.Context) (string, bool) {
		header := c.Header("Accept-Language")
		if header == "" {
			return "", false
		}
		return locales.Match(header).Code, true
	}
}

// I18n returns middleware that resolves the request locale, creates a
// Translator bound to it and stores both in the request context.
//
// By default the locale comes from the first URL path segment only, so
// "/fr/methodology/" renders French and any path without a locale segment
// renders the canonical locale.
func I18n(svc *i18n.I18n, locales *i18n.Locales, opts ...I18nOption) internal.Middleware {
	cfg := &I18nConfig{Namespace: DefaultI18nNamespace}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			locale := resolveLocale(c, cfg.Extractor, locales)
			tr := i18n.NewTranslator(svc, locale, cfg.Namespace)

			c.Set(internal.TranslatorKey{}, tr)
			c.Set(internal.LocaleKey{}, locale)
			c.Set(internal.LanguageKey{}, locale.Code)

			return next(c)
		}
	}
}

func resolveLocale(c internal.Context, ext internal.Extractor, locales *i18n.Locales) i18n.Locale {
	if code, ok := ext.Extract(c); ok {
		if l, found := locales.Lookup(code); found {
			return l
		}
	}
	return locales.Resolve(c.Path())
}

// GetTranslator extracts the Translator from the context.
// Returns nil if the I18n middleware is not used.
func GetTranslator(c internal.Context) *i18n.Translator {
	return internal.ContextValue[*i18n.Translator](c, internal.TranslatorKey{})
}

// GetLocale extracts the resolved locale from the context.
// Returns the zero Locale if the I18n middleware is not used.
func GetLocale(c internal.Context) i18n.Locale {
	return internal.ContextValue[i18n.Locale](c, internal.LocaleKey{})
}

// LocaleExtractor returns a ContextExtractor for use with WithLogger.
// Adds "locale" to log entries of localized requests.
func LocaleExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if v, ok := ctx.Value(internal.LanguageKey{}).(string); ok && v != "" {
			return slog.String("locale", v), true
		}
		return slog.Attr{}, false
	}
}
