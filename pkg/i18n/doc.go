// Package i18n resolves the active locale of a request and looks up
// translated strings with fallback to the canonical locale.
//
// # Locales
//
// A [Locales] table lists the supported locales, their display names and text
// direction. The locale of a page comes from the first segment of its URL path:
//
//	ls := i18n.DefaultLocales()
//	ls.Resolve("/ar/methodology/").Dir  // i18n.RTL
//	ls.Resolve("/unknown/page").Code    // "en"
//	ls.SwitchPath("/en/methodology/", "fr") // "/fr/methodology/"
//
// # Translations
//
// Translations are loaded at construction time and never change afterwards:
//
//	//go:embed translations
//	var translationsFS embed.FS
//
//	sub, _ := fs.Sub(translationsFS, "translations")
//	svc, err := i18n.New(
//		i18n.WithDefaultLanguage("en"),
//		i18n.WithYAMLDir(sub),
//		i18n.WithMissingKeyHandler(func(lang, ns, key string) {
//			log.Warn("missing translation key", "lang", lang, "namespace", ns, "key", key)
//		}),
//	)
//
//	svc.T("fr", "assistant", "modal_title")
//
// Lookup order is exact locale, base language, default language, and
// finally the key itself. Empty strings count as missing.
//
// File convention: {lang}/{namespace}.yaml (or .yml, .json). Nested maps are
// flattened with dots, and {{name}} placeholders are filled from [M] values.
package i18n
