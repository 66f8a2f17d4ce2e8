package i18n

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// DefaultLang is the canonical language unless WithDefaultLanguage says
// otherwise.
const DefaultLang = "en"

// M holds placeholder values for a translation.
type M map[string]any

type entryKey struct {
	lang, namespace, key string
}

// I18n is the site's translation catalog. It is read-only after New and
// safe for concurrent use.
type I18n struct {
	entries     map[entryKey]string
	defaultLang string
	languages   []string
	onMissing   func(lang, namespace, key string)
}

// Option configures New.
type Option func(*I18n) error

// New builds a catalog. Options run in order, so WithDefaultLanguage should
// precede WithLanguages.
func New(opts ...Option) (*I18n, error) {
	i := &I18n{
		entries:     make(map[entryKey]string),
		defaultLang: DefaultLang,
	}
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, fmt.Errorf("i18n option: %w", err)
		}
	}
	if i.defaultLang == "" {
		return nil, ErrEmptyLanguage
	}
	if i.languages == nil {
		i.languages = i.withDefaultFirst(i.loadedLanguages())
	}
	return i, nil
}

// WithDefaultLanguage sets the canonical language every lookup falls back to.
func WithDefaultLanguage(lang string) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		i.defaultLang = lang
		return nil
	}
}

// WithLanguages fixes the advertised language list: the default language
// first, then the rest sorted.
func WithLanguages(langs ...string) Option {
	return func(i *I18n) error {
		if len(langs) > 0 {
			i.languages = i.withDefaultFirst(langs)
		}
		return nil
	}
}

// WithTranslations adds one namespace of one language. Nested maps become
// dot-separated keys: {"banner": {"title": ...}} defines "banner.title".
func WithTranslations(lang, namespace string, translations map[string]any) Option {
	return func(i *I18n) error {
		switch {
		case lang == "":
			return ErrEmptyLanguage
		case namespace == "":
			return ErrEmptyNamespace
		}
		i.add(lang, namespace, translations)
		return nil
	}
}

// WithMissingKeyHandler is called when neither the requested nor the
// default language has a non-empty value for a key.
func WithMissingKeyHandler(handler func(lang, namespace, key string)) Option {
	return func(i *I18n) error {
		i.onMissing = handler
		return nil
	}
}

// T translates key. It tries lang, then its base language ("fr" for
// "fr-CA"), then the default language, and finally returns key itself.
// Empty strings count as untranslated.
func (i *I18n) T(lang, namespace, key string, placeholders ...M) string {
	for _, candidate := range i.fallbackChain(lang) {
		if s := i.entries[entryKey{candidate, namespace, key}]; s != "" {
			return fill(s, placeholders)
		}
	}
	if i.onMissing != nil {
		i.onMissing(lang, namespace, key)
	}
	return key
}

// Has reports whether lang itself defines key, ignoring fallbacks.
func (i *I18n) Has(lang, namespace, key string) bool {
	_, ok := i.entries[entryKey{lang, namespace, key}]
	return ok
}

// Keys lists, sorted, the keys lang defines in namespace.
func (i *I18n) Keys(lang, namespace string) []string {
	keys := []string{}
	for k := range i.entries {
		if k.lang == lang && k.namespace == namespace {
			keys = append(keys, k.key)
		}
	}
	slices.Sort(keys)
	return keys
}

func (i *I18n) Languages() []string { return slices.Clone(i.languages) }

func (i *I18n) DefaultLanguage() string { return i.defaultLang }

func (i *I18n) fallbackChain(lang string) []string {
	chain := []string{lang}
	if base := baseLanguage(lang); base != lang {
		chain = append(chain, base)
	}
	if !slices.Contains(chain, i.defaultLang) {
		chain = append(chain, i.defaultLang)
	}
	return chain
}

func (i *I18n) add(lang, namespace string, tree map[string]any) {
	flatten(tree, "", func(key, value string) {
		i.entries[entryKey{lang, namespace, key}] = value
	})
}

func (i *I18n) loadedLanguages() []string {
	var langs []string
	for k := range i.entries {
		langs = append(langs, k.lang)
	}
	return langs
}

// withDefaultFirst dedupes langs, sorts them and puts the default first.
func (i *I18n) withDefaultFirst(langs []string) []string {
	rest := slices.DeleteFunc(slices.Clone(langs), func(l string) bool {
		return l == "" || l == i.defaultLang
	})
	slices.Sort(rest)
	return append([]string{i.defaultLang}, slices.Compact(rest)...)
}

// flatten walks a decoded translation file. A null value means "not yet
// translated" and defines nothing.
func flatten(tree map[string]any, prefix string, emit func(key, value string)) {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch v := v.(type) {
		case nil:
		case string:
			emit(key, v)
		case map[string]any:
			flatten(v, key, emit)
		case map[string]string:
			for sub, s := range v {
				emit(key+"."+sub, s)
			}
		default:
			emit(key, fmt.Sprint(v))
		}
	}
}

func fill(template string, placeholders []M) string {
	switch len(placeholders) {
	case 0:
		return template
	case 1:
		return ReplacePlaceholders(template, placeholders[0])
	}
	merged := M{}
	for _, p := range placeholders {
		maps.Copy(merged, p)
	}
	return ReplacePlaceholders(template, merged)
}

// baseLanguage drops everything after the first hyphen: "zh-Hant" is "zh".
func baseLanguage(lang string) string {
	base, _, _ := strings.Cut(lang, "-")
	if base == "" {
		return lang
	}
	return base
}
