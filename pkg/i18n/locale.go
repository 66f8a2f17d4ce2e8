package i18n

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// Direction is the text direction of a locale.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// Locale is one entry of the site's locale table.
type Locale struct {
	Tag  language.Tag
	Code string    // URL path segment, e.g. "fr"
	Name string    // display name in the locale's own language
	Dir  Direction // text direction
}

// IsRTL reports whether the locale is written right to left.
func (l Locale) IsRTL() bool {
	return l.Dir == RTL
}

// Locales is an ordered, immutable locale table with one canonical entry.
type Locales struct {
	byCode    map[string]Locale
	matcher   language.Matcher
	list      []Locale
	canonical Locale
}

// NewLocales builds a locale table. The canonical code must be one of the
// given locales. Codes must be unique and valid BCP 47 tags.
func NewLocales(canonical string, locales ...Locale) (*Locales, error) {
	if len(locales) == 0 {
		return nil, ErrNoLocales
	}

	ls := &Locales{
		byCode: make(map[string]Locale, len(locales)),
		list:   make([]Locale, 0, len(locales)),
	}

	tags := make([]language.Tag, 0, len(locales))
	for _, l := range locales {
		if l.Code == "" || strings.Contains(l.Code, "/") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLocale, l.Code)
		}
		tag, err := language.Parse(l.Code)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidLocale, l.Code, err)
		}
		if _, dup := ls.byCode[l.Code]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLocale, l.Code)
		}
		if l.Dir == "" {
			l.Dir = LTR
		}
		if l.Name == "" {
			l.Name = l.Code
		}
		l.Tag = tag

		ls.byCode[l.Code] = l
		ls.list = append(ls.list, l)
		tags = append(tags, tag)
	}

	c, ok := ls.byCode[canonical]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCanonical, canonical)
	}
	ls.canonical = c

	// The matcher falls back to its first tag, so the canonical tag goes first.
	idx := slices.IndexFunc(ls.list, func(l Locale) bool { return l.Code == canonical })
	tags[0], tags[idx] = tags[idx], tags[0]
	ls.matcher = language.NewMatcher(tags)

	return ls, nil
}

// DefaultLocales returns the site's locale table: English (canonical),
// French, Arabic (right to left), Chinese and Russian.
func DefaultLocales() *Locales {
	ls, err := NewLocales(DefaultLang,
		Locale{Code: "en", Name: "English", Dir: LTR},
		Locale{Code: "fr", Name: "Français", Dir: LTR},
		Locale{Code: "ar", Name: "العربية", Dir: RTL},
		Locale{Code: "zh", Name: "中文", Dir: LTR},
		Locale{Code: "ru", Name: "Русский", Dir: LTR},
	)
	if err != nil {
		panic(err)
	}
	return ls
}

// Canonical returns the locale every missing translation falls back to.
func (ls *Locales) Canonical() Locale {
	return ls.canonical
}

// All returns the locales in table order.
func (ls *Locales) All() []Locale {
	return slices.Clone(ls.list)
}

// Codes returns the locale codes in table order.
func (ls *Locales) Codes() []string {
	codes := make([]string, len(ls.list))
	for i, l := range ls.list {
		codes[i] = l.Code
	}
	return codes
}

// Lookup returns the locale for an exact code.
func (ls *Locales) Lookup(code string) (Locale, bool) {
	l, ok := ls.byCode[code]
	return l, ok
}

// Resolve returns the locale named by the first non-empty segment of
// urlPath, or the canonical locale when that segment is not a known code.
// It accepts any input and never fails.
func (ls *Locales) Resolve(urlPath string) Locale {
	if l, ok := ls.byCode[firstSegment(urlPath)]; ok {
		return l
	}
	return ls.canonical
}

// SwitchPath rewrites urlPath so that its first segment names code: a leading
// locale segment is replaced, otherwise code is prepended. Directory-style
// paths end with a slash. An unknown code leaves urlPath unchanged.
//
//	SwitchPath("/en/methodology/", "fr")  // "/fr/methodology/"
//	SwitchPath("/system-map.html", "ar")  // "/ar/system-map.html"
//	SwitchPath("/", "zh")                 // "/zh/"
func (ls *Locales) SwitchPath(urlPath, code string) string {
	if _, ok := ls.byCode[code]; !ok {
		return urlPath
	}

	segments := splitSegments(urlPath)
	if len(segments) > 0 {
		if _, ok := ls.byCode[segments[0]]; ok {
			segments[0] = code
		} else {
			segments = append([]string{code}, segments...)
		}
	} else {
		segments = []string{code}
	}

	out := "/" + strings.Join(segments, "/")
	if path.Ext(segments[len(segments)-1]) == "" {
		out += "/"
	}
	return out
}

// Match picks the best supported locale for an Accept-Language header.
// It returns the canonical locale when nothing matches or the header is malformed.
func (ls *Locales) Match(acceptLanguage string) Locale {
	if strings.TrimSpace(acceptLanguage) == "" {
		return ls.canonical
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return ls.canonical
	}

	_, idx, conf := ls.matcher.Match(tags...)
	if conf == language.No {
		return ls.canonical
	}

	// idx refers to the matcher's tag order, where the canonical tag was swapped to the front.
	supported := ls.matcherOrder()
	return supported[idx]
}

func (ls *Locales) matcherOrder() []Locale {
	order := slices.Clone(ls.list)
	idx := slices.IndexFunc(order, func(l Locale) bool { return l.Code == ls.canonical.Code })
	order[0], order[idx] = order[idx], order[0]
	return order
}

func firstSegment(urlPath string) string {
	for seg := range strings.SplitSeq(urlPath, "/") {
		if seg != "" {
			return seg
		}
	}
	return ""
}

func splitSegments(urlPath string) []string {
	var segments []string
	for seg := range strings.SplitSeq(urlPath, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}
