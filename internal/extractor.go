package internal

import "strings"

// ExtractorSource reads one candidate value from a request. An empty value
// counts as a miss.
type ExtractorSource = func(Context) (string, bool)

// Extractor is an ordered chain of sources; the first hit wins.
type Extractor struct {
	sources []ExtractorSource
}

func NewExtractor(sources ...ExtractorSource) Extractor {
	return Extractor{sources: sources}
}

// Extract returns the first non-empty value, or ("", false) if every
// source misses.
func (e Extractor) Extract(c Context) (string, bool) {
	for _, src := range e.sources {
		v, ok := src(c)
		if ok && v != "" {
			return v, true
		}
	}
	return "", false
}

func (e Extractor) Len() int { return len(e.sources) }

// nonEmpty adapts a plain getter to an ExtractorSource.
func nonEmpty(get func(Context) string) ExtractorSource {
	return func(c Context) (string, bool) {
		v := get(c)
		return v, v != ""
	}
}

func FromHeader(name string) ExtractorSource {
	return nonEmpty(func(c Context) string { return c.Header(name) })
}

func FromQuery(name string) ExtractorSource {
	return nonEmpty(func(c Context) string { return c.Query(name) })
}

func FromParam(name string) ExtractorSource {
	return nonEmpty(func(c Context) string { return c.Param(name) })
}

// FromPathPrefix yields the first non-empty path segment, so "/fr/page/"
// gives "fr".
func FromPathPrefix() ExtractorSource {
	return nonEmpty(func(c Context) string {
		for seg := range strings.SplitSeq(c.Path(), "/") {
			if seg != "" {
				return seg
			}
		}
		return ""
	})
}
