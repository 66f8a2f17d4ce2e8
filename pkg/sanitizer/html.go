package sanitizer

import (
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy   *bluemonday.Policy
	safePolicy     *bluemonday.Policy
	documentPolicy *bluemonday.Policy
	initOnce       sync.Once
)

var codeLanguageClass = regexp.MustCompile(`^language-[a-zA-Z0-9_+-]+$`)

func initPolicies() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()

		// Inline formatting for short status text.
		safePolicy = bluemonday.NewPolicy()
		safePolicy.AllowStandardURLs()
		safePolicy.AllowElements("br", "strong", "b", "em", "i", "code", "abbr", "time")
		safePolicy.AllowAttrs("href").OnElements("a")
		safePolicy.AllowAttrs("title").OnElements("abbr")
		safePolicy.AllowAttrs("datetime").OnElements("time")
		safePolicy.RequireNoFollowOnLinks(true)
		safePolicy.AddTargetBlankToFullyQualifiedLinks(true)

		// Rendered markdown: UGC plus heading anchors and code languages.
		documentPolicy = bluemonday.UGCPolicy()
		documentPolicy.AllowAttrs("id").Matching(bluemonday.SpaceSeparatedTokens).
			OnElements("h1", "h2", "h3", "h4", "h5", "h6")
		documentPolicy.AllowAttrs("class").Matching(codeLanguageClass).OnElements("code")
		documentPolicy.AllowAttrs("align").Matching(regexp.MustCompile(`^(left|right|center)$`)).
			OnElements("th", "td")
		documentPolicy.AllowAttrs("checked", "disabled").OnElements("input")
		documentPolicy.AllowAttrs("type").Matching(regexp.MustCompile(`^checkbox$`)).OnElements("input")
		documentPolicy.AddTargetBlankToFullyQualifiedLinks(true)
	})
}

// StripHTML removes all markup and returns escaped plain text.
func StripHTML(s string) string {
	initPolicies()
	return strictPolicy.Sanitize(s)
}

// SanitizeHTML keeps inline formatting (strong, em, code, links) and removes
// everything else, including scripts, event handlers and javascript: URLs.
func SanitizeHTML(s string) string {
	initPolicies()
	return safePolicy.Sanitize(s)
}

// SanitizeDocument cleans HTML produced from markdown documents. Block structure,
// tables, images and heading ids survive; active content does not.
func SanitizeDocument(s string) string {
	initPolicies()
	return documentPolicy.Sanitize(s)
}

// SanitizeHTMLCustom applies a custom bluemonday policy.
// Returns input unchanged if policy is nil.
func SanitizeHTMLCustom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}
