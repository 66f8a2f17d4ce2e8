// Package sanitizer cleans untrusted HTML with bluemonday policies.
//
// Three policies cover the site's inputs: [StripHTML] for plain text,
// [SanitizeHTML] for the inline markup allowed in the daily status summary, and
// [SanitizeDocument] for HTML rendered from markdown content.
package sanitizer
