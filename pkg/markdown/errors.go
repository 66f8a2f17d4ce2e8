package markdown

import "errors"

var (
	// ErrInvalidFrontmatter indicates invalid YAML frontmatter.
	ErrInvalidFrontmatter = errors.New("markdown: invalid frontmatter")

	// ErrRenderFailed indicates markdown conversion failed.
	ErrRenderFailed = errors.New("markdown: failed to render document")
)
