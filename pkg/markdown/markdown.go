package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/trizel-ai/trizel/pkg/sanitizer"
)

// Heading is one heading of a rendered document.
type Heading struct {
	ID    string
	Text  string
	Level int
}

// Document is a rendered markdown document.
type Document struct {
	Meta     Metadata
	Title    string
	HTML     string // sanitized
	Headings []Heading
}

// Renderer converts markdown to sanitized HTML. Safe for concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

// Option configures a Renderer.
type Option func(*[]goldmark.Option)

// WithExtensions adds goldmark extensions.
func WithExtensions(ext ...goldmark.Extender) Option {
	return func(opts *[]goldmark.Option) {
		*opts = append(*opts, goldmark.WithExtensions(ext...))
	}
}

// New creates a Renderer with GitHub Flavored Markdown, typographer
// substitutions and automatic heading ids.
func New(opts ...Option) *Renderer {
	gopts := []goldmark.Option{
		goldmark.WithExtensions(extension.GFM, extension.Typographer),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	}
	for _, opt := range opts {
		opt(&gopts)
	}
	return &Renderer{md: goldmark.New(gopts...)}
}

// Render parses frontmatter, converts the body and sanitizes the result.
// The title is the frontmatter title, or the first level-one heading.
func (r *Renderer) Render(content []byte) (*Document, error) {
	meta, body, err := SplitFrontmatter(content)
	if err != nil {
		return nil, err
	}

	root := r.md.Parser().Parse(text.NewReader(body))

	var buf bytes.Buffer
	if err := r.md.Renderer().Render(&buf, body, root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	doc := &Document{
		Meta:     meta,
		Title:    meta.Title,
		HTML:     sanitizer.SanitizeDocument(buf.String()),
		Headings: collectHeadings(root, body),
	}

	if doc.Title == "" {
		for _, h := range doc.Headings {
			if h.Level == 1 {
				doc.Title = h.Text
				break
			}
		}
	}

	return doc, nil
}

func collectHeadings(root ast.Node, source []byte) []Heading {
	var headings []Heading
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		var id string
		if v, found := h.AttributeString("id"); found {
			if b, ok := v.([]byte); ok {
				id = string(b)
			}
		}

		headings = append(headings, Heading{
			ID:    id,
			Text:  string(nodeText(h, source)),
			Level: h.Level,
		})
		return ast.WalkSkipChildren, nil
	})
	return headings
}

func nodeText(n ast.Node, source []byte) []byte {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
			continue
		case *ast.String:
			buf.Write(t.Value)
			continue
		}
		buf.Write(nodeText(c, source))
	}
	return buf.Bytes()
}
