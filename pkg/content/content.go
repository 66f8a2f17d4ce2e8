package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/trizel-ai/trizel/pkg/cache"
	"github.com/trizel-ai/trizel/pkg/logger"
	"github.com/trizel-ai/trizel/pkg/markdown"
)

// IndexSlug is the slug of a locale's landing page.
const IndexSlug = "index"

// Page is a rendered document together with where it came from.
type Page struct {
	*markdown.Document
	Slug     string
	Locale   string // locale the document was read from; "" for root pages
	Path     string // file path inside the content FS
	Fallback bool   // true when the requested locale had no own document
}

// Store reads markdown documents from a content tree laid out as
//
//	{slug}.md           root pages
//	{locale}/{slug}.md  localized pages
//
// and caches rendered results. Safe for concurrent use.
type Store struct {
	fsys      fs.FS
	renderer  *markdown.Renderer
	cache     cache.Cache[*Page]
	logger    *slog.Logger
	canonical string
	ttl       time.Duration
}

// Option configures a Store.
type Option func(*Store)

// WithCache sets the cache for rendered pages and its TTL.
// Without it every call renders from the file system.
func WithCache(c cache.Cache[*Page], ttl time.Duration) Option {
	return func(s *Store) {
		s.cache = c
		s.ttl = ttl
	}
}

// WithLogger sets the logger used for fallback diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRenderer replaces the default markdown renderer.
func WithRenderer(r *markdown.Renderer) Option {
	return func(s *Store) {
		if r != nil {
			s.renderer = r
		}
	}
}

// New creates a Store over fsys. canonical is the locale whose documents
// stand in for missing translations.
func New(fsys fs.FS, canonical string, opts ...Option) *Store {
	s := &Store{
		fsys:      fsys,
		canonical: canonical,
		renderer:  markdown.New(),
		logger:    logger.NewNope(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Localized returns the page for slug in locale, falling back to the
// canonical locale's document.
func (s *Store) Localized(ctx context.Context, locale, slug string) (*Page, error) {
	if slug == "" {
		slug = IndexSlug
	}
	if !validName(slug) || !validName(locale) {
		return nil, ErrInvalidName
	}

	candidates := []candidate{{file: path.Join(locale, slug+".md"), locale: locale}}
	if locale != s.canonical {
		candidates = append(candidates, candidate{
			file:     path.Join(s.canonical, slug+".md"),
			locale:   s.canonical,
			fallback: true,
		})
	}
	return s.load(ctx, slug, candidates)
}

// Root returns a root page, falling back to the canonical locale's document
// of the same slug.
func (s *Store) Root(ctx context.Context, slug string) (*Page, error) {
	if slug == "" {
		slug = IndexSlug
	}
	if !validName(slug) {
		return nil, ErrInvalidName
	}

	return s.load(ctx, slug, []candidate{
		{file: slug + ".md"},
		{file: path.Join(s.canonical, slug+".md"), locale: s.canonical, fallback: true},
	})
}

// Document renders the named markdown file at the top of the tree, such as
// a governance document. name includes the ".md" extension.
func (s *Store) Document(ctx context.Context, name string) (*Page, error) {
	if !validName(name) || path.Ext(name) != ".md" {
		return nil, ErrInvalidName
	}
	slug := strings.TrimSuffix(name, ".md")
	return s.load(ctx, slug, []candidate{{file: name}})
}

type candidate struct {
	file     string
	locale   string
	fallback bool
}

// key differs for fallback reads of a file so the Fallback flag stays accurate.
func (c candidate) key() string {
	if c.fallback {
		return "fallback:" + c.file
	}
	return c.file
}

func (s *Store) load(ctx context.Context, slug string, candidates []candidate) (*Page, error) {
	for _, c := range candidates {
		page, err := s.page(ctx, slug, c)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if c.fallback {
			s.logger.DebugContext(ctx, "content fallback",
				slog.String("slug", slug),
				slog.String("file", c.file),
			)
		}
		return page, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, slug)
}

func (s *Store) page(ctx context.Context, slug string, c candidate) (*Page, error) {
	render := func(context.Context) (*Page, time.Duration, error) {
		src, err := fs.ReadFile(s.fsys, c.file)
		if err != nil {
			return nil, 0, err
		}
		doc, err := s.renderer.Render(src)
		if err != nil {
			return nil, 0, fmt.Errorf("render %s: %w", c.file, err)
		}
		return &Page{
			Document: doc,
			Slug:     slug,
			Locale:   c.locale,
			Path:     c.file,
			Fallback: c.fallback,
		}, s.ttl, nil
	}

	if s.cache == nil {
		p, _, err := render(ctx)
		return p, err
	}
	return s.cache.GetOrSet(ctx, c.key(), render)
}

func validName(name string) bool {
	return name != "" && name != "." && name != ".." &&
		!strings.ContainsAny(name, `/\`) && fs.ValidPath(name)
}
