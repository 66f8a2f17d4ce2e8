package audit

import (
	"context"
	"strings"
)

// DefaultCategory selects the contrast rules (color-contrast and
// color-contrast-enhanced).
const DefaultCategory = "color-contrast"

// DefaultTags are the axe-core rule tags run on every page.
func DefaultTags() []string {
	return []string{"wcag2aa", "wcag2aaa", "wcag21aa", "wcag21aaa"}
}

// Engine runs the accessibility rules against one URL. An error means the
// page could not be checked at all.
type Engine interface {
	Analyze(ctx context.Context, url string) ([]Violation, error)
}

// EngineFunc adapts a function to Engine.
type EngineFunc func(ctx context.Context, url string) ([]Violation, error)

func (f EngineFunc) Analyze(ctx context.Context, url string) ([]Violation, error) {
	return f(ctx, url)
}

// Filter keeps violations whose rule id contains category. The result is
// never nil.
func Filter(violations []Violation, category string) []Violation {
	out := make([]Violation, 0, len(violations))
	for _, v := range violations {
		if strings.Contains(v.ID, category) {
			out = append(out, v)
		}
	}
	return out
}
