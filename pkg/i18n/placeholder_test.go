package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trizel-ai/trizel/pkg/i18n"
)

func TestReplacePlaceholders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		template     string
		placeholders i18n.M
		expected     string
	}{
		{
			name:     "no placeholders",
			template: "Archive Mode Available",
			expected: "Archive Mode Available",
		},
		{
			name:         "single placeholder",
			template:     "Gate: {{gate}}",
			placeholders: i18n.M{"gate": "G3"},
			expected:     "Gate: G3",
		},
		{
			name:         "multiple placeholders",
			template:     "{{designation}} as of {{date}}",
			placeholders: i18n.M{"designation": "3I/ATLAS", "date": "2025-01-01"},
			expected:     "3I/ATLAS as of 2025-01-01",
		},
		{
			name:         "unknown placeholder is kept",
			template:     "Gate: {{gate}} Type: {{type}}",
			placeholders: i18n.M{"gate": "G1"},
			expected:     "Gate: G1 Type: {{type}}",
		},
		{
			name:         "numeric values",
			template:     "{{passed}} of {{total}} pages passed",
			placeholders: i18n.M{"passed": 12, "total": 14},
			expected:     "12 of 14 pages passed",
		},
		{
			name:         "repeated placeholder",
			template:     "{{name}} / {{name}}",
			placeholders: i18n.M{"name": "TRIZEL"},
			expected:     "TRIZEL / TRIZEL",
		},
		{
			name:         "empty map keeps template",
			template:     "Hello, {{name}}!",
			placeholders: i18n.M{},
			expected:     "Hello, {{name}}!",
		},
		{
			name:         "right to left text",
			template:     "البوابة: {{gate}}",
			placeholders: i18n.M{"gate": "G2"},
			expected:     "البوابة: G2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, i18n.ReplacePlaceholders(tt.template, tt.placeholders))
		})
	}
}
