package i18n

import (
	"fmt"
	"strings"
)

// ReplacePlaceholders substitutes {{name}} tokens in template with values from
// placeholders. Unknown tokens are left in place.
//
// Example:
//
//	ReplacePlaceholders("Gate: {{gate}}", M{"gate": "G3"}) // "Gate: G3"
func ReplacePlaceholders(template string, placeholders M) string {
	if len(placeholders) == 0 || !strings.Contains(template, "{{") {
		return template
	}

	pairs := make([]string, 0, len(placeholders)*2)
	for key, value := range placeholders {
		pairs = append(pairs, "{{"+key+"}}", fmt.Sprint(value))
	}

	return strings.NewReplacer(pairs...).Replace(template)
}
