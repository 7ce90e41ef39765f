package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Strict policy: no tags survive, only text content.
var policy = bluemonday.StrictPolicy()

// Text strips any markup or script content from a free-text field and
// returns plain text. Never fails; empty or absent input maps to "".
// Callers apply field-specific defaults afterwards.
func Text(s string) string {
	return strings.TrimSpace(policy.Sanitize(s))
}
