// Package sanitize strips markup from free-text fields before they are stored.
package sanitize

import (
	"html"
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// maxPasses bounds the fixed-point loop in Text. Each pass can only shrink
// the input, so nested payloads settle within a few passes.
const maxPasses = 4

var (
	strict = bluemonday.StrictPolicy()

	// scriptScheme matches URL schemes that execute code when rendered as a link.
	scriptScheme = regexp.MustCompile(`(?i)(javascript|vbscript)\s*:`)
)

// Text removes every HTML element from s, dropping the content of script and
// style elements, and strips executable URL schemes. Entities are decoded so
// plain text such as "Tom & Jerry" or non-Latin scripts round-trip unchanged.
func Text(s string) string {
	for i := 0; i < maxPasses; i++ {
		out := html.UnescapeString(strict.Sanitize(s))
		out = scriptScheme.ReplaceAllString(out, "")
		if out == s {
			return out
		}
		s = out
	}
	return s
}
