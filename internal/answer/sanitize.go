package answer

import (
	"regexp"
	"strings"
)

// The synthesis prompt tells the model not to emit links, but models leak
// them anyway. These transforms run in order; each is safe to re-apply, so
// the whole chain is idempotent.
var (
	// "**Sources:**" (optionally with a leading pictograph) through end of text.
	sourcesHeaderRe = regexp.MustCompile(`(?s)\n?\s*\*\*\W*Sources?:\*\*.*$`)

	// Bulleted or bare URLs on their own lines.
	urlLineRe = regexp.MustCompile(`\n[^\S\n]*\W{0,4}https?://\S+`)

	// Trailing "Sources:", "Links:" or "References:" sections.
	labeledSectionRe = regexp.MustCompile(`(?s)\n\s*(?:Sources?|Links?|References?):\s*.*$`)

	// Anything left pointing at the documentation sites.
	docURLRe = regexp.MustCompile(`https?://(?:developer|docs)\.atlan\.com\S*`)

	blankRunRe = regexp.MustCompile(`\n\s*\n\s*\n+`)
)

// Sanitize strips source lists and documentation URLs from a synthesized
// answer and normalizes whitespace. Sanitize(Sanitize(s)) == Sanitize(s).
func Sanitize(s string) string {
	s = sourcesHeaderRe.ReplaceAllString(s, "")
	s = urlLineRe.ReplaceAllString(s, "")
	s = labeledSectionRe.ReplaceAllString(s, "")
	s = docURLRe.ReplaceAllString(s, "")
	s = blankRunRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
