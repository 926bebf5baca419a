package blog

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultExcerptLength is the length callers pass when a view has no
// length of its own.
const DefaultExcerptLength = 150

const ellipsis = "..."

// GenerateExcerpt returns body unchanged when it fits in n runes. Longer
// bodies are cut to n runes, stripped of trailing whitespace, and suffixed
// with "...". A negative n counts as zero, so any non-empty body becomes
// just "...".
func GenerateExcerpt(body string, n int) string {
	n = max(n, 0)
	if utf8.RuneCountInString(body) <= n {
		return body
	}

	cut := 0
	for i := range body {
		if n == 0 {
			cut = i
			break
		}
		n--
	}
	return strings.TrimRightFunc(body[:cut], unicode.IsSpace) + ellipsis
}

