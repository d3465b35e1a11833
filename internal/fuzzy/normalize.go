// Package fuzzy implements the deterministic subsequence matcher that
// backs interactive selection: query characters must appear in order
// within a candidate field, and the shortest containing span wins.
package fuzzy

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes text for matching: decompose to base glyphs,
// strip combining marks, drop any remaining non-ASCII runes, and
// lowercase. It never fails; text that decomposes to nothing encodable
// normalizes to the empty string.
func Normalize(s string) string {
	stripped, _, err := transform.String(
		transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn))), s)
	if err != nil {
		stripped = s
	}

	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		if r < utf8.RuneSelf {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
