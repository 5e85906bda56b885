package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// deaccent decomposes to NFD and drops combining marks, so "Agüero" and
// "Aguero" compare equal.
var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// NormalizeStation canonicalizes a station name for comparison: lower-case,
// accents stripped, spaces and underscores removed entirely. Removing (rather
// than collapsing) whitespace keeps multi-word names and underscore-joined
// stop ids comparable as substrings.
func NormalizeStation(value string) string {
	lowered := strings.ToLower(value)
	stripped, _, err := transform.String(deaccent, lowered)
	if err != nil {
		stripped = lowered
	}
	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		if unicode.IsSpace(r) || r == '_' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
