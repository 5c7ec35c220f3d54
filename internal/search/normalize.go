package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, drops combining diacritical marks and
// recomposes, so "Río" and "rio" fold to the same text.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normalizes text for matching: accent folding plus lower-casing.
// Idempotent: Fold(Fold(s)) == Fold(s).
func Fold(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Keywords folds a free-text query and splits it into match tokens.
func Keywords(query string) []string {
	return strings.Fields(Fold(query))
}
