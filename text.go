package veritext

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var whitespaceRe = regexp.MustCompile(`[ \t\n\r]+`)

// containmentMinRunes guards substring matching: design texts of one or
// two characters (bullet glyphs, punctuation) would otherwise match
// almost any fragment. Exact equality is not guarded.
const containmentMinRunes = 3

// Normalize collapses every run of space, tab, newline, and carriage
// return characters into a single space and trims the result. It is
// idempotent.
func Normalize(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// MatchText reports whether the design text is present in the markup
// fragments. A fragment qualifies when it equals the text after
// normalization, or when the normalized text is at least three runes long
// and is a contiguous substring of the normalized fragment.
//
// Fragments are scanned in document order and the first qualifying one
// wins; it is returned in its original, pre-normalization form.
func MatchText(text string, fragments []string) (string, bool) {
	normText := Normalize(text)

	for _, fragment := range fragments {
		normFragment := Normalize(fragment)
		if normText == normFragment {
			return fragment, true
		}
		if utf8.RuneCountInString(normText) >= containmentMinRunes && strings.Contains(normFragment, normText) {
			return fragment, true
		}
	}

	return "", false
}
