package veritext

import (
	"regexp"
	"strings"
)

// FragmentExtractor extracts human-visible text fragments from raw HTML,
// in document order. Implementations must tolerate malformed HTML: a bad
// input produces fewer or garbled fragments, never an error.
type FragmentExtractor interface {
	Fragments(html string) []string
}

var (
	scriptRe = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	styleRe  = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style>`)
	tagRe    = regexp.MustCompile(`(?s)<[^>]*>`)
	splitRe  = regexp.MustCompile(`[\n\r\t]+`)
)

// ExtractFragments strips markup from raw HTML and returns the surviving
// text as trimmed, non-empty fragments in document order.
//
// The transformation order matters: script and style elements are removed
// with their contents before tags are replaced, tags become newlines so
// text flanking a tag boundary is not concatenated, and &amp; is decoded
// after the other entities so that e.g. &amp;lt; yields the literal
// string "&lt;" rather than "<".
func ExtractFragments(html string) []string {
	text := scriptRe.ReplaceAllString(html, "")
	text = styleRe.ReplaceAllString(text, "")
	text = tagRe.ReplaceAllString(text, "\n")

	text = strings.ReplaceAll(text, "&nbsp;", " ")
	text = strings.ReplaceAll(text, "&lt;", "<")
	text = strings.ReplaceAll(text, "&gt;", ">")
	text = strings.ReplaceAll(text, "&quot;", "\"")
	text = strings.ReplaceAll(text, "&amp;", "&")

	var fragments []string
	for _, piece := range splitRe.Split(text, -1) {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			fragments = append(fragments, piece)
		}
	}

	return fragments
}

// regexExtractor adapts ExtractFragments to the FragmentExtractor
// interface. It is the default extractor used by Verifier.
type regexExtractor struct{}

func (regexExtractor) Fragments(html string) []string {
	return ExtractFragments(html)
}
