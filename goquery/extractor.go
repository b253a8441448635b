// Package goquery provides a tokenizer-based implementation of
// veritext.FragmentExtractor. It parses HTML properly instead of
// pattern-matching it, which handles inputs that confuse the regex
// extractor (comments, CDATA, attribute values containing angle
// brackets) while producing comparable fragments: visible text in
// document order, with script and style contents removed and entities
// decoded.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mstolarz/veritext"
	"golang.org/x/net/html"
)

// Ensure Extractor implements veritext.FragmentExtractor at compile time.
var _ veritext.FragmentExtractor = (*Extractor)(nil)

var fragmentSplitRe = regexp.MustCompile(`[\n\r\t]+`)

// Extractor extracts visible text fragments by walking the parsed DOM.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Fragments returns the visible text of the document as trimmed,
// non-empty fragments in document order. Malformed HTML is tolerated:
// the parser recovers where it can, and unparseable input yields nil.
func (e *Extractor) Fragments(rawHTML string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil
	}

	// Drop elements whose text content is never visible.
	doc.Find("script, style, noscript").Remove()

	var fragments []string
	for _, root := range doc.Nodes {
		collectText(root, &fragments)
	}

	return fragments
}

// collectText appends the trimmed text of every text node under n,
// in document order. The parser has already decoded entities; no-break
// spaces become plain spaces so that &nbsp; matches the same design
// text in both extractors.
func collectText(n *html.Node, fragments *[]string) {
	if n.Type == html.TextNode {
		text := strings.ReplaceAll(n.Data, "\u00a0", " ")
		for _, piece := range fragmentSplitRe.Split(text, -1) {
			piece = strings.TrimSpace(piece)
			if piece != "" {
				*fragments = append(*fragments, piece)
			}
		}
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, fragments)
	}
}
