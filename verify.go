package veritext

// TextMatch pairs one design text with the markup fragment it matched.
// HTMLText is the matching fragment in its original form; it is absent
// from the serialized record when Matched is false.
type TextMatch struct {
	DSLText  string `json:"dsl_text"`
	HTMLText string `json:"html_text,omitempty"`
	Matched  bool   `json:"matched"`
}

// VerificationResult is the verdict for one verification call: counts,
// accuracy, the strict pass flag, and per-text match detail in the order
// the texts were discovered in the tree.
type VerificationResult struct {
	TotalTexts   int         `json:"total_texts"`
	MatchedCount int         `json:"matched_count"`
	Accuracy     float64     `json:"accuracy"`
	Passed       bool        `json:"passed"`
	Matches      []TextMatch `json:"matches"`
}

// TextVerifier runs a text fidelity verification.
type TextVerifier interface {
	Verify(root *DesignNode, html string) *VerificationResult
}

// Ensure Verifier implements TextVerifier at compile time.
var _ TextVerifier = (*Verifier)(nil)

// Verifier checks that every text in a design tree appears in an HTML
// rendering. The zero value uses the built-in regex fragment extractor;
// set Extractor to substitute a different one (e.g., the goquery
// tokenizer).
type Verifier struct {
	Extractor FragmentExtractor
}

// Verify extracts text from both sides, matches every design text
// against the markup fragments, and returns the verdict. It is total:
// empty trees, empty HTML, and malformed HTML all produce a well-defined
// result rather than an error.
//
// An empty tree passes vacuously with accuracy 1.0. Passing requires
// every text to match; accuracy must be exactly 1.0.
func (v *Verifier) Verify(root *DesignNode, html string) *VerificationResult {
	extractor := v.Extractor
	if extractor == nil {
		extractor = regexExtractor{}
	}

	texts := CollectText(root)
	fragments := extractor.Fragments(html)

	result := &VerificationResult{
		TotalTexts: len(texts),
		Matches:    make([]TextMatch, 0, len(texts)),
	}

	for _, text := range texts {
		fragment, ok := MatchText(text, fragments)
		if ok {
			result.MatchedCount++
		}
		result.Matches = append(result.Matches, TextMatch{
			DSLText:  text,
			HTMLText: fragment,
			Matched:  ok,
		})
	}

	if result.TotalTexts == 0 {
		result.Accuracy = 1.0
	} else {
		result.Accuracy = float64(result.MatchedCount) / float64(result.TotalTexts)
	}
	result.Passed = result.MatchedCount == result.TotalTexts

	return result
}

// Verify runs a verification with the default Verifier.
func Verify(root *DesignNode, html string) *VerificationResult {
	return (&Verifier{}).Verify(root, html)
}
