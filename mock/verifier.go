package mock

import "github.com/mstolarz/veritext"

var _ veritext.TextVerifier = (*TextVerifier)(nil)

// TextVerifier is a mock implementation of veritext.TextVerifier.
type TextVerifier struct {
	VerifyFn func(root *veritext.DesignNode, html string) *veritext.VerificationResult
}

func (v *TextVerifier) Verify(root *veritext.DesignNode, html string) *veritext.VerificationResult {
	return v.VerifyFn(root, html)
}
