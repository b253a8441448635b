package mock

import "github.com/mstolarz/veritext"

var _ veritext.FragmentExtractor = (*FragmentExtractor)(nil)

// FragmentExtractor is a mock implementation of veritext.FragmentExtractor.
type FragmentExtractor struct {
	FragmentsFn func(html string) []string
}

func (e *FragmentExtractor) Fragments(html string) []string {
	return e.FragmentsFn(html)
}
