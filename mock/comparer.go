package mock

import "github.com/mstolarz/veritext"

var _ veritext.ImageComparer = (*ImageComparer)(nil)

// ImageComparer is a mock implementation of veritext.ImageComparer.
type ImageComparer struct {
	CompareFn func(pathA, pathB string) (*veritext.SimilarityResult, error)
}

func (c *ImageComparer) Compare(pathA, pathB string) (*veritext.SimilarityResult, error) {
	return c.CompareFn(pathA, pathB)
}
