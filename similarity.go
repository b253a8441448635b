package veritext

// SimilarityResult holds pixel-similarity scores between two renders.
// It is an independent signal from text verification: two renders can be
// visually close while containing entirely different words.
type SimilarityResult struct {
	SSIM float64 `json:"ssim"`
	PSNR float64 `json:"psnr"`
	MSE  float64 `json:"mse"`
}

// ImageComparer computes pixel similarity between two image files.
type ImageComparer interface {
	Compare(pathA, pathB string) (*SimilarityResult, error)
}
