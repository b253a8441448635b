// Package ssim computes pixel-similarity scores between two image files.
// It implements the global-mean form of the Structural Similarity Index
// (Wang et al., IEEE Trans. on Image Processing 13(4), 2004) alongside
// PSNR and MSE. The scores are an independent signal from text
// verification: a layout can score visually close while containing
// entirely different words.
package ssim

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	"github.com/mstolarz/veritext"
	"github.com/nfnt/resize"
)

// Stabilization constants from Wang et al. for 8-bit dynamic range:
// C1 = (0.01*255)^2, C2 = (0.03*255)^2.
const (
	c1 = 6.5025
	c2 = 58.5225
)

// maxPSNR is reported when the images are identical (MSE of zero).
const maxPSNR = 100.0

// Ensure Comparer implements veritext.ImageComparer at compile time.
var _ veritext.ImageComparer = (*Comparer)(nil)

// Comparer compares two image files on luminance. When the images differ
// in size the overlapping top-left region is compared; WithResizeToMatch
// scales the larger image down instead, which tolerates renders exported
// at different scales.
type Comparer struct {
	resizeToMatch bool
}

// Option configures a Comparer.
type Option func(*Comparer)

// WithResizeToMatch scales the larger image down to the smaller image's
// dimensions before comparing, instead of cropping to the overlap.
func WithResizeToMatch() Option {
	return func(c *Comparer) { c.resizeToMatch = true }
}

// NewComparer creates a new Comparer.
func NewComparer(opts ...Option) *Comparer {
	c := &Comparer{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compare decodes both image files and returns their similarity scores.
func (c *Comparer) Compare(pathA, pathB string) (*veritext.SimilarityResult, error) {
	a, err := loadGray(pathA)
	if err != nil {
		return nil, err
	}
	b, err := loadGray(pathB)
	if err != nil {
		return nil, err
	}

	a, b = c.align(a, b)

	mse := meanSquaredError(a, b)

	return &veritext.SimilarityResult{
		SSIM: ssim(a, b),
		PSNR: psnr(mse),
		MSE:  mse,
	}, nil
}

// align brings both planes to common dimensions.
func (c *Comparer) align(a, b *plane) (*plane, *plane) {
	if a.w == b.w && a.h == b.h {
		return a, b
	}

	w := min(a.w, b.w)
	h := min(a.h, b.h)

	if c.resizeToMatch {
		return a.resize(w, h), b.resize(w, h)
	}
	return a.crop(w, h), b.crop(w, h)
}

// plane is a grayscale pixel buffer in float64 for numeric stability.
type plane struct {
	pix  []float64
	w, h int
	img  image.Image // retained for resizing
}

// loadGray decodes an image file and converts it to luminance using the
// ITU-R 601 weights (the same conversion as PIL's "L" mode).
func loadGray(path string) (*plane, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, veritext.Errorf(veritext.EINVALID, "cannot open image %q: %v", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, veritext.Errorf(veritext.EINVALID, "cannot decode image %q: %v", path, err)
	}

	return grayPlane(img), nil
}

func grayPlane(img image.Image) *plane {
	bounds := img.Bounds()
	p := &plane{
		w:   bounds.Dx(),
		h:   bounds.Dy(),
		pix: make([]float64, bounds.Dx()*bounds.Dy()),
		img: img,
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// RGBA components are 16-bit; scale to 0..255.
			lum := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
			p.pix[i] = lum
			i++
		}
	}

	return p
}

// crop returns the top-left w×h region.
func (p *plane) crop(w, h int) *plane {
	if w == p.w && h == p.h {
		return p
	}
	out := &plane{w: w, h: h, pix: make([]float64, w*h)}
	for y := 0; y < h; y++ {
		copy(out.pix[y*w:(y+1)*w], p.pix[y*p.w:y*p.w+w])
	}
	return out
}

// resize scales the source image to w×h with bilinear interpolation.
func (p *plane) resize(w, h int) *plane {
	if w == p.w && h == p.h {
		return p
	}
	return grayPlane(resize.Resize(uint(w), uint(h), p.img, resize.Bilinear))
}

func (p *plane) mean() float64 {
	var sum float64
	for _, v := range p.pix {
		sum += v
	}
	return sum / float64(len(p.pix))
}

// ssim computes the global-mean SSIM over the full planes (no sliding
// window), matching the score the rest of the system was tuned against.
func ssim(a, b *plane) float64 {
	muA := a.mean()
	muB := b.mean()

	var varA, varB, cov float64
	for i := range a.pix {
		da := a.pix[i] - muA
		db := b.pix[i] - muB
		varA += da * da
		varB += db * db
		cov += da * db
	}
	n := float64(len(a.pix))
	varA /= n
	varB /= n
	cov /= n

	numerator := (2*muA*muB + c1) * (2*cov + c2)
	denominator := (muA*muA + muB*muB + c1) * (varA + varB + c2)

	return numerator / denominator
}

func meanSquaredError(a, b *plane) float64 {
	var sum float64
	for i := range a.pix {
		d := a.pix[i] - b.pix[i]
		sum += d * d
	}
	return sum / float64(len(a.pix))
}

func psnr(mse float64) float64 {
	if mse == 0 {
		return maxPSNR
	}
	return 10 * math.Log10(255.0*255.0/mse)
}
