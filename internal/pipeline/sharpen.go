package pipeline

import (
	"image"

	"github.com/disintegration/imaging"
)

// sharpen applies the fixed unsharp pass every artifact receives before
// encoding. The sigma is a tunable; see config.Tunables.SharpenSigma.
func sharpen(img image.Image, sigma float64) image.Image {
	if sigma <= 0 {
		return img
	}
	return imaging.Sharpen(img, sigma)
}
