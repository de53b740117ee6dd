package pipeline

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
)

// DenoiseKernelSize is the median filter window applied when the noise gate
// fires. The gate threshold itself lives in config.Tunables
// (DenoiseStdevThreshold) and is intentionally a different constant from the
// quality analyzer's noise bands.
const DenoiseKernelSize = 3

// denoise applies a median filter to suppress sensor noise.
func denoise(img image.Image) image.Image {
	return effect.Median(img, DenoiseKernelSize)
}
