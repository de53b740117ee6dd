package pipeline

import (
	"image"

	bildadjust "github.com/anthonynsimon/bild/adjust"

	"foodsnap/internal/adjust"
)

// applyFactors modulates brightness and contrast by the planner's
// multiplicative factors. A neutral factor leaves that dimension untouched.
func applyFactors(img image.Image, f adjust.Factors) image.Image {
	out := img
	// bild expresses both adjustments as a relative change around zero, so
	// a 1.2 multiplier maps to +0.2.
	if f.Brightness != 1.0 {
		out = bildadjust.Brightness(out, f.Brightness-1.0)
	}
	if f.Contrast != 1.0 {
		out = bildadjust.Contrast(out, f.Contrast-1.0)
	}
	return out
}
