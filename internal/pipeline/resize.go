package pipeline

import (
	"image"

	"github.com/disintegration/imaging"
)

// resizeIfOversized reduces img to fit within maxDimension, preserving
// aspect ratio. It never upscales. The second return reports whether a
// resize actually happened.
func resizeIfOversized(img image.Image, maxDimension int) (image.Image, bool) {
	if img == nil {
		return nil, false
	}
	b := img.Bounds()
	w := b.Dx()
	h := b.Dy()
	if w <= 0 || h <= 0 {
		return img, false
	}

	if w <= maxDimension && h <= maxDimension {
		return img, false
	}

	nw, nh := calculateDimensions(w, h, maxDimension)
	return imaging.Resize(img, nw, nh, imaging.Lanczos), true
}

// calculateDimensions computes new width/height preserving aspect ratio and
// ensuring the larger dimension equals maxDim (unless no resize needed).
func calculateDimensions(origWidth, origHeight, maxDim int) (int, int) {
	if origWidth <= 0 || origHeight <= 0 || maxDim <= 0 {
		return origWidth, origHeight
	}
	if origWidth <= maxDim && origHeight <= maxDim {
		return origWidth, origHeight
	}
	if origWidth > origHeight {
		newW := maxDim
		newH := (origHeight * maxDim) / origWidth
		if newH < 1 {
			newH = 1
		}
		return newW, newH
	}
	newH := maxDim
	newW := (origWidth * maxDim) / origHeight
	if newW < 1 {
		newW = 1
	}
	return newW, newH
}
