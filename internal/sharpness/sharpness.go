// Package sharpness estimates image sharpness from the response of a fixed
// Laplacian edge kernel.
package sharpness

import (
	"image"
	"image/draw"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Estimate convolves img with the 3x3 Laplacian kernel
//
//	 0 -1  0
//	-1  4 -1
//	 0 -1  0
//
// and returns the square root of the mean squared response. The kernel has
// zero DC gain, so this equals the standard deviation of the response.
// Higher values mean more high-frequency detail; a flat image scores 0.
// Degenerate input (nil, or smaller than the kernel) also scores 0, which
// reads as "very blurry" and keeps the failure mode conservative.
func Estimate(img image.Image) float64 {
	if img == nil {
		return 0
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 3 || h < 3 {
		return 0
	}

	gray, ok := img.(*image.Gray)
	if !ok {
		gray = image.NewGray(b)
		draw.Draw(gray, b, img, b.Min, draw.Src)
	}

	squared := make([]float64, 0, (w-2)*(h-2))
	for y := b.Min.Y + 1; y < b.Max.Y-1; y++ {
		for x := b.Min.X + 1; x < b.Max.X-1; x++ {
			center := float64(gray.GrayAt(x, y).Y)
			top := float64(gray.GrayAt(x, y-1).Y)
			bottom := float64(gray.GrayAt(x, y+1).Y)
			left := float64(gray.GrayAt(x-1, y).Y)
			right := float64(gray.GrayAt(x+1, y).Y)

			response := 4*center - top - bottom - left - right
			squared = append(squared, response*response)
		}
	}
	if len(squared) == 0 {
		return 0
	}
	return math.Sqrt(stat.Mean(squared, nil))
}
