package quality

import (
	"fmt"

	"foodsnap/internal/meta"
)

// maxAdvisedDimension mirrors the pipeline's resize bound for the advisory
// check on oversized inputs.
const maxAdvisedDimension = 4096

// Recommend turns metadata and a quality report into an ordered list of
// free-text suggestions. Every rule is evaluated independently; there is no
// early exit. It never mutates the image and is usable standalone, e.g. for
// a pre-upload quality check without running the pipeline.
func Recommend(md *meta.ImageMetadata, r Report) []string {
	var out []string

	if md != nil {
		if md.Width > maxAdvisedDimension || md.Height > maxAdvisedDimension {
			out = append(out, fmt.Sprintf("Image is very large (%dx%d); resize below %dpx for faster processing.",
				md.Width, md.Height, maxAdvisedDimension))
		}
		if md.Format != meta.FormatJPEG && md.Format != meta.FormatPNG {
			out = append(out, fmt.Sprintf("Convert the %s image to JPEG or PNG for best compatibility.", md.Format))
		}
	}

	switch r.Brightness.Band {
	case BrightnessTooDark, BrightnessSlightlyDark:
		out = append(out, "Photo looks dark; retake with more light or let the brightness correction run.")
	case BrightnessSlightlyLight, BrightnessTooBright:
		out = append(out, "Photo looks overexposed; move away from direct light.")
	}

	switch r.Contrast.Band {
	case ContrastVeryLow, ContrastLow:
		out = append(out, "Low contrast detected; the contrast boost will be applied during processing.")
	case ContrastHigh, ContrastVeryHigh:
		out = append(out, "Contrast is very strong; avoid filters before uploading.")
	}

	if r.Noise.Band != NoiseLow && r.Noise.Band != "" {
		out = append(out, "Image noise detected; hold the camera steady and avoid digital zoom.")
	}

	if r.Sharpness.Band != SharpnessSharp && r.Sharpness.Band != "" {
		out = append(out, "Image is soft or blurry; keep the camera still and tap to focus before shooting.")
	}

	if md != nil && md.OrientationTag != nil && *md.OrientationTag != 1 {
		out = append(out, "Camera orientation tag found; the photo will be auto-rotated upright.")
	}

	return out
}
