package pipeline

import (
	"image"

	"github.com/disintegration/imaging"
)

// rotateByAngle applies a right-angle rotation resolved from the EXIF
// orientation tag. The angle is clockwise; imaging rotates
// counter-clockwise, hence the swapped 90/270 mapping. Angles other than
// 90, 180 and 270 return the image unchanged.
func rotateByAngle(img image.Image, angle int) image.Image {
	switch angle {
	case 90:
		return imaging.Rotate270(img)
	case 180:
		return imaging.Rotate180(img)
	case 270:
		return imaging.Rotate90(img)
	default:
		return img
	}
}
