// Package orientation resolves the EXIF orientation tag of an image buffer
// into a rotation angle. Missing or unparseable orientation data is common
// and never an error: the resolver falls back to 0 degrees.
package orientation

import (
	"bytes"

	"github.com/rwcarlsen/goexif/exif"
)

// Resolve returns the rotation angle (0, 90, 180 or 270 degrees) needed to
// display the image upright. It tries the EXIF library first, then an
// independent minimal APP1 parser, and defaults to 0 when both fail.
func Resolve(data []byte) int {
	tag, ok := Tag(data)
	if !ok {
		return 0
	}
	return AngleForTag(tag)
}

// Tag extracts the raw EXIF orientation tag value. The second return value
// is false when no tag could be found by either extraction path.
func Tag(data []byte) (uint16, bool) {
	if tag, ok := tagFromEXIF(data); ok {
		return tag, true
	}
	return scanAPP1Orientation(data)
}

// AngleForTag maps an EXIF orientation tag to a rotation angle. Only the
// pure-rotation tags map to non-zero angles; mirrored variants and unknown
// values are treated as "no rotation needed".
func AngleForTag(tag uint16) int {
	switch tag {
	case 3:
		return 180
	case 6:
		return 90
	case 8:
		return 270
	default:
		return 0
	}
}

// tagFromEXIF is the primary extraction path, via the EXIF library.
func tagFromEXIF(data []byte) (uint16, bool) {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return 0, false
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 0, false
	}
	v, err := tag.Int(0)
	if err != nil || v < 0 {
		return 0, false
	}
	return uint16(v), true
}
