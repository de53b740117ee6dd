package pipeline

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	webp "github.com/chai2010/webp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"foodsnap/internal/meta"
)

// Decode sniffs the format of data, checks it against the allowlist and
// decodes the full raster. Undecodable buffers surface as
// meta.ErrUnreadableImage so callers see one terminal error type for any
// decode failure.
func Decode(data []byte) (image.Image, meta.Format, error) {
	if int64(len(data)) > MaxInputBytes {
		return nil, meta.FormatUnknown, ErrTooLarge
	}

	format := meta.DetectFormat(data)
	if !FormatAllowed(format) {
		return nil, format, ErrUnsupportedFormat
	}

	var img image.Image
	var err error
	switch format {
	case meta.FormatJPEG:
		img, err = jpeg.Decode(bytes.NewReader(data))
	case meta.FormatPNG:
		img, err = png.Decode(bytes.NewReader(data))
	case meta.FormatWebP:
		img, err = webp.Decode(bytes.NewReader(data))
	case meta.FormatTIFF:
		img, err = tiff.Decode(bytes.NewReader(data))
	case meta.FormatBMP:
		img, err = bmp.Decode(bytes.NewReader(data))
	default:
		return nil, format, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, format, fmt.Errorf("%w: %v", meta.ErrUnreadableImage, err)
	}

	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, format, fmt.Errorf("%w: empty raster", meta.ErrUnreadableImage)
	}
	return img, format, nil
}
