// Package meta extracts dimensions, format and orientation information
// from raw image buffers without applying any transforms.
package meta

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"net/http"

	"github.com/chai2010/webp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"foodsnap/internal/orientation"
)

// ErrUnreadableImage signals a buffer that cannot be decoded at all. Callers
// must treat it as terminal for the request; there is no fallback.
var ErrUnreadableImage = errors.New("unreadable image")

// Format is the detected encoded format of an input buffer.
type Format string

const (
	FormatJPEG    Format = "jpeg"
	FormatPNG     Format = "png"
	FormatWebP    Format = "webp"
	FormatTIFF    Format = "tiff"
	FormatBMP     Format = "bmp"
	FormatUnknown Format = "unknown"
)

// ImageMetadata describes one input buffer. It is produced once per buffer
// and never mutated.
type ImageMetadata struct {
	Width          uint
	Height         uint
	Format         Format
	SizeBytes      uint
	OrientationTag *uint16
	HasAlpha       *bool
	ColorSpace     string
}

// Read extracts metadata from raw image bytes. It returns ErrUnreadableImage
// (wrapped) if the buffer cannot be decoded.
func Read(data []byte) (*ImageMetadata, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty buffer", ErrUnreadableImage)
	}

	format := DetectFormat(data)
	md := &ImageMetadata{
		Format:    format,
		SizeBytes: uint(len(data)),
	}

	var cfg image.Config
	var err error
	switch format {
	case FormatJPEG:
		cfg, err = jpeg.DecodeConfig(bytes.NewReader(data))
	case FormatPNG:
		cfg, err = png.DecodeConfig(bytes.NewReader(data))
	case FormatWebP:
		w, h, hasAlpha, werr := webp.GetInfo(data)
		if werr != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnreadableImage, werr)
		}
		md.Width = uint(w)
		md.Height = uint(h)
		md.HasAlpha = &hasAlpha
		md.ColorSpace = "srgb"
		return md, nil
	case FormatTIFF:
		cfg, err = tiff.DecodeConfig(bytes.NewReader(data))
	case FormatBMP:
		cfg, err = bmp.DecodeConfig(bytes.NewReader(data))
	default:
		// Last resort: whatever decoders are registered.
		cfg, _, err = image.DecodeConfig(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableImage, err)
	}

	md.Width = uint(cfg.Width)
	md.Height = uint(cfg.Height)
	hasAlpha := modelHasAlpha(cfg.ColorModel)
	md.HasAlpha = &hasAlpha
	md.ColorSpace = colorSpace(cfg.ColorModel)

	if tag, ok := orientation.Tag(data); ok {
		md.OrientationTag = &tag
	}
	return md, nil
}

// DetectFormat sniffs the encoded format from the leading bytes. TIFF is
// checked by magic number because net/http does not sniff it.
func DetectFormat(data []byte) Format {
	if len(data) >= 4 {
		if bytes.HasPrefix(data, []byte("II*\x00")) || bytes.HasPrefix(data, []byte("MM\x00*")) {
			return FormatTIFF
		}
	}
	switch http.DetectContentType(data) {
	case "image/jpeg":
		return FormatJPEG
	case "image/png":
		return FormatPNG
	case "image/webp":
		return FormatWebP
	case "image/bmp":
		return FormatBMP
	default:
		return FormatUnknown
	}
}

func modelHasAlpha(m color.Model) bool {
	switch m {
	case color.NRGBAModel, color.RGBAModel, color.NRGBA64Model, color.RGBA64Model, color.AlphaModel, color.Alpha16Model:
		return true
	}
	// Paletted PNGs may carry transparency; treat the palette as opaque here
	// since per-entry alpha is not visible from DecodeConfig.
	return false
}

func colorSpace(m color.Model) string {
	switch m {
	case color.YCbCrModel:
		return "ycbcr"
	case color.GrayModel, color.Gray16Model:
		return "gray"
	case color.CMYKModel:
		return "cmyk"
	default:
		return "srgb"
	}
}
