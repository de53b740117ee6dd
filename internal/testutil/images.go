// Package testutil builds the synthetic image fixtures the package tests
// share: flat fields, gradients, noise, hard edges, and JPEG buffers with
// a spliced-in EXIF orientation tag.
package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math/rand"
)

// Flat returns a uniformly colored image.
func Flat(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// Gradient returns a smooth two-axis gradient, a stand-in for an ordinary
// photograph.
func Gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8((x * 255) / w),
				G: uint8((y * 255) / h),
				B: 128,
				A: 255,
			})
		}
	}
	return img
}

// Checkered returns an image whose gray value alternates between lo and hi
// per pixel. Half-and-half values give a precisely known mean and stdev.
func Checkered(w, h int, lo, hi uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := lo
			if (x+y)%2 == 1 {
				v = hi
			}
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

// Noisy returns an image of seeded uniform random pixels; its per-channel
// stdev is around 74, far above any noise threshold.
func Noisy(w, h int, seed int64) *image.NRGBA {
	rng := rand.New(rand.NewSource(seed))
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(rng.Intn(256)),
				G: uint8(rng.Intn(256)),
				B: uint8(rng.Intn(256)),
				A: 255,
			})
		}
	}
	return img
}

// HardEdge returns an image split into a black and a white half, giving a
// strong Laplacian response along the boundary.
func HardEdge(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(0)
			if x >= w/2 {
				v = 255
			}
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

// EncodeJPEG returns img encoded as JPEG at the given quality.
func EncodeJPEG(img image.Image, quality int) []byte {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// EncodePNG returns img encoded as PNG.
func EncodePNG(img image.Image) []byte {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// WithEXIFOrientation splices a minimal EXIF APP1 segment carrying the
// given orientation tag into a JPEG buffer, right after the SOI marker.
// The result stays decodable by the standard JPEG decoder.
func WithEXIFOrientation(jpegData []byte, tag uint16) []byte {
	app1 := buildOrientationAPP1(tag)
	out := make([]byte, 0, len(jpegData)+len(app1))
	out = append(out, jpegData[:2]...) // SOI
	out = append(out, app1...)
	out = append(out, jpegData[2:]...)
	return out
}

// buildOrientationAPP1 assembles the APP1 marker segment: Exif header,
// little-endian TIFF header, and a single-entry IFD0 with tag 0x0112.
func buildOrientationAPP1(tag uint16) []byte {
	payload := []byte{
		'E', 'x', 'i', 'f', 0x00, 0x00, // Exif header
		'I', 'I', 0x2A, 0x00, // TIFF little-endian
		0x08, 0x00, 0x00, 0x00, // IFD0 offset
		0x01, 0x00, // entry count
		0x12, 0x01, // tag 0x0112 orientation
		0x03, 0x00, // type SHORT
		0x01, 0x00, 0x00, 0x00, // count 1
		byte(tag), byte(tag >> 8), 0x00, 0x00, // value + pad
		0x00, 0x00, 0x00, 0x00, // next IFD offset
	}
	segLen := len(payload) + 2
	seg := []byte{0xFF, 0xE1, byte(segLen >> 8), byte(segLen)}
	return append(seg, payload...)
}
