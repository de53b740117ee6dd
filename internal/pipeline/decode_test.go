package pipeline

import (
	"bytes"
	"errors"
	"image/gif"
	"testing"

	"foodsnap/internal/meta"
	"foodsnap/internal/testutil"
)

func TestDecode_JPEG(t *testing.T) {
	img, format, err := Decode(testutil.EncodeJPEG(testutil.Gradient(64, 48), 90))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if format != meta.FormatJPEG {
		t.Errorf("format = %q, want jpeg", format)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("bounds = %v, want 64x48", b)
	}
}

func TestDecode_PNG(t *testing.T) {
	img, format, err := Decode(testutil.EncodePNG(testutil.Gradient(32, 32)))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if format != meta.FormatPNG {
		t.Errorf("format = %q, want png", format)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Errorf("bounds = %v, want 32x32", b)
	}
}

func TestDecode_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := gif.Encode(&buf, testutil.Checkered(16, 16, 0, 255), nil); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	_, _, err := Decode(buf.Bytes())
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("GIF should be rejected with ErrUnsupportedFormat, got %v", err)
	}
}

func TestDecode_Corrupt(t *testing.T) {
	// Valid JPEG magic, garbage body.
	data := append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, bytes.Repeat([]byte{0xAB}, 64)...)
	_, _, err := Decode(data)
	if !errors.Is(err, meta.ErrUnreadableImage) {
		t.Fatalf("corrupt JPEG should surface ErrUnreadableImage, got %v", err)
	}
}

func TestDecode_TooLarge(t *testing.T) {
	_, _, err := Decode(make([]byte, MaxInputBytes+1))
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("oversized buffer should surface ErrTooLarge, got %v", err)
	}
}
