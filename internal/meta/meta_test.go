package meta

import (
	"bytes"
	"errors"
	"image/color"
	"testing"

	"golang.org/x/image/bmp"

	"foodsnap/internal/testutil"
)

func TestRead_JPEG(t *testing.T) {
	data := testutil.EncodeJPEG(testutil.Gradient(640, 480), 90)
	md, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if md.Width != 640 || md.Height != 480 {
		t.Errorf("dimensions = %dx%d, want 640x480", md.Width, md.Height)
	}
	if md.Format != FormatJPEG {
		t.Errorf("format = %q, want %q", md.Format, FormatJPEG)
	}
	if md.SizeBytes != uint(len(data)) {
		t.Errorf("size = %d, want %d", md.SizeBytes, len(data))
	}
	if md.OrientationTag != nil {
		t.Errorf("plain JPEG should carry no orientation tag, got %d", *md.OrientationTag)
	}
	if md.HasAlpha == nil || *md.HasAlpha {
		t.Error("JPEG should report no alpha")
	}
	if md.ColorSpace != "ycbcr" {
		t.Errorf("color space = %q, want ycbcr", md.ColorSpace)
	}
}

func TestRead_JPEGWithOrientation(t *testing.T) {
	data := testutil.WithEXIFOrientation(testutil.EncodeJPEG(testutil.Gradient(64, 48), 90), 6)
	md, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if md.OrientationTag == nil {
		t.Fatal("expected an orientation tag")
	}
	if *md.OrientationTag != 6 {
		t.Fatalf("orientation tag = %d, want 6", *md.OrientationTag)
	}
}

func TestRead_PNG(t *testing.T) {
	data := testutil.EncodePNG(testutil.Flat(32, 16, color.NRGBA{R: 20, G: 20, B: 20, A: 255}))
	md, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if md.Width != 32 || md.Height != 16 {
		t.Errorf("dimensions = %dx%d, want 32x16", md.Width, md.Height)
	}
	if md.Format != FormatPNG {
		t.Errorf("format = %q, want %q", md.Format, FormatPNG)
	}
	if md.HasAlpha == nil || !*md.HasAlpha {
		t.Error("NRGBA PNG should report alpha")
	}
}

func TestRead_BMP(t *testing.T) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, testutil.Gradient(24, 24)); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	md, err := Read(buf.Bytes())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if md.Format != FormatBMP {
		t.Errorf("format = %q, want %q", md.Format, FormatBMP)
	}
	if md.Width != 24 || md.Height != 24 {
		t.Errorf("dimensions = %dx%d, want 24x24", md.Width, md.Height)
	}
}

func TestRead_Unreadable(t *testing.T) {
	for name, data := range map[string][]byte{
		"empty":     nil,
		"text":      []byte("not an image at all, just text padding out the sniff window"),
		"truncated": testutil.EncodeJPEG(testutil.Gradient(16, 16), 90)[:8],
	} {
		_, err := Read(data)
		if err == nil {
			t.Errorf("%s: expected error", name)
			continue
		}
		if !errors.Is(err, ErrUnreadableImage) {
			t.Errorf("%s: error %v does not wrap ErrUnreadableImage", name, err)
		}
	}
}

func TestDetectFormat(t *testing.T) {
	jpegData := testutil.EncodeJPEG(testutil.Gradient(8, 8), 90)
	pngData := testutil.EncodePNG(testutil.Gradient(8, 8))

	if f := DetectFormat(jpegData); f != FormatJPEG {
		t.Errorf("jpeg sniff = %q", f)
	}
	if f := DetectFormat(pngData); f != FormatPNG {
		t.Errorf("png sniff = %q", f)
	}
	if f := DetectFormat([]byte("II*\x00rest-of-a-tiff")); f != FormatTIFF {
		t.Errorf("tiff LE sniff = %q", f)
	}
	if f := DetectFormat([]byte("MM\x00*rest-of-a-tiff")); f != FormatTIFF {
		t.Errorf("tiff BE sniff = %q", f)
	}
	if f := DetectFormat([]byte("plain text")); f != FormatUnknown {
		t.Errorf("text sniff = %q", f)
	}
}
