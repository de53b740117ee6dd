package pipeline

import (
	"bytes"
	"fmt"
	"os"

	"github.com/disintegration/imaging"

	"foodsnap/internal/storage"
)

// Thumbnail generates a square, center-cropped, cover-fit JPEG derivative
// of the processed artifact at artifactPath and writes it next to it with a
// _thumb suffix. Best effort by contract: callers treat a thumbnail error
// as non-fatal for the request.
func Thumbnail(artifactPath string, size, quality int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("invalid thumbnail size %d", size)
	}

	data, err := os.ReadFile(artifactPath)
	if err != nil {
		return "", fmt.Errorf("read artifact: %w", err)
	}
	img, _, err := Decode(data)
	if err != nil {
		return "", fmt.Errorf("decode artifact: %w", err)
	}

	// Fill scales to cover the square then crops the overflow around the
	// center, so any aspect ratio ends up exactly size x size.
	thumb := imaging.Fill(img, size, size, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := EncodeJPEG(thumb, &buf, quality); err != nil {
		return "", fmt.Errorf("encode thumbnail: %w", err)
	}

	thumbPath := storage.ThumbnailPath(artifactPath)
	if err := storage.AtomicWrite(thumbPath, bytes.NewReader(buf.Bytes())); err != nil {
		return "", fmt.Errorf("write thumbnail: %w", err)
	}
	return thumbPath, nil
}
