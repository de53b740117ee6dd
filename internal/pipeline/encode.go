package pipeline

import (
	"errors"
	"image"
	"image/jpeg"
	"io"

	"github.com/sirupsen/logrus"

	"foodsnap/internal/logger"
)

// EncodeJPEG encodes img to JPEG written to w with the given quality
// (0-100). Every artifact goes through this re-encode regardless of source
// format so downstream consumers see a consistent size/quality envelope.
func EncodeJPEG(img image.Image, w io.Writer, quality int) error {
	if img == nil {
		return errors.New("nil image")
	}
	if w == nil {
		return errors.New("nil writer")
	}
	if quality < 1 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}

	// counting writer to capture encoded size
	c := &countingWriter{w: w}
	if err := jpeg.Encode(c, img, &jpeg.Options{Quality: quality}); err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{"size": c.n, "quality": quality}).Debug("jpeg encoded")
	return nil
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	m, err := c.w.Write(p)
	c.n += int64(m)
	return m, err
}
