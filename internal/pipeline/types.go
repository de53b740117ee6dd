package pipeline

import (
	"errors"
	"fmt"

	"foodsnap/internal/meta"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrTooLarge          = errors.New("image exceeds size limit")
	// ErrCorruptIntermediate signals that a stage produced an unusable
	// raster (nil or empty bounds).
	ErrCorruptIntermediate = errors.New("corrupt intermediate image")
)

// MaxInputBytes is the largest input buffer the pipeline will read.
const MaxInputBytes = 50 << 20 // 50MB

// StageError reports that a pipeline stage's raster operation failed.
// It is terminal for the request; the pipeline has no retry or rollback
// semantics beyond never emitting a truncated output file.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("pipeline stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Record captures which corrective steps fired during one pipeline run.
// It is built incrementally while the pipeline executes and immutable once
// returned.
type Record struct {
	RotationDegrees    int  `yaml:"rotation_degrees" json:"rotation_degrees"`
	Resized            bool `yaml:"resized" json:"resized"`
	NoiseReduction     bool `yaml:"noise_reduction" json:"noise_reduction"`
	BrightnessAdjusted bool `yaml:"brightness_adjusted" json:"brightness_adjusted"`
	ContrastAdjusted   bool `yaml:"contrast_adjusted" json:"contrast_adjusted"`
	Sharpened          bool `yaml:"sharpened" json:"sharpened"`
	FormatConverted    bool `yaml:"format_converted" json:"format_converted"`
}

// Artifact is the result of one pipeline run. The output file (and its
// thumbnail and sidecar, when present) belong to the caller once returned;
// SourcePath stays owned by the upload layer and is never mutated here.
type Artifact struct {
	SourcePath    string
	OutputPath    string
	ThumbnailPath string
	FinalMeta     *meta.ImageMetadata
	Record        Record
}

// AllowedFormats is the input allowlist referenced by the decode step. The
// calling layer owns the policy; the core performs the one boolean check.
var AllowedFormats = map[meta.Format]bool{
	meta.FormatJPEG: true,
	meta.FormatPNG:  true,
	meta.FormatWebP: true,
	meta.FormatTIFF: true,
	meta.FormatBMP:  true,
}

// FormatAllowed reports whether the detected format may enter the pipeline.
func FormatAllowed(f meta.Format) bool {
	return AllowedFormats[f]
}
