// Package pipeline normalizes uploaded food photos for classification:
// rotate -> resize -> denoise -> brightness/contrast -> sharpen -> JPEG.
// Stage gates are computed from the original image's statistics before any
// transform runs; they are not re-evaluated between stages.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"foodsnap/internal/adjust"
	"foodsnap/internal/config"
	"foodsnap/internal/logger"
	"foodsnap/internal/meta"
	"foodsnap/internal/metrics"
	"foodsnap/internal/orientation"
	"foodsnap/internal/stats"
	"foodsnap/internal/storage"
)

// Processor runs the preprocessing pipeline. It holds no per-request state;
// one Processor serves any number of concurrent requests.
type Processor struct {
	dataDir  string
	tunables config.Tunables
	events   *metrics.Recorder
}

// New creates a Processor writing artifacts under dataDir. events may be
// nil when callers do not track counters.
func New(dataDir string, t config.Tunables, events *metrics.Recorder) *Processor {
	return &Processor{dataDir: dataDir, tunables: t, events: events}
}

// Process reads the image at sourcePath and runs the full pipeline. The
// source file is never modified; ownership stays with the upload layer.
func (p *Processor) Process(ctx context.Context, sourcePath string) (*Artifact, error) {
	data, err := os.ReadFile(sourcePath)
	if err != nil {
		p.events.Record(metrics.EventFailed)
		return nil, fmt.Errorf("read source: %w", err)
	}
	return p.ProcessBytes(ctx, sourcePath, data)
}

// ProcessBytes runs the full pipeline over an in-memory buffer. sourcePath
// is recorded on the artifact for bookkeeping only.
func (p *Processor) ProcessBytes(ctx context.Context, sourcePath string, data []byte) (*Artifact, error) {
	if _, err := meta.Read(data); err != nil {
		p.events.Record(metrics.EventUnreadable)
		p.events.Record(metrics.EventFailed)
		return nil, err
	}

	img, srcFormat, err := Decode(data)
	if err != nil {
		p.events.Record(metrics.EventFailed)
		return nil, err
	}

	// Statistics and orientation are independent read-only passes over the
	// same immutable input; run them concurrently.
	var cs []stats.ChannelStats
	statsDone := make(chan struct{})
	go func() {
		cs = stats.Compute(img)
		close(statsDone)
	}()
	angle := orientation.Resolve(data)
	<-statsDone

	// Gate conditions, all against the original image.
	noise := stats.AverageStdev(cs)
	wantDenoise := len(cs) > 0 && noise > p.tunables.DenoiseStdevThreshold
	factors := adjust.Neutral()
	if mean, stdev, ok := stats.PrimaryMeanStdev(cs); ok {
		factors = adjust.Plan(mean, stdev)
	}

	var rec Record
	current := img

	if angle != 0 {
		current = rotateByAngle(current, angle)
		rec.RotationDegrees = angle
		p.events.Record(metrics.EventRotated)
	}
	if err := checkRaster("rotate", current); err != nil {
		return p.fail(err)
	}

	current, rec.Resized = resizeIfOversized(current, p.tunables.MaxDimension)
	if err := checkRaster("resize", current); err != nil {
		return p.fail(err)
	}
	if rec.Resized {
		p.events.Record(metrics.EventResized)
	}

	if wantDenoise {
		current = denoise(current)
		rec.NoiseReduction = true
		p.events.Record(metrics.EventDenoised)
	}
	if err := checkRaster("denoise", current); err != nil {
		return p.fail(err)
	}

	if !factors.IsNeutral() {
		current = applyFactors(current, factors)
		rec.BrightnessAdjusted = factors.Brightness != 1.0
		rec.ContrastAdjusted = factors.Contrast != 1.0
		p.events.Record(metrics.EventAdjusted)
	}
	if err := checkRaster("adjust", current); err != nil {
		return p.fail(err)
	}

	current = sharpen(current, p.tunables.SharpenSigma)
	rec.Sharpened = true
	if err := checkRaster("sharpen", current); err != nil {
		return p.fail(err)
	}

	rec.FormatConverted = srcFormat != meta.FormatJPEG
	if rec.FormatConverted {
		p.events.Record(metrics.EventFormatConverted)
	}

	if err := ctx.Err(); err != nil {
		return p.fail(&StageError{Stage: "encode", Err: err})
	}

	var buf bytes.Buffer
	if err := EncodeJPEG(current, &buf, p.tunables.JPEGQuality); err != nil {
		return p.fail(&StageError{Stage: "encode", Err: err})
	}

	createdAt := time.Now().UTC()
	outPath := storage.ArtifactPathAt(p.dataDir, storage.NewArtifactID(), createdAt)
	if err := storage.AtomicWrite(outPath, bytes.NewReader(buf.Bytes())); err != nil {
		return p.fail(&StageError{Stage: "write", Err: err})
	}

	finalMd, err := meta.Read(buf.Bytes())
	if err != nil {
		os.Remove(outPath)
		return p.fail(&StageError{Stage: "finalize", Err: err})
	}

	art := &Artifact{
		SourcePath: sourcePath,
		OutputPath: outPath,
		FinalMeta:  finalMd,
		Record:     rec,
	}

	// Sidecar and thumbnail are best-effort extras; neither failure
	// invalidates the already-written artifact.
	doc := sidecarDoc{
		Source:    sourcePath,
		CreatedAt: createdAt,
		Width:     finalMd.Width,
		Height:    finalMd.Height,
		Format:    string(finalMd.Format),
		SizeBytes: finalMd.SizeBytes,
		Record:    rec,
	}
	if err := storage.WriteSidecar(outPath, doc); err != nil {
		logger.WithError(err).WithField("artifact", outPath).Warn("sidecar write failed")
	}

	thumbPath, err := Thumbnail(outPath, p.tunables.ThumbnailSize, p.tunables.ThumbnailQuality)
	if err != nil {
		logger.WithError(err).WithField("artifact", outPath).Warn("thumbnail generation failed")
		p.events.Record(metrics.EventThumbnailFailed)
	} else {
		art.ThumbnailPath = thumbPath
	}

	p.events.Record(metrics.EventProcessed)
	logger.WithFields(logrus.Fields{
		"source":   sourcePath,
		"artifact": outPath,
		"width":    finalMd.Width,
		"height":   finalMd.Height,
		"rotation": rec.RotationDegrees,
		"denoised": rec.NoiseReduction,
	}).Info("image processed")

	return art, nil
}

func (p *Processor) fail(err error) (*Artifact, error) {
	p.events.Record(metrics.EventFailed)
	return nil, err
}

// checkRaster guards against a stage handing back an unusable image.
func checkRaster(stage string, img image.Image) error {
	if img == nil {
		return &StageError{Stage: stage, Err: ErrCorruptIntermediate}
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return &StageError{Stage: stage, Err: ErrCorruptIntermediate}
	}
	return nil
}

// sidecarDoc is the YAML document written next to every artifact.
type sidecarDoc struct {
	Source    string    `yaml:"source"`
	CreatedAt time.Time `yaml:"created_at"`
	Width     uint      `yaml:"width"`
	Height    uint      `yaml:"height"`
	Format    string    `yaml:"format"`
	SizeBytes uint      `yaml:"size_bytes"`
	Record    Record    `yaml:"record"`
}
