// Command app runs the image preprocessing core against local files.
//
// Usage:
//
//	app -analyze <input>
//	app [-classify] <input>
//	app -batch
//
// Examples:
//
//	app -analyze photo.jpg
//	app -classify photo.jpg
//	app -batch
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"foodsnap/internal/classify"
	"foodsnap/internal/config"
	"foodsnap/internal/janitor"
	"foodsnap/internal/logger"
	"foodsnap/internal/metrics"
	"foodsnap/internal/pipeline"
	"foodsnap/internal/worker"
)

func main() {
	var (
		analyze     bool
		batch       bool
		runClassify bool
	)

	flag.BoolVar(&analyze, "analyze", false, "Analyze image quality without processing")
	flag.BoolVar(&batch, "batch", false, "Process every pending image in the configured pending directory")
	flag.BoolVar(&runClassify, "classify", false, "Send the processed artifact to the classifier stub")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	if batch {
		runBatch(cfg)
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: app [flags] <input>")
		fmt.Fprintln(os.Stderr, "       app -analyze <input>")
		fmt.Fprintln(os.Stderr, "       app -batch")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	input := args[0]

	if analyze {
		runAnalyze(input)
		return
	}
	runProcess(cfg, input, runClassify)
}

func runAnalyze(input string) {
	data, err := os.ReadFile(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", input, err)
		os.Exit(1)
	}

	insp, err := pipeline.Inspect(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "analyze %s: %v\n", input, err)
		os.Exit(1)
	}

	md := insp.Meta
	fmt.Printf("%s: %dx%d %s, %d bytes\n", input, md.Width, md.Height, md.Format, md.SizeBytes)
	r := insp.Report
	fmt.Printf("  brightness: %.1f (%s)\n", r.Brightness.Value, r.Brightness.Band)
	fmt.Printf("  contrast:   %.1f (%s)\n", r.Contrast.Value, r.Contrast.Band)
	fmt.Printf("  noise:      %.1f (%s)\n", r.Noise.Value, r.Noise.Band)
	fmt.Printf("  sharpness:  %.1f (%s)\n", r.Sharpness.Value, r.Sharpness.Band)
	fmt.Printf("  score:      %d (%s)\n", r.OverallScore, r.OverallBand)
	if r.Indeterminate {
		fmt.Println("  note: statistics unavailable, score is low-confidence")
	}
	for _, rec := range insp.Recommendations {
		fmt.Printf("  - %s\n", rec)
	}
}

func runProcess(cfg *config.Config, input string, runClassify bool) {
	events := metrics.New()
	proc := pipeline.New(cfg.DataDir, cfg.Tunables, events)

	art, err := proc.Process(context.Background(), input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "process %s: %v\n", input, err)
		os.Exit(1)
	}

	fmt.Printf("artifact:  %s (%dx%d, %d bytes)\n",
		art.OutputPath, art.FinalMeta.Width, art.FinalMeta.Height, art.FinalMeta.SizeBytes)
	if art.ThumbnailPath != "" {
		fmt.Printf("thumbnail: %s\n", art.ThumbnailPath)
	}
	fmt.Printf("record:    rotation=%d resized=%v denoised=%v brightness=%v contrast=%v converted=%v\n",
		art.Record.RotationDegrees, art.Record.Resized, art.Record.NoiseReduction,
		art.Record.BrightnessAdjusted, art.Record.ContrastAdjusted, art.Record.FormatConverted)

	if runClassify {
		stub := classify.Static{Prediction: classify.Prediction{Label: "unlabeled", Confidence: 0}}
		pred, err := stub.Classify(context.Background(), art.OutputPath)
		if err != nil {
			logger.WithError(err).Warn("classification failed")
			return
		}
		fmt.Printf("label:     %s (%.2f)\n", pred.Label, pred.Confidence)
	}
}

func runBatch(cfg *config.Config) {
	events := metrics.New()
	proc := pipeline.New(cfg.DataDir, cfg.Tunables, events)

	w := worker.New(proc, cfg.PendingDir, cfg.WorkerCount)
	processed, failed := w.Drain(context.Background())

	j := janitor.New(janitor.Config{
		DataDir:     cfg.DataDir,
		TempFileTTL: cfg.TempFileTTL,
		Interval:    cfg.JanitorInterval,
	})
	j.RunCleanup()

	stats := events.Snapshot()
	fmt.Printf("processed=%d failed=%d denoised=%d adjusted=%d rotated=%d resized=%d converted=%d thumb_failed=%d\n",
		processed, failed, stats.Denoised, stats.Adjusted, stats.Rotated,
		stats.Resized, stats.FormatConverted, stats.ThumbnailFailed)
	if failed > 0 {
		os.Exit(1)
	}
}
