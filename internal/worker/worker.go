// Package worker drains a directory of pending uploads through the
// preprocessing pipeline with bounded concurrency.
package worker

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"foodsnap/internal/logger"
	"foodsnap/internal/pipeline"
	"foodsnap/internal/storage"
)

// Worker handles background processing of pending images. Requests are
// independent: one file failing never stops the batch.
type Worker struct {
	proc       *pipeline.Processor
	pendingDir string
	workers    int

	trigger  chan struct{}
	stopChan chan struct{}
	doneChan chan struct{}
	wg       sync.WaitGroup
}

// New creates a background worker draining pendingDir with the given
// concurrency.
func New(proc *pipeline.Processor, pendingDir string, workers int) *Worker {
	if workers < 1 {
		workers = 1
	}
	return &Worker{
		proc:       proc,
		pendingDir: pendingDir,
		workers:    workers,
		trigger:    make(chan struct{}, 1),
		stopChan:   make(chan struct{}),
		doneChan:   make(chan struct{}),
	}
}

// Start begins the polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	go w.run(ctx)
}

// Stop signals the loop to exit and waits for in-flight jobs to finish.
func (w *Worker) Stop() {
	close(w.stopChan)
	<-w.doneChan
	w.wg.Wait()
}

// Trigger wakes the worker immediately instead of waiting for the next tick.
func (w *Worker) Trigger() {
	select {
	case w.trigger <- struct{}{}:
	default: // already pending
	}
}

func (w *Worker) run(ctx context.Context) {
	defer close(w.doneChan)

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.Drain(ctx)
		case <-w.trigger:
			w.Drain(ctx)
		case <-w.stopChan:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Drain processes every eligible file currently in the pending directory
// and returns how many succeeded and failed. Successfully processed source
// files are released (deleted) via a scoped cleanup; deletion failures are
// logged, never raised.
func (w *Worker) Drain(ctx context.Context) (processed, failed int) {
	paths, err := w.pendingFiles()
	if err != nil {
		logger.WithError(err).Warn("worker: failed to scan pending directory")
		return 0, 0
	}
	if len(paths) == 0 {
		return 0, 0
	}

	jobs := make(chan string)
	var mu sync.Mutex

	for i := 0; i < w.workers; i++ {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			for path := range jobs {
				ok := w.processOne(ctx, path)
				mu.Lock()
				if ok {
					processed++
				} else {
					failed++
				}
				mu.Unlock()
			}
		}()
	}

	for _, p := range paths {
		select {
		case jobs <- p:
		case <-ctx.Done():
			close(jobs)
			w.wg.Wait()
			return processed, failed
		}
	}
	close(jobs)
	w.wg.Wait()
	return processed, failed
}

func (w *Worker) processOne(ctx context.Context, path string) bool {
	art, err := w.proc.Process(ctx, path)
	if err != nil {
		logger.WithError(err).WithField("source", path).Error("worker: processing failed")
		return false
	}

	// Release the consumed upload; the artifact is already safely written.
	var cleanup storage.Cleanup
	cleanup.Add(path)
	if err := cleanup.Execute(); err != nil {
		logger.WithError(err).WithField("source", path).Warn("worker: failed to remove consumed upload")
	}

	logger.WithField("artifact", art.OutputPath).Debug("worker: processed pending upload")
	return true
}

func (w *Worker) pendingFiles() ([]string, error) {
	entries, err := os.ReadDir(w.pendingDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		switch strings.ToLower(filepath.Ext(name)) {
		case ".jpg", ".jpeg", ".png", ".webp", ".tif", ".tiff", ".bmp":
			out = append(out, filepath.Join(w.pendingDir, name))
		}
	}
	return out, nil
}
