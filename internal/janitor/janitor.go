// Package janitor periodically sweeps stale temporary files and empty
// artifact directories. Every deletion is best effort: failures are logged
// and never surfaced to request handling.
package janitor

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"foodsnap/internal/logger"
	"foodsnap/internal/storage"
)

// Janitor handles periodic cleanup of orphaned temp files and empty
// directories under the artifact tree.
type Janitor struct {
	dataDir     string
	tempFileTTL time.Duration
	interval    time.Duration
	stopChan    chan struct{}
	doneChan    chan struct{}
}

// Config holds janitor configuration
type Config struct {
	DataDir     string
	TempFileTTL time.Duration
	Interval    time.Duration
}

// New creates a new Janitor instance
func New(cfg Config) *Janitor {
	if cfg.Interval == 0 {
		cfg.Interval = 6 * time.Hour // default to 6 hours
	}
	if cfg.TempFileTTL == 0 {
		cfg.TempFileTTL = 15 * time.Minute
	}

	return &Janitor{
		dataDir:     cfg.DataDir,
		tempFileTTL: cfg.TempFileTTL,
		interval:    cfg.Interval,
		stopChan:    make(chan struct{}),
		doneChan:    make(chan struct{}),
	}
}

// Start begins the cleanup scheduler in a goroutine
func (j *Janitor) Start(ctx context.Context) {
	go j.run(ctx)
}

// Stop gracefully stops the janitor
func (j *Janitor) Stop() {
	close(j.stopChan)
	<-j.doneChan // wait for cleanup to finish
}

func (j *Janitor) run(ctx context.Context) {
	defer close(j.doneChan)

	// Run cleanup immediately on startup
	j.RunCleanup()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.RunCleanup()
		case <-j.stopChan:
			logger.Info("janitor: received stop signal, shutting down")
			return
		case <-ctx.Done():
			logger.Info("janitor: context cancelled, shutting down")
			return
		}
	}
}

// RunCleanup executes all cleanup tasks once.
func (j *Janitor) RunCleanup() {
	start := time.Now().UTC()
	logger.Debug("janitor: starting cleanup cycle")

	j.cleanupTempFiles()
	j.cleanupStrayAtomicTemps()
	j.cleanupEmptyDirs()

	logger.WithField("duration", time.Since(start).String()).Debug("janitor: cleanup cycle completed")
}

// cleanupTempFiles removes orphaned temporary upload files older than the TTL.
func (j *Janitor) cleanupTempFiles() {
	if err := storage.CleanOrphanedTempFiles(j.tempFileTTL); err != nil {
		logger.WithError(err).Warn("janitor: failed to clean temp files")
	}
}

// cleanupStrayAtomicTemps removes leftover atomic-write temp files inside the
// artifact tree (possible after a crash mid-write).
func (j *Janitor) cleanupStrayAtomicTemps() {
	root := filepath.Join(j.dataDir, "processed")
	cutoff := time.Now().UTC().Add(-j.tempFileTTL)

	filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil // skip on error
		}
		name := filepath.Base(path)
		if len(name) > 5 && name[:5] == ".tmp-" && info.ModTime().UTC().Before(cutoff) {
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				logger.WithError(err).WithField("path", path).Warn("janitor: failed to remove stray temp file")
			}
		}
		return nil
	})
}

// cleanupEmptyDirs removes empty directories in the processed tree.
func (j *Janitor) cleanupEmptyDirs() {
	root := filepath.Join(j.dataDir, "processed")

	filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip on error
		}
		if !info.IsDir() || path == root {
			return nil
		}
		// Remove succeeds only when the directory is already empty.
		if err := os.Remove(path); err == nil {
			logger.WithField("path", path).Debug("janitor: removed empty directory")
		}
		return nil
	})
}
