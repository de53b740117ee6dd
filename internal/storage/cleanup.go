package storage

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Cleanup is a simple helper to track temporary paths and remove them.
// It gives callers a scoped release step for intermediate files instead of
// fire-and-forget timers.
type Cleanup struct {
	paths []string
}

// Add registers a path for later cleanup.
func (c *Cleanup) Add(path string) {
	c.paths = append(c.paths, path)
}

// Execute removes all registered paths. It is safe to call multiple times.
// Returns the first non-ignorable error encountered, or nil.
func (c *Cleanup) Execute() error {
	var firstErr error
	for _, p := range c.paths {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	c.paths = nil
	return firstErr
}

// CleanOrphanedTempFiles removes stale temp files older than maxAge from the
// system temp dir. It only touches files matching the upload prefix pattern
// "upload-*.tmp" and the atomic-write prefix ".tmp-".
func CleanOrphanedTempFiles(maxAge time.Duration) error {
	tmpDir := os.TempDir()
	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		return err
	}

	cutoff := time.Now().UTC().Add(-maxAge)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		isUpload := strings.HasPrefix(name, "upload-") && strings.HasSuffix(name, ".tmp")
		isAtomic := strings.HasPrefix(name, ".tmp-")
		if !isUpload && !isAtomic {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().UTC().Before(cutoff) {
			// best effort
			os.Remove(filepath.Join(tmpDir, name))
		}
	}
	return nil
}
