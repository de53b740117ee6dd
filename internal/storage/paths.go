package storage

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"
)

// NewArtifactID returns a unique identifier for a processed artifact.
// Nanosecond timestamps are collision-safe enough for a single node and
// keep directory listings chronological.
func NewArtifactID() string {
	return strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
}

// ArtifactPath returns the storage path for a processed artifact using
// layout: {baseDir}/processed/{yyyy}/{mm}/{id}.jpg
func ArtifactPath(baseDir, id string) string {
	return ArtifactPathAt(baseDir, id, time.Now().UTC())
}

// ArtifactPathAt is ArtifactPath with an explicit timestamp, the stable
// form for anything persisted.
func ArtifactPathAt(baseDir, id string, createdAt time.Time) string {
	t := createdAt.UTC()
	return filepath.Join(baseDir, "processed", t.Format("2006"), t.Format("01"), fmt.Sprintf("%s.jpg", id))
}

// ThumbnailPath returns the thumbnail path next to an artifact, with a
// _thumb suffix.
func ThumbnailPath(artifactPath string) string {
	ext := filepath.Ext(artifactPath)
	return artifactPath[:len(artifactPath)-len(ext)] + "_thumb" + ext
}

// SidecarPath returns the metadata sidecar path next to an artifact.
func SidecarPath(artifactPath string) string {
	ext := filepath.Ext(artifactPath)
	return artifactPath[:len(artifactPath)-len(ext)] + ".yaml"
}
