package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime settings for the preprocessing service.
type Config struct {
	DataDir         string
	PendingDir      string
	WorkerCount     int
	JanitorInterval time.Duration
	TempFileTTL     time.Duration

	Tunables Tunables
}

// Tunables groups the pipeline's adjustable constants. The defaults are the
// empirically chosen values the product ships with; they are configuration,
// not invariants.
type Tunables struct {
	// MaxDimension is the largest width or height an output artifact may have.
	MaxDimension int
	// DenoiseStdevThreshold gates the median filter. It is deliberately a
	// separate knob from the quality analyzer's noise bands.
	DenoiseStdevThreshold float64
	// SharpenSigma controls the unsharp pass applied to every artifact.
	SharpenSigma float64
	// JPEGQuality is the fixed encode quality for processed artifacts.
	JPEGQuality int
	// ThumbnailSize is the square edge length of generated thumbnails.
	ThumbnailSize int
	// ThumbnailQuality is the JPEG quality for thumbnails.
	ThumbnailQuality int
}

// DefaultTunables returns the shipped pipeline constants.
func DefaultTunables() Tunables {
	return Tunables{
		MaxDimension:          4096,
		DenoiseStdevThreshold: 30.0,
		SharpenSigma:          1.0,
		JPEGQuality:           85,
		ThumbnailSize:         150,
		ThumbnailQuality:      80,
	}
}

// Load reads configuration from the environment, applying defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DataDir:         getEnv("DATA_DIR", "./data"),
		PendingDir:      getEnv("PENDING_DIR", "./data/pending"),
		WorkerCount:     int(parseIntOrDefault("WORKER_COUNT", 4)),
		JanitorInterval: parseDurationOrDefault("JANITOR_INTERVAL", 6*time.Hour),
		TempFileTTL:     parseDurationOrDefault("TEMP_FILE_TTL", 15*time.Minute),
		Tunables:        DefaultTunables(),
	}

	if v := os.Getenv("MAX_DIMENSION"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid MAX_DIMENSION: %q", v)
		}
		cfg.Tunables.MaxDimension = n
	}
	if v := os.Getenv("JPEG_QUALITY"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 1 || n > 100 {
			return nil, fmt.Errorf("invalid JPEG_QUALITY: %q", v)
		}
		cfg.Tunables.JPEGQuality = n
	}

	if cfg.WorkerCount < 1 {
		return nil, fmt.Errorf("WORKER_COUNT must be >= 1 (got %d)", cfg.WorkerCount)
	}
	if cfg.JanitorInterval <= 0 || cfg.TempFileTTL <= 0 {
		return nil, fmt.Errorf("intervals must be > 0 (got janitor=%s, ttl=%s)",
			cfg.JanitorInterval, cfg.TempFileTTL)
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(strings.TrimSpace(value)); err == nil && duration > 0 {
			return duration
		}
	}
	return defaultValue
}

func parseIntOrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
