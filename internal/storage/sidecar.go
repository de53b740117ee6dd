package storage

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WriteSidecar marshals v to YAML and writes it atomically next to the
// artifact at artifactPath. The sidecar lets downstream consumers read the
// processing record without re-inspecting the image.
func WriteSidecar(artifactPath string, v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal sidecar: %w", err)
	}
	if err := AtomicWrite(SidecarPath(artifactPath), bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write sidecar: %w", err)
	}
	return nil
}

// ReadSidecar unmarshals the YAML sidecar of the artifact at artifactPath
// into out.
func ReadSidecar(artifactPath string, out interface{}) error {
	data, err := os.ReadFile(SidecarPath(artifactPath))
	if err != nil {
		return fmt.Errorf("read sidecar: %w", err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("unmarshal sidecar: %w", err)
	}
	return nil
}
