package worker

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"foodsnap/internal/config"
	"foodsnap/internal/metrics"
	"foodsnap/internal/pipeline"
	"foodsnap/internal/testutil"
)

func newTestWorker(t *testing.T, workers int) (*Worker, string, *metrics.Recorder) {
	t.Helper()
	dataDir := t.TempDir()
	pendingDir := t.TempDir()
	tun := config.DefaultTunables()
	tun.MaxDimension = 100
	tun.ThumbnailSize = 16
	events := metrics.New()
	proc := pipeline.New(dataDir, tun, events)
	return New(proc, pendingDir, workers), pendingDir, events
}

func TestDrain(t *testing.T) {
	w, pendingDir, events := newTestWorker(t, 2)

	good1 := filepath.Join(pendingDir, "a.jpg")
	good2 := filepath.Join(pendingDir, "b.png")
	bad := filepath.Join(pendingDir, "c.jpg")
	ignored := filepath.Join(pendingDir, "notes.txt")

	os.WriteFile(good1, testutil.EncodeJPEG(testutil.Gradient(40, 40), 90), 0o644)
	os.WriteFile(good2, testutil.EncodePNG(testutil.Gradient(30, 30)), 0o644)
	os.WriteFile(bad, []byte("corrupt"), 0o644)
	os.WriteFile(ignored, []byte("hello"), 0o644)

	processed, failed := w.Drain(context.Background())
	if processed != 2 || failed != 1 {
		t.Fatalf("Drain = (%d, %d), want (2, 1)", processed, failed)
	}

	// Consumed uploads are released, failures and non-images stay.
	for _, p := range []string{good1, good2} {
		if _, err := os.Stat(p); !os.IsNotExist(err) {
			t.Errorf("%s should have been removed", p)
		}
	}
	for _, p := range []string{bad, ignored} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("%s should remain: %v", p, err)
		}
	}

	s := events.Snapshot()
	if s.Processed != 2 || s.Failed != 1 {
		t.Errorf("unexpected counters: %+v", s)
	}
}

func TestDrain_EmptyDir(t *testing.T) {
	w, _, _ := newTestWorker(t, 2)
	if processed, failed := w.Drain(context.Background()); processed != 0 || failed != 0 {
		t.Fatalf("empty drain = (%d, %d), want (0, 0)", processed, failed)
	}
}

func TestDrain_MissingDir(t *testing.T) {
	dataDir := t.TempDir()
	proc := pipeline.New(dataDir, config.DefaultTunables(), nil)
	w := New(proc, filepath.Join(dataDir, "never-created"), 2)
	if processed, failed := w.Drain(context.Background()); processed != 0 || failed != 0 {
		t.Fatalf("missing dir drain = (%d, %d), want (0, 0)", processed, failed)
	}
}

func TestTriggerAndStop(t *testing.T) {
	w, pendingDir, _ := newTestWorker(t, 1)
	src := filepath.Join(pendingDir, "a.jpg")
	os.WriteFile(src, testutil.EncodeJPEG(testutil.Gradient(20, 20), 90), 0o644)

	w.Start(context.Background())
	w.Trigger()

	deadline := time.After(10 * time.Second)
	for {
		if _, err := os.Stat(src); os.IsNotExist(err) {
			break
		}
		select {
		case <-deadline:
			t.Fatal("pending upload was never drained")
		case <-time.After(20 * time.Millisecond):
		}
	}

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestPendingFiles_Filtering(t *testing.T) {
	w, pendingDir, _ := newTestWorker(t, 1)

	os.WriteFile(filepath.Join(pendingDir, "a.JPG"), []byte("x"), 0o644)
	os.WriteFile(filepath.Join(pendingDir, "b.webp"), []byte("x"), 0o644)
	os.WriteFile(filepath.Join(pendingDir, ".hidden.jpg"), []byte("x"), 0o644)
	os.WriteFile(filepath.Join(pendingDir, "c.pdf"), []byte("x"), 0o644)
	os.MkdirAll(filepath.Join(pendingDir, "sub.jpg"), 0o755)

	paths, err := w.pendingFiles()
	if err != nil {
		t.Fatalf("pendingFiles: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("got %d eligible files (%v), want 2", len(paths), paths)
	}
}
