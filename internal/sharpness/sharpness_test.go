package sharpness

import (
	"image"
	"image/color"
	"testing"

	"foodsnap/internal/testutil"
)

func TestEstimate_FlatIsZero(t *testing.T) {
	if got := Estimate(testutil.Flat(32, 32, color.NRGBA{R: 128, G: 128, B: 128, A: 255})); got != 0 {
		t.Fatalf("flat image: got %v, want 0", got)
	}
}

func TestEstimate_HardEdge(t *testing.T) {
	edge := Estimate(testutil.HardEdge(32, 32))
	if edge <= 0 {
		t.Fatalf("hard edge should score positive, got %v", edge)
	}
	smooth := Estimate(testutil.Gradient(32, 32))
	if edge <= smooth {
		t.Fatalf("hard edge (%v) should outscore smooth gradient (%v)", edge, smooth)
	}
}

func TestEstimate_MoreEdgesScoreHigher(t *testing.T) {
	// A per-pixel checkerboard is all edges; one hard edge is mostly flat.
	busy := Estimate(testutil.Checkered(32, 32, 0, 255))
	single := Estimate(testutil.HardEdge(32, 32))
	if busy <= single {
		t.Fatalf("checkerboard (%v) should outscore single edge (%v)", busy, single)
	}
}

func TestEstimate_Degenerate(t *testing.T) {
	if got := Estimate(nil); got != 0 {
		t.Fatalf("nil image: got %v, want 0", got)
	}
	if got := Estimate(testutil.Flat(2, 2, color.NRGBA{A: 255})); got != 0 {
		t.Fatalf("sub-kernel image: got %v, want 0", got)
	}
	if got := Estimate(image.NewNRGBA(image.Rect(0, 0, 0, 0))); got != 0 {
		t.Fatalf("empty image: got %v, want 0", got)
	}
}

func TestEstimate_GrayInputMatchesColor(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			v := uint8(0)
			if x >= 8 {
				v = 255
			}
			gray.SetGray(x, y, color.Gray{Y: v})
		}
	}
	got := Estimate(gray)
	if got <= 0 {
		t.Fatalf("gray hard edge should score positive, got %v", got)
	}
}
