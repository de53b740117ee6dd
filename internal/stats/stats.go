// Package stats computes per-channel pixel statistics, the foundation of
// the brightness, contrast and noise estimates.
package stats

import (
	"image"

	"github.com/disintegration/imaging"
	"gonum.org/v1/gonum/stat"
)

// ChannelStats holds the mean and standard deviation of one color channel.
// For 8-bit input both values lie in [0, 255].
type ChannelStats struct {
	Mean  float64
	Stdev float64
}

// Compute returns one ChannelStats per color channel of img, in channel
// order. Grayscale images yield a single channel, color images three
// (R, G, B; alpha is ignored). A nil or empty image yields an empty slice,
// which downstream code treats as "no data".
func Compute(img image.Image) []ChannelStats {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil
	}

	if gray, ok := img.(*image.Gray); ok {
		return []ChannelStats{channelStats(grayChannel(gray))}
	}

	src := imaging.Clone(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	n := w * h

	channels := [3][]float64{
		make([]float64, 0, n),
		make([]float64, 0, n),
		make([]float64, 0, n),
	}
	for y := 0; y < h; y++ {
		off := y * src.Stride
		for x := 0; x < w; x++ {
			i := off + x*4
			channels[0] = append(channels[0], float64(src.Pix[i]))
			channels[1] = append(channels[1], float64(src.Pix[i+1]))
			channels[2] = append(channels[2], float64(src.Pix[i+2]))
		}
	}

	out := make([]ChannelStats, 0, 3)
	for _, c := range channels {
		out = append(out, channelStats(c))
	}
	return out
}

// PrimaryMeanStdev returns the first channel's mean and stdev, the values
// the adjustment planner keys on. Empty input yields (0, 0, false).
func PrimaryMeanStdev(cs []ChannelStats) (mean, stdev float64, ok bool) {
	if len(cs) == 0 {
		return 0, 0, false
	}
	return cs[0].Mean, cs[0].Stdev, true
}

// AverageStdev returns the standard deviation averaged across all channels,
// used as the noise estimate. Empty input yields 0.
func AverageStdev(cs []ChannelStats) float64 {
	if len(cs) == 0 {
		return 0
	}
	var sum float64
	for _, c := range cs {
		sum += c.Stdev
	}
	return sum / float64(len(cs))
}

func channelStats(values []float64) ChannelStats {
	if len(values) == 0 {
		return ChannelStats{}
	}
	if len(values) == 1 {
		return ChannelStats{Mean: values[0]}
	}
	mean, std := stat.MeanStdDev(values, nil)
	return ChannelStats{Mean: mean, Stdev: std}
}

func grayChannel(gray *image.Gray) []float64 {
	b := gray.Bounds()
	w, h := b.Dx(), b.Dy()
	values := make([]float64, 0, w*h)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			values = append(values, float64(gray.GrayAt(x, y).Y))
		}
	}
	return values
}
