// Package quality turns raw channel statistics and a sharpness estimate
// into a banded quality report and human-readable recommendations.
package quality

import (
	"foodsnap/internal/stats"
)

// Band is a qualitative assessment of one quality dimension.
type Band string

const (
	BrightnessTooDark       Band = "too_dark"
	BrightnessSlightlyDark  Band = "slightly_dark"
	BrightnessGood          Band = "good"
	BrightnessSlightlyLight Band = "slightly_bright"
	BrightnessTooBright     Band = "too_bright"

	ContrastVeryLow  Band = "very_low"
	ContrastLow      Band = "low"
	ContrastGood     Band = "good"
	ContrastHigh     Band = "high"
	ContrastVeryHigh Band = "very_high"

	NoiseLow          Band = "low"
	NoiseSlightly     Band = "slightly_noisy"
	NoiseNoisy        Band = "noisy"
	NoiseVery         Band = "very_noisy"

	SharpnessVeryBlurry   Band = "very_blurry"
	SharpnessBlurry       Band = "blurry"
	SharpnessSlightlySoft Band = "slightly_soft"
	SharpnessSharp        Band = "sharp"
)

// OverallBand summarizes the composite score.
type OverallBand string

const (
	OverallExcellent OverallBand = "excellent"
	OverallGood      OverallBand = "good"
	OverallFair      OverallBand = "fair"
	OverallPoor      OverallBand = "poor"
	OverallVeryPoor  OverallBand = "very_poor"
)

// Dimension is one measured quality axis with its qualitative band and the
// range considered ideal.
type Dimension struct {
	Value      float64 `yaml:"value" json:"value"`
	Band       Band    `yaml:"band" json:"band"`
	IdealRange [2]float64 `yaml:"ideal_range" json:"ideal_range"`
}

// Report is a pure function of channel statistics plus a sharpness value.
// It is recomputed on demand and never cached across requests.
//
// The composite score is a heuristic weighted-penalty model, not a
// statistically calibrated measure; treat it as a ranking hint.
type Report struct {
	Brightness Dimension `yaml:"brightness" json:"brightness"`
	Contrast   Dimension `yaml:"contrast" json:"contrast"`
	Noise      Dimension `yaml:"noise" json:"noise"`
	Sharpness  Dimension `yaml:"sharpness" json:"sharpness"`

	OverallScore int         `yaml:"overall_score" json:"overall_score"`
	OverallBand  OverallBand `yaml:"overall_band" json:"overall_band"`

	// Indeterminate is set when no channel statistics were available. The
	// brightness/contrast/noise dimensions then carry empty bands and the
	// score reflects sharpness only; do not read it as a real assessment.
	Indeterminate bool `yaml:"indeterminate" json:"indeterminate"`
}

// ScoreWeights are the penalty constants of the composite score. The
// defaults are the shipped values; they are tunables, not invariants.
type ScoreWeights struct {
	BrightnessOff  int
	ContrastLow    int
	ContrastHigh   int
	NoiseHeavy     int
	NoiseModerate  int
	SharpnessLow   int
	SharpnessSoft  int
}

// DefaultScoreWeights returns the shipped penalty constants.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		BrightnessOff: 20,
		ContrastLow:   25,
		ContrastHigh:  10,
		NoiseHeavy:    20,
		NoiseModerate: 10,
		SharpnessLow:  25,
		SharpnessSoft: 10,
	}
}

// Analyze builds a Report from channel statistics and a sharpness estimate
// using the default score weights.
func Analyze(cs []stats.ChannelStats, sharpness float64) Report {
	return AnalyzeWithWeights(cs, sharpness, DefaultScoreWeights())
}

// AnalyzeWithWeights is Analyze with caller-supplied penalty weights.
func AnalyzeWithWeights(cs []stats.ChannelStats, sharpness float64, w ScoreWeights) Report {
	r := Report{
		Brightness: Dimension{IdealRange: [2]float64{80, 180}},
		Contrast:   Dimension{IdealRange: [2]float64{20, 60}},
		Noise:      Dimension{IdealRange: [2]float64{0, 20}},
		Sharpness:  Dimension{IdealRange: [2]float64{50, 100}},
	}

	r.Sharpness.Value = sharpness
	r.Sharpness.Band = sharpnessBand(sharpness)

	score := 100
	if sharpness < 30 {
		score -= w.SharpnessLow
	} else if sharpness < 50 {
		score -= w.SharpnessSoft
	}

	mean, stdev, ok := stats.PrimaryMeanStdev(cs)
	if !ok {
		r.Indeterminate = true
		r.OverallScore = clampScore(score)
		r.OverallBand = overallBand(r.OverallScore)
		return r
	}

	noise := stats.AverageStdev(cs)

	r.Brightness.Value = mean
	r.Brightness.Band = brightnessBand(mean)
	r.Contrast.Value = stdev
	r.Contrast.Band = contrastBand(stdev)
	r.Noise.Value = noise
	r.Noise.Band = noiseBand(noise)

	if mean < 80 || mean > 180 {
		score -= w.BrightnessOff
	}
	if stdev < 20 {
		score -= w.ContrastLow
	} else if stdev > 60 {
		score -= w.ContrastHigh
	}
	if noise > 30 {
		score -= w.NoiseHeavy
	} else if noise > 20 {
		score -= w.NoiseModerate
	}

	r.OverallScore = clampScore(score)
	r.OverallBand = overallBand(r.OverallScore)
	return r
}

func brightnessBand(mean float64) Band {
	switch {
	case mean < 50:
		return BrightnessTooDark
	case mean < 80:
		return BrightnessSlightlyDark
	case mean <= 180:
		return BrightnessGood
	case mean <= 200:
		return BrightnessSlightlyLight
	default:
		return BrightnessTooBright
	}
}

func contrastBand(stdev float64) Band {
	switch {
	case stdev < 15:
		return ContrastVeryLow
	case stdev < 25:
		return ContrastLow
	case stdev <= 60:
		return ContrastGood
	case stdev <= 70:
		return ContrastHigh
	default:
		return ContrastVeryHigh
	}
}

func noiseBand(noise float64) Band {
	switch {
	case noise > 40:
		return NoiseVery
	case noise > 25:
		return NoiseNoisy
	case noise > 15:
		return NoiseSlightly
	default:
		return NoiseLow
	}
}

func sharpnessBand(v float64) Band {
	switch {
	case v < 20:
		return SharpnessVeryBlurry
	case v < 35:
		return SharpnessBlurry
	case v < 50:
		return SharpnessSlightlySoft
	default:
		return SharpnessSharp
	}
}

func overallBand(score int) OverallBand {
	switch {
	case score >= 85:
		return OverallExcellent
	case score >= 70:
		return OverallGood
	case score >= 55:
		return OverallFair
	case score >= 40:
		return OverallPoor
	default:
		return OverallVeryPoor
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
