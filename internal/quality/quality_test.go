package quality

import (
	"testing"

	"foodsnap/internal/stats"
)

func threeChannels(mean, stdev float64) []stats.ChannelStats {
	return []stats.ChannelStats{
		{Mean: mean, Stdev: stdev},
		{Mean: mean, Stdev: stdev},
		{Mean: mean, Stdev: stdev},
	}
}

func TestAnalyze_GoodPhoto(t *testing.T) {
	r := Analyze(threeChannels(120, 40), 60)
	if r.Indeterminate {
		t.Fatal("real statistics should not be indeterminate")
	}
	if r.Brightness.Band != BrightnessGood {
		t.Errorf("brightness band = %q, want %q", r.Brightness.Band, BrightnessGood)
	}
	if r.Contrast.Band != ContrastGood {
		t.Errorf("contrast band = %q, want %q", r.Contrast.Band, ContrastGood)
	}
	if r.Noise.Band != NoiseNoisy {
		// stdev 40 doubles as the noise estimate here
		t.Errorf("noise band = %q, want %q", r.Noise.Band, NoiseNoisy)
	}
	if r.Sharpness.Band != SharpnessSharp {
		t.Errorf("sharpness band = %q, want %q", r.Sharpness.Band, SharpnessSharp)
	}
}

func TestBrightnessBands(t *testing.T) {
	cases := []struct {
		mean float64
		want Band
	}{
		{30, BrightnessTooDark},
		{49.9, BrightnessTooDark},
		{50, BrightnessSlightlyDark},
		{79.9, BrightnessSlightlyDark},
		{80, BrightnessGood},
		{180, BrightnessGood},
		{180.1, BrightnessSlightlyLight},
		{200, BrightnessSlightlyLight},
		{200.1, BrightnessTooBright},
	}
	for _, tc := range cases {
		r := Analyze(threeChannels(tc.mean, 40), 60)
		if r.Brightness.Band != tc.want {
			t.Errorf("mean %v: band = %q, want %q", tc.mean, r.Brightness.Band, tc.want)
		}
	}
}

func TestContrastBands(t *testing.T) {
	cases := []struct {
		stdev float64
		want  Band
	}{
		{10, ContrastVeryLow},
		{15, ContrastLow},
		{24.9, ContrastLow},
		{25, ContrastGood},
		{60, ContrastGood},
		{60.1, ContrastHigh},
		{70, ContrastHigh},
		{70.1, ContrastVeryHigh},
	}
	for _, tc := range cases {
		r := Analyze(threeChannels(120, tc.stdev), 60)
		if r.Contrast.Band != tc.want {
			t.Errorf("stdev %v: band = %q, want %q", tc.stdev, r.Contrast.Band, tc.want)
		}
	}
}

func TestNoiseBands(t *testing.T) {
	cases := []struct {
		stdev float64
		want  Band
	}{
		{10, NoiseLow},
		{15, NoiseLow},
		{15.1, NoiseSlightly},
		{25, NoiseSlightly},
		{25.1, NoiseNoisy},
		{40, NoiseNoisy},
		{40.1, NoiseVery},
	}
	for _, tc := range cases {
		r := Analyze(threeChannels(120, tc.stdev), 60)
		if r.Noise.Band != tc.want {
			t.Errorf("avg stdev %v: band = %q, want %q", tc.stdev, r.Noise.Band, tc.want)
		}
	}
}

func TestSharpnessBands(t *testing.T) {
	cases := []struct {
		v    float64
		want Band
	}{
		{0, SharpnessVeryBlurry},
		{19.9, SharpnessVeryBlurry},
		{20, SharpnessBlurry},
		{34.9, SharpnessBlurry},
		{35, SharpnessSlightlySoft},
		{49.9, SharpnessSlightlySoft},
		{50, SharpnessSharp},
		{120, SharpnessSharp},
	}
	for _, tc := range cases {
		r := Analyze(threeChannels(120, 40), tc.v)
		if r.Sharpness.Band != tc.want {
			t.Errorf("sharpness %v: band = %q, want %q", tc.v, r.Sharpness.Band, tc.want)
		}
	}
}

func TestScore_RangeAndDirection(t *testing.T) {
	// Score always stays in [0, 100].
	worst := Analyze(threeChannels(10, 5), 0)
	if worst.OverallScore < 0 || worst.OverallScore > 100 {
		t.Fatalf("score out of range: %d", worst.OverallScore)
	}

	good := Analyze(threeChannels(120, 40), 60)
	dark := Analyze(threeChannels(30, 40), 60)
	if dark.OverallScore >= good.OverallScore {
		t.Errorf("dark photo (%d) should score below good photo (%d)",
			dark.OverallScore, good.OverallScore)
	}
	blurry := Analyze(threeChannels(120, 40), 5)
	if blurry.OverallScore >= good.OverallScore {
		t.Errorf("blurry photo (%d) should score below good photo (%d)",
			blurry.OverallScore, good.OverallScore)
	}
	flat := Analyze(threeChannels(120, 5), 60)
	if flat.OverallScore >= good.OverallScore {
		t.Errorf("flat photo (%d) should score below good photo (%d)",
			flat.OverallScore, good.OverallScore)
	}
}

func TestOverallBands(t *testing.T) {
	cases := []struct {
		score int
		want  OverallBand
	}{
		{100, OverallExcellent},
		{85, OverallExcellent},
		{84, OverallGood},
		{70, OverallGood},
		{69, OverallFair},
		{55, OverallFair},
		{54, OverallPoor},
		{40, OverallPoor},
		{39, OverallVeryPoor},
		{0, OverallVeryPoor},
	}
	for _, tc := range cases {
		if got := overallBand(tc.score); got != tc.want {
			t.Errorf("score %d: band = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestAnalyze_Indeterminate(t *testing.T) {
	r := Analyze(nil, 60)
	if !r.Indeterminate {
		t.Fatal("missing statistics should mark the report indeterminate")
	}
	if r.Brightness.Band != "" || r.Contrast.Band != "" || r.Noise.Band != "" {
		t.Fatal("indeterminate report should carry empty channel bands")
	}
	// Sharpness is still assessed; high sharpness gives a clean score.
	if r.Sharpness.Band != SharpnessSharp {
		t.Errorf("sharpness band = %q, want %q", r.Sharpness.Band, SharpnessSharp)
	}
	if r.OverallScore != 100 {
		t.Errorf("sharp indeterminate score = %d, want 100", r.OverallScore)
	}

	blurry := Analyze(nil, 5)
	if blurry.OverallScore >= r.OverallScore {
		t.Errorf("blurry indeterminate (%d) should score below sharp (%d)",
			blurry.OverallScore, r.OverallScore)
	}
}

func TestAnalyzeWithWeights_ZeroWeights(t *testing.T) {
	r := AnalyzeWithWeights(threeChannels(10, 5), 0, ScoreWeights{})
	if r.OverallScore != 100 {
		t.Fatalf("zero weights should leave score at 100, got %d", r.OverallScore)
	}
}

func TestAnalyze_Pure(t *testing.T) {
	cs := threeChannels(95, 33)
	a := Analyze(cs, 44)
	b := Analyze(cs, 44)
	if a != b {
		t.Fatalf("Analyze is not deterministic: %+v vs %+v", a, b)
	}
}
