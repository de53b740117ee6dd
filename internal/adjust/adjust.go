// Package adjust derives corrective brightness/contrast factors from the
// primary channel statistics.
package adjust

// Factors are multiplicative corrections; 1.0 means no change. The exact
// constants are empirically chosen tunables, not derived values.
type Factors struct {
	Brightness float64
	Contrast   float64
}

// Thresholds and factors for the planner. Brightness keys on the primary
// channel mean, contrast on its standard deviation.
const (
	darkMeanThreshold   = 80
	brightMeanThreshold = 180
	lowStdevThreshold   = 20
	highStdevThreshold  = 60

	brightenFactor      = 1.2
	darkenFactor        = 0.9
	boostContrastFactor = 1.15
	easeContrastFactor  = 0.95
)

// Plan returns the correction factors for the given primary-channel mean
// and standard deviation. Out-of-range statistics produce a correction,
// anything else stays neutral.
func Plan(mean, stdev float64) Factors {
	f := Neutral()
	if mean < darkMeanThreshold {
		f.Brightness = brightenFactor
	} else if mean > brightMeanThreshold {
		f.Brightness = darkenFactor
	}
	if stdev < lowStdevThreshold {
		f.Contrast = boostContrastFactor
	} else if stdev > highStdevThreshold {
		f.Contrast = easeContrastFactor
	}
	return f
}

// Neutral returns no-op factors, the default when statistics are
// unavailable.
func Neutral() Factors {
	return Factors{Brightness: 1.0, Contrast: 1.0}
}

// IsNeutral reports whether f would leave the image unchanged.
func (f Factors) IsNeutral() bool {
	return f.Brightness == 1.0 && f.Contrast == 1.0
}
