// Package classify defines the boundary to the downstream label-prediction
// service. The core hands over a processed artifact and does not interpret
// how the prediction is produced; inference itself lives outside this
// repository.
package classify

import "context"

// Prediction is the opaque response from the prediction service.
type Prediction struct {
	Label      string
	Confidence float64
}

// Classifier consumes a processed artifact and returns a label guess.
type Classifier interface {
	Classify(ctx context.Context, artifactPath string) (Prediction, error)
}

// Static returns a fixed prediction for every artifact. It stands in for
// the real service in tests and local runs.
type Static struct {
	Prediction Prediction
}

func (s Static) Classify(ctx context.Context, artifactPath string) (Prediction, error) {
	if err := ctx.Err(); err != nil {
		return Prediction{}, err
	}
	return s.Prediction, nil
}
