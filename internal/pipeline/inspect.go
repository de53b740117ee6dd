package pipeline

import (
	"foodsnap/internal/meta"
	"foodsnap/internal/quality"
	"foodsnap/internal/sharpness"
	"foodsnap/internal/stats"
)

// Inspection is the result of the analysis-only branch: everything a
// pre-upload quality check needs, with no files written.
type Inspection struct {
	Meta            *meta.ImageMetadata
	Report          quality.Report
	Recommendations []string
}

// Inspect analyzes an image buffer without transforming it. Statistics and
// the sharpness estimate are independent read-only passes and run
// concurrently. Undecodable input returns meta.ErrUnreadableImage.
func Inspect(data []byte) (*Inspection, error) {
	md, err := meta.Read(data)
	if err != nil {
		return nil, err
	}
	img, _, err := Decode(data)
	if err != nil {
		return nil, err
	}

	var cs []stats.ChannelStats
	statsDone := make(chan struct{})
	go func() {
		cs = stats.Compute(img)
		close(statsDone)
	}()
	sharp := sharpness.Estimate(img)
	<-statsDone

	report := quality.Analyze(cs, sharp)
	return &Inspection{
		Meta:            md,
		Report:          report,
		Recommendations: quality.Recommend(md, report),
	}, nil
}
