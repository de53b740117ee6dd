// Package metrics counts processing events in memory. There is no
// relational store here; the counters feed log summaries and the batch
// worker's final report.
package metrics

import "sync/atomic"

// EventType represents the type of processing event
type EventType string

const (
	EventProcessed        EventType = "processed"
	EventFailed           EventType = "failed"
	EventUnreadable       EventType = "unreadable"
	EventThumbnailFailed  EventType = "thumbnail_failed"
	EventDenoised         EventType = "denoised"
	EventAdjusted         EventType = "adjusted"
	EventRotated          EventType = "rotated"
	EventResized          EventType = "resized"
	EventFormatConverted  EventType = "format_converted"
)

// Recorder accumulates event counts. The zero value is not usable; call New.
// All methods are safe for concurrent use and safe on a nil receiver, so
// callers can pass nil when they do not care about counters.
type Recorder struct {
	counts map[EventType]*atomic.Int64
}

// New creates a Recorder with all counters at zero.
func New() *Recorder {
	r := &Recorder{counts: make(map[EventType]*atomic.Int64)}
	for _, e := range []EventType{
		EventProcessed, EventFailed, EventUnreadable, EventThumbnailFailed,
		EventDenoised, EventAdjusted, EventRotated, EventResized, EventFormatConverted,
	} {
		r.counts[e] = &atomic.Int64{}
	}
	return r
}

// Record increments the counter for the given event.
func (r *Recorder) Record(e EventType) {
	if r == nil {
		return
	}
	if c, ok := r.counts[e]; ok {
		c.Add(1)
	}
}

// Count returns the current value for the given event.
func (r *Recorder) Count(e EventType) int64 {
	if r == nil {
		return 0
	}
	if c, ok := r.counts[e]; ok {
		return c.Load()
	}
	return 0
}

// Stats holds a point-in-time snapshot of all counters.
type Stats struct {
	Processed        int64
	Failed           int64
	Unreadable       int64
	ThumbnailFailed  int64
	Denoised         int64
	Adjusted         int64
	Rotated          int64
	Resized          int64
	FormatConverted  int64
}

// Snapshot returns the current counter values.
func (r *Recorder) Snapshot() Stats {
	if r == nil {
		return Stats{}
	}
	return Stats{
		Processed:       r.Count(EventProcessed),
		Failed:          r.Count(EventFailed),
		Unreadable:      r.Count(EventUnreadable),
		ThumbnailFailed: r.Count(EventThumbnailFailed),
		Denoised:        r.Count(EventDenoised),
		Adjusted:        r.Count(EventAdjusted),
		Rotated:         r.Count(EventRotated),
		Resized:         r.Count(EventResized),
		FormatConverted: r.Count(EventFormatConverted),
	}
}
