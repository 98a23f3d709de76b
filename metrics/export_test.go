package metrics

import "github.com/prometheus/client_golang/prometheus"

// Test hooks into unexported collectors.

func (r *Recorder) SegmentsForTest(mode string) prometheus.Counter {
	return r.segments.WithLabelValues(mode)
}

func (r *Recorder) TourLengthForTest() prometheus.Gauge {
	return r.tourLength
}
