package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/spaceship/axis"
	"github.com/katalvlaran/spaceship/kinematics"
	"github.com/katalvlaran/spaceship/optimizer"
	"github.com/katalvlaran/spaceship/planner"
	"github.com/katalvlaran/spaceship/search"
	"github.com/katalvlaran/spaceship/thrust"
)

const namespace = "spaceship"

// Operation labels.
const (
	OpPlan     = "plan"
	OpOptimize = "optimize"
	OpVerify   = "verify"
)

// Recorder collects solver metrics into its own registry.
type Recorder struct {
	reg *prometheus.Registry

	segments     *prometheus.CounterVec
	expanded     prometheus.Counter
	rounds       prometheus.Histogram
	segmentSteps prometheus.Histogram
	tourLength   prometheus.Gauge
	optSegments  *prometheus.CounterVec
	optSaved     prometheus.Counter
	duration     *prometheus.HistogramVec
	errs         *prometheus.CounterVec
}

// New returns a Recorder with all collectors registered.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Recorder{
		reg: reg,
		segments: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "segments_total",
			Help:      "Planned segments by mode",
		}, []string{"mode"}),
		expanded: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expanded_states_total",
			Help:      "Search states expanded",
		}),
		rounds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_rounds",
			Help:      "Search depth per segment",
			Buckets:   prometheus.LinearBuckets(1, 1, 16),
		}),
		segmentSteps: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "segment_steps",
			Help:      "Steps between consecutive targets",
			Buckets:   []float64{1, 2, 3, 5, 8, 13, 21, 34, 55},
		}),
		tourLength: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tour_length",
			Help:      "Length of the last produced solution",
		}),
		optSegments: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "optimizer_segments_total",
			Help:      "Optimizer segments by result",
		}, []string{"result"}),
		optSaved: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "optimizer_saved_steps_total",
			Help:      "Steps removed by the optimizer",
		}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of solver operations in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
		}, []string{"op"}),
		errs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Failures by operation and error kind",
		}, []string{"op", "kind"}),
	}
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.reg
}

// ObserveSegment records one planned segment. It matches planner.Options.OnSegment.
func (r *Recorder) ObserveSegment(seg planner.Segment) {
	mode := "lookahead"
	switch {
	case seg.Recovered:
		mode = "recovered"
	case seg.Rounds == 0:
		mode = "sequential"
	case seg.Last:
		mode = "last"
	}
	r.segments.WithLabelValues(mode).Inc()
	r.expanded.Add(float64(seg.Expanded))
	if seg.Rounds > 0 {
		r.rounds.Observe(float64(seg.Rounds))
	}
	r.segmentSteps.Observe(float64(len(seg.Thrust)))
}

// ObserveTour records a finished tour.
func (r *Recorder) ObserveTour(t planner.Tour, elapsed time.Duration) {
	r.tourLength.Set(float64(len(t.Solution)))
	r.duration.WithLabelValues(OpPlan).Observe(elapsed.Seconds())
}

// ObserveOptimization records an optimizer run.
func (r *Recorder) ObserveOptimization(res optimizer.Result, elapsed time.Duration) {
	for _, seg := range res.Segments {
		result := "kept"
		if seg.Replaced {
			result = "replaced"
		}
		r.optSegments.WithLabelValues(result).Inc()
	}
	r.optSaved.Add(float64(res.Saved))
	r.tourLength.Set(float64(len(res.Solution)))
	r.duration.WithLabelValues(OpOptimize).Observe(elapsed.Seconds())
}

// ObserveError counts a failed operation by error kind.
func (r *Recorder) ObserveError(op string, err error) {
	if err == nil {
		return
	}
	r.errs.WithLabelValues(op, Kind(err)).Inc()
}

// Kind classifies err into a short label value.
func Kind(err error) string {
	switch {
	case errors.Is(err, search.ErrHorizonExceeded):
		return "horizon_exceeded"
	case errors.Is(err, search.ErrNoTargets):
		return "no_targets"
	case errors.Is(err, axis.ErrTableLookupMiss):
		return "table_lookup_miss"
	case errors.Is(err, kinematics.ErrTargetUnreachable):
		return "target_unreachable"
	case errors.Is(err, thrust.ErrInvalidDigit), errors.Is(err, thrust.ErrInvalidAxisSymbol):
		return "invalid_symbol"
	case errors.Is(err, planner.ErrOptionViolation), errors.Is(err, search.ErrOptionViolation):
		return "invalid_option"
	default:
		return "other"
	}
}

// WriteTextfile writes the registry to path in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
