package metrics_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spaceship/axis"
	"github.com/katalvlaran/spaceship/kinematics"
	"github.com/katalvlaran/spaceship/metrics"
	"github.com/katalvlaran/spaceship/optimizer"
	"github.com/katalvlaran/spaceship/planner"
	"github.com/katalvlaran/spaceship/search"
)

// sampleCount returns the observation count of a histogram family.
func sampleCount(t *testing.T, rec *metrics.Recorder, name string) uint64 {
	t.Helper()
	families, err := rec.Registry().Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name {
			var n uint64
			for _, m := range mf.GetMetric() {
				n += m.GetHistogram().GetSampleCount()
			}
			return n
		}
	}
	return 0
}

// TestRecorder_Plan wires the recorder into the planner hook.
func TestRecorder_Plan(t *testing.T) {
	rec := metrics.New()
	opts := planner.DefaultOptions()
	opts.OnSegment = rec.ObserveSegment

	tour, err := planner.Plan([]kinematics.Cell{{X: 0, Y: 1}, {X: 0, Y: -1}}, opts)
	require.NoError(t, err)
	rec.ObserveTour(tour, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(rec.SegmentsForTest("lookahead")))
	assert.Equal(t, 4.0, testutil.ToFloat64(rec.TourLengthForTest()))
	assert.Equal(t, uint64(2), sampleCount(t, rec, "spaceship_search_rounds"))
	assert.Equal(t, uint64(2), sampleCount(t, rec, "spaceship_segment_steps"))
	assert.Equal(t, uint64(1), sampleCount(t, rec, "spaceship_operation_duration_seconds"))
}

// TestRecorder_Sequential labels rest-to-rest legs.
func TestRecorder_Sequential(t *testing.T) {
	rec := metrics.New()
	opts := planner.DefaultOptions()
	opts.Strategy = planner.StrategySequential
	opts.OnSegment = rec.ObserveSegment

	_, err := planner.Plan([]kinematics.Cell{{X: 1, Y: 0}, {X: 4, Y: 4}}, opts)
	require.NoError(t, err)
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.SegmentsForTest("sequential")))
	assert.Zero(t, sampleCount(t, rec, "spaceship_search_rounds"))
}

// TestRecorder_Recovered labels legs flown after a failed search.
func TestRecorder_Recovered(t *testing.T) {
	rec := metrics.New()
	opts := planner.DefaultOptions()
	opts.Horizon = 3
	opts.Recover = true
	opts.OnSegment = rec.ObserveSegment

	_, err := planner.Plan([]kinematics.Cell{{X: 1, Y: 0}, {X: 40, Y: 0}}, opts)
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.SegmentsForTest("lookahead")))
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.SegmentsForTest("recovered")))
	assert.Equal(t, uint64(1), sampleCount(t, rec, "spaceship_search_rounds"))
}

// TestRecorder_Optimization counts replaced segments and saved steps.
func TestRecorder_Optimization(t *testing.T) {
	rec := metrics.New()
	tbl, err := axis.Build(8)
	require.NoError(t, err)
	res, err := optimizer.Optimize([]kinematics.Cell{{X: 2, Y: 0}}, "64564", tbl, optimizer.Options{})
	require.NoError(t, err)

	rec.ObserveOptimization(res, 2*time.Millisecond)
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.TourLengthForTest()))
	n, err := testutil.GatherAndCount(rec.Registry(), "spaceship_optimizer_segments_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, uint64(1), sampleCount(t, rec, "spaceship_operation_duration_seconds"))

	lint, err := testutil.GatherAndLint(rec.Registry())
	require.NoError(t, err)
	assert.Empty(t, lint)
}

// TestKind maps sentinel errors onto label values.
func TestKind(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("segment 0: %w", search.ErrHorizonExceeded), "horizon_exceeded"},
		{search.ErrNoTargets, "no_targets"},
		{fmt.Errorf("segment 2: %w", axis.ErrTableLookupMiss), "table_lookup_miss"},
		{kinematics.ErrTargetUnreachable, "target_unreachable"},
		{fmt.Errorf("wrap: %w", planner.ErrOptionViolation), "invalid_option"},
		{errors.New("boom"), "other"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, metrics.Kind(tc.err), tc.err.Error())
	}

	rec := metrics.New()
	rec.ObserveError(metrics.OpPlan, search.ErrHorizonExceeded)
	rec.ObserveError(metrics.OpPlan, nil)
	n, err := testutil.GatherAndCount(rec.Registry(), "spaceship_errors_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

// TestWriteTextfile exports the registry for a textfile collector.
func TestWriteTextfile(t *testing.T) {
	rec := metrics.New()
	rec.ObserveSegment(planner.Segment{Thrust: "66", Rounds: 2, Expanded: 10})

	path := filepath.Join(t.TempDir(), "spaceship.prom")
	require.NoError(t, rec.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `spaceship_segments_total{mode="lookahead"} 1`)
	assert.Contains(t, string(data), "spaceship_expanded_states_total 10")
}
