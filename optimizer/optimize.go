package optimizer

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/spaceship/axis"
	"github.com/katalvlaran/spaceship/kinematics"
	"github.com/katalvlaran/spaceship/thrust"
)

// Optimize rewrites solution for targets, flown from the origin at rest, using
// table for exact-duration patterns. Passes repeat until one no longer
// shortens the solution, so the result is a fixed point.
func Optimize(targets []kinematics.Cell, solution string, table *axis.Table, opts Options) (Result, error) {
	if table == nil {
		return Result{}, ErrNilTable
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	rebuilt, reports, err := pass(targets, solution, table, log.With(slog.Int("pass", 1)))
	if err != nil {
		return Result{}, err
	}
	res := Result{Solution: solution, Segments: reports}
	for len(rebuilt) < len(res.Solution) {
		if err := kinematics.Verify(targets, rebuilt); err != nil {
			return Result{}, fmt.Errorf("optimizer: rebuilt solution rejected: %w", err)
		}
		res.Solution = rebuilt
		res.Passes++
		if rebuilt, _, err = pass(targets, res.Solution, table, log.With(slog.Int("pass", res.Passes+1))); err != nil {
			return Result{}, err
		}
	}
	res.Saved = len(solution) - len(res.Solution)
	res.Improved = res.Saved > 0

	log.Info("optimization finished",
		slog.Int("old_length", len(solution)),
		slog.Int("new_length", len(res.Solution)),
		slog.Int("saved", res.Saved),
		slog.Int("passes", res.Passes),
		slog.Int("segments", len(reports)),
	)
	return res, nil
}

// pass rewrites every segment of solution once and returns the concatenation
// together with one report per segment.
func pass(targets []kinematics.Cell, solution string, table *axis.Table, log *slog.Logger) (string, []SegmentReport, error) {
	states, err := kinematics.Trace(kinematics.ShipState{}, solution)
	if err != nil {
		return "", nil, err
	}
	visits, missing := kinematics.VisitIndices(targets, states)
	if len(missing) > 0 {
		return "", nil, fmt.Errorf("%w: input misses %d, first %s", kinematics.ErrTargetUnreachable, len(missing), missing[0])
	}

	bounds := make([]int, 1, len(visits)+1)
	for _, v := range visits {
		if v.Index > 0 {
			bounds = append(bounds, v.Index)
		}
	}

	var (
		out     strings.Builder
		reports = make([]SegmentReport, 0, len(bounds)-1)
	)
	for i := 1; i < len(bounds); i++ {
		from, to := bounds[i-1], bounds[i]
		seg, rep, err := rewrite(table, states[from], states[to], solution[from:to])
		if err != nil {
			return "", nil, err
		}
		rep.Start = from
		if rep.Replaced {
			log.Debug("segment replaced",
				slog.Int("start", from),
				slog.Int("observed", rep.Observed),
				slog.Int("minimum", rep.Minimum),
				slog.Int("steps", rep.Steps),
			)
		}
		out.WriteString(seg)
		reports = append(reports, rep)
	}
	return out.String(), reports, nil
}

// rewrite returns the shortest exact-duration replacement for the segment
// from s0 to s1, or the original thrusts when there is none.
func rewrite(table *axis.Table, s0, s1 kinematics.ShipState, original string) (string, SegmentReport, error) {
	observed := len(original)
	minimum := max(
		axis.MinSteps(s0.X, s0.VX, s1.X, s1.VX),
		axis.MinSteps(s0.Y, s0.VY, s1.Y, s1.VY),
	)
	rep := SegmentReport{Observed: observed, Minimum: minimum, Steps: observed}

	for steps := minimum; steps < observed; steps++ {
		xp, err := table.Exact(s0.X, s1.X, s0.VX, s1.VX, steps)
		if err != nil {
			continue
		}
		yp, err := table.Exact(s0.Y, s1.Y, s0.VY, s1.VY, steps)
		if err != nil {
			continue
		}
		y, err := thrust.MirrorXToY(yp.X())
		if err != nil {
			return "", rep, err
		}
		seg, err := thrust.Combine(xp.X(), y)
		if err != nil {
			return "", rep, err
		}
		rep.Steps, rep.Replaced = steps, true
		return seg, rep, nil
	}
	return original, rep, nil
}
