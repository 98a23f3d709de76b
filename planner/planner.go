package planner

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/spaceship/kinematics"
	"github.com/katalvlaran/spaceship/search"
)

// tourBuilder accumulates segments while targets remain.
type tourBuilder struct {
	opts      Options
	log       *slog.Logger
	remaining *kinematics.TargetSet
	cur       kinematics.ShipState
	solution  strings.Builder
	tour      Tour
}

// Plan computes a tour visiting every cell of targets.
// An empty target set yields an empty tour.
func Plan(targets []kinematics.Cell, opts Options) (Tour, error) {
	if err := opts.validate(); err != nil {
		return Tour{}, err
	}
	b := &tourBuilder{
		opts:      opts,
		log:       opts.Logger,
		remaining: kinematics.NewTargetSet(targets),
		cur:       opts.Start,
	}
	if b.log == nil {
		b.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if p := opts.Start.Pos(); b.remaining.Remove(p) {
		b.tour.Order = append(b.tour.Order, p)
	}

	var err error
	switch opts.Strategy {
	case StrategySequential:
		err = b.sequential()
	default:
		err = b.searchAll()
	}
	if err != nil {
		return Tour{}, err
	}

	return b.finish(targets)
}

// searchAll chains lookahead searches, finishing with a last-segment search.
// A search that exhausts its horizon is replaced by a rest-to-rest leg when
// recovery is enabled.
func (b *tourBuilder) searchAll() error {
	for b.remaining.Len() > 0 {
		last := b.remaining.Len() < 2
		res, err := search.Search(b.cur, b.remaining,
			search.WithHorizon(b.opts.Horizon),
			search.WithLastSegment(last),
		)
		if err != nil {
			err = fmt.Errorf("planner: segment %d from %v: %w", len(b.tour.Segments), b.cur, err)
			if !b.opts.Recover || !errors.Is(err, search.ErrHorizonExceeded) {
				return err
			}
			b.log.Warn("segment search failed, flying rest-to-rest",
				slog.Int("index", len(b.tour.Segments)),
				slog.Any("error", err),
			)
			if err := b.restLeg(true); err != nil {
				return err
			}
			continue
		}
		th, err := res.Thrust()
		if err != nil {
			return err
		}
		b.tour.Expanded += res.Expanded
		b.emit(Segment{
			Target:   res.Target,
			Thrust:   th,
			Rounds:   res.Rounds,
			Expanded: res.Expanded,
			Last:     last,
		}, res.States)
	}
	return nil
}

// emit appends a segment, consumes the targets its states cross and notifies
// the logger and hook. states[0] is the current ship state.
func (b *tourBuilder) emit(seg Segment, states []kinematics.ShipState) {
	for _, s := range states[1:] {
		if p := s.Pos(); b.remaining.Remove(p) {
			b.tour.Order = append(b.tour.Order, p)
		}
	}
	seg.Index = len(b.tour.Segments)
	seg.End = states[len(states)-1]
	b.cur = seg.End
	b.solution.WriteString(seg.Thrust)
	b.tour.Segments = append(b.tour.Segments, len(seg.Thrust))
	if seg.Recovered {
		b.tour.Recovered++
	}

	b.log.Debug("segment planned",
		slog.Int("index", seg.Index),
		slog.String("target", seg.Target.String()),
		slog.Int("steps", len(seg.Thrust)),
		slog.Int("rounds", seg.Rounds),
		slog.Int("expanded", seg.Expanded),
		slog.Bool("recovered", seg.Recovered),
		slog.Int("remaining", b.remaining.Len()),
	)
	if b.opts.OnSegment != nil {
		b.opts.OnSegment(seg)
	}
}

// finish re-simulates the solution and rejects it if any target is missed.
func (b *tourBuilder) finish(targets []kinematics.Cell) (Tour, error) {
	b.tour.Solution = b.solution.String()
	states, err := kinematics.Trace(b.opts.Start, b.tour.Solution)
	if err != nil {
		return Tour{}, err
	}
	if _, missing := kinematics.VisitIndices(targets, states); len(missing) > 0 {
		return Tour{}, fmt.Errorf("%w: %d missing, first %s", kinematics.ErrTargetUnreachable, len(missing), missing[0])
	}
	b.tour.Stats = kinematics.Summarize(states)

	b.log.Info("tour planned",
		slog.String("strategy", b.opts.Strategy.String()),
		slog.Int("targets", len(b.tour.Order)),
		slog.Int("length", b.tour.Stats.Length),
		slog.Int("segments", len(b.tour.Segments)),
		slog.Int("recovered", b.tour.Recovered),
		slog.Int("expanded", b.tour.Expanded),
	)
	return b.tour, nil
}
