package planner

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/spaceship/kinematics"
	"github.com/katalvlaran/spaceship/search"
)

// ErrOptionViolation is returned when Options fail validation.
var ErrOptionViolation = errors.New("planner: invalid option supplied")

// Strategy selects how segments are produced.
type Strategy int

const (
	// StrategySearch chains lattice searches with lookahead.
	StrategySearch Strategy = iota

	// StrategySequential visits the nearest target rest-to-rest, one axis at a time.
	StrategySequential
)

var strategyNames = map[Strategy]string{
	StrategySearch:     "search",
	StrategySequential: "sequential",
}

// String returns the strategy name used in configuration.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps a configuration name onto a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
}

// Segment describes one planned leg of the tour.
type Segment struct {
	Index    int                  // 0-based position in the tour
	Target   kinematics.Cell      // target the leg was planned towards
	Thrust   string               // thrust symbols of the leg
	End      kinematics.ShipState // ship state after the leg
	Rounds   int                  // search depth; 0 for sequential legs
	Expanded int                  // states expanded by the search
	Last     bool                 // planned in last-segment mode

	// Recovered marks rest-to-rest legs flown after a segment search
	// exhausted its horizon.
	Recovered bool
}

// Options configures Plan.
//
// Strategy  – how segments are produced (default StrategySearch).
// Horizon   – round cap for each segment search; must be > 0.
// Recover   – when a segment search exhausts the horizon, brake and fly
//             rest-to-rest to the nearest remaining target instead of
//             failing the tour (default false).
// Start     – initial ship state (default: origin at rest).
// Logger    – optional structured logger; nil discards records.
// OnSegment – optional hook called after each planned segment.
type Options struct {
	Strategy  Strategy
	Horizon   int
	Recover   bool
	Start     kinematics.ShipState
	Logger    *slog.Logger
	OnSegment func(Segment)
}

// DefaultOptions returns Options with StrategySearch, search.DefaultHorizon,
// the origin at rest as start, no recovery and no logging.
func DefaultOptions() Options {
	return Options{
		Strategy: StrategySearch,
		Horizon:  search.DefaultHorizon,
	}
}

func (o Options) validate() error {
	if o.Horizon <= 0 {
		return fmt.Errorf("%w: horizon must be positive (%d)", ErrOptionViolation, o.Horizon)
	}
	if _, ok := strategyNames[o.Strategy]; !ok {
		return fmt.Errorf("%w: unknown strategy %v", ErrOptionViolation, o.Strategy)
	}
	return nil
}

// Tour is a verified solution together with how it was produced.
type Tour struct {
	// Solution is the full thrust string.
	Solution string

	// Order lists the targets in the order the trajectory first visits them.
	Order []kinematics.Cell

	// Segments holds the step count of every planned leg.
	Segments []int

	// Stats summarises the simulated trajectory.
	Stats kinematics.Stats

	// Expanded is the total number of search states expanded.
	Expanded int

	// Recovered counts rest-to-rest legs flown after a failed search.
	Recovered int
}
