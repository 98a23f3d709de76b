// Package search provides tunable options, error definitions and results
// for the lattice breadth-first search.
package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spaceship/kinematics"
)

// Sentinel errors for search execution.
var (
	// ErrNoTargets is returned when there is nothing to search for.
	ErrNoTargets = errors.New("search: no targets")

	// ErrHorizonExceeded is returned when no target is reached within the horizon.
	ErrHorizonExceeded = errors.New("search: horizon exceeded without reaching a target")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// DefaultHorizon is the round cap used when none is given.
const DefaultHorizon = 12

// Option configures Search behavior via functional arguments.
// If an Option is invalid it is recorded internally and surfaced as
// ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize Search execution.
type Options struct {
	// Horizon is the maximum number of rounds (steps from the start) explored.
	Horizon int

	// LastSegment stops at the first target reached instead of looking ahead.
	LastSegment bool

	// OnExpand is called immediately before a state is expanded.
	OnExpand func(s kinematics.ShipState, depth int)

	// OnTag is called when a path first lands on a target.
	OnTag func(target kinematics.Cell, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Horizon == DefaultHorizon
//   - lookahead mode
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Horizon:  DefaultHorizon,
		OnExpand: func(kinematics.ShipState, int) {},
		OnTag:    func(kinematics.Cell, int) {},
	}
}

// WithHorizon bounds the search to n rounds. n ≤ 0 → ErrOptionViolation.
func WithHorizon(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: horizon must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Horizon = n
	}
}

// WithLastSegment selects last-segment mode.
func WithLastSegment(last bool) Option {
	return func(o *Options) {
		o.LastSegment = last
	}
}

// WithOnExpand registers a callback to run before each expansion.
func WithOnExpand(fn func(s kinematics.ShipState, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnTag registers a callback to run when a path first lands on a target.
func WithOnTag(fn func(target kinematics.Cell, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnTag = fn
		}
	}
}

// Result holds the outcome of a search:
//   - States: ship states from the start to the arrival at Target, inclusive.
//   - Target: the target chosen for this segment.
//   - Rounds: depth at which the search terminated (≥ len(States)-1).
//   - Expanded: number of states expanded.
type Result struct {
	States   []kinematics.ShipState
	Target   kinematics.Cell
	Rounds   int
	Expanded int
}

// Steps returns the number of thrust symbols in the segment.
func (r *Result) Steps() int {
	return len(r.States) - 1
}

// Thrust derives the thrust symbols taken along States.
func (r *Result) Thrust() (string, error) {
	return kinematics.Thrusts(r.States)
}
