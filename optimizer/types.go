package optimizer

import (
	"errors"
	"log/slog"
)

// ErrNilTable is returned when Optimize is called without a transition table.
var ErrNilTable = errors.New("optimizer: transition table is nil")

// Options configures Optimize.
type Options struct {
	// Logger receives per-segment debug records and a summary; nil discards them.
	Logger *slog.Logger
}

// SegmentReport describes one segment of the input solution.
type SegmentReport struct {
	Start    int  // index of the first thrust of the segment in the input
	Observed int  // duration in the input
	Minimum  int  // provable minimum duration
	Steps    int  // duration in the output
	Replaced bool // segment was rewritten
}

// Result is the outcome of Optimize.
// When Improved is false, Solution equals the input.
type Result struct {
	Solution string
	Improved bool
	Saved    int // total over all passes
	Passes   int // passes that shortened the solution

	// Segments reports the first pass over the input.
	Segments []SegmentReport
}
