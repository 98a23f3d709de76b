package kinematics

import (
	"fmt"

	"github.com/katalvlaran/spaceship/thrust"
)

// Trace replays solution from start and returns len(solution)+1 states,
// beginning with start itself.
// Returns thrust.ErrInvalidDigit on a malformed symbol.
func Trace(start ShipState, solution string) ([]ShipState, error) {
	states := make([]ShipState, 0, len(solution)+1)
	states = append(states, start)
	s := start
	for i := 0; i < len(solution); i++ {
		ax, ay, err := thrust.Accel(solution[i])
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		s = s.Step(ax, ay)
		states = append(states, s)
	}
	return states, nil
}

// Visited returns the set of cells occupied by states.
func Visited(states []ShipState) map[Cell]struct{} {
	seen := make(map[Cell]struct{}, len(states))
	for _, s := range states {
		seen[s.Pos()] = struct{}{}
	}
	return seen
}

// Visit records the first step at which a target was occupied.
type Visit struct {
	Index int
	Cell  Cell
}

// VisitIndices walks states in order and reports the first visit of every
// target, sorted by step. The second result lists the targets never visited,
// sorted by X, then Y.
func VisitIndices(targets []Cell, states []ShipState) ([]Visit, []Cell) {
	unseen := NewTargetSet(targets)
	visits := make([]Visit, 0, unseen.Len())
	for i, s := range states {
		if unseen.Len() == 0 {
			break
		}
		if p := s.Pos(); unseen.Remove(p) {
			visits = append(visits, Visit{Index: i, Cell: p})
		}
	}
	return visits, unseen.Cells()
}

// Verify re-simulates solution from the origin at rest and checks that every
// target is visited. Returns ErrTargetUnreachable naming the first missing cell.
func Verify(targets []Cell, solution string) error {
	states, err := Trace(ShipState{}, solution)
	if err != nil {
		return err
	}
	if _, missing := VisitIndices(targets, states); len(missing) > 0 {
		return fmt.Errorf("%w: %d missing, first %s", ErrTargetUnreachable, len(missing), missing[0])
	}
	return nil
}

// Thrusts derives one thrust digit per consecutive pair of states from the
// velocity change actually taken. Returns ErrNonAdjacentStates if a pair is not
// reachable in exactly one step.
func Thrusts(states []ShipState) (string, error) {
	if len(states) < 2 {
		return "", nil
	}
	out := make([]byte, 0, len(states)-1)
	for i := 1; i < len(states); i++ {
		prev, cur := states[i-1], states[i]
		ax, ay := cur.VX-prev.VX, cur.VY-prev.VY
		d, err := thrust.Key(ax, ay)
		if err != nil || prev.Step(ax, ay) != cur {
			return "", fmt.Errorf("%w: %v -> %v", ErrNonAdjacentStates, prev, cur)
		}
		out = append(out, d)
	}
	return string(out), nil
}

// Summarize computes Stats for a trajectory produced by a solution.
func Summarize(states []ShipState) Stats {
	st := Stats{Length: max(len(states)-1, 0)}
	for _, s := range states {
		st.MaxVX = max(st.MaxVX, abs(s.VX))
		st.MaxVY = max(st.MaxVY, abs(s.VY))
	}
	return st
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
