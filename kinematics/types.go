package kinematics

import (
	"errors"
	"fmt"
)

// Sentinel errors for simulation and verification.
var (
	// ErrTargetUnreachable indicates a simulated trajectory misses at least one target.
	ErrTargetUnreachable = errors.New("kinematics: target not visited by trajectory")

	// ErrNonAdjacentStates indicates two consecutive states differ by more than one step.
	ErrNonAdjacentStates = errors.New("kinematics: states are not one step apart")
)

// Cell is an integer (X, Y) position on the unbounded plane.
type Cell struct {
	X, Y int
}

// String formats the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Less orders cells by X, then Y.
func (c Cell) Less(o Cell) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	return c.Y < o.Y
}

// ShipState is the full dynamic state of the ship.
type ShipState struct {
	X, Y   int // position
	VX, VY int // velocity
}

// Pos returns the cell the ship occupies.
func (s ShipState) Pos() Cell {
	return Cell{X: s.X, Y: s.Y}
}

// Step applies the acceleration (ax, ay) and moves by the updated velocity.
// The caller guarantees ax, ay ∈ {-1,0,1}.
func (s ShipState) Step(ax, ay int) ShipState {
	vx, vy := s.VX+ax, s.VY+ay
	return ShipState{X: s.X + vx, Y: s.Y + vy, VX: vx, VY: vy}
}

// Stats summarises a trajectory.
type Stats struct {
	// Length is the number of thrust symbols.
	Length int
	// MaxVX and MaxVY are the largest absolute velocities reached per axis.
	MaxVX, MaxVY int
}
