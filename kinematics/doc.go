// Package kinematics simulates the discrete spaceship and verifies that a thrust
// sequence visits a set of target cells.
//
// What:
//
//   - ShipState holds (X, Y, VX, VY); each step applies an acceleration in
//     {-1,0,1} per axis, then moves by the new velocity.
//   - TargetSet is a deduplicated set of target cells with deterministic iteration.
//   - Trace replays a thrust string and returns every state, start included.
//   - Verify re-simulates a solution and reports any target never visited.
//   - VisitIndices finds the step at which each target is first visited.
//   - Thrusts derives the thrust string that produced a sequence of states.
//
// Integration order:
//
//	v' = v + a
//	p' = p + v'
//
// The start cell counts as visited at step 0.
//
// Complexity:
//
//   - Trace, Verify, VisitIndices: O(n + |targets|) for a solution of n symbols.
//
// Errors:
//
//   - ErrTargetUnreachable: a target is missing from a simulated trajectory.
//   - ErrNonAdjacentStates: two consecutive states are not one step apart.
//   - thrust.ErrInvalidDigit: a solution contains a symbol outside '1'..'9'.
package kinematics
