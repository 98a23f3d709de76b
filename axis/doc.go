// Package axis solves single-axis motion for the discrete spaceship: the
// minimal-time transition table and the closed-form step estimator.
//
// 🚀 What
//
//	One axis of the ship is a 1-D double integrator: every step the velocity
//	changes by a ∈ {-1,0,+1} and the position moves by the new velocity.
//	Since x and y are independent, 2-D plans are built from two 1-D plans.
//
//	  - Table (Build): for every (offset, velocity change, steps) reachable up to a
//	    step ceiling, one acceleration Pattern achieving it, starting at rest.
//	  - MinSteps: smallest step count between two (position, velocity) pairs,
//	    computed from triangular-number envelopes instead of search.
//	  - FastPattern: the rest-to-rest "burn, coast, brake" pattern for a distance.
//
// Offsets
//
//	A move from (x0, v0) to (x1, v1) in T steps behaves like a move from rest
//	plus the drift v0·T, so the table key is:
//
//	  offset = x1 − x0 − v0·T,   velocity change = v1 − v0,   steps = T.
//
// Envelopes
//
//	With p accelerations and q decelerations in T steps, the displacement is
//	largest when accelerations come first and decelerations last:
//
//	  max = high(T, p) − low(q) + v0·T
//	  min = low(p) − high(T, q) + v0·T
//	  high(m, c) = (m + (m − c + 1))·c / 2,  low(c) = (c + 1)·c / 2
//
//	MinSteps grows T from |Δv| until the required displacement fits.
//
// Complexity
//
//   - Build(c):     O(c⁴) entries in the worst case, each one parent link.
//   - Get:          O(steps) to rebuild the pattern from parent links.
//   - MinSteps:     O(answer).
//   - FastPattern:  O(√|d|).
//
// Errors
//
//   - ErrInvalidCeiling:    negative step ceiling.
//   - ErrTableLookupMiss:   no pattern of the exact step count (recoverable).
//   - ErrInvalidAxisSymbol: a pattern symbol outside {-,0,+}.
package axis
