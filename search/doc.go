// Package search runs a horizon-bounded breadth-first search over the joint
// (x, y, vx, vy) lattice of the spaceship, stopping when a target cell is reached.
//
// What
//
//   - Explore ship states in non-decreasing step count from a start state.
//   - Every state branches on the 9 thrust symbols, enumerated in keypad reading
//     order (7 8 9 4 5 6 1 2 3), which fixes how ties are broken.
//   - Each state carries a tag: the first target cell its path landed on.
//   - Returns a Result with the state path from the start to the chosen target.
//
// Termination
//
//	Lookahead mode (default):
//	  - The first target landed on is tagged and the path continues.
//	  - When a tagged path lands on a different target, the search stops and the
//	    path is cut back to the state where the tagged target was reached.
//	    The chosen target is therefore one from which another target is quickly
//	    reachable, and the ship arrives with a velocity suited to continue.
//	  - When no second target is reached within the horizon, the search settles
//	    for the shallowest target it tagged.
//
//	Last-segment mode (WithLastSegment(true)):
//	  - Any target landed on ends the search; the path runs to that state.
//	  - With a single target the two modes coincide, so Search switches to this
//	    mode automatically.
//
//	A state (x, y, vx, vy, tag) is expanded at most once. States at the horizon
//	are never expanded. ErrHorizonExceeded is returned only when no target at
//	all was reached within the horizon.
//	Targets on the start cell are ignored; callers count them as visited at step 0.
//
// Complexity (r = rounds, k = number of targets)
//
//   - Time:   O(9 · S) where S ≤ O(r⁶ · (k+1)) distinct states within r rounds.
//   - Memory: O(S) for the queue and the parent map.
//
// Options
//
//   - DefaultOptions(): horizon DefaultHorizon, lookahead mode, no-op hooks.
//   - WithHorizon(n):        maximum rounds (n > 0).
//   - WithLastSegment(b):    last-segment mode.
//   - WithOnExpand(fn):      hook before a state is expanded.
//   - WithOnTag(fn):         hook when a path first lands on a target.
//
// Errors
//
//   - ErrNoTargets          if the target set is nil or empty.
//   - ErrOptionViolation    if an Option is invalid (e.g. horizon ≤ 0).
//   - ErrHorizonExceeded    if no target is reached within the horizon.
package search
