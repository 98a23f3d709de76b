// Package planner builds a complete tour: a thrust string whose trajectory,
// simulated from the start state, visits every target cell at least once.
//
// Strategies
//
//	StrategySearch (default):
//	  - While two or more targets remain, run a lookahead search from the current
//	    ship state. The segment ends on the target the search chose, with the
//	    ship still moving in the direction of the next one.
//	  - When one target remains, run a last-segment search to it.
//	  - Targets crossed along a segment are removed from the remaining set in
//	    the order the trajectory visits them.
//	  - Any failed search fails the whole tour; no partial tour is returned.
//	    With Options.Recover, a search that exhausts the horizon is replaced
//	    by a StrategySequential leg (brake, then rest-to-rest to the nearest
//	    remaining target) and planning continues with search.
//
//	StrategySequential:
//	  - Bring the ship to rest, then repeatedly pick the nearest remaining target
//	    by squared Euclidean distance (ties broken by X, then Y).
//	  - Move rest-to-rest along x with axis.FastPattern, then along y with the
//	    same pattern mirrored onto the y-axis.
//	  - Never fails, but tours are longer because the ship stops at every target.
//
// Targets on the start cell count as visited at step 0.
// Before returning, the tour is re-simulated and every target is checked.
//
// Errors
//
//   - ErrOptionViolation          for a non-positive horizon or unknown strategy.
//   - search.ErrHorizonExceeded   (wrapped) when a segment search fails and
//     recovery is off.
//   - kinematics.ErrTargetUnreachable if the final check finds a missing target.
package planner
