// Package optimizer shortens an existing solution segment by segment.
//
// A segment runs between two consecutive first visits of targets (the first
// one starts at step 0). For each segment the optimizer knows the ship state at
// both ends and the observed duration. The provable minimum duration is
//
//	T = max(axis.MinSteps on x, axis.MinSteps on y)
//
// When the observed duration exceeds T, exact-duration patterns for both axes
// are looked up in an axis.Table for T, T+1, … up to one less than the observed
// duration. The first duration for which both axes have a pattern replaces the
// segment, recombined into thrust digits with the y-axis pattern mirrored.
// A segment with no pattern pair is kept verbatim. Thrusts after the last first
// visit are dropped.
//
// Every replacement preserves both end states, but the rebuilt solution is still
// re-simulated and rejected unless every target is visited.
//
// A rewrite moves later first visits earlier, which changes the segment
// boundaries and can open further savings. Optimize therefore repeats the pass
// on its own output until the length stops dropping; running it again on the
// result reports no improvement.
//
// Errors
//
//   - ErrNilTable                    if no table is supplied.
//   - kinematics.ErrTargetUnreachable if the input misses a target, or if the
//     rebuilt solution would.
//   - thrust.ErrInvalidDigit          if the input holds a malformed symbol.
package optimizer
