// Package spaceship is a planner for the "spaceship" puzzle: find a short
// string of thrust digits whose simulated flight visits every target cell.
//
// 🚀 What is spaceship?
//
//	An offline, single-threaded solver built from small packages:
//		• Codec: thrust digits <-> per-axis accelerations, stream combining
//		• Kinematics: ship state, simulation, verification, statistics
//		• Axis planning: minimal-time transition table + closed-form estimator
//		• Search: horizon-bounded lattice BFS with lookahead tie-breaking
//		• Planning: full tours by chained searches or nearest-first legs
//		• Optimisation: segment rewriting with global re-verification
//
// ✨ Why it is built this way
//
//   - The two axes move independently, so most reasoning happens in 1-D.
//   - Every operation that can grow without bound takes an explicit ceiling.
//   - No partial answers: a tour is returned only after it has been re-flown.
//
// Packages:
//
//	thrust/     - digit codec: Key, Accel, Combine, Decompose, MirrorXToY
//	kinematics/ - Cell, ShipState, TargetSet, Trace, Verify, Summarize
//	axis/       - Table (Build, Get, Exact, Lookup), MinSteps, FastPattern
//	search/     - Search with functional options and hooks
//	planner/    - Plan with StrategySearch and StrategySequential
//	optimizer/  - Optimize an existing solution
//	puzzle/     - puzzle and solution file formats
//	render/     - terminal trajectory viewer
//	metrics/    - Prometheus recorder with textfile export
//	cmd/spaceship - CLI: solve, optimize, verify, view
//
// Quick ASCII example: targets above and below the origin are covered by
// "8136", climbing to (0,1) and swinging back through (-1,0) to (0,-1).
//
//	  · O           (0, 1)
//	  · S           origin
//	    O           (0,-1)
//
//	go install github.com/katalvlaran/spaceship/cmd/spaceship@latest
package spaceship
