// Package metrics records solver activity as Prometheus metrics.
//
// A Recorder owns its registry, so several recorders never collide and tests
// stay isolated. The CLI writes the registry in the text exposition format to
// a file for a node-exporter textfile collector; nothing is served over HTTP.
//
// Metrics (all prefixed spaceship_):
//
//	segments_total{mode}            planned segments by mode (lookahead, last, sequential)
//	expanded_states_total           search states expanded
//	search_rounds                   histogram of search depth per segment
//	segment_steps                   histogram of steps between consecutive targets
//	tour_length                     length of the last planned or optimised solution
//	optimizer_segments_total{result} optimiser segments by result (replaced, kept)
//	optimizer_saved_steps_total     steps removed by the optimiser
//	operation_duration_seconds{op}  duration of plan and optimize runs
//	errors_total{op,kind}           failures by operation and error kind
package metrics
