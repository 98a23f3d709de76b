// Package render draws a solution trajectory and its targets in a terminal.
//
// The bounding box of all targets and visited cells is mapped onto the screen
// with y pointing up. Boxes wider or taller than the screen are scaled down,
// so several cells may share one screen position. The last row is reserved
// for a status line.
//
// Trajectory cells are coloured by the thrust taken to reach them: green for
// thrust with an upward component, red for downward, yellow for purely
// horizontal thrust and gray for coasting. Targets are drawn on top, marked as
// visited or missing.
package render
