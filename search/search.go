package search

import (
	"fmt"

	"github.com/katalvlaran/spaceship/kinematics"
)

// keypadOrder lists accelerations (ax, ay) in keypad reading order 7 8 9 4 5 6 1 2 3.
var keypadOrder = [9][2]int{
	{-1, 1}, {0, 1}, {1, 1},
	{-1, 0}, {0, 0}, {1, 0},
	{-1, -1}, {0, -1}, {1, -1},
}

// stateKey identifies a lattice state together with its target tag
// (0 = none, otherwise 1 + index into walker.cells).
type stateKey struct {
	x, y, vx, vy int
	tag          int
}

func keyOf(s kinematics.ShipState, tag int) stateKey {
	return stateKey{x: s.X, y: s.Y, vx: s.VX, vy: s.VY, tag: tag}
}

func (k stateKey) state() kinematics.ShipState {
	return kinematics.ShipState{X: k.x, Y: k.y, VX: k.vx, VY: k.vy}
}

// queueItem pairs a state with its depth from the start.
type queueItem struct {
	key   stateKey
	depth int
}

// walker encapsulates mutable search state. It is discarded after one Search.
type walker struct {
	opts   Options
	cells  []kinematics.Cell
	tags   map[kinematics.Cell]int
	root   stateKey
	queue  []queueItem
	parent map[stateKey]stateKey
	expand int

	// shallowest state whose path landed on a target, used when the
	// lookahead finds no second target within the horizon
	fallback      stateKey
	fallbackDepth int
}

// Search explores the lattice from start until a target is reached under the
// termination rules of the selected mode.
// Returns ErrNoTargets, ErrOptionViolation or ErrHorizonExceeded on failure.
func Search(start kinematics.ShipState, targets *kinematics.TargetSet, opts ...Option) (*Result, error) {
	if targets == nil || targets.Len() == 0 {
		return nil, ErrNoTargets
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	cells := make([]kinematics.Cell, 0, targets.Len())
	for _, c := range targets.Cells() {
		if c != start.Pos() {
			cells = append(cells, c)
		}
	}
	switch len(cells) {
	case 0:
		return nil, fmt.Errorf("%w: only the start cell %s", ErrNoTargets, start.Pos())
	case 1:
		o.LastSegment = true
	}

	w := &walker{
		opts:   o,
		cells:  cells,
		tags:   make(map[kinematics.Cell]int, len(cells)),
		root:   keyOf(start, 0),
		parent: make(map[stateKey]stateKey),
	}
	for i, c := range cells {
		w.tags[c] = i + 1
	}
	w.parent[w.root] = w.root
	w.queue = append(w.queue, queueItem{key: w.root})

	return w.loop()
}

// loop processes the queue round by round until a terminal state is generated
// or the horizon is reached.
func (w *walker) loop() (*Result, error) {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		if item.depth >= w.opts.Horizon {
			break
		}

		w.opts.OnExpand(item.key.state(), item.depth)
		w.expand++

		for _, a := range keypadOrder {
			next, done := w.successor(item.key, a[0], a[1])
			if _, seen := w.parent[next]; seen {
				continue
			}
			w.parent[next] = item.key
			if next.tag != item.key.tag && !done {
				w.opts.OnTag(w.cells[next.tag-1], item.depth+1)
				if w.fallback.tag == 0 {
					w.fallback, w.fallbackDepth = next, item.depth+1
				}
			}
			if done {
				return w.backtrack(next, item.depth+1), nil
			}
			w.queue = append(w.queue, queueItem{key: next, depth: item.depth + 1})
		}
	}

	if w.fallback.tag != 0 {
		return w.backtrack(w.fallback, w.fallbackDepth), nil
	}
	return nil, fmt.Errorf("%w: %d rounds, %d states expanded", ErrHorizonExceeded, w.opts.Horizon, w.expand)
}

// successor applies (ax, ay) to k and reports whether the new state terminates
// the search. Tags are inherited; an untagged path is tagged on its first target.
func (w *walker) successor(k stateKey, ax, ay int) (stateKey, bool) {
	s := k.state().Step(ax, ay)
	hit, onTarget := w.tags[s.Pos()]
	if !onTarget {
		return keyOf(s, k.tag), false
	}
	switch {
	case w.opts.LastSegment:
		return keyOf(s, hit), true
	case k.tag == 0:
		return keyOf(s, hit), false
	default:
		return keyOf(s, k.tag), hit != k.tag
	}
}

// backtrack follows parent links from terminal to the root and returns the
// path from the start to the arrival at the chosen target.
func (w *walker) backtrack(terminal stateKey, rounds int) *Result {
	var rev []stateKey
	for cur := terminal; cur != w.root; cur = w.parent[cur] {
		rev = append(rev, cur)
	}
	rev = append(rev, w.root)

	path := make([]kinematics.ShipState, 0, len(rev))
	tagged := -1
	for i := len(rev) - 1; i >= 0; i-- {
		path = append(path, rev[i].state())
		if tagged < 0 && rev[i].tag != 0 {
			tagged = len(path) - 1
		}
	}
	// In lookahead mode the path is cut at the first tagged state.
	path = path[:tagged+1]

	return &Result{
		States:   path,
		Target:   w.cells[terminal.tag-1],
		Rounds:   rounds,
		Expanded: w.expand,
	}
}
