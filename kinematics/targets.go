package kinematics

import "sort"

// TargetSet is a set of unique target cells. It only ever shrinks.
// The zero value is not usable; construct with NewTargetSet.
type TargetSet struct {
	cells map[Cell]struct{}
}

// NewTargetSet builds a TargetSet from cells, collapsing duplicates.
func NewTargetSet(cells []Cell) *TargetSet {
	ts := &TargetSet{cells: make(map[Cell]struct{}, len(cells))}
	for _, c := range cells {
		ts.cells[c] = struct{}{}
	}
	return ts
}

// Has reports whether c is still a target.
func (ts *TargetSet) Has(c Cell) bool {
	_, ok := ts.cells[c]
	return ok
}

// Remove drops c from the set and reports whether it was present.
func (ts *TargetSet) Remove(c Cell) bool {
	if _, ok := ts.cells[c]; !ok {
		return false
	}
	delete(ts.cells, c)
	return true
}

// Len returns the number of remaining targets.
func (ts *TargetSet) Len() int {
	return len(ts.cells)
}

// Cells returns the remaining targets sorted by X, then Y.
func (ts *TargetSet) Cells() []Cell {
	out := make([]Cell, 0, len(ts.cells))
	for c := range ts.cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Clone returns an independent copy of the set.
func (ts *TargetSet) Clone() *TargetSet {
	cp := &TargetSet{cells: make(map[Cell]struct{}, len(ts.cells))}
	for c := range ts.cells {
		cp.cells[c] = struct{}{}
	}
	return cp
}
