package axis

import "fmt"

// entryKey identifies one table entry: a displacement from rest, the exit
// velocity (equal to the velocity change) and the exact step count.
type entryKey struct {
	offset, velocity, steps int
}

// node is one reached (offset, velocity) pair at a given step count,
// linked to the node it was derived from.
type node struct {
	parent int32 // index into Table.nodes; -1 for the root
	accel  int8
}

// Table holds, for every (offset, velocity change, steps) reachable within the
// ceiling, one acceleration pattern achieving it from rest.
// It is immutable once built and safe for concurrent reads.
type Table struct {
	ceiling int
	nodes   []node
	index   map[entryKey]int32
}

// Build runs a layered breadth-first program over step counts 0..ceiling.
//
// Layer t holds every (offset, velocity) reached in exactly t steps, seeded with
// (0, 0) and the empty pattern at t = 0. Each pair branches on a ∈ {-1,0,+1}:
//
//	velocity' = velocity + a
//	offset'   = offset + velocity'
//
// A triple is recorded the first time it is reached at that step count; later
// derivations of the same triple are dropped. Entries for different step counts
// of the same (offset, velocity) are all kept.
//
// Returns ErrInvalidCeiling if ceiling < 0.
func Build(ceiling int) (*Table, error) {
	if ceiling < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCeiling, ceiling)
	}
	t := &Table{
		ceiling: ceiling,
		nodes:   []node{{parent: -1}},
		index:   map[entryKey]int32{{}: 0},
	}

	type reached struct {
		offset, velocity int
		id               int32
	}
	layer := []reached{{id: 0}}
	for step := 1; step <= ceiling; step++ {
		next := make([]reached, 0, len(layer)*2)
		for _, r := range layer {
			for a := -1; a <= 1; a++ {
				v := r.velocity + a
				k := entryKey{offset: r.offset + v, velocity: v, steps: step}
				if _, ok := t.index[k]; ok {
					continue
				}
				id := int32(len(t.nodes))
				t.nodes = append(t.nodes, node{parent: r.id, accel: int8(a)})
				t.index[k] = id
				next = append(next, reached{offset: k.offset, velocity: v, id: id})
			}
		}
		layer = next
	}

	return t, nil
}

// Ceiling returns the largest step count stored in the table.
func (t *Table) Ceiling() int {
	return t.ceiling
}

// Len returns the number of stored entries, the empty pattern included.
func (t *Table) Len() int {
	return len(t.nodes)
}

// Get returns the pattern that, starting at rest, ends with displacement offset
// and velocity velocityDelta after exactly steps steps.
// The boolean is false when no such pattern exists within the ceiling.
func (t *Table) Get(offset, velocityDelta, steps int) (Pattern, bool) {
	id, ok := t.index[entryKey{offset: offset, velocity: velocityDelta, steps: steps}]
	if !ok {
		return "", false
	}
	out := make([]byte, steps)
	for i := steps - 1; i >= 0; i-- {
		n := t.nodes[id]
		out[i] = accelSymbol(int(n.accel))
		id = n.parent
	}
	return Pattern(out), true
}

// Exact returns the pattern moving from (x0, v0) to (x1, v1) in exactly steps
// steps. Returns ErrTableLookupMiss if there is none within the ceiling.
func (t *Table) Exact(x0, x1, v0, v1, steps int) (Pattern, error) {
	if steps < 0 {
		return "", fmt.Errorf("%w: negative step count %d", ErrTableLookupMiss, steps)
	}
	p, ok := t.Get(x1-x0-v0*steps, v1-v0, steps)
	if !ok {
		return "", fmt.Errorf("%w: (%d,%d) -> (%d,%d) in %d", ErrTableLookupMiss, x0, v0, x1, v1, steps)
	}
	return p, nil
}

// Lookup returns every exact-duration pattern from (x0, v0) to (x1, v1) with a
// step count in [minSteps, maxSteps], keyed by step count. Missing step counts
// are simply absent from the map.
func (t *Table) Lookup(x0, x1, v0, v1, minSteps, maxSteps int) map[int]Pattern {
	out := make(map[int]Pattern)
	for steps := max(minSteps, 0); steps <= min(maxSteps, t.ceiling); steps++ {
		if p, ok := t.Get(x1-x0-v0*steps, v1-v0, steps); ok {
			out[steps] = p
		}
	}
	return out
}
