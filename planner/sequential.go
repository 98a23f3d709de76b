package planner

import (
	"strings"

	"github.com/katalvlaran/spaceship/axis"
	"github.com/katalvlaran/spaceship/kinematics"
	"github.com/katalvlaran/spaceship/thrust"
)

// sequential visits the nearest remaining target, moving rest-to-rest on x
// and then on y. It cannot fail for well-formed patterns.
func (b *tourBuilder) sequential() error {
	for b.remaining.Len() > 0 {
		if err := b.restLeg(false); err != nil {
			return err
		}
	}
	return nil
}

// restLeg brings a moving ship to rest and then flies to the nearest
// remaining target. Braking may already cross the last targets.
func (b *tourBuilder) restLeg(recovered bool) error {
	if b.cur.VX != 0 || b.cur.VY != 0 {
		stop, err := thrust.Combine(brake(b.cur.VX).X(), brake(b.cur.VY).Y())
		if err != nil {
			return err
		}
		if err := b.advance(Segment{Target: b.cur.Pos(), Thrust: stop, Recovered: recovered}); err != nil {
			return err
		}
		if b.remaining.Len() == 0 {
			return nil
		}
	}

	target := nearest(b.cur.Pos(), b.remaining.Cells())
	legY, err := thrust.MirrorXToY(axis.FastPattern(target.Y - b.cur.Y).X())
	if err != nil {
		return err
	}
	leg := axis.FastPattern(target.X-b.cur.X).X() + legY
	return b.advance(Segment{Target: target, Thrust: leg, Recovered: recovered})
}

// advance traces seg.Thrust from the current state and records the segment.
func (b *tourBuilder) advance(seg Segment) error {
	states, err := kinematics.Trace(b.cur, seg.Thrust)
	if err != nil {
		return err
	}
	b.emit(seg, states)
	return nil
}

// nearest returns the cell closest to from by squared Euclidean distance.
// cells must be non-empty and sorted; the first of equally near cells wins.
func nearest(from kinematics.Cell, cells []kinematics.Cell) kinematics.Cell {
	best, bestDist := cells[0], -1
	for _, c := range cells {
		dx, dy := c.X-from.X, c.Y-from.Y
		if d := dx*dx + dy*dy; bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// brake returns the pattern bringing velocity v to zero one unit per step.
func brake(v int) axis.Pattern {
	if v > 0 {
		return axis.Pattern(strings.Repeat(string(axis.Brake), v))
	}
	return axis.Pattern(strings.Repeat(string(axis.Accelerate), -v))
}
