package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/spaceship/kinematics"
)

// viewport maps lattice cells onto screen positions.
type viewport struct {
	minX, maxY   int
	spanX, spanY int
	cols, rows   int
}

func newViewport(cells []kinematics.Cell, cols, rows int) viewport {
	minX, maxX, minY, maxY := 0, 0, 0, 0
	for i, c := range cells {
		if i == 0 {
			minX, maxX, minY, maxY = c.X, c.X, c.Y, c.Y
			continue
		}
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}
	return viewport{minX: minX, maxY: maxY, spanX: maxX - minX, spanY: maxY - minY, cols: cols, rows: rows}
}

func (v viewport) scaled() bool {
	return v.spanX >= v.cols || v.spanY >= v.rows
}

func (v viewport) project(c kinematics.Cell) (col, row int) {
	col, row = c.X-v.minX, v.maxY-c.Y
	if v.spanX >= v.cols {
		col = col * (v.cols - 1) / v.spanX
	}
	if v.spanY >= v.rows {
		row = row * (v.rows - 1) / v.spanY
	}
	return col, row
}

// Draw renders states and targets onto canvas. states[0] is the start.
// Nothing but the status line is drawn when the canvas has fewer than two rows.
func Draw(canvas Canvas, targets []kinematics.Cell, states []kinematics.ShipState) Summary {
	width, height := canvas.Size()
	visits, missing := kinematics.VisitIndices(targets, states)
	sum := Summary{Steps: max(len(states)-1, 0), Visited: len(visits), Missing: len(missing)}
	if width <= 0 || height <= 0 {
		return sum
	}

	cells := make([]kinematics.Cell, 0, len(states)+len(targets))
	for _, s := range states {
		cells = append(cells, s.Pos())
	}
	cells = append(cells, targets...)

	if rows := height - 1; rows > 0 && len(cells) > 0 {
		vp := newViewport(cells, width, rows)
		sum.Scaled = vp.scaled()
		put := func(c kinematics.Cell, r rune, style tcell.Style) {
			col, row := vp.project(c)
			canvas.SetContent(col, row, r, nil, style)
		}

		for i := 1; i < len(states); i++ {
			put(states[i].Pos(), GlyphPath, thrustStyle(states[i-1], states[i]))
		}
		if len(states) > 0 {
			put(states[0].Pos(), GlyphOrigin, StyleOrigin)
		}
		for _, v := range visits {
			put(v.Cell, GlyphVisited, StyleVisited)
		}
		for _, c := range missing {
			put(c, GlyphMissing, StyleMissing)
		}
	}

	status := fmt.Sprintf(" steps %d  targets %d/%d  missing %d ", sum.Steps, sum.Visited, len(visits)+len(missing), sum.Missing)
	if sum.Scaled {
		status += " scaled "
	}
	drawText(canvas, 0, height-1, width, status, StyleStatus)
	return sum
}

// thrustStyle picks the style for the thrust taken between two states.
func thrustStyle(prev, cur kinematics.ShipState) tcell.Style {
	ax, ay := cur.VX-prev.VX, cur.VY-prev.VY
	switch {
	case ay > 0:
		return StyleUp
	case ay < 0:
		return StyleDown
	case ax != 0:
		return StyleSide
	default:
		return StyleCoast
	}
}

// drawText writes s on row y starting at x, clipped to width.
func drawText(canvas Canvas, x, y, width int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= width {
			return
		}
		canvas.SetContent(x, y, r, nil, style)
		x++
	}
}
