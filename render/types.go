package render

import "github.com/gdamore/tcell/v2"

// Canvas is the part of tcell.Screen that Draw needs.
type Canvas interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Glyphs used on the canvas.
const (
	GlyphOrigin  = 'S'
	GlyphPath    = '·'
	GlyphVisited = 'O'
	GlyphMissing = 'X'
)

// Styles used on the canvas.
var (
	StyleCoast   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	StyleUp      = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	StyleDown    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	StyleSide    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	StyleOrigin  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	StyleVisited = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	StyleMissing = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed).Bold(true)
	StyleStatus  = tcell.StyleDefault.Reverse(true)
)

// Summary reports what Draw put on the canvas.
type Summary struct {
	Steps   int
	Visited int
	Missing int
	Scaled  bool
}
