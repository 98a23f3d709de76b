package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/spaceship/kinematics"
)

// Run draws the scene on an initialised screen and redraws on resize until
// the user presses q, Escape or Ctrl-C. The caller owns Init and Fini.
func Run(screen tcell.Screen, targets []kinematics.Cell, states []kinematics.ShipState) Summary {
	var sum Summary
	for {
		screen.Clear()
		sum = Draw(screen, targets, states)
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case nil:
			return sum
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if quitKey(ev) {
				return sum
			}
		}
	}
}

func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
