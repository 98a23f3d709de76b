package thrust

import "errors"

// Sentinel errors for thrust encoding.
var (
	// ErrInvalidDigit indicates a combined thrust symbol outside '1'..'9'.
	ErrInvalidDigit = errors.New("thrust: invalid thrust digit")

	// ErrInvalidAxisSymbol indicates a symbol outside the axis alphabet
	// ({4,5,6} for x, {2,5,8} for y) or an acceleration outside [-1, 1].
	ErrInvalidAxisSymbol = errors.New("thrust: invalid axis symbol")
)

// Axis symbols.
const (
	// Coast is the "no acceleration" symbol on both axes.
	Coast byte = '5'

	// Left and Right are the x-axis symbols for ax = -1 and ax = +1.
	Left  byte = '4'
	Right byte = '6'

	// Down and Up are the y-axis symbols for ay = -1 and ay = +1.
	Down byte = '2'
	Up   byte = '8'
)
