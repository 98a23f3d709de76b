package puzzle

import "errors"

// Sentinel errors for puzzle and solution files.
var (
	// ErrSyntax wraps any parse failure reported by the grammar.
	ErrSyntax = errors.New("puzzle: syntax error")

	// ErrOddCoordinates is returned when a puzzle holds an odd number of integers.
	ErrOddCoordinates = errors.New("puzzle: odd number of coordinates")
)

// Solution is a parsed solution file.
type Solution struct {
	// Problem is the puzzle name, empty when the file holds bare moves.
	Problem string

	// Moves is the thrust string.
	Moves string
}
