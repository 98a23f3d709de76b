package puzzle

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/spaceship/kinematics"
	"github.com/katalvlaran/spaceship/thrust"
)

// ParseTargets reads a puzzle file and returns its target cells in file order.
// Duplicates are kept; TargetSet collapses them.
func ParseTargets(r io.Reader) ([]kinematics.Cell, error) {
	f, err := targetParser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	if len(f.Values)%2 != 0 {
		return nil, fmt.Errorf("%w: %d values", ErrOddCoordinates, len(f.Values))
	}
	values := make([]int, len(f.Values))
	for i, v := range f.Values {
		if values[i], err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("%w: value %d: %w", ErrSyntax, i, err)
		}
	}
	cells := make([]kinematics.Cell, 0, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		cells = append(cells, kinematics.Cell{X: values[i], Y: values[i+1]})
	}
	return cells, nil
}

// ParseSolution reads a solution file. Moves are checked digit by digit and a
// malformed one yields thrust.ErrInvalidDigit.
func ParseSolution(r io.Reader) (Solution, error) {
	f, err := solutionParser.Parse("", r)
	if err != nil {
		return Solution{}, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	for i := 0; i < len(f.Moves); i++ {
		if _, _, err := thrust.Accel(f.Moves[i]); err != nil {
			return Solution{}, fmt.Errorf("move %d: %w", i, err)
		}
	}
	return Solution{Problem: f.Problem, Moves: f.Moves}, nil
}

// FormatSolution renders a solution line. Without a problem name only the
// moves are written.
func FormatSolution(problem, moves string) string {
	if problem == "" {
		return moves
	}
	return fmt.Sprintf("solve %s %s", problem, moves)
}

// ProblemName derives the problem name from a puzzle path:
// "puzzles/spaceship3.txt" becomes "spaceship3".
func ProblemName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
