package puzzle_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spaceship/kinematics"
	"github.com/katalvlaran/spaceship/puzzle"
	"github.com/katalvlaran/spaceship/thrust"
)

// TestParseTargets covers layouts, comments and signs.
func TestParseTargets(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []kinematics.Cell
	}{
		{"Empty", "", []kinematics.Cell{}},
		{"OneLine", "1 -1 1 -3", []kinematics.Cell{{X: 1, Y: -1}, {X: 1, Y: -3}}},
		{"Lines", "1 -1\n2 -5\n", []kinematics.Cell{{X: 1, Y: -1}, {X: 2, Y: -5}}},
		{"Comments", "# puzzle\n3 4 # first\n+5 06\n", []kinematics.Cell{{X: 3, Y: 4}, {X: 5, Y: 6}}},
		{"Duplicates", "0 1 0 1", []kinematics.Cell{{X: 0, Y: 1}, {X: 0, Y: 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := puzzle.ParseTargets(strings.NewReader(tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestParseTargets_Errors checks malformed puzzles.
func TestParseTargets_Errors(t *testing.T) {
	_, err := puzzle.ParseTargets(strings.NewReader("1 2 3"))
	assert.ErrorIs(t, err, puzzle.ErrOddCoordinates)

	_, err = puzzle.ParseTargets(strings.NewReader("1 two"))
	assert.ErrorIs(t, err, puzzle.ErrSyntax)
}

// TestParseSolution covers both line shapes.
func TestParseSolution(t *testing.T) {
	sol, err := puzzle.ParseSolution(strings.NewReader("solve spaceship3 8136\n"))
	require.NoError(t, err)
	assert.Equal(t, puzzle.Solution{Problem: "spaceship3", Moves: "8136"}, sol)

	sol, err = puzzle.ParseSolution(strings.NewReader("  65 "))
	require.NoError(t, err)
	assert.Equal(t, puzzle.Solution{Moves: "65"}, sol)

	sol, err = puzzle.ParseSolution(strings.NewReader("solve spaceship1"))
	require.NoError(t, err)
	assert.Equal(t, puzzle.Solution{Problem: "spaceship1"}, sol)
}

// TestParseSolution_Errors checks malformed solution files.
func TestParseSolution_Errors(t *testing.T) {
	_, err := puzzle.ParseSolution(strings.NewReader("solve 8136"))
	assert.ErrorIs(t, err, puzzle.ErrSyntax)

	_, err = puzzle.ParseSolution(strings.NewReader("8136 extra"))
	assert.ErrorIs(t, err, puzzle.ErrSyntax)

	_, err = puzzle.ParseSolution(strings.NewReader("solve spaceship1 8106"))
	assert.ErrorIs(t, err, thrust.ErrInvalidDigit)
}

// TestFormatSolution round-trips through ParseSolution.
func TestFormatSolution(t *testing.T) {
	line := puzzle.FormatSolution("spaceship7", "66445")
	assert.Equal(t, "solve spaceship7 66445", line)
	assert.Equal(t, "66445", puzzle.FormatSolution("", "66445"))

	sol, err := puzzle.ParseSolution(strings.NewReader(line))
	require.NoError(t, err)
	assert.Equal(t, "spaceship7", sol.Problem)
	assert.Equal(t, "66445", sol.Moves)
}

// TestProblemName strips directories and extensions.
func TestProblemName(t *testing.T) {
	assert.Equal(t, "spaceship3", puzzle.ProblemName("puzzles/spaceship/spaceship3.txt"))
	assert.Equal(t, "spaceship12", puzzle.ProblemName("spaceship12"))
}
