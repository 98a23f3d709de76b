package kinematics_test

import (
	"testing"

	"github.com/katalvlaran/spaceship/kinematics"
	"github.com/katalvlaran/spaceship/thrust"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTrace_IntegrationOrder checks that velocity is updated before position.
func TestTrace_IntegrationOrder(t *testing.T) {
	states, err := kinematics.Trace(kinematics.ShipState{}, "6654")
	require.NoError(t, err)
	want := []kinematics.ShipState{
		{X: 0, Y: 0, VX: 0, VY: 0},
		{X: 1, Y: 0, VX: 1, VY: 0},
		{X: 3, Y: 0, VX: 2, VY: 0},
		{X: 5, Y: 0, VX: 2, VY: 0},
		{X: 6, Y: 0, VX: 1, VY: 0},
	}
	assert.Equal(t, want, states)
}

// TestTrace_FromMovingStart replays from a non-trivial state.
func TestTrace_FromMovingStart(t *testing.T) {
	start := kinematics.ShipState{X: 3, Y: -2, VX: -1, VY: 2}
	states, err := kinematics.Trace(start, "7")
	require.NoError(t, err)
	assert.Equal(t, kinematics.ShipState{X: 1, Y: 1, VX: -2, VY: 3}, states[1])
}

// TestTrace_InvalidDigit surfaces input corruption.
func TestTrace_InvalidDigit(t *testing.T) {
	_, err := kinematics.Trace(kinematics.ShipState{}, "12a")
	assert.ErrorIs(t, err, thrust.ErrInvalidDigit)
}

// TestVerify covers both a complete and an incomplete trajectory.
func TestVerify(t *testing.T) {
	targets := []kinematics.Cell{{X: 1, Y: 0}, {X: 3, Y: 0}}
	assert.NoError(t, kinematics.Verify(targets, "66"))

	err := kinematics.Verify(targets, "6")
	assert.ErrorIs(t, err, kinematics.ErrTargetUnreachable)

	// The origin is visited at step 0.
	assert.NoError(t, kinematics.Verify([]kinematics.Cell{{X: 0, Y: 0}}, ""))
}

// TestVisitIndices reports first visits in step order and the missing rest.
func TestVisitIndices(t *testing.T) {
	states, err := kinematics.Trace(kinematics.ShipState{}, "6445")
	require.NoError(t, err)
	// cells: (0,0) (1,0) (1,0) (0,0) (-1,0)
	targets := []kinematics.Cell{{X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}, {X: 9, Y: 9}}

	visits, missing := kinematics.VisitIndices(targets, states)
	assert.Equal(t, []kinematics.Visit{
		{Index: 0, Cell: kinematics.Cell{X: 0, Y: 0}},
		{Index: 1, Cell: kinematics.Cell{X: 1, Y: 0}},
		{Index: 4, Cell: kinematics.Cell{X: -1, Y: 0}},
	}, visits)
	assert.Equal(t, []kinematics.Cell{{X: 9, Y: 9}}, missing)
}

// TestThrusts_RoundTrip derives the original digits back from a trace.
func TestThrusts_RoundTrip(t *testing.T) {
	const sol = "7913568245"
	states, err := kinematics.Trace(kinematics.ShipState{X: 2, Y: 2, VX: 1}, sol)
	require.NoError(t, err)

	got, err := kinematics.Thrusts(states)
	require.NoError(t, err)
	assert.Equal(t, sol, got)
}

// TestThrusts_NonAdjacent rejects jumps that are not a single step.
func TestThrusts_NonAdjacent(t *testing.T) {
	_, err := kinematics.Thrusts([]kinematics.ShipState{{}, {X: 5, VX: 2}})
	assert.ErrorIs(t, err, kinematics.ErrNonAdjacentStates)

	// Right velocity change, wrong position.
	_, err = kinematics.Thrusts([]kinematics.ShipState{{}, {X: 2, VX: 1}})
	assert.ErrorIs(t, err, kinematics.ErrNonAdjacentStates)
}

// TestSummarize records the length and peak speeds.
func TestSummarize(t *testing.T) {
	states, err := kinematics.Trace(kinematics.ShipState{}, "66622")
	require.NoError(t, err)
	st := kinematics.Summarize(states)
	assert.Equal(t, kinematics.Stats{Length: 5, MaxVX: 3, MaxVY: 2}, st)
}
