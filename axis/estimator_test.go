package axis_test

import (
	"testing"

	"github.com/katalvlaran/spaceship/axis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMinSteps_MatchesTable compares the closed form with brute-force ground
// truth: the smallest T with an exact-T table entry.
func TestMinSteps_MatchesTable(t *testing.T) {
	const ceiling = 30
	tab, err := axis.Build(ceiling)
	require.NoError(t, err)

	for v0 := -5; v0 <= 5; v0++ {
		for v1 := -5; v1 <= 5; v1++ {
			for d := -50; d <= 50; d++ {
				truth := -1
				for steps := 0; steps <= ceiling; steps++ {
					if _, ok := tab.Get(d-v0*steps, v1-v0, steps); ok {
						truth = steps
						break
					}
				}
				got := axis.MinSteps(0, v0, d, v1)
				if truth < 0 {
					assert.Greater(t, got, ceiling, "v0=%d v1=%d d=%d", v0, v1, d)
					continue
				}
				assert.Equal(t, truth, got, "v0=%d v1=%d d=%d", v0, v1, d)
			}
		}
	}
}

// TestMinSteps_Translation checks that only relative position matters.
func TestMinSteps_Translation(t *testing.T) {
	assert.Equal(t, axis.MinSteps(0, 1, 7, -1), axis.MinSteps(100, 1, 107, -1))
	assert.Equal(t, 0, axis.MinSteps(5, 2, 5, 2), "already there")
	assert.Equal(t, 2, axis.MinSteps(0, 0, 1, 0))
	assert.Equal(t, 2, axis.MinSteps(0, 0, 2, 1))
}

// TestBounds covers the envelope for a few hand-computed cases.
func TestBounds(t *testing.T) {
	cases := []struct {
		v0, dv, steps int
		lo, hi        int
	}{
		{0, 0, 0, 0, 0},
		{0, 0, 2, -1, 1},
		{0, 0, 4, -4, 4},
		{0, 1, 2, 1, 2},
		{2, 0, 1, 2, 2},
		{0, -2, 2, -3, -3},
	}
	for _, tc := range cases {
		lo, hi, ok := axis.Bounds(tc.v0, tc.dv, tc.steps)
		require.True(t, ok)
		assert.Equal(t, [2]int{tc.lo, tc.hi}, [2]int{lo, hi}, "Bounds(%d,%d,%d)", tc.v0, tc.dv, tc.steps)
	}

	_, _, ok := axis.Bounds(0, 3, 2)
	assert.False(t, ok, "cannot change velocity by 3 in 2 steps")
}

// TestFastPattern pins the burn-coast-brake shape and checks minimality.
func TestFastPattern(t *testing.T) {
	shapes := map[int]axis.Pattern{
		0:  "",
		1:  "+-",
		2:  "+0-",
		4:  "++--",
		7:  "++0-0-",
		8:  "++00--",
		-5: "--+0+",
	}
	for d, want := range shapes {
		assert.Equal(t, want, axis.FastPattern(d), "FastPattern(%d)", d)
	}

	for d := -80; d <= 80; d++ {
		p := axis.FastPattern(d)
		gotD, gotV := p.Simulate(0)
		require.Equal(t, d, gotD, "pattern %q", p)
		require.Equal(t, 0, gotV, "pattern %q", p)
		require.Len(t, p, axis.MinSteps(0, 0, d, 0), "distance %d", d)
	}
}
