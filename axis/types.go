package axis

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spaceship/thrust"
)

// Sentinel errors for single-axis planning.
var (
	// ErrInvalidCeiling is returned by Build for a negative step ceiling.
	ErrInvalidCeiling = errors.New("axis: step ceiling must be non-negative")

	// ErrTableLookupMiss indicates that no pattern exists with the exact step count.
	// Callers recover by trying other step counts or a slower method.
	ErrTableLookupMiss = errors.New("axis: no pattern with the exact step count")

	// ErrInvalidAxisSymbol is the thrust sentinel, shared so callers need one import.
	ErrInvalidAxisSymbol = thrust.ErrInvalidAxisSymbol
)

// DefaultCeiling is the step ceiling used when callers have no better estimate.
const DefaultCeiling = 40

// Pattern symbols, one per step.
const (
	Accelerate byte = '+'
	Hold       byte = '0'
	Brake      byte = '-'
)

// Pattern is a per-step acceleration sequence over {-, 0, +}.
type Pattern string

// ParsePattern validates s as a Pattern.
func ParsePattern(s string) (Pattern, error) {
	for i := 0; i < len(s); i++ {
		if symbolAccel(s[i]) == invalidAccel {
			return "", fmt.Errorf("%w: %q at %d", ErrInvalidAxisSymbol, s[i], i)
		}
	}
	return Pattern(s), nil
}

// Accels returns the accelerations of p.
func (p Pattern) Accels() []int {
	out := make([]int, len(p))
	for i := 0; i < len(p); i++ {
		out[i] = symbolAccel(p[i])
	}
	return out
}

// Simulate runs p from position 0 with initial velocity v0 and returns the
// displacement and final velocity.
func (p Pattern) Simulate(v0 int) (displacement, velocity int) {
	velocity = v0
	for i := 0; i < len(p); i++ {
		velocity += symbolAccel(p[i])
		displacement += velocity
	}
	return displacement, velocity
}

// X renders p as an x-axis thrust stream over {4,5,6}.
func (p Pattern) X() string {
	return p.render(thrust.Left, thrust.Right)
}

// Y renders p as a y-axis thrust stream over {2,5,8}.
func (p Pattern) Y() string {
	return p.render(thrust.Down, thrust.Up)
}

func (p Pattern) render(neg, pos byte) string {
	out := make([]byte, len(p))
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case Brake:
			out[i] = neg
		case Accelerate:
			out[i] = pos
		default:
			out[i] = thrust.Coast
		}
	}
	return string(out)
}

const invalidAccel = 2

// symbolAccel maps a pattern symbol to its acceleration, or invalidAccel.
func symbolAccel(c byte) int {
	switch c {
	case Brake:
		return -1
	case Hold:
		return 0
	case Accelerate:
		return 1
	}
	return invalidAccel
}

// accelSymbol is the inverse of symbolAccel for a ∈ {-1,0,1}.
func accelSymbol(a int) byte {
	return "-0+"[a+1]
}
