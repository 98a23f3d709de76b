package thrust

import (
	"fmt"
	"strings"
)

// Key returns the combined thrust digit for the acceleration pair (ax, ay).
// Returns ErrInvalidAxisSymbol if either component is outside [-1, 1].
func Key(ax, ay int) (byte, error) {
	if ax < -1 || ax > 1 || ay < -1 || ay > 1 {
		return 0, fmt.Errorf("%w: acceleration (%d,%d)", ErrInvalidAxisSymbol, ax, ay)
	}
	return byte('1' + 3*(ay+1) + (ax + 1)), nil
}

// Accel decodes a combined thrust digit into its (ax, ay) acceleration pair.
// Returns ErrInvalidDigit for anything outside '1'..'9'.
func Accel(d byte) (ax, ay int, err error) {
	if d < '1' || d > '9' {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidDigit, d)
	}
	i := int(d - '1')
	return i%3 - 1, i/3 - 1, nil
}

// Combine zips an x stream ({4,5,6}*) and a y stream ({2,5,8}*) into one
// combined stream. The longer tail is appended unchanged.
//
// Each combined digit is y + (x - 5), i.e. the y symbol shifted left or right
// by the x acceleration.
func Combine(x, y string) (string, error) {
	if err := validateAxis(x, Left, Right); err != nil {
		return "", fmt.Errorf("x stream: %w", err)
	}
	if err := validateAxis(y, Down, Up); err != nil {
		return "", fmt.Errorf("y stream: %w", err)
	}

	n := min(len(x), len(y))
	var sb strings.Builder
	sb.Grow(max(len(x), len(y)))
	for i := 0; i < n; i++ {
		sb.WriteByte(y[i] + x[i] - Coast)
	}
	sb.WriteString(x[n:])
	sb.WriteString(y[n:])

	return sb.String(), nil
}

// Decompose splits a combined stream into its x stream ({4,5,6}*) and
// y stream ({2,5,8}*). Both results have the length of combined.
func Decompose(combined string) (x, y string, err error) {
	xs := make([]byte, len(combined))
	ys := make([]byte, len(combined))
	for i := 0; i < len(combined); i++ {
		d := combined[i]
		if d < '1' || d > '9' {
			return "", "", fmt.Errorf("%w: %q at %d", ErrInvalidDigit, d, i)
		}
		k := d - '1'
		xs[i] = Left + k%3
		ys[i] = Down + 3*(k/3)
	}
	return string(xs), string(ys), nil
}

// MirrorXToY maps an x stream onto the y axis: 4 -> 2, 6 -> 8, 5 stays.
func MirrorXToY(x string) (string, error) {
	if err := validateAxis(x, Left, Right); err != nil {
		return "", err
	}
	ys := make([]byte, len(x))
	for i := 0; i < len(x); i++ {
		switch x[i] {
		case Left:
			ys[i] = Down
		case Right:
			ys[i] = Up
		default:
			ys[i] = Coast
		}
	}
	return string(ys), nil
}

// validateAxis checks that every symbol of s is lo, Coast or hi.
func validateAxis(s string, lo, hi byte) error {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c != lo && c != Coast && c != hi {
			return fmt.Errorf("%w: %q at %d", ErrInvalidAxisSymbol, c, i)
		}
	}
	return nil
}
