package axis

import "math"

// highTriangle is the sum of the count largest values of 1..maxValue.
func highTriangle(maxValue, count int) int {
	return (maxValue + (maxValue - count + 1)) * count / 2
}

// lowTriangle is the sum 1..count.
func lowTriangle(count int) int {
	return (count + 1) * count / 2
}

// Bounds returns the smallest and largest displacement reachable from velocity
// v0 in exactly steps steps while changing velocity by velocityDelta.
// ok is false when steps < |velocityDelta|.
func Bounds(v0, velocityDelta, steps int) (lo, hi int, ok bool) {
	dv := abs(velocityDelta)
	if steps < dv {
		return 0, 0, false
	}
	// Spare steps are spent in accelerate/decelerate pairs.
	pairs := (steps - dv) / 2
	accel, decel := pairs, pairs
	if velocityDelta > 0 {
		accel += dv
	} else {
		decel += dv
	}
	drift := v0 * steps
	hi = highTriangle(steps, accel) - lowTriangle(decel) + drift
	lo = lowTriangle(accel) - highTriangle(steps, decel) + drift
	return lo, hi, true
}

// MinSteps returns the smallest T such that the axis can move from (x0, v0) to
// (x1, v1) in exactly T steps.
//
// T starts at |v1 − v0| and grows until x1 − x0 lies within Bounds. The interval
// widens with every spare step, so the loop terminates.
func MinSteps(x0, v0, x1, v1 int) int {
	dx, dv := x1-x0, v1-v0
	for steps := abs(dv); ; steps++ {
		lo, hi, _ := Bounds(v0, dv, steps)
		if lo <= dx && dx <= hi {
			return steps
		}
	}
}

// FastPattern returns the minimal rest-to-rest pattern covering distance.
//
// With k = ⌊√|d|⌋ and r = |d| − k² = q·k + s (0 ≤ s < k), the pattern accelerates
// k steps, coasts q steps at peak speed, then brakes, holding one extra step when
// the velocity has dropped to s:
//
//	+^k 0^q -^(k−s) [0 if s > 0] -^s
//
// Negative distances use the mirrored pattern. Length equals MinSteps(0,0,d,0).
func FastPattern(distance int) Pattern {
	if distance == 0 {
		return ""
	}
	d := abs(distance)
	k := int(math.Sqrt(float64(d)))
	for k*k > d {
		k--
	}
	for (k+1)*(k+1) <= d {
		k++
	}
	q, s := (d-k*k)/k, (d-k*k)%k

	burn, brake := Accelerate, Brake
	if distance < 0 {
		burn, brake = Brake, Accelerate
	}

	out := make([]byte, 0, 2*k+q+1)
	out = appendRun(out, burn, k)
	out = appendRun(out, Hold, q)
	out = appendRun(out, brake, k-s)
	if s > 0 {
		out = append(out, Hold)
	}
	out = appendRun(out, brake, s)

	return Pattern(out)
}

func appendRun(b []byte, c byte, n int) []byte {
	for i := 0; i < n; i++ {
		b = append(b, c)
	}
	return b
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
