package common

import "math"

// TwoPi is a full turn in radians.
const TwoPi = float32(2 * math.Pi)

// Clamp restricts v to the closed range [lo, hi].
//
// Parameters:
//   - v: the value to clamp
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - T: v limited to [lo, hi]
func Clamp[T ~int | ~float32 | ~float64](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 restricts v to [0, 1]. NaN collapses to 0.
//
// Parameters:
//   - v: the value to clamp
//
// Returns:
//   - float32: v limited to [0, 1]
func Clamp01(v float32) float32 {
	if v != v {
		return 0
	}
	return Clamp(v, 0, 1)
}

// Lerp linearly interpolates between a and b. t=0 returns a, t=1 returns b.
//
// Parameters:
//   - a: start value
//   - b: end value
//   - t: interpolation factor
//
// Returns:
//   - float32: the interpolated value
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// DampFactor converts a decay rate (1/s) and a frame delta (s) into the blend factor used by
// frame-rate independent exponential damping: 1 - e^(-rate*dt).
// Applying the factor twice at dt/2 yields the same result as once at dt.
//
// Parameters:
//   - rate: decay constant in 1/s (larger converges faster)
//   - dt: frame delta in seconds
//
// Returns:
//   - float32: blend factor in [0, 1]
func DampFactor(rate, dt float32) float32 {
	if rate <= 0 || dt <= 0 {
		return 0
	}
	return 1 - float32(math.Exp(-float64(rate*dt)))
}

// Damp advances current toward target using exponential decay with a time-based rate.
//
// Parameters:
//   - current: the value being smoothed
//   - target: the value it converges to
//   - rate: decay constant in 1/s
//   - dt: frame delta in seconds
//
// Returns:
//   - float32: the advanced value
func Damp(current, target, rate, dt float32) float32 {
	return current + (target-current)*DampFactor(rate, dt)
}

// WrapAngle normalizes an angle in radians into [0, 2π).
//
// Parameters:
//   - a: angle in radians
//
// Returns:
//   - float32: the equivalent angle in [0, 2π)
func WrapAngle(a float32) float32 {
	w := float32(math.Mod(float64(a), float64(TwoPi)))
	if w < 0 {
		w += TwoPi
	}
	if w >= TwoPi {
		w = 0
	}
	return w
}

// ShortestArc returns the signed rotation that carries from onto to along the shorter way
// around the circle. The result lies in (-π, π]; a positive value is a counter-clockwise turn.
//
// Parameters:
//   - from: current angle in radians
//   - to: target angle in radians
//
// Returns:
//   - float32: signed travel in radians
func ShortestArc(from, to float32) float32 {
	d := WrapAngle(to - from)
	if d > math.Pi {
		d -= TwoPi
	}
	return d
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float32) float32 {
	return rad * 180 / math.Pi
}

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite(v float32) bool {
	return v == v && !math.IsInf(float64(v), 0)
}
