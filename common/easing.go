package common

import (
	"math"

	"github.com/tanema/gween/ease"
)

// EasingFunc maps normalized progress t in [0, 1] to eased progress.
// Every curve in this file satisfies f(0) = 0 and f(1) = 1, which keeps piecewise
// interpolation continuous at segment boundaries.
type EasingFunc func(t float32) float32

// EaseLinear returns t unchanged.
func EaseLinear(t float32) float32 {
	return t
}

// EaseInCubic starts slow and accelerates: t³.
func EaseInCubic(t float32) float32 {
	return ease.InCubic(t, 0, 1, 1)
}

// EaseOutCubic starts fast and decelerates: 1 - (1-t)³.
func EaseOutCubic(t float32) float32 {
	return ease.OutCubic(t, 0, 1, 1)
}

// EaseInOutCubic accelerates through the first half and decelerates through the second.
func EaseInOutCubic(t float32) float32 {
	return ease.InOutCubic(t, 0, 1, 1)
}

// EaseInQuint is t⁵.
func EaseInQuint(t float32) float32 {
	return ease.InQuint(t, 0, 1, 1)
}

// EaseOutQuint is 1 - (1-t)⁵.
func EaseOutQuint(t float32) float32 {
	return ease.OutQuint(t, 0, 1, 1)
}

// EaseInOutQuint is the quintic in/out pair, steeper in the middle than the cubic variant.
func EaseInOutQuint(t float32) float32 {
	return ease.InOutQuint(t, 0, 1, 1)
}

// The expo curves stay local: ease.InExpo ends at 0.999 and ease.OutExpo is scaled by 1.001, either
// of which would open a gap at a segment boundary.

// EaseInExpo is 2^(10t-10), pinned to 0 at t=0.
func EaseInExpo(t float32) float32 {
	if t <= 0 {
		return 0
	}
	return float32(math.Pow(2, float64(10*t-10)))
}

// EaseOutExpo is 1 - 2^(-10t), pinned to 1 at t=1.
func EaseOutExpo(t float32) float32 {
	if t >= 1 {
		return 1
	}
	return 1 - float32(math.Pow(2, float64(-10*t)))
}

// EaseInOutExpo joins EaseInExpo and EaseOutExpo at t=0.5.
func EaseInOutExpo(t float32) float32 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	case t < 0.5:
		return float32(math.Pow(2, float64(20*t-10))) / 2
	default:
		return (2 - float32(math.Pow(2, float64(-20*t+10)))) / 2
	}
}

// Smoothstep is the Hermite curve 3t² - 2t³.
func Smoothstep(t float32) float32 {
	return t * t * (3 - 2*t)
}

// Smootherstep is Perlin's 6t⁵ - 15t⁴ + 10t³, with zero first and second derivatives at both ends.
func Smootherstep(t float32) float32 {
	return t * t * t * (t*(t*6-15) + 10)
}

// Apply clamps t into [0, 1] and evaluates fn, falling back to linear when fn is nil.
//
// Parameters:
//   - fn: the easing curve (nil = linear)
//   - t: raw progress
//
// Returns:
//   - float32: eased progress
func Apply(fn EasingFunc, t float32) float32 {
	t = Clamp01(t)
	if fn == nil {
		return t
	}
	return fn(t)
}

// ToTween adapts an EasingFunc to the gween (t, b, c, d) tween signature so the same curve can drive
// a gween.Tween.
//
// Parameters:
//   - fn: the easing curve (nil = linear)
//
// Returns:
//   - ease.TweenFunc: elapsed t, begin b, change c, duration d → value
func ToTween(fn EasingFunc) ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		if d <= 0 {
			return b + c
		}
		return b + c*Apply(fn, t/d)
	}
}

var easings = map[string]EasingFunc{
	"linear":       EaseLinear,
	"in-cubic":     EaseInCubic,
	"out-cubic":    EaseOutCubic,
	"in-out-cubic": EaseInOutCubic,
	"in-quint":     EaseInQuint,
	"out-quint":    EaseOutQuint,
	"in-out-quint": EaseInOutQuint,
	"in-expo":      EaseInExpo,
	"out-expo":     EaseOutExpo,
	"in-out-expo":  EaseInOutExpo,
	"smoothstep":   Smoothstep,
	"smootherstep": Smootherstep,
}

// EasingByName looks up a curve by its kebab-case name (e.g. "in-out-cubic").
//
// Parameters:
//   - name: curve name
//
// Returns:
//   - EasingFunc: the curve, or nil when unknown
//   - bool: true if the name is known
func EasingByName(name string) (EasingFunc, bool) {
	fn, ok := easings[name]
	return fn, ok
}
