package navigator

import (
	"log"

	"github.com/Carmen-Shannon/oxy-scroll/common"
)

// NavigatorOption is a functional option for configuring a Navigator.
type NavigatorOption func(*navigatorImpl)

// WithScrollContainer attaches the host scroll container at construction.
//
// Parameters:
//   - container: the host container (nil = not mounted)
//
// Returns:
//   - NavigatorOption: functional option to set the container
func WithScrollContainer(container ScrollContainer) NavigatorOption {
	return func(n *navigatorImpl) {
		n.container = container
	}
}

// WithDamping sets the exponential decay rate applied to the displayed pose outside forced
// navigation.
//
// Parameters:
//   - rate: decay constant in 1/s (larger follows the target more tightly)
//
// Returns:
//   - NavigatorOption: functional option to set the damping rate
func WithDamping(rate float32) NavigatorOption {
	return func(n *navigatorImpl) {
		n.damping = rate
	}
}

// WithDrift sets the ambient camera drift applied while idle.
//
// Parameters:
//   - amplitude: drift radius in world units (0 disables drift)
//   - speed: angular speed multiplier of the drift oscillators
//
// Returns:
//   - NavigatorOption: functional option to set the drift
func WithDrift(amplitude, speed float32) NavigatorOption {
	return func(n *navigatorImpl) {
		n.driftAmplitude = amplitude
		n.driftSpeed = speed
	}
}

// WithNavigationDuration sets how long a forced navigation takes:
// clamp(base + perUnit*distance, min, max) seconds, where distance is the pose travel.
//
// Parameters:
//   - base: fixed portion in seconds
//   - perUnit: seconds added per world unit of travel
//   - min: shortest allowed duration
//   - max: longest allowed duration
//
// Returns:
//   - NavigatorOption: functional option to set the duration model
func WithNavigationDuration(base, perUnit, min, max float32) NavigatorOption {
	return func(n *navigatorImpl) {
		n.navBase = base
		n.navPerUnit = perUnit
		n.navMin = min
		n.navMax = max
	}
}

// WithNavigationEasing sets the curve used for forced-navigation pose interpolation.
//
// Parameters:
//   - fn: easing curve (nil = linear)
//
// Returns:
//   - NavigatorOption: functional option to set the curve
func WithNavigationEasing(fn common.EasingFunc) NavigatorOption {
	return func(n *navigatorImpl) {
		n.navEasing = fn
	}
}

// WithForcedScrollFrames sets how many frames a forced navigation keeps writing the target offset
// into the scroll container.
//
// Parameters:
//   - frames: frame budget
//
// Returns:
//   - NavigatorOption: functional option to set the frame budget
func WithForcedScrollFrames(frames int) NavigatorOption {
	return func(n *navigatorImpl) {
		n.forcedScrollFrames = frames
	}
}

// WithSettleTimeout bounds how long a finished forced navigation waits for the scroll offset to
// converge before completing anyway.
//
// Parameters:
//   - seconds: timeout in seconds (0 waits forever)
//
// Returns:
//   - NavigatorOption: functional option to set the timeout
func WithSettleTimeout(seconds float32) NavigatorOption {
	return func(n *navigatorImpl) {
		n.settleTimeout = seconds
	}
}

// WithSnapWindow sets the number of recent offset samples used to estimate scroll velocity and
// direction.
//
// Parameters:
//   - samples: window size (minimum 2)
//
// Returns:
//   - NavigatorOption: functional option to set the window
func WithSnapWindow(samples int) NavigatorOption {
	return func(n *navigatorImpl) {
		n.snapWindow = samples
	}
}

// WithSnapVelocity sets the velocity below which snapping may start.
//
// Parameters:
//   - velocity: offset units per second
//
// Returns:
//   - NavigatorOption: functional option to set the cutoff
func WithSnapVelocity(velocity float32) NavigatorOption {
	return func(n *navigatorImpl) {
		n.snapVelocity = velocity
	}
}

// WithSnapMinDistance sets the minimum distance to the snap target required to start snapping.
//
// Parameters:
//   - distance: offset units
//
// Returns:
//   - NavigatorOption: functional option to set the minimum distance
func WithSnapMinDistance(distance float32) NavigatorOption {
	return func(n *navigatorImpl) {
		n.snapMinDistance = distance
	}
}

// WithSnapRate sets the exponential rate at which the scroll offset approaches the snap target.
//
// Parameters:
//   - rate: decay constant in 1/s
//
// Returns:
//   - NavigatorOption: functional option to set the rate
func WithSnapRate(rate float32) NavigatorOption {
	return func(n *navigatorImpl) {
		n.snapRate = rate
	}
}

// WithSnapRange restricts snapping to sections lo..hi inclusive. Negative bounds mean the table
// limits.
//
// Parameters:
//   - lo: first snap-eligible section
//   - hi: last snap-eligible section
//
// Returns:
//   - NavigatorOption: functional option to set the range
func WithSnapRange(lo, hi int) NavigatorOption {
	return func(n *navigatorImpl) {
		n.snapLo = lo
		n.snapHi = hi
	}
}

// WithSnapping enables or disables velocity-triggered snapping.
//
// Parameters:
//   - enabled: false disables snapping entirely
//
// Returns:
//   - NavigatorOption: functional option to toggle snapping
func WithSnapping(enabled bool) NavigatorOption {
	return func(n *navigatorImpl) {
		n.snapEnabled = enabled
	}
}

// WithTolerance sets the offset tolerance used for snap landing and navigation convergence.
//
// Parameters:
//   - tolerance: offset units
//
// Returns:
//   - NavigatorOption: functional option to set the tolerance
func WithTolerance(tolerance float32) NavigatorOption {
	return func(n *navigatorImpl) {
		n.tolerance = tolerance
	}
}

// WithMaxDelta caps the frame delta so a stalled frame cannot teleport the camera.
//
// Parameters:
//   - seconds: largest delta honored per Update
//
// Returns:
//   - NavigatorOption: functional option to set the cap
func WithMaxDelta(seconds float32) NavigatorOption {
	return func(n *navigatorImpl) {
		n.maxDelta = seconds
	}
}

// WithLogger sets the logger used for episode transitions. Pass nil to silence logging.
//
// Parameters:
//   - logger: destination logger
//
// Returns:
//   - NavigatorOption: functional option to set the logger
func WithLogger(logger *log.Logger) NavigatorOption {
	return func(n *navigatorImpl) {
		n.logger = logger
	}
}
