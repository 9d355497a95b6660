package orientation

import (
	"log"

	"github.com/Carmen-Shannon/oxy-scroll/common"
)

// OrientationOption is a functional option for configuring an Orientation.
type OrientationOption func(*orientationImpl)

// WithDuration sets the fixed duration of every turn.
//
// Parameters:
//   - seconds: turn duration; zero or less turns instantly
//
// Returns:
//   - OrientationOption: functional option to set the duration
func WithDuration(seconds float32) OrientationOption {
	return func(o *orientationImpl) {
		o.duration = seconds
	}
}

// WithEasing sets the turn curve.
//
// Parameters:
//   - fn: easing curve (nil = linear)
//
// Returns:
//   - OrientationOption: functional option to set the curve
func WithEasing(fn common.EasingFunc) OrientationOption {
	return func(o *orientationImpl) {
		o.easing = fn
	}
}

// WithLogger sets the logger used for turn start/settle messages. Nil silences them.
//
// Parameters:
//   - logger: destination logger
//
// Returns:
//   - OrientationOption: functional option to set the logger
func WithLogger(logger *log.Logger) OrientationOption {
	return func(o *orientationImpl) {
		o.logger = logger
	}
}
