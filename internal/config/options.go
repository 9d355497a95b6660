package config

import (
	"log"

	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/navigator"
	"github.com/Carmen-Shannon/oxy-scroll/engine/orientation"
)

// NavigatorOptions converts the navigation and snap settings into navigator options.
//
// Parameters:
//   - logger: destination for episode logs (nil silences them)
//
// Returns:
//   - []navigator.NavigatorOption: options for navigator.NewNavigator
func (c *Config) NavigatorOptions(logger *log.Logger) []navigator.NavigatorOption {
	n := c.Navigation
	s := c.Snap
	easing, _ := common.EasingByName(n.Easing)

	return []navigator.NavigatorOption{
		navigator.WithDamping(float32(n.Damping)),
		navigator.WithDrift(float32(n.DriftAmplitude), float32(n.DriftSpeed)),
		navigator.WithNavigationDuration(float32(n.Base), float32(n.PerUnit), float32(n.Min), float32(n.Max)),
		navigator.WithNavigationEasing(easing),
		navigator.WithForcedScrollFrames(n.ForcedScrollFrames),
		navigator.WithSettleTimeout(float32(n.SettleTimeout.Seconds())),
		navigator.WithTolerance(float32(n.Tolerance)),
		navigator.WithMaxDelta(float32(n.MaxDelta.Seconds())),
		navigator.WithSnapping(s.Enabled),
		navigator.WithSnapWindow(s.Window),
		navigator.WithSnapVelocity(float32(s.Velocity)),
		navigator.WithSnapMinDistance(float32(s.MinDistance)),
		navigator.WithSnapRate(float32(s.Rate)),
		navigator.WithSnapRange(s.First, s.Last),
		navigator.WithLogger(logger),
	}
}

// OrientationOptions converts the world settings into orientation options.
//
// Parameters:
//   - logger: destination for turn logs (nil silences them)
//
// Returns:
//   - []orientation.OrientationOption: options for orientation.NewOrientation
func (c *Config) OrientationOptions(logger *log.Logger) []orientation.OrientationOption {
	easing, _ := common.EasingByName(c.World.Easing)
	return []orientation.OrientationOption{
		orientation.WithDuration(float32(c.World.TurnDuration.Seconds())),
		orientation.WithEasing(easing),
		orientation.WithLogger(logger),
	}
}

// Logger returns the shared component logger, or nil when Quiet is set.
//
// Returns:
//   - *log.Logger: the logger to hand to components
func (c *Config) Logger() *log.Logger {
	if c.Quiet {
		return nil
	}
	return log.Default()
}
