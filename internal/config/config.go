package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Carmen-Shannon/oxy-scroll/common"
)

const (
	// DefaultTitle is the window title before the first section is known.
	DefaultTitle = "oxy-scroll"
	// DefaultWidth and DefaultHeight size the window in pixels.
	DefaultWidth  = 1280
	DefaultHeight = 720
	// DefaultMinWidth through DefaultMaxHeight bound interactive resizing.
	DefaultMinWidth  = 600
	DefaultMinHeight = 200
	DefaultMaxWidth  = 1600
	DefaultMaxHeight = 1200
	// DefaultTickRate is the frame pipeline rate in Hz.
	DefaultTickRate = 120

	// DefaultContentHeight is the scrollable page height in pixels.
	DefaultContentHeight = 9000.0
	// DefaultLineHeight converts one wheel line into pixels.
	DefaultLineHeight = 60.0

	// DefaultDamping is the pose smoothing rate in 1/s.
	DefaultDamping = 6.0
	// DefaultDriftAmplitude is the idle camera wobble in world units.
	DefaultDriftAmplitude = 0.15
	// DefaultDriftSpeed scales the idle wobble frequency.
	DefaultDriftSpeed = 1.0

	// DefaultNavigationBase and DefaultNavigationPerUnit form the jump duration before clamping.
	DefaultNavigationBase    = 0.6
	DefaultNavigationPerUnit = 0.05
	// DefaultNavigationMin and DefaultNavigationMax clamp the jump duration in seconds.
	DefaultNavigationMin = 0.6
	DefaultNavigationMax = 2.2
	// DefaultNavigationEasing names the jump curve.
	DefaultNavigationEasing = "in-out-cubic"
	// DefaultForcedScrollFrames is how many frames a jump writes the scroll position.
	DefaultForcedScrollFrames = 24
	// DefaultSettleTimeout bounds how long a finished jump waits for the scroll position.
	DefaultSettleTimeout = 1500 * time.Millisecond

	// DefaultSnapWindow is the number of samples in the velocity window.
	DefaultSnapWindow = 8
	// DefaultSnapVelocity is the speed (offset/s) under which snapping may start.
	DefaultSnapVelocity = 0.02
	// DefaultSnapMinDistance is the distance from a section start under which no snap starts.
	DefaultSnapMinDistance = 0.004
	// DefaultSnapRate is the snap approach rate in 1/s.
	DefaultSnapRate = 8.0
	// DefaultTolerance is the offset convergence tolerance.
	DefaultTolerance = 5e-4
	// DefaultMaxDelta caps a single frame delta.
	DefaultMaxDelta = 100 * time.Millisecond

	// DefaultTurnDuration is the fixed world turn duration.
	DefaultTurnDuration = 1200 * time.Millisecond
	// DefaultTurnEasing names the world turn curve.
	DefaultTurnEasing = "in-out-cubic"

	// DefaultProfileInterval is how often the profiler reports. Zero disables it.
	DefaultProfileInterval = 5 * time.Second
)

// ErrInvalid is wrapped by every error returned from Load.
var ErrInvalid = errors.New("invalid configuration")

// Config captures all runtime tunables.
type Config struct {
	Window     WindowConfig
	Scroll     ScrollConfig
	Navigation NavigationConfig
	Snap       SnapConfig
	World      WorldConfig

	TickRate        int
	ProfileInterval time.Duration
	Quiet           bool
}

// WindowConfig sizes the host window and its presenter.
type WindowConfig struct {
	Title            string
	Width            int
	Height           int
	MinWidth         int
	MinHeight        int
	MaxWidth         int
	MaxHeight        int
	VSync            bool
	SoftwareRenderer bool
}

// ScrollConfig describes the scroll container.
type ScrollConfig struct {
	ContentHeight float64
	LineHeight    float64
}

// NavigationConfig holds the pose smoothing and forced-navigation tunables.
type NavigationConfig struct {
	Damping            float64
	DriftAmplitude     float64
	DriftSpeed         float64
	Base               float64
	PerUnit            float64
	Min                float64
	Max                float64
	Easing             string
	ForcedScrollFrames int
	SettleTimeout      time.Duration
	Tolerance          float64
	MaxDelta           time.Duration
}

// SnapConfig holds the velocity-snap heuristic thresholds.
type SnapConfig struct {
	Enabled     bool
	Window      int
	Velocity    float64
	MinDistance float64
	Rate        float64
	// First and Last bound the snap-eligible sections; negative means the table limit.
	First int
	Last  int
}

// WorldConfig holds the world orientation tunables.
type WorldConfig struct {
	TurnDuration time.Duration
	Easing       string
}

// Load reads the configuration from OXY_SCROLL_* environment variables, applying defaults and
// returning one error that lists every invalid override.
func Load() (*Config, error) {
	cfg := &Config{
		Window: WindowConfig{
			Title:     getString("OXY_SCROLL_TITLE", DefaultTitle),
			Width:     DefaultWidth,
			Height:    DefaultHeight,
			MinWidth:  DefaultMinWidth,
			MinHeight: DefaultMinHeight,
			MaxWidth:  DefaultMaxWidth,
			MaxHeight: DefaultMaxHeight,
			VSync:     true,
		},
		Scroll: ScrollConfig{
			ContentHeight: DefaultContentHeight,
			LineHeight:    DefaultLineHeight,
		},
		Navigation: NavigationConfig{
			Damping:            DefaultDamping,
			DriftAmplitude:     DefaultDriftAmplitude,
			DriftSpeed:         DefaultDriftSpeed,
			Base:               DefaultNavigationBase,
			PerUnit:            DefaultNavigationPerUnit,
			Min:                DefaultNavigationMin,
			Max:                DefaultNavigationMax,
			Easing:             getString("OXY_SCROLL_NAV_EASING", DefaultNavigationEasing),
			ForcedScrollFrames: DefaultForcedScrollFrames,
			SettleTimeout:      DefaultSettleTimeout,
			Tolerance:          DefaultTolerance,
			MaxDelta:           DefaultMaxDelta,
		},
		Snap: SnapConfig{
			Enabled:     true,
			Window:      DefaultSnapWindow,
			Velocity:    DefaultSnapVelocity,
			MinDistance: DefaultSnapMinDistance,
			Rate:        DefaultSnapRate,
			First:       -1,
			Last:        -1,
		},
		World: WorldConfig{
			TurnDuration: DefaultTurnDuration,
			Easing:       getString("OXY_SCROLL_TURN_EASING", DefaultTurnEasing),
		},
		TickRate:        DefaultTickRate,
		ProfileInterval: DefaultProfileInterval,
	}

	p := &parser{}

	p.positiveInt("OXY_SCROLL_WIDTH", &cfg.Window.Width)
	p.positiveInt("OXY_SCROLL_HEIGHT", &cfg.Window.Height)
	p.positiveInt("OXY_SCROLL_MIN_WIDTH", &cfg.Window.MinWidth)
	p.positiveInt("OXY_SCROLL_MIN_HEIGHT", &cfg.Window.MinHeight)
	p.positiveInt("OXY_SCROLL_MAX_WIDTH", &cfg.Window.MaxWidth)
	p.positiveInt("OXY_SCROLL_MAX_HEIGHT", &cfg.Window.MaxHeight)
	p.boolean("OXY_SCROLL_VSYNC", &cfg.Window.VSync)
	p.boolean("OXY_SCROLL_SOFTWARE_RENDERER", &cfg.Window.SoftwareRenderer)
	p.positiveInt("OXY_SCROLL_TICK_RATE", &cfg.TickRate)
	p.duration("OXY_SCROLL_PROFILE_INTERVAL", &cfg.ProfileInterval, true)
	p.boolean("OXY_SCROLL_QUIET", &cfg.Quiet)

	p.positiveFloat("OXY_SCROLL_CONTENT_HEIGHT", &cfg.Scroll.ContentHeight)
	p.positiveFloat("OXY_SCROLL_LINE_HEIGHT", &cfg.Scroll.LineHeight)

	p.nonNegativeFloat("OXY_SCROLL_DAMPING", &cfg.Navigation.Damping)
	p.nonNegativeFloat("OXY_SCROLL_DRIFT_AMPLITUDE", &cfg.Navigation.DriftAmplitude)
	p.nonNegativeFloat("OXY_SCROLL_DRIFT_SPEED", &cfg.Navigation.DriftSpeed)
	p.nonNegativeFloat("OXY_SCROLL_NAV_BASE", &cfg.Navigation.Base)
	p.nonNegativeFloat("OXY_SCROLL_NAV_PER_UNIT", &cfg.Navigation.PerUnit)
	p.nonNegativeFloat("OXY_SCROLL_NAV_MIN", &cfg.Navigation.Min)
	p.nonNegativeFloat("OXY_SCROLL_NAV_MAX", &cfg.Navigation.Max)
	p.nonNegativeInt("OXY_SCROLL_FORCED_SCROLL_FRAMES", &cfg.Navigation.ForcedScrollFrames)
	p.duration("OXY_SCROLL_SETTLE_TIMEOUT", &cfg.Navigation.SettleTimeout, true)
	p.positiveFloat("OXY_SCROLL_TOLERANCE", &cfg.Navigation.Tolerance)
	p.duration("OXY_SCROLL_MAX_DELTA", &cfg.Navigation.MaxDelta, false)

	p.boolean("OXY_SCROLL_SNAP", &cfg.Snap.Enabled)
	p.positiveInt("OXY_SCROLL_SNAP_WINDOW", &cfg.Snap.Window)
	p.positiveFloat("OXY_SCROLL_SNAP_VELOCITY", &cfg.Snap.Velocity)
	p.nonNegativeFloat("OXY_SCROLL_SNAP_MIN_DISTANCE", &cfg.Snap.MinDistance)
	p.positiveFloat("OXY_SCROLL_SNAP_RATE", &cfg.Snap.Rate)
	p.integer("OXY_SCROLL_SNAP_FIRST", &cfg.Snap.First)
	p.integer("OXY_SCROLL_SNAP_LAST", &cfg.Snap.Last)

	p.duration("OXY_SCROLL_TURN_DURATION", &cfg.World.TurnDuration, true)

	if w := cfg.Window; w.Width < w.MinWidth || w.Width > w.MaxWidth {
		p.fail("OXY_SCROLL_WIDTH (%d) must lie within [%d, %d]", w.Width, w.MinWidth, w.MaxWidth)
	}
	if w := cfg.Window; w.Height < w.MinHeight || w.Height > w.MaxHeight {
		p.fail("OXY_SCROLL_HEIGHT (%d) must lie within [%d, %d]", w.Height, w.MinHeight, w.MaxHeight)
	}
	if cfg.Navigation.Max < cfg.Navigation.Min {
		p.fail("OXY_SCROLL_NAV_MAX (%g) must not be below OXY_SCROLL_NAV_MIN (%g)", cfg.Navigation.Max, cfg.Navigation.Min)
	}
	if cfg.Snap.Window < 2 {
		p.fail("OXY_SCROLL_SNAP_WINDOW must hold at least 2 samples, got %d", cfg.Snap.Window)
	}
	if cfg.Snap.First >= 0 && cfg.Snap.Last >= 0 && cfg.Snap.Last < cfg.Snap.First {
		p.fail("OXY_SCROLL_SNAP_LAST (%d) must not be below OXY_SCROLL_SNAP_FIRST (%d)", cfg.Snap.Last, cfg.Snap.First)
	}
	if _, ok := common.EasingByName(cfg.Navigation.Easing); !ok {
		p.fail("OXY_SCROLL_NAV_EASING names an unknown curve %q", cfg.Navigation.Easing)
	}
	if _, ok := common.EasingByName(cfg.World.Easing); !ok {
		p.fail("OXY_SCROLL_TURN_EASING names an unknown curve %q", cfg.World.Easing)
	}

	if len(p.problems) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalid, strings.Join(p.problems, "; "))
	}
	return cfg, nil
}

// parser collects every invalid override instead of stopping at the first.
type parser struct {
	problems []string
}

func (p *parser) fail(format string, args ...any) {
	p.problems = append(p.problems, fmt.Sprintf(format, args...))
}

func (p *parser) integer(key string, dst *int) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		p.fail("%s must be an integer, got %q", key, raw)
		return
	}
	*dst = value
}

func (p *parser) positiveInt(key string, dst *int) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		p.fail("%s must be a positive integer, got %q", key, raw)
		return
	}
	*dst = value
}

func (p *parser) nonNegativeInt(key string, dst *int) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		p.fail("%s must be a non-negative integer, got %q", key, raw)
		return
	}
	*dst = value
}

func (p *parser) positiveFloat(key string, dst *float64) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || !(value > 0) || value > 1e9 {
		p.fail("%s must be a positive number, got %q", key, raw)
		return
	}
	*dst = value
}

func (p *parser) nonNegativeFloat(key string, dst *float64) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || !(value >= 0) || value > 1e9 {
		p.fail("%s must be a non-negative number, got %q", key, raw)
		return
	}
	*dst = value
}

func (p *parser) duration(key string, dst *time.Duration, allowZero bool) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return
	}
	value, err := time.ParseDuration(raw)
	if err != nil || value < 0 || (value == 0 && !allowZero) {
		if allowZero {
			p.fail("%s must be a non-negative duration, got %q", key, raw)
		} else {
			p.fail("%s must be a positive duration, got %q", key, raw)
		}
		return
	}
	*dst = value
}

func (p *parser) boolean(key string, dst *bool) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		p.fail("%s must be a boolean, got %q", key, raw)
		return
	}
	*dst = value
}

func getString(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
