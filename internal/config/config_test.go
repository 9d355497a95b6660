package config

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-scroll/engine/navigator"
	"github.com/Carmen-Shannon/oxy-scroll/engine/section"
)

var allKeys = []string{
	"OXY_SCROLL_TITLE", "OXY_SCROLL_WIDTH", "OXY_SCROLL_HEIGHT", "OXY_SCROLL_VSYNC",
	"OXY_SCROLL_MIN_WIDTH", "OXY_SCROLL_MIN_HEIGHT", "OXY_SCROLL_MAX_WIDTH", "OXY_SCROLL_MAX_HEIGHT",
	"OXY_SCROLL_SOFTWARE_RENDERER", "OXY_SCROLL_TICK_RATE", "OXY_SCROLL_PROFILE_INTERVAL",
	"OXY_SCROLL_QUIET", "OXY_SCROLL_CONTENT_HEIGHT", "OXY_SCROLL_LINE_HEIGHT",
	"OXY_SCROLL_DAMPING", "OXY_SCROLL_DRIFT_AMPLITUDE", "OXY_SCROLL_DRIFT_SPEED",
	"OXY_SCROLL_NAV_BASE", "OXY_SCROLL_NAV_PER_UNIT", "OXY_SCROLL_NAV_MIN", "OXY_SCROLL_NAV_MAX",
	"OXY_SCROLL_NAV_EASING", "OXY_SCROLL_FORCED_SCROLL_FRAMES", "OXY_SCROLL_SETTLE_TIMEOUT",
	"OXY_SCROLL_TOLERANCE", "OXY_SCROLL_MAX_DELTA", "OXY_SCROLL_SNAP", "OXY_SCROLL_SNAP_WINDOW",
	"OXY_SCROLL_SNAP_VELOCITY", "OXY_SCROLL_SNAP_MIN_DISTANCE", "OXY_SCROLL_SNAP_RATE",
	"OXY_SCROLL_SNAP_FIRST", "OXY_SCROLL_SNAP_LAST", "OXY_SCROLL_TURN_DURATION", "OXY_SCROLL_TURN_EASING",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range allKeys {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Window.Title != DefaultTitle {
		t.Fatalf("expected default title %q, got %q", DefaultTitle, cfg.Window.Title)
	}
	if cfg.Window.Width != DefaultWidth || cfg.Window.Height != DefaultHeight {
		t.Fatalf("expected %dx%d, got %dx%d", DefaultWidth, DefaultHeight, cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.VSync {
		t.Fatal("expected vsync on by default")
	}
	if cfg.Navigation.ForcedScrollFrames != DefaultForcedScrollFrames {
		t.Fatalf("expected %d forced scroll frames, got %d", DefaultForcedScrollFrames, cfg.Navigation.ForcedScrollFrames)
	}
	if cfg.Snap.Window != DefaultSnapWindow || cfg.Snap.Velocity != DefaultSnapVelocity {
		t.Fatalf("unexpected snap defaults: %+v", cfg.Snap)
	}
	if cfg.World.TurnDuration != DefaultTurnDuration {
		t.Fatalf("expected turn duration %v, got %v", DefaultTurnDuration, cfg.World.TurnDuration)
	}
	if cfg.Logger() == nil {
		t.Fatal("expected a logger when not quiet")
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("OXY_SCROLL_TITLE", "portfolio")
	t.Setenv("OXY_SCROLL_WIDTH", "1920")
	t.Setenv("OXY_SCROLL_MAX_WIDTH", "2560")
	t.Setenv("OXY_SCROLL_VSYNC", "false")
	t.Setenv("OXY_SCROLL_SNAP_WINDOW", "12")
	t.Setenv("OXY_SCROLL_SNAP_VELOCITY", "0.05")
	t.Setenv("OXY_SCROLL_SNAP_FIRST", "0")
	t.Setenv("OXY_SCROLL_SNAP_LAST", "9")
	t.Setenv("OXY_SCROLL_TURN_DURATION", "800ms")
	t.Setenv("OXY_SCROLL_NAV_EASING", "out-expo")
	t.Setenv("OXY_SCROLL_PROFILE_INTERVAL", "0s")
	t.Setenv("OXY_SCROLL_QUIET", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Window.Title != "portfolio" || cfg.Window.Width != 1920 || cfg.Window.MaxWidth != 2560 || cfg.Window.VSync {
		t.Fatalf("unexpected window config: %+v", cfg.Window)
	}
	if cfg.Snap.Window != 12 || cfg.Snap.Velocity != 0.05 || cfg.Snap.First != 0 || cfg.Snap.Last != 9 {
		t.Fatalf("unexpected snap config: %+v", cfg.Snap)
	}
	if cfg.World.TurnDuration != 800*time.Millisecond {
		t.Fatalf("unexpected turn duration: %v", cfg.World.TurnDuration)
	}
	if cfg.Navigation.Easing != "out-expo" {
		t.Fatalf("unexpected easing: %q", cfg.Navigation.Easing)
	}
	if cfg.ProfileInterval != 0 {
		t.Fatalf("expected profiling disabled, got %v", cfg.ProfileInterval)
	}
	if cfg.Logger() != nil {
		t.Fatal("expected no logger when quiet")
	}
}

func TestLoadReturnsValidationErrors(t *testing.T) {
	clearEnv(t)
	t.Setenv("OXY_SCROLL_WIDTH", "-4")
	t.Setenv("OXY_SCROLL_SNAP_VELOCITY", "fast")
	t.Setenv("OXY_SCROLL_MAX_DELTA", "0s")
	t.Setenv("OXY_SCROLL_NAV_MIN", "3")
	t.Setenv("OXY_SCROLL_NAV_MAX", "1")
	t.Setenv("OXY_SCROLL_TURN_EASING", "wobbly")
	t.Setenv("OXY_SCROLL_SNAP", "maybe")

	_, err := Load()
	if err == nil {
		t.Fatal("expected Load() to fail")
	}
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected error to wrap ErrInvalid, got %v", err)
	}
	for _, want := range []string{
		"OXY_SCROLL_WIDTH",
		"OXY_SCROLL_SNAP_VELOCITY",
		"OXY_SCROLL_MAX_DELTA",
		"OXY_SCROLL_NAV_MAX",
		"OXY_SCROLL_TURN_EASING",
		"OXY_SCROLL_SNAP must be a boolean",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected error to mention %s, got %q", want, err.Error())
		}
	}
}

func TestLoadRejectsSizeOutsideLimits(t *testing.T) {
	clearEnv(t)
	t.Setenv("OXY_SCROLL_WIDTH", "1920")
	t.Setenv("OXY_SCROLL_HEIGHT", "150")

	_, err := Load()
	if err == nil {
		t.Fatal("expected Load() to fail")
	}
	for _, want := range []string{
		"OXY_SCROLL_WIDTH (1920) must lie within [600, 1600]",
		"OXY_SCROLL_HEIGHT (150) must lie within [200, 1200]",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected error to mention %q, got %q", want, err.Error())
		}
	}

	clearEnv(t)
	t.Setenv("OXY_SCROLL_MIN_HEIGHT", "100")
	t.Setenv("OXY_SCROLL_HEIGHT", "150")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Window.MinHeight != 100 || cfg.Window.MaxHeight != DefaultMaxHeight {
		t.Fatalf("unexpected size limits: %+v", cfg.Window)
	}
}

func TestNavigatorOptionsApply(t *testing.T) {
	clearEnv(t)
	t.Setenv("OXY_SCROLL_SNAP", "false")
	t.Setenv("OXY_SCROLL_NAV_MIN", "0.1")
	t.Setenv("OXY_SCROLL_NAV_MAX", "0.1")
	t.Setenv("OXY_SCROLL_FORCED_SCROLL_FRAMES", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	nav := navigator.NewNavigator(section.DefaultTable(), cfg.NavigatorOptions(nil)...)
	completedAt := 0
	for i := 1; i <= 30 && completedAt == 0; i++ {
		if nav.Update(navigator.Frame{Delta: 1.0 / 60, Request: 3}).Completed {
			completedAt = i
		}
	}
	// 0.1 s at 60 Hz is six frames.
	if completedAt < 6 || completedAt > 7 {
		t.Fatalf("navigation completed on frame %d, want about 6", completedAt)
	}
}
