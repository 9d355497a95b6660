package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/navigator"
	"github.com/Carmen-Shannon/oxy-scroll/engine/orientation"
	"github.com/Carmen-Shannon/oxy-scroll/engine/overlay"
	"github.com/Carmen-Shannon/oxy-scroll/engine/profiler"
	"github.com/Carmen-Shannon/oxy-scroll/engine/renderer"
	"github.com/Carmen-Shannon/oxy-scroll/engine/scroll"
	"github.com/Carmen-Shannon/oxy-scroll/engine/section"
	"github.com/Carmen-Shannon/oxy-scroll/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithProfiler replaces the default profiler, e.g. to change its interval or logger.
//
// Parameters:
//   - p: the profiler to use
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithTickRate sets the frame pipeline rate in frames per second.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target steps per second (default 120)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			fps = 60.0
		}
		e.engineTickRate = time.Duration(float64(time.Second) / fps)
	}
}

// WithRenderFrameLimit caps the render loop to the given frames per second.
// Values <= 0 leave the loop uncapped (paced by the present mode).
//
// Parameters:
//   - fps: maximum presented frames per second
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			e.renderFrameLimit = 0
			return
		}
		e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
	}
}

// WithWindow attaches a window. Its scroll, key and resize callbacks are routed into the engine.
//
// Parameters:
//   - w: the window
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderer attaches the renderer that presents each snapshot.
//
// Parameters:
//   - r: the renderer
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithTable sets the section table. Defaults to section.DefaultTable.
//
// Parameters:
//   - table: the section table shared by every pipeline stage
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTable(table section.Table) EngineBuilderOption {
	return func(e *engine) {
		e.table = table
	}
}

// WithContainer replaces the default spring-smoothed scroll container.
//
// Parameters:
//   - container: the scroll container
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithContainer(container scroll.Container) EngineBuilderOption {
	return func(e *engine) {
		e.container = container
	}
}

// WithNavigatorOptions forwards options to the navigation controller.
//
// Parameters:
//   - options: navigator options, applied in order
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithNavigatorOptions(options ...navigator.NavigatorOption) EngineBuilderOption {
	return func(e *engine) {
		e.navOptions = append(e.navOptions, options...)
	}
}

// WithOrientationOptions forwards options to the world orientation controller.
//
// Parameters:
//   - options: orientation options, applied in order
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithOrientationOptions(options ...orientation.OrientationOption) EngineBuilderOption {
	return func(e *engine) {
		e.orientOptions = append(e.orientOptions, options...)
	}
}

// WithCardsOptions forwards options to the section card overlay.
func WithCardsOptions(options ...overlay.CardsOption) EngineBuilderOption {
	return func(e *engine) {
		e.cardOptions = append(e.cardOptions, options...)
	}
}

// WithDetailPose sets the fixed camera pose used while the detail override is active.
//
// Parameters:
//   - pose: the detail pose
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithDetailPose(pose common.Pose) EngineBuilderOption {
	return func(e *engine) {
		e.detailPose = pose
	}
}

// WithLineHeight sets how many pixels one wheel line scrolls.
// Values <= 0 are ignored.
//
// Parameters:
//   - pixels: pixels per wheel line (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLineHeight(pixels float32) EngineBuilderOption {
	return func(e *engine) {
		if pixels > 0 {
			e.lineHeight = pixels
		}
	}
}
