// scrollcam opens a window whose camera is driven by the scroll wheel.
//
// Controls:
//
//	Wheel  - scroll the page
//	0-9    - jump to a section
//	N/P    - next/previous section
//	D      - toggle the detail view
//	C      - clear the pending jump
package main

import (
	"log"
	"os"

	"github.com/Carmen-Shannon/oxy-scroll/engine"
	"github.com/Carmen-Shannon/oxy-scroll/engine/profiler"
	"github.com/Carmen-Shannon/oxy-scroll/engine/renderer"
	"github.com/Carmen-Shannon/oxy-scroll/engine/scroll"
	"github.com/Carmen-Shannon/oxy-scroll/engine/window"
	"github.com/Carmen-Shannon/oxy-scroll/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("[scrollcam] %v", err)
		os.Exit(1)
	}
	logger := cfg.Logger()

	// ── Window + Renderer ───────────────────────────────────────────────
	win := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithWidth(cfg.Window.Width),
		window.WithHeight(cfg.Window.Height),
		window.WithSizeLimits(cfg.Window.MinWidth, cfg.Window.MinHeight, cfg.Window.MaxWidth, cfg.Window.MaxHeight),
	)

	presentMode := renderer.PresentModeUncapped
	if cfg.Window.VSync {
		presentMode = renderer.PresentModeVSync
	}
	r := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		win,
		renderer.WithPresentMode(presentMode),
		renderer.WithForceSoftwareRenderer(cfg.Window.SoftwareRenderer),
	)
	defer r.Release()

	// ── Engine ──────────────────────────────────────────────────────────
	options := []engine.EngineBuilderOption{
		engine.WithWindow(win),
		engine.WithRenderer(r),
		engine.WithTickRate(float64(cfg.TickRate)),
		engine.WithLineHeight(float32(cfg.Scroll.LineHeight)),
		engine.WithContainer(scroll.NewContainer(
			scroll.WithHeights(float32(cfg.Scroll.ContentHeight), float32(cfg.Window.Height)),
		)),
		engine.WithNavigatorOptions(cfg.NavigatorOptions(logger)...),
		engine.WithOrientationOptions(cfg.OrientationOptions(logger)...),
	}
	if cfg.ProfileInterval > 0 {
		options = append(options,
			engine.WithProfiling(true),
			engine.WithProfiler(profiler.NewProfiler(profiler.WithInterval(cfg.ProfileInterval))),
		)
	}
	eng := engine.NewEngine(options...)

	eng.Run()

	totals := eng.Profiler().Totals()
	log.Printf("[scrollcam] session: %d jumps (%d done, %d interrupted), %d snaps, %d turns",
		totals.Navigations, totals.Completions, totals.Interruptions, totals.Snaps, totals.Turns)
}
