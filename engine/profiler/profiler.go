package profiler

import (
	"log"
	"runtime"
	"time"

	"github.com/Carmen-Shannon/oxy-scroll/engine/navigator"
	"github.com/Carmen-Shannon/oxy-scroll/engine/orientation"
)

// Counters are the navigation episodes observed since the last report.
type Counters struct {
	Navigations   int
	Completions   int
	Interruptions int
	Snaps         int
	Turns         int
}

// Profiler tracks frame rate, memory statistics and navigation episodes.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	now      func() time.Time
	logger   *log.Logger
	lastMode navigator.Mode
	counters Counters
	totals   Counters
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithInterval sets how often stats are logged.
//
// Parameters:
//   - interval: time between reports
//
// Returns:
//   - ProfilerOption: functional option to set the interval
func WithInterval(interval time.Duration) ProfilerOption {
	return func(p *Profiler) {
		p.updateInterval = interval
	}
}

// WithLogger sets the report destination. Nil disables reports; counters are still kept.
//
// Parameters:
//   - logger: destination logger
//
// Returns:
//   - ProfilerOption: functional option to set the logger
func WithLogger(logger *log.Logger) ProfilerOption {
	return func(p *Profiler) {
		p.logger = logger
	}
}

// withClock replaces the time source.
func withClock(now func() time.Time) ProfilerOption {
	return func(p *Profiler) {
		p.now = now
	}
}

// NewProfiler creates a new Profiler.
// Update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		memStats:       runtime.MemStats{},
		now:            time.Now,
		logger:         log.Default(),
	}
	for _, option := range options {
		option(p)
	}
	p.lastTime = p.now()
	return p
}

// Observe records the episode edges of one frame. Call it once per frame with that frame's
// snapshots.
//
// Parameters:
//   - nav: the navigator snapshot
//   - world: the orientation snapshot
func (p *Profiler) Observe(nav navigator.State, world orientation.State) {
	if nav.Mode == navigator.ModeForced && p.lastMode != navigator.ModeForced {
		p.counters.Navigations++
	}
	if nav.Mode == navigator.ModeSnapping && p.lastMode != navigator.ModeSnapping {
		p.counters.Snaps++
	}
	if nav.Completed {
		p.counters.Completions++
	}
	if nav.Interrupted {
		p.counters.Interruptions++
	}
	if world.Started {
		p.counters.Turns++
	}
	p.lastMode = nav.Mode
}

// Totals returns the counters accumulated over the profiler's lifetime, including the current
// interval.
//
// Returns:
//   - Counters: lifetime episode counts
func (p *Profiler) Totals() Counters {
	t := p.totals
	t.Navigations += p.counters.Navigations
	t.Completions += p.counters.Completions
	t.Interruptions += p.counters.Interruptions
	t.Snaps += p.counters.Snaps
	t.Turns += p.counters.Turns
	return t
}

// Tick should be called once per frame to track frame timing.
// Logs performance statistics when the update interval has elapsed.
// Statistics include: FPS, heap usage, GC count/pause times and the navigation episodes of the interval.
//
// Returns:
//   - bool: true if stats were reported this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed < p.updateInterval {
		return false
	}

	fps := float64(p.frameCount) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	gcCount := p.memStats.NumGC
	var maxPauseUs uint64
	// PauseNs is a circular buffer of the last 256 GC pauses
	startIdx := p.lastGCCount
	if gcCount-startIdx > 256 {
		startIdx = gcCount - 256
	}
	for i := startIdx; i < gcCount; i++ {
		if pause := p.memStats.PauseNs[i%256] / 1000; pause > maxPauseUs {
			maxPauseUs = pause
		}
	}

	c := p.counters
	if p.logger != nil {
		p.logger.Printf("[Profiler] FPS: %.2f | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (max: %d µs) | Nav: %d started, %d done, %d interrupted | Snaps: %d | Turns: %d",
			fps, allocMB, allocRateMB, gcCount, maxPauseUs,
			c.Navigations, c.Completions, c.Interruptions, c.Snaps, c.Turns)
	}

	p.totals = p.Totals()
	p.counters = Counters{}
	p.frameCount = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
