package navigator

import (
	"log"
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/section"
	"github.com/go-gl/mathgl/mgl32"
)

// navigatorImpl is the single implementation of Navigator.
// All edge-detection memory (last consumed request, previous mode) lives on the instance so that
// several navigators never interfere.
type navigatorImpl struct {
	mu *sync.Mutex

	table     section.Table
	container ScrollContainer
	logger    *log.Logger

	// Live state
	mode        Mode
	pose        common.Pose
	offset      float32
	elapsed     float32
	frame       uint64
	initialized bool
	last        State

	// lastRequest is the request value most recently consumed; NoRequest once the host clears it.
	lastRequest int
	forced      forcedEpisode

	samples    *common.Ring[scrollSample]
	snapTarget float32

	// Pose smoothing
	damping        float32
	driftAmplitude float32
	driftSpeed     float32

	// Forced navigation
	navBase            float32
	navPerUnit         float32
	navMin             float32
	navMax             float32
	navEasing          common.EasingFunc
	forcedScrollFrames int
	settleTimeout      float32

	// Snapping
	snapEnabled     bool
	snapWindow      int
	snapVelocity    float32
	snapMinDistance float32
	snapRate        float32
	snapLo          int
	snapHi          int

	tolerance float32
	maxDelta  float32

	listeners    map[int]func(State)
	nextListener int
}

// Compile-time interface compliance check
var _ Navigator = &navigatorImpl{}

// NewNavigator creates a navigator over the given table with sensible defaults.
// A nil table falls back to section.DefaultTable().
//
// Parameters:
//   - table: the section pose table
//   - options: functional options to configure the navigator
//
// Returns:
//   - Navigator: the newly created navigator, in ModeIdle
func NewNavigator(table section.Table, options ...NavigatorOption) Navigator {
	if table == nil {
		table = section.DefaultTable()
	}
	n := &navigatorImpl{
		mu:     &sync.Mutex{},
		table:  table,
		logger: log.Default(),

		lastRequest: NoRequest,

		damping:        6.0,
		driftAmplitude: 0.15,
		driftSpeed:     1.0,

		navBase:            0.6,
		navPerUnit:         0.05,
		navMin:             0.6,
		navMax:             2.2,
		navEasing:          common.EaseInOutCubic,
		forcedScrollFrames: 24,
		settleTimeout:      1.5,

		snapEnabled:     true,
		snapWindow:      8,
		snapVelocity:    0.02,
		snapMinDistance: 0.004,
		snapRate:        8.0,
		snapLo:          -1,
		snapHi:          -1,

		tolerance: 5e-4,
		maxDelta:  0.1,

		listeners: make(map[int]func(State)),
	}

	for _, option := range options {
		option(n)
	}

	n.samples = common.NewRing[scrollSample](max(n.snapWindow, 2))
	if n.snapLo < 0 {
		n.snapLo = 0
	}
	if n.snapHi < 0 || n.snapHi >= table.Count() {
		n.snapHi = table.Count() - 1
	}
	n.last = State{Target: NoRequest, Pose: table.PoseForSection(0)}
	n.pose = n.last.Pose
	return n
}

func (n *navigatorImpl) Update(frame Frame) State {
	n.mu.Lock()

	dt := n.sanitizeDelta(frame.Delta)
	offset := n.offset
	if common.IsFinite(frame.Offset) {
		offset = common.Clamp01(frame.Offset)
	}
	n.offset = offset
	n.elapsed += dt
	n.frame++

	// Mapper first: every transition below reads the current live section.
	live := n.table.SectionFromOffset(offset)
	n.samples.Push(scrollSample{offset: offset, dt: dt})

	if !n.initialized {
		n.pose = n.table.PoseForOffset(offset)
		n.initialized = true
	}

	var completed, interrupted bool

	if frame.Request == NoRequest {
		n.lastRequest = NoRequest
	} else if !frame.Detail {
		// Requests are held back while the detail view owns the camera.
		if req := n.table.Clamp(frame.Request); req != n.lastRequest {
			n.lastRequest = req
			n.beginForced(req)
		}
	}

	if frame.Detail {
		if n.mode == ModeForced {
			interrupted = true
			n.logf("navigation to section %d interrupted by detail view", n.forced.target)
		}
		n.mode = ModeDetail
		n.pose = n.pose.Damp(frame.DetailPose, n.damping, dt)
	} else {
		if n.mode == ModeDetail {
			// Leave the detail view by re-deriving from the live offset, without re-animating.
			n.mode = ModeIdle
			n.samples.Reset()
		}

		switch n.mode {
		case ModeForced:
			completed = n.stepForced(dt, offset)
		case ModeSnapping:
			n.stepSnap(dt, offset)
			n.pose = n.pose.Damp(n.table.PoseForOffset(offset), n.damping, dt)
		default:
			if target, ok := n.shouldSnap(live, offset); ok {
				n.beginSnap(target)
				n.stepSnap(dt, offset)
				n.pose = n.pose.Damp(n.table.PoseForOffset(offset), n.damping, dt)
				break
			}
			target := n.table.PoseForOffset(offset).Offset(n.drift())
			n.pose = n.pose.Damp(target, n.damping, dt)
		}
	}

	state := State{
		Frame:       n.frame,
		Mode:        n.mode,
		Section:     live,
		Target:      NoRequest,
		Offset:      offset,
		Pose:        n.pose,
		Completed:   completed,
		Interrupted: interrupted,
	}
	if n.mode == ModeForced {
		state.Target = n.forced.target
	}
	n.last = state

	listeners := make([]func(State), 0, len(n.listeners))
	for _, l := range n.listeners {
		listeners = append(listeners, l)
	}
	n.mu.Unlock()

	for _, l := range listeners {
		l(state)
	}
	return state
}

func (n *navigatorImpl) State() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.last
}

func (n *navigatorImpl) Table() section.Table {
	return n.table
}

func (n *navigatorImpl) SetScrollContainer(container ScrollContainer) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.container = container
	if container == nil && n.mode == ModeSnapping {
		n.mode = ModeIdle
		n.samples.Reset()
	}
}

func (n *navigatorImpl) Subscribe(listener func(State)) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	id := n.nextListener
	n.nextListener++
	n.listeners[id] = listener
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.listeners, id)
	}
}

// --- internal helpers ---

// sanitizeDelta maps negative or non-finite deltas to 0 and caps large ones at maxDelta.
func (n *navigatorImpl) sanitizeDelta(dt float32) float32 {
	if !common.IsFinite(dt) || dt < 0 {
		return 0
	}
	if n.maxDelta > 0 && dt > n.maxDelta {
		return n.maxDelta
	}
	return dt
}

// drift returns the ambient positional wobble for the current elapsed time.
func (n *navigatorImpl) drift() mgl32.Vec3 {
	if n.driftAmplitude == 0 {
		return mgl32.Vec3{}
	}
	t := float64(n.elapsed * n.driftSpeed)
	a := n.driftAmplitude
	return mgl32.Vec3{
		a * float32(math.Sin(t*0.5)),
		a * 0.6 * float32(math.Cos(t*0.7)),
		a * 0.4 * float32(math.Sin(t*0.3)),
	}
}

// writeScroll forwards an offset to the container when one is mounted.
func (n *navigatorImpl) writeScroll(offset float32) {
	if n.container != nil {
		n.container.SetScrollOffset(offset)
	}
}

func (n *navigatorImpl) logf(format string, args ...any) {
	if n.logger != nil {
		n.logger.Printf("[Navigator] "+format, args...)
	}
}
