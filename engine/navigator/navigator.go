package navigator

import (
	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/section"
)

// NoRequest marks the absence of a navigation request in Frame.Request and State.Target.
const NoRequest = -1

// Mode is the navigator's current arbitration state.
type Mode int

const (
	// ModeIdle tracks the live scroll offset with a small ambient drift.
	ModeIdle Mode = iota
	// ModeSnapping eases the real scroll position toward a section start after scrolling slows.
	ModeSnapping
	// ModeForced drives the camera and the scroll position toward a requested section.
	ModeForced
	// ModeDetail substitutes a fixed pose supplied by the detail view.
	ModeDetail
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeSnapping:
		return "snapping"
	case ModeForced:
		return "forced"
	case ModeDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// ScrollContainer is the host's scrollable element. The navigator only ever writes to it, and only
// while it owns the scroll position (snapping or forcing).
type ScrollContainer interface {
	// SetScrollOffset moves the container to a normalized offset in [0, 1].
	//
	// Parameters:
	//   - offset: normalized scroll position
	SetScrollOffset(offset float32)
}

// Frame carries the per-frame inputs read from the host.
type Frame struct {
	// Delta is the time since the previous frame in seconds.
	Delta float32

	// Offset is the live normalized scroll offset read from the container this frame.
	Offset float32

	// Request is the section the host wants to jump to, or NoRequest.
	Request int

	// Detail is true while an item detail view overrides the camera.
	Detail bool

	// DetailPose is the fixed pose used while Detail is set.
	DetailPose common.Pose
}

// State is the immutable snapshot resolved once per frame. Consumers reading the section and the
// pose of the same frame always see mutually consistent values.
type State struct {
	// Frame is the number of updates processed so far.
	Frame uint64

	// Mode is the arbitration state after this frame's transitions.
	Mode Mode

	// Section is the section containing the live scroll offset.
	Section int

	// Target is the section being navigated to, or NoRequest outside ModeForced.
	Target int

	// Offset is the sanitized live scroll offset used this frame.
	Offset float32

	// Pose is the authoritative camera pose for this frame.
	Pose common.Pose

	// Completed is true only on the frame a forced navigation finishes.
	Completed bool

	// Interrupted is true only on the frame a forced navigation is abandoned for the detail view.
	Interrupted bool
}

// Effective returns the section that should drive dependent views: the navigation target while
// navigating, otherwise the live section.
func (s State) Effective() int {
	if s.Target != NoRequest {
		return s.Target
	}
	return s.Section
}

// IsNavigating reports whether a forced navigation is in flight.
func (s State) IsNavigating() bool {
	return s.Mode == ModeForced
}

// Navigator owns the authoritative camera pose and section, arbitrating between free scrolling,
// velocity-triggered snapping, requested jumps and the detail override.
// Update is expected to be called once per frame from a single goroutine; the read accessors may be
// called from any goroutine.
type Navigator interface {
	// Update consumes one frame of host input, resolves the mode transitions and returns the frame's
	// snapshot. It never panics on degenerate input.
	//
	// Parameters:
	//   - frame: the host inputs for this frame
	//
	// Returns:
	//   - State: the resolved snapshot
	Update(frame Frame) State

	// State returns the snapshot resolved by the most recent Update.
	//
	// Returns:
	//   - State: the last snapshot
	State() State

	// Table returns the section table the navigator reads from.
	//
	// Returns:
	//   - section.Table: the pose table
	Table() section.Table

	// SetScrollContainer attaches the host container. Pass nil while the container is not mounted;
	// scroll writes then become no-ops and an in-flight snap is dropped.
	//
	// Parameters:
	//   - container: the host container or nil
	SetScrollContainer(container ScrollContainer)

	// Subscribe registers a listener called with every resolved snapshot, after Update releases its
	// lock.
	//
	// Parameters:
	//   - listener: function receiving each State
	//
	// Returns:
	//   - func(): removes the listener
	Subscribe(listener func(State)) func()
}
