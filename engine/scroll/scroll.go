package scroll

import (
	"github.com/Carmen-Shannon/oxy-scroll/engine/navigator"
)

// Container models the host's scrollable page: a content column taller than the viewport whose
// pixel scroll position is driven either by the user's wheel or by the navigator.
type Container interface {
	navigator.ScrollContainer

	// Wheel queues a user scroll of the given number of pixels (positive scrolls down). The position
	// follows the accumulated wheel target on a spring.
	//
	// Parameters:
	//   - pixels: signed wheel distance in pixels
	Wheel(pixels float32)

	// Update advances the wheel spring by delta seconds.
	//
	// Parameters:
	//   - delta: seconds since the previous frame
	//
	// Returns:
	//   - float32: the normalized offset after the update
	Update(delta float32) float32

	// Offset returns the normalized scroll offset in [0, 1].
	//
	// Returns:
	//   - float32: scrollTop / (content - viewport)
	Offset() float32

	// ScrollTop returns the pixel scroll position.
	//
	// Returns:
	//   - float32: pixels scrolled from the top
	ScrollTop() float32

	// Resize changes the content and viewport heights, keeping the normalized offset.
	//
	// Parameters:
	//   - content: total content height in pixels
	//   - viewport: visible height in pixels
	Resize(content, viewport float32)

	// Mount attaches the container. Unmounted containers ignore every write.
	Mount()

	// Unmount detaches the container.
	Unmount()

	// Mounted reports whether the container is attached.
	//
	// Returns:
	//   - bool: true once Mount has been called and Unmount has not
	Mounted() bool

	// Scrolling reports whether the wheel spring is still moving.
	//
	// Returns:
	//   - bool: true while the position has not reached the wheel target
	Scrolling() bool
}
