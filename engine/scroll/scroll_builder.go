package scroll

// ContainerOption is a functional option for configuring a Container.
type ContainerOption func(*containerImpl)

// WithHeights sets the content and viewport heights in pixels.
//
// Parameters:
//   - content: total content height
//   - viewport: visible height
//
// Returns:
//   - ContainerOption: functional option to set the heights
func WithHeights(content, viewport float32) ContainerOption {
	return func(c *containerImpl) {
		c.content = float64(content)
		c.viewport = float64(viewport)
	}
}

// WithSpring configures the wheel-smoothing spring.
//
// Parameters:
//   - fps: fixed simulation rate of the spring
//   - frequency: angular frequency; higher follows the wheel faster
//   - damping: damping ratio; 1 is critically damped
//
// Returns:
//   - ContainerOption: functional option to set the spring
func WithSpring(fps int, frequency, damping float64) ContainerOption {
	return func(c *containerImpl) {
		c.fps = fps
		c.frequency = frequency
		c.damping = damping
	}
}

// WithMounted sets whether the container starts mounted.
//
// Parameters:
//   - mounted: initial mount state
//
// Returns:
//   - ContainerOption: functional option to set the mount state
func WithMounted(mounted bool) ContainerOption {
	return func(c *containerImpl) {
		c.mounted = mounted
	}
}
