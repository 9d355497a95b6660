package scroll

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/charmbracelet/harmonica"
)

// settle thresholds for the wheel spring, in pixels and pixels per step.
const (
	settleDistance = 0.5
	settleVelocity = 0.5
)

type containerImpl struct {
	mu *sync.Mutex

	content  float64
	viewport float64
	mounted  bool

	fps       int
	frequency float64
	damping   float64
	spring    harmonica.Spring

	top       float64
	velocity  float64
	target    float64
	scrolling bool
	pending   float64
}

// Compile-time interface compliance check
var _ Container = &containerImpl{}

// NewContainer creates a mounted scroll container.
//
// Parameters:
//   - options: functional options to configure the container
//
// Returns:
//   - Container: the container scrolled to the top
func NewContainer(options ...ContainerOption) Container {
	c := &containerImpl{
		mu:        &sync.Mutex{},
		content:   8000,
		viewport:  800,
		mounted:   true,
		fps:       60,
		frequency: 6.0,
		damping:   1.0,
	}

	for _, option := range options {
		option(c)
	}

	if c.fps <= 0 {
		c.fps = 60
	}
	c.spring = harmonica.NewSpring(harmonica.FPS(c.fps), c.frequency, c.damping)
	return c
}

func (c *containerImpl) SetScrollOffset(offset float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.mounted {
		return
	}
	// A programmatic write replaces any wheel motion in flight.
	c.top = float64(common.Clamp01(offset)) * c.maxScroll()
	c.target = c.top
	c.velocity = 0
	c.pending = 0
	c.scrolling = false
}

func (c *containerImpl) Wheel(pixels float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.mounted || !common.IsFinite(pixels) {
		return
	}
	c.target = common.Clamp(c.target+float64(pixels), 0, c.maxScroll())
	c.scrolling = c.target != c.top
}

func (c *containerImpl) Update(delta float32) float32 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.scrolling && common.IsFinite(delta) && delta > 0 {
		stepDur := 1 / float64(c.fps)
		c.pending += float64(delta)
		for c.pending >= stepDur && c.scrolling {
			c.pending -= stepDur
			c.top, c.velocity = c.spring.Update(c.top, c.velocity, c.target)
			if math.Abs(c.top-c.target) < settleDistance && math.Abs(c.velocity) < settleVelocity {
				c.top = c.target
				c.velocity = 0
				c.pending = 0
				c.scrolling = false
			}
		}
		c.top = common.Clamp(c.top, 0, c.maxScroll())
	}
	return c.offset()
}

func (c *containerImpl) Offset() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.offset()
}

func (c *containerImpl) ScrollTop() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return float32(c.top)
}

func (c *containerImpl) Resize(content, viewport float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !common.IsFinite(content) || !common.IsFinite(viewport) {
		return
	}
	offset := float64(c.offset())
	c.content = math.Max(float64(content), 0)
	c.viewport = math.Max(float64(viewport), 0)
	c.top = offset * c.maxScroll()
	c.target = c.top
	c.velocity = 0
	c.scrolling = false
}

func (c *containerImpl) Mount() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mounted = true
}

func (c *containerImpl) Unmount() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mounted = false
	c.scrolling = false
	c.velocity = 0
	c.target = c.top
}

func (c *containerImpl) Mounted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mounted
}

func (c *containerImpl) Scrolling() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scrolling
}

// --- internal helpers ---

func (c *containerImpl) maxScroll() float64 {
	return math.Max(c.content-c.viewport, 0)
}

func (c *containerImpl) offset() float32 {
	m := c.maxScroll()
	if m <= 0 {
		return 0
	}
	return common.Clamp01(float32(c.top / m))
}
