package renderer

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-scroll/engine/window"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	palette []Color
	frames  uint64
	skipped uint64

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
}

// Renderer presents one frame per Draw: a single render pass cleared to a color derived from the
// world rotation, scroll progress and card opacity.
type Renderer interface {
	// Draw renders and presents one frame. A frame that cannot acquire a surface texture (for
	// example while the window is minimised) is skipped rather than treated as fatal.
	//
	// Parameters:
	//   - tint: this frame's color inputs
	//
	// Returns:
	//   - bool: true if the frame reached the screen
	Draw(tint Tint) bool

	// Resize configures the underlying backend to handle a new surface size.
	// This should be called when re-sizing the window or when the surface size should change.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// SetPresentMode sets the surface present mode which controls how frames are delivered to the display.
	// Takes effect on the next Resize.
	//
	// Parameters:
	//   - mode: the PresentMode to use (VSync or Uncapped)
	SetPresentMode(mode PresentMode)

	// Stats returns the number of presented and skipped frames.
	//
	// Returns:
	//   - presented: frames that reached the screen
	//   - skipped: frames dropped because no surface texture was available
	Stats() (presented, skipped uint64)

	// Release frees the backend's GPU objects.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer presenting into the given window.
// Panics if no adapter or device can be obtained.
//
// Parameters:
//   - backendType: the type of rendering backend to use (e.g., WGPU)
//   - window: the window whose surface descriptor and size are used
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a new instance of Renderer configured with the specified backend and options
func NewRenderer(backendType RendererBackendType, window window.Window, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
		palette:     DefaultPalette(),
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend = newWGPURendererBackend(window.SurfaceDescriptor(), r.forceFallbackAdapter)
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}

	r.backend.ConfigureSurface(window.Width(), window.Height())
	return r
}

func (r *renderer) Draw(tint Tint) bool {
	r.mu.Lock()
	palette := r.palette
	r.mu.Unlock()

	if err := r.backend.BeginFrame(ClearColor(palette, tint)); err != nil {
		r.mu.Lock()
		r.skipped++
		r.mu.Unlock()
		return false
	}
	r.backend.EndFrame()
	r.backend.Present()

	r.mu.Lock()
	r.frames++
	r.mu.Unlock()
	return true
}

func (r *renderer) Resize(width, height int) {
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) Stats() (presented, skipped uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames, r.skipped
}

func (r *renderer) Release() {
	r.backend.Release()
}
