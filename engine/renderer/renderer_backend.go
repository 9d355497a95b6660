package renderer

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU presents through WebGPU (wgpu-native).
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the display refresh rate.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	PresentModeUncapped
)

// RendererBackend is the GPU-facing half of the Renderer.
type RendererBackend interface {
	// ConfigureSurface (re)configures the swapchain for the given pixel size.
	//
	// Parameters:
	//   - width, height: surface size in pixels
	ConfigureSurface(width, height int)

	// SetPresentMode stores the present mode used by the next ConfigureSurface.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// BeginFrame acquires the next surface texture and opens a render pass cleared to clear.
	//
	// Parameters:
	//   - clear: the clear color of the pass
	//
	// Returns:
	//   - error: an error if the surface texture could not be acquired
	BeginFrame(clear Color) error

	// EndFrame ends the render pass and submits the command buffer.
	EndFrame()

	// Present presents the acquired surface texture and releases per-frame references.
	Present()

	// Release frees every GPU object held by the backend.
	Release()
}
