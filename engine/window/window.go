package window

import (
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
)

// Window is the host surface for the scroll camera: it owns the GLFW window, turns wheel and key
// input into callbacks and hands the renderer a surface descriptor. All methods must be called from
// the thread that created it.
type Window interface {
	// SetUpdateCallback installs the per-iteration hook run by ProcessMessages; nil disables it.
	SetUpdateCallback(callback func())

	// SetResizeCallback receives the new framebuffer size in pixels. Minimized (0x0) sizes are not
	// reported.
	SetResizeCallback(callback func(width, height int))

	// SetScrollCallback receives vertical wheel movement in lines, positive toward the top of the
	// page.
	SetScrollCallback(callback func(delta float32))

	// SetKeyDownCallback receives GLFW key codes on press and repeat. Escape is consumed by the
	// window and closes it.
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback receives GLFW key codes on release.
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetTitle replaces the title bar text.
	//
	// Parameters:
	//   - title: the new title text
	SetTitle(title string)

	// Title returns the last title set.
	Title() string

	// SurfaceDescriptor builds the platform surface descriptor through the wgpuglfw bridge.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the descriptor, or nil before the platform window exists
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning reports whether the window is open and has not been asked to close.
	IsRunning() bool

	// Close destroys the window and terminates GLFW.
	//
	// Returns:
	//   - error: if the platform window was never created
	Close() error

	// ProcessMessages polls events and runs the update callback until the window closes.
	ProcessMessages()

	// Width and Height return the framebuffer size in pixels.
	Width() int
	Height() int
}

// Defaults for a window built without options.
const (
	defaultTitle     = "oxy-scroll"
	defaultWidth     = 1280
	defaultHeight    = 720
	defaultMinWidth  = 600
	defaultMinHeight = 200
	defaultMaxWidth  = 1600
	defaultMaxHeight = 1200
)

// engineWindow is the GLFW-backed Window.
type engineWindow struct {
	title string

	// Resize bounds handed to GLFW; fitSize keeps min <= max.
	minWidth, minHeight int
	maxWidth, maxHeight int

	// width and height track the framebuffer in pixels once the platform window exists.
	width, height int

	// internalWindow is the *glfwWindow once spawned.
	internalWindow any

	onUpdate func()
	onResize func(width, height int)
	// onScroll receives wheel lines, positive toward the top of the page.
	onScroll  func(delta float32)
	onKeyDown func(keyCode uint32)
	onKeyUp   func(keyCode uint32)
}

var _ Window = &engineWindow{}

// NewWindow creates and spawns the platform window. Defaults are applied first, then each option in
// order, then the initial size is clamped into the resize bounds.
//
// Parameters:
//   - options: With* options, applied in order
//
// Returns:
//   - Window: the open window; creation failures panic
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		title:     defaultTitle,
		width:     defaultWidth,
		height:    defaultHeight,
		minWidth:  defaultMinWidth,
		minHeight: defaultMinHeight,
		maxWidth:  defaultMaxWidth,
		maxHeight: defaultMaxHeight,
	}
	for _, opt := range options {
		opt(w)
	}
	w.fitSize()
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

// fitSize raises inverted maximums to their minimums and clamps the initial size into the bounds,
// so the first framebuffer matches what GLFW will allow after the first resize.
func (w *engineWindow) fitSize() {
	w.maxWidth = max(w.maxWidth, w.minWidth)
	w.maxHeight = max(w.maxHeight, w.minHeight)
	w.width = min(max(w.width, w.minWidth), w.maxWidth)
	w.height = min(max(w.height, w.minHeight), w.maxHeight)
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetScrollCallback(callback func(delta float32)) {
	w.onScroll = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.onKeyUp = callback
}

func (w *engineWindow) SetTitle(title string) {
	w.title = title
	platformSetTitle(w, title)
}

func (w *engineWindow) Title() string {
	return w.title
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}
