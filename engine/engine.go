package engine

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/camera"
	"github.com/Carmen-Shannon/oxy-scroll/engine/navigator"
	"github.com/Carmen-Shannon/oxy-scroll/engine/orientation"
	"github.com/Carmen-Shannon/oxy-scroll/engine/overlay"
	"github.com/Carmen-Shannon/oxy-scroll/engine/profiler"
	"github.com/Carmen-Shannon/oxy-scroll/engine/renderer"
	"github.com/Carmen-Shannon/oxy-scroll/engine/scroll"
	"github.com/Carmen-Shannon/oxy-scroll/engine/section"
	"github.com/Carmen-Shannon/oxy-scroll/engine/window"
)

// headlessFrame paces the render loop when there is no renderer to block on vsync.
const headlessFrame = time.Second / 60

// Snapshot is everything resolved for one frame. It is immutable once published.
type Snapshot struct {
	Nav   navigator.State
	World orientation.State
	Card  overlay.Visibility
}

type engine struct {
	mu *sync.Mutex

	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window   window.Window
	renderer renderer.Renderer

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate   time.Duration
	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped

	// Frame pipeline components
	table       section.Table
	container   scroll.Container
	navigator   navigator.Navigator
	orientation orientation.Orientation
	camera      camera.Camera
	controller  camera.CameraController
	cards       overlay.Cards

	navOptions    []navigator.NavigatorOption
	orientOptions []orientation.OrientationOption
	cardOptions   []overlay.CardsOption

	// Host inputs, written by window callbacks and read once per Step
	request      int
	detail       bool
	detailPose   common.Pose
	lineHeight   float32
	mounted      bool
	shownTitle   int
	baseTitle    string
	snapshot     Snapshot
	listeners    map[int]func(Snapshot)
	nextListener int
}

// Engine drives the scroll-driven camera: a tick goroutine runs the frame pipeline
// (scroll → navigator → orientation → camera → overlay) and a render goroutine presents the last
// published Snapshot.
type Engine interface {
	// Window returns the engine's window, or nil when running headless.
	//
	// Returns:
	//   - window.Window: the window
	Window() window.Window

	// Navigator returns the navigation controller.
	//
	// Returns:
	//   - navigator.Navigator: the controller
	Navigator() navigator.Navigator

	// Orientation returns the world orientation controller.
	//
	// Returns:
	//   - orientation.Orientation: the controller
	Orientation() orientation.Orientation

	// Camera returns the render camera.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// Container returns the scroll container.
	//
	// Returns:
	//   - scroll.Container: the container
	Container() scroll.Container

	// Profiler returns the frame profiler.
	//
	// Returns:
	//   - *profiler.Profiler: the profiler
	Profiler() *profiler.Profiler

	// Step runs the frame pipeline once. Run calls it from the tick goroutine; headless hosts and
	// tests may call it directly instead.
	//
	// Parameters:
	//   - deltaTime: seconds since the previous step
	//
	// Returns:
	//   - Snapshot: the frame just resolved
	Step(deltaTime float32) Snapshot

	// Snapshot returns the most recently resolved frame.
	//
	// Returns:
	//   - Snapshot: the last frame
	Snapshot() Snapshot

	// Subscribe registers a listener called with every resolved frame.
	//
	// Parameters:
	//   - listener: function receiving each Snapshot
	//
	// Returns:
	//   - func(): removes the listener
	Subscribe(listener func(Snapshot)) func()

	// Wheel feeds a mouse wheel movement into the scroll container.
	//
	// Parameters:
	//   - lines: wheel lines, positive toward the top of the page
	Wheel(lines float32)

	// RequestSection asks for a jump to the given section. The request is cleared automatically when
	// the navigation completes or is interrupted.
	//
	// Parameters:
	//   - section: target section index (clamped by the navigator)
	RequestSection(section int)

	// ClearRequest drops any pending navigation request.
	ClearRequest()

	// SetDetail turns the detail override on or off.
	//
	// Parameters:
	//   - active: true to substitute the detail pose
	SetDetail(active bool)

	// ToggleDetail flips the detail override.
	ToggleDetail()

	// MountContainer attaches or detaches the scroll container from the navigator.
	//
	// Parameters:
	//   - mounted: false to make scroll writes no-ops
	MountContainer(mounted bool)

	// EnableProfiler enables frame profiling.
	EnableProfiler()

	// DisableProfiler disables frame profiling.
	DisableProfiler()

	// SetTickRate sets the pipeline rate in frames per second.
	//
	// Parameters:
	//   - fps: steps per second; non-positive values fall back to 60
	SetTickRate(fps float64)

	// SetRenderFrameLimit caps the render loop.
	//
	// Parameters:
	//   - fps: maximum presented frames per second; non-positive disables the cap
	SetRenderFrameLimit(fps float64)

	// Run starts the tick and render goroutines and blocks on the window message loop, or until
	// Quit when headless.
	Run()

	// Quit stops the engine.
	Quit()
}

// NewEngine creates a new Engine.
//
// Parameters:
//   - options: functional options to configure the engine
//
// Returns:
//   - Engine: the engine, with the pipeline built but not yet running
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		mu:               &sync.Mutex{},
		tickRateChannel:  make(chan time.Duration, 1),
		quitChannel:      make(chan struct{}),
		wg:               sync.WaitGroup{},
		profilingEnabled: false,
		engineTickRate:   time.Second / 120,
		request:          navigator.NoRequest,
		lineHeight:       60,
		mounted:          true,
		shownTitle:       -1,
		listeners:        make(map[int]func(Snapshot)),
		detailPose:       common.NewPose(0, 6, 8, 0, 2, 0),
	}

	for _, opt := range options {
		opt(e)
	}

	if e.table == nil {
		e.table = section.DefaultTable()
	}
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler()
	}
	if e.container == nil {
		e.container = scroll.NewContainer()
	}
	e.navigator = navigator.NewNavigator(e.table, e.navOptions...)
	e.navigator.SetScrollContainer(e.container)
	e.orientation = orientation.NewOrientation(e.table, e.orientOptions...)
	e.cards = overlay.NewCards(e.cardOptions...)
	e.controller = camera.NewCameraController(e.table.PoseForSection(0))
	e.camera = camera.NewCamera(camera.WithController(e.controller), camera.WithFar(500))
	e.snapshot = Snapshot{
		Nav:  e.navigator.State(),
		Card: overlay.Visibility{Card: overlay.NoCard},
	}

	if e.window != nil {
		e.baseTitle = common.Coalesce(e.window.Title(), "oxy-scroll")
		width, height := e.window.Width(), e.window.Height()
		if height > 0 {
			e.camera.SetAspect(float32(width) / float32(height))
		}
		e.window.SetResizeCallback(func(width, height int) {
			if e.renderer != nil {
				e.renderer.Resize(width, height)
			}
			if height > 0 {
				e.camera.SetAspect(float32(width) / float32(height))
			}
		})
		e.window.SetScrollCallback(e.Wheel)
		e.window.SetKeyDownCallback(e.handleKey)
		e.window.SetUpdateCallback(e.refreshTitle)
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Navigator() navigator.Navigator {
	return e.navigator
}

func (e *engine) Orientation() orientation.Orientation {
	return e.orientation
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) Container() scroll.Container {
	return e.container
}

func (e *engine) Profiler() *profiler.Profiler {
	return e.profiler
}

func (e *engine) Step(deltaTime float32) Snapshot {
	offset := e.container.Update(deltaTime)

	e.mu.Lock()
	frame := navigator.Frame{
		Delta:      deltaTime,
		Offset:     offset,
		Request:    e.request,
		Detail:     e.detail,
		DetailPose: e.detailPose,
	}
	e.mu.Unlock()

	nav := e.navigator.Update(frame)
	if nav.Completed || nav.Interrupted {
		e.mu.Lock()
		if e.request == frame.Request {
			e.request = navigator.NoRequest
		}
		e.mu.Unlock()
	}

	world := e.orientation.Update(deltaTime, nav.Effective())

	e.controller.SetPose(nav.Pose)
	e.camera.SetWorldRotation(world.Rotation)
	e.camera.Update()

	card := e.cards.Update(deltaTime, nav, world)

	snap := Snapshot{Nav: nav, World: world, Card: card}

	e.mu.Lock()
	e.snapshot = snap
	e.profiler.Observe(nav, world)
	listeners := make([]func(Snapshot), 0, len(e.listeners))
	for _, l := range e.listeners {
		listeners = append(listeners, l)
	}
	e.mu.Unlock()

	for _, l := range listeners {
		l(snap)
	}
	return snap
}

func (e *engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot
}

func (e *engine) Subscribe(listener func(Snapshot)) func() {
	e.mu.Lock()
	defer e.mu.Unlock()
	id := e.nextListener
	e.nextListener++
	e.listeners[id] = listener
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.listeners, id)
	}
}

func (e *engine) Wheel(lines float32) {
	e.mu.Lock()
	pixels := -lines * e.lineHeight
	e.mu.Unlock()
	e.container.Wheel(pixels)
}

func (e *engine) RequestSection(sec int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.request = e.table.Clamp(sec)
}

func (e *engine) ClearRequest() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.request = navigator.NoRequest
}

func (e *engine) SetDetail(active bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.detail = active
}

func (e *engine) ToggleDetail() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.detail = !e.detail
}

func (e *engine) MountContainer(mounted bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if mounted == e.mounted {
		return
	}
	e.mounted = mounted
	if mounted {
		e.container.Mount()
		e.navigator.SetScrollContainer(e.container)
		return
	}
	e.container.Unmount()
	e.navigator.SetScrollContainer(nil)
}

func (e *engine) Run() {
	e.mu.Lock()
	e.running = true
	e.mu.Unlock()

	e.handle()
	if e.window != nil {
		e.window.ProcessMessages()
		e.signalQuit()
	} else {
		<-e.quitChannel
	}
	e.wg.Wait()
}

func (e *engine) Quit() {
	e.signalQuit()
}

// --- internal helpers ---

// signalQuit safely closes the quit channel exactly once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.mu.Lock()
		e.running = false
		e.mu.Unlock()
		close(e.quitChannel)
	})
}

// handle starts the tick and render goroutines.
func (e *engine) handle() {
	e.wg.Add(2)
	go e.handleEngine()
	go e.handleRender()
}

// handleEngine runs the frame pipeline at the tick rate until quit.
func (e *engine) handleEngine() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now
			e.Step(dt)
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

// handleRender presents the latest snapshot as fast as the frame limit allows.
func (e *engine) handleRender() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] render goroutine recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	lastRender := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		default:
		}

		frameStart := time.Now()
		lastRender = frameStart

		snap := e.Snapshot()
		if e.renderer != nil {
			e.renderer.Draw(renderer.Tint{
				Rotation:  snap.World.Rotation,
				Progress:  snap.Nav.Offset,
				CardAlpha: snap.Card.Alpha,
			})
		}

		// Observe runs under the same lock on the tick goroutine.
		e.mu.Lock()
		if e.profilingEnabled {
			e.profiler.Tick()
		}
		e.mu.Unlock()

		limit := e.renderFrameLimit
		if e.renderer == nil && limit == 0 {
			// Nothing blocks on vsync without a presenter.
			limit = headlessFrame
		}
		if limit > 0 {
			if remaining := limit - time.Since(lastRender); remaining > 0 {
				time.Sleep(remaining)
			}
		}
	}
}

// handleKey maps keyboard input onto host actions.
func (e *engine) handleKey(keyCode uint32) {
	if digit, ok := common.DigitKey(keyCode); ok {
		e.RequestSection(digit)
		return
	}
	switch keyCode {
	case common.KeyN:
		e.RequestSection(e.Snapshot().Nav.Effective() + 1)
	case common.KeyP:
		e.RequestSection(e.Snapshot().Nav.Effective() - 1)
	case common.KeyD:
		e.ToggleDetail()
	case common.KeyC:
		e.ClearRequest()
	}
}

// refreshTitle shows the effective section in the window title. Runs on the window thread.
func (e *engine) refreshTitle() {
	snap := e.Snapshot()
	effective := snap.Nav.Effective()
	if effective == e.shownTitle {
		return
	}
	e.shownTitle = effective
	entry := e.table.Entry(effective)
	e.window.SetTitle(fmt.Sprintf("%s | %d %s", e.baseTitle, effective, entry.Name))
}

func (e *engine) EnableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = false
}

func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Duration(float64(time.Second) / fps)

	e.mu.Lock()
	running := e.running
	e.mu.Unlock()

	if running {
		select {
		case e.tickRateChannel <- newRate:
		default:
			// Replace a pending rate change that was never consumed.
			select {
			case <-e.tickRateChannel:
			default:
			}
			e.tickRateChannel <- newRate
		}
	} else {
		e.engineTickRate = newRate
	}
}

func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
}
