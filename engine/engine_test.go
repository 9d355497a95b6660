package engine

import (
	"io"
	"log"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-scroll/common"
	"github.com/Carmen-Shannon/oxy-scroll/engine/navigator"
	"github.com/Carmen-Shannon/oxy-scroll/engine/orientation"
)

const step = float32(1.0 / 60.0)

func quietEngine(options ...EngineBuilderOption) *engine {
	discard := log.New(io.Discard, "", 0)
	base := []EngineBuilderOption{
		WithNavigatorOptions(navigator.WithLogger(discard)),
		WithOrientationOptions(orientation.WithLogger(discard)),
	}
	return NewEngine(append(base, options...)...).(*engine)
}

func stepUntil(e Engine, frames int, done func(Snapshot) bool) (Snapshot, bool) {
	var s Snapshot
	for i := 0; i < frames; i++ {
		s = e.Step(step)
		if done(s) {
			return s, true
		}
	}
	return s, false
}

func TestRequestCompletesAndClears(t *testing.T) {
	e := quietEngine()
	e.RequestSection(11)

	s, ok := stepUntil(e, 600, func(s Snapshot) bool { return s.Nav.Completed })
	if !ok {
		t.Fatalf("navigation never completed, last mode %v", s.Nav.Mode)
	}
	if s.Nav.Section != 11 {
		t.Errorf("expected section 11 after completion, got %d", s.Nav.Section)
	}
	want := e.table.OffsetFromSection(11)
	if got := e.Container().Offset(); got < want-1e-3 || got > want+1e-3 {
		t.Errorf("expected container offset %.4f, got %.4f", want, got)
	}
	if e.request != navigator.NoRequest {
		t.Errorf("expected request cleared after completion, got %d", e.request)
	}

	// The settled request must not restart an episode.
	s = e.Step(step)
	if s.Nav.Mode == navigator.ModeForced {
		t.Error("completed request started a second navigation")
	}
}

func TestOrientationFollowsTarget(t *testing.T) {
	e := quietEngine()
	e.RequestSection(12)

	var started bool
	_, ok := stepUntil(e, 600, func(s Snapshot) bool {
		if s.World.Started {
			started = true
			if s.World.Group != e.table.MajorGroup(12) {
				t.Errorf("turn started toward group %d, want %d", s.World.Group, e.table.MajorGroup(12))
			}
		}
		return s.Nav.Completed
	})
	if !ok {
		t.Fatal("navigation never completed")
	}
	if !started {
		t.Error("world turn never started during navigation")
	}
	if got := e.Camera().WorldRotation(); got != e.Orientation().State().Rotation {
		t.Errorf("camera rotation %.3f does not match orientation %.3f", got, e.Orientation().State().Rotation)
	}
}

func TestDetailInterruptsNavigation(t *testing.T) {
	e := quietEngine()
	e.RequestSection(13)
	stepUntil(e, 10, func(Snapshot) bool { return false })

	e.SetDetail(true)
	s := e.Step(step)
	if !s.Nav.Interrupted {
		t.Fatal("expected Interrupted on the frame detail opened")
	}
	if s.Nav.Mode != navigator.ModeDetail {
		t.Errorf("expected detail mode, got %v", s.Nav.Mode)
	}
	if s.Card.Visible() {
		t.Error("card visible during detail override")
	}

	e.ToggleDetail()
	s = e.Step(step)
	if s.Nav.Mode == navigator.ModeForced || s.Nav.Mode == navigator.ModeDetail {
		t.Errorf("interrupted request resumed after detail closed, mode %v", s.Nav.Mode)
	}
}

func TestWheelMovesOffset(t *testing.T) {
	e := quietEngine()
	e.Wheel(-10)

	s, _ := stepUntil(e, 240, func(s Snapshot) bool { return !e.Container().Scrolling() })
	if s.Nav.Offset <= 0 {
		t.Fatalf("expected positive offset after scrolling down, got %.4f", s.Nav.Offset)
	}
	if s.Nav.Section == 0 {
		t.Error("expected to leave the first section")
	}
}

func TestUnmountedContainerStillCompletes(t *testing.T) {
	e := quietEngine()
	e.MountContainer(false)
	e.RequestSection(4)

	if _, ok := stepUntil(e, 600, func(s Snapshot) bool { return s.Nav.Completed }); !ok {
		t.Fatal("navigation stalled with an unmounted container")
	}
	if got := e.Container().Offset(); got != 0 {
		t.Errorf("unmounted container was written to, offset %.4f", got)
	}
	e.MountContainer(true)
	if !e.Container().Mounted() {
		t.Error("expected container mounted again")
	}
}

func TestSubscribe(t *testing.T) {
	e := quietEngine()
	var frames []uint64
	unsubscribe := e.Subscribe(func(s Snapshot) { frames = append(frames, s.Nav.Frame) })

	e.Step(step)
	e.Step(step)
	unsubscribe()
	e.Step(step)

	if len(frames) != 2 || frames[0] != 1 || frames[1] != 2 {
		t.Errorf("expected frames [1 2], got %v", frames)
	}
	if got := e.Snapshot().Nav.Frame; got != 3 {
		t.Errorf("expected snapshot frame 3, got %d", got)
	}
}

func TestHandleKey(t *testing.T) {
	e := quietEngine()

	e.handleKey(common.Key0 + 3)
	if e.request != 3 {
		t.Errorf("digit 3 requested %d", e.request)
	}
	e.handleKey(common.KeyC)
	if e.request != navigator.NoRequest {
		t.Errorf("clear left request %d", e.request)
	}
	e.handleKey(common.KeyN)
	if e.request != 1 {
		t.Errorf("next from section 0 requested %d", e.request)
	}
	e.handleKey(common.KeyP)
	if e.request != 0 {
		t.Errorf("previous from section 0 requested %d, want clamp to 0", e.request)
	}
	e.handleKey(common.KeyD)
	if !e.detail {
		t.Error("D did not toggle detail on")
	}
}

func TestRunHeadlessQuit(t *testing.T) {
	e := quietEngine(WithTickRate(240))
	ticked := make(chan struct{}, 1)
	e.Subscribe(func(Snapshot) {
		select {
		case ticked <- struct{}{}:
		default:
		}
	})

	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()

	select {
	case <-ticked:
	case <-time.After(2 * time.Second):
		t.Fatal("no frame stepped within 2s")
	}

	e.Quit()
	e.Quit()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Quit")
	}
}
