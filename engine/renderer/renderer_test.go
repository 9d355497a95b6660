package renderer

import (
	"math"
	"sync"
	"testing"

	"github.com/Carmen-Shannon/oxy-scroll/common"
)

// fakeBackend records calls without touching a GPU.
type fakeBackend struct {
	fail    bool
	clears  []Color
	ends    int
	present int
}

func (f *fakeBackend) ConfigureSurface(width, height int) {}
func (f *fakeBackend) SetPresentMode(mode PresentMode)    {}
func (f *fakeBackend) Release()                           {}
func (f *fakeBackend) EndFrame()                          { f.ends++ }
func (f *fakeBackend) Present()                           { f.present++ }
func (f *fakeBackend) BeginFrame(clear Color) error {
	if f.fail {
		return errTest
	}
	f.clears = append(f.clears, clear)
	return nil
}

type testError string

func (e testError) Error() string { return string(e) }

const errTest = testError("no surface")

func newTestRenderer(b RendererBackend) *renderer {
	return &renderer{mu: &sync.Mutex{}, backend: b, palette: DefaultPalette()}
}

func TestClearColorFollowsRotation(t *testing.T) {
	palette := []Color{{R: 1, A: 1}, {G: 1, A: 1}}

	if c := ClearColor(palette, Tint{}); c.R != 1 || c.G != 0 {
		t.Fatalf("ClearColor at 0 = %+v, want the first color", c)
	}
	c := ClearColor(palette, Tint{Rotation: common.Radians(90)})
	if math.Abs(c.R-0.5) > 1e-6 || math.Abs(c.G-0.5) > 1e-6 {
		t.Fatalf("ClearColor at 90° = %+v, want an even blend", c)
	}
	c = ClearColor(palette, Tint{Rotation: common.Radians(180)})
	if math.Abs(c.G-1) > 1e-6 {
		t.Fatalf("ClearColor at 180° = %+v, want the second color", c)
	}
}

func TestClearColorDimsBehindCards(t *testing.T) {
	bare := ClearColor(nil, Tint{})
	dimmed := ClearColor(nil, Tint{CardAlpha: 1})
	if dimmed.B >= bare.B {
		t.Fatalf("card did not dim the background: %+v vs %+v", dimmed, bare)
	}
	if dimmed.A != bare.A {
		t.Fatal("dimming changed alpha")
	}
}

func TestDrawSkipsUnavailableSurface(t *testing.T) {
	b := &fakeBackend{}
	r := newTestRenderer(b)

	if !r.Draw(Tint{}) {
		t.Fatal("Draw failed with a healthy backend")
	}
	b.fail = true
	if r.Draw(Tint{}) {
		t.Fatal("Draw reported success without a surface")
	}

	presented, skipped := r.Stats()
	if presented != 1 || skipped != 1 {
		t.Fatalf("Stats() = %d, %d; want 1, 1", presented, skipped)
	}
	if b.ends != 1 || b.present != 1 {
		t.Fatalf("backend ends/presents = %d/%d, want 1/1", b.ends, b.present)
	}
}
