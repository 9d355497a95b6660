package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestPoseLerpEndpoints(t *testing.T) {
	a := NewPose(0, 0, 10, 0, 0, 0)
	b := NewPose(4, 2, 6, 1, 1, -1)

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp at 0 = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp at 1 = %v, want %v", got, b)
	}
	mid := a.Lerp(b, 0.5)
	if !mid.ApproxEqual(NewPose(2, 1, 8, 0.5, 0.5, -0.5), 1e-6) {
		t.Errorf("Lerp at 0.5 = %v", mid)
	}
}

func TestPoseDampConverges(t *testing.T) {
	p := NewPose(0, 0, 0, 0, 0, 0)
	target := NewPose(5, 5, 5, 1, 1, 1)
	for i := 0; i < 600; i++ {
		p = p.Damp(target, 6, 1.0/60)
	}
	if !p.ApproxEqual(target, 1e-3) {
		t.Errorf("expected damped pose to reach %v, got %v", target, p)
	}
}

func TestPoseOffsetAndDistance(t *testing.T) {
	p := NewPose(1, 2, 3, 0, 0, 0)
	moved := p.Offset(mgl32.Vec3{1, 0, 0})
	if moved.Target != p.Target {
		t.Error("Offset moved the target")
	}
	if got := p.Distance(moved); !near(got, 1, 1e-6) {
		t.Errorf("Distance = %v, want 1", got)
	}
	if !p.IsFinite() {
		t.Error("finite pose reported as non-finite")
	}
}
