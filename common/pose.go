package common

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Pose is the unit of camera state: a world-space position and the point it looks at.
type Pose struct {
	// Position is the camera eye in world space.
	Position mgl32.Vec3
	// Target is the look-at point in world space.
	Target mgl32.Vec3
}

// NewPose builds a Pose from six scalars.
//
// Parameters:
//   - x, y, z: camera position
//   - lx, ly, lz: look-at target
//
// Returns:
//   - Pose: the assembled pose
func NewPose(x, y, z, lx, ly, lz float32) Pose {
	return Pose{Position: mgl32.Vec3{x, y, z}, Target: mgl32.Vec3{lx, ly, lz}}
}

// Lerp interpolates every axis of p toward q independently.
//
// Parameters:
//   - q: the end pose
//   - t: interpolation factor (0 = p, 1 = q)
//
// Returns:
//   - Pose: the interpolated pose
func (p Pose) Lerp(q Pose, t float32) Pose {
	var out Pose
	for i := 0; i < 3; i++ {
		out.Position[i] = Lerp(p.Position[i], q.Position[i], t)
		out.Target[i] = Lerp(p.Target[i], q.Target[i], t)
	}
	return out
}

// Damp advances p toward q using frame-rate independent exponential decay on every axis.
//
// Parameters:
//   - q: the pose being approached
//   - rate: decay constant in 1/s
//   - dt: frame delta in seconds
//
// Returns:
//   - Pose: the advanced pose
func (p Pose) Damp(q Pose, rate, dt float32) Pose {
	return p.Lerp(q, DampFactor(rate, dt))
}

// Offset returns p with its position translated by d; the target is left alone.
func (p Pose) Offset(d mgl32.Vec3) Pose {
	p.Position = p.Position.Add(d)
	return p
}

// Distance measures camera travel between two poses: the eye distance plus the look-at distance.
//
// Parameters:
//   - q: the other pose
//
// Returns:
//   - float32: combined travel in world units
func (p Pose) Distance(q Pose) float32 {
	return p.Position.Sub(q.Position).Len() + p.Target.Sub(q.Target).Len()
}

// ApproxEqual reports whether every axis of p is within tol of q.
//
// Parameters:
//   - q: the other pose
//   - tol: per-axis tolerance
//
// Returns:
//   - bool: true if the poses match within tol
func (p Pose) ApproxEqual(q Pose, tol float32) bool {
	for i := 0; i < 3; i++ {
		if abs(p.Position[i]-q.Position[i]) > tol || abs(p.Target[i]-q.Target[i]) > tol {
			return false
		}
	}
	return true
}

// IsFinite reports whether every component of p is a finite number.
func (p Pose) IsFinite() bool {
	for i := 0; i < 3; i++ {
		if !IsFinite(p.Position[i]) || !IsFinite(p.Target[i]) {
			return false
		}
	}
	return true
}

func (p Pose) String() string {
	return fmt.Sprintf("pos(%.2f, %.2f, %.2f) look(%.2f, %.2f, %.2f)",
		p.Position[0], p.Position[1], p.Position[2], p.Target[0], p.Target[1], p.Target[2])
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
