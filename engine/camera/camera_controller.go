package camera

import (
	"github.com/Carmen-Shannon/oxy-scroll/common"
)

// CameraController holds the live camera pose. The navigator is the only writer: each frame the
// engine copies the navigator's resolved pose in with SetPose, and the Camera reads it back when it
// rebuilds its matrices.
type CameraController interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: world-space camera position
	Position() (x, y, z float32)

	// Target returns the look-at point.
	//
	// Returns:
	//   - x, y, z: world-space target position
	Target() (x, y, z float32)

	// Pose returns the full live pose.
	//
	// Returns:
	//   - common.Pose: position and look-at target
	Pose() common.Pose

	// SetPose replaces the live pose. Non-finite poses are ignored.
	//
	// Parameters:
	//   - pose: the new pose
	SetPose(pose common.Pose)
}
