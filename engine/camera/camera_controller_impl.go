package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-scroll/common"
)

type cameraControllerImpl struct {
	mu   *sync.Mutex
	pose common.Pose
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a controller holding the given initial pose.
//
// Parameters:
//   - initial: the pose before the first frame
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(initial common.Pose) CameraController {
	cc := &cameraControllerImpl{
		mu:   &sync.Mutex{},
		pose: initial,
	}
	if !initial.IsFinite() {
		cc.pose = common.Pose{}
	}
	return cc
}

func (cc *cameraControllerImpl) Position() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pose.Position.Elem()
}

func (cc *cameraControllerImpl) Target() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pose.Target.Elem()
}

func (cc *cameraControllerImpl) Pose() common.Pose {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pose
}

func (cc *cameraControllerImpl) SetPose(pose common.Pose) {
	if !pose.IsFinite() {
		return
	}
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.pose = pose
}
