package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// FreeLookCamera behaves like FirstPersonCamera but remembers its starting
// position so it can be reset.
type FreeLookCamera struct {
	lookPose

	initEye mgl32.Vec3
}

// NewFreeLookCamera creates a free-look camera at position
func NewFreeLookCamera(position mgl32.Vec3, movementSpeed, sensitivity float32) *FreeLookCamera {
	return &FreeLookCamera{
		lookPose: newLookPose(position, movementSpeed, sensitivity),
		initEye:  position,
	}
}

// Reset restores the construction-time eye and the initial view direction and up vector
func (c *FreeLookCamera) Reset() {
	c.eye = c.initEye
	c.viewDirection = InitialViewDirection
	c.up = WorldUp
}
