package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// FirstPersonCamera is a flying camera driven by forward/strafe movement and mouse look.
// It always starts looking down the negative Z axis and has no reset.
type FirstPersonCamera struct {
	lookPose
}

// NewFirstPersonCamera creates a first-person camera at position.
// movementSpeed is scaled by 1/MovementSpeedScale; sensitivity is in degrees per input unit.
func NewFirstPersonCamera(position mgl32.Vec3, movementSpeed, sensitivity float32) *FirstPersonCamera {
	return &FirstPersonCamera{
		lookPose: newLookPose(position, movementSpeed, sensitivity),
	}
}
