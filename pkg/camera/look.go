package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// lookPose is the direction-vector pose shared by the first-person and free-look cameras.
// It holds no Euler angles: mouse look rotates the view direction in place.
type lookPose struct {
	eye           mgl32.Vec3
	viewDirection mgl32.Vec3
	up            mgl32.Vec3

	movementSpeed float32 // world units per Move* call
	sensitivity   float32 // degrees per unit of mouse delta
}

func newLookPose(position mgl32.Vec3, movementSpeed, sensitivity float32) lookPose {
	return lookPose{
		eye:           position,
		viewDirection: InitialViewDirection,
		up:            WorldUp,
		movementSpeed: movementSpeed / MovementSpeedScale,
		sensitivity:   sensitivity,
	}
}

// ViewMatrix returns the look-at transform from the eye along the view direction
func (p *lookPose) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(p.eye, p.eye.Add(p.viewDirection), p.up)
}

// Position returns the current eye position
func (p *lookPose) Position() mgl32.Vec3 {
	return p.eye
}

// ViewDirection returns the current view direction
func (p *lookPose) ViewDirection() mgl32.Vec3 {
	return p.viewDirection
}

// Up returns the camera's up vector
func (p *lookPose) Up() mgl32.Vec3 {
	return p.up
}

// MovementSpeed returns the scaled per-call displacement
func (p *lookPose) MovementSpeed() float32 {
	return p.movementSpeed
}

// Sensitivity returns the mouse-look sensitivity in degrees per input unit
func (p *lookPose) Sensitivity() float32 {
	return p.sensitivity
}

// MoveForward moves the eye along the view direction.
// There is no frame-time scaling: one call is one step.
func (p *lookPose) MoveForward() {
	p.eye = p.eye.Add(p.viewDirection.Mul(p.movementSpeed))
}

// MoveBackward moves the eye against the view direction
func (p *lookPose) MoveBackward() {
	p.eye = p.eye.Sub(p.viewDirection.Mul(p.movementSpeed))
}

// MoveRight strafes along cross(viewDirection, up).
// The cross product is not renormalized, so strafe speed drifts with the
// orthogonality of viewDirection and up.
func (p *lookPose) MoveRight() {
	p.eye = p.eye.Add(p.viewDirection.Cross(p.up).Mul(p.movementSpeed))
}

// MoveLeft strafes against cross(viewDirection, up)
func (p *lookPose) MoveLeft() {
	p.eye = p.eye.Sub(p.viewDirection.Cross(p.up).Mul(p.movementSpeed))
}

// MouseLook turns the view direction by a mouse delta.
// Yaw (delta.X) is applied around up first, then pitch (delta.Y) around the right
// vector taken before the yaw. Pitch is not clamped.
func (p *lookPose) MouseLook(delta mgl32.Vec2) {
	right := p.viewDirection.Cross(p.up)
	p.viewDirection = rotateAround(p.viewDirection, delta.X()*p.sensitivity, p.up)
	p.viewDirection = rotateAround(p.viewDirection, delta.Y()*p.sensitivity, right)
}
