// Package camera implements the interchangeable camera models used by the viewer.
// Every camera turns continuous user input (mouse deltas, scroll, held movement keys)
// into a view transform and reports its world-space eye position.
//
// Cameras are not safe for concurrent use. They are owned and mutated by the render
// loop, which must apply all pending input before querying ViewMatrix for a frame.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is the render-time contract shared by all camera models.
// Both methods are pure queries and always reflect the latest mutated pose.
type Camera interface {
	// ViewMatrix returns the world-to-view look-at transform.
	ViewMatrix() mgl32.Mat4
	// Position returns the world-space eye position.
	Position() mgl32.Vec3
}

// Resetter is implemented by cameras that can return to their construction-time pose.
type Resetter interface {
	Reset()
}

// Compile-time interface compliance checks
var (
	_ Camera   = (*FirstPersonCamera)(nil)
	_ Camera   = (*FreeLookCamera)(nil)
	_ Camera   = (*OrbitCamera)(nil)
	_ Resetter = (*FreeLookCamera)(nil)
	_ Resetter = (*OrbitCamera)(nil)
)

var (
	// WorldUp is the fixed up vector of every camera (Y-up coordinate system)
	WorldUp = mgl32.Vec3{0, 1, 0}
	// InitialViewDirection is the direction look cameras face after construction
	InitialViewDirection = mgl32.Vec3{0, 0, -1}
)

// rotateAround rotates v by angle degrees around axis, following the right-hand rule.
// A degenerate (zero-length) axis leaves v unchanged.
func rotateAround(v mgl32.Vec3, degrees float32, axis mgl32.Vec3) mgl32.Vec3 {
	if axis.Len() == 0 {
		return v
	}
	return mgl32.QuatRotate(mgl32.DegToRad(degrees), axis.Normalize()).Rotate(v)
}
