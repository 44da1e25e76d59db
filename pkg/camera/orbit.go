package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// OrbitCamera circles a target point. Its pose is the spherical parameter set
// (target, azimuth, elevation, distance); the eye is derived from it after every
// mutation and is never set directly, except by Pan which translates target and
// eye together.
type OrbitCamera struct {
	eye    mgl32.Vec3
	target mgl32.Vec3
	up     mgl32.Vec3

	// Angles in degrees
	azimuth   float32
	elevation float32
	distance  float32

	rotationSpeed float32
	zoomSpeed     float32
	panSpeed      float32

	initDistance float32
	initTarget   mgl32.Vec3
}

// NewOrbitCamera creates an orbit camera looking at target from distance.
// Azimuth and elevation start at zero, which places the eye on the target's +X side.
func NewOrbitCamera(target mgl32.Vec3, distance, rotationSpeed, zoomSpeed, panSpeed float32) *OrbitCamera {
	c := &OrbitCamera{
		target:        target,
		up:            WorldUp,
		distance:      distance,
		rotationSpeed: rotationSpeed,
		zoomSpeed:     zoomSpeed,
		panSpeed:      panSpeed,
		initDistance:  distance,
		initTarget:    target,
	}
	c.updateEye()
	return c
}

// updateEye recomputes the eye from target, distance, azimuth and elevation.
// Must be called by every mutator that changes one of them.
func (c *OrbitCamera) updateEye() {
	c.eye = orbitEye(c.target, c.distance, c.azimuth, c.elevation)
}

// orbitEye converts spherical orbit parameters (degrees) to a world-space eye position
func orbitEye(target mgl32.Vec3, distance, azimuth, elevation float32) mgl32.Vec3 {
	azimuthRad := float64(mgl32.DegToRad(azimuth))
	elevationRad := float64(mgl32.DegToRad(elevation))

	return mgl32.Vec3{
		target.X() + distance*float32(math.Cos(elevationRad))*float32(math.Cos(azimuthRad)),
		target.Y() + distance*float32(math.Sin(elevationRad)),
		target.Z() + distance*float32(math.Cos(elevationRad))*float32(math.Sin(azimuthRad)),
	}
}

// ViewMatrix returns the look-at transform from the eye to the target
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.eye, c.target, c.up)
}

// Position returns the derived eye position
func (c *OrbitCamera) Position() mgl32.Vec3 {
	return c.eye
}

// Target returns the orbit pivot
func (c *OrbitCamera) Target() mgl32.Vec3 {
	return c.target
}

// Azimuth returns the horizontal orbit angle in degrees. It is not normalized.
func (c *OrbitCamera) Azimuth() float32 {
	return c.azimuth
}

// Elevation returns the vertical orbit angle in degrees
func (c *OrbitCamera) Elevation() float32 {
	return c.elevation
}

// Distance returns the eye-to-target distance
func (c *OrbitCamera) Distance() float32 {
	return c.distance
}

// Rotate orbits the eye around the target. Elevation is clamped to
// [MinElevation, MaxElevation]; azimuth wraps through trigonometric periodicity.
func (c *OrbitCamera) Rotate(deltaX, deltaY float32) {
	c.azimuth -= deltaX * c.rotationSpeed
	c.elevation -= deltaY * c.rotationSpeed

	c.elevation = mgl32.Clamp(c.elevation, MinElevation, MaxElevation)

	c.updateEye()
}

// Zoom moves the eye toward (positive delta) or away from the target.
// Distance is clamped to [MinDistance, MaxDistance].
func (c *OrbitCamera) Zoom(delta float32) {
	c.distance -= delta * c.zoomSpeed

	c.distance = mgl32.Clamp(c.distance, MinDistance, MaxDistance)

	c.updateEye()
}

// Pan slides the target and the eye by the same vector in the camera's
// right/up plane, so distance and angles are unchanged.
func (c *OrbitCamera) Pan(deltaX, deltaY float32) {
	viewDirection := c.target.Sub(c.eye).Normalize()
	right := viewDirection.Cross(c.up).Normalize()

	translation := right.Mul(deltaX).Add(c.up.Mul(deltaY)).Mul(c.panSpeed)

	c.target = c.target.Add(translation)
	c.eye = c.eye.Add(translation)
}

// Reset restores the construction-time target and distance and zeroes both angles
func (c *OrbitCamera) Reset() {
	c.azimuth = 0
	c.elevation = 0
	c.distance = c.initDistance
	c.target = c.initTarget
	c.updateEye()
}
