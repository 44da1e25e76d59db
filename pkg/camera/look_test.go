package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-5

func assertVec3InDelta(t *testing.T, expected, actual mgl32.Vec3, delta float64) {
	t.Helper()
	for i := range expected {
		assert.InDelta(t, expected[i], actual[i], delta, "component %d of %v vs %v", i, expected, actual)
	}
}

func TestNewFirstPersonCamera(t *testing.T) {
	cam := NewFirstPersonCamera(mgl32.Vec3{1, 2, 3}, 5, 0.25)

	assert.Equal(t, mgl32.Vec3{1, 2, 3}, cam.Position())
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, cam.ViewDirection())
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, cam.Up())
	assert.InDelta(t, 0.5, cam.MovementSpeed(), epsilon)
	assert.Equal(t, float32(0.25), cam.Sensitivity())

	expected := mgl32.LookAtV(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 2, 2}, mgl32.Vec3{0, 1, 0})
	assert.Equal(t, expected, cam.ViewMatrix())
}

func TestFirstPersonMoveForward(t *testing.T) {
	cam := NewFirstPersonCamera(mgl32.Vec3{0, 0, 3}, 1, 0.1)

	cam.MoveForward()

	assertVec3InDelta(t, mgl32.Vec3{0, 0, 3 - cam.MovementSpeed()}, cam.Position(), epsilon)
}

func TestMoveForwardBackwardAreInverses(t *testing.T) {
	cam := NewFirstPersonCamera(mgl32.Vec3{4, -2, 7}, 3, 0.2)
	cam.MouseLook(mgl32.Vec2{37, -12})
	before := cam.Position()

	cam.MoveForward()
	assert.NotEqual(t, before, cam.Position())
	cam.MoveBackward()

	assertVec3InDelta(t, before, cam.Position(), epsilon)
}

func TestStrafe(t *testing.T) {
	cam := NewFreeLookCamera(mgl32.Vec3{0, 0, 0}, 10, 0.1)

	// cross((0,0,-1), (0,1,0)) is +X
	cam.MoveRight()
	assertVec3InDelta(t, mgl32.Vec3{1, 0, 0}, cam.Position(), epsilon)

	cam.MoveLeft()
	cam.MoveLeft()
	assertVec3InDelta(t, mgl32.Vec3{-1, 0, 0}, cam.Position(), epsilon)
}

func TestMouseLookYaw(t *testing.T) {
	cam := NewFirstPersonCamera(mgl32.Vec3{}, 1, 1)

	// Positive yaw turns counter-clockwise around +Y: -Z swings to -X
	cam.MouseLook(mgl32.Vec2{90, 0})

	assertVec3InDelta(t, mgl32.Vec3{-1, 0, 0}, cam.ViewDirection(), epsilon)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, cam.Up())
}

func TestMouseLookPitch(t *testing.T) {
	cam := NewFirstPersonCamera(mgl32.Vec3{}, 1, 0.5)

	// Right is +X; positive pitch lifts the view toward +Y
	cam.MouseLook(mgl32.Vec2{0, 90})

	assertVec3InDelta(t, mgl32.Vec3{0, 0.70710677, -0.70710677}, cam.ViewDirection(), epsilon)
}

func TestMouseLookPitchUsesPreYawRightVector(t *testing.T) {
	cam := NewFirstPersonCamera(mgl32.Vec3{}, 1, 1)

	// Yaw 90 turns the view to -X. The pitch axis is still the pre-yaw right
	// vector (+X), so the pitch rotation leaves the -X direction untouched.
	cam.MouseLook(mgl32.Vec2{90, 45})

	assertVec3InDelta(t, mgl32.Vec3{-1, 0, 0}, cam.ViewDirection(), epsilon)
}

func TestMouseLookDoesNotClampPitch(t *testing.T) {
	cam := NewFirstPersonCamera(mgl32.Vec3{}, 1, 1)

	cam.MouseLook(mgl32.Vec2{0, 180})

	assertVec3InDelta(t, mgl32.Vec3{0, 0, 1}, cam.ViewDirection(), epsilon)
}

func TestMouseLookZeroDeltaIsNoop(t *testing.T) {
	cam := NewFreeLookCamera(mgl32.Vec3{1, 1, 1}, 1, 0.3)

	cam.MouseLook(mgl32.Vec2{})

	assertVec3InDelta(t, InitialViewDirection, cam.ViewDirection(), epsilon)
}

func TestFreeLookReset(t *testing.T) {
	start := mgl32.Vec3{2, 3, 4}
	cam := NewFreeLookCamera(start, 2, 0.2)
	initialView := cam.ViewMatrix()

	for range 10 {
		cam.MouseLook(mgl32.Vec2{13, -7})
		cam.MoveForward()
		cam.MoveRight()
	}
	assert.NotEqual(t, start, cam.Position())

	cam.Reset()

	assert.Equal(t, start, cam.Position())
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, cam.ViewDirection())
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, cam.Up())
	assert.Equal(t, initialView, cam.ViewMatrix())
}

func TestQueriesHaveNoSideEffects(t *testing.T) {
	cam := NewFreeLookCamera(mgl32.Vec3{0, 1, 5}, 1, 0.1)
	cam.MouseLook(mgl32.Vec2{5, 5})

	first := cam.ViewMatrix()
	pos := cam.Position()
	for range 3 {
		assert.Equal(t, first, cam.ViewMatrix())
		assert.Equal(t, pos, cam.Position())
	}
}

func TestRotateAroundDegenerateAxis(t *testing.T) {
	v := mgl32.Vec3{1, 2, 3}
	assert.Equal(t, v, rotateAround(v, 45, mgl32.Vec3{}))
}
