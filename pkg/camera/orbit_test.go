package camera

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrbitCamera(t *testing.T) {
	target := mgl32.Vec3{1, 2, 3}
	cam := NewOrbitCamera(target, 5, 0.5, 0.1, 0.01)

	assert.Equal(t, float32(0), cam.Azimuth())
	assert.Equal(t, float32(0), cam.Elevation())
	assert.Equal(t, float32(5), cam.Distance())
	assert.Equal(t, target, cam.Target())
	assertVec3InDelta(t, mgl32.Vec3{6, 2, 3}, cam.Position(), epsilon)

	expected := mgl32.LookAtV(cam.Position(), target, mgl32.Vec3{0, 1, 0})
	assert.Equal(t, expected, cam.ViewMatrix())
}

func TestOrbitRotateZeroAndZoomClamp(t *testing.T) {
	cam := NewOrbitCamera(mgl32.Vec3{0, 0, 0}, 3, 0.05, 0.1, 0.01)

	cam.Rotate(0, 0)
	assertVec3InDelta(t, mgl32.Vec3{3, 0, 0}, cam.Position(), epsilon)

	cam.Zoom(200)
	assert.Equal(t, float32(1.0), cam.Distance())
	assertVec3InDelta(t, mgl32.Vec3{1, 0, 0}, cam.Position(), epsilon)
}

func TestOrbitZoomClampsToMax(t *testing.T) {
	cam := NewOrbitCamera(mgl32.Vec3{}, 50, 0.05, 1, 0.01)

	cam.Zoom(-1000)

	assert.Equal(t, float32(MaxDistance), cam.Distance())
}

func TestOrbitRotate(t *testing.T) {
	cam := NewOrbitCamera(mgl32.Vec3{}, 2, 1, 0.1, 0.01)

	// azimuth -= dx * speed
	cam.Rotate(-90, 0)

	assert.Equal(t, float32(90), cam.Azimuth())
	assertVec3InDelta(t, mgl32.Vec3{0, 0, 2}, cam.Position(), epsilon)

	cam.Rotate(0, -30)
	assert.Equal(t, float32(30), cam.Elevation())
	assertVec3InDelta(t, orbitEye(cam.Target(), 2, 90, 30), cam.Position(), epsilon)
}

func TestOrbitElevationClamp(t *testing.T) {
	tests := []struct {
		name     string
		deltaY   float32
		expected float32
	}{
		{"above pole", -1000, MaxElevation},
		{"below pole", 1000, MinElevation},
		{"within range", 20, -20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewOrbitCamera(mgl32.Vec3{}, 4, 1, 0.1, 0.01)
			cam.Rotate(0, tt.deltaY)
			assert.Equal(t, tt.expected, cam.Elevation())
		})
	}
}

func TestOrbitInvariantsHoldAfterRandomInput(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	cam := NewOrbitCamera(mgl32.Vec3{1, -1, 2}, 10, 0.7, 0.5, 0.05)

	for i := range 500 {
		dx := (rng.Float32()*2 - 1) * 400
		dy := (rng.Float32()*2 - 1) * 400
		switch i % 3 {
		case 0:
			cam.Rotate(dx, dy)
		case 1:
			cam.Zoom(dy)
		default:
			cam.Pan(dx, dy)
		}

		require.GreaterOrEqual(t, cam.Elevation(), float32(MinElevation))
		require.LessOrEqual(t, cam.Elevation(), float32(MaxElevation))
		require.GreaterOrEqual(t, cam.Distance(), float32(MinDistance))
		require.LessOrEqual(t, cam.Distance(), float32(MaxDistance))

		expected := orbitEye(cam.Target(), cam.Distance(), cam.Azimuth(), cam.Elevation())
		for j := range expected {
			require.InDelta(t, expected[j], cam.Position()[j], 1e-2,
				"step %d: eye %v does not match spherical formula %v", i, cam.Position(), expected)
		}
	}
}

func TestOrbitPanPreservesDistanceAndAngles(t *testing.T) {
	cam := NewOrbitCamera(mgl32.Vec3{0, 0, 0}, 6, 0.3, 0.1, 0.5)
	cam.Rotate(40, -25)
	azimuth, elevation := cam.Azimuth(), cam.Elevation()
	oldTarget := cam.Target()

	cam.Pan(3, -2)

	assert.Equal(t, azimuth, cam.Azimuth())
	assert.Equal(t, elevation, cam.Elevation())
	assert.NotEqual(t, oldTarget, cam.Target())
	assert.InDelta(t, 6, cam.Position().Sub(cam.Target()).Len(), 1e-4)
}

func TestOrbitPanDirection(t *testing.T) {
	// Eye on +X looking toward -X: right = cross(-X, +Y) = -Z
	cam := NewOrbitCamera(mgl32.Vec3{}, 5, 0.3, 0.1, 2)

	cam.Pan(1, 1)

	assertVec3InDelta(t, mgl32.Vec3{0, 2, -2}, cam.Target(), epsilon)
	assertVec3InDelta(t, mgl32.Vec3{5, 2, -2}, cam.Position(), epsilon)
}

func TestOrbitReset(t *testing.T) {
	target := mgl32.Vec3{3, 0, -1}
	cam := NewOrbitCamera(target, 8, 0.4, 0.2, 0.1)
	initialEye := cam.Position()
	initialView := cam.ViewMatrix()

	cam.Rotate(123, -45)
	cam.Zoom(7)
	cam.Pan(10, 4)
	cam.Rotate(-9, 300)

	cam.Reset()

	assert.Equal(t, float32(0), cam.Azimuth())
	assert.Equal(t, float32(0), cam.Elevation())
	assert.Equal(t, float32(8), cam.Distance())
	assert.Equal(t, target, cam.Target())
	assert.Equal(t, initialEye, cam.Position())
	assert.Equal(t, initialView, cam.ViewMatrix())
}

func TestCamerasSatisfyContract(t *testing.T) {
	cams := map[string]Camera{
		"first person": NewFirstPersonCamera(mgl32.Vec3{0, 0, 3}, 1, 0.1),
		"free look":    NewFreeLookCamera(mgl32.Vec3{0, 0, 3}, 1, 0.1),
		"orbit":        NewOrbitCamera(mgl32.Vec3{}, 3, 0.1, 0.1, 0.1),
	}

	for name, cam := range cams {
		t.Run(name, func(t *testing.T) {
			// The eye maps to the view-space origin
			eye := cam.Position()
			p := cam.ViewMatrix().Mul4x1(eye.Vec4(1))
			assert.InDelta(t, 0, p.Vec3().Len(), 1e-4)
		})
	}

	_, ok := cams["first person"].(Resetter)
	assert.False(t, ok)
	_, ok = cams["free look"].(Resetter)
	assert.True(t, ok)
	_, ok = cams["orbit"].(Resetter)
	assert.True(t, ok)
}
