package control

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/leterax/go-viewer/pkg/camera"
)

func newTestState(mode Mode) *State {
	return NewState(
		camera.NewFreeLookCamera(mgl32.Vec3{0, 0, 3}, 1, 1),
		camera.NewFirstPersonCamera(mgl32.Vec3{0, 0, 3}, 1, 1),
		camera.NewOrbitCamera(mgl32.Vec3{}, 3, 1, 0.5, 0.1),
		mode,
	)
}

func held(intents ...Intent) KeyState {
	return KeyStateFunc(func(i Intent) bool {
		for _, h := range intents {
			if h == i {
				return true
			}
		}
		return false
	})
}

func TestActiveFollowsMode(t *testing.T) {
	s := newTestState(ModeFreeLook)
	assert.Same(t, s.FreeLook, s.Active())

	s.SetMode(ModeFirstPerson)
	assert.Same(t, s.FirstPerson, s.Active())

	assert.Equal(t, ModeOrbit, s.CycleMode())
	assert.Same(t, s.Orbit, s.Active())

	s.SetMode(Mode(42))
	assert.Equal(t, ModeOrbit, s.Mode())
}

func TestApplyMovementOnlyMovesActiveLookCamera(t *testing.T) {
	s := newTestState(ModeFirstPerson)

	s.ApplyMovement(held(IntentForward))

	assert.InDelta(t, 2.9, s.FirstPerson.Position().Z(), 1e-5)
	assert.Equal(t, mgl32.Vec3{0, 0, 3}, s.FreeLook.Position())
}

func TestApplyMovementOppositeIntentsCancel(t *testing.T) {
	s := newTestState(ModeFreeLook)

	s.ApplyMovement(held(IntentForward, IntentBackward, IntentLeft, IntentRight))

	pos := s.FreeLook.Position()
	assert.InDelta(t, 0, pos.X(), 1e-5)
	assert.InDelta(t, 3, pos.Z(), 1e-5)
}

func TestApplyMovementIgnoredInOrbit(t *testing.T) {
	s := newTestState(ModeOrbit)
	eye := s.Orbit.Position()

	s.ApplyMovement(held(IntentForward, IntentLeft))

	assert.Equal(t, eye, s.Orbit.Position())
}

func TestCursorFirstSampleOnlyPrimes(t *testing.T) {
	s := newTestState(ModeFreeLook)
	s.SetLooking(true)

	s.CursorMoved(500, 500)

	assert.Equal(t, camera.InitialViewDirection, s.FreeLook.ViewDirection())
}

func TestCursorLookIsNegated(t *testing.T) {
	s := newTestState(ModeFreeLook)
	s.SetLooking(true)

	s.CursorMoved(100, 100)
	// Mouse right by 90 px at sensitivity 1 turns the view right, toward +X
	s.CursorMoved(190, 100)

	dir := s.FreeLook.ViewDirection()
	assert.InDelta(t, 1, dir.X(), 1e-5)
	assert.InDelta(t, 0, dir.Z(), 1e-5)
}

func TestCursorLookRequiresLooking(t *testing.T) {
	s := newTestState(ModeFirstPerson)

	s.CursorMoved(0, 0)
	s.CursorMoved(40, 40)

	assert.Equal(t, camera.InitialViewDirection, s.FirstPerson.ViewDirection())
}

func TestCursorOrbitRotate(t *testing.T) {
	s := newTestState(ModeOrbit)
	s.SetRotating(true)

	s.CursorMoved(10, 10)
	s.CursorMoved(20, 15)

	// Rotate(-10, -5) with rotation speed 1
	assert.Equal(t, float32(10), s.Orbit.Azimuth())
	assert.Equal(t, float32(5), s.Orbit.Elevation())
}

func TestCursorOrbitPan(t *testing.T) {
	s := newTestState(ModeOrbit)
	s.SetPanning(true)

	s.CursorMoved(0, 0)
	s.CursorMoved(0, -10)

	// Pan(0, -10) * 0.1 moves the target down one unit
	target := s.Orbit.Target()
	assert.InDelta(t, -1, target.Y(), 1e-5)
	assert.Equal(t, float32(0), s.Orbit.Azimuth())
}

func TestCursorWithoutDragLeavesOrbit(t *testing.T) {
	s := newTestState(ModeOrbit)
	eye := s.Orbit.Position()

	s.CursorMoved(0, 0)
	s.CursorMoved(50, 50)

	assert.Equal(t, eye, s.Orbit.Position())
}

func TestSetModeClearsDrag(t *testing.T) {
	s := newTestState(ModeOrbit)
	s.SetRotating(true)
	s.CursorMoved(0, 0)

	s.SetMode(ModeFreeLook)
	s.SetMode(ModeOrbit)
	s.CursorMoved(100, 100)
	s.CursorMoved(200, 200)

	assert.Equal(t, float32(0), s.Orbit.Azimuth())
}

func TestScrolled(t *testing.T) {
	s := newTestState(ModeFreeLook)
	assert.False(t, s.Scrolled(1))

	s.SetMode(ModeOrbit)
	assert.True(t, s.Scrolled(2))
	assert.Equal(t, float32(2), s.Orbit.Distance())
}

func TestReset(t *testing.T) {
	s := newTestState(ModeFreeLook)
	s.ApplyMovement(held(IntentForward))
	assert.True(t, s.Reset())
	assert.Equal(t, mgl32.Vec3{0, 0, 3}, s.FreeLook.Position())

	s.SetMode(ModeFirstPerson)
	s.ApplyMovement(held(IntentForward))
	assert.False(t, s.Reset())
	assert.NotEqual(t, mgl32.Vec3{0, 0, 3}, s.FirstPerson.Position())

	s.SetMode(ModeOrbit)
	s.Scrolled(2)
	assert.True(t, s.Reset())
	assert.Equal(t, float32(3), s.Orbit.Distance())
}
