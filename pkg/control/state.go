package control

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-viewer/pkg/camera"
)

// lookCamera is the movement and mouse-look surface shared by the first-person
// and free-look cameras
type lookCamera interface {
	camera.Camera
	MoveForward()
	MoveBackward()
	MoveLeft()
	MoveRight()
	MouseLook(delta mgl32.Vec2)
}

// State is the host-side application state. It owns one camera per mode and
// routes input to whichever one is active. It is used only from the render thread.
type State struct {
	mode Mode

	FreeLook    *camera.FreeLookCamera
	FirstPerson *camera.FirstPersonCamera
	Orbit       *camera.OrbitCamera

	// Mouse state
	lastX      float64
	lastY      float64
	firstMouse bool

	// Gesture state
	looking  bool
	rotating bool
	panning  bool
}

// NewState creates the application state with the given cameras and start mode
func NewState(freeLook *camera.FreeLookCamera, firstPerson *camera.FirstPersonCamera, orbit *camera.OrbitCamera, mode Mode) *State {
	return &State{
		mode:        mode,
		FreeLook:    freeLook,
		FirstPerson: firstPerson,
		Orbit:       orbit,
		firstMouse:  true,
	}
}

// Mode returns the active mode
func (s *State) Mode() Mode {
	return s.mode
}

// SetMode switches the active camera. The next cursor sample only primes the
// mouse state so the switch does not produce a jump.
func (s *State) SetMode(m Mode) {
	if m < 0 || m >= modeCount {
		return
	}
	s.mode = m
	s.rotating = false
	s.panning = false
	s.ResetMouseState()
}

// CycleMode switches to the next mode and returns it
func (s *State) CycleMode() Mode {
	s.SetMode(s.mode.Next())
	return s.mode
}

// Active returns the camera selected by the current mode
func (s *State) Active() camera.Camera {
	switch s.mode {
	case ModeFirstPerson:
		return s.FirstPerson
	case ModeOrbit:
		return s.Orbit
	default:
		return s.FreeLook
	}
}

func (s *State) activeLook() lookCamera {
	switch s.mode {
	case ModeFreeLook:
		return s.FreeLook
	case ModeFirstPerson:
		return s.FirstPerson
	default:
		return nil
	}
}

// ResetMouseState makes the next cursor sample prime the last position
func (s *State) ResetMouseState() {
	s.firstMouse = true
}

// SetLooking enables or disables mouse look for the look cameras
func (s *State) SetLooking(looking bool) {
	s.looking = looking
	s.ResetMouseState()
}

// Looking reports whether mouse look is enabled
func (s *State) Looking() bool {
	return s.looking
}

// SetRotating starts or stops an orbit rotate drag
func (s *State) SetRotating(rotating bool) {
	s.rotating = rotating
}

// SetPanning starts or stops an orbit pan drag
func (s *State) SetPanning(panning bool) {
	s.panning = panning
}

// CursorMoved feeds a cursor position sample. The raw delta from the previous
// sample is negated before it reaches the camera: moving the mouse right yields a
// negative delta into MouseLook and Rotate.
func (s *State) CursorMoved(xpos, ypos float64) {
	if s.firstMouse {
		s.lastX = xpos
		s.lastY = ypos
		s.firstMouse = false
		return
	}

	dx := float32(xpos - s.lastX)
	dy := float32(ypos - s.lastY)
	s.lastX = xpos
	s.lastY = ypos

	if dx == 0 && dy == 0 {
		return
	}

	if look := s.activeLook(); look != nil {
		if s.looking {
			look.MouseLook(mgl32.Vec2{-dx, -dy})
		}
		return
	}

	if s.rotating {
		s.Orbit.Rotate(-dx, -dy)
	}
	if s.panning {
		// Screen y grows downward, world y upward: the target follows the cursor
		s.Orbit.Pan(-dx, dy)
	}
}

// Scrolled feeds a scroll delta (one unit per notch). It returns false when the
// active camera does not consume scroll input.
func (s *State) Scrolled(yoffset float64) bool {
	if s.mode != ModeOrbit {
		return false
	}
	s.Orbit.Zoom(float32(yoffset))
	return true
}

// ApplyMovement moves the active look camera once per held intent.
// It must run before the frame's ViewMatrix query.
func (s *State) ApplyMovement(keys KeyState) {
	look := s.activeLook()
	if look == nil {
		return
	}

	if keys.Held(IntentForward) {
		look.MoveForward()
	}
	if keys.Held(IntentBackward) {
		look.MoveBackward()
	}
	if keys.Held(IntentLeft) {
		look.MoveLeft()
	}
	if keys.Held(IntentRight) {
		look.MoveRight()
	}
}

// Reset resets the active camera if it supports it. It returns false for
// cameras without a reset (first person).
func (s *State) Reset() bool {
	r, ok := s.Active().(camera.Resetter)
	if !ok {
		return false
	}
	r.Reset()
	return true
}
