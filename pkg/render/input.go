package render

import (
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/leterax/go-viewer/pkg/control"
)

// applyMode updates the cursor and title for the active mode. Look modes start
// with the mouse captured; orbit uses the visible cursor for drags.
func (v *Viewer) applyMode() {
	mode := v.state.Mode()
	captured := mode.IsLook()
	v.window.Capture(captured)
	v.state.SetLooking(captured)
	v.window.SetCaption(mode.String())
}

func (v *Viewer) setMode(mode control.Mode) {
	if mode == v.state.Mode() {
		return
	}
	v.state.SetMode(mode)
	v.applyMode()
	slog.Info("camera mode", "mode", mode)
}

// KeyPressed implements openglhelper.InputHandler
func (v *Viewer) KeyPressed(key glfw.Key) {
	if mode, ok := modeKeys[key]; ok {
		v.setMode(mode)
		return
	}

	switch key {
	case KeyEscape:
		v.window.RequestClose()

	case KeyTab:
		v.setMode(v.state.Mode().Next())

	case KeyR:
		if v.state.Reset() {
			slog.Info("camera reset", "mode", v.state.Mode())
		} else {
			slog.Debug("active camera has no reset", "mode", v.state.Mode())
		}

	case KeyC:
		// Toggle mouse capture for look cameras
		if v.state.Mode().IsLook() {
			v.window.Capture(!v.window.Captured())
			v.state.SetLooking(v.window.Captured())
		}
	}
}

// CursorMoved implements openglhelper.InputHandler
func (v *Viewer) CursorMoved(x, y float64) {
	v.state.CursorMoved(x, y)
}

// MouseButton implements openglhelper.InputHandler
func (v *Viewer) MouseButton(button glfw.MouseButton, pressed bool) {
	switch button {
	case ButtonRotate:
		v.state.SetRotating(pressed)
	case ButtonPan, ButtonPanMiddle:
		v.state.SetPanning(pressed)
	}
}

// Scrolled implements openglhelper.InputHandler
func (v *Viewer) Scrolled(offset float64) {
	// Orbit zooms its distance; look cameras narrow the field of view
	if !v.state.Scrolled(offset) {
		v.projection.Zoom(float32(offset))
	}
}

// Resized implements openglhelper.InputHandler. The viewport is already updated.
func (v *Viewer) Resized(width, height int) {
	v.projection.Resize(width, height)
}
