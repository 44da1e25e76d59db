package openglhelper

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-viewer/pkg/config"
)

// InputHandler receives the viewer's input on the main thread, during EndFrame.
// Only key presses are forwarded; held keys are polled with KeyHeld.
type InputHandler interface {
	KeyPressed(key glfw.Key)
	CursorMoved(x, y float64)
	MouseButton(button glfw.MouseButton, pressed bool)
	Scrolled(offset float64)
	Resized(width, height int)
}

// Window is the viewer's GLFW window and the GL 4.6 core context bound to it
type Window struct {
	handle   *glfw.Window
	title    string
	fbWidth  int
	fbHeight int
	captured bool
}

// NewWindow opens a resizable window described by cfg and makes its context
// current with depth testing enabled.
func NewWindow(cfg config.WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	handle, err := openContext(cfg)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}

	w := &Window{handle: handle, title: cfg.Title}
	// HiDPI displays report a framebuffer larger than the window
	w.fbWidth, w.fbHeight = handle.GetFramebufferSize()
	return w, nil
}

func openContext(cfg config.WindowConfig) (*glfw.Window, error) {
	for hint, value := range map[glfw.Hint]int{
		glfw.ContextVersionMajor:     4,
		glfw.ContextVersionMinor:     6,
		glfw.OpenGLProfile:           glfw.OpenGLCoreProfile,
		glfw.OpenGLForwardCompatible: glfw.True,
		glfw.Resizable:               glfw.True,
		glfw.DepthBits:               24,
	} {
		glfw.WindowHint(hint, value)
	}

	handle, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}
	handle.MakeContextCurrent()

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	glfw.SwapInterval(interval)

	if err := gl.Init(); err != nil {
		handle.Destroy()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	slog.Info("OpenGL context ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
		"vsync", cfg.VSync,
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	return handle, nil
}

// Attach routes the window's GLFW callbacks to h. A framebuffer resize updates
// the viewport before h sees it.
func (w *Window) Attach(h InputHandler) {
	w.handle.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Press {
			h.KeyPressed(key)
		}
	})
	w.handle.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		h.CursorMoved(x, y)
	})
	w.handle.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}
		h.MouseButton(button, action == glfw.Press)
	})
	w.handle.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		h.Scrolled(yoff)
	})
	w.handle.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.fbWidth, w.fbHeight = width, height
		gl.Viewport(0, 0, int32(width), int32(height))
		h.Resized(width, height)
	})
}

// Open is false once the user or RequestClose asked the window to close
func (w *Window) Open() bool {
	return !w.handle.ShouldClose()
}

func (w *Window) RequestClose() {
	w.handle.SetShouldClose(true)
}

// BeginFrame clears colour and depth to start a new frame
func (w *Window) BeginFrame(clear mgl32.Vec4) {
	gl.ClearColor(clear.X(), clear.Y(), clear.Z(), clear.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// EndFrame presents the frame and then dispatches pending input to the attached
// handler, so input always lands before the next frame's camera update.
func (w *Window) EndFrame() {
	w.handle.SwapBuffers()
	glfw.PollEvents()
}

// FramebufferSize is in pixels, not screen coordinates
func (w *Window) FramebufferSize() (width, height int) {
	return w.fbWidth, w.fbHeight
}

// SetCaption shows caption after the configured title
func (w *Window) SetCaption(caption string) {
	w.handle.SetTitle(fmt.Sprintf("%s [%s]", w.title, caption))
}

func (w *Window) KeyHeld(key glfw.Key) bool {
	return w.handle.GetKey(key) == glfw.Press
}

// Capture hides and locks the cursor for mouse look, using raw motion when the
// platform has it. Releasing restores the normal cursor.
func (w *Window) Capture(on bool) {
	w.captured = on
	if !on {
		w.handle.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		return
	}
	w.handle.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	if glfw.RawMouseMotionSupported() {
		w.handle.SetInputMode(glfw.RawMouseMotion, glfw.True)
	}
}

func (w *Window) Captured() bool {
	return w.captured
}

// Destroy releases the window and shuts GLFW down
func (w *Window) Destroy() {
	w.handle.Destroy()
	glfw.Terminate()
}
