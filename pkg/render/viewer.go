// Package render opens the viewer window, routes input to the active camera and
// draws the scene once per frame with a single directional light.
package render

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-viewer/internal/openglhelper"
	"github.com/leterax/go-viewer/pkg/assets"
	"github.com/leterax/go-viewer/pkg/camera"
	"github.com/leterax/go-viewer/pkg/config"
	"github.com/leterax/go-viewer/pkg/control"
	"github.com/leterax/go-viewer/pkg/watcher"
)

var (
	_ openglhelper.InputHandler = (*Viewer)(nil)
	_ control.KeyState          = (*Viewer)(nil)
)

// Viewer owns the window, GPU resources and the input/camera state
type Viewer struct {
	cfg    config.Config
	window *openglhelper.Window

	shader  *openglhelper.Shader
	mesh    *openglhelper.Mesh
	texture *openglhelper.Texture

	state      *control.State
	projection *camera.Projection

	shaderWatcher *watcher.FileWatcher
	closed        bool
}

// NewViewer creates the window and loads the scene described by cfg.
// It must be called from the main OS thread.
func NewViewer(cfg config.Config) (*Viewer, error) {
	mode, err := cfg.Mode()
	if err != nil {
		return nil, err
	}

	window, err := openglhelper.NewWindow(cfg.Window)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	v := &Viewer{
		cfg:    cfg,
		window: window,
		state:  newState(cfg.Camera, mode),
	}

	width, height := window.FramebufferSize()
	proj := cfg.Camera.Projection
	v.projection = camera.NewProjection(proj.FOV, proj.Near, proj.Far, width, height)

	if err := v.loadScene(); err != nil {
		v.Cleanup()
		return nil, err
	}

	if cfg.Shaders.Watch {
		fw, err := watcher.New(watcher.DefaultDebounce, cfg.Shaders.Vertex, cfg.Shaders.Fragment)
		if err != nil {
			v.Cleanup()
			return nil, fmt.Errorf("failed to watch shaders: %w", err)
		}
		v.shaderWatcher = fw
		slog.Info("watching shaders", "vertex", cfg.Shaders.Vertex, "fragment", cfg.Shaders.Fragment)
	}

	window.Attach(v)
	v.applyMode()

	return v, nil
}

// newState builds one camera per mode from the camera config
func newState(cfg config.CameraConfig, mode control.Mode) *control.State {
	look, orbit := cfg.Look, cfg.Orbit
	return control.NewState(
		camera.NewFreeLookCamera(look.Position, look.MovementSpeed, look.Sensitivity),
		camera.NewFirstPersonCamera(look.Position, look.MovementSpeed, look.Sensitivity),
		camera.NewOrbitCamera(orbit.Target, orbit.Distance, orbit.RotationSpeed, orbit.ZoomSpeed, orbit.PanSpeed),
		mode,
	)
}

// loadScene compiles the shader and uploads the model and optional texture
func (v *Viewer) loadScene() error {
	shader, err := loadShader(v.cfg.Shaders)
	if err != nil {
		return fmt.Errorf("failed to load shader: %w", err)
	}
	v.shader = shader

	data, err := assets.LoadModel(v.cfg.Scene.Model)
	if err != nil {
		return fmt.Errorf("failed to load model: %w", err)
	}
	v.mesh = openglhelper.NewMesh(data)
	slog.Info("model loaded", "path", v.cfg.Scene.Model, "vertices", data.VertexCount(), "triangles", len(data.Indices)/3)

	if v.cfg.Scene.Texture != "" {
		img, err := assets.LoadTexture(v.cfg.Scene.Texture)
		if err != nil {
			return fmt.Errorf("failed to load texture: %w", err)
		}
		v.texture, err = openglhelper.NewTexture(img)
		if err != nil {
			return fmt.Errorf("failed to upload texture: %w", err)
		}
		slog.Info("texture loaded", "path", v.cfg.Scene.Texture, "width", img.Rect.Dx(), "height", img.Rect.Dy())
	}

	return nil
}

// State returns the input/camera state
func (v *Viewer) State() *control.State {
	return v.state
}

// Run starts the main loop and returns when the window is closed
func (v *Viewer) Run() {
	for v.window.Open() {
		v.reloadShaders()

		// Held keys are applied after the previous EndFrame dispatched input and
		// before this frame's single view query
		v.state.ApplyMovement(v)

		v.render()

		// Input callbacks mutate the camera state here
		v.window.EndFrame()
	}

	v.Cleanup()
}

// Held implements control.KeyState on top of the window's key polling
func (v *Viewer) Held(intent control.Intent) bool {
	key, ok := movementKeys[intent]
	return ok && v.window.KeyHeld(key)
}

// render draws one frame from the active camera
func (v *Viewer) render() {
	v.window.BeginFrame(v.cfg.Scene.ClearColor)

	cam := v.state.Active()
	light := v.cfg.Scene.Light

	v.shader.Use()
	v.shader.SetMat4("model", mgl32.Ident4())
	v.shader.SetMat4("view", cam.ViewMatrix())
	v.shader.SetMat4("projection", v.projection.Matrix())
	v.shader.SetVec3("viewPos", cam.Position())
	v.shader.SetVec3("lightDir", light.Direction.Normalize())
	v.shader.SetVec3("lightColor", light.Color)
	v.shader.SetFloat("ambient", light.Ambient)

	v.shader.SetBool("useTexture", v.texture != nil)
	if v.texture != nil {
		v.texture.Bind(diffuseTextureUnit)
		v.shader.SetInt("diffuseMap", diffuseTextureUnit)
	}

	v.mesh.Draw()
}

// reloadShaders swaps in a rebuilt program after a shader file changed.
// A program that fails to build is logged and the previous one stays in use.
func (v *Viewer) reloadShaders() {
	if v.shaderWatcher == nil {
		return
	}

	select {
	case err := <-v.shaderWatcher.Errors:
		slog.Warn("shader watcher error", "err", err)
	default:
	}

	changed := v.shaderWatcher.Drain()
	if len(changed) == 0 {
		return
	}

	shader, err := loadShader(v.cfg.Shaders)
	if err != nil {
		slog.Error("shader reload failed, keeping previous program", "changed", changed, "err", err)
		return
	}

	v.shader.Delete()
	v.shader = shader
	slog.Info("shaders reloaded", "changed", changed)
}

// Cleanup frees all resources. It is safe to call more than once.
func (v *Viewer) Cleanup() {
	if v.closed {
		return
	}
	v.closed = true

	if v.shaderWatcher != nil {
		if err := v.shaderWatcher.Close(); err != nil {
			slog.Warn("failed to close shader watcher", "err", err)
		}
	}
	if v.texture != nil {
		v.texture.Delete()
	}
	if v.mesh != nil {
		v.mesh.Delete()
	}
	if v.shader != nil {
		v.shader.Delete()
	}

	v.window.Destroy()
}
