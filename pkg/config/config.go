// Package config loads the viewer configuration from YAML
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/leterax/go-viewer/pkg/camera"
	"github.com/leterax/go-viewer/pkg/control"
)

// DefaultPath is the config file looked up when none is given
const DefaultPath = "viewer.yaml"

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the whole viewer configuration as read from YAML
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Scene   SceneConfig   `yaml:"scene"`
	Shaders ShadersConfig `yaml:"shaders"`
}

// WindowConfig sizes and titles the GLFW window
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// CameraConfig selects the starting camera mode and parameterises all three cameras
type CameraConfig struct {
	Mode       string           `yaml:"mode"`
	Look       LookConfig       `yaml:"look"`
	Orbit      OrbitConfig      `yaml:"orbit"`
	Projection ProjectionConfig `yaml:"projection"`
}

// LookConfig configures both the free-look and the first-person camera
type LookConfig struct {
	Position      mgl32.Vec3 `yaml:"position,flow"`
	MovementSpeed float32    `yaml:"movement_speed"`
	Sensitivity   float32    `yaml:"sensitivity"`
}

// OrbitConfig configures the orbit camera around its target
type OrbitConfig struct {
	Target        mgl32.Vec3 `yaml:"target,flow"`
	Distance      float32    `yaml:"distance"`
	RotationSpeed float32    `yaml:"rotation_speed"`
	ZoomSpeed     float32    `yaml:"zoom_speed"`
	PanSpeed      float32    `yaml:"pan_speed"`
}

// ProjectionConfig is the perspective projection shared by every camera mode
type ProjectionConfig struct {
	FOV  float32 `yaml:"fov"`
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
}

// SceneConfig names what is rendered and how it is lit
type SceneConfig struct {
	// Model is an STL file; empty renders the built-in cube
	Model      string      `yaml:"model"`
	Texture    string      `yaml:"texture"`
	Light      LightConfig `yaml:"light"`
	ClearColor mgl32.Vec4  `yaml:"clear_color,flow"`
}

// LightConfig describes the single directional light
type LightConfig struct {
	Direction mgl32.Vec3 `yaml:"direction,flow"`
	Color     mgl32.Vec3 `yaml:"color,flow"`
	Ambient   float32    `yaml:"ambient"`
}

// ShadersConfig points at GLSL sources on disk. Empty paths use the embedded shaders.
type ShadersConfig struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
	Watch    bool   `yaml:"watch"`
}

// Default returns a configuration that runs without any file on disk
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "Go Viewer",
			VSync:  true,
		},
		Camera: CameraConfig{
			Mode: control.ModeOrbit.String(),
			Look: LookConfig{
				Position:      mgl32.Vec3{0, 0, 3},
				MovementSpeed: 0.5,
				Sensitivity:   0.1,
			},
			Orbit: OrbitConfig{
				Target:        mgl32.Vec3{0, 0, 0},
				Distance:      3,
				RotationSpeed: 0.5,
				ZoomSpeed:     0.5,
				PanSpeed:      0.005,
			},
			Projection: ProjectionConfig{
				FOV:  45,
				Near: 0.1,
				Far:  1000,
			},
		},
		Scene: SceneConfig{
			Light: LightConfig{
				Direction: mgl32.Vec3{-0.2, -1.0, -0.3},
				Color:     mgl32.Vec3{1, 1, 1},
				Ambient:   0.15,
			},
			ClearColor: mgl32.Vec4{0.05, 0.05, 0.1, 1.0},
		},
	}
}

// Load reads the YAML file at path on top of the defaults.
// A missing file at DefaultPath is not an error; any other missing path is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && path == DefaultPath {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, keeping values the document does not set
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	return nil
}

// Mode returns the parsed start mode
func (c Config) Mode() (control.Mode, error) {
	return control.ParseMode(c.Camera.Mode)
}

// Validate reports every invalid field, joined into one error
func (c Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...)))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		invalid("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}

	if _, err := c.Mode(); err != nil {
		invalid("camera.mode: %v", err)
	}

	look := c.Camera.Look
	if look.MovementSpeed <= 0 {
		invalid("camera.look.movement_speed %v must be positive", look.MovementSpeed)
	}
	if look.Sensitivity <= 0 {
		invalid("camera.look.sensitivity %v must be positive", look.Sensitivity)
	}

	orbit := c.Camera.Orbit
	if orbit.Distance < camera.MinDistance || orbit.Distance > camera.MaxDistance {
		invalid("camera.orbit.distance %v outside [%v, %v]", orbit.Distance, camera.MinDistance, camera.MaxDistance)
	}
	if orbit.RotationSpeed <= 0 || orbit.ZoomSpeed <= 0 || orbit.PanSpeed <= 0 {
		invalid("camera.orbit speeds must be positive")
	}

	proj := c.Camera.Projection
	if proj.FOV <= 0 || proj.FOV >= 180 {
		invalid("camera.projection.fov %v outside (0, 180)", proj.FOV)
	}
	if proj.Near <= 0 || proj.Far <= proj.Near {
		invalid("camera.projection near %v / far %v", proj.Near, proj.Far)
	}

	if c.Scene.Light.Direction.Len() == 0 {
		invalid("scene.light.direction must be non-zero")
	}

	if (c.Shaders.Vertex == "") != (c.Shaders.Fragment == "") {
		invalid("shaders.vertex and shaders.fragment must be set together")
	}
	if c.Shaders.Watch && c.Shaders.Vertex == "" {
		invalid("shaders.watch needs shader files on disk")
	}

	return errors.Join(errs...)
}
