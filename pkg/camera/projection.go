package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Field of view limits for scroll zoom, in degrees
const (
	DefaultFOV = 45.0
	MinFOV     = 1.0
	MaxFOV     = 45.0
)

// Projection holds the perspective parameters that go with a camera's view transform
type Projection struct {
	fov    float32
	near   float32
	far    float32
	width  int
	height int

	matrix mgl32.Mat4
}

// NewProjection creates a perspective projection for a width x height framebuffer
func NewProjection(fov, near, far float32, width, height int) *Projection {
	p := &Projection{
		fov:    fov,
		near:   near,
		far:    far,
		width:  max(width, 1),
		height: max(height, 1),
	}
	p.update()
	return p
}

func (p *Projection) update() {
	aspect := float32(p.width) / float32(p.height)
	p.matrix = mgl32.Perspective(mgl32.DegToRad(p.fov), aspect, p.near, p.far)
}

// Matrix returns the projection matrix
func (p *Projection) Matrix() mgl32.Mat4 {
	return p.matrix
}

// FOV returns the vertical field of view in degrees
func (p *Projection) FOV() float32 {
	return p.fov
}

// Zoom narrows (positive delta) or widens the field of view, clamped to [MinFOV, MaxFOV]
func (p *Projection) Zoom(delta float32) {
	p.fov = mgl32.Clamp(p.fov-delta, MinFOV, MaxFOV)
	p.update()
}

// Resize updates the aspect ratio. Zero sizes (minimized windows) are ignored.
func (p *Projection) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	p.width = width
	p.height = height
	p.update()
}
