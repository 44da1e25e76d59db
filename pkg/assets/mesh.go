// Package assets builds mesh and texture data for the viewer. Nothing here touches
// OpenGL; the results are uploaded by internal/openglhelper.
package assets

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex layout: position (3), normal (3), texture coordinates (2)
const (
	FloatsPerVertex = 8
	NormalOffset    = 3
	TexCoordOffset  = 6
)

// ErrUnsupportedFormat is returned for model files the viewer cannot import
var ErrUnsupportedFormat = errors.New("unsupported model format")

// MeshData is interleaved vertex data with triangle indices
type MeshData struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices in the mesh
func (m MeshData) VertexCount() int {
	return len(m.Vertices) / FloatsPerVertex
}

// Position returns the position of vertex i
func (m MeshData) Position(i int) mgl32.Vec3 {
	base := i * FloatsPerVertex
	return mgl32.Vec3{m.Vertices[base], m.Vertices[base+1], m.Vertices[base+2]}
}

// Normal returns the normal of vertex i
func (m MeshData) Normal(i int) mgl32.Vec3 {
	base := i*FloatsPerVertex + NormalOffset
	return mgl32.Vec3{m.Vertices[base], m.Vertices[base+1], m.Vertices[base+2]}
}

// Bounds returns the axis-aligned bounding box of the mesh
func (m MeshData) Bounds() (lo, hi mgl32.Vec3) {
	if m.VertexCount() == 0 {
		return
	}
	lo, hi = m.Position(0), m.Position(0)
	for i := 1; i < m.VertexCount(); i++ {
		p := m.Position(i)
		for k := range 3 {
			lo[k] = min(lo[k], p[k])
			hi[k] = max(hi[k], p[k])
		}
	}
	return lo, hi
}

func (m *MeshData) appendVertex(pos, normal mgl32.Vec3, uv mgl32.Vec2) {
	m.Vertices = append(m.Vertices,
		pos[0], pos[1], pos[2],
		normal[0], normal[1], normal[2],
		uv[0], uv[1],
	)
}

// LoadModel loads the model at path. An empty path yields the built-in cube.
func LoadModel(path string) (MeshData, error) {
	if path == "" {
		return Cube(), nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".stl":
		return LoadSTL(path)
	default:
		return MeshData{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Cube returns a unit cube centred at the origin with per-face normals and UVs
func Cube() MeshData {
	vertices := []float32{
		// Front face
		-0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 0.0, // Bottom-left
		0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 0.0, // Bottom-right
		0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 1.0, // Top-right
		-0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 1.0, // Top-left

		// Back face
		-0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 0.0, // Bottom-left
		-0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 1.0, // Top-left
		0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 1.0, // Top-right
		0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 0.0, // Bottom-right

		// Top face
		-0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 0.0, 1.0, // Back-left
		-0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 0.0, // Front-left
		0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 1.0, 0.0, // Front-right
		0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 1.0, 1.0, // Back-right

		// Bottom face
		-0.5, -0.5, -0.5, 0.0, -1.0, 0.0, 0.0, 0.0, // Back-left
		0.5, -0.5, -0.5, 0.0, -1.0, 0.0, 1.0, 0.0, // Back-right
		0.5, -0.5, 0.5, 0.0, -1.0, 0.0, 1.0, 1.0, // Front-right
		-0.5, -0.5, 0.5, 0.0, -1.0, 0.0, 0.0, 1.0, // Front-left

		// Right face
		0.5, -0.5, -0.5, 1.0, 0.0, 0.0, 1.0, 0.0, // Bottom-back
		0.5, 0.5, -0.5, 1.0, 0.0, 0.0, 1.0, 1.0, // Top-back
		0.5, 0.5, 0.5, 1.0, 0.0, 0.0, 0.0, 1.0, // Top-front
		0.5, -0.5, 0.5, 1.0, 0.0, 0.0, 0.0, 0.0, // Bottom-front

		// Left face
		-0.5, -0.5, -0.5, -1.0, 0.0, 0.0, 0.0, 0.0, // Bottom-back
		-0.5, -0.5, 0.5, -1.0, 0.0, 0.0, 1.0, 0.0, // Bottom-front
		-0.5, 0.5, 0.5, -1.0, 0.0, 0.0, 1.0, 1.0, // Top-front
		-0.5, 0.5, -0.5, -1.0, 0.0, 0.0, 0.0, 1.0, // Top-back
	}

	// Two counter-clockwise triangles per face
	indices := make([]uint32, 0, 36)
	for face := uint32(0); face < 6; face++ {
		base := face * 4
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}

	return MeshData{Vertices: vertices, Indices: indices}
}
