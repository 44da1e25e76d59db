package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/leterax/go-viewer/pkg/assets"
)

// Vertex attribute locations used by the viewer shaders
const (
	AttribPosition uint32 = 0
	AttribNormal   uint32 = 1
	AttribTexCoord uint32 = 2
)

// Mesh is an uploaded indexed triangle mesh
type Mesh struct {
	vao        *VertexArrayObject
	vbo        *BufferObject
	ebo        *BufferObject
	indexCount int32
}

// NewMesh uploads interleaved mesh data (position, normal, texture coordinates)
func NewMesh(data assets.MeshData) *Mesh {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(data.Vertices, StaticDraw)
	ebo := NewEBO(data.Indices, StaticDraw)

	const stride = assets.FloatsPerVertex * 4
	vao.SetVertexAttribPointer(AttribPosition, 3, stride, 0)
	vao.SetVertexAttribPointer(AttribNormal, 3, stride, assets.NormalOffset*4)
	vao.SetVertexAttribPointer(AttribTexCoord, 2, stride, assets.TexCoordOffset*4)

	vao.Unbind()

	return &Mesh{
		vao:        vao,
		vbo:        vbo,
		ebo:        ebo,
		indexCount: int32(len(data.Indices)),
	}
}

// Draw renders the mesh with whatever program is in use
func (m *Mesh) Draw() {
	m.vao.Bind()
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	m.vao.Unbind()
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
	m.ebo.Delete()
}
