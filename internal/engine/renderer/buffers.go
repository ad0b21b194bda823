package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/hydroavia/showcase/internal/engine/grid"
	"github.com/hydroavia/showcase/internal/engine/mesh"
	"github.com/hydroavia/showcase/internal/viewer"
)

const floatSize = 4

// vertexBuffer is a VAO with one interleaved VBO.
type vertexBuffer struct {
	vao   uint32
	vbo   uint32
	count int32
}

// newVertexBuffer uploads data and binds float attributes of the given
// component sizes in order, interleaved.
func newVertexBuffer(data unsafe.Pointer, bytes int, count int32, attribs ...int32) *vertexBuffer {
	b := &vertexBuffer{count: count}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, bytes, data, gl.STATIC_DRAW)

	var stride int32
	for _, n := range attribs {
		stride += n * floatSize
	}
	var offset uintptr
	for i, n := range attribs {
		gl.VertexAttribPointerWithOffset(uint32(i), n, gl.FLOAT, false, stride, offset)
		gl.EnableVertexAttribArray(uint32(i))
		offset += uintptr(n * floatSize)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return b
}

// newPositionBuffer uploads flat [x, y, z, ...] data.
func newPositionBuffer(pos []float32) *vertexBuffer {
	if len(pos) == 0 {
		return nil
	}
	return newVertexBuffer(gl.Ptr(&pos[0]), len(pos)*floatSize, int32(len(pos)/3), 3)
}

// newGridBuffer uploads colored grid vertices.
func newGridBuffer(v []grid.Vertex) *vertexBuffer {
	if len(v) == 0 {
		return nil
	}
	size := int(unsafe.Sizeof(v[0]))
	return newVertexBuffer(unsafe.Pointer(&v[0]), len(v)*size, int32(len(v)), 3, 3)
}

func (b *vertexBuffer) draw(mode uint32) {
	if b == nil || b.count == 0 {
		return
	}
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(mode, 0, b.count)
	gl.BindVertexArray(0)
}

func (b *vertexBuffer) delete() {
	if b == nil {
		return
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
	}
	b.vao, b.vbo, b.count = 0, 0, 0
}

// gpuModel holds the GPU copies of one loaded model.
type gpuModel struct {
	triangles *vertexBuffer
	edges     *vertexBuffer
	wireframe *vertexBuffer
}

func uploadModel(m *viewer.Model) *gpuModel {
	g := &gpuModel{
		edges:     newPositionBuffer(m.Edges),
		wireframe: newPositionBuffer(m.Wireframe),
	}
	if v := m.Geometry.Vertices; len(v) > 0 {
		size := int(unsafe.Sizeof(mesh.Vertex{}))
		g.triangles = newVertexBuffer(unsafe.Pointer(&v[0]), len(v)*size, int32(len(v)), 3, 3)
	}
	return g
}

func (g *gpuModel) delete() {
	g.triangles.delete()
	g.edges.delete()
	g.wireframe.delete()
}
