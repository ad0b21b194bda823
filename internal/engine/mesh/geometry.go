// Package mesh holds renderable triangle geometry and the operations the
// viewer applies to it: recentering, uniform scaling and edge extraction.
package mesh

import (
	"errors"

	"github.com/philipparndt/gostl/pkg/geometry"
	"github.com/philipparndt/gostl/pkg/stl"

	"github.com/hydroavia/showcase/pkg/math"
)

// ErrNoTriangles is returned when a source model has nothing to draw.
var ErrNoTriangles = errors.New("mesh has no triangles")

// Vertex is one corner of a triangle with its flat face normal.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the midpoint of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the extent along each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Geometry is a non-indexed triangle list: every three vertices form a face.
// The loader normalizes it once, off the render thread, and it is treated as
// immutable afterwards. Per-frame motion is a model matrix, never a vertex edit.
type Geometry struct {
	Vertices []Vertex
	Bounds   Bounds
}

// FromSTL converts parsed STL facets to geometry. Normals are recomputed
// from the winding; stored facet normals are often unnormalized or zero.
func FromSTL(m *stl.Model) (*Geometry, error) {
	if m == nil || len(m.Triangles) == 0 {
		return nil, ErrNoTriangles
	}

	g := &Geometry{Vertices: make([]Vertex, 0, len(m.Triangles)*3)}
	for _, tri := range m.Triangles {
		a, b, c := point(tri.V1), point(tri.V2), point(tri.V3)
		normal := faceNormal(a, b, c).Array()
		g.Vertices = append(g.Vertices,
			Vertex{Position: a.Array(), Normal: normal},
			Vertex{Position: b.Array(), Normal: normal},
			Vertex{Position: c.Array(), Normal: normal},
		)
	}
	g.Bounds = g.ComputeBounds()
	return g, nil
}

// TriangleCount returns the number of faces.
func (g *Geometry) TriangleCount() int {
	return len(g.Vertices) / 3
}

// ComputeBounds recomputes the bounding box from the vertex positions.
func (g *Geometry) ComputeBounds() Bounds {
	if len(g.Vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: vec(g.Vertices[0].Position), Max: vec(g.Vertices[0].Position)}
	for _, v := range g.Vertices[1:] {
		p := vec(v.Position)
		b.Min = b.Min.Min(p)
		b.Max = b.Max.Max(p)
	}
	return b
}

// Center translates every vertex so the bounding-box center sits at the origin.
func (g *Geometry) Center() {
	offset := g.ComputeBounds().Center()
	for i := range g.Vertices {
		g.Vertices[i].Position = vec(g.Vertices[i].Position).Sub(offset).Array()
	}
	g.Bounds = g.ComputeBounds()
}

// Scale multiplies every position by s. Normals are unchanged for s > 0.
func (g *Geometry) Scale(s float32) {
	for i := range g.Vertices {
		g.Vertices[i].Position = vec(g.Vertices[i].Position).Scale(s).Array()
	}
	g.Bounds = g.ComputeBounds()
}

// Wireframe returns every triangle edge as line vertex pairs in
// [x, y, z] format, six floats per segment. Shared edges appear once per face
// like a GPU wireframe pass would draw them.
func (g *Geometry) Wireframe() []float32 {
	out := make([]float32, 0, len(g.Vertices)*6)
	for i := 0; i+2 < len(g.Vertices); i += 3 {
		a, b, c := g.Vertices[i].Position, g.Vertices[i+1].Position, g.Vertices[i+2].Position
		out = appendSegment(out, a, b)
		out = appendSegment(out, b, c)
		out = appendSegment(out, c, a)
	}
	return out
}

func appendSegment(dst []float32, a, b [3]float32) []float32 {
	return append(dst, a[0], a[1], a[2], b[0], b[1], b[2])
}

func faceNormal(a, b, c math.Vec3) math.Vec3 {
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

func point(v geometry.Vector3) math.Vec3 {
	return math.Vec3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

func vec(p [3]float32) math.Vec3 {
	return math.Vec3{X: p[0], Y: p[1], Z: p[2]}
}
