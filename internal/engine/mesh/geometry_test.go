package mesh

import (
	"errors"
	stdmath "math"
	"testing"

	"github.com/philipparndt/gostl/pkg/geometry"
	"github.com/philipparndt/gostl/pkg/stl"

	"github.com/hydroavia/showcase/pkg/math"
)

func TestFromSTL(t *testing.T) {
	g, err := FromSTL(cubeSTL(10, math.Vec3{}))
	if err != nil {
		t.Fatalf("FromSTL failed: %v", err)
	}
	if g.TriangleCount() != 12 {
		t.Errorf("expected 12 triangles, got %d", g.TriangleCount())
	}
	if g.Bounds.Min != (math.Vec3{X: -5, Y: -5, Z: -5}) || g.Bounds.Max != (math.Vec3{X: 5, Y: 5, Z: 5}) {
		t.Errorf("unexpected bounds %+v", g.Bounds)
	}
	for i, v := range g.Vertices {
		if l := vec(v.Normal).Length(); stdmath.Abs(float64(l-1)) > 1e-5 {
			t.Fatalf("vertex %d normal length %v, want 1", i, l)
		}
	}
}

func TestFromSTL_NormalFollowsWinding(t *testing.T) {
	g, err := FromSTL(facets(facet([3]float32{0, 0, 0}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0})))
	if err != nil {
		t.Fatalf("FromSTL failed: %v", err)
	}
	if g.Vertices[0].Normal != [3]float32{0, 0, 1} {
		t.Errorf("normal = %v, want (0, 0, 1)", g.Vertices[0].Normal)
	}

	flipped, _ := FromSTL(facets(facet([3]float32{0, 0, 0}, [3]float32{0, 1, 0}, [3]float32{1, 0, 0})))
	if flipped.Vertices[0].Normal != [3]float32{0, 0, -1} {
		t.Errorf("flipped normal = %v, want (0, 0, -1)", flipped.Vertices[0].Normal)
	}
}

func TestFromSTL_Empty(t *testing.T) {
	if _, err := FromSTL(&stl.Model{}); !errors.Is(err, ErrNoTriangles) {
		t.Errorf("expected ErrNoTriangles, got %v", err)
	}
	if _, err := FromSTL(nil); !errors.Is(err, ErrNoTriangles) {
		t.Errorf("expected ErrNoTriangles for nil, got %v", err)
	}
}

func TestCenter(t *testing.T) {
	g, _ := FromSTL(cubeSTL(4, math.Vec3{X: 100, Y: -30, Z: 7}))
	g.Center()

	if c := g.Bounds.Center(); c.Length() > 1e-4 {
		t.Errorf("center after Center() = %v, want origin", c)
	}
	if size := g.Bounds.Size(); size != (math.Vec3{X: 4, Y: 4, Z: 4}) {
		t.Errorf("Center() changed size: %v", size)
	}
}

func TestCenterThenScale(t *testing.T) {
	// Asymmetric extents so a wrong order of operations shows up.
	g, _ := FromSTL(boxSTL(math.Vec3{X: 200, Y: 100, Z: 50}, math.Vec3{X: 500, Y: 0, Z: -20}))
	g.Center()
	g.Scale(0.01)

	if c := g.Bounds.Center(); c.Length() > 1e-5 {
		t.Errorf("center = %v, want origin", c)
	}
	size := g.Bounds.Size()
	want := math.Vec3{X: 2, Y: 1, Z: 0.5}
	if size.Distance(want) > 1e-5 {
		t.Errorf("size = %v, want %v", size, want)
	}
}

func TestWireframe(t *testing.T) {
	g, _ := FromSTL(cubeSTL(2, math.Vec3{}))
	lines := g.Wireframe()
	if len(lines) != 12*3*6 {
		t.Errorf("expected %d floats, got %d", 12*3*6, len(lines))
	}
}

func TestBoundsEmpty(t *testing.T) {
	g := &Geometry{}
	if b := g.ComputeBounds(); b != (Bounds{}) {
		t.Errorf("expected zero bounds, got %+v", b)
	}
}

// cubeSTL returns an axis-aligned cube with consistent outward winding.
func cubeSTL(size float32, center math.Vec3) *stl.Model {
	return boxSTL(math.Vec3{X: size, Y: size, Z: size}, center)
}

func boxSTL(size, c math.Vec3) *stl.Model {
	d := size.Scale(0.5)
	corners := [8][3]float32{
		{c.X - d.X, c.Y - d.Y, c.Z - d.Z}, {c.X + d.X, c.Y - d.Y, c.Z - d.Z},
		{c.X + d.X, c.Y + d.Y, c.Z - d.Z}, {c.X - d.X, c.Y + d.Y, c.Z - d.Z},
		{c.X - d.X, c.Y - d.Y, c.Z + d.Z}, {c.X + d.X, c.Y - d.Y, c.Z + d.Z},
		{c.X + d.X, c.Y + d.Y, c.Z + d.Z}, {c.X - d.X, c.Y + d.Y, c.Z + d.Z},
	}
	faces := [12][3]int{
		{0, 3, 1}, {1, 3, 2}, {4, 5, 7}, {5, 6, 7}, {0, 1, 5}, {0, 5, 4},
		{2, 3, 7}, {2, 7, 6}, {0, 4, 7}, {0, 7, 3}, {1, 2, 6}, {1, 6, 5},
	}
	m := stl.NewModel("box")
	for _, f := range faces {
		m.AddTriangle(facet(corners[f[0]], corners[f[1]], corners[f[2]]))
	}
	return m
}

func facets(tris ...geometry.Triangle) *stl.Model {
	return &stl.Model{Triangles: tris}
}

func facet(a, b, c [3]float32) geometry.Triangle {
	return geometry.Triangle{V1: vector(a), V2: vector(b), V3: vector(c)}
}

func vector(p [3]float32) geometry.Vector3 {
	return geometry.NewVector3(float64(p[0]), float64(p[1]), float64(p[2]))
}
