package mesh

import (
	"testing"

	"github.com/hydroavia/showcase/pkg/math"
)

func TestEdges_Cube(t *testing.T) {
	g, _ := FromSTL(cubeSTL(1, math.Vec3{}))

	// Face diagonals are coplanar and dropped; the 12 cube edges remain.
	if got := len(g.Edges(DefaultEdgeThreshold)) / 6; got != 12 {
		t.Errorf("expected 12 feature edges, got %d", got)
	}
}

func TestEdges_ThresholdAboveCrease(t *testing.T) {
	g, _ := FromSTL(cubeSTL(1, math.Vec3{}))

	// Cube creases are 90 degrees; a 95 degree threshold keeps none.
	if got := len(g.Edges(95)); got != 0 {
		t.Errorf("expected no edges, got %d floats", got)
	}
}

func TestEdges_OpenTriangle(t *testing.T) {
	g, _ := FromSTL(facets(facet([3]float32{0, 0, 0}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0})))

	if got := len(g.Edges(DefaultEdgeThreshold)) / 6; got != 3 {
		t.Errorf("expected 3 boundary edges, got %d", got)
	}
}

func TestEdges_SkipsDegenerate(t *testing.T) {
	g := &Geometry{Vertices: []Vertex{
		{Position: [3]float32{0, 0, 0}},
		{Position: [3]float32{0, 0, 0}},
		{Position: [3]float32{1, 0, 0}},
	}}
	if got := len(g.Edges(DefaultEdgeThreshold)); got != 0 {
		t.Errorf("expected no edges for degenerate face, got %d floats", got)
	}
}

func TestEdges_InconsistentWinding(t *testing.T) {
	// Two coplanar triangles sharing edge (1,0,0)-(0,1,0), second one flipped.
	g, _ := FromSTL(facets(
		facet([3]float32{0, 0, 0}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0}),
		facet([3]float32{1, 0, 0}, [3]float32{0, 1, 0}, [3]float32{1, 1, 0}),
	))

	// Shared diagonal is flat, so only the 4 outer edges remain.
	if got := len(g.Edges(DefaultEdgeThreshold)) / 6; got != 4 {
		t.Errorf("expected 4 edges, got %d", got)
	}
}
