package viewer

import (
	"fmt"

	"github.com/google/uuid"
	gostl "github.com/philipparndt/gostl/pkg/stl"

	"github.com/hydroavia/showcase/internal/engine/mesh"
	"github.com/hydroavia/showcase/pkg/stl"
)

// ModelScale converts the millimeter source model into viewer units.
const ModelScale = 0.01

// Model is a loaded, normalized mesh with the line sets derived from it.
// Everything here is computed before the model is published and is
// read-only afterwards.
type Model struct {
	ID        uuid.UUID // Load that produced it, for log correlation
	Path      string
	Geometry  *mesh.Geometry
	Edges     []float32 // Feature lines, [x, y, z] pairs
	Wireframe []float32 // All triangle edges, [x, y, z] pairs
	Source    mesh.Bounds
}

// PrepareModel parses an STL payload and normalizes it with ModelFromSTL.
func PrepareModel(path string, data []byte) (*Model, error) {
	parsed, err := stl.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return ModelFromSTL(path, parsed)
}

// ModelFromSTL normalizes parsed facets: the bounding-box center moves to
// the origin, then everything is scaled by ModelScale.
func ModelFromSTL(path string, parsed *gostl.Model) (*Model, error) {
	g, err := mesh.FromSTL(parsed)
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", path, err)
	}

	source := g.Bounds
	g.Center()
	g.Scale(ModelScale)

	return &Model{
		Path:      path,
		Geometry:  g,
		Edges:     g.Edges(mesh.DefaultEdgeThreshold),
		Wireframe: g.Wireframe(),
		Source:    source,
	}, nil
}
