// Package stl writes binary STL (stereolithography) meshes and reads STL
// payloads through gostl. Binary files are little-endian: an 80-byte header,
// a uint32 triangle count and one 50-byte record per triangle.
package stl

import (
	"errors"
	"fmt"
	"os"

	gostl "github.com/philipparndt/gostl/pkg/stl"
)

// ErrInvalidSTL is returned for payloads that do not decode to any triangles.
var ErrInvalidSTL = errors.New("invalid STL data")

const headerSize = 80

// Triangle is one facet as written to disk. Normal may be unnormalized;
// the frame generator stores raw cross products.
type Triangle struct {
	Normal    [3]float32
	Vertices  [3][3]float32
	Attribute uint16
}

// Model is a mesh ready to be written.
type Model struct {
	Name      string // Written into the 80-byte header
	Triangles []Triangle
}

// Bounds returns the axis-aligned bounds of all vertices.
// An empty model yields zero bounds.
func (m *Model) Bounds() (minPt, maxPt [3]float32) {
	if len(m.Triangles) == 0 {
		return
	}
	minPt = m.Triangles[0].Vertices[0]
	maxPt = minPt
	for _, tri := range m.Triangles {
		for _, v := range tri.Vertices {
			for i := 0; i < 3; i++ {
				minPt[i] = min(minPt[i], v[i])
				maxPt[i] = max(maxPt[i], v[i])
			}
		}
	}
	return
}

// ReadFile parses an STL file.
func ReadFile(path string) (*gostl.Model, error) {
	model, err := gostl.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSTL, err)
	}
	if model == nil || model.TriangleCount() == 0 {
		return nil, fmt.Errorf("%w: no triangles", ErrInvalidSTL)
	}
	return model, nil
}

// Decode parses an in-memory STL payload. gostl reads from a path, so the
// payload is spooled to a temporary file first.
func Decode(data []byte) (*gostl.Model, error) {
	f, err := os.CreateTemp("", "hydroavia-*.stl")
	if err != nil {
		return nil, fmt.Errorf("spooling STL payload: %w", err)
	}
	defer os.Remove(f.Name())

	if _, err := f.Write(data); err != nil {
		f.Close()
		return nil, fmt.Errorf("spooling STL payload: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("spooling STL payload: %w", err)
	}
	return ReadFile(f.Name())
}
