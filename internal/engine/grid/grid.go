// Package grid generates the blueprint reference grid on the XZ plane.
package grid

import (
	gomath "math"

	"github.com/hydroavia/showcase/pkg/math"
)

// Layout describes a finite two-level grid: fine cell lines plus heavier
// section lines, fading out with distance from the camera.
type Layout struct {
	Width, Depth     float32 // Extent along X and Z, centered on the origin
	CellSize         float32
	CellThickness    float32
	CellColor        math.RGB
	SectionSize      float32
	SectionThickness float32
	SectionColor     math.RGB
	FadeDistance     float32
	FadeStrength     float32
}

// Blueprint returns the grid drawn under the model in blueprint mode.
func Blueprint() Layout {
	return Layout{
		Width:            20,
		Depth:            20,
		CellSize:         0.5,
		CellThickness:    0.5,
		CellColor:        math.Hex(0x00d9ff),
		SectionSize:      2,
		SectionThickness: 1,
		SectionColor:     math.Hex(0x00ffaa),
		FadeDistance:     25,
		FadeStrength:     1,
	}
}

// Vertex is a colored line endpoint, [x, y, z, r, g, b] in memory.
type Vertex struct {
	X, Y, Z float32
	R, G, B float32
}

// Lines holds the two line sets; each is pairs of vertices.
type Lines struct {
	Cells    []Vertex
	Sections []Vertex
}

// Generate builds line vertices at height y. A line that falls on a section
// boundary is emitted only as a section line.
func (s Layout) Generate(y float32) Lines {
	var out Lines
	hw, hd := s.Width/2, s.Depth/2

	emit := func(dst []Vertex, c math.RGB, x0, z0, x1, z1 float32) []Vertex {
		return append(dst,
			Vertex{x0, y, z0, c[0], c[1], c[2]},
			Vertex{x1, y, z1, c[0], c[1], c[2]},
		)
	}

	for _, x := range steps(-hw, hw, s.CellSize) {
		if onSection(x, s.SectionSize) {
			out.Sections = emit(out.Sections, s.SectionColor, x, -hd, x, hd)
		} else {
			out.Cells = emit(out.Cells, s.CellColor, x, -hd, x, hd)
		}
	}
	for _, z := range steps(-hd, hd, s.CellSize) {
		if onSection(z, s.SectionSize) {
			out.Sections = emit(out.Sections, s.SectionColor, -hw, z, hw, z)
		} else {
			out.Cells = emit(out.Cells, s.CellColor, -hw, z, hw, z)
		}
	}
	return out
}

// steps returns lo, lo+step, ... up to hi inclusive, computed by index so
// rounding does not accumulate.
func steps(lo, hi, step float32) []float32 {
	if step <= 0 || hi < lo {
		return nil
	}
	n := int(gomath.Round(float64((hi - lo) / step)))
	out := make([]float32, n+1)
	for i := range out {
		out[i] = lo + float32(i)*step
	}
	return out
}

func onSection(v, section float32) bool {
	if section <= 0 {
		return false
	}
	r := gomath.Remainder(float64(v), float64(section))
	return gomath.Abs(r) < 1e-4
}
