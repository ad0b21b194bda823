// Package lighting describes the showcase light rig and environment presets
// and flattens them for GPU upload.
package lighting

import (
	gomath "math"

	"github.com/hydroavia/showcase/pkg/math"
)

// Shader array sizes. The rig must fit; extra lights are dropped.
const (
	MaxPointLights = 4
	MaxSpotLights  = 2
)

// PointLight emits in all directions from Position.
type PointLight struct {
	Position  math.Vec3
	Color     math.RGB
	Intensity float32
}

// SpotLight emits a cone from Position toward Target. Angle is the cone
// half-angle in radians; Penumbra in [0, 1] is the fraction of the cone
// that fades out toward its edge.
type SpotLight struct {
	Position   math.Vec3
	Target     math.Vec3
	Color      math.RGB
	Angle      float32
	Penumbra   float32
	Intensity  float32
	CastShadow bool
}

// Direction returns the unit vector the spot points along.
func (s SpotLight) Direction() math.Vec3 {
	return s.Target.Sub(s.Position).Normalize()
}

// ConeCos returns the cosines of the inner (full intensity) and outer
// cone edges, for the shader's smoothstep.
func (s SpotLight) ConeCos() (inner, outer float32) {
	outer = float32(gomath.Cos(float64(s.Angle)))
	inner = float32(gomath.Cos(float64(s.Angle * (1 - s.Penumbra))))
	return inner, outer
}

// Rig is the full set of lights present in the scene.
type Rig struct {
	Ambient      math.RGB
	AmbientLevel float32
	Points       []PointLight
	Spots        []SpotLight
}

// ShowcaseRig returns the viewer's fixed lights. They are present in every
// render mode; unlit materials simply ignore them.
func ShowcaseRig() Rig {
	return Rig{
		Ambient:      math.RGB{1, 1, 1},
		AmbientLevel: 0.3,
		Points: []PointLight{
			{Position: math.Vec3{X: 10, Y: 10, Z: 10}, Color: math.Hex(0x00d9ff), Intensity: 1},
			{Position: math.Vec3{X: -10, Y: -10, Z: -10}, Color: math.Hex(0x00ffaa), Intensity: 0.5},
		},
		Spots: []SpotLight{{
			Position:   math.Vec3{Y: 5},
			Color:      math.RGB{1, 1, 1},
			Angle:      0.3,
			Penumbra:   1,
			Intensity:  0.5,
			CastShadow: true,
		}},
	}
}

// Buffer holds flattened light arrays for uniform upload.
type Buffer struct {
	PointPositions   []float32 // [x0, y0, z0, x1, ...], MaxPointLights*3
	PointColors      []float32 // premultiplied by intensity
	PointCount       int32
	SpotPositions    []float32
	SpotDirections   []float32
	SpotColors       []float32
	SpotCones        []float32 // [inner0, outer0, inner1, ...]
	SpotCount        int32
	AmbientColor     [3]float32
	AmbientIntensity float32
}

// Flatten packs the rig into fixed-size arrays.
func (r Rig) Flatten() Buffer {
	b := Buffer{
		PointPositions:   make([]float32, MaxPointLights*3),
		PointColors:      make([]float32, MaxPointLights*3),
		SpotPositions:    make([]float32, MaxSpotLights*3),
		SpotDirections:   make([]float32, MaxSpotLights*3),
		SpotColors:       make([]float32, MaxSpotLights*3),
		SpotCones:        make([]float32, MaxSpotLights*2),
		AmbientColor:     r.Ambient,
		AmbientIntensity: r.AmbientLevel,
	}

	for i, l := range r.Points {
		if i >= MaxPointLights {
			break
		}
		pos, c := l.Position.Array(), l.Color.Scale(l.Intensity)
		copy(b.PointPositions[i*3:], pos[:])
		copy(b.PointColors[i*3:], c[:])
		b.PointCount++
	}

	for i, s := range r.Spots {
		if i >= MaxSpotLights {
			break
		}
		pos, dir, c := s.Position.Array(), s.Direction().Array(), s.Color.Scale(s.Intensity)
		copy(b.SpotPositions[i*3:], pos[:])
		copy(b.SpotDirections[i*3:], dir[:])
		copy(b.SpotColors[i*3:], c[:])
		b.SpotCones[i*2], b.SpotCones[i*2+1] = s.ConeCos()
		b.SpotCount++
	}

	return b
}
