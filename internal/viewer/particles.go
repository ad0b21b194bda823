package viewer

import (
	"math/rand/v2"

	"github.com/hydroavia/showcase/pkg/math"
)

// Particle field constants.
const (
	ParticleCount   = 1000
	ParticleExtent  = 20 // Cube side, centered on the origin
	ParticleSize    = 0.02
	ParticleOpacity = 0.6
)

// ParticleColor is the point color.
var ParticleColor = math.Hex(0x00d9ff)

// ParticleField is a fixed cloud of points. Positions are sampled once and
// never written again, so the renderer may read them without locking.
type ParticleField struct {
	positions []float32 // [x0, y0, z0, x1, ...]

	Size            float32
	Color           math.RGB
	Opacity         float32
	Transparent     bool
	SizeAttenuation bool
}

// NewParticleField samples ParticleCount points uniformly inside the cube.
// A nil rng uses the global source.
func NewParticleField(rng *rand.Rand) *ParticleField {
	next := rand.Float32
	if rng != nil {
		next = rng.Float32
	}

	pos := make([]float32, ParticleCount*3)
	for i := range pos {
		pos[i] = (next() - 0.5) * ParticleExtent
	}

	return &ParticleField{
		positions:       pos,
		Size:            ParticleSize,
		Color:           ParticleColor,
		Opacity:         ParticleOpacity,
		Transparent:     true,
		SizeAttenuation: true,
	}
}

// Positions returns the flat position buffer. Callers must not modify it.
func (p *ParticleField) Positions() []float32 {
	return p.positions
}

// Len returns the number of points.
func (p *ParticleField) Len() int {
	return len(p.positions) / 3
}
