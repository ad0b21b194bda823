package viewer

import (
	"math/rand/v2"
	"testing"
)

func TestNewParticleField(t *testing.T) {
	f := NewParticleField(rand.New(rand.NewPCG(7, 7)))

	if f.Len() != ParticleCount {
		t.Fatalf("len = %d, want %d", f.Len(), ParticleCount)
	}
	for i, v := range f.Positions() {
		if v < -ParticleExtent/2 || v > ParticleExtent/2 {
			t.Fatalf("component %d = %v outside the cube", i, v)
		}
	}
	if f.Size != 0.02 || f.Opacity != 0.6 || !f.Transparent || !f.SizeAttenuation {
		t.Errorf("material = %+v", f)
	}
}

func TestNewParticleField_NilRand(t *testing.T) {
	if f := NewParticleField(nil); f.Len() != ParticleCount {
		t.Errorf("len = %d", f.Len())
	}
}

func TestNewParticleField_Seeded(t *testing.T) {
	a := NewParticleField(rand.New(rand.NewPCG(1, 2))).Positions()
	b := NewParticleField(rand.New(rand.NewPCG(1, 2))).Positions()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seeded fields differ at %d", i)
		}
	}
}
