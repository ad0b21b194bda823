package main

import (
	"testing"

	"github.com/hydroavia/showcase/internal/engine/input"
	"github.com/hydroavia/showcase/internal/viewer"
)

func TestSection(t *testing.T) {
	s := &section{assetPath: viewer.DefaultAssetPath, blueprint: true, particles: true}

	p := s.props()
	if p.Mode != viewer.ModeBlueprint || p.ShowParticles {
		t.Errorf("blueprint props = %+v", p)
	}

	if s.handle(input.ActionBlueprint) {
		t.Error("blueprint while in blueprint should not change props")
	}
	if !s.handle(input.ActionModel) {
		t.Error("model should change props")
	}
	p = s.props()
	if p.Mode != viewer.ModeSolid || !p.ShowParticles {
		t.Errorf("model props = %+v", p)
	}
	if p.AssetPath != viewer.DefaultAssetPath {
		t.Errorf("asset path = %q", p.AssetPath)
	}
	if s.handle(input.ActionScreenshot) {
		t.Error("non-mode actions do not change props")
	}
}

func TestSection_ParticlesDisabled(t *testing.T) {
	s := &section{assetPath: "/a.stl", particles: false}
	if s.props().ShowParticles {
		t.Error("particles disabled by config")
	}
}
