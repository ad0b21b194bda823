package main

import (
	"github.com/hydroavia/showcase/internal/engine/input"
	"github.com/hydroavia/showcase/internal/viewer"
)

// section owns the viewer's props the way the landing page's technology
// section does: a blueprint toggle, with particles only in the 3D view.
type section struct {
	assetPath string
	blueprint bool
	particles bool // config switch for the 3D view particles
}

func (s *section) props() viewer.Props {
	p := viewer.ShowcaseProps(s.assetPath, s.blueprint)
	p.ShowParticles = p.ShowParticles && s.particles
	return p
}

// handle applies a mode command and reports whether the props changed.
func (s *section) handle(a input.Action) bool {
	switch a {
	case input.ActionBlueprint:
		if !s.blueprint {
			s.blueprint = true
			return true
		}
	case input.ActionModel:
		if s.blueprint {
			s.blueprint = false
			return true
		}
	}
	return false
}

func (s *section) title() string {
	if s.blueprint {
		return windowTitle + " - BLUEPRINT"
	}
	return windowTitle + " - 3D MODEL"
}
