// Package viewer implements the model viewer component: it loads one mesh
// asset, animates it and describes what to draw for the current render mode.
// It never touches the GPU; the renderer consumes the Scene it produces.
package viewer

import "fmt"

// DefaultAssetPath is the bundled drone frame served from the asset root.
const DefaultAssetPath = "/hydroavia_drone_14inch.stl"

// RenderMode selects how the loaded mesh is presented.
type RenderMode int

const (
	ModeSolid RenderMode = iota
	ModeBlueprint
)

// String returns the mode name.
func (m RenderMode) String() string {
	switch m {
	case ModeSolid:
		return "SOLID"
	case ModeBlueprint:
		return "BLUEPRINT"
	default:
		return fmt.Sprintf("RenderMode(%d)", int(m))
	}
}

// ModeFor maps the showcase's blueprint toggle to a render mode.
func ModeFor(blueprint bool) RenderMode {
	if blueprint {
		return ModeBlueprint
	}
	return ModeSolid
}

// Props are the viewer's inputs, owned by the enclosing section and passed
// by value. The viewer never writes them back.
type Props struct {
	AssetPath     string
	Mode          RenderMode
	ShowParticles bool
}

// DefaultProps returns the bundled model, solid mode, particles on.
func DefaultProps() Props {
	return Props{
		AssetPath:     DefaultAssetPath,
		Mode:          ModeSolid,
		ShowParticles: true,
	}
}

// ShowcaseProps returns the props the technology section passes for its
// toggle state: particles only accompany the 3D model view.
func ShowcaseProps(assetPath string, blueprint bool) Props {
	return Props{
		AssetPath:     assetPath,
		Mode:          ModeFor(blueprint),
		ShowParticles: !blueprint,
	}
}
