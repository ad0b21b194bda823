package viewer

import (
	"github.com/hydroavia/showcase/internal/engine/grid"
	"github.com/hydroavia/showcase/internal/engine/lighting"
	"github.com/hydroavia/showcase/pkg/math"
)

// Palette.
var (
	ColorCyan   = math.Hex(0x00d9ff)
	ColorMint   = math.Hex(0x00ffaa)
	ColorAccent = math.Hex(0x60a5fa)
	ColorHull   = math.Hex(0x1a1a1a)
)

// MaterialKind distinguishes unlit from physically lit shading.
type MaterialKind int

const (
	MaterialBasic    MaterialKind = iota // Unlit flat color
	MaterialStandard                     // Metalness/roughness with emissive
)

// Material describes how the mesh surface is shaded.
type Material struct {
	Kind              MaterialKind
	Color             math.RGB
	Wireframe         bool
	Metalness         float32
	Roughness         float32
	Emissive          math.RGB
	EmissiveIntensity float32
}

// BlueprintMaterial is the unlit cyan wireframe.
func BlueprintMaterial() Material {
	return Material{Kind: MaterialBasic, Color: ColorCyan, Wireframe: true}
}

// SolidMaterial is the dark metallic hull with a faint cyan glow.
func SolidMaterial() Material {
	return Material{
		Kind:              MaterialStandard,
		Color:             ColorHull,
		Metalness:         0.9,
		Roughness:         0.2,
		Emissive:          ColorCyan,
		EmissiveIntensity: 0.2,
	}
}

// MeshNode is the loaded model placed in the world.
type MeshNode struct {
	Model     *Model
	Transform math.Mat4
	Material  Material
	// EdgeColor is set when the feature-line overlay is drawn. The overlay
	// shares the mesh transform.
	EdgeColor *math.RGB
}

// ParticleNode is the rotating point cloud.
type ParticleNode struct {
	Field     *ParticleField
	Transform math.Mat4
}

// HUDLine is one line of overlay text.
type HUDLine struct {
	Text  string
	Color math.RGB
}

// Brackets are the four screen-corner frame marks.
type Brackets struct {
	Size      float32 // pixels along each arm
	Thickness float32 // pixels
	Color     math.RGB
	Opacity   float32
}

// HUD is the screen-space overlay shown in blueprint mode.
type HUD struct {
	TopLeft     []HUDLine
	BottomRight []HUDLine // right aligned
	Margin      float32   // pixels from the viewport edge
	Brackets    Brackets
}

// BlueprintHUD returns the technical readout overlay.
func BlueprintHUD() *HUD {
	return &HUD{
		TopLeft: []HUDLine{
			{Text: "HYDROAVIA DRONE FRAME v1.0", Color: ColorCyan},
			{Text: `WINGSPAN: 14" DIAGONAL`, Color: ColorCyan},
			{Text: "GPS-DENIED AUTONOMY", Color: ColorCyan},
			{Text: "STEREO VISION ENABLED", Color: ColorAccent},
		},
		BottomRight: []HUDLine{
			{Text: "PROP GUARDS: ACTIVE", Color: ColorCyan},
			{Text: "LED MOUNTS: 4x", Color: ColorCyan},
			{Text: "LANDING GEAR: DEPLOYED", Color: ColorCyan},
		},
		Margin: 16,
		Brackets: Brackets{
			Size:      64,
			Thickness: 2,
			Color:     ColorCyan,
			Opacity:   0.5,
		},
	}
}

// Scene is everything the renderer needs for one frame. Optional parts are
// nil when absent.
type Scene struct {
	Mode        RenderMode
	Mesh        *MeshNode
	Grid        *grid.Layout
	Particles   *ParticleNode
	Lights      lighting.Rig
	Environment *lighting.Environment
	HUD         *HUD
}

// BuildScene assembles the frame description. It depends only on its
// arguments: switching modes changes materials and overlays, never the
// model or the camera.
func BuildScene(props Props, model *Model, pose Pose, field *ParticleField) Scene {
	s := Scene{
		Mode:   props.Mode,
		Lights: lighting.ShowcaseRig(),
	}

	if model != nil {
		s.Mesh = &MeshNode{Model: model, Transform: pose.MeshTransform()}
	}

	switch props.Mode {
	case ModeBlueprint:
		if s.Mesh != nil {
			s.Mesh.Material = BlueprintMaterial()
			edge := ColorMint
			s.Mesh.EdgeColor = &edge
		}
		g := grid.Blueprint()
		s.Grid = &g
		s.HUD = BlueprintHUD()
	default:
		if s.Mesh != nil {
			s.Mesh.Material = SolidMaterial()
		}
		env := lighting.Night()
		s.Environment = &env
	}

	if props.ShowParticles && field != nil {
		s.Particles = &ParticleNode{Field: field, Transform: pose.ParticleTransform()}
	}

	return s
}
