package lighting

import "github.com/hydroavia/showcase/pkg/math"

// Environment is image-based lighting reduced to a sky/ground hemisphere
// gradient. It adds ambient fill and a reflection tint for metallic
// materials. A nil *Environment means no environment.
type Environment struct {
	Name      string
	Sky       math.RGB
	Horizon   math.RGB
	Ground    math.RGB
	Intensity float32
}

// Presets by name.
var presets = map[string]Environment{
	"night": {
		Name:      "night",
		Sky:       math.Hex(0x0b1a3a),
		Horizon:   math.Hex(0x2a3550),
		Ground:    math.Hex(0x05070c),
		Intensity: 1,
	},
	"studio": {
		Name:      "studio",
		Sky:       math.Hex(0xf2f2f2),
		Horizon:   math.Hex(0xb0b0b0),
		Ground:    math.Hex(0x404040),
		Intensity: 1,
	},
}

// Preset returns a copy of the named environment.
func Preset(name string) (Environment, bool) {
	env, ok := presets[name]
	return env, ok
}

// Night returns the dark blue night preset used behind the solid model.
func Night() Environment {
	env, _ := Preset("night")
	return env
}

