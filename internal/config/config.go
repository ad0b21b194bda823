// Package config handles showcase configuration loading and management.
package config

import (
	"time"

	"github.com/hydroavia/showcase/internal/contact"
)

// Config holds all showcase settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Contact  ContactConfig  `yaml:"contact"`
	Capture  CaptureConfig  `yaml:"capture"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// ViewerConfig holds model viewer settings.
type ViewerConfig struct {
	AssetRoot     string `yaml:"asset_root"`                                      // Directory static asset paths resolve against
	AssetPath     string `yaml:"asset_path" validate:"required"`                  // Model to display, "/name.stl" or http(s) URL
	Blueprint     bool   `yaml:"blueprint"`                                       // Start in blueprint mode
	ShowParticles bool   `yaml:"show_particles"`                                  // Particles in 3D model mode
	SpinMode      string `yaml:"spin_mode" validate:"omitempty,oneof=time frame"` // "time" (or empty) or "frame"
	WatchAsset    bool   `yaml:"watch_asset"`                                     // Reload when the asset file changes
}

// ContactConfig holds contact form relay settings.
type ContactConfig struct {
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout" validate:"gte=0"` // 0 means no timeout
}

// CaptureConfig holds screenshot settings.
type CaptureConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Viewer: ViewerConfig{
			AssetRoot:     "public",
			AssetPath:     "/hydroavia_drone_14inch.stl",
			Blueprint:     true,
			ShowParticles: true,
			SpinMode:      "time",
			WatchAsset:    false,
		},
		Contact: ContactConfig{
			Endpoint: contact.DefaultEndpoint,
			Timeout:  0,
		},
		Capture: CaptureConfig{
			Dir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
