package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagModel      = flag.String("model", "", "Model asset path or URL")
	flagAssets     = flag.String("assets", "", "Static asset directory")
	flagBlueprint  = flag.Bool("blueprint", false, "Start in blueprint mode")
	flagSolid      = flag.Bool("solid", false, "Start in 3D model mode")
	flagWatch      = flag.Bool("watch", false, "Reload the model when its file changes")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagModel != "" {
		cfg.Viewer.AssetPath = *flagModel
	}
	if *flagAssets != "" {
		cfg.Viewer.AssetRoot = *flagAssets
	}
	if *flagBlueprint {
		cfg.Viewer.Blueprint = true
	}
	if *flagSolid {
		cfg.Viewer.Blueprint = false
	}
	if *flagWatch {
		cfg.Viewer.WatchAsset = true
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
}
