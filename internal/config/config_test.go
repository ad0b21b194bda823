package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hydroavia/showcase/internal/contact"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Viewer.AssetPath != "/hydroavia_drone_14inch.stl" {
		t.Errorf("expected bundled drone model, got %s", cfg.Viewer.AssetPath)
	}
	if !cfg.Viewer.Blueprint {
		t.Error("expected blueprint mode by default")
	}
	if !cfg.Viewer.ShowParticles {
		t.Error("expected particles enabled by default")
	}
	if cfg.Viewer.SpinMode != "time" {
		t.Errorf("expected spin mode 'time', got %s", cfg.Viewer.SpinMode)
	}
	if cfg.Viewer.WatchAsset {
		t.Error("expected asset watching to be off by default")
	}

	if cfg.Contact.Endpoint != contact.DefaultEndpoint {
		t.Errorf("expected placeholder relay, got %s", cfg.Contact.Endpoint)
	}
	if cfg.Contact.Timeout != 0 {
		t.Errorf("expected no contact timeout, got %v", cfg.Contact.Timeout)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

viewer:
  asset_root: "/srv/static"
  asset_path: "/other.stl"
  blueprint: false
  show_particles: false
  spin_mode: "frame"
  watch_asset: true

contact:
  endpoint: "https://relay.example.com/f/abc"
  timeout: 5s

logging:
  level: "debug"
  log_file: "showcase.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Viewer.AssetRoot != "/srv/static" {
		t.Errorf("expected asset root /srv/static, got %s", cfg.Viewer.AssetRoot)
	}
	if cfg.Viewer.AssetPath != "/other.stl" {
		t.Errorf("expected asset path /other.stl, got %s", cfg.Viewer.AssetPath)
	}
	if cfg.Viewer.Blueprint {
		t.Error("expected blueprint to be false")
	}
	if cfg.Viewer.ShowParticles {
		t.Error("expected show_particles to be false")
	}
	if cfg.Viewer.SpinMode != "frame" {
		t.Errorf("expected spin mode 'frame', got %s", cfg.Viewer.SpinMode)
	}
	if !cfg.Viewer.WatchAsset {
		t.Error("expected watch_asset to be true")
	}
	if cfg.Contact.Endpoint != "https://relay.example.com/f/abc" {
		t.Errorf("unexpected endpoint %s", cfg.Contact.Endpoint)
	}
	if cfg.Contact.Timeout != 5*time.Second {
		t.Errorf("expected timeout 5s, got %v", cfg.Contact.Timeout)
	}
	if cfg.Logging.LogFile != "showcase.log" {
		t.Errorf("expected log file 'showcase.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"frame spin", func(c *Config) { c.Viewer.SpinMode = "frame" }, false},
		{"empty spin", func(c *Config) { c.Viewer.SpinMode = "" }, false},
		{"unknown spin", func(c *Config) { c.Viewer.SpinMode = "fast" }, true},
		{"empty asset", func(c *Config) { c.Viewer.AssetPath = "" }, true},
		{"negative timeout", func(c *Config) { c.Contact.Timeout = -time.Second }, true},
		{"contact timeout", func(c *Config) { c.Contact.Timeout = 5 * time.Second }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_NamesYAMLKey(t *testing.T) {
	cfg := Default()
	cfg.Viewer.SpinMode = "fast"

	err := cfg.Validate()
	if err == nil || !strings.HasPrefix(err.Error(), "viewer.spin_mode failed oneof") {
		t.Errorf("unexpected error %v", err)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" && filepath.Dir(path) == "." {
		t.Errorf("expected no local config, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path != "./config.yaml" {
		t.Errorf("expected ./config.yaml, got %q", path)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "model flag",
			setup: func() { *flagModel = "https://cdn.example.com/frame.stl" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Viewer.AssetPath != "https://cdn.example.com/frame.stl" {
					t.Errorf("unexpected asset path %s", cfg.Viewer.AssetPath)
				}
			},
			teardown: func() { *flagModel = "" },
		},
		{
			name:  "solid flag",
			setup: func() { *flagSolid = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Viewer.Blueprint {
					t.Error("expected blueprint to be false with solid flag")
				}
			},
			teardown: func() { *flagSolid = false },
		},
		{
			name:  "watch flag",
			setup: func() { *flagWatch = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Viewer.WatchAsset {
					t.Error("expected watch_asset with watch flag")
				}
			},
			teardown: func() { *flagWatch = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Graphics.Width)
				}
				if cfg.Graphics.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
viewer:
  asset_path: "/from-file.stl"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
	if cfg.Viewer.AssetPath != "/from-file.stl" {
		t.Errorf("expected asset path from file, got %s", cfg.Viewer.AssetPath)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Viewer.SpinMode = "frame"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if loaded.Viewer.SpinMode != "frame" {
		t.Errorf("expected saved spin mode 'frame', got %s", loaded.Viewer.SpinMode)
	}
}
