// Package main is the HydroAvia showcase: the drone model viewer in an SDL2
// window, with a blueprint / 3D model toggle.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/hydroavia/showcase/internal/assets"
	"github.com/hydroavia/showcase/internal/config"
	"github.com/hydroavia/showcase/internal/engine/capture"
	"github.com/hydroavia/showcase/internal/engine/input"
	"github.com/hydroavia/showcase/internal/engine/renderer"
	"github.com/hydroavia/showcase/internal/engine/window"
	"github.com/hydroavia/showcase/internal/logger"
	"github.com/hydroavia/showcase/internal/viewer"
)

const windowTitle = "HydroAvia"

func init() {
	// OpenGL calls must be made from the main thread.
	runtime.LockOSThread()
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== HydroAvia Showcase ===",
		zap.String("asset", cfg.Viewer.AssetPath),
		zap.Bool("blueprint", cfg.Viewer.Blueprint))

	if err := run(cfg); err != nil {
		logger.Error("showcase failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("showcase closed normally")
}

func run(cfg *config.Config) error {
	sec := &section{
		assetPath: cfg.Viewer.AssetPath,
		blueprint: cfg.Viewer.Blueprint,
		particles: cfg.Viewer.ShowParticles,
	}

	win, err := window.New(window.Config{
		Title:      sec.title(),
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer win.Close()

	dw, dh := win.DrawableSize()
	rend, err := renderer.New(renderer.Config{Width: dw, Height: dh, Background: renderer.DefaultBackground})
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	defer rend.Close()

	spin, err := viewer.ParseSpinMode(cfg.Viewer.SpinMode)
	if err != nil {
		return err
	}

	osFs := afero.NewOsFs()
	files := assets.NewFileFetcher(osFs, cfg.Viewer.AssetRoot)
	manager := assets.NewManager(files)

	v := viewer.New(sec.props(), manager,
		viewer.WithSpinMode(spin),
		viewer.WithRelease(rend.Release))
	defer v.Close()

	_, wh := win.Size()
	v.Camera().Resize(wh)

	if cfg.Viewer.WatchAsset && !assets.IsRemote(sec.assetPath) {
		w, err := assets.WatchFile(files.Resolve(sec.assetPath), assets.DefaultDebounce, v.Reload)
		if err != nil {
			logger.Warn("asset watch disabled", zap.Error(err))
		} else {
			defer w.Close()
		}
	}

	shots := capture.New(osFs, cfg.Capture.Dir, "hydroavia")
	in := input.New()

	for {
		quit := in.Update()
		wantShot := false

		for _, e := range in.Events() {
			switch e.Action {
			case input.ActionResize:
				dw, dh := win.DrawableSize()
				rend.Resize(dw, dh)
				_, wh := win.Size()
				v.Camera().Resize(wh)
			case input.ActionOrbit:
				v.Camera().HandleDrag(e.DX, e.DY)
			case input.ActionPan:
				v.Camera().HandlePan(e.DX, e.DY)
			case input.ActionZoom:
				v.Camera().HandleZoom(e.Zoom)
			case input.ActionBlueprint, input.ActionModel:
				if sec.handle(e.Action) {
					v.SetProps(sec.props())
					win.SetTitle(sec.title())
				}
			case input.ActionReload:
				v.Reload()
			case input.ActionScreenshot:
				wantShot = true
			}
		}
		if quit {
			return nil
		}

		v.Update(time.Now())
		rend.Draw(v.Scene(), v.Camera())

		if wantShot {
			pixels, w, h := rend.ReadPixels()
			if path, err := shots.SavePixels(pixels, w, h); err != nil {
				logger.Warn("screenshot failed", zap.Error(err))
			} else {
				logger.Info("screenshot saved", zap.String("path", path))
			}
		}

		win.SwapBuffers()
	}
}
