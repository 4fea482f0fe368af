package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/sceneloader/ecs"
	"github.com/milk9111/sceneloader/ecs/system"
	"github.com/milk9111/sceneloader/loader"
	"github.com/milk9111/sceneloader/resources"
	"github.com/pkg/profile"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	os.Exit(realMain(os.Args[1:]))
}

// realMain returns the process exit code. Deferred cleanup such as stopping
// the profiler runs before the caller exits.
func realMain(args []string) int {
	flags := flag.NewFlagSet("sceneview", flag.ContinueOnError)
	root := flags.String("root", ".", "project directory holding scenes/, <resolution>/images/ and friends")
	sceneName := flags.String("scene", "MainScene", "scene name in scenes/ (a .dt, .json, .yaml or .yml extension is optional)")
	configPath := flags.String("config", "", "optional YAML config file")
	resolution := flags.String("resolution", "", "image resolution directory (overrides config)")
	debug := flags.Bool("debug", false, "enable debug logging")
	dump := flags.Bool("dump", false, "load headless, print the ordered scene tree and exit")
	watch := flags.Bool("watch", false, "reload the scene when its file changes")
	profileMode := flags.String("profile", "", "write a cpu or mem profile")
	profileDir := flags.String("profile-dir", ".", "directory the profile is written to")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	cfg := loader.DefaultConfig()
	if *configPath != "" {
		c, err := loader.LoadConfig(*configPath)
		if err != nil {
			log.Print(err)
			return 1
		}
		cfg = c
	}
	if *resolution != "" {
		cfg.Resolution = *resolution
	}
	if *debug {
		cfg.Debug = true
	}

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*profileDir), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath(*profileDir), profile.NoShutdownHook).Stop()
	default:
		log.Printf("unknown -profile mode %q (want cpu or mem)", *profileMode)
		return 2
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		log.Print(err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, *root, resources.TrimSceneExt(*sceneName), *dump, *watch, logger); err != nil {
		logger.Error("sceneview failed", zap.Error(err))
		return 1
	}
	return 0
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableCaller = true
	return config.Build()
}

func run(cfg loader.Config, root, sceneName string, dump, watch bool, logger *zap.Logger) error {
	rm := resources.NewManager(os.DirFS(root),
		resources.WithResolution(cfg.Resolution),
		resources.WithLogger(logger))

	world := ecs.NewWorld()
	physics := system.NewPhysicsSystem(cfg.PhysicsStep)
	lighting := system.NewLighting()

	display := func() (int, int) { return cfg.DisplayWidth, cfg.DisplayHeight }
	if !dump {
		display = ebiten.WindowSize
	}

	sl := loader.New(world, rm,
		loader.WithLogger(logger),
		loader.WithPhysics(physics),
		loader.WithAmbientLight(lighting),
		loader.WithDisplaySize(display))

	world.AddSystem(system.NewLayerSystem())
	world.AddSystem(physics)
	world.AddSystem(system.NewScriptSystem(logger))

	if err := rm.PreloadScene(context.Background(), sceneName); err != nil {
		logger.Warn("preload failed", zap.String("scene", sceneName), zap.Error(err))
	}

	if dump {
		if _, err := sl.LoadScene(sceneName); err != nil {
			return err
		}
		world.Update()
		return printTree(os.Stdout, world, sl.Root())
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.DisplayWidth, cfg.DisplayHeight)
	ebiten.SetWindowTitle("sceneview")

	if _, err := sl.LoadScene(sceneName); err != nil {
		return err
	}

	var hot *loader.HotReload
	if watch {
		scenePath, err := rm.ScenePath(sceneName)
		if err != nil {
			return err
		}
		watcher, err := resources.NewWatcher(filepath.Join(root, filepath.Dir(scenePath)))
		if err != nil {
			return fmt.Errorf("watch scenes: %w", err)
		}
		defer func() { _ = watcher.Close() }()

		hot = loader.NewHotReload(sl, watcher, logger)
		if err := hot.Prime(filepath.Join(root, scenePath)); err != nil {
			return err
		}
	}

	game := NewGame(sl, lighting, hot, cfg, logger)
	return ebiten.RunGame(game)
}
