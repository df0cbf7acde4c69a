package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bossfight/assets"
	"github.com/milk9111/bossfight/config"
	"github.com/milk9111/bossfight/encounter"
	"github.com/milk9111/bossfight/logging"
	"github.com/milk9111/bossfight/prefabs"
	"github.com/rs/zerolog"
)

func main() {
	configDir := flag.String("config", ".", "directory holding bossfight.cfg.yaml")
	prefab := flag.String("prefab", "", "boss prefab in prefabs/ (overrides config)")
	seed := flag.Uint64("seed", 0, "random seed, 0 for a fresh one per restart (overrides config)")
	debug := flag.Bool("debug", false, "log at debug level")
	mute := flag.Bool("mute", false, "disable sound cues")
	flag.Parse()

	settings, err := config.Load(*configDir)
	if err != nil {
		boot := logging.New("info", "console", os.Stderr)
		boot.Fatal().Err(err).Msg("failed to load settings")
	}
	if *prefab != "" {
		settings.Prefab = *prefab
	}
	if *seed != 0 {
		settings.Seed = *seed
	}
	if *debug {
		settings.LogLevel = "debug"
	}

	log := logging.New(settings.LogLevel, settings.LogFormat, os.Stderr)
	prefabs.SetDir(settings.WatchDir)

	enc, err := encounter.Load(settings.Prefab,
		encounter.WithLogger(log),
		encounter.WithSeed(settings.Seed),
		encounter.WithFrameTime(settings.FrameTime()),
		encounter.WithScripting(settings.Scripting),
	)
	if err != nil {
		log.Fatal().Err(err).Str("prefab", settings.Prefab).Msg("failed to start encounter")
	}

	var watcher *prefabs.Watcher
	if settings.HotReload {
		watcher = startWatcher(settings.WatchDir, log)
		if watcher != nil {
			defer watcher.Close()
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle(settings.Window.Title)
	ebiten.SetTPS(settings.TPS)

	var sounds *assets.Sounds
	if !*mute {
		sounds = assets.NewSounds()
	}

	game := NewGame(enc, settings, watcher, sounds, log)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}

func startWatcher(dir string, log zerolog.Logger) *prefabs.Watcher {
	dirs := []string{dir}
	if scripts := filepath.Join(dir, "scripts"); isDir(scripts) {
		dirs = append(dirs, scripts)
	}
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		log.Warn().Err(err).Str("dir", dir).Msg("hot reload disabled")
		return nil
	}
	log.Info().Str("dir", dir).Msg("watching prefabs")
	return w
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
