// Command bossim runs a boss encounter in the terminal, or headless for a
// fixed number of frames.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/milk9111/bossfight/config"
	"github.com/milk9111/bossfight/encounter"
	"github.com/milk9111/bossfight/logging"
	"github.com/milk9111/bossfight/prefabs"
	"github.com/rs/zerolog"
)

func main() {
	configDir := flag.String("config", ".", "directory holding bossfight.cfg.yaml")
	prefab := flag.String("prefab", "", "boss prefab in prefabs/ (overrides config)")
	seed := flag.Uint64("seed", 0, "random seed (overrides config)")
	headless := flag.Int("frames", 0, "run this many frames without a UI and print the event log")
	hitEvery := flag.Int("hit-every", 30, "headless: damage the boss every N frames, 0 to never")
	flag.Parse()

	settings, err := config.Load(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *prefab != "" {
		settings.Prefab = *prefab
	}
	if *seed != 0 {
		settings.Seed = *seed
	}

	// Logs share the terminal with the TUI.
	log := logging.New(settings.LogLevel, settings.LogFormat, os.Stderr)
	if *headless == 0 {
		log = log.Level(max(log.GetLevel(), zerolog.WarnLevel))
	}

	prefabs.SetDir(settings.WatchDir)

	opts := []encounter.Option{
		encounter.WithLogger(log),
		encounter.WithSeed(settings.Seed),
		encounter.WithFrameTime(settings.FrameTime()),
		encounter.WithScripting(settings.Scripting),
	}
	if *headless > 0 {
		opts = append(opts, encounter.WithEventSink(func(line string) {
			fmt.Println(line)
		}))
	}
	enc, err := encounter.Load(settings.Prefab, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *headless > 0 {
		runHeadless(enc, *headless, *hitEvery)
		return
	}

	interval := time.Duration(float64(time.Second) * settings.FrameTime())
	p := tea.NewProgram(newModel(enc, interval), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runHeadless steps the fight, hitting the boss every hitEvery frames.
func runHeadless(enc *encounter.Encounter, frames, hitEvery int) {
	for i := 1; i <= frames; i++ {
		if hitEvery > 0 && i%hitEvery == 0 {
			enc.Damage(hitDamage)
		}
		enc.Update()
	}
}
