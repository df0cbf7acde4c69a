package main

import (
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/assets"
	"github.com/milk9111/bossfight/config"
	"github.com/milk9111/bossfight/encounter"
	"github.com/milk9111/bossfight/prefabs"
	"github.com/rs/zerolog"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	playerSpeed = 6.0
	clickDamage = 1.0
	cueVolume   = 0.5
)

type Game struct {
	enc      *encounter.Encounter
	settings config.Settings
	watcher  *prefabs.Watcher
	log      zerolog.Logger

	frames  int
	paused  bool
	pauseUI *ebitenui.UI
	view    *view

	sounds *assets.Sounds
	cues   map[string]bool
}

// NewGame wires the window to an encounter. A nil sounds keeps the game
// silent.
func NewGame(enc *encounter.Encounter, settings config.Settings, watcher *prefabs.Watcher, sounds *assets.Sounds, log zerolog.Logger) *Game {
	g := &Game{
		enc:      enc,
		settings: settings,
		watcher:  watcher,
		log:      log,
		view:     newView(settings.Window.Scale),
		sounds:   sounds,
		cues:     make(map[string]bool),
	}
	g.pauseUI = NewPauseUI(g)
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.frames++
	g.applyHotReload()

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.restart()
		return nil
	}

	g.handleInput()
	g.enc.Update()
	g.playCues()
	return nil
}

// playCues starts a sound for every mixer channel that was not live last
// frame.
func (g *Game) playCues() {
	if g.sounds == nil {
		return
	}
	live := make(map[string]bool, len(g.cues))
	for _, cue := range g.enc.Snapshot().Sounds {
		live[cue] = true
		if !g.cues[cue] {
			g.sounds.Play(cue, cueVolume)
		}
	}
	g.cues = live
}

func (g *Game) handleInput() {
	var dir cp.Vector
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dir.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dir.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dir.Y++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dir.Y--
	}
	if dir.LengthSq() > 0 {
		step := playerSpeed * g.settings.FrameTime()
		g.enc.MovePlayer(dir.Normalize().Mult(step))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		pos := g.view.toWorld(g.enc.Config().Layout.Centre, float64(mx), float64(my))
		if g.enc.DamageAt(pos, clickDamage) {
			g.log.Debug().Float64("x", pos.X).Float64("y", pos.Y).Msg("hit")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.enc.Damage(clickDamage)
	}
}

func (g *Game) applyHotReload() {
	if g.watcher == nil {
		return
	}
	g.enc.ApplyChanges(g.watcher.Events)
	select {
	case err, ok := <-g.watcher.Errors:
		if ok && err != nil {
			g.log.Warn().Err(err).Msg("prefab watcher")
		}
	default:
	}
}

func (g *Game) restart() {
	if err := g.enc.Restart(); err != nil {
		g.log.Error().Err(err).Msg("restart failed")
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.view.draw(screen, g.enc.Snapshot(), g.paused)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
