package main

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/arena"
	"github.com/milk9111/bossfight/boss"
	"github.com/milk9111/bossfight/encounter"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	lineHeight = 16
	hudMargin  = 12
	barWidth   = 360
	barHeight  = 10
)

var dimmed = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x80}

// view maps world units (+Y up) to screen pixels centred on the arena.
type view struct {
	scale float64
	face  ebtext.Face
}

func newView(scale float64) *view {
	return &view{
		scale: scale,
		face:  ebtext.NewGoXFace(basicfont.Face7x13),
	}
}

func (v *view) toScreen(centre, p cp.Vector) (float32, float32) {
	x := baseWidth/2 + (p.X-centre.X)*v.scale
	y := baseHeight/2 - (p.Y-centre.Y)*v.scale
	return float32(x), float32(y)
}

func (v *view) toWorld(centre cp.Vector, sx, sy float64) cp.Vector {
	return cp.Vector{
		X: centre.X + (sx-baseWidth/2)/v.scale,
		Y: centre.Y - (sy-baseHeight/2)/v.scale,
	}
}

func (v *view) draw(screen *ebiten.Image, s encounter.Snapshot, paused bool) {
	screen.Fill(colornames.Midnightblue)
	v.drawArena(screen, s.Layout)

	for _, b := range s.Beams {
		x0, y0 := v.toScreen(s.Layout.Centre, b.Start)
		x1, y1 := v.toScreen(s.Layout.Centre, b.End)
		vector.StrokeLine(screen, x0, y0, x1, y1, float32(b.Width*v.scale), b.Color, true)
	}

	for _, e := range s.Entities {
		x, y := v.toScreen(s.Layout.Centre, e.Pos)
		r := float32(e.Radius * v.scale)
		clr := e.Color
		if clr == nil {
			clr = colornames.White
		}
		if !e.Alive {
			clr = dimmed
		}
		vector.FillCircle(screen, x, y, r, clr, true)
		switch e.Kind {
		case encounter.KindBoss:
			v.drawHeading(screen, x, y, r, e.Rotation-90)
		case encounter.KindRocket:
			v.drawHeading(screen, x, y, r, e.Rotation+90)
		}
	}

	v.drawHUD(screen, s, paused)
}

func (v *view) drawArena(screen *ebiten.Image, layout arena.Layout) {
	bb := layout.Bounds()
	x0, y0 := v.toScreen(layout.Centre, cp.Vector{X: bb.L, Y: bb.T})
	x1, y1 := v.toScreen(layout.Centre, cp.Vector{X: bb.R, Y: bb.B})
	vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 1, colornames.Slategray, false)

	for _, p := range arena.Positions() {
		x, y := v.toScreen(layout.Centre, layout.Coord(p))
		vector.StrokeCircle(screen, x, y, 6, 1, colornames.Darkslategray, true)
	}
}

// drawHeading marks a facing in degrees from +X, counter-clockwise. The boss
// faces down at rotation 0 and rockets face up.
func (v *view) drawHeading(screen *ebiten.Image, x, y, r float32, deg float64) {
	rad := deg * math.Pi / 180
	dx := float32(math.Cos(rad)) * r
	dy := -float32(math.Sin(rad)) * r
	vector.StrokeLine(screen, x, y, x+dx, y+dy, 2, colornames.Gold, true)
}

func (v *view) drawHUD(screen *ebiten.Image, s encounter.Snapshot, paused bool) {
	vector.FillRect(screen, hudMargin, hudMargin, barWidth, barHeight, colornames.Dimgray, false)
	vector.FillRect(screen, hudMargin, hudMargin, float32(barWidth*s.BossHealth), barHeight, colornames.Crimson, false)

	lines := []string{
		fmt.Sprintf("%s at %s  actions %d", stateLabel(s), s.Position, s.Actions),
		fmt.Sprintf("weights %s", weightsLabel(s.Weights)),
		fmt.Sprintf("player %.0f/%.0f  enemies %d  music %s", s.PlayerHealth, s.PlayerMax, s.Enemies, s.Music),
		fmt.Sprintf("TPS %.0f  frame %d  %.1fs", ebiten.ActualTPS(), s.Frame, s.Elapsed),
	}
	y := float64(hudMargin + barHeight + 8)
	for _, line := range lines {
		v.text(screen, line, hudMargin, y, colornames.White)
		y += lineHeight
	}

	y = baseHeight - hudMargin - float64(len(s.Log))*lineHeight
	for _, line := range s.Log {
		v.text(screen, line, hudMargin, y, colornames.Lightgray)
		y += lineHeight
	}

	help := "click/space: hit  wasd: move  r: restart  esc: pause"
	if paused {
		help = "paused"
	}
	v.text(screen, help, baseWidth-hudMargin-float64(len(help))*7, hudMargin, colornames.Gray)
}

func (v *view) text(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	ebtext.Draw(screen, s, v.face, op)
}

func stateLabel(s encounter.Snapshot) string {
	switch {
	case !s.Ready:
		return "starting"
	case s.Acting:
		return "acting " + s.Action.Executed.String()
	case s.State == boss.Idle:
		return fmt.Sprintf("idle %.1f/%.1f", s.Idle, s.Cooldown)
	default:
		return s.State.String()
	}
}

func weightsLabel(w boss.Weights) string {
	parts := make([]string, 0, len(w))
	for i, weight := range w {
		parts = append(parts, fmt.Sprintf("%s=%d", boss.ActionKind(i), weight))
	}
	return strings.Join(parts, " ")
}
