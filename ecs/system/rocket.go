package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/boss"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
)

// RocketSystem flies boss rockets and blows them up on the player or once
// they leave the arena. Rockets outlive the boss that fired them.
type RocketSystem struct{}

func NewRocketSystem() *RocketSystem {
	return &RocketSystem{}
}

func (s *RocketSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.FrameTime()
	player, hasPlayer := findPlayer(w)
	bounds, hasBounds := arenaBounds(w)
	if hasBounds {
		centre := cp.Vector{X: (bounds.L + bounds.R) / 2, Y: (bounds.B + bounds.T) / 2}
		bounds = cp.NewBBForExtents(centre,
			(bounds.R-bounds.L)/2+rocketBoundsMargin,
			(bounds.T-bounds.B)/2+rocketBoundsMargin)
	}

	ecs.ForEach2(w,
		component.RocketComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, r *component.Rocket, t *component.Transform) {
			f := r.Flight
			if f == nil || f.Phase == boss.RocketExploded {
				return
			}

			target := f.Pos
			if hasPlayer {
				target = player.Pos
			}
			if f.Step(dt, target) && f.Phase == boss.RocketFiring {
				PlayAudioCue(w, rocketFireCue)
				if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
					anim.Fire(rocketFireTrigger)
				}
				pushEvent(w, EventRocketFired, e)
			}
			t.X = f.Pos.X
			t.Y = f.Pos.Y
			t.Rotation = f.Rotation

			switch {
			case hasPlayer && touching(f.Pos, radiusOf(w, e), player.Pos, player.Radius):
				RequestDamage(w, player.Entity, r.Damage)
				s.explode(w, e, f)
			case hasBounds && f.Phase == boss.RocketFiring && !bounds.ContainsVect(f.Pos):
				s.explode(w, e, f)
			}
		})
}

func (s *RocketSystem) explode(w *ecs.World, e ecs.Entity, f *boss.RocketFlight) {
	if !f.Explode() {
		return
	}
	PlayAudioCue(w, rocketExplodeCue)
	explodeAfter(w, e, explodeFallback)
	pushEvent(w, EventRocketExploded, e)
}
