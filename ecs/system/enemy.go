package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/boss"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
	"github.com/rs/zerolog"
)

// EnemySystem moves enemies by kind, finishes their spawn-in and handles
// contact with the player and death.
type EnemySystem struct {
	log zerolog.Logger
}

func NewEnemySystem(log zerolog.Logger) *EnemySystem {
	return &EnemySystem{log: log.With().Str("system", "enemy").Logger()}
}

func (s *EnemySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.FrameTime()
	player, hasPlayer := findPlayer(w)
	bounds, hasBounds := arenaBounds(w)

	ecs.ForEach2(w,
		component.EnemyBehaviorComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, b *component.EnemyBehavior, t *component.Transform) {
			if b.Kind == component.EnemyBoss {
				return
			}
			if !b.Alive {
				s.updateSpawning(w, e, b)
				return
			}
			if hit, ok := ecs.Get(w, e, component.DamageTakenComponent.Kind()); ok && hit.Lethal {
				s.explode(w, e, b)
				return
			}

			pos := cp.Vector{X: t.X, Y: t.Y}
			switch b.Kind {
			case component.EnemyHoming:
				if hasPlayer {
					pos = pos.LerpConst(player.Pos, b.Speed*dt)
				}
			case component.EnemyRail:
				pos = pos.Add(b.Direction.Mult(b.Speed * dt))
				if hasBounds {
					pos = bounceRail(b, pos, bounds)
				}
			case component.EnemyImmobile:
				b.Clock += dt
				pos.X = b.Origin.X
				pos.Y = b.Origin.Y + b.Amplitude*math.Sin(b.Clock*b.HoverSpeed)
			}
			t.X = pos.X
			t.Y = pos.Y

			if hasPlayer && b.ContactDamage > 0 && touching(pos, radiusOf(w, e), player.Pos, player.Radius) {
				RequestDamage(w, player.Entity, b.ContactDamage)
				s.explode(w, e, b)
			}
		})
}

// updateSpawning wakes an enemy whose spawn-in clip has just finished and
// tells its owner.
func (s *EnemySystem) updateSpawning(w *ecs.World, e ecs.Entity, b *component.EnemyBehavior) {
	if ecs.Has(w, e, component.TTLComponent.Kind()) {
		return
	}
	anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
	if !ok || !anim.JustReached(spawnedState) {
		return
	}
	b.Alive = true
	s.log.Debug().Stringer("entity", e).Msg("enemy spawned in")

	if b.Owner != 0 {
		if ctrl := controllerOf(w, ecs.Entity(b.Owner)); ctrl != nil {
			ctrl.OnChildEntitySpawned(boss.EntityID(e))
		}
	}

	// Hits taken while spawning resolve once the enemy is live.
	if hp, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && hp.Dead() {
		s.explode(w, e, b)
	}
}

func (s *EnemySystem) explode(w *ecs.World, e ecs.Entity, b *component.EnemyBehavior) {
	b.Alive = false
	PlayAudioCue(w, enemyExplodeCue)
	explodeAfter(w, e, explodeFallback)
	pushEvent(w, EventEnemyExploded, e)
}

// bounceRail reverses the rail direction on each axis that left bounds.
func bounceRail(b *component.EnemyBehavior, pos cp.Vector, bounds cp.BB) cp.Vector {
	if pos.X < bounds.L || pos.X > bounds.R {
		b.Direction.X = -b.Direction.X
		pos.X = cp.Clamp(pos.X, bounds.L, bounds.R)
	}
	if pos.Y < bounds.B || pos.Y > bounds.T {
		b.Direction.Y = -b.Direction.Y
		pos.Y = cp.Clamp(pos.Y, bounds.B, bounds.T)
	}
	return pos
}
