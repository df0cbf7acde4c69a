package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
)

type playerInfo struct {
	Entity ecs.Entity
	Pos    cp.Vector
	Radius float64
}

// findPlayer returns the first live player with a transform.
func findPlayer(w *ecs.World) (playerInfo, bool) {
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return playerInfo{}, false
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return playerInfo{}, false
	}
	if hp, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && hp.Dead() {
		return playerInfo{}, false
	}
	return playerInfo{Entity: e, Pos: cp.Vector{X: t.X, Y: t.Y}, Radius: radiusOf(w, e)}, true
}

func radiusOf(w *ecs.World, e ecs.Entity) float64 {
	if shape, ok := ecs.Get(w, e, component.ShapeComponent.Kind()); ok {
		return shape.Radius
	}
	return 0
}

func positionOf(w *ecs.World, e ecs.Entity) (cp.Vector, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return cp.Vector{}, false
	}
	return cp.Vector{X: t.X, Y: t.Y}, true
}

// arenaBounds is the box spanned by the first boss's stations.
func arenaBounds(w *ecs.World) (cp.BB, bool) {
	e, ok := ecs.First(w, component.BossEncounterComponent.Kind())
	if !ok {
		return cp.BB{}, false
	}
	enc, ok := ecs.Get(w, e, component.BossEncounterComponent.Kind())
	if !ok {
		return cp.BB{}, false
	}
	return enc.Config.Layout.Bounds(), true
}

func touching(a cp.Vector, ra float64, b cp.Vector, rb float64) bool {
	return a.Distance(b) <= ra+rb
}

// explodeAfter plays the entity's Explode clip and removes it when the clip
// ends.
func explodeAfter(w *ecs.World, e ecs.Entity, fallback float64) {
	duration := fallback
	if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
		if state, ok := anim.Triggers[explodeTrigger]; ok {
			duration = anim.States[state].Duration
		}
		anim.Fire(explodeTrigger)
	}
	expireAfter(w, e, duration)
}

const (
	explodeTrigger     = "Explode"
	explodeFallback    = 0.5
	spawnedState       = "Idle"
	enemyExplodeCue    = "enemy_explode"
	rocketExplodeCue   = "rocket_explode"
	rocketFireCue      = "rocket_fire"
	rocketFireTrigger  = "Fire"
	rocketBoundsMargin = 2.0
)
