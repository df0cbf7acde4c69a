package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
)

// LaserSystem pins each beam to its owner and damages the player once per
// beam when the sweep crosses them.
type LaserSystem struct{}

func NewLaserSystem() *LaserSystem {
	return &LaserSystem{}
}

func (s *LaserSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player, hasPlayer := findPlayer(w)

	ecs.ForEach2(w,
		component.LaserComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, l *component.Laser, t *component.Transform) {
			owner, ok := ecs.Get(w, ecs.Entity(l.Owner), component.TransformComponent.Kind())
			if !ok {
				ecs.DestroyEntity(w, e)
				return
			}
			t.X = owner.X
			t.Y = owner.Y
			t.Rotation = owner.Rotation

			if l.Hit || !hasPlayer {
				return
			}
			start, end := BeamSegment(t, l.Length)
			if segmentDistance(player.Pos, start, end) <= l.Width/2+player.Radius {
				l.Hit = true
				RequestDamage(w, player.Entity, l.Damage)
			}
		})
}

// BeamSegment returns the beam's end points. At rotation 0 the beam points
// straight down.
func BeamSegment(t *component.Transform, length float64) (cp.Vector, cp.Vector) {
	start := cp.Vector{X: t.X, Y: t.Y}
	dir := cp.ForAngle(t.Rotation*math.Pi/180 - math.Pi/2)
	return start, start.Add(dir.Mult(length))
}

func segmentDistance(p, a, b cp.Vector) float64 {
	ab := b.Sub(a)
	den := ab.Dot(ab)
	if den == 0 {
		return p.Distance(a)
	}
	f := cp.Clamp01(p.Sub(a).Dot(ab) / den)
	return p.Distance(a.Add(ab.Mult(f)))
}
