package encounter

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/arena"
	"github.com/milk9111/bossfight/boss"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
	"github.com/milk9111/bossfight/ecs/system"
)

// EntityKind labels a drawable entity in a Snapshot.
type EntityKind string

const (
	KindBoss   EntityKind = "boss"
	KindPlayer EntityKind = "player"
	KindEnemy  EntityKind = "enemy"
	KindRocket EntityKind = "rocket"
	KindLaser  EntityKind = "laser"
)

// EntityView is what a front-end needs to draw one entity.
type EntityView struct {
	Kind      EntityKind
	Pos       cp.Vector
	Rotation  float64
	Radius    float64
	Color     color.Color
	Animation string
	Alive     bool
}

// Beam is a laser segment.
type Beam struct {
	Start cp.Vector
	End   cp.Vector
	Width float64
	Color color.Color
}

// Snapshot is a read-only copy of the fight for rendering and inspection.
type Snapshot struct {
	Frame   uint64
	Elapsed float64
	Layout  arena.Layout

	Ready    bool
	State    boss.State
	Position arena.Position
	Coord    cp.Vector
	Rotation float64
	Weights  boss.Weights
	Action   boss.Selection
	Acting   bool
	Idle     float64
	Cooldown float64
	Actions  int
	Defeated bool

	BossHealth   float64
	PlayerHealth float64
	PlayerMax    float64

	// Enemies counts live enemies flagged for tracking. Boss summons are
	// not registered.
	Enemies  int
	Entities []EntityView
	Beams    []Beam
	Music    string
	Sounds   []string
	Log      []string
}

func (e *Encounter) Snapshot() Snapshot {
	w := e.world
	s := Snapshot{
		Frame:   w.Frame(),
		Elapsed: w.Elapsed(),
		Layout:  e.cfg.Layout,
		Log:     append([]string(nil), e.lines...),
	}

	if enc, ok := ecs.Get(w, e.boss, component.BossEncounterComponent.Kind()); ok {
		s.Actions = enc.Actions
		s.Defeated = enc.Defeated
		if ctrl := enc.Controller; ctrl != nil {
			s.Ready = true
			s.State = ctrl.State()
			s.Position = ctrl.Position()
			s.Coord = ctrl.Coord()
			s.Rotation = ctrl.Rotation()
			s.Weights = ctrl.Weights()
			s.Action, s.Acting = ctrl.CurrentAction()
			s.Idle, s.Cooldown = ctrl.Cooldown()
		} else {
			s.Position = enc.Config.Start
			s.Coord = enc.Config.Layout.Coord(enc.Config.Start)
			s.Weights = boss.NewWeights()
		}
	}
	if bar, ok := ecs.Get(w, e.boss, component.HealthBarComponent.Kind()); ok {
		s.BossHealth = bar.Fraction
	}
	if hp, ok := ecs.Get(w, e.player, component.HealthComponent.Kind()); ok {
		s.PlayerHealth = hp.Current
		s.PlayerMax = hp.Max
	}

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.ShapeComponent.Kind(),
		func(en ecs.Entity, t *component.Transform, shape *component.Shape) {
			view := EntityView{
				Kind:     e.kindOf(en),
				Pos:      cp.Vector{X: t.X, Y: t.Y},
				Rotation: t.Rotation,
				Radius:   shape.Radius,
				Color:    shape.Color,
				Alive:    true,
			}
			if anim, ok := ecs.Get(w, en, component.AnimationComponent.Kind()); ok {
				view.Animation = anim.Current
			}
			registered := false
			if b, ok := ecs.Get(w, en, component.EnemyBehaviorComponent.Kind()); ok {
				view.Alive = b.Alive
				registered = b.Register
			}
			if r, ok := ecs.Get(w, en, component.RocketComponent.Kind()); ok && r.Flight != nil {
				view.Alive = r.Flight.Phase != boss.RocketExploded
			}
			if hp, ok := ecs.Get(w, en, component.HealthComponent.Kind()); ok && hp.Dead() {
				view.Alive = false
			}
			if registered && view.Alive {
				s.Enemies++
			}

			if l, ok := ecs.Get(w, en, component.LaserComponent.Kind()); ok {
				start, end := system.BeamSegment(t, l.Length)
				s.Beams = append(s.Beams, Beam{Start: start, End: end, Width: l.Width, Color: shape.Color})
				return
			}
			s.Entities = append(s.Entities, view)
		})

	if mp, ok := ecs.First(w, component.MusicPlayerComponent.Kind()); ok {
		if player, ok := ecs.Get(w, mp, component.MusicPlayerComponent.Kind()); ok {
			s.Music = player.Track
		}
	}
	if mixer, ok := ecs.First(w, component.AudioComponent.Kind()); ok {
		if audio, ok := ecs.Get(w, mixer, component.AudioComponent.Kind()); ok {
			for _, ch := range audio.Channels {
				s.Sounds = append(s.Sounds, ch.Cue)
			}
		}
	}
	return s
}

func (e *Encounter) kindOf(en ecs.Entity) EntityKind {
	w := e.world
	switch {
	case en == e.boss:
		return KindBoss
	case ecs.Has(w, en, component.PlayerTagComponent.Kind()):
		return KindPlayer
	case ecs.Has(w, en, component.RocketComponent.Kind()):
		return KindRocket
	case ecs.Has(w, en, component.LaserComponent.Kind()):
		return KindLaser
	default:
		return KindEnemy
	}
}
