package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/boss"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
	"github.com/milk9111/bossfight/ecs/entity"
	"github.com/rs/zerolog"
)

// WorldSink carries out a boss controller's requests against the world the
// boss entity lives in.
type WorldSink struct {
	World *ecs.World
	Boss  ecs.Entity
	Log   zerolog.Logger
}

var _ boss.Sink = (*WorldSink)(nil)

func (s *WorldSink) PlayAudioCue(cue string) {
	PlayAudioCue(s.World, cue)
}

func (s *WorldSink) SetAudioVolume(cue string, volume float64) {
	SetAudioVolume(s.World, cue, volume)
}

func (s *WorldSink) SetAnimatorTrigger(trigger string) {
	if anim, ok := ecs.Get(s.World, s.Boss, component.AnimationComponent.Kind()); ok {
		anim.Fire(trigger)
	}
}

func (s *WorldSink) SetBackgroundMusic(track string) {
	if track == "" {
		StopMusic(s.World)
		return
	}
	RequestMusic(s.World, track)
}

func (s *WorldSink) SpawnEntity(kind boss.EntityKind, pos cp.Vector, params boss.SpawnParams) boss.EntityID {
	owner := boss.EntityID(s.Boss)

	var (
		e   ecs.Entity
		err error
	)
	switch kind {
	case boss.EntityDrone:
		e, err = entity.NewDrone(s.World, pos, params, owner)
	case boss.EntityRocket:
		var cfg boss.RocketConfig
		if enc, ok := ecs.Get(s.World, s.Boss, component.BossEncounterComponent.Kind()); ok {
			cfg = enc.Config.Rockets
		}
		e, err = entity.NewRocket(s.World, pos, params, cfg)
	case boss.EntityLaser:
		e, err = entity.NewLaser(s.World, owner, pos, params.Angle)
	default:
		s.Log.Warn().Int("kind", int(kind)).Msg("spawn of unknown entity kind ignored")
		return 0
	}
	if err != nil {
		s.Log.Error().Err(err).Str("kind", kind.String()).Msg("spawn failed")
		return 0
	}

	if kind == boss.EntityDrone {
		pushEvent(s.World, EventEnemySpawned, kind.String())
	}
	return boss.EntityID(e)
}

func (s *WorldSink) DestroyEntity(id boss.EntityID) {
	ecs.DestroyEntity(s.World, ecs.Entity(id))
}

func (s *WorldSink) ReportDefeated() {
	if enc, ok := ecs.Get(s.World, s.Boss, component.BossEncounterComponent.Kind()); ok {
		enc.Defeated = true
	}
}

func (s *WorldSink) ReportHealthFraction(fraction float64) {
	if bar, ok := ecs.Get(s.World, s.Boss, component.HealthBarComponent.Kind()); ok {
		bar.Fraction = fraction
		bar.Visible = true
	}
}
