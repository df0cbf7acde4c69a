package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/boss"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
	"github.com/milk9111/bossfight/prefabs"
)

const (
	PlayerPrefab      = "player.yaml"
	DronePrefab       = "drone.yaml"
	RocketPrefab      = "rocket.yaml"
	LaserPrefab       = "laser.yaml"
	MusicPlayerPrefab = "music_player.yaml"
	AudioMixerPrefab  = "audio_mixer.yaml"
)

// NewBoss builds the boss entity at its configured start station. The
// controller itself is created by the boss system on its first update.
func NewBoss(w *ecs.World, spec *prefabs.BossSpec, cfg boss.Config) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("new boss: %w", errNilWorld)
	}
	if spec == nil {
		return 0, fmt.Errorf("new boss: spec is nil")
	}

	e, err := buildComponents(w, spec.Name, spec.Components)
	if err != nil {
		return 0, err
	}
	if !ecs.Has(w, e, component.HealthComponent.Kind()) {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("new boss: %q has no health component", spec.Name)
	}

	if err := ecs.Add(w, e, component.BossTagComponent.Kind(), &component.BossTag{}); err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, cfg.Layout.Coord(cfg.Start), 0); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.BossEncounterComponent.Kind(), &component.BossEncounter{Config: cfg}); err != nil {
		return 0, err
	}
	return e, nil
}

func NewPlayer(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, PlayerPrefab)
}

func NewMusicPlayer(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, MusicPlayerPrefab)
}

func NewAudioMixer(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, AudioMixerPrefab)
}

// NewDrone spawns a summoned enemy. With SpawnIn set it stays inert until its
// spawn animation reaches Idle.
func NewDrone(w *ecs.World, pos cp.Vector, params boss.SpawnParams, owner boss.EntityID) (ecs.Entity, error) {
	e, err := BuildEntity(w, DronePrefab)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, pos, params.Angle); err != nil {
		return 0, err
	}

	behavior, ok := ecs.Get(w, e, component.EnemyBehaviorComponent.Kind())
	if !ok {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("new drone: %s has no enemy_behavior", DronePrefab)
	}
	behavior.Owner = owner
	behavior.Origin = pos
	behavior.Register = params.Register
	behavior.Alive = !params.SpawnIn
	if err := ecs.Add(w, e, component.DroneComponent.Kind(), &component.Drone{Index: params.Index}); err != nil {
		return 0, err
	}

	if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok && !params.SpawnIn {
		if _, has := anim.States["Idle"]; has {
			anim.Current = "Idle"
		}
	}
	return e, nil
}

// NewRocket spawns a rocket whose flight starts at pos.
func NewRocket(w *ecs.World, pos cp.Vector, params boss.SpawnParams, cfg boss.RocketConfig) (ecs.Entity, error) {
	e, err := BuildEntity(w, RocketPrefab)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, pos, params.Angle); err != nil {
		return 0, err
	}

	rocket, ok := ecs.Get(w, e, component.RocketComponent.Kind())
	if !ok {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("new rocket: %s has no rocket component", RocketPrefab)
	}
	rocket.Flight = boss.NewRocketFlight(pos, params.Displacement, cfg)
	rocket.Flight.Rotation = params.Angle
	return e, nil
}

// NewLaser spawns the beam attached to owner.
func NewLaser(w *ecs.World, owner boss.EntityID, pos cp.Vector, angle float64) (ecs.Entity, error) {
	e, err := BuildEntity(w, LaserPrefab)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, pos, angle); err != nil {
		return 0, err
	}

	laser, ok := ecs.Get(w, e, component.LaserComponent.Kind())
	if !ok {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("new laser: %s has no laser component", LaserPrefab)
	}
	laser.Owner = owner
	return e, nil
}
