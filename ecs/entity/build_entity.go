package entity

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
	"github.com/milk9111/bossfight/prefabs"
)

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":     addPlayerTag,
	"transform":      addTransform,
	"health":         addHealth,
	"health_bar":     addHealthBar,
	"shape":          addShape,
	"animation":      addAnimation,
	"enemy_behavior": addEnemyBehavior,
	"rocket":         addRocket,
	"laser":          addLaser,
	"audio":          addAudio,
	"music_player":   addMusicPlayer,
	"ttl":            addTTL,
}

var componentBuildOrder = []string{
	"player_tag",
	"transform",
	"health",
	"health_bar",
	"shape",
	"animation",
	"enemy_behavior",
	"rocket",
	"laser",
	"audio",
	"music_player",
	"ttl",
}

var errNilWorld = errors.New("world is nil")

// BuildEntity creates an entity from a component-map prefab.
func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: %w", errNilWorld)
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return buildComponents(w, prefabPath, spec.Components)
}

func buildComponents(w *ecs.World, prefabPath string, components map[string]any) (ecs.Entity, error) {
	if len(components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	names := make([]string, 0, len(components))
	for _, name := range componentBuildOrder {
		if _, ok := components[name]; ok {
			names = append(names, name)
		}
	}
	var unknown []string
	for name := range components {
		if _, ok := componentRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, unknown[0])
	}

	for _, name := range names {
		if err := componentRegistry[name](w, e, components[name], ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
	}

	return e, nil
}

// SetEntityTransform places e, creating its Transform if needed.
func SetEntityTransform(w *ecs.World, e ecs.Entity, pos cp.Vector, rotation float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{}
	}
	t.X = pos.X
	t.Y = pos.Y
	t.Rotation = rotation
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TransformComponentSpec](raw)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: spec.X, Y: spec.Y, Rotation: spec.Rotation})
}

func addHealth(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.HealthComponentSpec](raw)
	if err != nil {
		return err
	}
	if spec.Max <= 0 {
		return fmt.Errorf("health max must be positive, got %v", spec.Max)
	}
	return ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Max: spec.Max, Current: spec.Max})
}

func addHealthBar(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.HealthBarComponent.Kind(), &component.HealthBar{Fraction: 1})
}

func addShape(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.ShapeComponentSpec](raw)
	if err != nil {
		return err
	}
	shape := &component.Shape{Radius: spec.Radius}
	if spec.Color != nil {
		shape.Color = spec.Color.Color
	}
	return ecs.Add(w, e, component.ShapeComponent.Kind(), shape)
}

func addAnimation(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.AnimationComponentSpec](raw)
	if err != nil {
		return err
	}
	if _, ok := spec.States[spec.Initial]; !ok {
		return fmt.Errorf("animation initial state %q is not defined", spec.Initial)
	}

	anim := &component.Animation{
		States:   make(map[string]component.AnimationState, len(spec.States)),
		Triggers: make(map[string]string, len(spec.Triggers)),
		Current:  spec.Initial,
	}
	for name, s := range spec.States {
		if s.Next != "" {
			if _, ok := spec.States[s.Next]; !ok {
				return fmt.Errorf("animation state %q: next state %q is not defined", name, s.Next)
			}
		}
		anim.States[name] = component.AnimationState{Duration: s.Duration, Loop: s.Loop, Next: s.Next}
	}
	for trigger, state := range spec.Triggers {
		if _, ok := spec.States[state]; !ok {
			return fmt.Errorf("animation trigger %q: state %q is not defined", trigger, state)
		}
		anim.Triggers[trigger] = state
	}
	return ecs.Add(w, e, component.AnimationComponent.Kind(), anim)
}

func addEnemyBehavior(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.EnemyBehaviorComponentSpec](raw)
	if err != nil {
		return err
	}
	kind, err := component.ParseEnemyKind(spec.Kind)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.EnemyBehaviorComponent.Kind(), &component.EnemyBehavior{
		Kind:          kind,
		Speed:         spec.Speed,
		Alive:         true,
		Direction:     spec.Direction.Vector(),
		Amplitude:     spec.Amplitude,
		HoverSpeed:    spec.HoverSpeed,
		Register:      spec.Register,
		ContactDamage: spec.ContactDamage,
	})
}

func addRocket(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.RocketComponentSpec](raw)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.RocketComponent.Kind(), &component.Rocket{Damage: spec.Damage})
}

func addLaser(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.LaserComponentSpec](raw)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.LaserComponent.Kind(), &component.Laser{Length: spec.Length, Width: spec.Width, Damage: spec.Damage})
}

func addAudio(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.AudioComponentSpec](raw)
	if err != nil {
		return err
	}
	volumes := make(map[string]float64, len(spec.Volumes))
	for cue, v := range spec.Volumes {
		volumes[cue] = v
	}
	return ecs.Add(w, e, component.AudioComponent.Kind(), &component.Audio{CueLength: spec.CueLength, Volumes: volumes})
}

func addMusicPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.MusicPlayerComponentSpec](raw)
	if err != nil {
		return err
	}
	volumes := make(map[string]float64, len(spec.TrackVolumes))
	for track, v := range spec.TrackVolumes {
		volumes[track] = v
	}
	return ecs.Add(w, e, component.MusicPlayerComponent.Kind(), &component.MusicPlayer{TrackVolumes: volumes})
}

func addTTL(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TTLComponentSpec](raw)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: spec.Frames})
}
