package prefabs

import "gopkg.in/yaml.v3"

// EntityBuildSpec is a component-map prefab consumed by entity.BuildEntity.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Rotation float64 `yaml:"rotation"`
}

type HealthComponentSpec struct {
	Max float64 `yaml:"max"`
}

type ShapeComponentSpec struct {
	Radius float64    `yaml:"radius"`
	Color  *YAMLColor `yaml:"color"`
}

type AnimationStateComponentSpec struct {
	Duration float64 `yaml:"duration"`
	Loop     bool    `yaml:"loop"`
	Next     string  `yaml:"next"`
}

type AnimationComponentSpec struct {
	Initial  string                                 `yaml:"initial"`
	States   map[string]AnimationStateComponentSpec `yaml:"states"`
	Triggers map[string]string                      `yaml:"triggers"`
}

type EnemyBehaviorComponentSpec struct {
	Kind          string  `yaml:"kind"`
	Speed         float64 `yaml:"speed"`
	Direction     VecSpec `yaml:"direction"`
	Amplitude     float64 `yaml:"amplitude"`
	HoverSpeed    float64 `yaml:"hover_speed"`
	Register      bool    `yaml:"register"`
	ContactDamage float64 `yaml:"contact_damage"`
}

type AudioComponentSpec struct {
	CueLength float64            `yaml:"cue_length"`
	Volumes   map[string]float64 `yaml:"volumes"`
}

type MusicPlayerComponentSpec struct {
	TrackVolumes map[string]float64 `yaml:"track_volumes"`
}

type TTLComponentSpec struct {
	Frames int `yaml:"frames"`
}

type RocketComponentSpec struct {
	Damage float64 `yaml:"damage"`
}

type LaserComponentSpec struct {
	Length float64 `yaml:"length"`
	Width  float64 `yaml:"width"`
	Damage float64 `yaml:"damage"`
}
