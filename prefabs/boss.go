package prefabs

import (
	"fmt"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/arena"
	"github.com/milk9111/bossfight/boss"
)

// BossSpec is the encounter prefab: the controller tuning plus the boss
// entity's components.
type BossSpec struct {
	Name       string         `yaml:"name"`
	Script     string         `yaml:"script"`
	Encounter  EncounterSpec  `yaml:"encounter"`
	Components map[string]any `yaml:"components"`
}

type EncounterSpec struct {
	Layout     LayoutSpec   `yaml:"layout"`
	Start      string       `yaml:"start"`
	RouteStyle string       `yaml:"route_style"`
	Shake      ShakeSpec    `yaml:"shake"`
	FirstShake ShakeSpec    `yaml:"first_shake"`
	Speed      float64      `yaml:"speed"`
	Drones     DronesSpec   `yaml:"drones"`
	Rockets    RocketsSpec  `yaml:"rockets"`
	Laser      LaserSpec    `yaml:"laser"`
	Cooldown   CooldownSpec `yaml:"cooldown"`
	Audio      BossAudio    `yaml:"audio"`
	Music      BossMusic    `yaml:"music"`
}

type LayoutSpec struct {
	Centre     VecSpec `yaml:"centre"`
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`
}

type ShakeSpec struct {
	Amplitude    float64 `yaml:"amplitude"`
	Duration     float64 `yaml:"duration"`
	Oscillations int     `yaml:"oscillations"`
}

type DronesSpec struct {
	Left  VecSpec `yaml:"left"`
	Right VecSpec `yaml:"right"`
}

type RocketsSpec struct {
	Delay         float64   `yaml:"delay"`
	Displacements []VecSpec `yaml:"displacements"`
	WaitSettle    bool      `yaml:"wait_settle"`
	LaunchSpeed   float64   `yaml:"launch_speed"`
	FiringSpeed   float64   `yaml:"firing_speed"`
	Spins         float64   `yaml:"spins"`
	SpinRate      float64   `yaml:"spin_rate"`
}

type LaserSpec struct {
	CentreAngle    float64 `yaml:"centre_angle"`
	CentreDuration float64 `yaml:"centre_duration"`
	CornerAngle    float64 `yaml:"corner_angle"`
	CornerDuration float64 `yaml:"corner_duration"`
	Cooldown       float64 `yaml:"cooldown"`
	TurnBack       float64 `yaml:"turn_back"`
}

type CooldownSpec struct {
	Base     float64 `yaml:"base"`
	Variance float64 `yaml:"variance"`
}

type BossAudio struct {
	Wake    string `yaml:"wake"`
	Explode string `yaml:"explode"`
	Laser   string `yaml:"laser"`
}

type BossMusic struct {
	Dormant string `yaml:"dormant"`
	Battle  string `yaml:"battle"`
}

// LoadBossSpec reads a boss prefab, from disk when present.
func LoadBossSpec(name string) (*BossSpec, error) {
	if strings.TrimSpace(name) == "" {
		name = "boss.yaml"
	}
	spec, err := LoadSpec[BossSpec](name)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func (v VecSpec) Vector() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

// Config converts the prefab into controller tuning and validates it.
func (s *BossSpec) Config() (boss.Config, error) {
	e := s.Encounter
	cfg := boss.Config{
		Layout: arena.Layout{
			Centre:     e.Layout.Centre.Vector(),
			HalfWidth:  e.Layout.HalfWidth,
			HalfHeight: e.Layout.HalfHeight,
		},
		Shake:      boss.ShakeConfig(e.Shake),
		FirstShake: boss.ShakeConfig(e.FirstShake),
		Speed:      e.Speed,
		Drones: boss.DroneConfig{
			LeftOffset:  e.Drones.Left.Vector(),
			RightOffset: e.Drones.Right.Vector(),
		},
		Rockets: boss.RocketConfig{
			Delay:       e.Rockets.Delay,
			WaitSettle:  e.Rockets.WaitSettle,
			LaunchSpeed: e.Rockets.LaunchSpeed,
			FiringSpeed: e.Rockets.FiringSpeed,
			Spins:       e.Rockets.Spins,
			SpinRate:    e.Rockets.SpinRate,
		},
		Laser:    boss.LaserConfig(e.Laser),
		Cooldown: boss.CooldownConfig(e.Cooldown),
		Audio:    boss.AudioConfig(e.Audio),
		Music:    boss.MusicConfig(e.Music),
	}

	if len(e.Rockets.Displacements) != len(cfg.Rockets.Displacements) {
		return boss.Config{}, fmt.Errorf("prefabs: boss %q: rockets need %d displacements, got %d",
			s.Name, len(cfg.Rockets.Displacements), len(e.Rockets.Displacements))
	}
	for i, d := range e.Rockets.Displacements {
		cfg.Rockets.Displacements[i] = d.Vector()
	}

	start := e.Start
	if start == "" {
		start = arena.TopLeft.String()
	}
	pos, err := arena.ParsePosition(start)
	if err != nil {
		return boss.Config{}, fmt.Errorf("prefabs: boss %q: %w", s.Name, err)
	}
	cfg.Start = pos

	style, err := arena.ParseRouteStyle(e.RouteStyle)
	if err != nil {
		return boss.Config{}, fmt.Errorf("prefabs: boss %q: %w", s.Name, err)
	}
	cfg.RouteStyle = style

	if err := cfg.Validate(); err != nil {
		return boss.Config{}, fmt.Errorf("prefabs: boss %q: %w", s.Name, err)
	}
	return cfg, nil
}
