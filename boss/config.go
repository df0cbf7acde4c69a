package boss

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/arena"
)

// Animator triggers and states exchanged with the animation collaborator.
const (
	TriggerAction  = "Action"
	TriggerIdle    = "Idle"
	TriggerCharge  = "Charge"
	TriggerExplode = "Explode"

	StateLaserCharged = "LaserCharged"
)

// ShakeConfig describes the warning shake played before a move.
type ShakeConfig struct {
	Amplitude    float64
	Duration     float64
	Oscillations int
}

type DroneConfig struct {
	LeftOffset  cp.Vector
	RightOffset cp.Vector
}

// RocketConfig covers both the barrage timing and each rocket's flight.
type RocketConfig struct {
	// Delay between consecutive launches.
	Delay float64
	// Displacements are the launch offsets for the left, middle and right
	// rocket.
	Displacements [3]cp.Vector
	// WaitSettle makes the barrage wait Spins/SpinRate seconds after the last
	// launch.
	WaitSettle bool

	LaunchSpeed float64
	FiringSpeed float64
	Spins       float64
	// SpinRate is in full turns per second.
	SpinRate float64
}

// SettleTime is the spin-up period of a single rocket.
func (c RocketConfig) SettleTime() float64 {
	if c.SpinRate <= 0 {
		return 0
	}
	return c.Spins / c.SpinRate
}

// LaserConfig angles are in degrees, durations in seconds.
type LaserConfig struct {
	CentreAngle    float64
	CentreDuration float64
	CornerAngle    float64
	CornerDuration float64
	Cooldown       float64
	TurnBack       float64
}

type CooldownConfig struct {
	Base     float64
	Variance float64
}

// AudioConfig names the cues the boss asks the audio collaborator to play.
type AudioConfig struct {
	Wake    string
	Explode string
	Laser   string
}

type MusicConfig struct {
	Dormant string
	Battle  string
}

// Config is the immutable tuning of one encounter.
type Config struct {
	Layout     arena.Layout
	Start      arena.Position
	RouteStyle arena.RouteStyle

	Shake      ShakeConfig
	FirstShake ShakeConfig
	Speed      float64

	Drones   DroneConfig
	Rockets  RocketConfig
	Laser    LaserConfig
	Cooldown CooldownConfig

	Audio AudioConfig
	Music MusicConfig
}

func DefaultConfig() Config {
	return Config{
		Layout:     arena.DefaultLayout(),
		Start:      arena.TopLeft,
		RouteStyle: arena.RouteDirect,
		Shake:      ShakeConfig{Amplitude: 0.08, Duration: 0.8, Oscillations: 4},
		FirstShake: ShakeConfig{Amplitude: 0.08, Duration: 2.4, Oscillations: 10},
		Speed:      12,
		Drones: DroneConfig{
			LeftOffset:  cp.Vector{X: -2, Y: 0},
			RightOffset: cp.Vector{X: 2, Y: 0},
		},
		Rockets: RocketConfig{
			Delay: 0.35,
			Displacements: [3]cp.Vector{
				{X: -1.5, Y: 1.5},
				{X: 0, Y: 2},
				{X: 1.5, Y: 1.5},
			},
			WaitSettle:  true,
			LaunchSpeed: 4,
			FiringSpeed: 9,
			Spins:       2,
			SpinRate:    1.5,
		},
		Laser: LaserConfig{
			CentreAngle:    360,
			CentreDuration: 4,
			CornerAngle:    90,
			CornerDuration: 2,
			Cooldown:       1,
			TurnBack:       0.75,
		},
		Cooldown: CooldownConfig{Base: 1.5, Variance: 0.5},
		Audio: AudioConfig{
			Wake:    "boss_wake",
			Explode: "boss_explode",
			Laser:   "laser_fire",
		},
		Music: MusicConfig{
			Dormant: "dormant_theme",
			Battle:  "battle_theme",
		},
	}
}

var ErrInvalidConfig = errors.New("boss: invalid config")

// Validate rejects configs that cannot describe an arena. Degenerate timings
// are accepted; every timed phase still advances.
func (c Config) Validate() error {
	if !c.Start.Valid() {
		return fmt.Errorf("%w: start position %d", ErrInvalidConfig, int(c.Start))
	}
	if c.Layout.HalfWidth <= 0 || c.Layout.HalfHeight <= 0 {
		return fmt.Errorf("%w: layout extents %vx%v", ErrInvalidConfig, c.Layout.HalfWidth, c.Layout.HalfHeight)
	}
	if c.Cooldown.Variance < 0 {
		return fmt.Errorf("%w: negative cooldown variance", ErrInvalidConfig)
	}
	return nil
}
