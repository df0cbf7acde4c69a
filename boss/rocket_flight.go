package boss

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/common"
)

// RocketPhase is the stage of a single rocket's flight.
type RocketPhase int

const (
	RocketLaunching RocketPhase = iota
	RocketSpinning
	RocketAiming
	RocketFiring
	RocketExploded
)

func (p RocketPhase) String() string {
	switch p {
	case RocketLaunching:
		return "launching"
	case RocketSpinning:
		return "spinning"
	case RocketAiming:
		return "aiming"
	case RocketFiring:
		return "firing"
	default:
		return "exploded"
	}
}

// RocketFlight steers one rocket: out of the launcher while spinning, a few
// spins in place, a turn to face the player, then a straight run. Rotation is
// in degrees with 0 pointing up.
type RocketFlight struct {
	Phase    RocketPhase
	Pos      cp.Vector
	Rotation float64

	cfg    RocketConfig
	launch cp.Vector
	aim    float64
	timer  phaseTimer
}

func NewRocketFlight(start, displacement cp.Vector, cfg RocketConfig) *RocketFlight {
	return &RocketFlight{
		Phase:  RocketLaunching,
		Pos:    start,
		cfg:    cfg,
		launch: start.Add(displacement),
	}
}

// AimAngle is the rotation that points a rocket at from toward target.
func AimAngle(from, target cp.Vector) float64 {
	deg := target.Sub(from).ToAngle() * 180 / math.Pi
	return common.NormalizeDegrees(deg - 90)
}

// Heading is the unit vector the rocket currently faces.
func (f *RocketFlight) Heading() cp.Vector {
	return cp.ForAngle(f.Rotation*math.Pi/180 + math.Pi/2)
}

// Step advances the flight and reports whether the phase changed.
func (f *RocketFlight) Step(dt float64, player cp.Vector) bool {
	before := f.Phase
	switch f.Phase {
	case RocketLaunching:
		f.spin(dt)
		if f.cfg.LaunchSpeed <= 0 {
			f.Pos = f.launch
		} else {
			f.Pos = f.Pos.LerpConst(f.launch, f.cfg.LaunchSpeed*dt)
		}
		if f.Pos.Near(f.launch, arriveEpsilon) {
			f.Pos = f.launch
			f.Phase = RocketSpinning
			f.timer.reset(f.cfg.SettleTime())
		}

	case RocketSpinning:
		f.timer.tick(dt)
		f.spin(dt)
		if f.timer.done() {
			f.startAim(player)
		}

	case RocketAiming:
		f.timer.tick(dt)
		f.spin(dt)
		if f.timer.done() {
			f.Rotation = f.aim
			f.Phase = RocketFiring
		}

	case RocketFiring:
		f.Pos = f.Pos.Add(f.Heading().Mult(f.cfg.FiringSpeed * dt))
	}
	return f.Phase != before
}

// startAim measures the turn left to face the player at the spin rate.
func (f *RocketFlight) startAim(player cp.Vector) {
	f.Rotation = common.NormalizeDegrees(f.Rotation)
	f.aim = AimAngle(f.Pos, player)
	f.Phase = RocketAiming

	turn := common.NormalizeDegrees(f.aim - f.Rotation)
	if f.cfg.SpinRate <= 0 {
		f.timer.reset(0)
		return
	}
	f.timer.reset(turn / common.FullTurn / f.cfg.SpinRate)
}

func (f *RocketFlight) spin(dt float64) {
	f.Rotation += common.FullTurn * f.cfg.SpinRate * dt
}

// Explode stops the rocket. It reports false if it had already exploded.
func (f *RocketFlight) Explode() bool {
	if f.Phase == RocketExploded {
		return false
	}
	f.Phase = RocketExploded
	return true
}
