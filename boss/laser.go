package boss

import (
	"github.com/milk9111/bossfight/arena"
	"github.com/milk9111/bossfight/common"
)

// Sweep is the laser's turn for one firing. Positive angles turn
// counter-clockwise.
type Sweep struct {
	Angle    float64
	Duration float64
}

// SweepFor picks the sweep for a boss at p. The centre sweep turns a random
// way; corner sweeps always turn away from the nearest wall.
func SweepFor(p arena.Position, cfg LaserConfig, rng Rand) Sweep {
	if p == arena.Centre {
		angle := cfg.CentreAngle
		if rng.IntN(2) == 1 {
			angle = -angle
		}
		return Sweep{Angle: angle, Duration: cfg.CentreDuration}
	}
	if p.IsLeft() {
		return Sweep{Angle: cfg.CornerAngle, Duration: cfg.CornerDuration}
	}
	return Sweep{Angle: -cfg.CornerAngle, Duration: cfg.CornerDuration}
}

type laserPhase int

const (
	laserCharging laserPhase = iota
	laserFiring
	laserCooling
	laserTurningBack
)

func (p laserPhase) String() string {
	switch p {
	case laserCharging:
		return "charging"
	case laserFiring:
		return "firing"
	case laserCooling:
		return "cooling"
	default:
		return "turning_back"
	}
}

// laserSequence charges, sweeps the beam, fades the beam audio, then turns
// the boss back to rest when it fired from a corner.
type laserSequence struct {
	env
	at      arena.Position
	sweep   Sweep
	phase   laserPhase
	started bool
	charged bool
	beam    EntityID
	timer   phaseTimer

	// sounding is set from the first beam frame until the fade reaches zero.
	sounding bool
}

func newLaserSequence(e env, at arena.Position) *laserSequence {
	return &laserSequence{
		env:   e,
		at:    at,
		sweep: SweepFor(at, e.cfg.Laser, e.rng),
	}
}

func (l *laserSequence) Step(dt float64) bool {
	switch l.phase {
	case laserCharging:
		if !l.started {
			l.started = true
			l.sink.SetAnimatorTrigger(TriggerCharge)
			return false
		}
		// Waits indefinitely; the host must eventually report LaserCharged.
		if !l.charged {
			return false
		}
		l.beam = l.sink.SpawnEntity(EntityLaser, l.body.pos, SpawnParams{Angle: l.body.rotation})
		l.sink.SetAudioVolume(l.cfg.Audio.Laser, 1)
		l.sink.PlayAudioCue(l.cfg.Audio.Laser)
		l.sounding = true
		l.phase = laserFiring
		l.timer.reset(l.sweep.Duration)
		return false

	case laserFiring:
		l.timer.tick(dt)
		l.body.rotation = l.timer.lerp(0, l.sweep.Angle)
		if !l.timer.done() {
			return false
		}
		l.releaseBeam()
		l.phase = laserCooling
		l.timer.reset(l.cfg.Laser.Cooldown)
		return false

	case laserCooling:
		l.timer.tick(dt)
		l.sink.SetAudioVolume(l.cfg.Audio.Laser, l.timer.lerp(1, 0))
		if !l.timer.done() {
			return false
		}
		l.sounding = false
		if l.at == arena.Centre {
			l.body.rotation = common.NormalizeDegrees(l.body.rotation)
			return true
		}
		l.phase = laserTurningBack
		l.timer.reset(l.cfg.Laser.TurnBack)
		return false

	default:
		l.timer.tick(dt)
		l.body.rotation = l.timer.lerp(l.sweep.Angle, 0)
		return l.timer.done()
	}
}

func (l *laserSequence) animationStateReached(state string) {
	if state == StateLaserCharged {
		l.charged = true
	}
}

func (l *laserSequence) releaseBeam() {
	if l.beam == 0 {
		return
	}
	l.sink.DestroyEntity(l.beam)
	l.beam = 0
}

// Abort removes the beam and silences it. The boss keeps its facing.
func (l *laserSequence) Abort() {
	l.releaseBeam()
	if l.sounding {
		l.sounding = false
		l.sink.SetAudioVolume(l.cfg.Audio.Laser, 0)
	}
}
