package boss

import "github.com/jakecoffman/cp"

// EntityID identifies an entity owned by the host.
type EntityID uint64

// EntityKind is the kind of entity the boss asks the host to spawn.
type EntityKind int

const (
	EntityDrone EntityKind = iota
	EntityRocket
	EntityLaser
)

func (k EntityKind) String() string {
	switch k {
	case EntityDrone:
		return "drone"
	case EntityRocket:
		return "rocket"
	case EntityLaser:
		return "laser"
	default:
		return "unknown"
	}
}

// SpawnParams carries the initial state of a spawned entity.
type SpawnParams struct {
	// Index orders entities spawned by the same action (rocket 0 is left).
	Index int
	// Displacement is the rocket launch offset.
	Displacement cp.Vector
	// SpawnIn asks the entity to play its spawn-in animation before acting.
	SpawnIn bool
	// Register lets the host track the entity in its global enemy list.
	Register bool
	// Angle is the initial facing in degrees.
	Angle float64
}

// Sink receives every request the controller emits. Implementations must not
// call back into the controller synchronously.
type Sink interface {
	PlayAudioCue(cue string)
	SetAudioVolume(cue string, volume float64)
	SetAnimatorTrigger(trigger string)
	// SetBackgroundMusic switches the theme; an empty track stops it.
	SetBackgroundMusic(track string)
	SpawnEntity(kind EntityKind, pos cp.Vector, params SpawnParams) EntityID
	DestroyEntity(id EntityID)
	ReportDefeated()
	ReportHealthFraction(fraction float64)
}
