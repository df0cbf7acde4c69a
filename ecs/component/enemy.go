package component

import (
	"fmt"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/boss"
)

// EnemyKind selects how an enemy moves.
type EnemyKind int

const (
	EnemyHoming EnemyKind = iota
	EnemyRail
	EnemyImmobile
	EnemyBoss
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyHoming:
		return "homing"
	case EnemyRail:
		return "rail"
	case EnemyImmobile:
		return "immobile"
	case EnemyBoss:
		return "boss"
	default:
		return fmt.Sprintf("enemy(%d)", int(k))
	}
}

func ParseEnemyKind(name string) (EnemyKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "homing":
		return EnemyHoming, nil
	case "rail":
		return EnemyRail, nil
	case "immobile":
		return EnemyImmobile, nil
	case "boss":
		return EnemyBoss, nil
	default:
		return EnemyHoming, fmt.Errorf("component: unknown enemy kind %q", name)
	}
}

// EnemyBehavior is the movement half of an enemy. Alive is false while the
// enemy plays its spawn-in animation or after it explodes.
type EnemyBehavior struct {
	Kind  EnemyKind
	Speed float64
	Alive bool

	// Rail
	Direction cp.Vector
	// Immobile
	Origin     cp.Vector
	Amplitude  float64
	HoverSpeed float64
	Clock      float64

	// Owner is the boss that summoned this enemy, zero if none.
	Owner boss.EntityID
	// Register marks enemies counted by the host's enemy tracking.
	Register bool
	// ContactDamage is dealt to the player on touch.
	ContactDamage float64
}

var EnemyBehaviorComponent = NewComponent[EnemyBehavior]()

// Drone marks an enemy summoned by the boss. Index is 0 for the left drone.
type Drone struct {
	Index int
}

var DroneComponent = NewComponent[Drone]()
