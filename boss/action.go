package boss

import (
	"fmt"
	"strings"

	"github.com/milk9111/bossfight/arena"
)

// ActionKind is one of the behaviours the scheduler can pick.
type ActionKind int

const (
	Move ActionKind = iota
	SummonDrones
	LaunchRockets
	FireLaser
)

// NumActions is the number of action kinds.
const NumActions = 4

var actionNames = [NumActions]string{"move", "summon_drones", "launch_rockets", "fire_laser"}

// Actions lists every kind in enum order.
func Actions() []ActionKind {
	return []ActionKind{Move, SummonDrones, LaunchRockets, FireLaser}
}

func (k ActionKind) Valid() bool {
	return k >= Move && k <= FireLaser
}

func (k ActionKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("action(%d)", int(k))
	}
	return actionNames[k]
}

func ParseAction(name string) (ActionKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range actionNames {
		if n == name {
			return ActionKind(i), nil
		}
	}
	return Move, fmt.Errorf("boss: unknown action %q", name)
}

// Usable reports whether kind can run at p. Rockets need headroom above the
// boss and the laser needs floor below it.
func Usable(kind ActionKind, p arena.Position) bool {
	switch kind {
	case LaunchRockets:
		return !p.IsTop()
	case FireLaser:
		return !p.IsBottom()
	default:
		return true
	}
}
