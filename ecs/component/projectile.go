package component

import "github.com/milk9111/bossfight/boss"

// Rocket wraps the flight of one boss rocket.
type Rocket struct {
	Flight *boss.RocketFlight
	Damage float64
}

var RocketComponent = NewComponent[Rocket]()

// Laser is the beam hanging off a boss. It follows the owner's rotation.
type Laser struct {
	Owner  boss.EntityID
	Length float64
	Width  float64
	Damage float64
	// Hit is set once the beam has damaged the player.
	Hit bool
}

var LaserComponent = NewComponent[Laser]()
