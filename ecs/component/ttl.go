package component

// TTL counts down the frames an entity has left. Spent projectiles and
// exploded drones carry one so their death clip plays out before removal.
type TTL struct {
	Frames int
}

var TTLComponent = NewComponent[TTL]()
