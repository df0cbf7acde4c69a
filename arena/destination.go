package arena

// Rand is the random source used for destination picks. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// DestinationSlots returns the weighted pool ChooseDestination draws from.
// From the centre the pool is the four corners. From a corner it is every
// other station plus one extra centre slot, since the corners would otherwise
// outnumber the centre.
func DestinationSlots(current Position) []Position {
	current.mustValid()

	slots := make([]Position, 0, NumPositions)
	for _, p := range Positions() {
		if p != current {
			slots = append(slots, p)
		}
	}
	if current != Centre {
		slots = append(slots, Centre)
	}
	return slots
}

// ChooseDestination picks a station other than current.
func ChooseDestination(current Position, rng Rand) Position {
	slots := DestinationSlots(current)
	return slots[rng.IntN(len(slots))]
}
