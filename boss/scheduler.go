package boss

import "github.com/milk9111/bossfight/arena"

// Rand is the random source the boss draws from. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// Selection is the outcome of one scheduling round.
type Selection struct {
	// Drawn is the kind the roulette landed on; it receives the weight update.
	Drawn ActionKind
	// Executed is what actually runs after positional masking.
	Executed ActionKind
	// Forced marks the wake-up move, which bypasses the scheduler.
	Forced bool
}

// Masked reports whether the drawn kind was replaced by a move.
func (s Selection) Masked() bool {
	return s.Drawn != s.Executed
}

// Scheduler performs weighted roulette selection over ActionKinds.
type Scheduler struct {
	rng Rand
}

func NewScheduler(rng Rand) *Scheduler {
	return &Scheduler{rng: rng}
}

// Select draws the next action for a boss at current.
func (s *Scheduler) Select(current arena.Position, weights Weights) (Selection, Weights) {
	total := weights.Total()
	draw := s.rng.IntN(total) + 1
	drawn := Roulette(weights, draw)

	sel := Selection{Drawn: drawn, Executed: drawn}
	if !Usable(drawn, current) {
		sel.Executed = Move
	}
	return sel, weights.After(drawn)
}

// Roulette returns the first kind whose cumulative weight reaches draw. draw
// is in [1, weights.Total()]; larger draws select the last kind.
func Roulette(weights Weights, draw int) ActionKind {
	cumulative := 0
	for i, v := range weights {
		cumulative += v
		if cumulative >= draw {
			return ActionKind(i)
		}
	}
	return ActionKind(NumActions - 1)
}
