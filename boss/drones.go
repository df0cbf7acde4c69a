package boss

import "github.com/jakecoffman/cp"

// summonSequence spawns two drones and waits for both to finish spawning in.
type summonSequence struct {
	env
	started bool
	pending []EntityID
	spawned map[EntityID]bool
}

func newSummonSequence(e env) *summonSequence {
	return &summonSequence{env: e, spawned: make(map[EntityID]bool)}
}

func (s *summonSequence) Step(float64) bool {
	if !s.started {
		s.started = true
		for i, offset := range []cp.Vector{s.cfg.Drones.LeftOffset, s.cfg.Drones.RightOffset} {
			params := SpawnParams{Index: i, SpawnIn: true, Register: false}
			if id := s.sink.SpawnEntity(EntityDrone, s.body.pos.Add(offset), params); id != 0 {
				s.pending = append(s.pending, id)
			}
		}
		return false
	}

	// Waits indefinitely; every drone must eventually report spawning in.
	for _, id := range s.pending {
		if !s.spawned[id] {
			return false
		}
	}
	return true
}

func (s *summonSequence) childSpawned(id EntityID) {
	s.spawned[id] = true
}

// Abort leaves the drones alive; they resolve on their own.
func (s *summonSequence) Abort() {}
