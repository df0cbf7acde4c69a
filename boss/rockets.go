package boss

// timeEpsilon absorbs float drift when comparing accumulated frame time
// against launch deadlines.
const timeEpsilon = 1e-9

// barrageSequence launches the left, middle and right rockets one delay
// apart, then optionally waits for the last one to finish spinning up.
type barrageSequence struct {
	env
	next    int
	elapsed float64
	settle  phaseTimer
}

func newBarrageSequence(e env) *barrageSequence {
	b := &barrageSequence{env: e}
	b.settle.reset(e.cfg.Rockets.SettleTime())
	return b
}

func (b *barrageSequence) Step(dt float64) bool {
	rockets := &b.cfg.Rockets
	for b.next < len(rockets.Displacements) && b.elapsed+timeEpsilon >= float64(b.next)*rockets.Delay {
		b.sink.SpawnEntity(EntityRocket, b.body.pos, SpawnParams{
			Index:        b.next,
			Displacement: rockets.Displacements[b.next],
		})
		b.next++
	}
	if b.next < len(rockets.Displacements) {
		b.elapsed += dt
		return false
	}

	if !rockets.WaitSettle || b.settle.done() {
		return true
	}
	b.settle.tick(dt)
	return false
}

// Launched reports how many rockets are in flight.
func (b *barrageSequence) Launched() int {
	return b.next
}

// Abort leaves launched rockets alone; each resolves on its own.
func (b *barrageSequence) Abort() {}
