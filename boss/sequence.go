package boss

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/common"
)

// sequence is one running behaviour. Step advances it by one frame and
// reports completion. Abort stops it and releases anything it owns.
type sequence interface {
	Step(dt float64) bool
	Abort()
}

// animationListener is implemented by sequences that wait on an animator
// state.
type animationListener interface {
	animationStateReached(state string)
}

// spawnListener is implemented by sequences that wait on spawned children.
type spawnListener interface {
	childSpawned(id EntityID)
}

// body is the boss's kinematic state. Only sequences write it.
type body struct {
	pos      cp.Vector
	rotation float64
}

// env bundles what every sequence reads from its controller.
type env struct {
	cfg  *Config
	sink Sink
	rng  Rand
	body *body
}

// phaseTimer tracks one timed phase. A period <= 0 finishes on the first tick.
type phaseTimer struct {
	elapsed float64
	period  float64
}

func (t *phaseTimer) reset(period float64) {
	t.elapsed = 0
	t.period = period
}

func (t *phaseTimer) tick(dt float64) float64 {
	t.elapsed += dt
	return common.Fraction(t.elapsed, t.period)
}

func (t *phaseTimer) lerp(start, end float64) float64 {
	return common.LerpOver(start, end, t.elapsed, t.period)
}

func (t *phaseTimer) done() bool {
	return t.period <= 0 || t.elapsed >= t.period
}
