package boss

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/arena"
	"github.com/milk9111/bossfight/common"
)

// arriveEpsilon is the distance at which a waypoint counts as reached.
const arriveEpsilon = 1e-4

// moveSequence shakes the boss in place, then walks it along a route to a
// freshly chosen station.
type moveSequence struct {
	env
	router arena.Router
	from   arena.Position
	first  bool
	commit func(arena.Position)

	shake        ShakeConfig
	shaking      bool
	origin       cp.Vector
	shakeElapsed float64

	dest  arena.Position
	route arena.Route
	leg   int
}

func newMoveSequence(e env, router arena.Router, from arena.Position, first bool, commit func(arena.Position)) *moveSequence {
	shake := e.cfg.Shake
	if first {
		shake = e.cfg.FirstShake
	}
	return &moveSequence{
		env:     e,
		router:  router,
		from:    from,
		first:   first,
		commit:  commit,
		shake:   shake,
		shaking: true,
		origin:  e.body.pos,
	}
}

func (m *moveSequence) Step(dt float64) bool {
	if m.shaking {
		m.stepShake(dt)
		return false
	}
	return m.stepTraverse(dt)
}

func (m *moveSequence) stepShake(dt float64) {
	frac := common.Fraction(m.shakeElapsed, m.shake.Duration)
	dx := m.shake.Amplitude * math.Sin(2*math.Pi*float64(m.shake.Oscillations)*frac)
	m.body.pos = cp.Vector{X: m.origin.X + dx, Y: m.origin.Y}

	m.shakeElapsed += dt
	if m.shake.Duration > 0 && m.shakeElapsed < m.shake.Duration {
		return
	}

	m.shaking = false
	m.body.pos = m.origin
	if m.first {
		m.sink.SetBackgroundMusic(m.cfg.Music.Battle)
	}
	m.dest = arena.ChooseDestination(m.from, m.rng)
	m.route = m.router.Plan(m.from, m.dest)
}

func (m *moveSequence) stepTraverse(dt float64) bool {
	if m.leg < len(m.route) {
		target := m.cfg.Layout.Coord(m.route[m.leg])
		if m.cfg.Speed <= 0 {
			m.body.pos = target
		} else {
			m.body.pos = m.body.pos.LerpConst(target, m.cfg.Speed*dt)
		}
		if m.body.pos.Near(target, arriveEpsilon) {
			m.body.pos = target
			m.leg++
		}
	}
	if m.leg < len(m.route) {
		return false
	}
	m.commit(m.dest)
	return true
}

// Abort leaves the boss wherever it stopped. The station is not committed.
func (m *moveSequence) Abort() {}

// Destination is the chosen station once the shake has finished.
func (m *moveSequence) Destination() (arena.Position, bool) {
	if m.shaking {
		return 0, false
	}
	return m.dest, true
}

// Route is the planned route once the shake has finished.
func (m *moveSequence) Route() arena.Route {
	return m.route
}
