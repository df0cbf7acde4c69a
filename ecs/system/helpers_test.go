package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/boss"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
	"github.com/milk9111/bossfight/ecs/entity"
	"github.com/milk9111/bossfight/prefabs"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// fixedRand answers every IntN with n modulo the range.
type fixedRand struct {
	n int
	f float64
}

func (r fixedRand) IntN(max int) int { return r.n % max }
func (r fixedRand) Float64() float64 { return r.f }

type eventLog struct {
	events []ecs.Event
}

func (l *eventLog) record(evt ecs.Event) {
	l.events = append(l.events, evt)
}

func (l *eventLog) types() []string {
	out := make([]string, 0, len(l.events))
	for _, evt := range l.events {
		out = append(out, evt.Type)
	}
	return out
}

func allSystems(log *eventLog, opts ...BossSystemOption) []ecs.System {
	return []ecs.System{
		NewDamageSystem(),
		NewBossSystem(opts...),
		NewAnimationSystem(),
		NewEnemySystem(zerolog.Nop()),
		NewRocketSystem(),
		NewLaserSystem(),
		NewTTLSystem(),
		NewAudioSystem(),
		NewMusicSystem(zerolog.Nop()),
		NewEventRecorder(log.record),
	}
}

func newWorld(t *testing.T, systems ...ecs.System) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	ecs.NewScheduler(systems...).Install(w)
	return w
}

func bossSpec(t *testing.T) (*prefabs.BossSpec, boss.Config) {
	t.Helper()
	spec, err := prefabs.LoadBossSpec("boss.yaml")
	require.NoError(t, err)
	cfg, err := spec.Config()
	require.NoError(t, err)
	return spec, cfg
}

func addBoss(t *testing.T, w *ecs.World) ecs.Entity {
	t.Helper()
	spec, cfg := bossSpec(t)
	e, err := entity.NewBoss(w, spec, cfg)
	require.NoError(t, err)
	return e
}

func addPlayer(t *testing.T, w *ecs.World, pos cp.Vector) ecs.Entity {
	t.Helper()
	e, err := entity.NewPlayer(w)
	require.NoError(t, err)
	require.NoError(t, entity.SetEntityTransform(w, e, pos, 0))
	return e
}

func mustGet[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T]) *T {
	t.Helper()
	v, ok := ecs.Get(w, e, kind)
	require.True(t, ok, "entity %s is missing a component", e)
	return v
}

func run(w *ecs.World, frames int) {
	for range frames {
		w.Update()
	}
}
