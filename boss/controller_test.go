package boss

import (
	"math/rand/v2"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/arena"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 1.0 / 60.0

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Shake = ShakeConfig{Amplitude: 0.1, Duration: 0.1, Oscillations: 2}
	cfg.FirstShake = ShakeConfig{Amplitude: 0.1, Duration: 0.25, Oscillations: 4}
	cfg.Speed = 40
	cfg.Cooldown = CooldownConfig{Base: 0.2, Variance: 0}
	cfg.Laser = LaserConfig{
		CentreAngle:    360,
		CentreDuration: 1,
		CornerAngle:    90,
		CornerDuration: 0.5,
		Cooldown:       0.25,
		TurnBack:       0.25,
	}
	return cfg
}

func newTestController(t *testing.T, cfg Config, rng Rand) (*Controller, *recordingSink) {
	t.Helper()
	sink := &recordingSink{}
	c, err := New(cfg, sink, WithRand(rng))
	require.NoError(t, err)
	return c, sink
}

// runUntil steps c until cond holds, failing after limit frames.
func runUntil(t *testing.T, c *Controller, limit int, cond func() bool) int {
	t.Helper()
	for i := 0; i < limit; i++ {
		if cond() {
			return i
		}
		c.Update(frame)
	}
	require.True(t, cond(), "condition not reached in %d frames (state %s)", limit, c.State())
	return limit
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New(DefaultConfig(), nil)
	assert.ErrorIs(t, err, ErrNilSink)

	cfg := DefaultConfig()
	cfg.Start = arena.Position(11)
	_, err = New(cfg, &recordingSink{})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestDormantIgnoresTime(t *testing.T) {
	c, sink := newTestController(t, testConfig(), &scriptedRand{})
	for i := 0; i < 600; i++ {
		c.Update(frame)
	}
	elapsed, _ := c.Cooldown()
	assert.Equal(t, Dormant, c.State())
	assert.Zero(t, elapsed)
	assert.Empty(t, sink.log)
	assert.Equal(t, c.Config().Layout.Coord(arena.TopLeft), c.Coord())
}

func TestWakeMovesToCentre(t *testing.T) {
	cfg := testConfig()
	// Slot 3 from a corner is the centre.
	c, sink := newTestController(t, cfg, &scriptedRand{ints: []int{3}})

	c.OnDamage(1, 0.95)
	require.Equal(t, Acting, c.State())
	sel, ok := c.CurrentAction()
	require.True(t, ok)
	assert.Equal(t, Move, sel.Executed)
	assert.True(t, sel.Forced)
	assert.Equal(t, []string{cfg.Audio.Wake}, sink.cues)
	assert.Equal(t, []string{""}, sink.music)
	assert.Equal(t, []string{TriggerAction}, sink.triggers)

	move := c.active.(*moveSequence)
	runUntil(t, c, 600, func() bool { _, ok := move.Destination(); return ok })
	assert.Equal(t, arena.Route{arena.TopRight, arena.BottomRight, arena.Centre}, move.Route())
	assert.Equal(t, []string{"", cfg.Music.Battle}, sink.music)

	runUntil(t, c, 600, func() bool { return c.State() == Idle })
	assert.Equal(t, arena.Centre, c.Position())
	assert.Equal(t, cfg.Layout.Coord(arena.Centre), c.Coord())
	assert.Equal(t, []string{TriggerAction, TriggerIdle}, sink.triggers)
	assert.Equal(t, NewWeights(), c.Weights(), "the wake move bypasses the scheduler")
}

func TestShakeRunsFullyBeforeTraversal(t *testing.T) {
	cfg := testConfig()
	c, _ := newTestController(t, cfg, &scriptedRand{ints: []int{0}})
	origin := c.Coord()
	c.OnDamage(1, 0.9)

	shakeFrames := 0
	move := c.active.(*moveSequence)
	for move.shaking {
		c.Update(frame)
		if move.shaking {
			assert.Equal(t, origin.Y, c.Coord().Y)
			assert.InDelta(t, origin.X, c.Coord().X, cfg.FirstShake.Amplitude+1e-9)
		}
		shakeFrames++
		require.Less(t, shakeFrames, 1000)
	}
	want := int(cfg.FirstShake.Duration / frame)
	assert.InDelta(t, want, shakeFrames, 1)
}

func TestZeroDurationsNeverHang(t *testing.T) {
	cfg := testConfig()
	cfg.Shake.Duration = 0
	cfg.FirstShake.Duration = 0
	cfg.Speed = 0
	cfg.Cooldown = CooldownConfig{}
	cfg.Laser = LaserConfig{}
	cfg.Rockets.Delay = 0
	cfg.Rockets.SpinRate = 0

	c, sink := newTestController(t, cfg, rand.New(rand.NewPCG(9, 4)))
	c.OnDamage(1, 0.5)
	frames := runUntil(t, c, 10, func() bool { return c.State() == Idle })
	assert.GreaterOrEqual(t, frames, 1, "the shake still takes a frame")

	// Keep cycling; every action must finish in bounded frames. The laser
	// waits on its charge signal and drones on their spawn-in, so deliver
	// both every frame.
	actions := 0
	for i := 0; i < 600; i++ {
		if c.State() == Idle {
			actions++
		}
		c.Update(frame)
		c.OnAnimationStateReached(StateLaserCharged)
		for _, sp := range sink.spawnsOf(EntityDrone) {
			c.OnChildEntitySpawned(sp.ID)
		}
	}
	assert.Greater(t, actions, 50)
	assert.NotEmpty(t, sink.spawnsOf(EntityLaser))
	assert.NotEmpty(t, sink.spawnsOf(EntityRocket))
	assert.True(t, c.Position().Valid())
}

func TestCooldownGatesNextAction(t *testing.T) {
	cfg := testConfig()
	cfg.Cooldown = CooldownConfig{Base: 1, Variance: 0.5}
	// Destination centre, cooldown draw 1.0 (base+variance), then a drones draw.
	rng := &scriptedRand{ints: []int{3, 1}, floats: []float64{1}}
	c, _ := newTestController(t, cfg, rng)
	c.OnDamage(1, 0.9)
	runUntil(t, c, 600, func() bool { return c.State() == Idle })

	_, period := c.Cooldown()
	assert.InDelta(t, 1.5, period, 1e-9)

	frames := runUntil(t, c, 600, func() bool { return c.State() == Acting })
	assert.InDelta(t, int(1.5/frame), frames, 2)
	sel, _ := c.CurrentAction()
	assert.Equal(t, SummonDrones, sel.Drawn)
	assert.Equal(t, Weights{2, 1, 2, 2}, c.Weights())
}

func TestCooldownNeverNegative(t *testing.T) {
	cfg := testConfig()
	cfg.Cooldown = CooldownConfig{Base: 0.1, Variance: 1}
	c, _ := newTestController(t, cfg, &scriptedRand{floats: []float64{0}})
	assert.Zero(t, c.nextCooldown())
}

func TestSummonWaitsForBothDrones(t *testing.T) {
	cfg := testConfig()
	c, sink := newTestController(t, cfg, &scriptedRand{})
	c.state = Idle
	c.begin(Selection{Drawn: SummonDrones, Executed: SummonDrones})

	c.Update(frame)
	drones := sink.spawnsOf(EntityDrone)
	require.Len(t, drones, 2)
	origin := cfg.Layout.Coord(cfg.Start)
	assert.Equal(t, origin.Add(cfg.Drones.LeftOffset), drones[0].Pos)
	assert.Equal(t, origin.Add(cfg.Drones.RightOffset), drones[1].Pos)
	for _, d := range drones {
		assert.True(t, d.Params.SpawnIn)
		assert.False(t, d.Params.Register)
	}

	for i := 0; i < 120; i++ {
		c.Update(frame)
	}
	assert.Equal(t, Acting, c.State())

	c.OnChildEntitySpawned(drones[0].ID)
	c.Update(frame)
	assert.Equal(t, Acting, c.State())

	c.OnChildEntitySpawned(drones[1].ID)
	c.Update(frame)
	assert.Equal(t, Idle, c.State())
}

func TestRocketSpawnTimes(t *testing.T) {
	cfg := testConfig()
	cfg.Rockets.Delay = 0.4
	c, sink := newTestController(t, cfg, &scriptedRand{})
	c.state = Idle
	c.position = arena.BottomLeft
	c.begin(Selection{Drawn: LaunchRockets, Executed: LaunchRockets})

	var times []float64
	now := 0.0
	for i := 0; i < 600 && c.State() == Acting; i++ {
		before := len(sink.spawnsOf(EntityRocket))
		c.Update(frame)
		for j := before; j < len(sink.spawnsOf(EntityRocket)); j++ {
			times = append(times, now)
		}
		now += frame
	}

	require.Len(t, times, 3)
	for i, ts := range times {
		assert.InDelta(t, float64(i)*cfg.Rockets.Delay, ts, frame+1e-9, "rocket %d", i)
	}
	rockets := sink.spawnsOf(EntityRocket)
	for i, r := range rockets {
		assert.Equal(t, i, r.Params.Index)
		assert.Equal(t, cfg.Rockets.Displacements[i], r.Params.Displacement)
	}

	// The barrage waited out the spin-up after the last launch.
	assert.InDelta(t, 2*cfg.Rockets.Delay+cfg.Rockets.SettleTime(), now, 3*frame)
}

func TestLaserSweepSigns(t *testing.T) {
	cfg := DefaultConfig().Laser

	for i := 0; i < 20; i++ {
		rng := &scriptedRand{ints: []int{i}}
		s := SweepFor(arena.TopLeft, cfg, rng)
		assert.Equal(t, cfg.CornerAngle, s.Angle)
		assert.Equal(t, cfg.CornerDuration, s.Duration)

		s = SweepFor(arena.TopRight, cfg, rng)
		assert.Equal(t, -cfg.CornerAngle, s.Angle)
	}

	signs := map[bool]int{}
	for i := 0; i < 10; i++ {
		s := SweepFor(arena.Centre, cfg, &scriptedRand{ints: []int{i}})
		assert.Equal(t, cfg.CentreDuration, s.Duration)
		assert.InDelta(t, cfg.CentreAngle, abs(s.Angle), 1e-9)
		signs[s.Angle > 0]++
	}
	assert.Len(t, signs, 2, "centre sweep must be able to turn both ways")
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func startLaserAt(t *testing.T, p arena.Position, cfg Config) (*Controller, *recordingSink) {
	t.Helper()
	c, sink := newTestController(t, cfg, &scriptedRand{})
	c.state = Idle
	c.position = p
	c.body.pos = cfg.Layout.Coord(p)
	c.begin(Selection{Drawn: FireLaser, Executed: FireLaser})
	return c, sink
}

func TestLaserPhases(t *testing.T) {
	cfg := testConfig()
	c, sink := startLaserAt(t, arena.TopLeft, cfg)

	c.Update(frame)
	assert.Equal(t, []string{TriggerAction, TriggerCharge}, sink.triggers)
	for i := 0; i < 30; i++ {
		c.Update(frame)
	}
	assert.Empty(t, sink.spawnsOf(EntityLaser), "firing waits for the charge signal")

	c.OnAnimationStateReached("SomethingElse")
	c.Update(frame)
	assert.Empty(t, sink.spawnsOf(EntityLaser))

	c.OnAnimationStateReached(StateLaserCharged)
	c.Update(frame)
	require.Len(t, sink.spawnsOf(EntityLaser), 1)
	assert.Zero(t, c.Rotation())

	// Halfway through the sweep the facing is halfway to the corner angle.
	half := int(cfg.Laser.CornerDuration / 2 / frame)
	for i := 0; i < half; i++ {
		c.Update(frame)
	}
	assert.InDelta(t, cfg.Laser.CornerAngle/2, c.Rotation(), cfg.Laser.CornerAngle*frame/cfg.Laser.CornerDuration+1e-9)

	runUntil(t, c, 600, func() bool { return len(sink.destroyed) == 1 })
	assert.InDelta(t, cfg.Laser.CornerAngle, c.Rotation(), 1e-9)

	runUntil(t, c, 600, func() bool { return c.State() == Idle })
	assert.InDelta(t, 0, c.Rotation(), 1e-9, "corner sweeps turn back")
	last := sink.volumes[len(sink.volumes)-1]
	assert.Equal(t, cfg.Audio.Laser, last.Cue)
	assert.InDelta(t, 0, last.Volume, 1e-9)
	for i := 1; i < len(sink.volumes); i++ {
		assert.LessOrEqual(t, sink.volumes[i].Volume, sink.volumes[i-1].Volume, "fade is monotonic")
	}
}

func TestLaserAtCentreSkipsTurnBack(t *testing.T) {
	cfg := testConfig()
	c, _ := startLaserAt(t, arena.Centre, cfg)
	c.Update(frame)
	c.OnAnimationStateReached(StateLaserCharged)

	frames := runUntil(t, c, 1000, func() bool { return c.State() == Idle })
	want := (cfg.Laser.CentreDuration + cfg.Laser.Cooldown) / frame
	assert.InDelta(t, want, frames, 4)
	assert.InDelta(t, 0, c.Rotation(), 1e-6, "a full sweep ends facing down again")
}

func TestLethalDamageMidLaser(t *testing.T) {
	cfg := testConfig()
	// Destination top right, cooldown 0.5, then draw 4 (laser).
	rng := &scriptedRand{ints: []int{0, 3}}
	c, sink := newTestController(t, cfg, rng)

	c.OnDamage(1, 0.9)
	runUntil(t, c, 600, func() bool { return c.State() == Idle })
	require.Equal(t, arena.TopRight, c.Position())

	runUntil(t, c, 600, func() bool { return c.State() == Acting })
	sel, _ := c.CurrentAction()
	require.Equal(t, FireLaser, sel.Executed)

	c.Update(frame)
	c.OnAnimationStateReached(StateLaserCharged)
	c.Update(frame)
	beams := sink.spawnsOf(EntityLaser)
	require.Len(t, beams, 1)
	for i := 0; i < 10; i++ {
		c.Update(frame)
	}
	mid := c.Rotation()
	require.Less(t, mid, 0.0, "top right sweeps clockwise")
	require.Greater(t, mid, -cfg.Laser.CornerAngle)

	volumesBefore := len(sink.volumes)
	c.OnDamage(10, 0)

	assert.Equal(t, Defeated, c.State())
	assert.Equal(t, []EntityID{beams[0].ID}, sink.destroyed)
	assert.Equal(t, 1, sink.defeated)
	assert.Equal(t, TriggerExplode, sink.triggers[len(sink.triggers)-1])
	assert.Contains(t, sink.cues, cfg.Audio.Explode)

	triggers := len(sink.triggers)
	for i := 0; i < 300; i++ {
		c.Update(frame)
	}
	assert.Equal(t, mid, c.Rotation(), "no further interpolation after defeat")
	assert.Len(t, sink.volumes, volumesBefore+1, "only the abort silences the beam")
	assert.Len(t, sink.triggers, triggers)

	c.OnDamage(1, 0)
	assert.Equal(t, 1, sink.defeated, "defeat is reported once")
}

func TestLethalDamageDuringLaserFade(t *testing.T) {
	cfg := testConfig()
	c, sink := startLaserAt(t, arena.TopLeft, cfg)
	c.Update(frame)
	c.OnAnimationStateReached(StateLaserCharged)
	c.Update(frame)
	require.Len(t, sink.spawnsOf(EntityLaser), 1)

	runUntil(t, c, 600, func() bool { return len(sink.destroyed) == 1 })
	for i := 0; i < 5; i++ {
		c.Update(frame)
	}
	fading := sink.volumes[len(sink.volumes)-1]
	require.Equal(t, cfg.Audio.Laser, fading.Cue)
	require.Greater(t, fading.Volume, 0.0)
	require.Less(t, fading.Volume, 1.0)

	c.OnDamage(10, 0)
	require.Equal(t, Defeated, c.State())
	last := sink.volumes[len(sink.volumes)-1]
	assert.Equal(t, cfg.Audio.Laser, last.Cue)
	assert.Zero(t, last.Volume, "defeat mid-fade silences the laser")
	assert.Len(t, sink.destroyed, 1, "the beam is not destroyed twice")
}

func TestLethalDamageDuringTurnBackKeepsVolume(t *testing.T) {
	cfg := testConfig()
	c, sink := startLaserAt(t, arena.TopLeft, cfg)
	c.Update(frame)
	c.OnAnimationStateReached(StateLaserCharged)
	runUntil(t, c, 600, func() bool {
		n := len(sink.volumes)
		return n > 1 && sink.volumes[n-1].Volume == 0
	})
	c.Update(frame)
	require.Equal(t, Acting, c.State(), "corner lasers turn back after the fade")

	calls := len(sink.volumes)
	c.OnDamage(10, 0)
	require.Equal(t, Defeated, c.State())
	assert.Len(t, sink.volumes, calls, "a finished fade is not silenced again")
}

func TestDefeatLeavesRocketsAndDrones(t *testing.T) {
	cfg := testConfig()
	c, sink := newTestController(t, cfg, &scriptedRand{})
	c.state = Idle
	c.position = arena.BottomLeft
	c.begin(Selection{Drawn: LaunchRockets, Executed: LaunchRockets})
	c.Update(frame)
	require.Len(t, sink.spawnsOf(EntityRocket), 1)

	c.OnDamage(5, 0)
	assert.Empty(t, sink.destroyed)
	for i := 0; i < 120; i++ {
		c.Update(frame)
	}
	assert.Len(t, sink.spawnsOf(EntityRocket), 1, "the barrage stops launching")
}

func TestHooksFire(t *testing.T) {
	var woke, defeated int
	var actions []Selection
	sink := &recordingSink{}
	c, err := New(testConfig(), sink,
		WithRand(&scriptedRand{ints: []int{3}}),
		WithHooks(Hooks{
			OnWake:     func() { woke++ },
			OnAction:   func(s Selection) { actions = append(actions, s) },
			OnDefeated: func() { defeated++ },
		}))
	require.NoError(t, err)

	c.OnDamage(1, 0.8)
	c.OnDamage(1, 0)
	assert.Equal(t, 1, woke)
	assert.Equal(t, 1, defeated)
	require.Len(t, actions, 1)
	assert.True(t, actions[0].Forced)
	assert.Equal(t, []float64{0.8, 0}, sink.health)
}

func TestMoveTraversalIsLinear(t *testing.T) {
	cfg := testConfig()
	cfg.Shake.Duration = 0
	c, _ := newTestController(t, cfg, &scriptedRand{ints: []int{0}})
	c.state = Idle
	c.begin(Selection{Drawn: Move, Executed: Move})

	c.Update(frame) // shake
	prev := c.Coord()
	step := cfg.Speed * frame
	for c.State() == Acting {
		c.Update(frame)
		moved := c.Coord().Distance(prev)
		assert.LessOrEqual(t, moved, step+1e-9)
		prev = c.Coord()
	}
	assert.Equal(t, arena.TopRight, c.Position())
	assert.Equal(t, cfg.Layout.Coord(arena.TopRight), c.Coord())
	assert.Equal(t, cp.Vector{X: cfg.Layout.HalfWidth, Y: cfg.Layout.HalfHeight}, c.Coord())
}
