package boss

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAimAngle(t *testing.T) {
	origin := cp.Vector{}
	cases := []struct {
		name   string
		target cp.Vector
		want   float64
	}{
		{"up", cp.Vector{X: 0, Y: 5}, 0},
		{"right", cp.Vector{X: 3, Y: 0}, 270},
		{"left", cp.Vector{X: -3, Y: 0}, 90},
		{"down", cp.Vector{X: 0, Y: -1}, 180},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, AimAngle(origin, c.target), 1e-9)
		})
	}
}

func flightConfig() RocketConfig {
	return RocketConfig{LaunchSpeed: 4, FiringSpeed: 10, Spins: 1, SpinRate: 2}
}

func TestRocketFlightPhases(t *testing.T) {
	start := cp.Vector{X: 1, Y: 1}
	disp := cp.Vector{X: 0, Y: 2}
	player := cp.Vector{X: 8, Y: 3}
	f := NewRocketFlight(start, disp, flightConfig())

	var phases []RocketPhase
	for i := 0; i < 600 && f.Phase != RocketFiring; i++ {
		if f.Step(frame, player) {
			phases = append(phases, f.Phase)
		}
	}
	require.Equal(t, []RocketPhase{RocketSpinning, RocketAiming, RocketFiring}, phases)

	launch := start.Add(disp)
	assert.Equal(t, launch, f.Pos, "rocket holds the launch point until it fires")
	assert.InDelta(t, AimAngle(launch, player), f.Rotation, 1e-9)

	toPlayer := player.Sub(f.Pos).Normalize()
	assert.InDelta(t, 1, f.Heading().Dot(toPlayer), 1e-9)

	before := f.Pos.Distance(player)
	f.Step(frame, player)
	assert.InDelta(t, before-10*frame, f.Pos.Distance(player), 1e-9)
}

func TestRocketFlightSpinsDuringLaunch(t *testing.T) {
	f := NewRocketFlight(cp.Vector{}, cp.Vector{X: 0, Y: 4}, flightConfig())
	f.Step(frame, cp.Vector{})
	assert.InDelta(t, 360*2*frame, f.Rotation, 1e-9)
	assert.Equal(t, RocketLaunching, f.Phase)
	assert.InDelta(t, 4*frame, f.Pos.Y, 1e-9)
}

func TestRocketFlightDegenerateConfig(t *testing.T) {
	f := NewRocketFlight(cp.Vector{}, cp.Vector{X: 1}, RocketConfig{})
	for i := 0; i < 4; i++ {
		f.Step(frame, cp.Vector{X: -5})
	}
	assert.Equal(t, RocketFiring, f.Phase)
	assert.InDelta(t, 90, f.Rotation, 1e-9)
}

func TestRocketExplodeOnce(t *testing.T) {
	f := NewRocketFlight(cp.Vector{}, cp.Vector{}, flightConfig())
	assert.True(t, f.Explode())
	assert.False(t, f.Explode())
	pos := f.Pos
	assert.False(t, f.Step(frame, cp.Vector{X: 1}))
	assert.Equal(t, pos, f.Pos)
}
