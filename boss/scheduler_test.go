package boss

import (
	"math/rand/v2"
	"testing"

	"github.com/milk9111/bossfight/arena"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouletteCeiling(t *testing.T) {
	w := Weights{2, 1, 3, 1}
	cases := []struct {
		draw int
		want ActionKind
	}{
		{1, Move},
		{2, Move},
		{3, SummonDrones},
		{4, LaunchRockets},
		{6, LaunchRockets},
		{7, FireLaser},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Roulette(w, c.draw), "draw %d", c.draw)
	}
	assert.Equal(t, Move, Roulette(NewWeights(), 1))
	assert.Equal(t, FireLaser, Roulette(NewWeights(), NewWeights().Total()))
}

func TestUsable(t *testing.T) {
	cases := []struct {
		kind ActionKind
		at   arena.Position
		want bool
	}{
		{LaunchRockets, arena.TopLeft, false},
		{LaunchRockets, arena.TopRight, false},
		{LaunchRockets, arena.BottomLeft, true},
		{LaunchRockets, arena.Centre, true},
		{FireLaser, arena.BottomLeft, false},
		{FireLaser, arena.BottomRight, false},
		{FireLaser, arena.TopRight, true},
		{FireLaser, arena.Centre, true},
		{Move, arena.TopLeft, true},
		{SummonDrones, arena.BottomRight, true},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Usable(c.kind, c.at), "%s at %s", c.kind, c.at)
	}
}

func TestSelectKeepsWeightsInRange(t *testing.T) {
	s := NewScheduler(rand.New(rand.NewPCG(3, 5)))
	w := NewWeights()
	for i := 0; i < 500; i++ {
		before := w
		var sel Selection
		sel, w = s.Select(arena.Centre, w)

		require.True(t, w.Valid(), "step %d: %v", i, w)
		require.False(t, sel.Masked(), "centre never masks")
		require.Equal(t, 1, w[sel.Drawn], "step %d", i)
		for _, k := range Actions() {
			if k == sel.Drawn {
				continue
			}
			require.Greater(t, w[k], before[k], "step %d kind %s", i, k)
		}
	}
}

func TestStarvedKindGrowsEachRound(t *testing.T) {
	w := NewWeights()
	for i := 1; i <= 5; i++ {
		w = w.After(Move)
		assert.Equal(t, i+1, w[FireLaser])
		assert.Equal(t, 1, w[Move])
	}
}

func TestRocketsDrawnThreeTimes(t *testing.T) {
	// Draws 3, 5 and 7 land on rockets for tables [1,1,1,1], [2,2,1,2] and
	// [3,3,1,3].
	rng := &scriptedRand{ints: []int{2, 4, 6}}
	s := NewScheduler(rng)
	w := NewWeights()
	for i := 0; i < 3; i++ {
		var sel Selection
		sel, w = s.Select(arena.BottomLeft, w)
		require.Equal(t, LaunchRockets, sel.Drawn)
		require.Equal(t, LaunchRockets, sel.Executed)
		require.Equal(t, 1, w[LaunchRockets])
	}
	assert.Equal(t, Weights{4, 4, 1, 4}, w)
}

func TestMaskedDrawStillResetsDrawnWeight(t *testing.T) {
	rng := &scriptedRand{ints: []int{2}}
	s := NewScheduler(rng)

	sel, w := s.Select(arena.TopRight, NewWeights())

	assert.Equal(t, LaunchRockets, sel.Drawn)
	assert.Equal(t, Move, sel.Executed)
	assert.True(t, sel.Masked())
	assert.Equal(t, 1, w[LaunchRockets])
	assert.Equal(t, 2, w[Move])
	assert.Equal(t, Weights{2, 2, 1, 2}, w)
}

func TestParseAction(t *testing.T) {
	for _, k := range Actions() {
		got, err := ParseAction(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseAction("dance")
	assert.Error(t, err)
}
