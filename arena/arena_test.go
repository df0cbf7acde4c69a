package arena

import (
	"math/rand/v2"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corners() []Position {
	return []Position{TopLeft, TopRight, BottomLeft, BottomRight}
}

func TestPairings(t *testing.T) {
	layout := DefaultLayout()
	for _, p := range corners() {
		t.Run(p.String(), func(t *testing.T) {
			pc := layout.Coord(p)
			assert.Equal(t, pc.X, layout.Coord(p.SameX()).X)
			assert.NotEqual(t, pc.Y, layout.Coord(p.SameX()).Y)
			assert.Equal(t, pc.Y, layout.Coord(p.SameY()).Y)
			assert.NotEqual(t, pc.X, layout.Coord(p.SameY()).X)

			d := layout.Coord(p.DiagonalOpposite())
			assert.NotEqual(t, pc.X, d.X)
			assert.NotEqual(t, pc.Y, d.Y)

			assert.Equal(t, p, p.SameX().SameX())
			assert.Equal(t, p, p.SameY().SameY())
			assert.Equal(t, p, p.DiagonalOpposite().DiagonalOpposite())
		})
	}
}

func TestCentreHasNoPairing(t *testing.T) {
	assert.Panics(t, func() { Centre.SameX() })
	assert.Panics(t, func() { Centre.SameY() })
	assert.Panics(t, func() { Centre.DiagonalOpposite() })
}

func TestInvalidPositionPanics(t *testing.T) {
	assert.Panics(t, func() { Position(5).IsCorner() })
	assert.Panics(t, func() { Position(-1).SameX() })
	assert.Panics(t, func() { DefaultLayout().Coord(Position(7)) })
	assert.Panics(t, func() { Router{}.Plan(TopLeft, Position(9)) })
}

func TestLayoutCoords(t *testing.T) {
	l := Layout{Centre: cp.Vector{X: 10, Y: 20}, HalfWidth: 4, HalfHeight: 2}
	assert.Equal(t, cp.Vector{X: 6, Y: 22}, l.Coord(TopLeft))
	assert.Equal(t, cp.Vector{X: 14, Y: 22}, l.Coord(TopRight))
	assert.Equal(t, cp.Vector{X: 6, Y: 18}, l.Coord(BottomLeft))
	assert.Equal(t, cp.Vector{X: 14, Y: 18}, l.Coord(BottomRight))
	assert.Equal(t, cp.Vector{X: 10, Y: 20}, l.Coord(Centre))

	bb := l.Bounds()
	assert.True(t, bb.ContainsVect(l.Coord(TopRight)))
	assert.False(t, bb.ContainsVect(cp.Vector{X: 15, Y: 20}))
}

func TestParsePosition(t *testing.T) {
	for _, p := range Positions() {
		got, err := ParsePosition(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := ParsePosition("middle")
	assert.Error(t, err)
}

func TestRouterDirect(t *testing.T) {
	r := Router{}
	cases := []struct {
		name    string
		from    Position
		to      Position
		want    Route
		wantLen int
	}{
		{"tl_to_centre", TopLeft, Centre, Route{TopRight, BottomRight, Centre}, 3},
		{"br_to_centre", BottomRight, Centre, Route{BottomLeft, TopLeft, Centre}, 3},
		{"centre_to_tl", Centre, TopLeft, Route{BottomRight, BottomLeft, TopLeft}, 3},
		{"centre_to_tr", Centre, TopRight, Route{BottomLeft, BottomRight, TopRight}, 3},
		{"tl_to_tr_same_row", TopLeft, TopRight, Route{TopRight}, 1},
		{"tl_to_bl_same_column", TopLeft, BottomLeft, Route{BottomLeft}, 1},
		{"tl_to_br_diagonal", TopLeft, BottomRight, Route{TopRight, BottomRight}, 2},
		{"bl_to_tr_diagonal", BottomLeft, TopRight, Route{BottomRight, TopRight}, 2},
		{"same_station", TopRight, TopRight, Route{}, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := r.Plan(c.from, c.to)
			assert.Equal(t, c.want, got)
			assert.Len(t, got, c.wantLen)
		})
	}
}

func TestRouterDeterministicAndEndsAtTarget(t *testing.T) {
	for _, style := range []RouteStyle{RouteDirect, RouteZigzag} {
		r := Router{Style: style}
		for _, from := range Positions() {
			for _, to := range Positions() {
				if from == to {
					continue
				}
				first := r.Plan(from, to)
				for i := 0; i < 5; i++ {
					require.Equal(t, first, r.Plan(from, to), "%s %s->%s", style, from, to)
				}
				final, ok := first.Final()
				require.True(t, ok)
				assert.Equal(t, to, final)
				assert.NotContains(t, first[:len(first)-1], from, "route must not revisit the start")
			}
		}
	}
}

func TestRouterDirectLegsNeverBendMoreThanOnce(t *testing.T) {
	layout := DefaultLayout()
	r := Router{}
	for _, from := range corners() {
		for _, to := range corners() {
			if from == to {
				continue
			}
			route := r.Plan(from, to)
			prev := layout.Coord(from)
			for _, p := range route {
				next := layout.Coord(p)
				axisAligned := prev.X == next.X || prev.Y == next.Y
				assert.True(t, axisAligned, "%s->%s leg %v->%v is not straight", from, to, prev, next)
				prev = next
			}
		}
	}
}

func TestRouterZigzag(t *testing.T) {
	r := Router{Style: RouteZigzag}
	assert.Equal(t, Route{TopRight, BottomLeft}, r.Plan(TopLeft, BottomLeft))
	assert.Equal(t, Route{BottomRight, TopRight}, r.Plan(TopLeft, TopRight))
	assert.Equal(t, Route{TopRight, BottomLeft, BottomRight}, r.Plan(TopLeft, BottomRight))
	assert.Equal(t, Route{TopRight, BottomRight, Centre}, r.Plan(TopLeft, Centre))
}

func TestParseRouteStyle(t *testing.T) {
	s, err := ParseRouteStyle("")
	require.NoError(t, err)
	assert.Equal(t, RouteDirect, s)
	s, err = ParseRouteStyle("ZigZag")
	require.NoError(t, err)
	assert.Equal(t, RouteZigzag, s)
	_, err = ParseRouteStyle("spiral")
	assert.Error(t, err)
}

func TestDestinationSlots(t *testing.T) {
	assert.Equal(t, []Position{TopLeft, TopRight, BottomLeft, BottomRight}, DestinationSlots(Centre))
	assert.Equal(t, []Position{TopLeft, BottomLeft, BottomRight, Centre, Centre}, DestinationSlots(TopRight))
}

func TestChooseDestinationNeverCurrent(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for _, current := range Positions() {
		seen := map[Position]int{}
		for i := 0; i < 2000; i++ {
			got := ChooseDestination(current, rng)
			require.NotEqual(t, current, got)
			require.True(t, got.Valid())
			seen[got]++
		}
		if current == Centre {
			assert.Len(t, seen, 4)
			continue
		}
		assert.Len(t, seen, 4)
		assert.Greater(t, seen[Centre], seen[current.SameX()], "centre holds two of five slots")
	}
}
