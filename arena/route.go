package arena

import (
	"fmt"
	"strings"
)

// Route is the ordered list of stations a move visits. The last entry is the
// destination. Routes are built once and never mutated.
type Route []Position

// Final returns the destination of the route.
func (r Route) Final() (Position, bool) {
	if len(r) == 0 {
		return 0, false
	}
	return r[len(r)-1], true
}

func (r Route) String() string {
	parts := make([]string, 0, len(r))
	for _, p := range r {
		parts = append(parts, p.String())
	}
	return "[" + strings.Join(parts, " -> ") + "]"
}

// RouteStyle selects the path shape family used by a Router.
type RouteStyle int

const (
	// RouteDirect takes a single straight leg between corners sharing an axis
	// and two legs, row first, between diagonal corners.
	RouteDirect RouteStyle = iota
	// RouteZigzag traces Z-shaped sweeps across the arena: every
	// corner move passes through at least one other corner.
	RouteZigzag
)

func (s RouteStyle) String() string {
	switch s {
	case RouteZigzag:
		return "zigzag"
	default:
		return "direct"
	}
}

// ParseRouteStyle maps a prefab value to a RouteStyle. Empty means direct.
func ParseRouteStyle(name string) (RouteStyle, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "direct":
		return RouteDirect, nil
	case "zigzag", "z":
		return RouteZigzag, nil
	default:
		return RouteDirect, fmt.Errorf("arena: unknown route style %q", name)
	}
}

// Router plans routes between stations. It holds no state beyond its style,
// so the same (from, to) pair always yields the same route.
type Router struct {
	Style RouteStyle
}

// Plan returns the route from current to target. Routes touching the centre
// always align on the row first, then pass the diagonal corner.
func (r Router) Plan(current, target Position) Route {
	current.mustValid()
	target.mustValid()

	if current == target {
		return Route{}
	}

	if target == Centre {
		return Route{current.SameY(), current.DiagonalOpposite(), Centre}
	}
	if current == Centre {
		return Route{target.DiagonalOpposite(), target.SameX(), target}
	}

	if r.Style == RouteZigzag {
		return planZigzag(current, target)
	}

	if target == current.SameX() || target == current.SameY() {
		return Route{target}
	}
	return Route{current.SameY(), target}
}

func planZigzag(current, target Position) Route {
	switch target {
	case current.SameX():
		return Route{current.SameY(), target}
	case current.SameY():
		return Route{current.DiagonalOpposite(), target}
	default:
		return Route{current.SameY(), current.SameX(), target}
	}
}
