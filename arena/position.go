package arena

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// Position is one of the five fixed boss stations.
//
//	/-----------\
//	| 0       1 |
//	|           |
//	|     4     |
//	|           |
//	| 2       3 |
//	\-----------/
type Position int

const (
	TopLeft Position = iota
	TopRight
	BottomLeft
	BottomRight
	Centre
)

// NumPositions is the size of the position graph.
const NumPositions = 5

var positionNames = [NumPositions]string{"top_left", "top_right", "bottom_left", "bottom_right", "centre"}

// Positions lists every station in index order.
func Positions() []Position {
	return []Position{TopLeft, TopRight, BottomLeft, BottomRight, Centre}
}

// Valid reports whether p is inside the five-element range.
func (p Position) Valid() bool {
	return p >= TopLeft && p <= Centre
}

func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("position(%d)", int(p))
	}
	return positionNames[p]
}

// ParsePosition maps a name like "top_left" to its Position.
func ParsePosition(name string) (Position, error) {
	for i, n := range positionNames {
		if n == name {
			return Position(i), nil
		}
	}
	return 0, fmt.Errorf("arena: unknown position %q", name)
}

// IsCorner reports whether p is one of the four corners.
func (p Position) IsCorner() bool {
	p.mustValid()
	return p != Centre
}

func (p Position) IsTop() bool {
	p.mustValid()
	return p == TopLeft || p == TopRight
}

func (p Position) IsBottom() bool {
	p.mustValid()
	return p == BottomLeft || p == BottomRight
}

func (p Position) IsLeft() bool {
	p.mustValid()
	return p == TopLeft || p == BottomLeft
}

// SameX returns the corner sharing p's column.
func (p Position) SameX() Position {
	p.mustCorner("SameX")
	switch p {
	case TopLeft:
		return BottomLeft
	case TopRight:
		return BottomRight
	case BottomLeft:
		return TopLeft
	default:
		return TopRight
	}
}

// SameY returns the corner sharing p's row.
func (p Position) SameY() Position {
	p.mustCorner("SameY")
	switch p {
	case TopLeft:
		return TopRight
	case TopRight:
		return TopLeft
	case BottomLeft:
		return BottomRight
	default:
		return BottomLeft
	}
}

// DiagonalOpposite returns the corner sharing neither axis with p.
func (p Position) DiagonalOpposite() Position {
	p.mustCorner("DiagonalOpposite")
	return BottomRight - p
}

func (p Position) mustValid() {
	if !p.Valid() {
		panic(fmt.Sprintf("arena: invalid position index %d", int(p)))
	}
}

func (p Position) mustCorner(op string) {
	p.mustValid()
	if p == Centre {
		panic(fmt.Sprintf("arena: %s has no pairing for centre", op))
	}
}

// Layout maps positions to world coordinates. Corners sit at
// (centre ± HalfWidth, centre ± HalfHeight) with +Y pointing up.
type Layout struct {
	Centre     cp.Vector
	HalfWidth  float64
	HalfHeight float64
}

// DefaultLayout is a 11.52 by 7.68 arena centred on the origin.
func DefaultLayout() Layout {
	return Layout{HalfWidth: 5.76, HalfHeight: 3.84}
}

// Coord returns the world coordinate for p.
func (l Layout) Coord(p Position) cp.Vector {
	p.mustValid()
	switch p {
	case TopLeft:
		return l.Centre.Add(cp.Vector{X: -l.HalfWidth, Y: l.HalfHeight})
	case TopRight:
		return l.Centre.Add(cp.Vector{X: l.HalfWidth, Y: l.HalfHeight})
	case BottomLeft:
		return l.Centre.Add(cp.Vector{X: -l.HalfWidth, Y: -l.HalfHeight})
	case BottomRight:
		return l.Centre.Add(cp.Vector{X: l.HalfWidth, Y: -l.HalfHeight})
	default:
		return l.Centre
	}
}

// Bounds returns the axis-aligned box spanned by the corners.
func (l Layout) Bounds() cp.BB {
	return cp.NewBBForExtents(l.Centre, l.HalfWidth, l.HalfHeight)
}
