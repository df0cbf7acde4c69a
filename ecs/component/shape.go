package component

import "image/color"

// Shape is the circle used for drawing and contact tests.
type Shape struct {
	Radius float64
	Color  color.Color
}

var ShapeComponent = NewComponent[Shape]()
