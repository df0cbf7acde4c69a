package component

// Transform is an entity's world placement. Y points up; Rotation is in
// degrees with 0 facing up.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
