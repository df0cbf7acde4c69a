package component

// HealthBar mirrors the health fraction the boss reports for display.
type HealthBar struct {
	Fraction float64
	Visible  bool
}

var HealthBarComponent = NewComponent[HealthBar]()
