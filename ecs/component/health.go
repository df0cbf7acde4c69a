package component

// Health is the shared damageable capability of the boss, drones and player.
type Health struct {
	Max     float64
	Current float64
}

// Fraction is the remaining share of Max, clamped to [0,1].
func (h *Health) Fraction() float64 {
	if h == nil || h.Max <= 0 {
		return 0
	}
	f := h.Current / h.Max
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func (h *Health) Dead() bool {
	return h == nil || h.Current <= 0
}

var HealthComponent = NewComponent[Health]()

// DamageRequest is queued against an entity and applied by the damage
// system. Requests against entities without Health are dropped.
type DamageRequest struct {
	Amount float64
}

var DamageRequestComponent = NewComponent[DamageRequest]()

// DamageTaken marks an entity hit during the current frame. The damage system
// clears it at the start of the next one.
type DamageTaken struct {
	Amount   float64
	Fraction float64
	Lethal   bool
}

var DamageTakenComponent = NewComponent[DamageTaken]()
