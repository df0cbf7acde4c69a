package system

import (
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
)

// RequestDamage queues amount against e for the next damage update. Several
// requests in the same frame add up.
func RequestDamage(w *ecs.World, e ecs.Entity, amount float64) {
	if w == nil || amount <= 0 || !ecs.IsAlive(w, e) {
		return
	}
	if req, ok := ecs.Get(w, e, component.DamageRequestComponent.Kind()); ok {
		req.Amount += amount
		return
	}
	_ = ecs.Add(w, e, component.DamageRequestComponent.Kind(), &component.DamageRequest{Amount: amount})
}

// DamageSystem applies queued damage to Health and marks the entities hit
// this frame with DamageTaken.
type DamageSystem struct{}

func NewDamageSystem() *DamageSystem {
	return &DamageSystem{}
}

func (s *DamageSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.DamageTakenComponent.Kind(), func(e ecs.Entity, _ *component.DamageTaken) {
		ecs.Remove(w, e, component.DamageTakenComponent.Kind())
	})

	ecs.ForEach(w, component.DamageRequestComponent.Kind(), func(e ecs.Entity, req *component.DamageRequest) {
		ecs.Remove(w, e, component.DamageRequestComponent.Kind())

		hp, ok := ecs.Get(w, e, component.HealthComponent.Kind())
		if !ok || hp.Dead() || req.Amount <= 0 {
			return
		}

		hp.Current -= req.Amount
		if hp.Current < 0 {
			hp.Current = 0
		}
		_ = ecs.Add(w, e, component.DamageTakenComponent.Kind(), &component.DamageTaken{
			Amount:   req.Amount,
			Fraction: hp.Fraction(),
			Lethal:   hp.Dead(),
		})

		if ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
			pushEvent(w, EventPlayerDamaged, hp.Current)
		}
	})
}
