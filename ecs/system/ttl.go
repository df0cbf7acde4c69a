package system

import (
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
)

// TTLSystem removes entities whose lifetime has run out. A TTL that is
// already at zero expires on the next update.
type TTLSystem struct{}

func NewTTLSystem() *TTLSystem {
	return &TTLSystem{}
}

func (s *TTLSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.TTLComponent.Kind(), func(e ecs.Entity, ttl *component.TTL) {
		if ttl.Frames--; ttl.Frames <= 0 {
			ecs.DestroyEntity(w, e)
		}
	})
}

// expireAfter schedules e for removal once seconds of world time pass.
func expireAfter(w *ecs.World, e ecs.Entity, seconds float64) {
	frames := framesFor(w, seconds)
	if ttl, ok := ecs.Get(w, e, component.TTLComponent.Kind()); ok {
		if ttl.Frames <= frames {
			return
		}
	}
	_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: frames})
}

func framesFor(w *ecs.World, seconds float64) int {
	dt := w.FrameTime()
	if dt <= 0 || seconds <= 0 {
		return 1
	}
	frames := int(seconds/dt + 0.5)
	if frames < 1 {
		return 1
	}
	return frames
}
