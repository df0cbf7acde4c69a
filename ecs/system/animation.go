package system

import (
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
)

// AnimationSystem applies queued triggers and advances timed clips. States
// entered this frame are left in Animation.Reached until the next update.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.FrameTime()

	ecs.ForEach(w, component.AnimationComponent.Kind(), func(_ ecs.Entity, anim *component.Animation) {
		anim.Reached = anim.Reached[:0]

		for _, trigger := range anim.Pending {
			if state, ok := anim.Triggers[trigger]; ok {
				enterAnimationState(anim, state)
			}
		}
		anim.Pending = anim.Pending[:0]

		anim.Elapsed += dt
		// A chain of zero-length clips resolves in one frame; the bound stops
		// a cycle from spinning forever.
		for range len(anim.States) {
			def, ok := anim.States[anim.Current]
			if !ok || def.Loop || def.Next == "" || anim.Elapsed < def.Duration {
				return
			}
			carry := anim.Elapsed - def.Duration
			enterAnimationState(anim, def.Next)
			anim.Elapsed = carry
		}
	})
}

func enterAnimationState(anim *component.Animation, state string) {
	anim.Current = state
	anim.Elapsed = 0
	anim.Reached = append(anim.Reached, state)
}
