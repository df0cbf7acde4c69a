package system

import (
	"testing"

	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnimation() *component.Animation {
	return &component.Animation{
		States: map[string]component.AnimationState{
			"Idle":         {Loop: true},
			"Charging":     {Duration: 0.9, Next: "LaserCharged"},
			"LaserCharged": {Loop: true},
			"Flash":        {Duration: 0, Next: "Idle"},
		},
		Triggers: map[string]string{"Charge": "Charging", "Flash": "Flash"},
		Current:  "Idle",
	}
}

func TestAnimationSystemTriggersAndTimedClips(t *testing.T) {
	w := newWorld(t, NewAnimationSystem())
	w.SetFrameTime(0.5)
	e := ecs.CreateEntity(w)
	anim := newAnimation()
	require.NoError(t, ecs.Add(w, e, component.AnimationComponent.Kind(), anim))

	anim.Fire("Charge")
	w.Update()
	assert.Equal(t, "Charging", anim.Current)
	assert.True(t, anim.JustReached("Charging"))
	assert.Empty(t, anim.Pending)

	w.Update()
	assert.Equal(t, "LaserCharged", anim.Current)
	assert.Equal(t, []string{"LaserCharged"}, anim.Reached)
	assert.InDelta(t, 0.1, anim.Elapsed, 1e-9)

	w.Update()
	assert.Empty(t, anim.Reached, "looping states are reached once")
}

func TestAnimationSystemUnknownTriggerAndZeroLengthChain(t *testing.T) {
	w := newWorld(t, NewAnimationSystem())
	e := ecs.CreateEntity(w)
	anim := newAnimation()
	require.NoError(t, ecs.Add(w, e, component.AnimationComponent.Kind(), anim))

	anim.Fire("Dance")
	w.Update()
	assert.Equal(t, "Idle", anim.Current)
	assert.Empty(t, anim.Reached)

	anim.Fire("Flash")
	w.Update()
	assert.Equal(t, "Idle", anim.Current)
	assert.Equal(t, []string{"Flash", "Idle"}, anim.Reached)
}
