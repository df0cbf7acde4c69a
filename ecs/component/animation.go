package component

// AnimationState is one named clip. A non-looping clip moves to Next when
// Duration elapses.
type AnimationState struct {
	Duration float64
	Loop     bool
	Next     string
}

// Animation is a small animator: triggers switch states, finished clips
// advance on their own. Reached lists the states entered during the last
// update so other systems can react to them.
type Animation struct {
	States   map[string]AnimationState
	Triggers map[string]string
	Current  string
	Elapsed  float64

	Pending []string
	Reached []string
}

// Fire queues an animator trigger for the next animation update.
func (a *Animation) Fire(trigger string) {
	if a == nil || trigger == "" {
		return
	}
	a.Pending = append(a.Pending, trigger)
}

// JustReached reports whether state was entered during the last update.
func (a *Animation) JustReached(state string) bool {
	if a == nil {
		return false
	}
	for _, s := range a.Reached {
		if s == state {
			return true
		}
	}
	return false
}

var AnimationComponent = NewComponent[Animation]()
