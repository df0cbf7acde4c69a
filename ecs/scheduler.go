package ecs

// Scheduler holds a fixed system order. Hosts build one pipeline and install
// it into every fresh world so restarts run identical frames.
type Scheduler struct {
	systems []System
}

// NewScheduler keeps the non-nil systems in the order given.
func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, sys := range systems {
		s.Then(sys)
	}
	return s
}

// Then appends sys after every system already scheduled.
func (s *Scheduler) Then(sys System) *Scheduler {
	if sys != nil {
		s.systems = append(s.systems, sys)
	}
	return s
}

func (s *Scheduler) Len() int {
	return len(s.systems)
}

// Install appends the pipeline to w's update order.
func (s *Scheduler) Install(w *World) {
	if w == nil {
		return
	}
	for _, sys := range s.systems {
		w.AddSystem(sys)
	}
}
