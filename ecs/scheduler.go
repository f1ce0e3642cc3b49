package ecs

import "slices"

// System advances one concern of the world by dt seconds.
type System interface {
	Update(w *World, dt float64)
}

// SystemFunc lets a plain function run as a System.
type SystemFunc func(w *World, dt float64)

func (f SystemFunc) Update(w *World, dt float64) { f(w, dt) }

// Scheduler runs its systems once per tick in registration order. Later
// systems see the writes of earlier ones within the same tick.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, sys := range systems {
		s.Add(sys)
	}
	return s
}

// Add appends sys; nil is ignored.
func (s *Scheduler) Add(sys System) {
	if sys != nil {
		s.systems = append(s.systems, sys)
	}
}

func (s *Scheduler) Update(w *World, dt float64) {
	for _, sys := range s.systems {
		sys.Update(w, dt)
	}
}

func (s *Scheduler) Systems() []System {
	return slices.Clone(s.systems)
}
