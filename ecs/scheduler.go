package ecs

// System updates a world once per tick.
type System interface {
	Update(w *World)
}

// Scheduler runs systems in insertion order, one pass per fixed tick.
type Scheduler struct {
	systems []System
	frames  uint64
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, sys := range systems {
		s.Add(sys)
	}
	return s
}

// Add appends sys. Nil systems are ignored.
func (s *Scheduler) Add(sys System) {
	if sys != nil {
		s.systems = append(s.systems, sys)
	}
}

func (s *Scheduler) Update(w *World) {
	s.frames++
	for _, sys := range s.systems {
		sys.Update(w)
	}
}

// Frames returns how many ticks have run.
func (s *Scheduler) Frames() uint64 {
	return s.frames
}

// Systems returns a copy of the run order.
func (s *Scheduler) Systems() []System {
	return append([]System(nil), s.systems...)
}
