package ecs

import "time"

var _ SystemAPI = (*Scheduler)(nil)

// Scheduler runs registered systems in order, once per tick.
type Scheduler struct {
	manager *Manager
	systems []System
}

func NewScheduler(manager *Manager) *Scheduler {
	return &Scheduler{
		manager: manager,
		systems: make([]System, 0),
	}
}

func (s *Scheduler) NewView(components ...any) View {
	return s.manager.NewView(components...)
}

func (s *Scheduler) Each(v View, fn func(e Entity)) {
	s.manager.Each(v, fn)
}

func (s *Scheduler) Manager() *Manager {
	return s.manager
}

func (s *Scheduler) Register(systems ...System) {
	for _, system := range systems {
		system.Init(s)
		s.systems = append(s.systems, system)
	}
}

func (s *Scheduler) Update(dt time.Duration) {
	for _, system := range s.systems {
		system.Update(s, dt)
	}
}
