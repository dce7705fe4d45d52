package ecs

import "fmt"

// Stage is a system registered under a name. Names identify systems in logs
// and let callers check the frame order.
type Stage struct {
	Name   string
	System System
}

// Scheduler runs its stages once per frame, in registration order.
type Scheduler struct {
	stages []Stage
}

func NewScheduler(stages ...Stage) *Scheduler {
	s := &Scheduler{}
	for _, st := range stages {
		s.Add(st.Name, st.System)
	}
	return s
}

// Add appends a stage. Nil systems are skipped; an unnamed system is named
// after its type.
func (s *Scheduler) Add(name string, system System) {
	if system == nil {
		return
	}
	if name == "" {
		name = fmt.Sprintf("%T", system)
	}
	s.stages = append(s.stages, Stage{Name: name, System: system})
}

func (s *Scheduler) Update(w *World) {
	for _, st := range s.stages {
		st.System.Update(w)
	}
}

// Names returns the stage names in run order.
func (s *Scheduler) Names() []string {
	names := make([]string, len(s.stages))
	for i, st := range s.stages {
		names[i] = st.Name
	}
	return names
}
