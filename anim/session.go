package anim

import (
	"fmt"
	"slices"
	"time"
)

// GroupAction is applied to every animation of a named group.
type GroupAction int

const (
	GroupPlay GroupAction = iota
	GroupPause
	GroupStop
)

func (a GroupAction) String() string {
	switch a {
	case GroupPlay:
		return "play"
	case GroupPause:
		return "pause"
	case GroupStop:
		return "stop"
	default:
		return fmt.Sprintf("GroupAction(%d)", int(a))
	}
}

// Session owns the target arena, the animation registry and the frame
// updater for one running scene. Create one per UI session and pass it to
// whatever needs it.
type Session struct {
	targets  *Targets
	registry *Registry
	updater  *Updater
	groups   map[string][]string
}

// NewSession wires a session. A nil clock means time.Now, a nil policy
// means PerTick.
func NewSession(now Clock, policy StepPolicy) *Session {
	if now == nil {
		now = time.Now
	}
	targets := NewTargets()
	registry := NewRegistry(now)
	return &Session{
		targets:  targets,
		registry: registry,
		updater:  NewUpdater(registry, targets, now, policy),
		groups:   map[string][]string{},
	}
}

func (s *Session) Targets() *Targets   { return s.targets }
func (s *Session) Registry() *Registry { return s.registry }
func (s *Session) Updater() *Updater   { return s.updater }

// Update is the per-frame hook for the render host.
func (s *Session) Update() {
	if s == nil {
		return
	}
	s.updater.Update()
}

func (s *Session) SetCallbacks(cb Callbacks) {
	if s == nil {
		return
	}
	s.updater.SetCallbacks(cb)
}

func (s *Session) Add(d Descriptor) {
	if s == nil {
		return
	}
	s.registry.Add(d)
}

func (s *Session) Remove(id string) {
	if s == nil {
		return
	}
	s.registry.Remove(id)
}

func (s *Session) Pause(id string) {
	if s == nil {
		return
	}
	s.registry.Pause(id)
}

func (s *Session) Resume(id string) {
	if s == nil {
		return
	}
	s.registry.Resume(id)
}

func (s *Session) Clear() {
	if s == nil {
		return
	}
	s.registry.Clear()
}

func (s *Session) Get(id string) (RunState, bool) {
	if s == nil {
		return RunState{}, false
	}
	return s.registry.Get(id)
}

func (s *Session) List() []RunState {
	if s == nil {
		return nil
	}
	return s.registry.List()
}

// Descriptors returns the descriptor of every run-state, in list order.
func (s *Session) Descriptors() []Descriptor {
	states := s.List()
	out := make([]Descriptor, 0, len(states))
	for _, st := range states {
		out = append(out, st.Descriptor)
	}
	return out
}

func (s *Session) PauseAll() {
	if s == nil {
		return
	}
	for _, id := range s.registry.IDs() {
		s.registry.Pause(id)
	}
}

func (s *Session) ResumeAll() {
	if s == nil {
		return
	}
	for _, id := range s.registry.IDs() {
		s.registry.Resume(id)
	}
}

// Duplicate adds a copy of id's descriptor under newID. The copy starts
// fresh.
func (s *Session) Duplicate(id, newID string) bool {
	st, ok := s.Get(id)
	if !ok || newID == "" {
		return false
	}
	d := st.Descriptor
	d.ID = newID
	s.registry.Add(d)
	return true
}

// Replace edits id's descriptor and restarts it with the new parameters.
// The id itself cannot be changed through edit.
func (s *Session) Replace(id string, edit func(d *Descriptor)) bool {
	st, ok := s.Get(id)
	if !ok || edit == nil {
		return false
	}
	d := st.Descriptor
	edit(&d)
	d.ID = id
	s.registry.Remove(id)
	s.registry.Add(d)
	return true
}

// CreateGroup names a set of animation ids. Ids do not need to exist yet.
func (s *Session) CreateGroup(name string, ids []string) {
	if s == nil || name == "" {
		return
	}
	s.groups[name] = slices.Clone(ids)
}

func (s *Session) Group(name string) ([]string, bool) {
	if s == nil {
		return nil, false
	}
	ids, ok := s.groups[name]
	return slices.Clone(ids), ok
}

// ControlGroup plays, pauses or stops every member of a group. Stop removes
// the members from the registry.
func (s *Session) ControlGroup(name string, action GroupAction) bool {
	if s == nil {
		return false
	}
	ids, ok := s.groups[name]
	if !ok {
		return false
	}
	for _, id := range ids {
		switch action {
		case GroupPlay:
			s.registry.Resume(id)
		case GroupPause:
			s.registry.Pause(id)
		case GroupStop:
			s.registry.Remove(id)
		}
	}
	return true
}
