package anim

import (
	"slices"
	"time"
)

// Clock returns the current wall-clock time.
type Clock func() time.Time

// RunState tracks the progress of one added descriptor.
type RunState struct {
	ID          string
	Active      bool
	Progress    float64
	Start       time.Time
	RepeatsLeft int
	Descriptor  Descriptor
}

func (s RunState) clone() RunState {
	s.Descriptor = s.Descriptor.Clone()
	return s
}

// Registry maps descriptor ids to run-state.
type Registry struct {
	now    Clock
	states map[string]*RunState
	order  []string
}

func NewRegistry(now Clock) *Registry {
	if now == nil {
		now = time.Now
	}
	return &Registry{now: now, states: map[string]*RunState{}}
}

// Add starts d, replacing any run-state with the same id. No validation is
// done here.
func (r *Registry) Add(d Descriptor) {
	if r == nil {
		return
	}
	d = d.Clone()
	st := &RunState{
		ID:          d.ID,
		Active:      true,
		Start:       r.now().Add(d.delay()),
		RepeatsLeft: d.repeats(),
		Descriptor:  d,
	}
	if _, ok := r.states[d.ID]; !ok {
		r.order = append(r.order, d.ID)
	}
	r.states[d.ID] = st
}

func (r *Registry) Remove(id string) {
	if r == nil {
		return
	}
	if _, ok := r.states[id]; !ok {
		return
	}
	delete(r.states, id)
	if i := slices.Index(r.order, id); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
}

// Pause only clears the active flag; Start is kept, so progress jumps
// ahead after a long pause.
func (r *Registry) Pause(id string) {
	if st := r.get(id); st != nil {
		st.Active = false
	}
}

func (r *Registry) Resume(id string) {
	if st := r.get(id); st != nil {
		st.Active = true
	}
}

func (r *Registry) Clear() {
	if r == nil {
		return
	}
	clear(r.states)
	r.order = r.order[:0]
}

func (r *Registry) Get(id string) (RunState, bool) {
	st := r.get(id)
	if st == nil {
		return RunState{}, false
	}
	return st.clone(), true
}

// List returns a snapshot of every run-state.
func (r *Registry) List() []RunState {
	if r == nil {
		return nil
	}
	out := make([]RunState, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.states[id].clone())
	}
	return out
}

func (r *Registry) IDs() []string {
	if r == nil {
		return nil
	}
	return slices.Clone(r.order)
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.states)
}

func (r *Registry) get(id string) *RunState {
	if r == nil {
		return nil
	}
	return r.states[id]
}
