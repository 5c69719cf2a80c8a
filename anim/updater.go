package anim

import (
	"log"
	"time"

	"github.com/milk9111/scenedemo/common"
)

type CompleteFunc func(id string)

type UpdateFunc func(id string, progress float64)

// Callbacks is the single notification slot of an updater. Setting it
// replaces the previous pair.
type Callbacks struct {
	OnComplete CompleteFunc
	OnUpdate   UpdateFunc
}

// Updater advances every active run-state once per rendered frame and
// writes the resulting transforms into every mounted target.
type Updater struct {
	registry  *Registry
	targets   *Targets
	now       Clock
	policy    StepPolicy
	callbacks Callbacks

	lastTick time.Time
}

func NewUpdater(registry *Registry, targets *Targets, now Clock, policy StepPolicy) *Updater {
	if now == nil {
		now = time.Now
	}
	if policy == nil {
		policy = PerTick{}
	}
	return &Updater{registry: registry, targets: targets, now: now, policy: policy}
}

func (u *Updater) SetCallbacks(cb Callbacks) {
	if u == nil {
		return
	}
	u.callbacks = cb
}

func (u *Updater) SetPolicy(p StepPolicy) {
	if u == nil || p == nil {
		return
	}
	u.policy = p
}

// Update runs one frame. It takes no arguments; time comes from the clock.
func (u *Updater) Update() {
	if u == nil || u.registry == nil {
		return
	}

	now := u.now()
	var dt time.Duration
	if !u.lastTick.IsZero() {
		dt = now.Sub(u.lastTick)
	}
	u.lastTick = now

	policy := u.policy
	s := sample{
		nowSec: float64(now.UnixNano()) / float64(time.Second),
		step:   func(rate float64) float64 { return policy.Step(rate, dt) },
	}

	// callbacks may add or remove entries, so walk a copy of the ids
	for _, id := range u.registry.IDs() {
		st := u.registry.get(id)
		if st == nil || !st.Active {
			continue
		}
		u.advance(st, now, s)
	}
}

func (u *Updater) advance(st *RunState, now time.Time, s sample) {
	if now.Before(st.Start) {
		return
	}

	d := st.Descriptor
	elapsed := float64(now.Sub(st.Start)) / float64(time.Millisecond)
	progress := common.Clamp01(elapsed / d.Duration)

	if d.Motion != nil {
		s.eased = Ease(progress, d.Easing)
		u.targets.Each(func(t *common.Transform) {
			d.Motion.apply(t, s)
		})
	}

	if fn := u.callbacks.OnUpdate; fn != nil {
		u.guard(st.ID, func() { fn(st.ID, progress) })
	}

	switch {
	case progress < 1:
		st.Progress = progress
	case d.Loop:
		st.Start = now
		st.Progress = 0
	case st.RepeatsLeft > 0:
		st.RepeatsLeft--
		st.Start = now
		st.Progress = 0
	default:
		st.Active = false
		st.Progress = 1
		if fn := u.callbacks.OnComplete; fn != nil {
			u.guard(st.ID, func() { fn(st.ID) })
		}
	}
}

func (u *Updater) guard(id string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("anim: callback for %s panicked: %v", id, r)
		}
	}()
	fn()
}
