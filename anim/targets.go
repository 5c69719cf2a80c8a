package anim

import (
	"strconv"

	"github.com/milk9111/scenedemo/common"
)

// Handle identifies a mounted target. The low 32 bits are the slot index
// plus one, the high 32 bits the slot generation at mount time.
type Handle uint64

const slotBits = 32

func makeHandle(slot uint32, gen uint32) Handle {
	return Handle(uint64(gen)<<slotBits | uint64(slot))
}

func (h Handle) slot() uint32 {
	return uint32(h)
}

func (h Handle) generation() uint32 {
	return uint32(uint64(h) >> slotBits)
}

func (h Handle) String() string {
	return strconv.FormatUint(uint64(h), 10)
}

func (h Handle) Valid() bool {
	return h.slot() > 0
}

type targetSlot struct {
	gen       uint32
	transform *common.Transform
	live      bool
}

// Targets is an arena of animatable transforms. Mount hands out a handle,
// Unmount invalidates it and recycles the slot.
type Targets struct {
	slots []targetSlot
	free  []uint32
	names map[string]Handle
}

func NewTargets() *Targets {
	return &Targets{names: map[string]Handle{}}
}

// Mount stores t and returns its handle.
func (ts *Targets) Mount(t *common.Transform) Handle {
	if ts == nil {
		return 0
	}
	var idx uint32
	if n := len(ts.free); n > 0 {
		idx = ts.free[n-1]
		ts.free = ts.free[:n-1]
	} else {
		ts.slots = append(ts.slots, targetSlot{})
		idx = uint32(len(ts.slots))
	}
	s := &ts.slots[idx-1]
	s.transform = t
	s.live = true
	return makeHandle(idx, s.gen)
}

// Unmount releases the slot behind h. Stale or unknown handles are ignored.
func (ts *Targets) Unmount(h Handle) bool {
	s := ts.lookup(h)
	if s == nil {
		return false
	}
	s.gen++
	s.live = false
	s.transform = nil
	ts.free = append(ts.free, h.slot())
	return true
}

// Get returns the transform behind h if the handle is still valid.
func (ts *Targets) Get(h Handle) (*common.Transform, bool) {
	s := ts.lookup(h)
	if s == nil {
		return nil, false
	}
	return s.transform, true
}

func (ts *Targets) lookup(h Handle) *targetSlot {
	if ts == nil || !h.Valid() || int(h.slot()) > len(ts.slots) {
		return nil
	}
	s := &ts.slots[h.slot()-1]
	if !s.live || s.gen != h.generation() {
		return nil
	}
	return s
}

// Register mounts t under a name, replacing whatever was registered under
// that name before.
func (ts *Targets) Register(id string, t *common.Transform) Handle {
	if ts == nil {
		return 0
	}
	if old, ok := ts.names[id]; ok {
		ts.Unmount(old)
	}
	h := ts.Mount(t)
	ts.names[id] = h
	return h
}

// Unregister unmounts the target registered under id, if any.
func (ts *Targets) Unregister(id string) {
	if ts == nil {
		return
	}
	if h, ok := ts.names[id]; ok {
		ts.Unmount(h)
		delete(ts.names, id)
	}
}

// Lookup returns the live handle registered under id.
func (ts *Targets) Lookup(id string) (Handle, bool) {
	if ts == nil {
		return 0, false
	}
	h, ok := ts.names[id]
	if !ok || ts.lookup(h) == nil {
		return 0, false
	}
	return h, true
}

// Each calls fn for every mounted, non-nil transform in slot order.
func (ts *Targets) Each(fn func(t *common.Transform)) {
	if ts == nil || fn == nil {
		return
	}
	for i := range ts.slots {
		s := &ts.slots[i]
		if !s.live || s.transform == nil {
			continue
		}
		fn(s.transform)
	}
}

// Len reports the number of mounted slots.
func (ts *Targets) Len() int {
	if ts == nil {
		return 0
	}
	return len(ts.slots) - len(ts.free)
}
