package anim

import (
	"math"
	"time"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Unix(1_700_000_000, 0)}
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func intPtr(i int) *int {
	return &i
}

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func spin(id string, axis Axis, speed float64) Descriptor {
	return Descriptor{
		Base:   Base{ID: id, Name: id, Duration: 1000, Loop: true},
		Motion: Rotation{Axis: axis, Speed: speed},
	}
}

func slide(id string, from, to float64) Descriptor {
	return Descriptor{
		Base:   Base{ID: id, Name: id, Duration: 1000},
		Motion: Position{Axis: AxisX, From: from, To: to},
	}
}
