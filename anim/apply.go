package anim

import (
	"math"

	"github.com/milk9111/scenedemo/common"
)

func (r Rotation) apply(t *common.Transform, s sample) {
	if r.Continuous() {
		d := s.step(r.Speed)
		if r.Axis == AxisX || r.Axis == AxisXYZ {
			t.Rotation.X += d
		}
		if r.Axis == AxisY || r.Axis == AxisXYZ {
			t.Rotation.Y += d
		}
		if r.Axis == AxisZ || r.Axis == AxisXYZ {
			t.Rotation.Z += d
		}
		return
	}

	// bounded form has no xyz case
	v := common.Lerp(r.From, r.To, s.eased)
	switch r.Axis {
	case AxisX:
		t.Rotation.X = v
	case AxisY:
		t.Rotation.Y = v
	case AxisZ:
		t.Rotation.Z = v
	}
}

func (p Position) apply(t *common.Transform, s sample) {
	v := common.Lerp(p.From, p.To, s.eased)
	switch p.Axis {
	case AxisX:
		t.Position.X = v
	case AxisY:
		t.Position.Y = v
	case AxisZ:
		t.Position.Z = v
	}
}

func (sc Scale) apply(t *common.Transform, s sample) {
	v := common.Lerp(sc.From, sc.To, s.eased)
	switch sc.Axis {
	case AxisUniform:
		t.SetScalar(v)
	case AxisX:
		t.Scale.X = v
	case AxisY:
		t.Scale.Y = v
	case AxisZ:
		t.Scale.Z = v
	}
}

// apply is intentionally empty: there is no agreed interpolation for
// color values yet.
func (Color) apply(*common.Transform, sample) {}

// Float drifts cumulatively: the oscillation is added every tick rather
// than set.
func (f Float) apply(t *common.Transform, s sample) {
	v := math.Sin(s.nowSec*f.Frequency) * f.Amplitude
	d := s.step(v)
	switch f.Axis {
	case AxisX:
		t.Position.X += d
	case AxisY:
		t.Position.Y += d
	case AxisZ:
		t.Position.Z += d
	}
}

func (p Pulse) apply(t *common.Transform, s sample) {
	wave := math.Sin(s.nowSec*p.Frequency)*0.5 + 0.5
	t.SetScalar(p.MinScale + (p.MaxScale-p.MinScale)*wave)
}

func (o Orbit) apply(t *common.Transform, s sample) {
	angle := s.nowSec * o.Speed
	sin, cos := math.Sincos(angle)
	c := o.Center
	switch o.Axis {
	case AxisY:
		t.Position.X = c.X + cos*o.Radius
		t.Position.Z = c.Z + sin*o.Radius
	case AxisX:
		t.Position.Y = c.Y + cos*o.Radius
		t.Position.Z = c.Z + sin*o.Radius
	case AxisZ:
		t.Position.X = c.X + cos*o.Radius
		t.Position.Y = c.Y + sin*o.Radius
	}
}
