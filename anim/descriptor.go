package anim

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/milk9111/scenedemo/common"
)

var (
	ErrUnknownKind = errors.New("anim: unknown animation type")
	ErrNoMotion    = errors.New("anim: descriptor has no motion")
)

type Kind string

const (
	KindRotation Kind = "rotation"
	KindPosition Kind = "position"
	KindScale    Kind = "scale"
	KindColor    Kind = "color"
	KindFloat    Kind = "float"
	KindPulse    Kind = "pulse"
	KindOrbit    Kind = "orbit"
)

type Easing string

const (
	Linear    Easing = "linear"
	EaseIn    Easing = "easeIn"
	EaseOut   Easing = "easeOut"
	EaseInOut Easing = "easeInOut"
)

type Axis string

const (
	AxisX       Axis = "x"
	AxisY       Axis = "y"
	AxisZ       Axis = "z"
	AxisXYZ     Axis = "xyz"
	AxisUniform Axis = "uniform"
)

// Base holds the fields shared by every animation kind. Duration and Delay
// are milliseconds.
type Base struct {
	ID       string
	Name     string
	Duration float64
	Easing   Easing
	Delay    float64
	Loop     bool
	Repeat   *int
}

// Descriptor is one declarative animation: shared timing plus exactly one
// Motion variant.
type Descriptor struct {
	Base
	Motion Motion
}

// Motion is the sealed set of animation variants. Every variant implements
// apply, so a kind without a transform has to say so explicitly.
type Motion interface {
	Kind() Kind
	apply(t *common.Transform, s sample)
}

// sample is what the updater hands to a variant for one target on one tick.
type sample struct {
	eased  float64
	nowSec float64
	step   func(rate float64) float64
}

type Rotation struct {
	Axis  Axis
	Speed float64
	From  float64
	To    float64
}

type Position struct {
	Axis Axis
	From float64
	To   float64
}

type Scale struct {
	Axis Axis
	From float64
	To   float64
}

// Color is declared for descriptor sets that carry it, but no transform
// is applied for it.
type Color struct {
	From string
	To   string
}

type Float struct {
	Axis      Axis
	Amplitude float64
	Frequency float64
}

type Pulse struct {
	MinScale  float64
	MaxScale  float64
	Frequency float64
}

type Orbit struct {
	Radius float64
	Speed  float64
	Axis   Axis
	Center common.Vec3
}

func (Rotation) Kind() Kind { return KindRotation }
func (Position) Kind() Kind { return KindPosition }
func (Scale) Kind() Kind    { return KindScale }
func (Color) Kind() Kind    { return KindColor }
func (Float) Kind() Kind    { return KindFloat }
func (Pulse) Kind() Kind    { return KindPulse }
func (Orbit) Kind() Kind    { return KindOrbit }

// Continuous reports whether the rotation spins at Speed instead of
// interpolating From to To.
func (r Rotation) Continuous() bool {
	return r.Speed != 0 && !math.IsNaN(r.Speed)
}

// Kind returns the variant tag, or "" when no motion is set.
func (d Descriptor) Kind() Kind {
	if d.Motion == nil {
		return ""
	}
	return d.Motion.Kind()
}

// Clone returns a copy that shares no pointers with d.
func (d Descriptor) Clone() Descriptor {
	out := d
	if d.Repeat != nil {
		r := *d.Repeat
		out.Repeat = &r
	}
	return out
}

func (b Base) delay() time.Duration {
	if math.IsNaN(b.Delay) || math.IsInf(b.Delay, 0) {
		return 0
	}
	return time.Duration(b.Delay * float64(time.Millisecond))
}

func (b Base) repeats() int {
	if b.Repeat == nil || *b.Repeat < 0 {
		return 0
	}
	return *b.Repeat
}

// Validate reports malformed fields. The registry never calls it; adding an
// invalid descriptor is allowed and simply animates badly.
func (d Descriptor) Validate() error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("id is empty"))
	}
	if !(d.Duration > 0) {
		errs = append(errs, fmt.Errorf("duration %v must be > 0", d.Duration))
	}
	switch d.Easing {
	case "", Linear, EaseIn, EaseOut, EaseInOut:
	default:
		errs = append(errs, fmt.Errorf("unknown easing %q", d.Easing))
	}
	if d.Repeat != nil && *d.Repeat < 0 {
		errs = append(errs, fmt.Errorf("repeat %d must be >= 0", *d.Repeat))
	}

	switch m := d.Motion.(type) {
	case nil:
		errs = append(errs, ErrNoMotion)
	case Rotation:
		errs = append(errs, checkAxis(m.Axis, AxisX, AxisY, AxisZ, AxisXYZ))
		if !m.Continuous() {
			errs = append(errs, checkNumbers(map[string]float64{"from": m.From, "to": m.To}))
		}
	case Position:
		errs = append(errs, checkAxis(m.Axis, AxisX, AxisY, AxisZ))
		errs = append(errs, checkNumbers(map[string]float64{"from": m.From, "to": m.To}))
	case Scale:
		errs = append(errs, checkAxis(m.Axis, AxisX, AxisY, AxisZ, AxisUniform))
		errs = append(errs, checkNumbers(map[string]float64{"from": m.From, "to": m.To}))
	case Color:
		if m.From == "" || m.To == "" {
			errs = append(errs, errors.New("color from/to are required"))
		}
	case Float:
		errs = append(errs, checkAxis(m.Axis, AxisX, AxisY, AxisZ))
		errs = append(errs, checkNumbers(map[string]float64{"amplitude": m.Amplitude, "frequency": m.Frequency}))
	case Pulse:
		errs = append(errs, checkNumbers(map[string]float64{"minScale": m.MinScale, "maxScale": m.MaxScale, "frequency": m.Frequency}))
		if m.MinScale > m.MaxScale {
			errs = append(errs, fmt.Errorf("minScale %v > maxScale %v", m.MinScale, m.MaxScale))
		}
	case Orbit:
		errs = append(errs, checkAxis(m.Axis, AxisX, AxisY, AxisZ))
		errs = append(errs, checkNumbers(map[string]float64{"radius": m.Radius, "speed": m.Speed}))
	default:
		errs = append(errs, fmt.Errorf("%w: %T", ErrUnknownKind, m))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("anim: descriptor %q: %w", d.ID, err)
	}
	return nil
}

func checkAxis(a Axis, allowed ...Axis) error {
	for _, x := range allowed {
		if a == x {
			return nil
		}
	}
	return fmt.Errorf("axis %q not one of %v", a, allowed)
}

func checkNumbers(fields map[string]float64) error {
	var errs []error
	for name, v := range fields {
		if math.IsNaN(v) {
			errs = append(errs, fmt.Errorf("%s is missing", name))
		}
	}
	return errors.Join(errs...)
}
