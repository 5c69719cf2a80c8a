package anim

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/milk9111/scenedemo/common"
	"gopkg.in/yaml.v3"
)

// wireDescriptor is the flat on-disk shape shared by presets (JSON) and the
// route table (YAML). Numeric variant fields are pointers so a missing field
// can be told apart from zero.
type wireDescriptor struct {
	ID       string  `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Type     Kind    `json:"type" yaml:"type"`
	Duration float64 `json:"duration" yaml:"duration"`
	Easing   Easing  `json:"easing,omitempty" yaml:"easing,omitempty"`
	Delay    float64 `json:"delay,omitempty" yaml:"delay,omitempty"`
	Loop     bool    `json:"loop,omitempty" yaml:"loop,omitempty"`
	Repeat   *int    `json:"repeat,omitempty" yaml:"repeat,omitempty"`

	Axis      Axis      `json:"axis,omitempty" yaml:"axis,omitempty"`
	Speed     *float64  `json:"speed,omitempty" yaml:"speed,omitempty"`
	From      any       `json:"from,omitempty" yaml:"from,omitempty"`
	To        any       `json:"to,omitempty" yaml:"to,omitempty"`
	Amplitude *float64  `json:"amplitude,omitempty" yaml:"amplitude,omitempty"`
	Frequency *float64  `json:"frequency,omitempty" yaml:"frequency,omitempty"`
	MinScale  *float64  `json:"minScale,omitempty" yaml:"minScale,omitempty"`
	MaxScale  *float64  `json:"maxScale,omitempty" yaml:"maxScale,omitempty"`
	Radius    *float64  `json:"radius,omitempty" yaml:"radius,omitempty"`
	Center    []float64 `json:"center,omitempty" yaml:"center,omitempty,flow"`
}

func (d Descriptor) MarshalJSON() ([]byte, error) {
	w, err := d.toWire()
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

func (d *Descriptor) UnmarshalJSON(data []byte) error {
	var w wireDescriptor
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	out, err := w.descriptor()
	if err != nil {
		return err
	}
	*d = out
	return nil
}

func (d Descriptor) MarshalYAML() (any, error) {
	return d.toWire()
}

func (d *Descriptor) UnmarshalYAML(value *yaml.Node) error {
	var w wireDescriptor
	if err := value.Decode(&w); err != nil {
		return err
	}
	out, err := w.descriptor()
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = out
	return nil
}

func (d Descriptor) toWire() (wireDescriptor, error) {
	w := wireDescriptor{
		ID:       d.ID,
		Name:     d.Name,
		Duration: d.Duration,
		Easing:   d.Easing,
		Delay:    d.Delay,
		Loop:     d.Loop,
		Repeat:   d.Repeat,
	}
	switch m := d.Motion.(type) {
	case Rotation:
		w.Type, w.Axis = KindRotation, m.Axis
		if m.Continuous() {
			w.Speed = num(m.Speed)
		} else {
			w.From, w.To = numAny(m.From), numAny(m.To)
		}
	case Position:
		w.Type, w.Axis = KindPosition, m.Axis
		w.From, w.To = numAny(m.From), numAny(m.To)
	case Scale:
		w.Type, w.Axis = KindScale, m.Axis
		w.From, w.To = numAny(m.From), numAny(m.To)
	case Color:
		w.Type = KindColor
		w.From, w.To = m.From, m.To
	case Float:
		w.Type, w.Axis = KindFloat, m.Axis
		w.Amplitude, w.Frequency = num(m.Amplitude), num(m.Frequency)
	case Pulse:
		w.Type = KindPulse
		w.MinScale, w.MaxScale, w.Frequency = num(m.MinScale), num(m.MaxScale), num(m.Frequency)
	case Orbit:
		w.Type, w.Axis = KindOrbit, m.Axis
		w.Radius, w.Speed = num(m.Radius), num(m.Speed)
		w.Center = []float64{m.Center.X, m.Center.Y, m.Center.Z}
	case nil:
		return w, fmt.Errorf("anim: encode %q: %w", d.ID, ErrNoMotion)
	default:
		return w, fmt.Errorf("anim: encode %q: %w: %T", d.ID, ErrUnknownKind, m)
	}
	return w, nil
}

// descriptor converts the wire shape. Missing required numbers become NaN
// rather than an error, matching how a malformed descriptor is tolerated
// at add time.
func (w wireDescriptor) descriptor() (Descriptor, error) {
	d := Descriptor{Base: Base{
		ID:       w.ID,
		Name:     w.Name,
		Duration: w.Duration,
		Easing:   w.Easing,
		Delay:    w.Delay,
		Loop:     w.Loop,
		Repeat:   w.Repeat,
	}}
	if d.Easing == "" {
		d.Easing = Linear
	}

	switch w.Type {
	case KindRotation:
		r := Rotation{Axis: w.Axis, From: 0, To: 2 * math.Pi}
		if w.Speed != nil {
			r.Speed = *w.Speed
		}
		if v, ok := anyNum(w.From); ok {
			r.From = v
		}
		if v, ok := anyNum(w.To); ok {
			r.To = v
		}
		d.Motion = r
	case KindPosition:
		d.Motion = Position{Axis: w.Axis, From: anyNumOrNaN(w.From), To: anyNumOrNaN(w.To)}
	case KindScale:
		d.Motion = Scale{Axis: w.Axis, From: anyNumOrNaN(w.From), To: anyNumOrNaN(w.To)}
	case KindColor:
		from, _ := w.From.(string)
		to, _ := w.To.(string)
		d.Motion = Color{From: from, To: to}
	case KindFloat:
		d.Motion = Float{Axis: w.Axis, Amplitude: orNaN(w.Amplitude), Frequency: orNaN(w.Frequency)}
	case KindPulse:
		d.Motion = Pulse{MinScale: orNaN(w.MinScale), MaxScale: orNaN(w.MaxScale), Frequency: orNaN(w.Frequency)}
	case KindOrbit:
		o := Orbit{Axis: w.Axis, Radius: orNaN(w.Radius), Speed: orNaN(w.Speed)}
		if len(w.Center) == 3 {
			o.Center = common.Vec3{X: w.Center[0], Y: w.Center[1], Z: w.Center[2]}
		}
		d.Motion = o
	default:
		return Descriptor{}, fmt.Errorf("anim: decode %q: %w %q", w.ID, ErrUnknownKind, w.Type)
	}
	return d, nil
}

func num(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func numAny(v float64) any {
	if p := num(v); p != nil {
		return *p
	}
	return nil
}

func orNaN(p *float64) float64 {
	if p == nil {
		return math.NaN()
	}
	return *p
}

func anyNum(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func anyNumOrNaN(v any) float64 {
	if n, ok := anyNum(v); ok {
		return n
	}
	return math.NaN()
}
