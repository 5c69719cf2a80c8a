package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp01 clamps v into [0,1]. NaN clamps to 0.
func Clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

type Vec3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{X: v.X * o.X, Y: v.Y * o.Y, Z: v.Z * o.Z}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// RotateXYZ applies Euler rotation in X, then Y, then Z order.
func (v Vec3) RotateXYZ(r Vec3) Vec3 {
	sx, cx := math.Sincos(r.X)
	y := v.Y*cx - v.Z*sx
	z := v.Y*sx + v.Z*cx
	v.Y, v.Z = y, z

	sy, cy := math.Sincos(r.Y)
	x := v.X*cy + v.Z*sy
	z = -v.X*sy + v.Z*cy
	v.X, v.Z = x, z

	sz, cz := math.Sincos(r.Z)
	x = v.X*cz - v.Y*sz
	y = v.X*sz + v.Y*cz
	v.X, v.Y = x, y
	return v
}

// Transform is the mutable placement of a renderable object. Animations
// write these fields in place.
type Transform struct {
	Position Vec3
	Rotation Vec3
	Scale    Vec3
}

func NewTransform() *Transform {
	return &Transform{Scale: Vec3{X: 1, Y: 1, Z: 1}}
}

// SetScalar sets all three scale components to s.
func (t *Transform) SetScalar(s float64) {
	if t == nil {
		return
	}
	t.Scale = Vec3{X: s, Y: s, Z: s}
}

// Apply maps a local-space point into world space: scale, rotate, translate.
func (t *Transform) Apply(p Vec3) Vec3 {
	if t == nil {
		return p
	}
	return p.Mul(t.Scale).RotateXYZ(t.Rotation).Add(t.Position)
}
