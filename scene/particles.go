package scene

import (
	"math"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
)

const (
	particleRadius = 2.0
	particleSpeed  = 60.0
	wallThickness  = 4.0
)

// ParticleField is a box of small elastic bodies drifting without gravity.
type ParticleField struct {
	space  *cp.Space
	bodies []*cp.Body
	width  float64
	height float64
}

func NewParticleField(n int, width, height float64, seed uint64) *ParticleField {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})

	walls := []struct{ a, b cp.Vector }{
		{cp.Vector{X: 0, Y: 0}, cp.Vector{X: width, Y: 0}},
		{cp.Vector{X: 0, Y: height}, cp.Vector{X: width, Y: height}},
		{cp.Vector{X: 0, Y: 0}, cp.Vector{X: 0, Y: height}},
		{cp.Vector{X: width, Y: 0}, cp.Vector{X: width, Y: height}},
	}
	for _, w := range walls {
		shape := cp.NewSegment(space.StaticBody, w.a, w.b, wallThickness)
		shape.SetElasticity(1)
		shape.SetFriction(0)
		space.AddShape(shape)
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	f := &ParticleField{space: space, width: width, height: height}
	margin := wallThickness + particleRadius*2
	for i := 0; i < n; i++ {
		mass := 1.0
		body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, particleRadius, cp.Vector{}))
		body.SetPosition(cp.Vector{
			X: margin + rng.Float64()*(width-2*margin),
			Y: margin + rng.Float64()*(height-2*margin),
		})
		angle := rng.Float64() * 2 * math.Pi
		body.SetVelocityVector(cp.Vector{X: math.Cos(angle) * particleSpeed, Y: math.Sin(angle) * particleSpeed})

		shape := cp.NewCircle(body, particleRadius, cp.Vector{})
		shape.SetElasticity(1)
		shape.SetFriction(0)

		space.AddBody(body)
		space.AddShape(shape)
		f.bodies = append(f.bodies, body)
	}
	return f
}

func (f *ParticleField) Step(dt float64) {
	if f == nil || dt <= 0 {
		return
	}
	f.space.Step(dt)
}

func (f *ParticleField) Len() int {
	if f == nil {
		return 0
	}
	return len(f.bodies)
}

// Each visits every particle position in field coordinates.
func (f *ParticleField) Each(fn func(x, y float64)) {
	if f == nil {
		return
	}
	for _, b := range f.bodies {
		p := b.Position()
		fn(p.X, p.Y)
	}
}
