package scene

import (
	"image/color"
	"log"

	"github.com/milk9111/scenedemo/anim"
	"github.com/milk9111/scenedemo/common"
	"github.com/milk9111/scenedemo/routes"
)

var defaultObjectColor = color.RGBA{R: 0x4e, G: 0xcd, B: 0xc4, A: 0xff}

// Object is one rendered mesh whose transform is an animation target.
type Object struct {
	Name      string
	Mesh      Mesh
	Color     color.Color
	Transform *common.Transform

	handle anim.Handle
}

// Scene is the renderable half of a route: its objects, camera and
// particle field. Build mounts the objects, Teardown unmounts them.
type Scene struct {
	targets *anim.Targets

	Objects    []*Object
	Camera     Camera
	Background color.Color
	Brightness float64
	Particles  *ParticleField

	flight *flight
}

// Build mounts one transform per object into targets and sets the camera
// and background from cfg. Objects with unknown shapes are skipped.
func Build(targets *anim.Targets, objects []routes.Object, cfg routes.Config, width, height float64) *Scene {
	s := &Scene{
		targets:    targets,
		Background: cfg.BackgroundOrDefault(),
		Brightness: 1,
		Camera: Camera{
			Position: DefaultCameraPosition,
			FOV:      DefaultFOV,
			Width:    width,
			Height:   height,
		},
	}
	if cfg.CameraPosition != nil {
		s.Camera.Position = *cfg.CameraPosition
	}
	if cfg.CameraTarget != nil {
		s.Camera.Target = *cfg.CameraTarget
	}
	if cfg.Lighting != nil && cfg.Lighting.AmbientIntensity > 0 {
		s.Brightness = common.Clamp01(0.4 + cfg.Lighting.AmbientIntensity)
	}

	for _, o := range objects {
		mesh, err := MeshFor(o.Shape, o.Size, o.Tube, o.Height)
		if err != nil {
			log.Printf("scene: skip object %s: %v", o.Name, err)
			continue
		}
		tr := common.NewTransform()
		tr.Position = o.Position

		obj := &Object{Name: o.Name, Mesh: mesh, Color: o.Color, Transform: tr}
		if obj.Color == nil {
			obj.Color = defaultObjectColor
		}
		if targets != nil {
			obj.handle = targets.Mount(tr)
		}
		s.Objects = append(s.Objects, obj)
	}

	if cfg.Particles > 0 {
		s.Particles = NewParticleField(cfg.Particles, width, height, uint64(len(cfg.Route)))
	}
	return s
}

// Teardown unmounts every object. The scene must not be drawn afterwards.
func (s *Scene) Teardown() {
	if s == nil {
		return
	}
	for _, o := range s.Objects {
		if s.targets != nil {
			s.targets.Unmount(o.handle)
		}
	}
	s.Objects = nil
	s.Particles = nil
}

// Step advances the camera flight and the particle field by dt seconds.
func (s *Scene) Step(dt float64) {
	if s == nil {
		return
	}
	s.stepFlight(dt)
	s.Particles.Step(dt)
}

// Segment is one projected edge in screen space.
type Segment struct {
	X0, Y0, X1, Y1 float64
	Color          color.Color
}

// Segments projects every visible edge. Edges with an endpoint behind the
// camera are dropped.
func (s *Scene) Segments() []Segment {
	if s == nil {
		return nil
	}
	var out []Segment
	for _, o := range s.Objects {
		clr := dim(o.Color, s.Brightness)
		pts := make([][2]float64, len(o.Mesh.Verts))
		vis := make([]bool, len(o.Mesh.Verts))
		for i, v := range o.Mesh.Verts {
			x, y, _, ok := s.Camera.Project(o.Transform.Apply(v))
			pts[i] = [2]float64{x, y}
			vis[i] = ok
		}
		for _, e := range o.Mesh.Edges {
			if !vis[e[0]] || !vis[e[1]] {
				continue
			}
			out = append(out, Segment{
				X0: pts[e[0]][0], Y0: pts[e[0]][1],
				X1: pts[e[1]][0], Y1: pts[e[1]][1],
				Color: clr,
			})
		}
	}
	return out
}

func dim(c color.Color, k float64) color.Color {
	if k >= 1 {
		return c
	}
	r, g, b, a := c.RGBA()
	scale := func(v uint32) uint8 { return uint8(float64(v>>8) * k) }
	return color.RGBA{R: scale(r), G: scale(g), B: scale(b), A: uint8(a >> 8)}
}
