package scene

import (
	"fmt"
	"math"

	"github.com/milk9111/scenedemo/common"
)

// Mesh is a wireframe: local-space vertices joined by edges.
type Mesh struct {
	Verts []common.Vec3
	Edges [][2]int
}

const (
	ringSegments = 16
	ringCount    = 6
)

// Box is an axis-aligned cube with the given edge length.
func Box(size float64) Mesh {
	h := size / 2
	m := Mesh{}
	for i := 0; i < 8; i++ {
		v := common.Vec3{X: -h, Y: -h, Z: -h}
		if i&1 != 0 {
			v.X = h
		}
		if i&2 != 0 {
			v.Y = h
		}
		if i&4 != 0 {
			v.Z = h
		}
		m.Verts = append(m.Verts, v)
	}
	// corners differing in exactly one bit share an edge
	for a := 0; a < 8; a++ {
		for _, bit := range []int{1, 2, 4} {
			if b := a | bit; b != a {
				m.Edges = append(m.Edges, [2]int{a, b})
			}
		}
	}
	return m
}

func Octahedron(radius float64) Mesh {
	r := radius
	m := Mesh{Verts: []common.Vec3{
		{X: r}, {X: -r}, {Y: r}, {Y: -r}, {Z: r}, {Z: -r},
	}}
	for _, pole := range []int{2, 3} {
		for _, eq := range []int{0, 4, 1, 5} {
			m.Edges = append(m.Edges, [2]int{pole, eq})
		}
	}
	m.Edges = append(m.Edges, [2]int{0, 4}, [2]int{4, 1}, [2]int{1, 5}, [2]int{5, 0})
	return m
}

func Tetrahedron(radius float64) Mesh {
	s := radius / math.Sqrt(3)
	m := Mesh{Verts: []common.Vec3{
		{X: s, Y: s, Z: s}, {X: s, Y: -s, Z: -s}, {X: -s, Y: s, Z: -s}, {X: -s, Y: -s, Z: s},
	}}
	for a := 0; a < 4; a++ {
		for b := a + 1; b < 4; b++ {
			m.Edges = append(m.Edges, [2]int{a, b})
		}
	}
	return m
}

// Sphere is drawn as latitude rings plus meridians.
func Sphere(radius float64) Mesh {
	m := Mesh{}
	for ring := 1; ring < ringCount; ring++ {
		phi := math.Pi * float64(ring) / ringCount
		y := radius * math.Cos(phi)
		rr := radius * math.Sin(phi)
		start := len(m.Verts)
		for s := 0; s < ringSegments; s++ {
			theta := 2 * math.Pi * float64(s) / ringSegments
			m.Verts = append(m.Verts, common.Vec3{X: rr * math.Cos(theta), Y: y, Z: rr * math.Sin(theta)})
			m.Edges = append(m.Edges, [2]int{start + s, start + (s+1)%ringSegments})
			if ring > 1 && s%4 == 0 {
				m.Edges = append(m.Edges, [2]int{start + s - ringSegments, start + s})
			}
		}
	}
	return m
}

// Torus lies in the XZ plane; radius is the ring radius, tube the tube radius.
func Torus(radius, tube float64) Mesh {
	const tubeSegments = 8
	m := Mesh{}
	for s := 0; s < ringSegments; s++ {
		theta := 2 * math.Pi * float64(s) / ringSegments
		for k := 0; k < tubeSegments; k++ {
			phi := 2 * math.Pi * float64(k) / tubeSegments
			d := radius + tube*math.Cos(phi)
			m.Verts = append(m.Verts, common.Vec3{X: d * math.Cos(theta), Y: tube * math.Sin(phi), Z: d * math.Sin(theta)})

			i := s*tubeSegments + k
			m.Edges = append(m.Edges,
				[2]int{i, s*tubeSegments + (k+1)%tubeSegments},
				[2]int{i, ((s+1)%ringSegments)*tubeSegments + k},
			)
		}
	}
	return m
}

// Cone points up the Y axis, centred on its half height.
func Cone(radius, height float64) Mesh {
	m := Mesh{Verts: []common.Vec3{{Y: height / 2}}}
	for s := 0; s < ringSegments; s++ {
		theta := 2 * math.Pi * float64(s) / ringSegments
		m.Verts = append(m.Verts, common.Vec3{X: radius * math.Cos(theta), Y: -height / 2, Z: radius * math.Sin(theta)})
		i := s + 1
		m.Edges = append(m.Edges, [2]int{i, 1 + (s+1)%ringSegments})
		if s%2 == 0 {
			m.Edges = append(m.Edges, [2]int{0, i})
		}
	}
	return m
}

// MeshFor builds the wireframe for a named shape.
func MeshFor(shape string, size, tube, height float64) (Mesh, error) {
	if size <= 0 {
		size = 1
	}
	switch shape {
	case "box", "cube":
		return Box(size), nil
	case "sphere":
		return Sphere(size), nil
	case "torus":
		if tube <= 0 {
			tube = size / 3
		}
		return Torus(size, tube), nil
	case "octahedron":
		return Octahedron(size), nil
	case "tetrahedron":
		return Tetrahedron(size), nil
	case "cone":
		if height <= 0 {
			height = size * 2
		}
		return Cone(size, height), nil
	default:
		return Mesh{}, fmt.Errorf("scene: unknown shape %q", shape)
	}
}
