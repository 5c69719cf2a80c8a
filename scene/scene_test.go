package scene

import (
	"math"
	"testing"
	"time"

	"github.com/milk9111/scenedemo/anim"
	"github.com/milk9111/scenedemo/common"
	"github.com/milk9111/scenedemo/routes"
)

func TestMeshesAreWellFormed(t *testing.T) {
	tests := []struct {
		shape     string
		wantVerts int
		wantEdges int
	}{
		{"box", 8, 12},
		{"octahedron", 6, 12},
		{"tetrahedron", 4, 6},
		{"cone", ringSegments + 1, ringSegments + ringSegments/2},
		{"torus", ringSegments * 8, ringSegments * 8 * 2},
		{"sphere", (ringCount - 1) * ringSegments, -1},
	}
	for _, tc := range tests {
		t.Run(tc.shape, func(t *testing.T) {
			m, err := MeshFor(tc.shape, 1, 0.3, 1.5)
			if err != nil {
				t.Fatalf("mesh: %v", err)
			}
			if len(m.Verts) != tc.wantVerts {
				t.Fatalf("verts = %d, want %d", len(m.Verts), tc.wantVerts)
			}
			if tc.wantEdges >= 0 && len(m.Edges) != tc.wantEdges {
				t.Fatalf("edges = %d, want %d", len(m.Edges), tc.wantEdges)
			}
			for _, e := range m.Edges {
				if e[0] < 0 || e[1] < 0 || e[0] >= len(m.Verts) || e[1] >= len(m.Verts) || e[0] == e[1] {
					t.Fatalf("bad edge %v", e)
				}
			}
		})
	}

	if _, err := MeshFor("teapot", 1, 0, 0); err == nil {
		t.Fatalf("unknown shape should error")
	}
}

func TestCameraProject(t *testing.T) {
	cam := Camera{Position: common.Vec3{Z: 5}, FOV: 90, Width: 200, Height: 100}

	x, y, depth, ok := cam.Project(common.Vec3{})
	if !ok || math.Abs(x-100) > 1e-9 || math.Abs(y-50) > 1e-9 || math.Abs(depth-5) > 1e-9 {
		t.Fatalf("target should land at the centre, got (%v, %v, %v, %v)", x, y, depth, ok)
	}

	// 90° vertical fov: a point at depth d and height d is on the top edge
	_, y, _, ok = cam.Project(common.Vec3{Y: 5})
	if !ok || math.Abs(y) > 1e-9 {
		t.Fatalf("expected top edge, got y=%v", y)
	}

	x, _, _, _ = cam.Project(common.Vec3{X: 1})
	if x <= 100 {
		t.Fatalf("+X should project right of centre, got %v", x)
	}

	if _, _, _, ok := cam.Project(common.Vec3{Z: 10}); ok {
		t.Fatalf("point behind the camera should be rejected")
	}
}

func testObjects() []routes.Object {
	return []routes.Object{
		{Name: "box", Shape: "box", Size: 1, Position: common.Vec3{X: -3, Y: 1, Z: -2}},
		{Name: "ball", Shape: "sphere", Size: 0.6},
		{Name: "bad", Shape: "teapot"},
	}
}

func TestBuildAndTeardown(t *testing.T) {
	start := time.Unix(1_700_000_000, 0)
	now := start
	session := anim.NewSession(func() time.Time { return now }, nil)

	pos := common.Vec3{Y: 2, Z: 5}
	cfg := routes.Config{Route: "/x", CameraPosition: &pos, Particles: 10}
	sc := Build(session.Targets(), testObjects(), cfg, 640, 360)

	if len(sc.Objects) != 2 || session.Targets().Len() != 2 {
		t.Fatalf("expected 2 mounted objects, have %d/%d", len(sc.Objects), session.Targets().Len())
	}
	if sc.Objects[0].Transform.Position != (common.Vec3{X: -3, Y: 1, Z: -2}) {
		t.Fatalf("object should start at its configured position")
	}
	if sc.Camera.Position != pos || sc.Particles.Len() != 10 {
		t.Fatalf("config not applied: %+v", sc.Camera)
	}
	if len(sc.Segments()) == 0 {
		t.Fatalf("expected visible segments")
	}

	session.Add(anim.Descriptor{
		Base:   anim.Base{ID: "spin", Duration: 1000, Loop: true},
		Motion: anim.Rotation{Axis: anim.AxisY, Speed: 1},
	})
	session.Update()
	for _, o := range sc.Objects {
		if math.Abs(o.Transform.Rotation.Y-0.01) > 1e-12 {
			t.Fatalf("%s not animated: %+v", o.Name, o.Transform.Rotation)
		}
	}

	sc.Teardown()
	if session.Targets().Len() != 0 {
		t.Fatalf("teardown left %d targets", session.Targets().Len())
	}
	session.Update()
}

func TestParticleFieldStaysInBounds(t *testing.T) {
	f := NewParticleField(50, 200, 100, 7)
	for i := 0; i < 240; i++ {
		f.Step(1.0 / 60)
	}
	f.Each(func(x, y float64) {
		if x < -wallThickness || x > 200+wallThickness || y < -wallThickness || y > 100+wallThickness {
			t.Fatalf("particle escaped to (%v, %v)", x, y)
		}
	})
}

func TestDimColor(t *testing.T) {
	c := dim(defaultObjectColor, 0.5)
	r, _, _, a := c.RGBA()
	if r>>8 != 0x4e/2 || a>>8 != 0xff {
		t.Fatalf("dim = %v", c)
	}
}

func TestCameraFlight(t *testing.T) {
	to := common.Vec3{X: 4, Y: 2, Z: 8}
	cfg := routes.Config{Route: "/fly", CameraPosition: &to}
	sc := Build(nil, nil, cfg, 640, 360)

	from := common.Vec3{Y: 2}
	sc.FlyFrom(from)
	if sc.Camera.Position != from || !sc.Flying() {
		t.Fatalf("flight should start at %+v, camera at %+v", from, sc.Camera.Position)
	}

	// halfway through an out-quad covers three quarters of the span
	sc.Step(FlightDuration / 2)
	p := sc.Camera.Position
	if math.Abs(p.X-3) > 1e-4 || math.Abs(p.Z-6) > 1e-4 || math.Abs(p.Y-2) > 1e-4 {
		t.Fatalf("mid-flight camera at %+v", p)
	}

	sc.Step(FlightDuration)
	if sc.Camera.Position != to || sc.Flying() {
		t.Fatalf("flight should land exactly on %+v, camera at %+v", to, sc.Camera.Position)
	}

	sc.FlyFrom(to)
	if sc.Flying() {
		t.Fatalf("no flight expected when already in place")
	}
}
