package scene

import (
	"math"

	"github.com/milk9111/scenedemo/common"
)

const (
	DefaultFOV = 75.0
	nearPlane  = 0.1
)

var (
	DefaultCameraPosition = common.Vec3{X: 0, Y: 2, Z: 5}
	worldUp               = common.Vec3{Y: 1}
)

// Camera is a pinhole perspective camera looking at Target.
type Camera struct {
	Position common.Vec3
	Target   common.Vec3
	FOV      float64 // vertical, degrees
	Width    float64
	Height   float64
}

func (c Camera) basis() (right, up, forward common.Vec3) {
	forward = c.Target.Sub(c.Position).Normalize()
	if forward == (common.Vec3{}) {
		forward = common.Vec3{Z: -1}
	}
	right = forward.Cross(worldUp).Normalize()
	if right == (common.Vec3{}) {
		// looking straight up or down
		right = common.Vec3{X: 1}
	}
	up = right.Cross(forward)
	return right, up, forward
}

// Project maps a world point to screen pixels. ok is false for points
// behind the near plane.
func (c Camera) Project(p common.Vec3) (x, y, depth float64, ok bool) {
	right, up, forward := c.basis()
	d := p.Sub(c.Position)
	cz := d.Dot(forward)
	if cz < nearPlane {
		return 0, 0, cz, false
	}
	fov := c.FOV
	if fov <= 0 {
		fov = DefaultFOV
	}
	f := (c.Height / 2) / math.Tan(fov*math.Pi/360)
	x = c.Width/2 + d.Dot(right)*f/cz
	y = c.Height/2 - d.Dot(up)*f/cz
	return x, y, cz, true
}
