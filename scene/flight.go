package scene

import (
	"github.com/milk9111/scenedemo/common"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// FlightDuration is how long, in seconds, the camera takes to reach a new
// route's position.
const FlightDuration = 0.6

type flight struct {
	to     common.Vec3
	tweens [3]*gween.Tween
}

func newFlight(from, to common.Vec3) *flight {
	return &flight{
		to: to,
		tweens: [3]*gween.Tween{
			gween.New(float32(from.X), float32(to.X), FlightDuration, ease.OutQuad),
			gween.New(float32(from.Y), float32(to.Y), FlightDuration, ease.OutQuad),
			gween.New(float32(from.Z), float32(to.Z), FlightDuration, ease.OutQuad),
		},
	}
}

func (f *flight) update(dt float64) (common.Vec3, bool) {
	var v [3]float64
	done := true
	for i, tw := range f.tweens {
		val, finished := tw.Update(float32(dt))
		v[i] = float64(val)
		done = done && finished
	}
	if done {
		return f.to, true
	}
	return common.Vec3{X: v[0], Y: v[1], Z: v[2]}, false
}

// FlyFrom moves the camera back to from and eases it to its configured
// position over the next Step calls.
func (s *Scene) FlyFrom(from common.Vec3) {
	if s == nil || from == s.Camera.Position {
		return
	}
	s.flight = newFlight(from, s.Camera.Position)
	s.Camera.Position = from
}

// Flying reports whether a camera flight is in progress.
func (s *Scene) Flying() bool {
	return s != nil && s.flight != nil
}

func (s *Scene) stepFlight(dt float64) {
	if s.flight == nil || dt <= 0 {
		return
	}
	pos, done := s.flight.update(dt)
	s.Camera.Position = pos
	if done {
		s.flight = nil
	}
}
