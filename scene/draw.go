package scene

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var particleColor = color.RGBA{R: 0xcb, G: 0xd5, B: 0xe1, A: 0x90}

// Draw fills the background, then renders particles and wireframes.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s == nil || screen == nil {
		return
	}
	screen.Fill(s.Background)

	s.Particles.Each(func(x, y float64) {
		vector.FillRect(screen, float32(x-particleRadius), float32(y-particleRadius), particleRadius*2, particleRadius*2, particleColor, false)
	})

	for _, seg := range s.Segments() {
		vector.StrokeLine(screen, float32(seg.X0), float32(seg.Y0), float32(seg.X1), float32(seg.Y1), 1.5, seg.Color, true)
	}
}
