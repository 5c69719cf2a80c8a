package anim

var easings = map[Easing]func(t float64) float64{
	EaseIn:  func(t float64) float64 { return t * t },
	EaseOut: func(t float64) float64 { return t * (2 - t) },
	EaseInOut: func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	},
}

// Ease maps linear progress t in [0,1] through the named curve. Linear and
// unknown kinds return t unchanged.
func Ease(t float64, kind Easing) float64 {
	fn, ok := easings[kind]
	if !ok {
		return t
	}
	return fn(t)
}
