package anim

import "time"

// perTickFactor converts a per-second rate into the per-tick increment used
// by continuous rotation and float drift.
const perTickFactor = 0.01

// StepPolicy decides how cumulative motions (continuous rotation, float
// drift) turn a rate into a per-update increment.
type StepPolicy interface {
	Step(rate float64, dt time.Duration) float64
}

// PerTick adds rate*0.01 on every update regardless of elapsed time, so the
// motion speed follows the frame rate.
type PerTick struct{}

func (PerTick) Step(rate float64, _ time.Duration) float64 {
	return rate * perTickFactor
}

// TimeScaled scales the PerTick increment by the real time since the last
// update. At TickRate updates per second both policies agree.
type TimeScaled struct {
	TickRate float64
}

func (p TimeScaled) Step(rate float64, dt time.Duration) float64 {
	tps := p.TickRate
	if tps <= 0 {
		tps = 60
	}
	return rate * perTickFactor * dt.Seconds() * tps
}

// ParsePolicy maps a flag value to a policy. Unknown names fall back to
// PerTick.
func ParsePolicy(name string) StepPolicy {
	switch name {
	case "timescaled", "time-scaled", "time":
		return TimeScaled{TickRate: 60}
	default:
		return PerTick{}
	}
}
