package anim

import (
	"math"
	"testing"
	"time"

	"github.com/milk9111/scenedemo/common"
)

const frame = 16 * time.Millisecond

func newTestSession(clock *fakeClock) (*Session, *common.Transform) {
	s := NewSession(clock.Now, PerTick{})
	tr := common.NewTransform()
	s.Targets().Register("box", tr)
	return s, tr
}

func TestLoopKeepsRunning(t *testing.T) {
	clock := newFakeClock()
	s, _ := newTestSession(clock)
	s.Add(spin("loop", AxisY, 1))

	resets := 0
	s.SetCallbacks(Callbacks{OnUpdate: func(id string, p float64) {
		if p >= 1 {
			resets++
		}
	}})

	// 2.5 durations in 16ms frames
	for elapsed := time.Duration(0); elapsed <= 2500*time.Millisecond; elapsed += frame {
		s.Update()
		clock.Advance(frame)
	}

	st, ok := s.Get("loop")
	if !ok {
		t.Fatalf("run-state missing")
	}
	if !st.Active {
		t.Fatalf("looping animation should stay active")
	}
	if resets < 2 {
		t.Fatalf("expected at least 2 resets, got %d", resets)
	}
	if st.Progress >= 1 {
		t.Fatalf("progress should have been reset, got %v", st.Progress)
	}
}

func TestRepeatCompletesOnce(t *testing.T) {
	clock := newFakeClock()
	s, _ := newTestSession(clock)
	d := slide("rep", 0, 1)
	d.Repeat = intPtr(2)
	s.Add(d)

	completions := 0
	var completedID string
	s.SetCallbacks(Callbacks{OnComplete: func(id string) {
		completions++
		completedID = id
	}})

	for run := 1; run <= 3; run++ {
		s.Update()
		clock.Advance(1000 * time.Millisecond)
		s.Update()

		st, _ := s.Get("rep")
		if run < 3 {
			if !st.Active || st.Progress != 0 {
				t.Fatalf("run %d: expected active reset state, got active=%v progress=%v", run, st.Active, st.Progress)
			}
			if completions != 0 {
				t.Fatalf("run %d: completion fired early", run)
			}
		}
	}

	st, ok := s.Get("rep")
	if !ok {
		t.Fatalf("completed run-state should stay registered")
	}
	if st.Active || st.Progress != 1 {
		t.Fatalf("expected inactive at progress 1, got active=%v progress=%v", st.Active, st.Progress)
	}
	if completions != 1 || completedID != "rep" {
		t.Fatalf("expected one completion for rep, got %d (%q)", completions, completedID)
	}
	if *st.Descriptor.Repeat != 2 {
		t.Fatalf("descriptor snapshot must keep repeat=2, got %d", *st.Descriptor.Repeat)
	}

	// further frames do nothing
	clock.Advance(time.Second)
	s.Update()
	if completions != 1 {
		t.Fatalf("completion fired again")
	}
}

func TestPauseResumeKeepsProgress(t *testing.T) {
	clock := newFakeClock()
	s, _ := newTestSession(clock)
	s.Add(slide("p", 0, 10))

	clock.Advance(400 * time.Millisecond)
	s.Update()
	before, _ := s.Get("p")

	s.Pause("p")
	paused, _ := s.Get("p")
	if paused.Active {
		t.Fatalf("pause should clear active")
	}
	s.Resume("p")
	after, _ := s.Get("p")

	if !after.Active {
		t.Fatalf("resume should set active")
	}
	if after.Progress != before.Progress || !after.Start.Equal(before.Start) {
		t.Fatalf("pause/resume changed state: before=%+v after=%+v", before, after)
	}
}

func TestPausedIsNotAdvanced(t *testing.T) {
	clock := newFakeClock()
	s, tr := newTestSession(clock)
	s.Add(spin("spin", AxisY, 1))
	s.Pause("spin")

	for i := 0; i < 10; i++ {
		s.Update()
		clock.Advance(frame)
	}
	if tr.Rotation.Y != 0 {
		t.Fatalf("paused rotation moved to %v", tr.Rotation.Y)
	}
}

func TestResumeAfterPauseJumpsAhead(t *testing.T) {
	clock := newFakeClock()
	s, tr := newTestSession(clock)
	s.Add(slide("jump", 0, 10))

	clock.Advance(100 * time.Millisecond)
	s.Update()
	s.Pause("jump")
	clock.Advance(500 * time.Millisecond)
	s.Resume("jump")
	s.Update()

	if !near(tr.Position.X, 6, 1e-9) {
		t.Fatalf("expected progress from initial start (x=6), got %v", tr.Position.X)
	}
}

func TestContinuousRotationIsPerFrame(t *testing.T) {
	clock := newFakeClock()
	s, tr := newTestSession(clock)
	s.Add(Descriptor{
		Base:   Base{ID: "rot", Duration: 1000, Loop: true},
		Motion: Rotation{Axis: AxisY, Speed: 1},
	})

	for i := 0; i < 100; i++ {
		s.Update()
		clock.Advance(frame)
	}

	if !near(tr.Rotation.Y, 1.0, 1e-9) {
		t.Fatalf("expected y rotation 1.0 after 100 frames, got %v", tr.Rotation.Y)
	}
	if tr.Rotation.X != 0 || tr.Rotation.Z != 0 {
		t.Fatalf("other axes moved: %+v", tr.Rotation)
	}
}

func TestContinuousRotationXYZ(t *testing.T) {
	clock := newFakeClock()
	s, tr := newTestSession(clock)
	s.Add(spin("all", AxisXYZ, 2))

	for i := 0; i < 10; i++ {
		s.Update()
		clock.Advance(frame)
	}
	for _, v := range []float64{tr.Rotation.X, tr.Rotation.Y, tr.Rotation.Z} {
		if !near(v, 0.2, 1e-9) {
			t.Fatalf("expected 0.2 on every axis, got %+v", tr.Rotation)
		}
	}
}

func TestOrbitSamplesWallClock(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	s, tr := newTestSession(clock)
	tr.Position.Y = 5
	s.Add(Descriptor{
		Base:   Base{ID: "orbit", Duration: 8000, Loop: true},
		Motion: Orbit{Radius: 3, Speed: 1, Axis: AxisY},
	})

	s.Update()
	if !near(tr.Position.X, 3, 1e-9) || tr.Position.Y != 5 || !near(tr.Position.Z, 0, 1e-9) {
		t.Fatalf("at t=0 expected (3,5,0), got %+v", tr.Position)
	}

	clock.t = atSeconds(math.Pi / 2)
	s.Update()
	if !near(tr.Position.X, 0, 1e-6) || tr.Position.Y != 5 || !near(tr.Position.Z, 3, 1e-6) {
		t.Fatalf("at t=pi/2 expected (0,5,3), got %+v", tr.Position)
	}
}

func TestOrbitAxes(t *testing.T) {
	cases := []struct {
		axis Axis
		want common.Vec3
	}{
		{AxisX, common.Vec3{X: 7, Y: 2 + 2, Z: 3}},
		{AxisY, common.Vec3{X: 1 + 2, Y: 7, Z: 3}},
		{AxisZ, common.Vec3{X: 1 + 2, Y: 2, Z: 7}},
	}
	for _, c := range cases {
		t.Run(string(c.axis), func(t *testing.T) {
			clock := &fakeClock{t: time.Unix(0, 0)}
			s, tr := newTestSession(clock)
			tr.Position = common.Vec3{X: 7, Y: 7, Z: 7}
			s.Add(Descriptor{
				Base:   Base{ID: "o", Duration: 1000, Loop: true},
				Motion: Orbit{Radius: 2, Speed: 1, Axis: c.axis, Center: common.Vec3{X: 1, Y: 2, Z: 3}},
			})
			s.Update()
			p := tr.Position
			if !near(p.X, c.want.X, 1e-9) || !near(p.Y, c.want.Y, 1e-9) || !near(p.Z, c.want.Z, 1e-9) {
				t.Fatalf("got %+v, want %+v", p, c.want)
			}
		})
	}
}

func TestPulseSetsUniformScale(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	s, tr := newTestSession(clock)
	s.Add(Descriptor{
		Base:   Base{ID: "pulse", Duration: 2000, Loop: true},
		Motion: Pulse{MinScale: 0.8, MaxScale: 1.2, Frequency: 2},
	})

	s.Update()
	if !near(tr.Scale.X, 1.0, 1e-9) || tr.Scale.X != tr.Scale.Y || tr.Scale.Y != tr.Scale.Z {
		t.Fatalf("at t=0 expected uniform 1.0, got %+v", tr.Scale)
	}

	// sin(2 * pi/4) = 1 -> max
	clock.t = atSeconds(math.Pi / 4)
	s.Update()
	if !near(tr.Scale.Y, 1.2, 1e-6) {
		t.Fatalf("expected max scale 1.2, got %v", tr.Scale.Y)
	}
}

func TestFloatDriftsCumulatively(t *testing.T) {
	clock := &fakeClock{t: atSeconds(math.Pi / 2)}
	s, tr := newTestSession(clock)
	s.Add(Descriptor{
		Base:   Base{ID: "float", Duration: 3000, Loop: true},
		Motion: Float{Axis: AxisY, Amplitude: 0.5, Frequency: 1},
	})

	// clock held still so sin stays at 1
	for i := 0; i < 4; i++ {
		s.Update()
	}
	if !near(tr.Position.Y, 4*0.5*0.01, 1e-9) {
		t.Fatalf("expected cumulative drift 0.02, got %v", tr.Position.Y)
	}
}

func TestBoundedTransformsUseEasing(t *testing.T) {
	cases := []struct {
		name   string
		motion Motion
		easing Easing
		read   func(tr *common.Transform) float64
		want   float64
	}{
		{"position_linear", Position{Axis: AxisX, From: 0, To: 10}, Linear, func(tr *common.Transform) float64 { return tr.Position.X }, 5},
		{"position_easein", Position{Axis: AxisZ, From: 0, To: 10}, EaseIn, func(tr *common.Transform) float64 { return tr.Position.Z }, 2.5},
		{"scale_uniform", Scale{Axis: AxisUniform, From: 1, To: 2}, EaseOut, func(tr *common.Transform) float64 { return tr.Scale.Y }, 1.75},
		{"scale_x", Scale{Axis: AxisX, From: 0, To: 4}, Linear, func(tr *common.Transform) float64 { return tr.Scale.X }, 2},
		{"rotation_bounded", Rotation{Axis: AxisZ, From: 0, To: math.Pi}, Linear, func(tr *common.Transform) float64 { return tr.Rotation.Z }, math.Pi / 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			clock := newFakeClock()
			s, tr := newTestSession(clock)
			s.Add(Descriptor{Base: Base{ID: c.name, Duration: 1000, Easing: c.easing}, Motion: c.motion})
			clock.Advance(500 * time.Millisecond)
			s.Update()
			if got := c.read(tr); !near(got, c.want, 1e-5) {
				t.Fatalf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestDelaySkipsApplication(t *testing.T) {
	clock := newFakeClock()
	s, tr := newTestSession(clock)
	d := slide("late", 1, 2)
	d.Delay = 500
	s.Add(d)

	clock.Advance(200 * time.Millisecond)
	s.Update()
	st, _ := s.Get("late")
	if tr.Position.X != 0 || st.Progress != 0 || !st.Active {
		t.Fatalf("delayed animation applied early: x=%v state=%+v", tr.Position.X, st)
	}

	clock.Advance(300 * time.Millisecond)
	s.Update()
	if tr.Position.X != 1 {
		t.Fatalf("expected from value once delay elapsed, got %v", tr.Position.X)
	}
}

func TestUnmountedTargetIsSkipped(t *testing.T) {
	clock := newFakeClock()
	s := NewSession(clock.Now, nil)
	kept := common.NewTransform()
	gone := common.NewTransform()
	s.Targets().Register("kept", kept)
	h := s.Targets().Mount(gone)
	s.Targets().Unmount(h)
	s.Targets().Register("nil", nil)

	s.Add(spin("spin", AxisX, 1))
	s.Update()

	if !near(kept.Rotation.X, 0.01, 1e-12) {
		t.Fatalf("mounted target not animated: %v", kept.Rotation.X)
	}
	if gone.Rotation.X != 0 {
		t.Fatalf("unmounted target was animated")
	}
}

func TestLastDescriptorWins(t *testing.T) {
	clock := newFakeClock()
	s, tr := newTestSession(clock)
	s.Add(slide("first", 0, 10))
	s.Add(slide("second", 100, 200))

	clock.Advance(500 * time.Millisecond)
	s.Update()
	if tr.Position.X != 150 {
		t.Fatalf("expected the later descriptor to win, got %v", tr.Position.X)
	}
}

func TestColorAppliesNothing(t *testing.T) {
	clock := newFakeClock()
	s, tr := newTestSession(clock)
	s.Add(Descriptor{Base: Base{ID: "color", Duration: 1000}, Motion: Color{From: "#000000", To: "#ffffff"}})
	before := *tr

	clock.Advance(500 * time.Millisecond)
	s.Update()
	if *tr != before {
		t.Fatalf("color descriptor changed transform: %+v", *tr)
	}
	if st, _ := s.Get("color"); !near(st.Progress, 0.5, 1e-9) {
		t.Fatalf("color progress should still advance, got %v", st.Progress)
	}
}

func TestCallbackPanicDoesNotStopFrame(t *testing.T) {
	clock := newFakeClock()
	s, tr := newTestSession(clock)
	s.Add(spin("a", AxisX, 1))
	s.Add(spin("b", AxisY, 1))

	seen := map[string]bool{}
	s.SetCallbacks(Callbacks{OnUpdate: func(id string, _ float64) {
		seen[id] = true
		if id == "a" {
			panic("boom")
		}
	}})
	s.Update()

	if !seen["a"] || !seen["b"] {
		t.Fatalf("expected both callbacks, got %v", seen)
	}
	if tr.Rotation.Y == 0 {
		t.Fatalf("second entry was not applied")
	}
}

func TestMalformedDescriptorDoesNotBlockOthers(t *testing.T) {
	clock := newFakeClock()
	s, tr := newTestSession(clock)
	s.Add(Descriptor{
		Base:   Base{ID: "bad", Duration: 1000},
		Motion: Position{Axis: AxisZ, From: math.NaN(), To: 1},
	})
	s.Add(Descriptor{Base: Base{ID: "nomotion", Duration: 1000}})
	s.Add(spin("good", AxisY, 1))

	clock.Advance(frame)
	s.Update()
	if !math.IsNaN(tr.Position.Z) {
		t.Fatalf("expected NaN to propagate into z, got %v", tr.Position.Z)
	}
	if !near(tr.Rotation.Y, 0.01, 1e-12) {
		t.Fatalf("good descriptor not applied: %v", tr.Rotation.Y)
	}
}

func TestTimeScaledMatchesPerTickAtTickRate(t *testing.T) {
	clock := newFakeClock()
	s := NewSession(clock.Now, TimeScaled{TickRate: 60})
	tr := common.NewTransform()
	s.Targets().Mount(tr)
	s.Add(spin("spin", AxisY, 1))

	// the first update has no previous tick to measure from
	s.Update()
	if tr.Rotation.Y != 0 {
		t.Fatalf("first time-scaled update should not move, got %v", tr.Rotation.Y)
	}

	step := time.Second / 60
	for i := 0; i < 60; i++ {
		clock.Advance(step)
		s.Update()
	}
	if !near(tr.Rotation.Y, 0.6, 1e-6) {
		t.Fatalf("expected 0.6 rad after one second, got %v", tr.Rotation.Y)
	}
}

func TestCallbacksSlotIsReplaced(t *testing.T) {
	clock := newFakeClock()
	s, _ := newTestSession(clock)
	s.Add(spin("x", AxisX, 1))

	var first, second int
	s.SetCallbacks(Callbacks{OnUpdate: func(string, float64) { first++ }})
	s.SetCallbacks(Callbacks{OnUpdate: func(string, float64) { second++ }})
	s.Update()

	if first != 0 || second != 1 {
		t.Fatalf("expected only the latest callback, got first=%d second=%d", first, second)
	}
}

// atSeconds converts fractional seconds to a clock reading.
func atSeconds(sec float64) time.Time {
	return time.Unix(0, int64(sec*float64(time.Second)))
}
