package game

import (
	"math"
	"testing"
)

func step(d *Dolphin, in *Input, keys Keys) (Crossing, bool) {
	in.Update(keys)
	return d.Step(in)
}

func TestAngleAndBendStayInRange(t *testing.T) {
	d := NewDolphin(0, StartY)
	var in Input
	rng := NewRand(1234)
	for i := 0; i < 5000; i++ {
		keys := Keys(rng.Uint32() & 0x7) // left, right, up; never esc
		step(d, &in, keys)
		if d.Angle < 0 || d.Angle >= TwoPi {
			t.Fatalf("tick %d: angle %v outside [0, 2π)", i, d.Angle)
		}
		if d.Bend < -1 || d.Bend > 1 {
			t.Fatalf("tick %d: bend %v outside [-1, 1]", i, d.Bend)
		}
	}
}

func TestBendSaturates(t *testing.T) {
	d := NewDolphin(0, -100)
	var in Input
	for i := 0; i < 100; i++ {
		step(d, &in, KeysOf(KeyLeft))
	}
	if d.Bend != 1 {
		t.Errorf("bend after long left turn = %v, expected 1", d.Bend)
	}
	for i := 0; i < 100; i++ {
		step(d, &in, 0)
	}
	if d.Bend != 0 {
		t.Errorf("bend after release = %v, expected 0", d.Bend)
	}
}

func TestLeftWinsOverRight(t *testing.T) {
	d := NewDolphin(0, -100)
	var in Input
	step(d, &in, KeysOf(KeyLeft, KeyRight))
	if math.Abs(d.Angle-TurnStep) > 1e-12 {
		t.Errorf("angle = %v, expected %v", d.Angle, TurnStep)
	}
}

func TestRightTurnWrapsBelowZero(t *testing.T) {
	d := NewDolphin(0, -100)
	var in Input
	step(d, &in, KeysOf(KeyRight))
	want := TwoPi - TurnStep
	if math.Abs(d.Angle-want) > 1e-12 {
		t.Errorf("angle = %v, expected %v", d.Angle, want)
	}
}

func TestCrossingDetectedOnceEachWay(t *testing.T) {
	d := NewDolphin(0, 5)
	d.VY = -10
	var in Input

	if _, ok := step(d, &in, 0); ok {
		t.Fatal("crossing reported before reaching the water")
	}
	if d.Y != -5 {
		t.Fatalf("y after first tick = %d, expected -5", d.Y)
	}
	cr, ok := step(d, &in, 0)
	if !ok || !cr.Entered {
		t.Fatalf("expected an entry crossing, got %+v (ok=%v)", cr, ok)
	}
	if cr.Impulse != -10.05 {
		t.Errorf("impulse = %v, expected the cross-heading velocity -10.05", cr.Impulse)
	}
	if !d.InWater {
		t.Error("dolphin should be in water after entering")
	}
	if _, ok := step(d, &in, 0); ok {
		t.Error("crossing reported twice for one entry")
	}

	d.Y, d.VX, d.VY = 3, 0, 0
	cr, ok = step(d, &in, 0)
	if !ok || cr.Entered {
		t.Fatalf("expected an exit crossing, got %+v (ok=%v)", cr, ok)
	}
	if d.InWater {
		t.Error("dolphin should be airborne after breaching")
	}
}

func TestPositionRoundsVelocity(t *testing.T) {
	tests := []struct {
		vx    float64
		wantX int
	}{
		{0.4, 0},
		{0.6, 1},
		{-0.6, -1},
		{2.7, 3},
	}
	for _, tt := range tests {
		d := NewDolphin(0, -100)
		d.VX = tt.vx
		var in Input
		step(d, &in, 0)
		if d.X != tt.wantX {
			t.Errorf("vx %v: x = %d, expected %d", tt.vx, d.X, tt.wantX)
		}
	}
}

func TestPushOnlyOnPressEdge(t *testing.T) {
	d := NewDolphin(0, -200)
	var in Input

	step(d, &in, KeysOf(KeyUp))
	if math.Abs(d.VX-PushImpulse) > 1e-12 || d.VY != 0 {
		t.Fatalf("velocity after push = (%v, %v), expected (%v, 0)", d.VX, d.VY, PushImpulse)
	}
	if d.WiggleTimer != WiggleTicks {
		t.Errorf("wiggle timer = %d, expected %d", d.WiggleTimer, WiggleTicks)
	}

	step(d, &in, KeysOf(KeyUp))
	if d.VX >= PushImpulse {
		t.Errorf("holding UP pushed again: vx = %v", d.VX)
	}
	if d.WiggleTimer != WiggleTicks-1 {
		t.Errorf("wiggle timer = %d, expected %d", d.WiggleTimer, WiggleTicks-1)
	}

	step(d, &in, 0)
	before := d.VX
	step(d, &in, KeysOf(KeyUp))
	if d.VX <= before+0.5 {
		t.Errorf("re-press did not push: vx %v -> %v", before, d.VX)
	}
}

func TestNoPushInAir(t *testing.T) {
	d := NewDolphin(0, 50)
	var in Input
	step(d, &in, KeysOf(KeyUp))
	if d.VX != 0 || d.WiggleTimer != 0 {
		t.Errorf("airborne push applied: vx = %v, wiggle = %d", d.VX, d.WiggleTimer)
	}
	if d.VY != -Gravity {
		t.Errorf("vy = %v, expected %v", d.VY, -Gravity)
	}
}

func TestWiggleDecaysToRest(t *testing.T) {
	d := NewDolphin(0, -200)
	var in Input
	step(d, &in, KeysOf(KeyUp))
	for i := 0; i < WiggleTicks+2; i++ {
		step(d, &in, 0)
	}
	if d.WiggleTimer != 0 || d.Wiggle != 0 {
		t.Errorf("wiggle not at rest: timer %d, wiggle %v", d.WiggleTimer, d.Wiggle)
	}
}

func TestSlipCorrectionGrowsWithDepth(t *testing.T) {
	tests := []struct {
		name   string
		y      int
		wantVY float64
	}{
		{"at the surface", 0, WaterDrag},
		{"half window", -DepthWindow / 2, WaterDrag * (1 - SteerCorrection/4)},
		{"full window", -DepthWindow, WaterDrag * (1 - SteerCorrection)},
		{"deep", -2 * DepthWindow, WaterDrag * (1 - SteerCorrection)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// heading +x, moving straight across it
			d := NewDolphin(0, tt.y)
			d.VY = 1
			var in Input
			step(d, &in, 0)
			if math.Abs(d.VY-tt.wantVY) > 1e-12 {
				t.Errorf("perpendicular vy = %v, expected %v", d.VY, tt.wantVY)
			}
			if d.VX != 0 {
				t.Errorf("vx = %v, expected no change along the heading", d.VX)
			}
		})
	}
}

func TestDragAlongHeading(t *testing.T) {
	d := NewDolphin(0, -2*DepthWindow)
	d.VX = 2
	var in Input
	step(d, &in, 0)
	if d.VX != 2*WaterDrag || d.VY != 0 {
		t.Errorf("velocity = (%v, %v), expected (%v, 0)", d.VX, d.VY, 2*WaterDrag)
	}
}

func TestSlipCorrectionSkippedBelowEpsilon(t *testing.T) {
	d := NewDolphin(0, -2*DepthWindow)
	d.VY = VelocityEpsilon / 2
	var in Input
	step(d, &in, 0)
	if want := VelocityEpsilon / 2 * WaterDrag; math.Abs(d.VY-want) > 1e-18 {
		t.Errorf("vy = %v, expected drag only (%v)", d.VY, want)
	}
}
