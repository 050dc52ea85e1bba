package game

import "math"

// Dolphin is the player character. Y > 0 is above the water line.
type Dolphin struct {
	Angle float64 // heading, always in [0, 2π)

	X, Y   int
	VX, VY float64

	InWater bool

	// Cosmetic only; never fed back into the physics.
	Bend        float64 // [-1, 1]
	Wiggle      float64
	WiggleTimer int
}

func NewDolphin(x, y int) *Dolphin {
	return &Dolphin{X: x, Y: y, InWater: y <= 0}
}

// Crossing describes the dolphin passing through the water line.
type Crossing struct {
	X       int
	Entered bool    // true when diving in, false when breaching
	Impulse float64 // velocity across the heading at the crossing
}

// Heading returns the unit heading vector.
func (d *Dolphin) Heading() (float64, float64) {
	return math.Cos(d.Angle), math.Sin(d.Angle)
}

// Speed returns the velocity magnitude.
func (d *Dolphin) Speed() float64 {
	return math.Hypot(d.VX, d.VY)
}

// Step advances the dolphin one tick. It reports a crossing when the
// previous tick's motion carried it through the water line.
//
// LEFT wins when LEFT and RIGHT are both held.
func (d *Dolphin) Step(in *Input) (Crossing, bool) {
	dx, dy := d.Heading()
	align := sign(d.VX*dx + d.VY*dy)
	switch {
	case in.Held(KeyLeft):
		d.Angle += TurnStep
		d.Bend += BendStep * align
	case in.Held(KeyRight):
		d.Angle -= TurnStep
		d.Bend -= BendStep * align
	default:
		d.Bend = approach(d.Bend, 0, BendRelax)
	}
	d.Bend = clampF(d.Bend, -1, 1)
	d.Angle = normalizeAngle(d.Angle)
	dx, dy = d.Heading()

	var cr Crossing
	submerged := d.Y <= 0
	crossed := submerged != d.InWater
	if crossed {
		cr = Crossing{
			X:       d.X,
			Entered: submerged,
			Impulse: -dy*d.VX + dx*d.VY,
		}
	}
	d.InWater = submerged

	if !d.InWater {
		d.VY -= Gravity
	} else {
		d.VX *= WaterDrag
		d.VY *= WaterDrag

		// Redirect part of the sideways slip back along the heading.
		if math.Abs(d.VX) > VelocityEpsilon || math.Abs(d.VY) > VelocityEpsilon {
			slip := -dy*d.VX + dx*d.VY
			k := SteerCorrection * depthGrip(d.Y)
			d.VX += -dy * -slip * k
			d.VY += dx * -slip * k
		}
	}

	d.animate()

	if in.JustPressed(KeyUp) && d.InWater {
		d.VX += dx * PushImpulse
		d.VY += dy * PushImpulse
		d.WiggleTimer = WiggleTicks
	}

	d.X += int(math.Round(d.VX))
	d.Y += int(math.Round(d.VY))
	return cr, crossed
}

// depthGrip is 0 at the surface and saturates at 1 DepthWindow below it.
func depthGrip(y int) float64 {
	s := smoothstep(0, DepthWindow, float64(-y))
	return s * s
}

func (d *Dolphin) animate() {
	if d.WiggleTimer <= 0 {
		d.WiggleTimer = 0
		d.Wiggle = 0
		return
	}
	d.WiggleTimer--
	decay := float64(d.WiggleTimer) / WiggleTicks
	d.Wiggle = math.Sin(float64(d.WiggleTimer)*WiggleFreq) * WiggleAmp * decay
}
