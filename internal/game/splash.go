package game

import "math"

// Splash is the single live burst of spray thrown up by a water crossing.
// A new crossing while a burst is still running replaces it.
type Splash struct {
	Seed    uint32
	OriginX int

	Life  int // ticks
	Alive int // countdown, Alive <= Life

	Scale          float64 // lateral size, [0, 255]
	SecondaryScale float64 // vertical size
}

// Spawn starts a burst at world x originX. Impulse is the cross-heading
// velocity at the crossing; its magnitude sets size and lifetime.
func (s *Splash) Spawn(seed uint32, originX int, impulse float64) {
	s.Seed = seed
	s.OriginX = originX
	s.Scale = math.Min(math.Abs(impulse)*SplashImpulseScale, 255)
	s.SecondaryScale = s.Scale * SplashSecondaryRatio
	s.Life = int(math.Round(lerp(SplashLifeMin, SplashLifeMax, s.Scale/255)))
	s.Alive = s.Life
}

func (s *Splash) Active() bool { return s.Alive > 0 }

// ParticleCount is proportional to the burst scale.
func (s *Splash) ParticleCount() int {
	return int(s.Scale) / SplashParticlesPer
}

// Progress returns t = 1 - Alive/Life for the current tick.
func (s *Splash) Progress() float64 {
	if s.Life <= 0 {
		return 1
	}
	return 1 - float64(s.Alive)/float64(s.Life)
}

// ParticleAt returns the world position of particle i at burst progress t.
// The result depends only on (Seed, i, t).
func (s *Splash) ParticleAt(i int, t float64) (float64, float64) {
	spread := (Noise1(s.Seed, i, saltSpread)*2 - 1) * SplashMaxSpread * s.Scale / 255
	height := (0.25 + 0.75*Noise1(s.Seed, i, saltHeight)) * SplashMaxHeight * s.SecondaryScale / 255
	wobble := (ValueNoise1(s.Seed^saltWobble^uint32(i), t*8) - 0.5) * SplashWobble

	x := float64(s.OriginX) + spread*t + wobble
	y := height * 4 * t * (1 - t)
	return x, y
}

// culled reports whether particle i has already dropped out at progress t.
// Each particle carries its own threshold so they thin out over the burst.
func (s *Splash) culled(i int, t float64) bool {
	return Noise1(s.Seed, i, saltCull) < t
}

// Update draws every surviving particle as a streak from its previous-tick
// position and counts the burst down. It returns the number of streaks drawn.
func (s *Splash) Update(buf *Buffer, cam Camera) int {
	if s.Alive <= 0 {
		return 0
	}
	life := float64(s.Life)
	t := 1 - float64(s.Alive)/life
	prevT := math.Max(0, 1-float64(s.Alive+1)/life)

	drawn := 0
	n := s.ParticleCount()
	for i := 0; i < n; i++ {
		if s.culled(i, t) {
			continue
		}
		px, py := s.ParticleAt(i, prevT)
		x, y := s.ParticleAt(i, t)
		x0, y0 := cam.ToScreen(px, py)
		x1, y1 := cam.ToScreen(x, y)
		if buf.PlotLineClipped(x0, y0, x1, y1, 1, Ink(false)) {
			drawn++
		}
	}

	s.Alive--
	return drawn
}
