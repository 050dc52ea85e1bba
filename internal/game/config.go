package game

import (
	"math"
	"time"
)

// Frame geometry. The buffer layout never changes at runtime.
const (
	Width    = 400
	Height   = 240
	Channels = 4
	Stride   = Width * Channels
)

// Screen-space anchor of the dolphin; the camera follows it.
const (
	CenterX = Width / 2
	CenterY = Height / 2
)

// Pacing.
const (
	TargetFPS      = 60
	TickInterval   = time.Second / TargetFPS // ~16.6ms
	FPSSmoothing   = 0.1                     // EWMA weight of the newest sample
	WaveTimeStep   = 1.0 / TargetFPS         // animation clock advance per frame
	CloudTimeScale = 6.0                     // cloud scroll speed in texels per second
)

// Dolphin physics.
const (
	StartY          = 100
	TurnStep        = 0.04 // rad per tick
	Gravity         = 0.05
	WaterDrag       = 0.995
	VelocityEpsilon = 0.00001
	SteerCorrection = 0.3
	DepthWindow     = 40.0 // depth over which steering grip ramps to full
	PushImpulse     = 1.0
	TwoPi           = 2 * math.Pi
)

// Dolphin cosmetics.
const (
	BendStep      = 0.08
	BendRelax     = 0.04
	WiggleTicks   = 30
	WiggleFreq    = 0.45
	WiggleAmp     = 0.6
	BodySegments  = 6
	BodySegLen    = 4.0
	BodyCurlScale = 0.18
)

// Splash bursts.
const (
	SplashImpulseScale   = 40.0
	SplashSecondaryRatio = 0.5
	SplashLifeMin        = 18
	SplashLifeMax        = 70
	SplashParticlesPer   = 4 // one particle per this many scale units
	SplashMaxSpread      = 70.0
	SplashMaxHeight      = 60.0
	SplashWobble         = 3.0
)

// Noise salts, XOR-combined with burst seed and particle index.
const (
	saltSpread uint32 = 0x68E31DA4
	saltHeight uint32 = 0xB5297A4D
	saltCull   uint32 = 0x1B56C4E9
	saltWobble uint32 = 0x7F4A7C15
)

// Water surface.
const (
	NoiseTexSize   = 128 // power of two, tiled
	DitherSize     = 8
	SurfaceLine    = 1.5  // distance from the wave drawn as solid surface
	FoamFade       = 18.0 // depth over which surface foam vanishes
	FoamScale      = 1.0
	DeepStart      = 70.0
	DeepEnd        = 260.0
	CloudScale     = 0.5
	CloudLowCut    = 0.92 // threshold right above the surface
	CloudHighCut   = 0.48 // threshold far above the surface
	CloudBandStart = 30.0
	CloudBandEnd   = 220.0
	CloudSoftness  = 0.18
	CloudDensity   = 0.75
)

// waveTerm is one sine octave of the surface profile.
type waveTerm struct {
	Freq  float64 // radians per world pixel
	Speed float64 // radians per animation second
	Amp   float64 // world pixels
}

var waveTerms = [...]waveTerm{
	{Freq: 0.021, Speed: 0.9, Amp: 7.0},
	{Freq: 0.047, Speed: -1.7, Amp: 3.5},
	{Freq: 0.113, Speed: 3.1, Amp: 1.6},
	{Freq: 0.261, Speed: -4.3, Amp: 0.7},
}
