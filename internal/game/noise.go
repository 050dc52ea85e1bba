package game

import "math"

// unit maps a 32-bit hash onto [0, 1).
func unit(h uint32) float64 {
	return float64(h) * (1.0 / (1 << 32))
}

// Noise1 is the pure per-index noise used for particle placement:
// identical (seed, index, salt) always yield the same value in [0, 1).
func Noise1(seed uint32, index int, salt uint32) float64 {
	return unit(hash32(uint32(index) ^ salt ^ seed))
}

// ValueNoise1 interpolates hashed lattice values along x with a smooth fade.
func ValueNoise1(seed uint32, x float64) float64 {
	fx := math.Floor(x)
	i := int(fx)
	f := x - fx
	f = f * f * (3 - 2*f)
	a := unit(hash32(uint32(i) ^ seed))
	b := unit(hash32(uint32(i+1) ^ seed))
	return lerp(a, b, f)
}

// valueNoise2 is 2-D value noise on a lattice that wraps every period cells.
func valueNoise2(seed uint32, x, y float64, period int) float64 {
	fx, fy := math.Floor(x), math.Floor(y)
	ix, iy := int(fx), int(fy)
	tx, ty := x-fx, y-fy
	tx = tx * tx * (3 - 2*tx)
	ty = ty * ty * (3 - 2*ty)

	wrap := func(v int) int {
		v %= period
		if v < 0 {
			v += period
		}
		return v
	}
	x0, x1 := wrap(ix), wrap(ix+1)
	y0, y1 := wrap(iy), wrap(iy+1)

	v00 := unit(hash2D(seed, x0, y0))
	v10 := unit(hash2D(seed, x1, y0))
	v01 := unit(hash2D(seed, x0, y1))
	v11 := unit(hash2D(seed, x1, y1))
	return lerp(lerp(v00, v10, tx), lerp(v01, v11, tx), ty)
}

const noiseTexSeed uint32 = 0xF11BBE12

// noiseTex is a tileable fractal value-noise field in [0, 1].
// Row-major, NoiseTexSize x NoiseTexSize. Never written after init.
var noiseTex = buildNoiseTexture(noiseTexSeed)

func buildNoiseTexture(seed uint32) []float64 {
	const n = NoiseTexSize
	tex := make([]float64, n*n)
	lo, hi := math.Inf(1), math.Inf(-1)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			sum, amp := 0.0, 0.5
			for oct := 0; oct < 4; oct++ {
				cells := 4 << oct
				s := float64(cells) / n
				sum += amp * valueNoise2(seed+uint32(oct)*0x632BE5AB, float64(x)*s, float64(y)*s, cells)
				amp *= 0.5
			}
			tex[y*n+x] = sum
			lo = math.Min(lo, sum)
			hi = math.Max(hi, sum)
		}
	}
	span := hi - lo
	if span <= 0 {
		span = 1
	}
	for i := range tex {
		tex[i] = (tex[i] - lo) / span
	}
	return tex
}

// SampleNoise reads the noise texture at (x, y), tiled in both axes.
func SampleNoise(x, y float64) float64 {
	const mask = NoiseTexSize - 1
	ix := int(math.Floor(x)) & mask
	iy := int(math.Floor(y)) & mask
	return noiseTex[iy*NoiseTexSize+ix]
}

// bayer8 is the classic 8x8 ordered-dither index matrix.
var bayer8 = [DitherSize][DitherSize]uint8{
	{0, 32, 8, 40, 2, 34, 10, 42},
	{48, 16, 56, 24, 50, 18, 58, 26},
	{12, 44, 4, 36, 14, 46, 6, 38},
	{60, 28, 52, 20, 62, 30, 54, 22},
	{3, 35, 11, 43, 1, 33, 9, 41},
	{51, 19, 59, 27, 49, 17, 57, 25},
	{15, 47, 7, 39, 13, 45, 5, 37},
	{63, 31, 55, 23, 61, 29, 53, 21},
}

// DitherThreshold returns the ordered-dither threshold in (0, 1) for the
// tiled world coordinate (x, y).
func DitherThreshold(x, y int) float64 {
	const mask = DitherSize - 1
	return (float64(bayer8[y&mask][x&mask]) + 0.5) / (DitherSize * DitherSize)
}

// Quantize converts a continuous shade into a lit/unlit decision.
func Quantize(v float64, x, y int) bool {
	return v > DitherThreshold(x, y)
}
