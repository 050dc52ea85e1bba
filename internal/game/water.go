package game

import "math"

// Water is the animated sea and sky behind the dolphin. It repaints every
// pixel of the frame each tick.
type Water struct {
	// Time is the animation clock. It advances by a fixed step per frame,
	// not by wall-clock time, so the animation is tied to the tick count.
	Time float64

	heights [Width]float64
}

// Advance moves the animation clock forward one frame.
func (w *Water) Advance() {
	w.Time += WaveTimeStep
}

// HeightAt returns the surface elevation at world x for the current time.
func (w *Water) HeightAt(wx float64) float64 {
	h := 0.0
	for _, t := range waveTerms {
		h += t.Amp * math.Sin(t.Freq*wx+t.Speed*w.Time)
	}
	return h
}

// Render shades and dithers the whole frame around the camera.
func (w *Water) Render(buf *Buffer, cam Camera) {
	for col := range w.heights {
		w.heights[col] = w.HeightAt(float64(cam.WorldX(col)))
	}
	cloudShift := w.Time * CloudTimeScale

	pix := buf.Pix()
	for row := 0; row < Height; row++ {
		wy := cam.WorldY(row)
		o := row * Stride
		for col := 0; col < Width; col++ {
			wx := cam.WorldX(col)
			v := Shade(float64(wy)-w.heights[col], wx, wy, cloudShift)
			c := Palette.Unlit
			if Quantize(v, wx, wy) {
				c = Palette.Lit
			}
			pix[o+0] = c.R
			pix[o+1] = c.G
			pix[o+2] = c.B
			pix[o+3] = 255
			o += Channels
		}
	}
}

// Shade returns the continuous brightness in [0, 1] of world pixel (wx, wy)
// lying d pixels above (d > 0) or below (d <= 0) the wave surface.
func Shade(d float64, wx, wy int, cloudShift float64) float64 {
	if d <= 0 {
		return seaShade(-d, wx, wy)
	}
	return 1 - skyShade(d, wx, wy, cloudShift)
}

// seaShade is foam that thins out below the surface plus a glow that
// builds up again past DeepStart.
func seaShade(depth float64, wx, wy int) float64 {
	if depth < SurfaceLine {
		return 1
	}
	tex := SampleNoise(float64(wx)*FoamScale, float64(wy)*FoamScale)
	foam := tex * (1 - smoothstep(0, FoamFade, depth))
	deep := smoothstep(DeepStart, DeepEnd, depth) * (0.25 + 0.5*tex)
	return clampF(foam+deep, 0, 1)
}

// skyShade is cloud cover. The cut-off drops with altitude, so the sky
// right above the sea stays clear.
func skyShade(height float64, wx, wy int, cloudShift float64) float64 {
	tex := SampleNoise(float64(wx)*CloudScale+cloudShift, float64(wy)*CloudScale)
	cut := lerp(CloudLowCut, CloudHighCut, smoothstep(CloudBandStart, CloudBandEnd, height))
	return smoothstep(cut, cut+CloudSoftness, tex) * CloudDensity
}
