package audio

import "math"

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat is a gentle tanh-like saturation with no hard clip.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

// GenDive: low plunge thump, wet lowpassed body and a few bubble blips.
// Bigger entries last longer and sit lower.
func GenDive(seed uint64, strength float64) []byte {
	strength = clamp01(strength)
	n := int((0.14 + 0.22*strength) * SampleRate)
	buf := makeBuf(n)
	lp := 0.0
	phase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		freq := (120 - 50*strength) - 60*p
		phase += 2 * math.Pi * freq / SampleRate
		thump := math.Sin(phase) * math.Exp(-p*(14-6*strength)) * 0.45

		lp = lp*0.8 + lcg(&seed)*0.2
		body := lp * math.Exp(-p*9) * (0.3 + 0.3*strength)

		// bubbles: short rising chirps every ~40ms
		bp := math.Mod(p*float64(n)/SampleRate, 0.04) / 0.04
		bubble := math.Sin(2*math.Pi*(500+900*bp)*bp*0.04) * math.Exp(-bp*6) * math.Exp(-p*4) * 0.08

		putStereoF32(buf, i, softSat((thump+body+bubble)*0.8))
	}
	return buf
}

// GenBreach: bright airy spray, mostly highpassed noise.
func GenBreach(seed uint64, strength float64) []byte {
	strength = clamp01(strength)
	n := int((0.10 + 0.16*strength) * SampleRate)
	buf := makeBuf(n)
	lp := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		raw := lcg(&seed)
		lp = lp*0.6 + raw*0.4
		hiss := (raw - lp) * math.Exp(-p*(7-3*strength)) * (0.25 + 0.35*strength)
		attack := math.Min(1, p/0.05)
		putStereoF32(buf, i, softSat(hiss*attack))
	}
	return buf
}
