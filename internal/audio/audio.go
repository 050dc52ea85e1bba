// Package audio plays procedurally synthesized splash sounds for water
// crossings. It runs on oto's own goroutines and never touches the frame.
package audio

import (
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"flipper/internal/game"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	maxVoices    = 2 // more overlapping splashes just clip
)

// Audio owns the oto context.
type Audio struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	voices int32
	seed   uint64
}

// New opens the default output device.
func New(volume float64) (*Audio, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, err
	}
	return &Audio{
		ctx:    ctx,
		ready:  ready,
		volume: clamp01(volume),
		seed:   uint64(time.Now().UnixNano()),
	}, nil
}

// OnCrossing is an event handler for game.EventBus.
func (a *Audio) OnCrossing(e game.Event) {
	strength := Strength(e.Impulse)
	if e.Type == game.EventWaterEntry {
		a.play(GenDive(a.nextSeed(), strength), strength)
		return
	}
	a.play(GenBreach(a.nextSeed(), strength), strength)
}

// Strength maps a crossing impulse onto [0, 1] the same way the splash
// burst maps it onto its scale.
func Strength(impulse float64) float64 {
	return math.Min(math.Abs(impulse)*game.SplashImpulseScale, 255) / 255
}

func (a *Audio) nextSeed() uint64 {
	a.seed = a.seed*6364136223846793005 + 1442695040888963407
	return a.seed
}

func (a *Audio) play(samples []byte, gain float64) {
	if a == nil || len(samples) == 0 || gain <= 0 {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	if atomic.AddInt32(&a.voices, 1) > maxVoices {
		atomic.AddInt32(&a.voices, -1)
		return
	}
	go func() {
		defer atomic.AddInt32(&a.voices, -1)
		player := a.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(a.volume * (0.35 + 0.65*clamp01(gain)))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
