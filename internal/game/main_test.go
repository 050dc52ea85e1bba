package game

import (
	"math"
	"testing"
	"time"
)

// scriptedBackend feeds a fixed key sequence and records what the loop did.
type scriptedBackend struct {
	frames  []Keys
	pumps   int
	renders int
	stops   int
	lastPix []byte

	// presenting costs this much on clock, when set
	clock      *fakeClock
	renderCost time.Duration
}

func (b *scriptedBackend) Pump() (bool, Keys) {
	if b.pumps >= len(b.frames) {
		return false, 0
	}
	k := b.frames[b.pumps]
	b.pumps++
	return true, k
}

func (b *scriptedBackend) Render(buf *Buffer) {
	if b.clock != nil {
		b.clock.Advance(b.renderCost)
	}
	b.renders++
	if b.lastPix == nil {
		b.lastPix = make([]byte, len(buf.Pix()))
	}
	buf.CopyTo(b.lastPix)
}

func (b *scriptedBackend) Stop() { b.stops++ }

func newTestLoop(b Backend) *Loop {
	return NewLoop(b, Options{Seed: 1, Clock: newFakeClock(), Target: time.Millisecond})
}

func TestLoopStopsOnEscape(t *testing.T) {
	b := &scriptedBackend{frames: []Keys{0, KeysOf(KeyUp), KeysOf(KeyEsc), 0, 0}}
	stats := newTestLoop(b).Run()

	if b.pumps != 3 {
		t.Errorf("pumps = %d, expected 3", b.pumps)
	}
	if b.renders != 2 {
		t.Errorf("renders = %d, expected 2 (no frame for the ESC tick)", b.renders)
	}
	if b.stops != 1 {
		t.Errorf("stops = %d, expected exactly 1", b.stops)
	}
	if stats.Frames != 2 {
		t.Errorf("frames = %d, expected 2", stats.Frames)
	}
}

func TestLoopStopsWhenInputEnds(t *testing.T) {
	b := &scriptedBackend{frames: make([]Keys, 10)}
	stats := newTestLoop(b).Run()
	if b.renders != 10 || stats.Frames != 10 {
		t.Errorf("renders %d, frames %d, expected 10 each", b.renders, stats.Frames)
	}
	if b.stops != 1 {
		t.Errorf("stops = %d, expected 1", b.stops)
	}
}

func TestLoopPacesEveryTick(t *testing.T) {
	clk := newFakeClock()
	b := &scriptedBackend{frames: make([]Keys, 5)}
	l := NewLoop(b, Options{Clock: clk, Target: 10 * time.Millisecond})
	l.Run()
	if len(clk.slept) != 5 {
		t.Fatalf("sleeps = %d, expected one per rendered tick", len(clk.slept))
	}
	for _, d := range clk.slept {
		if d != 10*time.Millisecond {
			t.Errorf("slept %v, expected the whole interval on a zero-cost fake clock", d)
		}
	}
}

func TestLoopRendersFullFrame(t *testing.T) {
	b := &scriptedBackend{frames: make([]Keys, 1)}
	newTestLoop(b).Run()
	for i := 3; i < len(b.lastPix); i += Channels {
		if b.lastPix[i] != 255 {
			t.Fatalf("alpha byte %d = %d, frame not fully painted", i, b.lastPix[i])
		}
	}
}

func TestLoopOverlayDraws(t *testing.T) {
	plain := &scriptedBackend{frames: make([]Keys, 1)}
	NewLoop(plain, Options{Seed: 3, Clock: newFakeClock(), Target: time.Millisecond}).Run()
	withText := &scriptedBackend{frames: make([]Keys, 1)}
	NewLoop(withText, Options{Seed: 3, Clock: newFakeClock(), Target: time.Millisecond, Overlay: true}).Run()

	same := true
	for i := range plain.lastPix {
		if plain.lastPix[i] != withText.lastPix[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("overlay left the frame unchanged")
	}
}

func TestLoopCountsPresentationTime(t *testing.T) {
	tests := []struct {
		name       string
		renderCost time.Duration
		wantSleep  time.Duration
		wantFPS    float64
	}{
		{"cheap present", 4 * time.Millisecond, 12 * time.Millisecond, 62.5},
		{"slow present", 10 * time.Millisecond, 6 * time.Millisecond, 62.5},
		{"present overruns", 25 * time.Millisecond, 0, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clk := newFakeClock()
			b := &scriptedBackend{frames: make([]Keys, 60), clock: clk, renderCost: tt.renderCost}
			l := NewLoop(b, Options{Clock: clk, Target: 16 * time.Millisecond})
			start := clk.Now()
			stats := l.Run()

			if tt.wantSleep == 0 && len(clk.slept) != 0 {
				t.Fatalf("slept %v after overrunning ticks", clk.slept)
			}
			for _, d := range clk.slept {
				if d != tt.wantSleep {
					t.Fatalf("slept %v, expected %v", d, tt.wantSleep)
				}
			}
			perTick := clk.Now().Sub(start) / 60
			if want := max(16*time.Millisecond, tt.renderCost); perTick != want {
				t.Errorf("wall time per tick = %v, expected %v", perTick, want)
			}
			if math.Abs(stats.FPS-tt.wantFPS) > 1e-6 {
				t.Errorf("fps = %v, expected %v", stats.FPS, tt.wantFPS)
			}
		})
	}
}
