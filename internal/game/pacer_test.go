package game

import (
	"math"
	"testing"
	"time"
)

// fakeClock advances only when told to, or when slept on.
type fakeClock struct {
	now   time.Time
	slept []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1000, 0)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.now = c.now.Add(d)
}

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestSleepFor(t *testing.T) {
	target := 16 * time.Millisecond
	tests := []struct {
		name    string
		elapsed time.Duration
		want    time.Duration
	}{
		{"idle", 0, target},
		{"partial", 6 * time.Millisecond, 10 * time.Millisecond},
		{"exact", target, 0},
		{"overrun", 40 * time.Millisecond, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SleepFor(target, tt.elapsed)
			if got != tt.want {
				t.Errorf("SleepFor(%v, %v) = %v, expected %v", target, tt.elapsed, got, tt.want)
			}
			if got < 0 {
				t.Errorf("negative sleep %v", got)
			}
		})
	}
}

func TestPacerSleepsRemainder(t *testing.T) {
	clk := newFakeClock()
	p := NewPacer(clk, 20*time.Millisecond)

	p.Begin()
	clk.Advance(5 * time.Millisecond)
	if got := p.End(); got != 5*time.Millisecond {
		t.Fatalf("End() = %v, expected 5ms", got)
	}
	p.Wait()
	if len(clk.slept) != 1 || clk.slept[0] != 15*time.Millisecond {
		t.Fatalf("slept %v, expected [15ms]", clk.slept)
	}
}

func TestPacerSkipsSleepOnOverrun(t *testing.T) {
	clk := newFakeClock()
	p := NewPacer(clk, 20*time.Millisecond)

	p.Begin()
	clk.Advance(35 * time.Millisecond)
	p.End()
	p.Wait()
	if len(clk.slept) != 0 {
		t.Errorf("slept %v after an overrun", clk.slept)
	}
}

func TestPacerFPS(t *testing.T) {
	clk := newFakeClock()
	target := time.Second / 50
	p := NewPacer(clk, target)

	run := func(work time.Duration, n int) {
		for i := 0; i < n; i++ {
			p.Begin()
			clk.Advance(work)
			p.End()
			p.Wait()
		}
	}

	run(time.Millisecond, 1)
	if p.FPS() != 50 {
		t.Fatalf("first sample fps = %v, expected 50", p.FPS())
	}
	run(time.Millisecond, 20)
	if math.Abs(p.FPS()-50) > 1e-9 {
		t.Errorf("fast ticks fps = %v, expected capped at 50", p.FPS())
	}

	run(40*time.Millisecond, 200)
	if math.Abs(p.FPS()-25) > 0.01 {
		t.Errorf("slow ticks fps = %v, expected to converge to 25", p.FPS())
	}
}
