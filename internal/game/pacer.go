package game

import "time"

// Clock is the monotonic time source used for frame pacing.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock reads the process monotonic clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time        { return time.Now() }
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// Pacer measures each tick and sleeps away the rest of the target interval.
// It never aborts a slow tick, it only skips the sleep.
type Pacer struct {
	clock  Clock
	target time.Duration

	start   time.Time
	elapsed time.Duration
	fps     float64
}

func NewPacer(clock Clock, target time.Duration) *Pacer {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Pacer{clock: clock, target: target}
}

// Begin marks the start of a tick.
func (p *Pacer) Begin() {
	p.start = p.clock.Now()
}

// End measures the tick from Begin through presentation and folds it into the smoothed fps. The
// effective frame time is never shorter than the target, since the
// remainder is slept away.
func (p *Pacer) End() time.Duration {
	p.elapsed = p.clock.Now().Sub(p.start)
	frame := max(p.elapsed, p.target)
	sample := float64(time.Second) / float64(frame)
	if p.fps == 0 {
		p.fps = sample
	} else {
		p.fps += (sample - p.fps) * FPSSmoothing
	}
	return p.elapsed
}

// Wait sleeps for the remainder of the interval measured by End.
func (p *Pacer) Wait() {
	if d := SleepFor(p.target, p.elapsed); d > 0 {
		p.clock.Sleep(d)
	}
}

// FPS returns the exponentially smoothed frame rate.
func (p *Pacer) FPS() float64 { return p.fps }


// SleepFor returns how long to sleep after a tick that took elapsed.
// It is zero, never negative, once the tick overruns the target.
func SleepFor(target, elapsed time.Duration) time.Duration {
	if elapsed >= target {
		return 0
	}
	return target - elapsed
}
