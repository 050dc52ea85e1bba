package game

import "time"

// Backend is the presentation and input collaborator. Constructing one is
// the init step; failing to construct one is fatal for the caller.
type Backend interface {
	// Pump drains all pending input without blocking. It reports false once
	// the input stream has ended.
	Pump() (alive bool, keys Keys)
	// Render presents a finished frame. Implementations copy what they
	// need and must not keep buf past the call.
	Render(buf *Buffer)
	// Stop releases resources and restores any device state taken over.
	Stop()
}

// Options configures a Loop.
type Options struct {
	Seed    uint64
	Clock   Clock         // nil means SystemClock
	Target  time.Duration // zero means TickInterval
	Overlay bool          // draw the diagnostics readout
}

// Stats summarizes a finished run.
type Stats struct {
	Frames    uint64
	Crossings uint64
	FPS       float64
}

// Loop runs Pump, Step, Draw, Render and pacing until told to stop.
type Loop struct {
	backend Backend
	sim     *Sim
	pacer   *Pacer
	buf     *Buffer
	overlay bool
	scratch []float64
}

func NewLoop(b Backend, opts Options) *Loop {
	target := opts.Target
	if target <= 0 {
		target = TickInterval
	}
	return &Loop{
		backend: b,
		sim:     NewSim(opts.Seed),
		pacer:   NewPacer(opts.Clock, target),
		buf:     NewBuffer(),
		overlay: opts.Overlay,
	}
}

// Sim exposes the simulation, mainly so callers can subscribe to events.
func (l *Loop) Sim() *Sim { return l.sim }

// Run iterates until ESC is held or the backend's input ends, then stops
// the backend exactly once.
func (l *Loop) Run() Stats {
	defer l.backend.Stop()
	for l.Iterate() {
	}
	return Stats{Frames: l.sim.Tick, Crossings: l.sim.Crossings, FPS: l.pacer.FPS()}
}

// Iterate runs one tick and reports whether the loop should continue.
func (l *Loop) Iterate() bool {
	l.pacer.Begin()
	alive, keys := l.backend.Pump()
	if !alive || keys.Has(KeyEsc) {
		return false
	}

	l.sim.Step(keys)
	l.scratch = l.sim.Draw(l.buf, l.scratch)
	if l.overlay {
		DrawText(l.buf, OverlayLines(l.pacer.FPS(), l.sim.Dolphin, &l.sim.Splash)...)
	}

	l.backend.Render(l.buf)
	l.pacer.End()
	l.pacer.Wait()
	return true
}
