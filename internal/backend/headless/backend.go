// Package headless is an in-memory backend: keys come from a script, frames
// are kept for inspection and can be written out as PNG.
package headless

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"flipper/internal/game"
)

// Script returns the held keys for a zero-based frame number.
type Script func(frame int) game.Keys

// Span holds Keys for frames in [From, To).
type Span struct {
	From, To int
	Keys     game.Keys
}

// Timeline combines spans; overlapping spans union their keys.
func Timeline(spans ...Span) Script {
	return func(frame int) game.Keys {
		var keys game.Keys
		for _, s := range spans {
			if frame >= s.From && frame < s.To {
				keys |= s.Keys
			}
		}
		return keys
	}
}

// Demo is a looping autopilot: a kick every second and a long left turn
// every four seconds.
func Demo() Script {
	return func(frame int) game.Keys {
		var keys game.Keys
		if frame%60 < 2 {
			keys = keys.With(game.KeyUp, true)
		}
		if c := frame % 240; c >= 100 && c < 150 {
			keys = keys.With(game.KeyLeft, true)
		}
		return keys
	}
}

// Backend is a game.Backend with no device behind it.
type Backend struct {
	limit  int
	script Script

	frame   int
	last    *image.RGBA
	renders int
	stops   int
}

// New runs for limit frames (0 means until the script holds ESC).
func New(limit int, script Script) *Backend {
	return &Backend{limit: limit, script: script}
}

func (b *Backend) Pump() (bool, game.Keys) {
	if b.limit > 0 && b.frame >= b.limit {
		return false, 0
	}
	var keys game.Keys
	if b.script != nil {
		keys = b.script(b.frame)
	}
	b.frame++
	return true, keys
}

func (b *Backend) Render(buf *game.Buffer) {
	if b.last == nil {
		b.last = image.NewRGBA(image.Rect(0, 0, game.Width, game.Height))
	}
	buf.CopyTo(b.last.Pix)
	b.renders++
}

func (b *Backend) Stop() { b.stops++ }

// Renders counts presented frames.
func (b *Backend) Renders() int { return b.renders }

// Stops counts Stop calls.
func (b *Backend) Stops() int { return b.stops }

// Last returns the most recently presented frame, or nil before the first.
func (b *Backend) Last() *image.RGBA { return b.last }

// WritePNG encodes the last frame.
func (b *Backend) WritePNG(w io.Writer) error {
	if b.last == nil {
		return fmt.Errorf("no frame rendered")
	}
	return png.Encode(w, b.last)
}

// SaveSnapshot writes the last frame to path as PNG.
func (b *Backend) SaveSnapshot(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := b.WritePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return f.Close()
}
