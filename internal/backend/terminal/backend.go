// Package terminal takes over the tty with tcell and draws frames as
// half-block cells, two pixel rows per character.
package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"flipper/internal/game"
)

// Terminals report presses and auto-repeats but never releases, so held
// state is inferred from event timing, in pumps:
//   - a first press holds for holdTicks, long enough to bridge the initial
//     auto-repeat delay;
//   - an event within repeatGap of the previous one is auto-repeat and
//     holds for repeatHold, so release shows up soon after repeats stop;
//   - an event after a longer quiet gap is a new tap and reads as released
//     for one pump, giving the loop a fresh press edge.
const (
	holdTicks  = 24
	repeatGap  = 8
	repeatHold = 10
)

const halfBlock = '▀'

// Backend is a game.Backend drawing into a tcell screen.
type Backend struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
	once   sync.Once

	held  [game.KeyEsc + 1]int
	since [game.KeyEsc + 1]int  // pumps since the key's last event
	tap   [game.KeyEsc + 1]bool // report released for this pump
	ended bool
}

// New claims the controlling terminal.
func New() (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcell screen: %w", err)
	}
	return NewWithScreen(screen)
}

// NewWithScreen initializes screen and starts reading its events.
func NewWithScreen(screen tcell.Screen) (*Backend, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("tcell init: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	b := &Backend{
		screen: screen,
		events: make(chan tcell.Event, 64),
		quit:   make(chan struct{}),
	}
	go b.readEvents()
	return b, nil
}

func (b *Backend) readEvents() {
	defer close(b.events)
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case b.events <- ev:
		case <-b.quit:
			return
		}
	}
}

func (b *Backend) Pump() (bool, game.Keys) {
	for i := range b.held {
		if b.held[i] > 0 {
			b.held[i]--
		}
		b.since[i]++
	}

drain:
	for !b.ended {
		select {
		case ev, ok := <-b.events:
			if !ok {
				b.ended = true
				break drain
			}
			b.handle(ev)
		default:
			break drain
		}
	}
	if b.ended {
		return false, 0
	}

	var keys game.Keys
	for k, n := range b.held {
		if n > 0 && !b.tap[k] {
			keys = keys.With(game.Key(k), true)
		}
		b.tap[k] = false
	}
	return true, keys
}

func (b *Backend) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if k, ok := mapKey(ev); ok {
			b.press(k)
		}
	case *tcell.EventResize:
		b.screen.Sync()
	}
}

func (b *Backend) press(k game.Key) {
	switch {
	case b.held[k] == 0:
		b.held[k] = holdTicks
	case b.since[k] <= repeatGap:
		b.held[k] = max(b.held[k], repeatHold)
	default:
		b.tap[k] = true
		b.held[k] = holdTicks
	}
	b.since[k] = 0
}

// mapKey follows both the arrow layout and the D/K/Space layout.
func mapKey(ev *tcell.EventKey) (game.Key, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return game.KeyLeft, true
	case tcell.KeyRight:
		return game.KeyRight, true
	case tcell.KeyUp:
		return game.KeyUp, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.KeyEsc, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'd', 'D':
			return game.KeyLeft, true
		case 'k', 'K':
			return game.KeyRight, true
		case ' ':
			return game.KeyUp, true
		case 'q', 'Q':
			return game.KeyEsc, true
		}
	}
	return 0, false
}

// Render downsamples the frame onto the current terminal grid.
func (b *Backend) Render(buf *game.Buffer) {
	tw, th := b.screen.Size()
	if tw <= 0 || th <= 0 {
		return
	}
	rows := th * 2
	for cy := 0; cy < th; cy++ {
		top := (2 * cy) * game.Height / rows
		bot := (2*cy + 1) * game.Height / rows
		for cx := 0; cx < tw; cx++ {
			x := cx * game.Width / tw
			style := tcell.StyleDefault.
				Foreground(color(buf.At(x, top))).
				Background(color(buf.At(x, bot)))
			b.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
	b.screen.Show()
}

func color(c game.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Stop restores the terminal. Safe to call more than once.
func (b *Backend) Stop() {
	b.once.Do(func() {
		close(b.quit)
		b.screen.Fini()
	})
}
